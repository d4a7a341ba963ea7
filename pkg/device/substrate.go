package device

import (
	"slices"
	"strings"

	"github.com/matzehuels/epistack/pkg/errors"
)

// Substrate names the wafer material the stack is grown on.
type Substrate string

const (
	SubstrateSiC      Substrate = "SiC"
	SubstrateSi       Substrate = "Si"
	SubstrateSapphire Substrate = "Sapphire"
	SubstrateGaN      Substrate = "GaN"
)

// Substrates lists the supported substrates.
var Substrates = []Substrate{SubstrateSiC, SubstrateSi, SubstrateSapphire, SubstrateGaN}

// ParseSubstrate matches s case-insensitively against [Substrates].
func ParseSubstrate(s string) (Substrate, error) {
	i := slices.IndexFunc(Substrates, func(sub Substrate) bool {
		return strings.EqualFold(string(sub), strings.TrimSpace(s))
	})
	if i < 0 {
		return "", errors.New(errors.ErrCodeInvalidInput, "unknown substrate %q (must be SiC, Si, Sapphire or GaN)", s)
	}
	return Substrates[i], nil
}

// Thickness returns the wafer thickness in nm. Anything that is not SiC,
// Si or sapphire is treated as a bulk GaN wafer.
func (s Substrate) Thickness() float64 {
	switch s {
	case SubstrateSiC:
		return 350000
	case SubstrateSi:
		return 525000
	case SubstrateSapphire:
		return 430000
	default:
		return 300000
	}
}

// NeedsNucleation reports whether an AlN nucleation layer is grown first.
// Homoepitaxy on GaN does not need one.
func (s Substrate) NeedsNucleation() bool {
	return s != SubstrateGaN
}
