// Package cli implements the epistack command-line interface.
package cli

import (
	"context"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/epistack/pkg/config"
	"github.com/matzehuels/epistack/pkg/device"
	"github.com/matzehuels/epistack/pkg/errors"
	epio "github.com/matzehuels/epistack/pkg/io"
	"github.com/matzehuels/epistack/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "epistack"

	formatTCAD = "tcad"
	formatJSON = "json"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Structure Source
// =============================================================================

// sourceOpts selects where a command takes its structure from. An input
// document wins over a config file, and a config file over the built-in
// reference structure.
type sourceOpts struct {
	input       string // JSON interchange document
	config      string // TOML structure description
	substrate   string // overrides the config's substrate when set
	backBarrier bool   // adds the default back barrier when the config has none
}

func (o *sourceOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.input, "input", "i", "", "read the structure from a JSON document")
	cmd.Flags().StringVarP(&o.config, "config", "c", "", "read the structure from a TOML description")
	cmd.Flags().StringVarP(&o.substrate, "substrate", "s", "", "substrate: SiC (default), Si, Sapphire, GaN")
	cmd.Flags().BoolVar(&o.backBarrier, "back-barrier", false, "add a p-type back barrier directly after the channel in growth order")
	cmd.MarkFlagsMutuallyExclusive("input", "config")
	cmd.MarkFlagsMutuallyExclusive("input", "substrate")
	cmd.MarkFlagsMutuallyExclusive("input", "back-barrier")
}

// loadStructure builds the structure o selects and reports the load to the
// registered observability hooks.
func loadStructure(ctx context.Context, o sourceOpts) (*device.Structure, error) {
	start := time.Now()
	s, err := buildStructure(ctx, o)

	layers := 0
	if err == nil {
		layers = s.Layers.Len()
	}
	observability.Load().OnLoad(ctx, o.kind(), layers, time.Since(start), err)
	return s, err
}

// kind names the source for hooks and logs.
func (o sourceOpts) kind() string {
	switch {
	case o.input != "":
		return "json"
	case o.config != "":
		return "config"
	default:
		return "default"
	}
}

func buildStructure(ctx context.Context, o sourceOpts) (*device.Structure, error) {
	logger := loggerFromContext(ctx)

	if o.input != "" {
		logger.Debug("importing structure", "path", o.input)
		return epio.ImportJSON(o.input)
	}

	cfg := config.Default()
	if o.config != "" {
		logger.Debug("loading config", "path", o.config)
		loaded, err := config.Load(o.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if o.substrate != "" {
		cfg.Substrate = o.substrate
	}
	if o.backBarrier && cfg.BackBarrier == nil {
		bb := device.DefaultBackBarrier()
		cfg.BackBarrier = &config.BackBarrier{
			Thickness:           bb.Thickness,
			DopingConcentration: bb.DopingConcentration,
		}
	}

	s, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	logger.Debug("built structure", "substrate", s.Substrate, "layers", s.Layers.Len(), "contacts", s.Contacts.Len())
	return s, nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return []string{formatTCAD}, nil
	}
	var formats []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		switch f {
		case formatTCAD, formatJSON:
		default:
			return nil, errors.New(errors.ErrCodeInvalidInput, "unknown format %q (must be tcad or json)", f)
		}
		if !slices.Contains(formats, f) {
			formats = append(formats, f)
		}
	}
	return formats, nil
}
