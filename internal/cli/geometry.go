package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/epistack/pkg/geometry"
)

// geometryCommand creates the geometry command for printing derived
// vertical positions.
func (c *CLI) geometryCommand() *cobra.Command {
	var src sourceOpts

	cmd := &cobra.Command{
		Use:   "geometry",
		Short: "Print layer boundaries and the 2DEG depth",
		Long: `Print the vertical geometry of a HEMT structure.

Depths are in nm measured downward from the top surface. Each region lists
the interval one epitaxial layer occupies; the boundaries are the distinct
interface depths starting at the surface. The substrate has no region.

The 2DEG depth counts every layer above the first barrier. When passivation
or other layers sit above the cap, the offset from the cap top is printed too.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGeometry(cmd.Context(), cmd.OutOrStdout(), src)
		},
	}

	src.register(cmd)
	return cmd
}

func (c *CLI) runGeometry(ctx context.Context, w io.Writer, src sourceOpts) error {
	s, err := loadStructure(ctx, src)
	if err != nil {
		return err
	}
	writeGeometry(w, s.Geometry())
	return nil
}

func writeGeometry(w io.Writer, g *geometry.Calculator) {
	fmt.Fprintln(w, StyleTitle.Render("Regions (top to bottom)"))
	for _, r := range g.Regions() {
		printKeyValue(w, r.Layer.Name(), fmt.Sprintf("%s - %s nm", formatDepth(r.Top), formatDepth(r.Bottom)))
	}
	printNewline(w)

	bounds := g.Boundaries()
	parts := make([]string, len(bounds))
	for i, b := range bounds {
		parts[i] = formatDepth(b)
	}
	printKeyValue(w, "Boundaries", "["+strings.Join(parts, ", ")+"] nm")

	if depth, _, ok := g.ChargeSheetDepth(); ok {
		printKeyValue(w, "2DEG depth", formatDepth(depth)+" nm")
		if off := g.TwoDEGOffset(); off != depth {
			printKeyValue(w, "2DEG offset", formatDepth(off)+" nm below the cap top")
		}
	} else {
		printWarning(w, "no barrier layer: 2DEG depth is %s nm", formatDepth(g.TwoDEGOffset()))
	}
}

func formatDepth(nm float64) string {
	return strconv.FormatFloat(nm, 'g', -1, 64)
}
