package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/epistack/pkg/device"
	"github.com/matzehuels/epistack/pkg/stack"
)

// showCommand creates the show command for printing a structure summary.
func (c *CLI) showCommand() *cobra.Command {
	var src sourceOpts

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a summary of the layer stack and contacts",
		Long: `Print a summary of a HEMT structure.

The layer stack is listed from the surface down to the substrate, followed by
the contacts, the total and epitaxial thickness and the depth of the 2DEG
below the surface.

Without --input or --config the reference structure is shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShow(cmd.Context(), cmd.OutOrStdout(), src)
		},
	}

	src.register(cmd)
	return cmd
}

func (c *CLI) runShow(ctx context.Context, w io.Writer, src sourceOpts) error {
	s, err := loadStructure(ctx, src)
	if err != nil {
		return err
	}
	writeSummary(w, s)
	return nil
}

// writeSummary prints the structure summary to w.
func writeSummary(w io.Writer, s *device.Structure) {
	fmt.Fprintln(w, StyleTitle.Render("InGaN/GaN HEMT Structure Summary"))
	printNewline(w)

	g := s.Geometry()
	printKeyValue(w, "Substrate", string(s.Substrate))
	printKeyValue(w, "Total thickness", fmt.Sprintf("%.1f μm", s.Layers.TotalThickness()/1000))
	printKeyValue(w, "Epi thickness", fmt.Sprintf("%.3f μm", s.Layers.EpiThickness()/1000))
	if depth, _, ok := g.ChargeSheetDepth(); ok {
		printKeyValue(w, "2DEG position", fmt.Sprintf("%.1f nm from surface", depth))
		if off := g.TwoDEGOffset(); off != depth {
			printKeyValue(w, "2DEG offset", fmt.Sprintf("%.1f nm below the cap top", off))
		}
	} else {
		printKeyValue(w, "2DEG position", "none (no barrier layer)")
	}
	if gate, ok := s.Contacts.Find("Gate"); ok {
		printKeyValue(w, "Gate length", fmt.Sprintf("%g μm", gate.Position().Width()))
	}
	printNewline(w)

	fmt.Fprintln(w, StyleTitle.Render("Layer Stack (top to bottom)"))
	fmt.Fprintln(w, layerTable(s.Layers).Render())
	printNewline(w)

	fmt.Fprintln(w, StyleTitle.Render("Contacts"))
	fmt.Fprintln(w, contactTable(s.Contacts).Render())

	if ext := s.Extensions; ext != nil {
		printNewline(w)
		fmt.Fprintln(w, StyleTitle.Render("Extensions"))
		for _, fp := range ext.FieldPlates {
			printKeyValue(w, "Field plate", fmt.Sprintf("%s %s x: %s μm, h: %g μm",
				fp.Name, fp.Material, formatSpan(fp.Position), fp.Height))
		}
		for _, p := range ext.Passivation {
			printKeyValue(w, "Passivation", fmt.Sprintf("%s %g nm", p.Material, p.Thickness))
		}
	}
}

// layerTable lists the epitaxial layers from the surface down. The
// substrate is summarized separately and left out.
func layerTable(ls *stack.LayerStack) *table.Table {
	epi := ls.EpiLayers()
	rows := make([][]string, 0, len(epi))
	types := make([]stack.LayerType, 0, len(epi))
	for _, l := range slices.Backward(epi) {
		rows = append(rows, []string{
			l.Name(),
			l.Material(),
			l.Type().String(),
			formatThickness(l.Thickness()),
			formatDoping(l),
			formatComposition(l.Composition()),
		})
		types = append(types, l.Type())
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("Layer", "Material", "Type", "Thickness", "Doping", "Composition").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			style := lipgloss.NewStyle().Padding(0, 1)
			if row >= 0 && row < len(types) {
				style = style.Inherit(layerStyle(types[row]))
			}
			return style
		})
}

func contactTable(cs *stack.ContactSet) *table.Table {
	var rows [][]string
	for _, ct := range cs.Contacts() {
		extra := ""
		if wf, ok := ct.WorkFunction(); ok {
			extra = fmt.Sprintf("φ %g eV", wf)
		}
		if r, ok := ct.ContactResistance(); ok {
			extra = fmt.Sprintf("Rc %g Ω·mm", r)
		}
		rows = append(rows, []string{
			ct.Name(),
			ct.Material(),
			ct.Type().String(),
			formatSpan(ct.Position()) + " μm",
			extra,
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("Contact", "Metal", "Type", "x", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

func layerStyle(t stack.LayerType) lipgloss.Style {
	switch t {
	case stack.LayerSubstrate:
		return styleSubstrate
	case stack.LayerBarrier:
		return styleBarrier
	case stack.LayerChannel:
		return styleChannel
	default:
		return lipgloss.NewStyle()
	}
}

func formatThickness(nm float64) string {
	return strconv.FormatFloat(nm, 'f', 1, 64) + " nm"
}

// formatDoping renders the doping of l, e.g. "n 5.0e+18 cm⁻³". A
// concentration without a declared type is shown as background doping.
func formatDoping(l stack.Layer) string {
	if !l.IsDoped() {
		return "-"
	}
	kind := l.Doping().String()
	if kind == "" {
		kind = "bg"
	}
	return fmt.Sprintf("%s %.1e cm⁻³", kind, l.DopingConcentration())
}

func formatComposition(c stack.Composition) string {
	if len(c) == 0 {
		return "-"
	}
	return c.String()
}

func formatSpan(p stack.Position) string {
	return fmt.Sprintf("%.2f-%.2f", p.Start, p.End)
}
