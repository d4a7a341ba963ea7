package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/epistack/pkg/device"
	"github.com/matzehuels/epistack/pkg/geometry"
	"github.com/matzehuels/epistack/pkg/stack"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)

	detailBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// browseCommand creates the browse command for exploring a stack interactively.
func (c *CLI) browseCommand() *cobra.Command {
	var src sourceOpts

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the layer stack interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStructure(cmd.Context(), src)
			if err != nil {
				return err
			}
			p := tea.NewProgram(NewLayerBrowserModel(s),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}

	src.register(cmd)
	return cmd
}

// =============================================================================
// LayerBrowserModel - Interactive layer stack browser
// =============================================================================

// browserRow is one layer as shown in the browser, surface first.
type browserRow struct {
	Layer  stack.Layer
	Top    float64 // nm below the surface
	Bottom float64
}

// LayerBrowserModel is the bubbletea model for browsing a layer stack.
// Rows run from the surface down; the substrate is the last row.
type LayerBrowserModel struct {
	Title     string
	Rows      []browserRow
	TwoDEG    float64 // nm below the surface
	TwoDEGRow int     // barrier row hosting the 2DEG, -1 if none
	Cursor    int
	Height    int
	Offset    int
}

// NewLayerBrowserModel creates a browser over the layers of s.
func NewLayerBrowserModel(s *device.Structure) LayerBrowserModel {
	g := s.Geometry()
	depth, row, _ := g.ChargeSheetDepth()

	var rows []browserRow
	for _, r := range g.Regions() {
		rows = append(rows, browserRow{Layer: r.Layer, Top: r.Top, Bottom: r.Bottom})
	}
	if sub, ok := s.Layers.Substrate(); ok {
		top := s.Layers.EpiThickness()
		rows = append(rows, browserRow{Layer: sub, Top: top, Bottom: top + sub.Thickness()})
	}

	return LayerBrowserModel{
		Title:     fmt.Sprintf("HEMT on %s", s.Substrate),
		Rows:      rows,
		TwoDEG:    depth,
		TwoDEGRow: row,
		Height:    15,
	}
}

func (m LayerBrowserModel) Init() tea.Cmd {
	return nil
}

func (m LayerBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			if n := len(m.Rows); n > 0 {
				m.Cursor = n - 1
				m.Offset = max(0, n-m.Height)
			}
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-14, 5)
	}
	return m, nil
}

func (m LayerBrowserModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G top/bottom  q quit"))
	b.WriteString("\n\n")

	if len(m.Rows) == 0 {
		b.WriteString(listDimStyle.Render("  (empty stack)"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Rows))
	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-12s %-8s %12s", cursor, r.Layer.Name(), r.Layer.Material(), formatThickness(r.Layer.Thickness()))
		switch {
		case i == m.Cursor:
			b.WriteString(listSelectedStyle.Render(line))
		case r.Layer.IsSubstrate():
			b.WriteString(listDimStyle.Render(line))
		default:
			b.WriteString(listNormalStyle.Inherit(layerStyle(r.Layer.Type())).Render(line))
		}
		if i == m.TwoDEGRow {
			b.WriteString(StyleHighlight.Render("  ◂ 2DEG"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(detailBoxStyle.Render(m.detail(m.Cursor)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}

func (m LayerBrowserModel) detail(i int) string {
	r := m.Rows[i]
	l := r.Layer
	lines := []string{
		StyleTitle.Render(l.Name()),
		"type         " + l.Type().String(),
		"material     " + l.Material(),
		"thickness    " + formatThickness(l.Thickness()),
		"depth        " + formatDepth(r.Top) + " - " + formatDepth(r.Bottom) + " nm",
		"doping       " + formatDoping(l),
		"composition  " + formatComposition(l.Composition()),
	}
	if i == m.TwoDEGRow {
		lines = append(lines, StyleHighlight.Render(fmt.Sprintf("charge sheet %g nm below, at %s nm",
			geometry.ChargeSheetSetback, formatDepth(m.TwoDEG))))
	}
	return strings.Join(lines, "\n")
}
