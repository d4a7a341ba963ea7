package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/epistack/pkg/device"
	"github.com/matzehuels/epistack/pkg/stack"
)

func newTestBrowser(t *testing.T) LayerBrowserModel {
	t.Helper()
	s, err := device.NewDefault(device.SubstrateSiC, device.DefaultDimensions())
	if err != nil {
		t.Fatal(err)
	}
	return NewLayerBrowserModel(s)
}

func press(m LayerBrowserModel, keys ...string) LayerBrowserModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(LayerBrowserModel)
	}
	return m
}

func TestNewLayerBrowserModel(t *testing.T) {
	m := newTestBrowser(t)

	if len(m.Rows) != 8 {
		t.Fatalf("rows = %d, want 8", len(m.Rows))
	}
	if got := m.Rows[0].Layer.Name(); got != "Cap" {
		t.Errorf("first row = %s, want Cap", got)
	}
	last := m.Rows[len(m.Rows)-1]
	if !last.Layer.IsSubstrate() || last.Top != 2418 {
		t.Errorf("last row = %s at %g, want substrate at 2418", last.Layer.Name(), last.Top)
	}
	if m.TwoDEGRow != 1 || m.TwoDEG != 18.5 {
		t.Errorf("2DEG = row %d at %g, want row 1 at 18.5", m.TwoDEGRow, m.TwoDEG)
	}
}

func TestLayerBrowserNavigation(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want int
	}{
		{"start", nil, 0},
		{"up at top stays", []string{"up"}, 0},
		{"down twice", []string{"down", "j"}, 2},
		{"down then up", []string{"down", "down", "k"}, 1},
		{"end", []string{"G"}, 7},
		{"past end stays", []string{"G", "down"}, 7},
		{"home", []string{"G", "g"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(newTestBrowser(t), tt.keys...)
			if m.Cursor != tt.want {
				t.Errorf("cursor = %d, want %d", m.Cursor, tt.want)
			}
		})
	}
}

func TestLayerBrowserScrolls(t *testing.T) {
	m := newTestBrowser(t)
	m.Height = 3

	m = press(m, "down", "down", "down")
	if m.Offset != 1 {
		t.Errorf("offset = %d, want 1", m.Offset)
	}
	m = press(m, "g")
	if m.Offset != 0 {
		t.Errorf("offset after home = %d, want 0", m.Offset)
	}
}

func TestLayerBrowserQuit(t *testing.T) {
	m := newTestBrowser(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestLayerBrowserView(t *testing.T) {
	m := press(newTestBrowser(t), "down")
	view := m.View()

	for _, want := range []string{"HEMT on SiC", "Cap", "Barrier", "Substrate", "2DEG", "[2/8]", "charge sheet"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestLayerBrowserEmpty(t *testing.T) {
	m := LayerBrowserModel{Height: 5}
	if !strings.Contains(m.View(), "empty stack") {
		t.Error("empty browser should say so")
	}
	m = press(m, "down", "G")
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.Cursor)
	}
}

func TestLayerBrowserMarksBarrierUnderPassivation(t *testing.T) {
	s, err := device.NewDefault(device.SubstrateSiC, device.DefaultDimensions())
	if err != nil {
		t.Fatal(err)
	}
	s.Layers.Append(stack.MustLayer("SiN", "SiN", 100, stack.LayerPassivation))

	m := NewLayerBrowserModel(s)
	if m.TwoDEGRow != 2 || m.Rows[2].Layer.Name() != "Barrier" {
		t.Fatalf("2DEG row = %d, want the barrier at 2", m.TwoDEGRow)
	}
	if m.TwoDEG != 118.5 {
		t.Errorf("2DEG depth = %g, want 118.5", m.TwoDEG)
	}

	for _, line := range strings.Split(m.View(), "\n") {
		if strings.Contains(line, "2DEG") && !strings.Contains(line, "Barrier") {
			t.Errorf("2DEG marker on the wrong row: %q", line)
		}
	}

	detail := press(m, "down", "down").View()
	if !strings.Contains(detail, "at 118.5 nm") {
		t.Errorf("barrier detail missing surface depth:\n%s", detail)
	}
}

func TestLayerBrowserNoBarrier(t *testing.T) {
	s := &device.Structure{
		Substrate: device.SubstrateSiC,
		Layers:    stack.NewLayerStack(stack.MustLayer("Cap", "GaN", 2, stack.LayerCap)),
	}
	m := NewLayerBrowserModel(s)
	if m.TwoDEGRow != -1 {
		t.Errorf("2DEG row = %d, want -1", m.TwoDEGRow)
	}
	if strings.Contains(m.View(), "2DEG") {
		t.Error("view should not mark a 2DEG without a barrier")
	}
}
