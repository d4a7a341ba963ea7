package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/epistack/pkg/stack"
)

func hemtStack() *stack.LayerStack {
	return stack.NewLayerStack(
		stack.MustLayer("Substrate", "SiC", 350000, stack.LayerSubstrate),
		stack.MustLayer("Buffer", "GaN", 1500, stack.LayerBuffer),
		stack.MustLayer("Channel", "GaN", 300, stack.LayerChannel),
		stack.MustLayer("Spacer", "AlN", 1, stack.LayerSpacer),
		stack.MustLayer("Barrier", "InAlN", 15, stack.LayerBarrier),
		stack.MustLayer("Cap", "GaN", 2, stack.LayerCap),
	)
}

func TestBoundaries(t *testing.T) {
	got := New(hemtStack()).Boundaries()
	assert.Equal(t, []float64{0, 2, 17, 18, 318, 1818}, got)
}

func TestBoundariesProperties(t *testing.T) {
	stacks := map[string]*stack.LayerStack{
		"hemt":           hemtStack(),
		"no substrate":   stack.NewLayerStack(stack.MustLayer("Buffer", "GaN", 10, stack.LayerBuffer)),
		"substrate only": stack.NewLayerStack(stack.MustLayer("Substrate", "GaN", 300000, stack.LayerSubstrate)),
		"empty":          stack.NewLayerStack(),
	}

	for name, s := range stacks {
		t.Run(name, func(t *testing.T) {
			b := New(s).Boundaries()
			require.Len(t, b, len(s.EpiLayers())+1)
			assert.Equal(t, 0.0, b[0])
			for i := 1; i < len(b); i++ {
				assert.GreaterOrEqual(t, b[i], b[i-1])
			}
			assert.Equal(t, s.EpiThickness(), b[len(b)-1])
		})
	}
}

func TestBoundariesSubstrateOnly(t *testing.T) {
	s := stack.NewLayerStack(stack.MustLayer("Substrate", "GaN", 300000, stack.LayerSubstrate))

	assert.Equal(t, []float64{0}, New(s).Boundaries())
	assert.Equal(t, 0.0, s.EpiThickness())
}

func TestRegions(t *testing.T) {
	regions := New(hemtStack()).Regions()
	require.Len(t, regions, 5)

	assert.Equal(t, "Cap", regions[0].Layer.Name())
	assert.Equal(t, 0.0, regions[0].Top)
	assert.Equal(t, 2.0, regions[0].Bottom)

	assert.Equal(t, "Buffer", regions[4].Layer.Name())
	assert.Equal(t, regions[3].Bottom, regions[4].Top)
}

func TestTwoDEGOffset(t *testing.T) {
	tests := []struct {
		name   string
		layers []stack.Layer
		want   float64
	}{
		{
			name: "cap over barrier",
			layers: []stack.Layer{
				stack.MustLayer("Channel", "GaN", 300, stack.LayerChannel),
				stack.MustLayer("Barrier", "InAlN", 15, stack.LayerBarrier),
				stack.MustLayer("Cap", "GaN", 2, stack.LayerCap),
			},
			want: 2 + 15 + 1.5,
		},
		{
			name: "no cap",
			layers: []stack.Layer{
				stack.MustLayer("Channel", "GaN", 300, stack.LayerChannel),
				stack.MustLayer("Barrier", "AlGaN", 20, stack.LayerBarrier),
			},
			want: 20 + 1.5,
		},
		{
			name: "passivation above cap is skipped",
			layers: []stack.Layer{
				stack.MustLayer("Barrier", "InAlN", 15, stack.LayerBarrier),
				stack.MustLayer("Cap", "GaN", 2, stack.LayerCap),
				stack.MustLayer("SiN", "SiN", 100, stack.LayerPassivation),
			},
			want: 18.5,
		},
		{
			name: "first barrier from the top wins",
			layers: []stack.Layer{
				stack.MustLayer("Barrier1", "AlGaN", 30, stack.LayerBarrier),
				stack.MustLayer("Channel", "GaN", 10, stack.LayerChannel),
				stack.MustLayer("Barrier2", "InAlN", 10, stack.LayerBarrier),
				stack.MustLayer("Cap", "GaN", 3, stack.LayerCap),
			},
			want: 3 + 10 + 1.5,
		},
		{
			name: "no barrier returns cap thickness",
			layers: []stack.Layer{
				stack.MustLayer("Channel", "GaN", 300, stack.LayerChannel),
				stack.MustLayer("Cap", "GaN", 2, stack.LayerCap),
			},
			want: 2,
		},
		{
			name: "empty",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(stack.NewLayerStack(tt.layers...)).TwoDEGOffset()
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCalculatorSeesLaterInserts(t *testing.T) {
	s := hemtStack()
	c := New(s)
	before := len(c.Boundaries())

	require.NoError(t, s.InsertAfter(stack.MustLayer("BackBarrier", "AlGaN", 50, stack.LayerBuffer), stack.LayerChannel))

	assert.Len(t, c.Boundaries(), before+1)
}

func TestChargeSheetDepth(t *testing.T) {
	c := New(hemtStack())
	depth, idx, ok := c.ChargeSheetDepth()
	require.True(t, ok)
	assert.InDelta(t, 18.5, depth, 1e-9)
	assert.Equal(t, 1, idx)
	assert.InDelta(t, c.TwoDEGOffset(), depth, 1e-9)
}

func TestChargeSheetDepthBelowPassivation(t *testing.T) {
	s := hemtStack()
	s.Append(stack.MustLayer("SiN", "SiN", 100, stack.LayerPassivation))
	c := New(s)

	depth, idx, ok := c.ChargeSheetDepth()
	require.True(t, ok)
	assert.InDelta(t, 118.5, depth, 1e-9)
	assert.Equal(t, 2, idx)
	assert.Equal(t, "Barrier", c.Regions()[idx].Layer.Name())
	// The cap-referenced offset ignores the passivation.
	assert.InDelta(t, 18.5, c.TwoDEGOffset(), 1e-9)
}

func TestChargeSheetDepthNoBarrier(t *testing.T) {
	s := stack.NewLayerStack(stack.MustLayer("Cap", "GaN", 2, stack.LayerCap))
	_, idx, ok := New(s).ChargeSheetDepth()
	assert.False(t, ok)
	assert.Equal(t, -1, idx)

	_, _, ok = New(stack.NewLayerStack()).ChargeSheetDepth()
	assert.False(t, ok)
}
