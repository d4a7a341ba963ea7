package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayerTypeRoundTrip(t *testing.T) {
	for _, lt := range LayerTypes {
		t.Run(lt.String(), func(t *testing.T) {
			text, err := lt.MarshalText()
			require.NoError(t, err)

			var got LayerType
			require.NoError(t, got.UnmarshalText(text))
			assert.Equal(t, lt, got)
		})
	}
}

func TestParseLayerType(t *testing.T) {
	got, err := ParseLayerType(" Barrier ")
	require.NoError(t, err)
	assert.Equal(t, LayerBarrier, got)

	_, err = ParseLayerType("mesa")
	assert.Error(t, err)

	_, err = LayerType(0).MarshalText()
	assert.Error(t, err)
}

func TestParseDopingType(t *testing.T) {
	tests := []struct {
		in      string
		want    DopingType
		wantErr bool
	}{
		{"", Undoped, false},
		{"n", DopingN, false},
		{"P", DopingP, false},
		{"i", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseDopingType(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.want.String(), got.String())
	}
}

func TestContactTypeText(t *testing.T) {
	var ct ContactType
	require.NoError(t, ct.UnmarshalText([]byte("schottky")))
	assert.Equal(t, Schottky, ct)

	text, err := Ohmic.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "ohmic", string(text))

	assert.Error(t, ct.UnmarshalText([]byte("tunnel")))
	assert.False(t, ContactType(0).Valid())
}
