package cli

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/matzehuels/epistack/pkg/errors"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in      string
		want    []string
		wantErr bool
	}{
		{"", []string{"tcad"}, false},
		{"json", []string{"json"}, false},
		{"tcad,json", []string{"tcad", "json"}, false},
		{" JSON , tcad ,json", []string{"json", "tcad"}, false},
		{"svg", nil, true},
		{"tcad,", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseFormats(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseFormats(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoadStructureDefault(t *testing.T) {
	s, err := loadStructure(context.Background(), sourceOpts{})
	if err != nil {
		t.Fatalf("loadStructure: %v", err)
	}
	if s.Substrate != "SiC" {
		t.Errorf("substrate = %s, want SiC", s.Substrate)
	}
	if s.Layers.Len() != 8 {
		t.Errorf("layers = %d, want 8", s.Layers.Len())
	}
}

func TestLoadStructureConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hemt.toml")
	doc := "substrate = \"Si\"\n[back_barrier]\nthickness = 20\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := loadStructure(context.Background(), sourceOpts{config: path, backBarrier: true})
	if err != nil {
		t.Fatalf("loadStructure: %v", err)
	}
	if s.Substrate != "Si" {
		t.Errorf("substrate = %s, want Si", s.Substrate)
	}
	// The config's back barrier wins over the flag's default one.
	if got := s.Layers.At(5); got.Name() != "BackBarrier" || got.Thickness() != 20 {
		t.Errorf("layer 5 = %s %g nm, want BackBarrier 20 nm", got.Name(), got.Thickness())
	}

	s, err = loadStructure(context.Background(), sourceOpts{config: path, substrate: "sapphire"})
	if err != nil {
		t.Fatalf("loadStructure with substrate override: %v", err)
	}
	if s.Substrate != "Sapphire" {
		t.Errorf("substrate = %s, want Sapphire", s.Substrate)
	}
}

func TestLoadStructureBadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"layers": [}`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := loadStructure(context.Background(), sourceOpts{input: path})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
}
