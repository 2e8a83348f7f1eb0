package geomap

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/geoquiz/internal/places"
)

func TestRatioColor(t *testing.T) {
	tests := []struct {
		val  float64
		want string
	}{
		{1, "'rgb(255,255,255)'"},
		{0.5, "'rgb(0,0,0)'"},
		{0.75, "'rgb(127,127,127)'"},
		{0, "'rgb(0,0,0)'"},
	}

	for _, tt := range tests {
		got, err := RatioColor(tt.val)
		if err != nil {
			t.Errorf("RatioColor(%f) unexpected error: %v", tt.val, err)
			continue
		}
		if got != tt.want {
			t.Errorf("RatioColor(%f) = %s, want %s", tt.val, got, tt.want)
		}
	}
}

func TestRatioColorOutOfRange(t *testing.T) {
	for _, val := range []float64{-0.1, 1.1} {
		_, err := RatioColor(val)
		if err == nil {
			t.Errorf("RatioColor(%f) expected error", val)
			continue
		}
		var rangeErr *ValueOutOfRangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("RatioColor(%f) error type = %T, want *ValueOutOfRangeError", val, err)
		}
	}
}

func TestSuccessStylesheet(t *testing.T) {
	reg, err := places.Read(strings.NewReader("id,code,name\n42,cz,Czech Republic\n43,sk,Slovakia\n"))
	if err != nil {
		t.Fatalf("places.Read: %v", err)
	}

	var buf bytes.Buffer
	err = SuccessStylesheet(&buf, map[string]float64{"42": 1, "43": 0.5}, reg)
	if err != nil {
		t.Fatalf("SuccessStylesheet: %v", err)
	}

	want := ".states[iso_a2=CZ] { fill: 'rgb(255,255,255)'; }\n" +
		".states[iso_a2=SK] { fill: 'rgb(0,0,0)'; }\n"
	if buf.String() != want {
		t.Errorf("stylesheet:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestSuccessStylesheetUnknownPlace(t *testing.T) {
	reg, err := places.Read(strings.NewReader("id,code,name\n42,cz,Czech Republic\n"))
	if err != nil {
		t.Fatalf("places.Read: %v", err)
	}
	if err := SuccessStylesheet(&bytes.Buffer{}, map[string]float64{"99": 0.5}, reg); err == nil {
		t.Error("expected error for unknown place id")
	}
}

func TestWriteLayerConfig(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLayerConfig(&buf, "world.shp"); err != nil {
		t.Fatalf("WriteLayerConfig: %v", err)
	}
	want := `{"layers":[{"src":"world.shp","class":"states"}]}` + "\n"
	if buf.String() != want {
		t.Errorf("config = %s, want %s", buf.String(), want)
	}
}
