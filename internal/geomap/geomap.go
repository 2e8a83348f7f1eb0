// Package geomap turns per-place success ratios into the stylesheet and
// layer config consumed by the downstream map generator.
package geomap

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/abhisek/geoquiz/internal/places"
)

// ValueOutOfRangeError reports a ratio outside the [0, 1] interval.
type ValueOutOfRangeError struct {
	Value float64
}

func (e *ValueOutOfRangeError) Error() string {
	return fmt.Sprintf("value %g outside [0,1]", e.Value)
}

// RatioColor maps a success ratio in [0, 1] to the grayscale fill used by
// the choropleth stylesheet. The ramp compresses the lower half of the
// scale (v' = 1-(1-v)*2, floored at black) so differences among
// well-known places stay visible.
func RatioColor(val float64) (string, error) {
	if val < 0 || val > 1 {
		return "", &ValueOutOfRangeError{Value: val}
	}
	v := 1 - (1-val)*2
	if v < 0 {
		v = 0
	}
	c := int(255 * v)
	return fmt.Sprintf("'rgb(%d,%d,%d)'", c, c, c), nil
}

// SuccessStylesheet writes one CSS fill rule per place, keyed by the
// place's uppercased map code. Place ids missing from the registry or
// ratios outside [0, 1] are errors.
func SuccessStylesheet(w io.Writer, ratios map[string]float64, reg *places.Registry) error {
	ids := make([]string, 0, len(ratios))
	for id := range ratios {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		code, err := reg.Code(id)
		if err != nil {
			return fmt.Errorf("place %s: %w", id, err)
		}
		fill, err := RatioColor(ratios[id])
		if err != nil {
			return fmt.Errorf("place %s: %w", id, err)
		}
		rule := fmt.Sprintf(".states[iso_a2=%s] { fill: %s; }\n", strings.ToUpper(code), fill)
		if _, err := io.WriteString(w, rule); err != nil {
			return fmt.Errorf("write rule: %w", err)
		}
	}
	return nil
}

// Layer describes one map layer of the generator config.
type Layer struct {
	Src   string `json:"src"`
	Class string `json:"class"`
}

// Config is the layer config consumed by the map generator.
type Config struct {
	Layers []Layer `json:"layers"`
}

// WriteLayerConfig writes the world-layer config for a shapefile.
func WriteLayerConfig(w io.Writer, shapefile string) error {
	cfg := Config{Layers: []Layer{{Src: shapefile, Class: "states"}}}
	enc := json.NewEncoder(w)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode layer config: %w", err)
	}
	return nil
}
