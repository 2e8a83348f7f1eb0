// Package places maps place identifiers to their map codes and names.
package places

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Place is one entry of the place registry.
type Place struct {
	ID   string
	Code string // ISO-like code used by map stylesheets
	Name string
}

// Registry resolves place ids to places.
type Registry struct {
	byID map[string]Place
}

// Read loads a registry from CSV with an id,code,name header.
func Read(r io.Reader) (*Registry, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read places csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty places csv")
	}

	cols := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		cols[name] = i
	}
	for _, name := range []string{"id", "code", "name"} {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	byID := make(map[string]Place, len(rows)-1)
	for _, row := range rows[1:] {
		p := Place{
			ID:   row[cols["id"]],
			Code: row[cols["code"]],
			Name: row[cols["name"]],
		}
		byID[p.ID] = p
	}
	return &Registry{byID: byID}, nil
}

// ReadFile loads a registry from a CSV file.
func ReadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open places csv: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Len returns the number of registered places.
func (reg *Registry) Len() int { return len(reg.byID) }

// Lookup returns the place for an id.
func (reg *Registry) Lookup(id string) (Place, bool) {
	p, ok := reg.byID[id]
	return p, ok
}

// Code returns the map code for a place id.
func (reg *Registry) Code(id string) (string, error) {
	p, ok := reg.byID[id]
	if !ok {
		return "", fmt.Errorf("unknown place id %q", id)
	}
	return p.Code, nil
}
