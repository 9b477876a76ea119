// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package legal enforces jurisdiction-wide limits on restricted ingredients.
package legal

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pdiddy/menu-engine/internal/canon"
	"github.com/pdiddy/menu-engine/pkg/types"
)

// Marker is the galactic-code value that requests quantity enforcement.
const Marker = "quantita legali"

// Requested reports whether galacticCode asks for legal quantities. Codes
// are compared in normalized form so "Quantità Legali" also matches.
func Requested(galacticCode []string) bool {
	want := canon.Normalize(Marker)
	for _, c := range galacticCode {
		if canon.Normalize(c) == want {
			return true
		}
	}
	return false
}

// Limits maps restricted ingredients to their maximum permitted quantity.
// Ingredient names are keyed in normalized form. The unit is opaque.
type Limits struct {
	max map[string]float64
}

// NewLimits builds a table from ingredient name to limit.
func NewLimits(m map[string]float64) *Limits {
	l := &Limits{max: make(map[string]float64, len(m))}
	for k, v := range m {
		l.max[canon.Normalize(k)] = v
	}
	return l
}

// Load reads a legal-limit table from a CSV file.
func Load(path string) (*Limits, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening legal limits: %w", err)
	}
	defer f.Close()

	l, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Parse reads (ingredient, limit) rows. A first row whose limit column is
// not a number is treated as a header and skipped.
func Parse(r io.Reader) (*Limits, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading legal limits: %w", err)
	}

	m := make(map[string]float64, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("row %d: want 2 columns, got %d", i+1, len(row))
		}
		limit, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(row[1]), "%")), 64)
		if err != nil {
			if i == 0 {
				continue
			}
			return nil, fmt.Errorf("row %d: limit %q: %w", i+1, row[1], err)
		}
		m[strings.TrimSpace(row[0])] = limit
	}
	return NewLimits(m), nil
}

// Len returns the number of limited ingredients.
func (l *Limits) Len() int { return len(l.max) }

// Limit returns the limit for ingredient and whether one exists.
func (l *Limits) Limit(ingredient string) (float64, bool) {
	v, ok := l.max[canon.Normalize(ingredient)]
	return v, ok
}

// Check reports whether every restricted ingredient the recipe declares for
// itself is within its limit. Entries for other recipes and ingredients
// without a limit are ignored.
func (l *Limits) Check(r types.Recipe) bool {
	self := canon.Normalize(r.Name)
	for _, ri := range r.RestrictedIngredients {
		if canon.Normalize(ri.Recipe) != self {
			continue
		}
		if limit, ok := l.Limit(ri.Ingredient); ok && ri.Quantity > limit {
			return false
		}
	}
	return true
}
