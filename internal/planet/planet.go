// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package planet expands "within distance D of planet P" constraints using a
// symmetric distance table.
package planet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pdiddy/menu-engine/pkg/types"
)

// cornerCell labels the header row and the name column of a distance table.
const cornerCell = "/"

var (
	// ErrUnknownPlanet is returned when an anchor planet is not in the table.
	ErrUnknownPlanet = errors.New("planet not in distance table")

	// ErrMalformedTable is returned when a distance table is not square,
	// symmetric, zero on the diagonal, and non-negative.
	ErrMalformedTable = errors.New("malformed distance table")
)

// Table is a read-only symmetric distance matrix indexed by planet name.
type Table struct {
	names []string
	index map[string]int
	dist  [][]float64
}

// Load reads a distance table from a CSV file.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening distance table: %w", err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse reads a distance table whose header row is "/", name, name, ...
// and whose rows are name, distance, distance, ...
func Parse(r io.Reader) (*Table, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTable, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrMalformedTable)
	}

	header := rows[0]
	if strings.TrimSpace(header[0]) != cornerCell {
		return nil, fmt.Errorf("%w: header must start with %q", ErrMalformedTable, cornerCell)
	}
	names := make([]string, 0, len(header)-1)
	for _, h := range header[1:] {
		names = append(names, strings.TrimSpace(h))
	}
	if len(rows)-1 != len(names) {
		return nil, fmt.Errorf("%w: %d columns but %d rows", ErrMalformedTable, len(names), len(rows)-1)
	}

	t := &Table{
		names: names,
		index: make(map[string]int, len(names)),
		dist:  make([][]float64, len(names)),
	}
	for i, n := range names {
		key := strings.ToLower(n)
		if _, dup := t.index[key]; dup {
			return nil, fmt.Errorf("%w: duplicate planet %q", ErrMalformedTable, n)
		}
		t.index[key] = i
	}

	for i, row := range rows[1:] {
		if !strings.EqualFold(strings.TrimSpace(row[0]), names[i]) {
			return nil, fmt.Errorf("%w: row %d is %q, want %q", ErrMalformedTable, i+1, row[0], names[i])
		}
		t.dist[i] = make([]float64, len(names))
		for j, cell := range row[1:] {
			d, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s/%s: %v", ErrMalformedTable, names[i], names[j], err)
			}
			if d < 0 {
				return nil, fmt.Errorf("%w: negative distance %s/%s", ErrMalformedTable, names[i], names[j])
			}
			t.dist[i][j] = d
		}
	}

	for i := range names {
		if t.dist[i][i] != 0 {
			return nil, fmt.Errorf("%w: %s is not at distance 0 from itself", ErrMalformedTable, names[i])
		}
		for j := i + 1; j < len(names); j++ {
			if t.dist[i][j] != t.dist[j][i] {
				return nil, fmt.Errorf("%w: %s/%s is not symmetric", ErrMalformedTable, names[i], names[j])
			}
		}
	}
	return t, nil
}

// Planets returns the table's planet names in table order.
func (t *Table) Planets() []string {
	return append([]string(nil), t.names...)
}

// Distance returns the distance between two planets, matched case-insensitively.
func (t *Table) Distance(a, b string) (float64, error) {
	i, err := t.lookup(a)
	if err != nil {
		return 0, err
	}
	j, err := t.lookup(b)
	if err != nil {
		return 0, err
	}
	return t.dist[i][j], nil
}

// Within returns, in table order, every planet strictly closer than maxDist
// to anchor. The anchor itself is included when maxDist > 0.
func (t *Table) Within(anchor string, maxDist float64) ([]string, error) {
	i, err := t.lookup(anchor)
	if err != nil {
		return nil, err
	}
	out := []string{}
	for j, d := range t.dist[i] {
		if d < maxDist {
			out = append(out, t.names[j])
		}
	}
	return out, nil
}

// Expand rewrites a question's planet list when it carries a distance.
// The first listed planet is the anchor; the result is every planet within
// PlanetDistance of it. Questions without a distance or without planets
// are returned unchanged. The input question is never modified.
func (t *Table) Expand(q types.Question) (types.Question, error) {
	if q.PlanetDistance == nil || len(q.Planet) == 0 {
		return q, nil
	}
	planets, err := t.Within(q.Planet[0], *q.PlanetDistance)
	if err != nil {
		return q, fmt.Errorf("expanding planet constraint: %w", err)
	}
	out := q.Clone()
	out.Planet = planets
	return out, nil
}

func (t *Table) lookup(name string) (int, error) {
	i, ok := t.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPlanet, name)
	}
	return i, nil
}
