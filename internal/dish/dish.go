// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dish maps matched recipe names to external dish identifiers and
// renders the one-row-per-question result export.
package dish

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/menu-engine/internal/canon"
	"github.com/pdiddy/menu-engine/pkg/types"
)

// NoMatch is the result cell written for a question with no mapped dish.
const NoMatch = "0"

// Mapping resolves recipe names to dish ids. Lookups ignore case,
// punctuation, accents and trailing "_" fillers.
type Mapping struct {
	ids map[string]types.DishID
}

// NewMapping builds a Mapping from recipe name to dish id.
func NewMapping(m map[string]types.DishID) *Mapping {
	ids := make(map[string]types.DishID, len(m))
	for name, id := range m {
		ids[key(name)] = id
	}
	return &Mapping{ids: ids}
}

// LoadMapping reads a name-to-id object from a JSON or YAML file. The
// format is chosen by extension; anything other than .yaml or .yml is
// read as JSON.
func LoadMapping(path string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dish mapping: %w", err)
	}

	var m map[string]types.DishID
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &m)
	default:
		err = json.Unmarshal(data, &m)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing dish mapping %s: %w", path, err)
	}
	return NewMapping(m), nil
}

// Len returns the number of mapped names.
func (m *Mapping) Len() int { return len(m.ids) }

// Lookup returns the id for one recipe name.
func (m *Mapping) Lookup(name string) (types.DishID, bool) {
	id, ok := m.ids[key(name)]
	return id, ok
}

// Map returns the ids of the given recipe names in the same order.
// Names with no mapping are dropped. The result is never nil.
func (m *Mapping) Map(names []string) []types.DishID {
	ids := make([]types.DishID, 0, len(names))
	for _, name := range names {
		if id, ok := m.Lookup(name); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Annotate returns copies of questions with MatchingRecipeIDs filled from
// their MatchingRecipes.
func (m *Mapping) Annotate(questions []types.Question) []types.Question {
	out := make([]types.Question, len(questions))
	for i := range questions {
		out[i] = questions[i].Clone()
		out[i].MatchingRecipeIDs = m.Map(questions[i].MatchingRecipes)
	}
	return out
}

func key(name string) string {
	return strings.TrimRight(canon.Normalize(strings.TrimRight(name, "_")), "_")
}

// ResultRow renders the result cell for one question: the id itself when
// there is exactly one, a comma-joined list when there are several, and
// NoMatch when there are none.
func ResultRow(ids []types.DishID) string {
	if len(ids) == 0 {
		return NoMatch
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ",")
}

// WriteCSV writes the result export with header "row_id,result". Each row
// carries its question's RowID; a question without one is numbered by its
// position from 1.
func WriteCSV(w io.Writer, questions []types.Question) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"row_id", "result"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, q := range questions {
		row := q.RowID
		if row <= 0 {
			row = i + 1
		}
		if err := cw.Write([]string{strconv.Itoa(row), ResultRow(q.MatchingRecipeIDs)}); err != nil {
			return fmt.Errorf("writing row %d: %w", row, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the result export to path, creating parent
// directories as needed.
func WriteCSVFile(path string, questions []types.Question) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteCSV(f, questions); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
