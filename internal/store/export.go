// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/menu-engine/internal/dish"
	"github.com/pdiddy/menu-engine/pkg/types"
)

// Export is the serialized form of one stored run.
type Export struct {
	Run     types.Run     `json:"run" yaml:"run"`
	Results []ExportEntry `json:"results" yaml:"results"`
}

// ExportEntry holds one question's outcome.
type ExportEntry struct {
	RowID   int            `json:"row_id" yaml:"row_id"`
	Text    string         `json:"text,omitempty" yaml:"text,omitempty"`
	Matches []string       `json:"matching_recipes" yaml:"matching_recipes"`
	IDs     []types.DishID `json:"matching_recipes_ids" yaml:"matching_recipes_ids"`
	Result  string         `json:"result" yaml:"result"`
	Error   string         `json:"error,omitempty" yaml:"error,omitempty"`
}

// ExportYAML writes a run to ResultsDir/export.yaml and returns the path.
func (s *Store) ExportYAML(ctx context.Context, runID string) (string, error) {
	export, err := s.export(ctx, runID)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, "export.yaml")
	data, err := yaml.Marshal(export)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	return path, os.WriteFile(path, data, 0o644)
}

// ExportJSON writes a run to ResultsDir/export.json and returns the path.
func (s *Store) ExportJSON(ctx context.Context, runID string) (string, error) {
	export, err := s.export(ctx, runID)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, "export.json")
	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	return path, os.WriteFile(path, data, 0o644)
}

func (s *Store) export(ctx context.Context, runID string) (Export, error) {
	run, err := s.Run(ctx, runID)
	if err != nil {
		return Export{}, err
	}
	questions, err := s.Results(ctx, run.ID)
	if err != nil {
		return Export{}, fmt.Errorf("querying for export: %w", err)
	}

	entries := make([]ExportEntry, len(questions))
	for i, q := range questions {
		entries[i] = ExportEntry{
			RowID:   q.RowID,
			Text:    q.Text,
			Matches: q.MatchingRecipes,
			IDs:     q.MatchingRecipeIDs,
			Result:  dish.ResultRow(q.MatchingRecipeIDs),
			Error:   q.Error,
		}
	}
	return Export{Run: run, Results: entries}, nil
}
