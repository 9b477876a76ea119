// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog loads the extracted questions, recipes and restaurants,
// joins restaurant attributes onto recipes, and canonicalizes free-text
// fields against the closed vocabularies before matching.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/menu-engine/pkg/types"
)

// LoadQuestions reads a list of questions. Questions without a row_id are
// numbered by their 1-based position in the file.
func LoadQuestions(path string) ([]types.Question, error) {
	var qs []types.Question
	if err := decodeFile(path, "questions", &qs); err != nil {
		return nil, err
	}
	for i := range qs {
		if qs[i].RowID == 0 {
			qs[i].RowID = i + 1
		}
	}
	return qs, nil
}

// LoadRecipes reads a list of recipes.
func LoadRecipes(path string) ([]types.Recipe, error) {
	var rs []types.Recipe
	if err := decodeFile(path, "recipes", &rs); err != nil {
		return nil, err
	}
	return rs, nil
}

// LoadRestaurants reads a list of restaurants. An empty path yields no
// restaurants.
func LoadRestaurants(path string) ([]types.Restaurant, error) {
	if path == "" {
		return nil, nil
	}
	var rs []types.Restaurant
	if err := decodeFile(path, "restaurants", &rs); err != nil {
		return nil, err
	}
	return rs, nil
}

// decodeFile decodes a JSON or YAML file into v, choosing the format by
// extension.
func decodeFile(path, what string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", what, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, v)
	default:
		err = json.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("parsing %s %s: %w", what, path, err)
	}
	return nil
}
