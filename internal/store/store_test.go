// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/menu-engine/pkg/types"
)

// --- test helpers ---

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.StoreConfig{ResultsDir: filepath.Join(t.TempDir(), "results")})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func sampleResults() []types.Question {
	return []types.Question{
		{RowID: 1, Text: "dishes with tomato", MatchingRecipes: []string{"Pizza", "Stew"}, MatchingRecipeIDs: []types.DishID{"7", "3"}},
		{RowID: 2, MatchingRecipes: []string{}, MatchingRecipeIDs: []types.DishID{}},
		{RowID: 3, Planet: []string{"vulcan"}, Error: "planet not in distance table: \"vulcan\""},
	}
}

// --- schema ---

func TestNewStoreCreatesDatabase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "results")
	s, err := NewStore(types.StoreConfig{ResultsDir: dir})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if _, err := os.Stat(filepath.Join(dir, dbFile)); err != nil {
		t.Errorf("database file not created: %v", err)
	}
	if s.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", s.Dir(), dir)
	}

	// Reopening an existing database keeps the schema.
	s2, err := NewStore(types.StoreConfig{ResultsDir: dir})
	if err != nil {
		t.Fatalf("reopening: %v", err)
	}
	s2.Close()
}

// --- fingerprint ---

func TestFingerprint(t *testing.T) {
	dir := t.TempDir()
	a := writeInput(t, dir, "a.json", `[{"recipe_name": "a"}]`)
	b := writeInput(t, dir, "b.json", `[{"recipe_name": "b"}]`)

	fa, err := Fingerprint([]string{a, ""}, "0.6")
	if err != nil {
		t.Fatal(err)
	}
	again, _ := Fingerprint([]string{a, ""}, "0.6")
	if fa != again {
		t.Error("fingerprint is not deterministic")
	}

	fb, _ := Fingerprint([]string{b, ""}, "0.6")
	if fa == fb {
		t.Error("different contents produced the same fingerprint")
	}

	swapped, _ := Fingerprint([]string{"", a}, "0.6")
	if fa == swapped {
		t.Error("position of an empty input is not significant")
	}

	cutoff, _ := Fingerprint([]string{a, ""}, "0.7")
	if fa == cutoff {
		t.Error("parameters do not change the fingerprint")
	}

	if _, err := Fingerprint([]string{filepath.Join(dir, "missing.json")}); err == nil {
		t.Error("expected error for missing input")
	}
}

// --- runs ---

func TestSaveRunAndResults(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	run, err := s.SaveRun(ctx, "fp1", 12, sampleResults())
	if err != nil {
		t.Fatal(err)
	}
	if run.ID == "" {
		t.Fatal("run id is empty")
	}
	if run.Questions != 3 || run.Recipes != 12 {
		t.Errorf("counts = %d questions, %d recipes", run.Questions, run.Recipes)
	}
	if run.Matched != 1 || run.Unmatched != 1 || run.Failed != 1 {
		t.Errorf("summary = %d/%d/%d, want 1/1/1", run.Matched, run.Unmatched, run.Failed)
	}

	got, err := s.Results(ctx, run.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d results, want 3", len(got))
	}
	if got[0].Text != "dishes with tomato" {
		t.Errorf("text = %q", got[0].Text)
	}
	if len(got[0].MatchingRecipeIDs) != 2 || got[0].MatchingRecipeIDs[0] != "7" || got[0].MatchingRecipeIDs[1] != "3" {
		t.Errorf("ids = %v, want [7 3]", got[0].MatchingRecipeIDs)
	}
	if got[1].MatchingRecipes == nil || len(got[1].MatchingRecipes) != 0 {
		t.Errorf("empty match list not preserved: %#v", got[1].MatchingRecipes)
	}
	if got[2].Error == "" {
		t.Error("error not preserved")
	}
	if len(got[2].Planet) != 1 || got[2].Planet[0] != "vulcan" {
		t.Errorf("question fields not preserved: %v", got[2].Planet)
	}
}

func TestFindRun(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if _, err := s.FindRun(ctx, "none"); !errors.Is(err, ErrRunNotFound) {
		t.Fatalf("err = %v, want ErrRunNotFound", err)
	}

	first, err := s.SaveRun(ctx, "fp", 1, sampleResults())
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.SaveRun(ctx, "fp", 1, sampleResults())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.SaveRun(ctx, "other", 1, nil); err != nil {
		t.Fatal(err)
	}

	found, err := s.FindRun(ctx, "fp")
	if err != nil {
		t.Fatal(err)
	}
	if found.ID != second.ID {
		t.Errorf("FindRun returned %s, want latest %s (first was %s)", found.ID, second.ID, first.ID)
	}
	if found.CreatedAt.IsZero() {
		t.Error("created_at not decoded")
	}
}

func TestRunLookup(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	saved, err := s.SaveRun(ctx, "fp", 1, nil)
	if err != nil {
		t.Fatal(err)
	}

	got, err := s.Run(ctx, saved.ID)
	if err != nil || got.ID != saved.ID {
		t.Fatalf("exact lookup: %v, %v", got.ID, err)
	}
	got, err = s.Run(ctx, saved.ID[:8])
	if err != nil || got.ID != saved.ID {
		t.Fatalf("prefix lookup: %v, %v", got.ID, err)
	}
	if _, err := s.Run(ctx, "zzzz"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("err = %v, want ErrRunNotFound", err)
	}

	if _, err := s.SaveRun(ctx, "fp2", 1, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Run(ctx, ""); !errors.Is(err, ErrAmbiguousRun) {
		t.Errorf("err = %v, want ErrAmbiguousRun", err)
	}
}

func TestRunsNewestFirst(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		run, err := s.SaveRun(ctx, "fp", 1, nil)
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, run.ID)
	}

	runs, err := s.Runs(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}
	for i, run := range runs {
		if want := ids[len(ids)-1-i]; run.ID != want {
			t.Errorf("runs[%d] = %s, want %s", i, run.ID, want)
		}
	}
}

// --- export ---

func TestExportYAML(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	run, err := s.SaveRun(ctx, "fp", 2, sampleResults())
	if err != nil {
		t.Fatal(err)
	}

	path, err := s.ExportYAML(ctx, run.ID)
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(s.Dir(), "export.yaml") {
		t.Errorf("path = %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var export Export
	if err := yaml.Unmarshal(data, &export); err != nil {
		t.Fatal(err)
	}
	if export.Run.ID != run.ID {
		t.Errorf("run id = %s, want %s", export.Run.ID, run.ID)
	}
	if len(export.Results) != 3 {
		t.Fatalf("got %d entries, want 3", len(export.Results))
	}
	want := []string{"7,3", "0", "0"}
	for i, e := range export.Results {
		if e.Result != want[i] {
			t.Errorf("results[%d].Result = %q, want %q", i, e.Result, want[i])
		}
	}
}

func TestExportJSON(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	run, err := s.SaveRun(ctx, "fp", 2, sampleResults()[:1])
	if err != nil {
		t.Fatal(err)
	}

	path, err := s.ExportJSON(ctx, run.ID[:6])
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	var entries []map[string]any
	if err := json.Unmarshal(raw["results"], &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	ids, ok := entries[0]["matching_recipes_ids"].([]any)
	if !ok || len(ids) != 2 || ids[0] != float64(7) {
		t.Errorf("numeric dish ids not exported as numbers: %v", entries[0]["matching_recipes_ids"])
	}

	if _, err := s.ExportJSON(ctx, "missing"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("err = %v, want ErrRunNotFound", err)
	}
}
