// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/menu-engine/internal/legal"
	"github.com/pdiddy/menu-engine/pkg/types"
)

// --- test helpers ---

func sampleRecipe() types.Recipe {
	return types.Recipe{
		Name:            "recipe1",
		Ingredients:     []string{"tomato", "cheese", "basil"},
		Techniques:      []string{"baking", "grilling"},
		TechniqueGroups: []string{"group1", "group2"},
		Group:           "groupA",
		Restaurant:      "restaurant1",
		Planet:          "planet1",
		ChefLicences: map[string]types.Level{
			"licenza psionica (P)": "II",
			"licenza quantica (Q)": "III",
		},
		RestrictedIngredients: []types.RestrictedIngredient{
			{Recipe: "recipe1", Ingredient: "Erba Pipa", Quantity: 5},
			{Recipe: "recipe1", Ingredient: "Cristalli di Memoria", Quantity: 6},
		},
	}
}

func questionAnd() types.Question {
	return types.Question{
		Ingredients:      &types.Facet{And: []string{"tomato", "cheese"}, Not: []string{"meat"}},
		Techniques:       &types.Facet{And: []string{"baking"}, Not: []string{"frying"}},
		TechniqueGroups:  &types.Facet{And: []string{"group1"}, Not: []string{"group3"}},
		Group:            "groupA",
		Restaurants:      &types.Facet{Exact: "restaurant1"},
		Planet:           []string{"planet1", "planet2"},
		LicenceName:      "licenza psionica (P)",
		LicenceLevel:     "II",
		LicenceCondition: types.LicenceHigher,
	}
}

func questionOr() types.Question {
	return types.Question{
		Ingredients:      &types.Facet{Or: []string{"basil", "cheese", "banana"}, OrLength: 2, Not: []string{"meat"}},
		Techniques:       &types.Facet{Or: []string{"grilling"}, Not: []string{"frying"}},
		TechniqueGroups:  &types.Facet{Or: []string{"group2"}, Not: []string{"group3"}},
		Group:            "groupA",
		Restaurants:      &types.Facet{Exact: "restaurant1"},
		Planet:           []string{"planet1"},
		LicenceName:      "licenza psionica (P)",
		LicenceLevel:     "II",
		LicenceCondition: types.LicenceHigher,
	}
}

func newEngine() *Engine {
	return New(legal.NewLimits(map[string]float64{"Erba Pipa": 10, "Cristalli di Memoria": 5}), nil)
}

// --- filter tests ---

func TestAcceptsSampleQuestions(t *testing.T) {
	e := newEngine()
	assert.True(t, e.Accepts(questionAnd(), sampleRecipe()))
	assert.True(t, e.Accepts(questionOr(), sampleRecipe()))
}

func TestEmptyFacetsImposeNoConstraint(t *testing.T) {
	e := newEngine()
	empty := &types.Facet{And: []string{}, Or: []string{}, Not: []string{}}
	q := types.Question{Ingredients: empty, Techniques: &types.Facet{}, TechniqueGroups: nil}

	recipes := []types.Recipe{
		sampleRecipe(),
		{Name: "bare"},
		{Name: "empty", Ingredients: []string{}},
	}
	assert.Equal(t, []string{"recipe1", "bare", "empty"}, e.Match(q, recipes))
	assert.Equal(t, []string{"recipe1", "bare", "empty"}, e.Match(types.Question{}, recipes))
}

func TestAndFacet(t *testing.T) {
	e := newEngine()
	q := types.Question{Ingredients: &types.Facet{And: []string{"a", "b"}}}

	tests := []struct {
		name        string
		ingredients []string
		want        bool
	}{
		{"exact set", []string{"a", "b"}, true},
		{"superset", []string{"c", "b", "a"}, true},
		{"missing one", []string{"a", "c"}, false},
		{"empty", []string{}, false},
		{"no data", nil, false},
		{"punctuation is significant", []string{"A", "B!"}, false},
		{"case tolerant", []string{"A", "B"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := types.Recipe{Name: "r", Ingredients: tt.ingredients}
			assert.Equal(t, tt.want, e.Accepts(q, r))
		})
	}
}

func TestOrFacet(t *testing.T) {
	e := newEngine()
	q := types.Question{Ingredients: &types.Facet{Or: []string{"a", "b", "c"}, OrLength: 2}}

	tests := []struct {
		name        string
		ingredients []string
		want        bool
	}{
		{"two of three", []string{"a", "c"}, true},
		{"all three", []string{"a", "b", "c"}, true},
		{"only one", []string{"a", "x"}, false},
		{"none", []string{"x"}, false},
		{"no data", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := types.Recipe{Name: "r", Ingredients: tt.ingredients}
			assert.Equal(t, tt.want, e.Accepts(q, r))
		})
	}

	// Default threshold is plain disjunction.
	q.Ingredients.OrLength = 0
	assert.True(t, e.Accepts(q, types.Recipe{Name: "r", Ingredients: []string{"b"}}))

	// Every listed value counts, so a repeated value can meet the threshold.
	dup := types.Question{Ingredients: &types.Facet{Or: []string{"a", "a"}, OrLength: 2}}
	assert.True(t, e.Accepts(dup, types.Recipe{Name: "r", Ingredients: []string{"a"}}))
	assert.False(t, e.Accepts(dup, types.Recipe{Name: "r", Ingredients: []string{"b"}}))
}

func TestOrLengthThree(t *testing.T) {
	q := questionOr()
	q.Ingredients.OrLength = 3
	assert.False(t, newEngine().Accepts(q, sampleRecipe()))
}

func TestNotFacetOverridesAndOr(t *testing.T) {
	e := newEngine()
	r := types.Recipe{Name: "r", Ingredients: []string{"a", "b", "meat"}}

	q := types.Question{Ingredients: &types.Facet{And: []string{"a"}, Or: []string{"b"}}}
	assert.True(t, e.Accepts(q, r))

	q.Ingredients.Not = []string{"meat"}
	assert.False(t, e.Accepts(q, r))

	assert.False(t, e.Accepts(q, types.Recipe{Name: "nodata"}), "no data cannot prove absence")
}

func TestAndAndOrBothApply(t *testing.T) {
	e := newEngine()
	q := types.Question{Techniques: &types.Facet{And: []string{"x"}, Or: []string{"y", "z"}}}

	assert.True(t, e.Accepts(q, types.Recipe{Name: "r", Techniques: []string{"x", "z"}}))
	assert.False(t, e.Accepts(q, types.Recipe{Name: "r", Techniques: []string{"x"}}))
	assert.False(t, e.Accepts(q, types.Recipe{Name: "r", Techniques: []string{"y", "z"}}))
}

func TestRestaurantAndGroupFacets(t *testing.T) {
	e := newEngine()
	r := sampleRecipe()

	assert.True(t, e.Accepts(types.Question{Restaurants: &types.Facet{Or: []string{"restaurant1", "restaurant9"}}}, r))
	assert.False(t, e.Accepts(types.Question{Restaurants: &types.Facet{Not: []string{"restaurant1"}}}, r))
	assert.False(t, e.Accepts(types.Question{Restaurants: &types.Facet{And: []string{"restaurant1"}}}, types.Recipe{Name: "x"}))
	assert.True(t, e.Accepts(types.Question{Groups: &types.Facet{And: []string{"groupA"}}}, r))
	assert.False(t, e.Accepts(types.Question{Groups: &types.Facet{Or: []string{"groupB"}}}, r))
}

func TestSingleValueFilters(t *testing.T) {
	e := newEngine()
	r := sampleRecipe()

	assert.False(t, e.Accepts(types.Question{Group: "groupB"}, r))
	assert.True(t, e.Accepts(types.Question{Group: "GroupA"}, r))
	assert.False(t, e.Accepts(types.Question{Restaurants: &types.Facet{Exact: "restaurant2"}}, r))
	assert.False(t, e.Accepts(types.Question{Groups: &types.Facet{Exact: "groupB"}}, r))

	// Only applied when the recipe has the attribute.
	assert.True(t, e.Accepts(types.Question{Group: "groupB"}, types.Recipe{Name: "nogroup"}))
}

func TestPlanetFilter(t *testing.T) {
	e := newEngine()
	r := sampleRecipe()

	assert.True(t, e.Accepts(types.Question{Planet: []string{"planet2", "Planet1"}}, r))
	assert.False(t, e.Accepts(types.Question{Planet: []string{"planet2"}}, r))
	assert.False(t, e.Accepts(types.Question{Planet: []string{"planet1"}}, types.Recipe{Name: "noplanet"}))
	assert.True(t, e.Accepts(types.Question{Planet: []string{}}, r))
}

func TestLegalityFilter(t *testing.T) {
	e := New(legal.NewLimits(map[string]float64{"X": 5}), nil)
	q := types.Question{GalacticCode: []string{legal.Marker}}

	over := types.Recipe{Name: "r", RestrictedIngredients: []types.RestrictedIngredient{{Recipe: "r", Ingredient: "X", Quantity: 6}}}
	under := types.Recipe{Name: "r", RestrictedIngredients: []types.RestrictedIngredient{{Recipe: "r", Ingredient: "X", Quantity: 4}}}

	assert.False(t, e.Accepts(q, over))
	assert.True(t, e.Accepts(q, under))
	assert.True(t, e.Accepts(types.Question{}, over), "legality only applies when requested")
	assert.True(t, e.Accepts(types.Question{GalacticCode: []string{"corrette licenze e certificazioni"}}, over))
}

func TestLegalityFilterOnSample(t *testing.T) {
	e := newEngine()
	q := questionAnd()
	q.GalacticCode = []string{"quantita legali"}
	r := sampleRecipe()
	assert.False(t, e.Accepts(q, r))

	r.RestrictedIngredients[1].Quantity = 4
	assert.True(t, e.Accepts(q, r))
}

func TestMatchPreservesCatalogOrder(t *testing.T) {
	e := newEngine()
	q := types.Question{Ingredients: &types.Facet{And: []string{"a"}}}
	recipes := []types.Recipe{
		{Name: "z", Ingredients: []string{"a"}},
		{Name: "m", Ingredients: []string{"b"}},
		{Name: "a", Ingredients: []string{"a", "b"}},
	}
	assert.Equal(t, []string{"z", "a"}, e.Match(q, recipes))
	assert.Equal(t, []string{}, e.Match(q, nil))
}

func TestNewDefaults(t *testing.T) {
	e := New(nil, nil)
	q := types.Question{GalacticCode: []string{legal.Marker}}
	r := types.Recipe{Name: "r", RestrictedIngredients: []types.RestrictedIngredient{{Recipe: "r", Ingredient: "X", Quantity: 600}}}
	assert.True(t, e.Accepts(q, r))
}

func TestUnparseableLevelLogsWarning(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	e := New(nil, zap.New(core))

	q := types.Question{LicenceName: "P", LicenceLevel: "I", LicenceCondition: types.LicenceHigher}
	r := types.Recipe{Name: "r", ChefLicences: map[string]types.Level{"P": "???"}}

	assert.False(t, e.Accepts(q, r))
	entries := logs.FilterMessage("unparseable licence level, using 0").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "???", entries[0].ContextMap()["level"])
		assert.Equal(t, "r", entries[0].ContextMap()["recipe"])
	}
}
