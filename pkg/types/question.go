// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v3"
)

// LicenceCondition selects how a required licence level is compared with
// the level a chef holds.
type LicenceCondition string

const (
	LicenceEqual  LicenceCondition = "equal"
	LicenceHigher LicenceCondition = "higher"
)

// Facet is one filterable attribute of a question. And, Or and Not are
// evaluated independently; an empty list imposes no constraint.
//
// A facet may also be written as a bare string, which sets Exact and is
// compared with the recipe's scalar field, or as a bare list, which is read
// as Or.
type Facet struct {
	// And lists values that must all be present.
	And []string `json:"and,omitempty" yaml:"and,omitempty"`

	// Or lists values of which at least OrLength must be present.
	Or []string `json:"or,omitempty" yaml:"or,omitempty"`

	// OrLength is the minimum number of Or values required. Zero means 1.
	OrLength int `json:"or_length,omitempty" yaml:"or_length,omitempty"`

	// Not lists values that must all be absent.
	Not []string `json:"not,omitempty" yaml:"not,omitempty"`

	// Exact is a single value the recipe's scalar field must equal.
	Exact string `json:"exact,omitempty" yaml:"exact,omitempty"`
}

// MinOr returns the effective OR threshold.
func (f *Facet) MinOr() int {
	if f == nil || f.OrLength <= 0 {
		return 1
	}
	return f.OrLength
}

// IsEmpty reports whether the facet expresses no constraint at all.
func (f *Facet) IsEmpty() bool {
	return f == nil || (len(f.And) == 0 && len(f.Or) == 0 && len(f.Not) == 0 && f.Exact == "")
}

// facetFields mirrors Facet without methods so decoding does not recurse.
// The misspelled or_lenght key is emitted by some extraction prompts.
type facetFields struct {
	And         []string `json:"and" yaml:"and"`
	Or          []string `json:"or" yaml:"or"`
	OrLength    int      `json:"or_length" yaml:"or_length"`
	OrLengthAlt int      `json:"or_lenght" yaml:"or_lenght"`
	Not         []string `json:"not" yaml:"not"`
	Exact       string   `json:"exact" yaml:"exact"`
}

func (f *Facet) fromFields(ff facetFields) {
	*f = Facet{And: ff.And, Or: ff.Or, OrLength: ff.OrLength, Not: ff.Not, Exact: ff.Exact}
	if f.OrLength == 0 {
		f.OrLength = ff.OrLengthAlt
	}
}

// UnmarshalJSON accepts an object, a string, or a list of strings.
func (f *Facet) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*f = Facet{Exact: s}
	case '[':
		var list []string
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return err
		}
		*f = Facet{Or: list}
	case '{':
		var ff facetFields
		if err := json.Unmarshal(trimmed, &ff); err != nil {
			return err
		}
		f.fromFields(ff)
	default:
		return fmt.Errorf("facet: unexpected JSON value %s", trimmed)
	}
	return nil
}

// UnmarshalYAML accepts a mapping, a scalar, or a sequence of scalars.
func (f *Facet) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil
		}
		*f = Facet{Exact: node.Value}
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*f = Facet{Or: list}
	case yaml.MappingNode:
		var ff facetFields
		if err := node.Decode(&ff); err != nil {
			return err
		}
		f.fromFields(ff)
	default:
		return fmt.Errorf("facet: unexpected YAML node at line %d", node.Line)
	}
	return nil
}

// Question is one client request after extraction. The matching stage
// fills MatchingRecipes, MatchingRecipeIDs and Error.
type Question struct {
	// RowID is the 1-based position of the question in the input batch.
	RowID int `json:"row_id" yaml:"row_id"`

	// Text is the original request, kept for reporting.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	Ingredients     *Facet `json:"ingredients,omitempty" yaml:"ingredients,omitempty"`
	Techniques      *Facet `json:"techniques,omitempty" yaml:"techniques,omitempty"`
	TechniqueGroups *Facet `json:"technique_groups,omitempty" yaml:"technique_groups,omitempty"`
	Restaurants     *Facet `json:"restaurants,omitempty" yaml:"restaurants,omitempty"`
	Groups          *Facet `json:"groups,omitempty" yaml:"groups,omitempty"`

	// Group is a single group the recipe must belong to.
	Group string `json:"group,omitempty" yaml:"group,omitempty"`

	LicenceName      string           `json:"licence_name,omitempty" yaml:"licence_name,omitempty"`
	LicenceLevel     Level            `json:"licence_level,omitempty" yaml:"licence_level,omitempty"`
	LicenceCondition LicenceCondition `json:"licence_condition,omitempty" yaml:"licence_condition,omitempty"`

	// Planet lists acceptable planets. When PlanetDistance is set, only the
	// first entry is meaningful until the distance expansion rewrites it.
	Planet         []string `json:"planet,omitempty" yaml:"planet,omitempty"`
	PlanetDistance *float64 `json:"planet_distance,omitempty" yaml:"planet_distance,omitempty"`

	GalacticCode []string `json:"galactic_code,omitempty" yaml:"galactic_code,omitempty"`

	MatchingRecipes   []string `json:"matching_recipes,omitempty" yaml:"matching_recipes,omitempty"`
	MatchingRecipeIDs []DishID `json:"matching_recipes_ids,omitempty" yaml:"matching_recipes_ids,omitempty"`

	// Error holds a data error scoped to this question, if any.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Clone returns a deep copy of q. Facets and slices are not shared.
func (q Question) Clone() Question {
	c := q
	c.Ingredients = q.Ingredients.clone()
	c.Techniques = q.Techniques.clone()
	c.TechniqueGroups = q.TechniqueGroups.clone()
	c.Restaurants = q.Restaurants.clone()
	c.Groups = q.Groups.clone()
	c.Planet = cloneStrings(q.Planet)
	c.GalacticCode = cloneStrings(q.GalacticCode)
	c.MatchingRecipes = cloneStrings(q.MatchingRecipes)
	if q.PlanetDistance != nil {
		d := *q.PlanetDistance
		c.PlanetDistance = &d
	}
	if q.MatchingRecipeIDs != nil {
		c.MatchingRecipeIDs = append([]DishID(nil), q.MatchingRecipeIDs...)
	}
	return c
}

func (f *Facet) clone() *Facet {
	if f == nil {
		return nil
	}
	return &Facet{
		And:      cloneStrings(f.And),
		Or:       cloneStrings(f.Or),
		OrLength: f.OrLength,
		Not:      cloneStrings(f.Not),
		Exact:    f.Exact,
	}
}

// cloneStrings copies s, keeping nil and empty distinct.
func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append(make([]string, 0, len(s)), s...)
}
