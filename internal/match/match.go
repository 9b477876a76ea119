// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package match decides which recipes satisfy a question.
//
// Every filter category is mandatory: AND facets, OR facets with their
// threshold, NOT facets, single-value filters, the planet filter, the
// licence filter and the legality filter. A recipe is accepted only when
// all filters the question expresses pass. Matching is boolean; nothing is
// ranked.
package match

import (
	"go.uber.org/zap"

	"github.com/pdiddy/menu-engine/internal/canon"
	"github.com/pdiddy/menu-engine/internal/legal"
	"github.com/pdiddy/menu-engine/pkg/types"
)

// Engine evaluates questions against a read-only recipe catalog. It holds
// no mutable state and is safe for concurrent use.
type Engine struct {
	limits *legal.Limits
	logger *zap.Logger
}

// New returns an Engine. A nil limits table lets every recipe pass the
// legality filter; a nil logger discards output.
func New(limits *legal.Limits, logger *zap.Logger) *Engine {
	if limits == nil {
		limits = legal.NewLimits(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{limits: limits, logger: logger}
}

// Match returns the names of the recipes that satisfy q, in catalog order.
// The result is never nil.
func (e *Engine) Match(q types.Question, recipes []types.Recipe) []string {
	matches := []string{}
	for i := range recipes {
		if e.Accepts(q, recipes[i]) {
			matches = append(matches, recipes[i].Name)
		}
	}
	return matches
}

// Accepts reports whether r satisfies every filter q expresses. Filters run
// cheapest first and stop at the first rejection.
func (e *Engine) Accepts(q types.Question, r types.Recipe) bool {
	return checkAnd(&q, &r) &&
		checkOr(&q, &r) &&
		checkNot(&q, &r) &&
		checkSingleValues(&q, &r) &&
		checkPlanet(&q, &r) &&
		e.checkLicence(&q, &r) &&
		e.checkLegality(&q, &r)
}

// facetField pairs a question facet with the recipe attribute it filters.
type facetField struct {
	name   string
	facet  func(*types.Question) *types.Facet
	values func(*types.Recipe) []string
}

var facetFields = []facetField{
	{
		name:   "ingredients",
		facet:  func(q *types.Question) *types.Facet { return q.Ingredients },
		values: func(r *types.Recipe) []string { return r.Ingredients },
	},
	{
		name:   "techniques",
		facet:  func(q *types.Question) *types.Facet { return q.Techniques },
		values: func(r *types.Recipe) []string { return r.Techniques },
	},
	{
		name:   "technique_groups",
		facet:  func(q *types.Question) *types.Facet { return q.TechniqueGroups },
		values: func(r *types.Recipe) []string { return r.TechniqueGroups },
	},
	{
		name:   "restaurants",
		facet:  func(q *types.Question) *types.Facet { return q.Restaurants },
		values: func(r *types.Recipe) []string { return scalar(r.Restaurant) },
	},
	{
		name:   "groups",
		facet:  func(q *types.Question) *types.Facet { return q.Groups },
		values: func(r *types.Recipe) []string { return scalar(r.Group) },
	},
}

// scalar lifts a single-valued attribute into a set; empty means no data.
func scalar(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}

// valueSet holds normalized attribute values. A nil set means the recipe
// carries no data for the attribute.
type valueSet map[string]struct{}

func newValueSet(values []string) valueSet {
	if values == nil {
		return nil
	}
	s := make(valueSet, len(values))
	for _, v := range values {
		s[canon.Normalize(v)] = struct{}{}
	}
	return s
}

func (s valueSet) has(v string) bool {
	_, ok := s[canon.Normalize(v)]
	return ok
}

// checkAnd requires every AND value to be present.
func checkAnd(q *types.Question, r *types.Recipe) bool {
	for _, ff := range facetFields {
		f := ff.facet(q)
		if f == nil || len(f.And) == 0 {
			continue
		}
		set := newValueSet(ff.values(r))
		if set == nil {
			return false
		}
		for _, v := range f.And {
			if !set.has(v) {
				return false
			}
		}
	}
	return true
}

// checkOr requires at least MinOr of the listed OR values to be present.
// Every listed value counts, repeats included.
func checkOr(q *types.Question, r *types.Recipe) bool {
	for _, ff := range facetFields {
		f := ff.facet(q)
		if f == nil || len(f.Or) == 0 {
			continue
		}
		set := newValueSet(ff.values(r))
		if set == nil {
			return false
		}
		present := 0
		for _, v := range f.Or {
			if set.has(v) {
				present++
			}
		}
		if present < f.MinOr() {
			return false
		}
	}
	return true
}

// checkNot rejects when any NOT value is present. A recipe with no data for
// a constrained facet cannot prove absence and is rejected as well.
func checkNot(q *types.Question, r *types.Recipe) bool {
	for _, ff := range facetFields {
		f := ff.facet(q)
		if f == nil || len(f.Not) == 0 {
			continue
		}
		set := newValueSet(ff.values(r))
		if set == nil {
			return false
		}
		for _, v := range f.Not {
			if set.has(v) {
				return false
			}
		}
	}
	return true
}

// checkSingleValues compares scalar constraints with scalar attributes.
// A filter applies only when both sides are present.
func checkSingleValues(q *types.Question, r *types.Recipe) bool {
	pairs := []struct{ want, have string }{
		{q.Group, r.Group},
		{exact(q.Groups), r.Group},
		{exact(q.Restaurants), r.Restaurant},
	}
	for _, p := range pairs {
		if p.want != "" && p.have != "" && canon.Normalize(p.want) != canon.Normalize(p.have) {
			return false
		}
	}
	return true
}

func exact(f *types.Facet) string {
	if f == nil {
		return ""
	}
	return f.Exact
}

// checkPlanet requires the recipe's planet to be listed when the question
// lists planets.
func checkPlanet(q *types.Question, r *types.Recipe) bool {
	if len(q.Planet) == 0 {
		return true
	}
	if r.Planet == "" {
		return false
	}
	return newValueSet(q.Planet).has(r.Planet)
}

func (e *Engine) checkLegality(q *types.Question, r *types.Recipe) bool {
	if !legal.Requested(q.GalacticCode) {
		return true
	}
	return e.limits.Check(*r)
}
