// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"sort"

	"github.com/pdiddy/menu-engine/internal/canon"
	"github.com/pdiddy/menu-engine/internal/roman"
	"github.com/pdiddy/menu-engine/pkg/types"
)

// Enricher canonicalizes catalog and question fields so that both sides of
// a comparison use the same spelling.
type Enricher struct {
	canon      *canon.Canonicalizer
	classifier *canon.Classifier
	vocab      canon.Vocabularies
}

// NewEnricher returns an Enricher snapping onto vocab with c.
func NewEnricher(c *canon.Canonicalizer, vocab canon.Vocabularies) *Enricher {
	return &Enricher{
		canon:      c,
		classifier: canon.NewClassifier(c, vocab.TechniqueGroups),
		vocab:      vocab,
	}
}

// Restaurants returns canonicalized copies of rs: name, planet and
// licence names are snapped when close enough.
func (e *Enricher) Restaurants(rs []types.Restaurant) []types.Restaurant {
	out := make([]types.Restaurant, len(rs))
	for i, r := range rs {
		r.Name = e.threshold(r.Name, e.vocab.Restaurants)
		r.Planet = e.threshold(r.Planet, e.vocab.Planets)
		r.ChefLicences = e.licences(r.ChefLicences)
		if r.RestrictedIngredients != nil {
			r.RestrictedIngredients = append([]types.RestrictedIngredient(nil), r.RestrictedIngredients...)
		}
		out[i] = r
	}
	return out
}

// Recipes returns canonicalized copies of rs. Techniques, restaurant,
// planet and licence names are snapped when close enough; technique
// groups are always snapped. A recipe with techniques but no technique
// groups gets them derived from its techniques.
func (e *Enricher) Recipes(rs []types.Recipe) []types.Recipe {
	out := make([]types.Recipe, len(rs))
	for i := range rs {
		r := rs[i].Clone()
		r.Ingredients = e.canon.CanonicalizeAll(r.Ingredients, e.vocab.Ingredients, canon.SnapThreshold)
		r.Techniques = e.canon.CanonicalizeAll(r.Techniques, e.vocab.Techniques, canon.SnapThreshold)
		if r.TechniqueGroups == nil && r.Techniques != nil {
			r.TechniqueGroups = dedup(e.classifier.GroupsOf(r.Techniques))
		} else {
			r.TechniqueGroups = dedup(e.canon.CanonicalizeAll(r.TechniqueGroups, e.vocab.TechniqueGroups, canon.SnapAlways))
		}
		r.Restaurant = e.threshold(r.Restaurant, e.vocab.Restaurants)
		r.Planet = e.threshold(r.Planet, e.vocab.Planets)
		r.ChefLicences = e.licences(r.ChefLicences)
		out[i] = r
	}
	return out
}

// Questions returns canonicalized copies of qs. Technique groups are
// always snapped; every other vocabulary-backed field is snapped when
// close enough.
func (e *Enricher) Questions(qs []types.Question) []types.Question {
	out := make([]types.Question, len(qs))
	for i := range qs {
		q := qs[i].Clone()
		e.facet(q.Ingredients, e.vocab.Ingredients, canon.SnapThreshold)
		e.facet(q.Techniques, e.vocab.Techniques, canon.SnapThreshold)
		e.facet(q.TechniqueGroups, e.vocab.TechniqueGroups, canon.SnapAlways)
		e.facet(q.Restaurants, e.vocab.Restaurants, canon.SnapThreshold)
		q.Planet = e.canon.CanonicalizeAll(q.Planet, e.vocab.Planets, canon.SnapThreshold)
		q.LicenceName = e.threshold(q.LicenceName, e.vocab.Licences)
		out[i] = q
	}
	return out
}

// Catalog canonicalizes recipes and restaurants and then joins them, so
// that a restaurant and its recipes meet on the same snapped name even when
// the extracted spelling differs from the vocabulary.
func (e *Enricher) Catalog(recipes []types.Recipe, restaurants []types.Restaurant) []types.Recipe {
	return Join(e.Recipes(recipes), e.Restaurants(restaurants))
}

// facet canonicalizes f in place. f must not be shared.
func (e *Enricher) facet(f *types.Facet, vocab *canon.Vocabulary, mode canon.Mode) {
	if f == nil {
		return
	}
	f.And = e.canon.CanonicalizeAll(f.And, vocab, mode)
	f.Or = e.canon.CanonicalizeAll(f.Or, vocab, mode)
	f.Not = e.canon.CanonicalizeAll(f.Not, vocab, mode)
	f.Exact = e.canon.Canonicalize(f.Exact, vocab, mode)
}

func (e *Enricher) threshold(v string, vocab *canon.Vocabulary) string {
	return e.canon.Canonicalize(v, vocab, canon.SnapThreshold)
}

// licences snaps licence names. When two names snap to the same entry the
// higher level is kept.
func (e *Enricher) licences(held types.Licences) types.Licences {
	if held == nil {
		return nil
	}
	names := make([]string, 0, len(held))
	for name := range held {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(types.Licences, len(held))
	for _, name := range names {
		lvl := held[name]
		key := e.threshold(name, e.vocab.Licences)
		if prev, ok := out[key]; ok && roman.LevelToInt(prev) >= roman.LevelToInt(lvl) {
			continue
		}
		out[key] = lvl
	}
	return out
}

// dedup removes repeated values keeping first-seen order. nil stays nil.
func dedup(values []string) []string {
	if values == nil {
		return nil
	}
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
