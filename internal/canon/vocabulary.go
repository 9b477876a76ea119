// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package canon

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Vocabulary is an immutable ordered set of canonical strings for one
// facet. Normalized forms are computed once at construction.
type Vocabulary struct {
	name       string
	entries    []string
	normalized []string
}

// NewVocabulary builds a vocabulary from entries, dropping exact duplicates
// and keeping first-seen order.
func NewVocabulary(name string, entries ...string) *Vocabulary {
	v := &Vocabulary{name: name}
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e == "" || seen[e] {
			continue
		}
		seen[e] = true
		v.entries = append(v.entries, e)
		v.normalized = append(v.normalized, Normalize(e))
	}
	return v
}

// Name returns the facet the vocabulary belongs to.
func (v *Vocabulary) Name() string { return v.name }

// Len returns the number of entries.
func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}
	return len(v.entries)
}

// Entries returns a copy of the entries in vocabulary order.
func (v *Vocabulary) Entries() []string {
	if v == nil {
		return nil
	}
	return append([]string(nil), v.entries...)
}

// Contains reports whether s is an entry, verbatim.
func (v *Vocabulary) Contains(s string) bool {
	if v == nil {
		return false
	}
	for _, e := range v.entries {
		if e == s {
			return true
		}
	}
	return false
}

// Vocabulary names used in configuration files and on the command line.
const (
	FacetIngredients     = "ingredients"
	FacetTechniques      = "techniques"
	FacetTechniqueGroups = "technique_groups"
	FacetRestaurants     = "restaurants"
	FacetPlanets         = "planets"
	FacetLicences        = "licences"
)

// Vocabularies bundles the closed lists the catalog is canonicalized against.
type Vocabularies struct {
	Ingredients     *Vocabulary
	Techniques      *Vocabulary
	TechniqueGroups *Vocabulary
	Restaurants     *Vocabulary
	Planets         *Vocabulary
	Licences        *Vocabulary
}

// ByName returns the vocabulary for a facet name.
func (vs Vocabularies) ByName(name string) (*Vocabulary, bool) {
	switch name {
	case FacetIngredients:
		return vs.Ingredients, true
	case FacetTechniques:
		return vs.Techniques, true
	case FacetTechniqueGroups:
		return vs.TechniqueGroups, true
	case FacetRestaurants:
		return vs.Restaurants, true
	case FacetPlanets:
		return vs.Planets, true
	case FacetLicences:
		return vs.Licences, true
	}
	return nil, false
}

// vocabularyFile is the on-disk form of a vocabulary override. Lists that
// are absent keep their built-in values.
type vocabularyFile struct {
	Ingredients     []string `yaml:"ingredients"`
	Techniques      []string `yaml:"techniques"`
	TechniqueGroups []string `yaml:"technique_groups"`
	Restaurants     []string `yaml:"restaurants"`
	Planets         []string `yaml:"planets"`
	Licences        []string `yaml:"licences"`
}

// LoadVocabularies reads a YAML override file on top of Default. An empty
// path returns Default unchanged.
func LoadVocabularies(path string) (Vocabularies, error) {
	vs := Default()
	if path == "" {
		return vs, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Vocabularies{}, fmt.Errorf("reading vocabularies %s: %w", path, err)
	}
	var f vocabularyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Vocabularies{}, fmt.Errorf("parsing vocabularies %s: %w", path, err)
	}

	override := func(dst **Vocabulary, name string, entries []string) {
		if entries != nil {
			*dst = NewVocabulary(name, entries...)
		}
	}
	override(&vs.Ingredients, FacetIngredients, f.Ingredients)
	override(&vs.Techniques, FacetTechniques, f.Techniques)
	override(&vs.TechniqueGroups, FacetTechniqueGroups, f.TechniqueGroups)
	override(&vs.Restaurants, FacetRestaurants, f.Restaurants)
	override(&vs.Planets, FacetPlanets, f.Planets)
	override(&vs.Licences, FacetLicences, f.Licences)
	return vs, nil
}
