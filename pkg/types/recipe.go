// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v3"
)

// Level is a licence level as extracted: a roman numeral, optionally
// suffixed with "+", or a decimal integer. Numbers in JSON and YAML input
// are kept as their decimal text.
type Level string

func (l Level) String() string { return string(l) }

// UnmarshalJSON accepts a JSON string or number.
func (l *Level) UnmarshalJSON(data []byte) error {
	return decodeScalarText(data, (*string)(l))
}

// UnmarshalYAML accepts any YAML scalar.
func (l *Level) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("level: expected scalar at line %d", node.Line)
	}
	if node.Tag != "!!null" {
		*l = Level(node.Value)
	}
	return nil
}

// DishID is the external identifier of a dish. The engine never interprets
// it; numeric ids keep their literal text.
type DishID string

// UnmarshalJSON accepts a JSON string or number.
func (d *DishID) UnmarshalJSON(data []byte) error {
	return decodeScalarText(data, (*string)(d))
}

// MarshalJSON writes numeric ids as JSON numbers and everything else as strings.
func (d DishID) MarshalJSON() ([]byte, error) {
	if isNumber(string(d)) {
		return []byte(d), nil
	}
	return json.Marshal(string(d))
}

// UnmarshalYAML accepts any YAML scalar.
func (d *DishID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("dish id: expected scalar at line %d", node.Line)
	}
	*d = DishID(node.Value)
	return nil
}

func decodeScalarText(data []byte, dst *string) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0, bytes.Equal(trimmed, []byte("null")):
		return nil
	case trimmed[0] == '"':
		return json.Unmarshal(trimmed, dst)
	default:
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return fmt.Errorf("expected string or number, got %s", trimmed)
		}
		*dst = n.String()
		return nil
	}
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	var n json.Number
	return json.Unmarshal([]byte(s), &n) == nil
}

// Licences maps a licence name to the level the chef holds.
type Licences map[string]Level

// licenceEntry is the list form of a held licence.
type licenceEntry struct {
	Name  string `json:"name" yaml:"name"`
	Level Level  `json:"level" yaml:"level"`
}

// UnmarshalJSON accepts an object of name to level or a list of
// {"name", "level"} objects.
func (l *Licences) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var entries []licenceEntry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return fmt.Errorf("chef licences: %w", err)
		}
		*l = licencesFrom(entries)
		return nil
	}
	var m map[string]Level
	if err := json.Unmarshal(trimmed, &m); err != nil {
		return fmt.Errorf("chef licences: %w", err)
	}
	*l = m
	return nil
}

// UnmarshalYAML accepts a mapping of name to level or a sequence of
// name/level mappings.
func (l *Licences) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var entries []licenceEntry
		if err := node.Decode(&entries); err != nil {
			return fmt.Errorf("chef licences: %w", err)
		}
		*l = licencesFrom(entries)
		return nil
	}
	var m map[string]Level
	if err := node.Decode(&m); err != nil {
		return fmt.Errorf("chef licences: %w", err)
	}
	*l = m
	return nil
}

func licencesFrom(entries []licenceEntry) Licences {
	l := make(Licences, len(entries))
	for _, e := range entries {
		if e.Name != "" {
			l[e.Name] = e.Level
		}
	}
	return l
}

// RestrictedIngredient records the quantity of a regulated ingredient used
// by one recipe.
type RestrictedIngredient struct {
	Recipe     string  `json:"recipe" yaml:"recipe"`
	Ingredient string  `json:"ingredient" yaml:"ingredient"`
	Quantity   float64 `json:"quantity" yaml:"quantity"`
}

// Restaurant holds the extracted attributes of one restaurant. They are
// copied onto each of its recipes when the catalog is joined.
type Restaurant struct {
	Name                  string                 `json:"restaurant_name" yaml:"restaurant_name"`
	Planet                string                 `json:"restaurant_planet,omitempty" yaml:"restaurant_planet,omitempty"`
	Group                 string                 `json:"restaurant_group,omitempty" yaml:"restaurant_group,omitempty"`
	ChefLicences          Licences               `json:"chef_licences,omitempty" yaml:"chef_licences,omitempty"`
	RestrictedIngredients []RestrictedIngredient `json:"restricted_ingredients,omitempty" yaml:"restricted_ingredients,omitempty"`
}

// Recipe is one dish joined with its restaurant. A nil slice means the
// attribute was not extracted; an empty slice means it is known to be empty.
type Recipe struct {
	Name            string   `json:"recipe_name" yaml:"recipe_name"`
	Ingredients     []string `json:"recipe_ingredients" yaml:"recipe_ingredients"`
	Techniques      []string `json:"recipe_techniques" yaml:"recipe_techniques"`
	TechniqueGroups []string `json:"recipe_technique_groups" yaml:"recipe_technique_groups"`
	Restaurant      string   `json:"recipe_restaurant,omitempty" yaml:"recipe_restaurant,omitempty"`
	Group           string   `json:"recipe_group,omitempty" yaml:"recipe_group,omitempty"`
	Planet          string   `json:"restaurant_planet,omitempty" yaml:"restaurant_planet,omitempty"`

	ChefLicences          Licences               `json:"chef_licences,omitempty" yaml:"chef_licences,omitempty"`
	RestrictedIngredients []RestrictedIngredient `json:"restricted_ingredients,omitempty" yaml:"restricted_ingredients,omitempty"`
}

// Clone returns a deep copy of r.
func (r Recipe) Clone() Recipe {
	c := r
	c.Ingredients = cloneStrings(r.Ingredients)
	c.Techniques = cloneStrings(r.Techniques)
	c.TechniqueGroups = cloneStrings(r.TechniqueGroups)
	if r.ChefLicences != nil {
		c.ChefLicences = make(Licences, len(r.ChefLicences))
		for k, v := range r.ChefLicences {
			c.ChefLicences[k] = v
		}
	}
	if r.RestrictedIngredients != nil {
		c.RestrictedIngredients = append([]RestrictedIngredient(nil), r.RestrictedIngredients...)
	}
	return c
}
