// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"github.com/pdiddy/menu-engine/internal/canon"
	"github.com/pdiddy/menu-engine/pkg/types"
)

// Join copies restaurant attributes onto every recipe whose
// recipe_restaurant names that restaurant. Names are compared after
// normalization. The restaurant's planet, chef licences and restricted
// ingredients replace the recipe's when present; its group fills an empty
// recipe group. Inputs are not modified.
func Join(recipes []types.Recipe, restaurants []types.Restaurant) []types.Recipe {
	byName := make(map[string]*types.Restaurant, len(restaurants))
	for i := range restaurants {
		byName[canon.Normalize(restaurants[i].Name)] = &restaurants[i]
	}

	out := make([]types.Recipe, len(recipes))
	for i := range recipes {
		r := recipes[i].Clone()
		if rest, ok := byName[canon.Normalize(r.Restaurant)]; ok && r.Restaurant != "" {
			joinRestaurant(&r, rest)
		}
		out[i] = r
	}
	return out
}

func joinRestaurant(r *types.Recipe, rest *types.Restaurant) {
	if rest.Planet != "" {
		r.Planet = rest.Planet
	}
	if r.Group == "" {
		r.Group = rest.Group
	}
	if rest.ChefLicences != nil {
		r.ChefLicences = make(types.Licences, len(rest.ChefLicences))
		for k, v := range rest.ChefLicences {
			r.ChefLicences[k] = v
		}
	}
	if rest.RestrictedIngredients != nil {
		r.RestrictedIngredients = append([]types.RestrictedIngredient(nil), rest.RestrictedIngredients...)
	}
}
