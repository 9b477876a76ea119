// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/menu-engine/pkg/types"
)

func TestLicenceEqual(t *testing.T) {
	e := newEngine()
	q := types.Question{LicenceName: "licenza psionica (P)", LicenceLevel: "II", LicenceCondition: types.LicenceEqual}

	pass := types.Recipe{Name: "r", ChefLicences: map[string]types.Level{"licenza psionica (P)": "II"}}
	fail := types.Recipe{Name: "r", ChefLicences: map[string]types.Level{"licenza psionica (P)": "III"}}
	assert.True(t, e.Accepts(q, pass))
	assert.False(t, e.Accepts(q, fail))
}

func TestLicenceHigher(t *testing.T) {
	e := newEngine()
	q := types.Question{LicenceName: "licenza psionica (P)", LicenceLevel: "II", LicenceCondition: types.LicenceHigher}

	pass := types.Recipe{Name: "r", ChefLicences: map[string]types.Level{"licenza psionica (P)": "III"}}
	fail := types.Recipe{Name: "r", ChefLicences: map[string]types.Level{"licenza psionica (P)": "I"}}
	assert.True(t, e.Accepts(q, pass))
	assert.False(t, e.Accepts(q, fail))
}

func TestLicenceCombinations(t *testing.T) {
	e := newEngine()
	r := sampleRecipe()

	tests := []struct {
		name  string
		lname string
		level types.Level
		cond  types.LicenceCondition
		want  bool
	}{
		{"name held", "licenza psionica (P)", "", "", true},
		{"name not held", "licenza gravitazionale (G)", "", "", false},
		{"name matched after normalization", "LICENZA PSIONICA (P)", "", "", true},
		{"level higher, all licences pass", "", "II", types.LicenceHigher, true},
		{"level higher, one licence below", "", "III", types.LicenceHigher, false},
		{"level equal, one licence matches", "", "III", types.LicenceEqual, true},
		{"level equal, none matches", "", "IV", types.LicenceEqual, false},
		{"all three, equal passes", "licenza quantica (Q)", "III", types.LicenceEqual, true},
		{"all three, higher fails", "licenza psionica (P)", "III", types.LicenceHigher, false},
		{"all three, named licence missing", "licenza gravitazionale (G)", "I", types.LicenceHigher, false},
		{"level without condition ignored", "", "X", "", true},
		{"condition without level ignored", "", "", types.LicenceHigher, true},
		{"condition is case-insensitive", "licenza psionica (P)", "I", "Higher", true},
		{"decimal level", "licenza quantica (Q)", "3", types.LicenceEqual, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := types.Question{LicenceName: tt.lname, LicenceLevel: tt.level, LicenceCondition: tt.cond}
			assert.Equal(t, tt.want, e.Accepts(q, r))
		})
	}
}

func TestLicenceWithoutChefLicences(t *testing.T) {
	e := newEngine()
	r := types.Recipe{Name: "r"}

	assert.False(t, e.Accepts(types.Question{LicenceName: "licenza psionica (P)"}, r))
	assert.False(t, e.Accepts(types.Question{LicenceLevel: "I", LicenceCondition: types.LicenceHigher}, r))
	assert.True(t, e.Accepts(types.Question{}, r))
}
