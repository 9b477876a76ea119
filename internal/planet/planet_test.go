// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package planet

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/menu-engine/pkg/types"
)

const earthMars = "/,earth,mars\nearth,0,30\nmars,30,0\n"

const threePlanets = `/,Tatooine,Asgard,Namecc
Tatooine,0,120,637
Asgard,120,0,550
Namecc,637,550,0
`

func mustParse(t *testing.T, csv string) *Table {
	t.Helper()
	tbl, err := Parse(strings.NewReader(csv))
	require.NoError(t, err)
	return tbl
}

func dist(d float64) *float64 { return &d }

func TestExpand(t *testing.T) {
	tbl := mustParse(t, earthMars)

	tests := []struct {
		name string
		q    types.Question
		want []string
	}{
		{"within 40 reaches mars", types.Question{Planet: []string{"earth"}, PlanetDistance: dist(40)}, []string{"earth", "mars"}},
		{"within 10 keeps anchor only", types.Question{Planet: []string{"earth"}, PlanetDistance: dist(10)}, []string{"earth"}},
		{"anchor from mars", types.Question{Planet: []string{"mars"}, PlanetDistance: dist(40)}, []string{"earth", "mars"}},
		{"distance is strict", types.Question{Planet: []string{"earth"}, PlanetDistance: dist(30)}, []string{"earth"}},
		{"case-insensitive anchor", types.Question{Planet: []string{"EARTH"}, PlanetDistance: dist(40)}, []string{"earth", "mars"}},
		{"only first planet anchors", types.Question{Planet: []string{"earth", "mars"}, PlanetDistance: dist(10)}, []string{"earth"}},
		{"no distance is a no-op", types.Question{Planet: []string{"earth", "mars"}}, []string{"earth", "mars"}},
		{"no planet is a no-op", types.Question{PlanetDistance: dist(10)}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tbl.Expand(tt.q)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Planet)
		})
	}
}

func TestExpandDoesNotModifyInput(t *testing.T) {
	tbl := mustParse(t, earthMars)
	q := types.Question{Planet: []string{"earth"}, PlanetDistance: dist(40)}
	_, err := tbl.Expand(q)
	require.NoError(t, err)
	assert.Equal(t, []string{"earth"}, q.Planet)
}

func TestExpandUnknownAnchor(t *testing.T) {
	tbl := mustParse(t, earthMars)
	_, err := tbl.Expand(types.Question{Planet: []string{"pluto"}, PlanetDistance: dist(40)})
	assert.ErrorIs(t, err, ErrUnknownPlanet)
}

func TestWithinAndDistance(t *testing.T) {
	tbl := mustParse(t, threePlanets)

	got, err := tbl.Within("asgard", 600)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tatooine", "Asgard", "Namecc"}, got)

	got, err = tbl.Within("Tatooine", 200)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tatooine", "Asgard"}, got)

	got, err = tbl.Within("Tatooine", 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	d, err := tbl.Distance("namecc", "ASGARD")
	require.NoError(t, err)
	assert.Equal(t, 550.0, d)

	_, err = tbl.Distance("namecc", "ego")
	assert.ErrorIs(t, err, ErrUnknownPlanet)

	assert.Equal(t, []string{"Tatooine", "Asgard", "Namecc"}, tbl.Planets())
}

func TestParseMalformed(t *testing.T) {
	tests := map[string]string{
		"empty":          "",
		"missing corner": "x,earth,mars\nearth,0,30\nmars,30,0\n",
		"missing row":    "/,earth,mars\nearth,0,30\n",
		"asymmetric":     "/,earth,mars\nearth,0,30\nmars,31,0\n",
		"diagonal":       "/,earth,mars\nearth,1,30\nmars,30,0\n",
		"negative":       "/,earth,mars\nearth,0,-3\nmars,-3,0\n",
		"not a number":   "/,earth,mars\nearth,0,far\nmars,far,0\n",
		"row order":      "/,earth,mars\nmars,30,0\nearth,0,30\n",
		"ragged":         "/,earth,mars\nearth,0\nmars,30,0\n",
		"duplicate":      "/,earth,Earth\nearth,0,0\nEarth,0,0\n",
	}
	for name, csv := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(csv))
			assert.ErrorIs(t, err, ErrMalformedTable)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "distances.csv")
	require.NoError(t, os.WriteFile(path, []byte(threePlanets), 0o644))

	tbl, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, tbl.Planets(), 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
