// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/menu-engine/internal/canon"
	"github.com/pdiddy/menu-engine/internal/roman"
	"github.com/pdiddy/menu-engine/pkg/types"
)

// checkLicence applies the three supported licence constraints:
//
//   - name only: the chef holds the named licence at any level.
//   - level and condition only: "higher" needs every licence the chef
//     holds at or above the level, "equal" needs at least one exactly at it.
//   - name, level and condition: the named licence alone is compared.
//
// A level without a condition, or a condition without a level, is ignored.
func (e *Engine) checkLicence(q *types.Question, r *types.Recipe) bool {
	hasLevel := q.LicenceLevel != "" && q.LicenceCondition != ""
	if q.LicenceName == "" && !hasLevel {
		return true
	}

	if q.LicenceName != "" {
		held, ok := findLicence(r.ChefLicences, q.LicenceName)
		if !ok {
			return false
		}
		if !hasLevel {
			return true
		}
		return e.satisfies(r, q.LicenceName, held, q.LicenceLevel, q.LicenceCondition)
	}

	if len(r.ChefLicences) == 0 {
		return false
	}
	higher := isHigher(q.LicenceCondition)
	for name, held := range r.ChefLicences {
		ok := e.satisfies(r, name, held, q.LicenceLevel, q.LicenceCondition)
		if higher && !ok {
			return false
		}
		if !higher && ok {
			return true
		}
	}
	return higher
}

// satisfies compares one held level with the required level.
func (e *Engine) satisfies(r *types.Recipe, licence string, held, required types.Level, cond types.LicenceCondition) bool {
	have := e.decode(held, zap.String("recipe", r.Name), zap.String("licence", licence))
	want := e.decode(required, zap.String("recipe", r.Name), zap.String("required_licence", licence))
	if isHigher(cond) {
		return have >= want
	}
	return have == want
}

// decode converts a level, logging a warning when it degrades to 0.
func (e *Engine) decode(level types.Level, fields ...zap.Field) int {
	n, ok := roman.Decode(string(level))
	if !ok {
		e.logger.Warn("unparseable licence level, using 0",
			append(fields, zap.String("level", string(level)))...)
	}
	return n
}

// isHigher reports whether cond asks for "at least". Any other value
// compares for equality.
func isHigher(cond types.LicenceCondition) bool {
	return strings.EqualFold(strings.TrimSpace(string(cond)), string(types.LicenceHigher))
}

// findLicence looks up a licence by normalized name.
func findLicence(held map[string]types.Level, name string) (types.Level, bool) {
	if lvl, ok := held[name]; ok {
		return lvl, true
	}
	want := canon.Normalize(name)
	for k, lvl := range held {
		if canon.Normalize(k) == want {
			return lvl, true
		}
	}
	return "", false
}
