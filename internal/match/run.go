// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/sourcegraph/conc/iter"
	"go.uber.org/zap"

	"github.com/pdiddy/menu-engine/pkg/types"
)

// ErrNoDistances is reported for a question that asks for a planet distance
// when no distance table was loaded.
var ErrNoDistances = errors.New("planet distance requested but no distance table loaded")

// Expander rewrites a question's planet constraint before matching.
// *planet.Table implements it.
type Expander interface {
	Expand(q types.Question) (types.Question, error)
}

// Evaluate runs one question through planet expansion and matching and
// returns an annotated copy. A data error in expansion is recorded on the
// returned question, which then matches nothing; it never panics or aborts.
func (e *Engine) Evaluate(q types.Question, recipes []types.Recipe, expander Expander) types.Question {
	out := q.Clone()
	out.MatchingRecipes = []string{}

	if q.PlanetDistance != nil && len(q.Planet) > 0 {
		if expander == nil {
			out.Error = ErrNoDistances.Error()
			return out
		}
		expanded, err := expander.Expand(out)
		if err != nil {
			e.logger.Warn("question skipped",
				zap.Int("row_id", q.RowID), zap.Error(err))
			out.Error = err.Error()
			return out
		}
		out = expanded
		if len(out.Planet) == 0 {
			return out
		}
	}

	out.MatchingRecipes = e.Match(out, recipes)
	return out
}

// Run evaluates every question against the catalog using up to workers
// goroutines (zero or less means GOMAXPROCS). Results are returned in question
// order. The catalog is only read. If ctx is cancelled, questions not yet
// started are left unevaluated and ctx.Err() is returned.
func (e *Engine) Run(ctx context.Context, questions []types.Question, recipes []types.Recipe, expander Expander, workers int) ([]types.Question, error) {
	if workers < 0 {
		workers = 0
	}
	mapper := iter.Mapper[types.Question, types.Question]{MaxGoroutines: workers}
	results := mapper.Map(questions, func(q *types.Question) types.Question {
		if ctx.Err() != nil {
			return *q
		}
		return e.Evaluate(*q, recipes, expander)
	})

	if err := ctx.Err(); err != nil {
		return results, fmt.Errorf("matching interrupted: %w", err)
	}
	e.logger.Debug("matching complete",
		zap.Int("questions", len(questions)), zap.Int("recipes", len(recipes)))
	return results, nil
}

// Summary holds counts from a matching run.
type Summary struct {
	Matched   int
	Unmatched int
	Failed    int
}

// Summarize counts matched, unmatched and failed questions.
func Summarize(questions []types.Question) Summary {
	var s Summary
	for _, q := range questions {
		switch {
		case q.Error != "":
			s.Failed++
		case len(q.MatchingRecipes) > 0:
			s.Matched++
		default:
			s.Unmatched++
		}
	}
	return s
}

// Total returns the number of questions processed.
func (s Summary) Total() int {
	return s.Matched + s.Unmatched + s.Failed
}

// HasFailures reports whether any question failed.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}
