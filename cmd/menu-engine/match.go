// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/menu-engine/internal/canon"
	"github.com/pdiddy/menu-engine/internal/catalog"
	"github.com/pdiddy/menu-engine/internal/dish"
	"github.com/pdiddy/menu-engine/internal/legal"
	"github.com/pdiddy/menu-engine/internal/logging"
	"github.com/pdiddy/menu-engine/internal/match"
	"github.com/pdiddy/menu-engine/internal/planet"
	"github.com/pdiddy/menu-engine/internal/store"
	"github.com/pdiddy/menu-engine/pkg/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Evaluate every question against the recipe catalog",
	Long: `Match loads questions, recipes and restaurants, joins restaurant
attributes onto recipes, canonicalizes free-text values against the closed
vocabularies, and evaluates every question. Matched recipe names are mapped
to dish ids and written as a row_id,result CSV.

Each run is stored under a fingerprint of its inputs. Running again with
unchanged inputs reuses the stored results unless --force is given.`,
	RunE: runMatch,
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync()

	summary, err := runPipeline(cmd.Context(), cfg, cmd.OutOrStdout(), logger)
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d question(s) failed", summary.Failed)
	}
	return nil
}

// runPipeline evaluates the configured inputs, stores the run, writes the
// outputs, and prints progress to w.
func runPipeline(ctx context.Context, cfg types.PipelineConfig, w io.Writer, logger *zap.Logger) (match.Summary, error) {
	if cfg.Catalog.QuestionsFile == "" || cfg.Catalog.RecipesFile == "" {
		return match.Summary{}, fmt.Errorf("questions and recipes files are required")
	}

	st, err := store.NewStore(cfg.Store)
	if err != nil {
		return match.Summary{}, err
	}
	defer st.Close()

	fingerprint, err := store.Fingerprint([]string{
		cfg.Catalog.QuestionsFile,
		cfg.Catalog.RecipesFile,
		cfg.Catalog.RestaurantsFile,
		cfg.Catalog.DistancesFile,
		cfg.Catalog.LimitsFile,
		cfg.Catalog.DishMappingFile,
		cfg.Canon.VocabulariesFile,
	}, strconv.FormatFloat(canon.New(cfg.Canon).Cutoff(), 'f', -1, 64))
	if err != nil {
		return match.Summary{}, err
	}

	var results []types.Question
	cached := false
	if !cfg.Match.Force {
		run, err := st.FindRun(ctx, fingerprint)
		switch {
		case err == nil:
			fmt.Fprintf(w, "cached  run %s from %s (use --force to re-evaluate)\n",
				run.ID, run.CreatedAt.Local().Format("2006-01-02 15:04"))
			if results, err = st.Results(ctx, run.ID); err != nil {
				return match.Summary{}, err
			}
			cached = true
		case !errors.Is(err, store.ErrRunNotFound):
			return match.Summary{}, err
		}
	}

	if !cached {
		var recipes int
		results, recipes, err = evaluate(ctx, cfg, w, logger)
		if err != nil {
			return match.Summary{}, err
		}
		run, err := st.SaveRun(ctx, fingerprint, recipes, results)
		if err != nil {
			return match.Summary{}, err
		}
		fmt.Fprintf(w, "stored  run %s\n", run.ID)
	}

	if err := writeOutputs(cfg.Match, results, w); err != nil {
		return match.Summary{}, err
	}

	summary := match.Summarize(results)
	for _, q := range results {
		if q.Error != "" {
			fmt.Fprintf(w, "failed  row %d: %s\n", q.RowID, q.Error)
		}
	}
	fmt.Fprintf(w, "\nmatched: %d, unmatched: %d, failed: %d\n",
		summary.Matched, summary.Unmatched, summary.Failed)
	return summary, nil
}

// evaluate loads every input, enriches the catalog and questions, runs
// the matching engine, and maps matches to dish ids. It also returns the
// catalog size.
func evaluate(ctx context.Context, cfg types.PipelineConfig, w io.Writer, logger *zap.Logger) ([]types.Question, int, error) {
	vocab, err := canon.LoadVocabularies(cfg.Canon.VocabulariesFile)
	if err != nil {
		return nil, 0, err
	}
	enricher := catalog.NewEnricher(canon.New(cfg.Canon), vocab)

	restaurants, err := catalog.LoadRestaurants(cfg.Catalog.RestaurantsFile)
	if err != nil {
		return nil, 0, err
	}
	recipes, err := catalog.LoadRecipes(cfg.Catalog.RecipesFile)
	if err != nil {
		return nil, 0, err
	}
	recipes = enricher.Catalog(recipes, restaurants)

	questions, err := catalog.LoadQuestions(cfg.Catalog.QuestionsFile)
	if err != nil {
		return nil, 0, err
	}
	questions = enricher.Questions(questions)
	fmt.Fprintf(w, "loaded  %d questions, %d recipes, %d restaurants\n",
		len(questions), len(recipes), len(restaurants))

	var expander match.Expander
	if cfg.Catalog.DistancesFile != "" {
		table, err := planet.Load(cfg.Catalog.DistancesFile)
		if err != nil {
			return nil, 0, err
		}
		expander = table
	}

	var limits *legal.Limits
	if cfg.Catalog.LimitsFile != "" {
		if limits, err = legal.Load(cfg.Catalog.LimitsFile); err != nil {
			return nil, 0, err
		}
	}

	mapping := dish.NewMapping(nil)
	if cfg.Catalog.DishMappingFile != "" {
		if mapping, err = dish.LoadMapping(cfg.Catalog.DishMappingFile); err != nil {
			return nil, 0, err
		}
	} else {
		logger.Warn("no dish mapping configured; every result will be " + dish.NoMatch)
	}

	engine := match.New(limits, logger)
	results, err := engine.Run(ctx, questions, recipes, expander, cfg.Match.Workers)
	if err != nil {
		return nil, 0, err
	}
	return mapping.Annotate(results), len(recipes), nil
}

// writeOutputs writes the result CSV and, when configured, the annotated
// questions as JSON.
func writeOutputs(cfg types.MatchConfig, results []types.Question, w io.Writer) error {
	if cfg.OutputFile != "" {
		if err := dish.WriteCSVFile(cfg.OutputFile, results); err != nil {
			return err
		}
		fmt.Fprintf(w, "wrote   %s\n", cfg.OutputFile)
	}

	if cfg.OutputJSONFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.OutputJSONFile), 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		if err := os.WriteFile(cfg.OutputJSONFile, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", cfg.OutputJSONFile, err)
		}
		fmt.Fprintf(w, "wrote   %s\n", cfg.OutputJSONFile)
	}
	return nil
}

func init() {
	matchCmd.Flags().String("questions", "data/questions.json", "extracted questions (JSON or YAML)")
	matchCmd.Flags().String("recipes", "data/recipes.json", "extracted recipes (JSON or YAML)")
	matchCmd.Flags().String("restaurants", "", "extracted restaurants joined onto recipes (JSON or YAML)")
	matchCmd.Flags().String("distances", "", "planet distance CSV with a \"/\" header cell")
	matchCmd.Flags().String("limits", "", "legal ingredient limit CSV")
	matchCmd.Flags().String("dish-mapping", "data/dish_mapping.json", "recipe name to dish id mapping (JSON or YAML)")
	matchCmd.Flags().String("vocabularies", "", "YAML file overriding the built-in vocabularies")
	matchCmd.Flags().String("output", "results/output.csv", "result CSV (row_id,result)")
	matchCmd.Flags().String("output-json", "", "optional JSON file of annotated questions")
	matchCmd.Flags().Int("workers", 0, "questions evaluated concurrently (0 = GOMAXPROCS)")
	matchCmd.Flags().Float64("cutoff", canon.DefaultCutoff, "minimum similarity for snapping values onto a vocabulary")
	matchCmd.Flags().Bool("force", false, "re-evaluate even when a stored run has the same inputs")

	bindFlag("catalog.questions_file", matchCmd.Flags().Lookup("questions"))
	bindFlag("catalog.recipes_file", matchCmd.Flags().Lookup("recipes"))
	bindFlag("catalog.restaurants_file", matchCmd.Flags().Lookup("restaurants"))
	bindFlag("catalog.distances_file", matchCmd.Flags().Lookup("distances"))
	bindFlag("catalog.limits_file", matchCmd.Flags().Lookup("limits"))
	bindFlag("catalog.dish_mapping_file", matchCmd.Flags().Lookup("dish-mapping"))
	bindFlag("canon.vocabularies_file", matchCmd.Flags().Lookup("vocabularies"))
	bindFlag("canon.cutoff", matchCmd.Flags().Lookup("cutoff"))
	bindFlag("match.output_file", matchCmd.Flags().Lookup("output"))
	bindFlag("match.output_json_file", matchCmd.Flags().Lookup("output-json"))
	bindFlag("match.workers", matchCmd.Flags().Lookup("workers"))
	bindFlag("match.force", matchCmd.Flags().Lookup("force"))

	rootCmd.AddCommand(matchCmd)
}
