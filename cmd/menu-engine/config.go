// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/menu-engine/pkg/types"
)

// bindFlag makes a flag one of the sources for a viper key, so values
// resolve as flag, then environment, then config file, then flag default.
func bindFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		fmt.Fprintf(os.Stderr, "binding %s: %v\n", key, err)
	}
}

// pipelineConfig assembles the stage configurations from viper.
func pipelineConfig() types.PipelineConfig {
	return types.PipelineConfig{
		Canon: types.CanonConfig{
			Cutoff:           viper.GetFloat64("canon.cutoff"),
			VocabulariesFile: viper.GetString("canon.vocabularies_file"),
		},
		Catalog: types.CatalogConfig{
			QuestionsFile:   viper.GetString("catalog.questions_file"),
			RecipesFile:     viper.GetString("catalog.recipes_file"),
			RestaurantsFile: viper.GetString("catalog.restaurants_file"),
			DistancesFile:   viper.GetString("catalog.distances_file"),
			LimitsFile:      viper.GetString("catalog.limits_file"),
			DishMappingFile: viper.GetString("catalog.dish_mapping_file"),
		},
		Match: types.MatchConfig{
			Workers:        viper.GetInt("match.workers"),
			OutputFile:     viper.GetString("match.output_file"),
			OutputJSONFile: viper.GetString("match.output_json_file"),
			Force:          viper.GetBool("match.force"),
		},
		Store: types.StoreConfig{
			ResultsDir: viper.GetString("store.results_dir"),
		},
		Logging: types.LoggingConfig{
			Level:       viper.GetString("logging.level"),
			Development: viper.GetBool("logging.development"),
		},
	}
}
