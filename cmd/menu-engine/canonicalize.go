// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/menu-engine/internal/canon"
	"github.com/pdiddy/menu-engine/pkg/types"
)

var canonicalizeCmd = &cobra.Command{
	Use:   "canonicalize <vocabulary> <value...>",
	Short: "Show how values snap onto a vocabulary",
	Long: `Canonicalize prints the closest vocabulary entry for each value, its
similarity ratio, and the value matching would actually use. Vocabularies:
ingredients, techniques, technique_groups, restaurants, planets, licences.

For technique_groups the keyword classifier is applied as it is for recipes.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		always, _ := cmd.Flags().GetBool("always")

		vocabs, err := canon.LoadVocabularies(viper.GetString("canon.vocabularies_file"))
		if err != nil {
			return err
		}
		vocab, ok := vocabs.ByName(args[0])
		if !ok {
			return fmt.Errorf("unknown vocabulary %q", args[0])
		}

		c := canon.New(types.CanonConfig{Cutoff: viper.GetFloat64("canon.cutoff")})
		mode := canon.SnapThreshold
		if always || args[0] == canon.FacetTechniqueGroups {
			mode = canon.SnapAlways
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s (%d entries, cutoff %.2f, %s)\n", vocab.Name(), vocab.Len(), c.Cutoff(), mode)
		fmt.Fprintln(w, strings.Repeat("-", 80))
		for _, value := range args[1:] {
			entry, ratio, _ := c.Best(value, vocab)
			result := c.Canonicalize(value, vocab, mode)
			if args[0] == canon.FacetTechniqueGroups {
				result = canon.NewClassifier(c, vocab).GroupsOf([]string{value})[0]
			}
			fmt.Fprintf(w, "%-40s -> %-40s  nearest %q (%.3f)\n", value, result, entry, ratio)
		}
		return nil
	},
}

func init() {
	canonicalizeCmd.Flags().Bool("always", false, "snap to the nearest entry regardless of the cutoff")

	rootCmd.AddCommand(canonicalizeCmd)
}
