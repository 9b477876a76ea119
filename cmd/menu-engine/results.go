// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/menu-engine/internal/dish"
	"github.com/pdiddy/menu-engine/internal/store"
	"github.com/pdiddy/menu-engine/pkg/types"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Inspect and export stored matching runs",
	Long: `Results reads the runs stored by match. Use subcommands to list runs,
show the outcome of one run, or export it as YAML or JSON.`,
}

// --- list subcommand ---

var resultsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored runs, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		runs, err := st.Runs(cmd.Context())
		if err != nil {
			return err
		}
		return formatRuns(cmd.OutOrStdout(), runs)
	},
}

func formatRuns(w io.Writer, runs []types.Run) error {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs stored.")
		return nil
	}

	fmt.Fprintf(w, "%-36s  %-16s  %9s  %7s  %7s  %9s  %6s\n",
		"Run", "Created", "Questions", "Recipes", "Matched", "Unmatched", "Failed")
	fmt.Fprintln(w, strings.Repeat("-", 106))
	for _, r := range runs {
		fmt.Fprintf(w, "%-36s  %-16s  %9d  %7d  %7d  %9d  %6d\n",
			r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.Questions, r.Recipes, r.Matched, r.Unmatched, r.Failed)
	}
	fmt.Fprintf(w, "\n%d runs\n", len(runs))
	return nil
}

// --- show subcommand ---

var resultsShowCmd = &cobra.Command{
	Use:   "show [run]",
	Short: "Show per-question results of a run (default: latest)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		run, err := resolveRun(cmd.Context(), st, args)
		if err != nil {
			return err
		}
		questions, err := st.Results(cmd.Context(), run.ID)
		if err != nil {
			return err
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(questions)
		}
		return formatResults(cmd.OutOrStdout(), run, questions)
	},
}

func formatResults(w io.Writer, run types.Run, questions []types.Question) error {
	fmt.Fprintf(w, "run %s (%s)\n\n", run.ID, run.CreatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "%-6s  %-20s  %s\n", "Row", "Result", "Recipes")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, q := range questions {
		result := dish.ResultRow(q.MatchingRecipeIDs)
		if len(result) > 20 {
			result = result[:17] + "..."
		}
		detail := strings.Join(q.MatchingRecipes, ", ")
		if q.Error != "" {
			detail = "error: " + q.Error
		}
		fmt.Fprintf(w, "%-6d  %-20s  %s\n", q.RowID, result, detail)
	}
	return nil
}

// --- export subcommand ---

var resultsExportCmd = &cobra.Command{
	Use:   "export [run]",
	Short: "Export a run to YAML or JSON (default: latest)",
	Long: `Export writes one stored run to <results-dir>/export.yaml or
export.json, including each question's matched recipes, dish ids and
result cell.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		run, err := resolveRun(cmd.Context(), st, args)
		if err != nil {
			return err
		}

		var path string
		switch format {
		case "yaml", "":
			path, err = st.ExportYAML(cmd.Context(), run.ID)
		case "json":
			path, err = st.ExportJSON(cmd.Context(), run.ID)
		default:
			return fmt.Errorf("unsupported format %q: use yaml or json", format)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported run %s to %s\n", run.ID, path)
		return nil
	},
}

// --- shared helpers ---

func openStore() (*store.Store, error) {
	return store.NewStore(types.StoreConfig{ResultsDir: viper.GetString("store.results_dir")})
}

// resolveRun returns the run named by args[0], or the latest run.
func resolveRun(ctx context.Context, st *store.Store, args []string) (types.Run, error) {
	if len(args) > 0 {
		return st.Run(ctx, args[0])
	}
	runs, err := st.Runs(ctx)
	if err != nil {
		return types.Run{}, err
	}
	if len(runs) == 0 {
		return types.Run{}, store.ErrRunNotFound
	}
	return runs[0], nil
}

func init() {
	resultsShowCmd.Flags().Bool("json", false, "output annotated questions as JSON")
	resultsExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	resultsCmd.AddCommand(resultsListCmd)
	resultsCmd.AddCommand(resultsShowCmd)
	resultsCmd.AddCommand(resultsExportCmd)

	rootCmd.AddCommand(resultsCmd)
}
