package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/sells-group/advisor-cli/internal/planner"
)

var (
	recDemo    string
	recProfile string
	recFormat  string
	recOffline bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Score and rank stock picks for a profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := resolveProfile(recDemo, recProfile)
		if err != nil {
			return err
		}
		if err := profile.Validate(); err != nil {
			return err
		}

		pl := initPlanner(recOffline)
		opts := planner.DefaultOptions()
		opts.Offline = recOffline

		recs := pl.Recommend(cmd.Context(), profile, opts)

		if recFormat == "json" {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(recs)
		}
		renderRecommendations(os.Stdout, recs)
		return nil
	},
}

func init() {
	recommendCmd.Flags().StringVar(&recDemo, "demo", "", "demo scenario")
	recommendCmd.Flags().StringVar(&recProfile, "profile", "", "path to profile JSON file")
	recommendCmd.Flags().StringVar(&recFormat, "format", "console", "output format (console or json)")
	recommendCmd.Flags().BoolVar(&recOffline, "offline", false, "skip live market data, use built-in candidates")
	rootCmd.AddCommand(recommendCmd)
}
