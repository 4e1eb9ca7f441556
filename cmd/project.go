package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/advisor-cli/internal/advisor"
	"github.com/sells-group/advisor-cli/internal/planner"
	"github.com/sells-group/advisor-cli/internal/projection"
)

var (
	projDemo    string
	projProfile string
	projYears   int
	projFormat  string
	projOffline bool
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Run long-term financial projections for a profile",
	Long:  "Projects net worth, income, dividend income and portfolio-return scenarios, and scores retirement readiness.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		profile, err := resolveProfile(projDemo, projProfile)
		if err != nil {
			return err
		}
		if err := profile.Validate(); err != nil {
			return err
		}

		pl := initPlanner(projOffline)
		opts := planner.DefaultOptions()
		opts.Offline = projOffline

		alloc := advisor.Allocate(profile.Age, profile.RiskTolerance)
		recs := pl.Recommend(ctx, profile, opts)

		proj := projection.New(cfg.Projection)
		tracks, err := proj.Run(ctx, profile, alloc, recs, projYears)
		if err != nil {
			return eris.Wrap(err, "run projections")
		}
		readiness := proj.Readiness(profile, tracks.NetWorth)

		if projFormat == "json" {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Projections         any `json:"projections"`
				RetirementReadiness any `json:"retirement_readiness"`
			}{tracks, readiness})
		}
		renderProjections(os.Stdout, tracks, readiness)
		return nil
	},
}

func init() {
	projectCmd.Flags().StringVar(&projDemo, "demo", "", "demo scenario")
	projectCmd.Flags().StringVar(&projProfile, "profile", "", "path to profile JSON file")
	projectCmd.Flags().IntVar(&projYears, "years", -1, "projection horizon in years (default: years to retirement)")
	projectCmd.Flags().StringVar(&projFormat, "format", "console", "output format (console or json)")
	projectCmd.Flags().BoolVar(&projOffline, "offline", false, "skip live market data, use built-in candidates")
	rootCmd.AddCommand(projectCmd)
}
