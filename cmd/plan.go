package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/advisor-cli/internal/demo"
	"github.com/sells-group/advisor-cli/internal/model"
	"github.com/sells-group/advisor-cli/internal/planner"
)

var (
	planDemo    string
	planProfile string
	planYears   int
	planFormat  string
	planOutput  string
	planSave    bool
	planOffline bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a complete financial plan for a profile",
	Long:  "Runs the full pipeline: profile analysis, allocation, stock recommendations, projections, retirement readiness and summary.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		profile, err := resolveProfile(planDemo, planProfile)
		if err != nil {
			return err
		}

		pl := initPlanner(planOffline)
		opts := planner.DefaultOptions()
		opts.Years = planYears
		opts.Offline = planOffline

		plan, err := pl.Plan(ctx, profile, opts)
		if err != nil {
			return eris.Wrap(err, "generate plan")
		}

		if planSave {
			st, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.Migrate(ctx); err != nil {
				return eris.Wrap(err, "migrate store")
			}
			if err := st.SavePlan(ctx, plan); err != nil {
				return eris.Wrap(err, "save plan")
			}
			zap.L().Info("plan saved", zap.String("id", plan.ID))
		}

		return emitPlan(plan, planFormat, planOutput)
	},
}

// resolveProfile loads the run profile from a demo scenario or a JSON file.
// Exactly one source must be given.
func resolveProfile(scenario, path string) (*model.UserProfile, error) {
	switch {
	case scenario != "" && path != "":
		return nil, eris.New("cmd: --demo and --profile are mutually exclusive")
	case scenario != "":
		return demo.Profile(scenario)
	case path != "":
		return model.LoadProfile(path)
	default:
		return nil, eris.Errorf("cmd: a profile is required; use --profile <file> or --demo <%s>", strings.Join(demo.Scenarios(), "|"))
	}
}

func emitPlan(plan *model.Plan, format, output string) error {
	switch format {
	case "json":
		out := os.Stdout
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				return eris.Wrap(err, "create output file")
			}
			defer f.Close()
			out = f
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(plan); err != nil {
			return eris.Wrap(err, "encode plan")
		}
		return nil
	case "console":
		renderPlan(os.Stdout, plan)
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				return eris.Wrap(err, "create output file")
			}
			defer f.Close()
			enc := json.NewEncoder(f)
			enc.SetIndent("", "  ")
			if err := enc.Encode(plan); err != nil {
				return eris.Wrap(err, "encode plan")
			}
		}
		return nil
	default:
		return eris.Errorf("cmd: unknown format %q (want console or json)", format)
	}
}

func init() {
	planCmd.Flags().StringVar(&planDemo, "demo", "", "demo scenario ("+strings.Join(demo.Scenarios(), ", ")+")")
	planCmd.Flags().StringVar(&planProfile, "profile", "", "path to profile JSON file")
	planCmd.Flags().IntVar(&planYears, "years", -1, "projection horizon in years (default: years to retirement)")
	planCmd.Flags().StringVar(&planFormat, "format", "console", "output format (console or json)")
	planCmd.Flags().StringVar(&planOutput, "output", "", "write plan JSON to file")
	planCmd.Flags().BoolVar(&planSave, "save", false, "persist the plan to the configured store")
	planCmd.Flags().BoolVar(&planOffline, "offline", false, "skip live market data, use built-in candidates")
	rootCmd.AddCommand(planCmd)
}
