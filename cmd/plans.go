package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/advisor-cli/internal/model"
	"github.com/sells-group/advisor-cli/internal/store"
)

var (
	plansRisk   string
	plansLimit  int
	plansOffset int
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Inspect stored plans",
}

var plansListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Migrate(ctx); err != nil {
			return eris.Wrap(err, "migrate store")
		}

		headers, err := st.ListPlans(ctx, store.PlanFilter{
			RiskTolerance: model.RiskTolerance(plansRisk),
			Limit:         plansLimit,
			Offset:        plansOffset,
		})
		if err != nil {
			return eris.Wrap(err, "list plans")
		}

		if len(headers) == 0 {
			fmt.Println("no plans stored")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tAGE\tRISK\tNET WORTH\tON TRACK\tCREATED")
		for _, h := range headers {
			fmt.Fprintf(w, "%s\t%d\t%s\t$%.2f\t%t\t%s\n",
				h.ID, h.Age, h.RiskTolerance, h.NetWorth, h.OnTrack,
				h.CreatedAt.Format("2006-01-02 15:04"),
			)
		}
		return w.Flush()
	},
}

var plansShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a stored plan as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		plan, err := st.GetPlan(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "get plan")
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	},
}

func init() {
	plansListCmd.Flags().StringVar(&plansRisk, "risk", "", "filter by risk tolerance")
	plansListCmd.Flags().IntVar(&plansLimit, "limit", 0, "max plans to list (default 50)")
	plansListCmd.Flags().IntVar(&plansOffset, "offset", 0, "pagination offset")
	plansCmd.AddCommand(plansListCmd)
	plansCmd.AddCommand(plansShowCmd)
	rootCmd.AddCommand(plansCmd)
}
