package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/advisor-cli/internal/market"
)

var marketFormat string

var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "Show current major market indices",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := market.NewYahoo(cfg.Market, initUniverse())
		quotes, err := client.Indexes(cmd.Context())
		if err != nil {
			return eris.Wrap(err, "cmd: fetch market indices")
		}

		if marketFormat == "json" {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(quotes)
		}

		renderIndexes(os.Stdout, quotes)
		return nil
	},
}

func init() {
	marketCmd.Flags().StringVar(&marketFormat, "format", "console", "output format (console or json)")
	rootCmd.AddCommand(marketCmd)
}
