package cli

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ozplan/retirement-planner/internal/domain"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in assumption presets",
	Run: func(cmd *cobra.Command, args []string) {
		settings := domain.DefaultSettings()

		names := make([]string, 0, len(settings.Presets))
		for name := range settings.Presets {
			names = append(names, name)
		}
		sort.Strings(names)

		out := cmd.OutOrStdout()
		for _, name := range names {
			p := settings.Presets[name]
			fmt.Fprintf(out, "%s\n", name)
			fmt.Fprintf(out, "  super:     %s%% return, %s%% fee, %s%% earnings tax\n",
				pct(p.SuperReturn), pct(p.SuperFee), pct(p.SuperTax))
			fmt.Fprintf(out, "  portfolio: %s%% return, %s%% fee\n", pct(p.ETFReturn), pct(p.ETFFee))
			fmt.Fprintf(out, "  property:  %s%% growth, %s%% rental growth\n", pct(p.PropertyGrowth), pct(p.RentalGrowth))
			fmt.Fprintf(out, "  economy:   %s%% inflation, %s%% wage growth\n", pct(p.Inflation), pct(p.WageGrowth))
		}
	},
}

func pct(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).StringFixed(2)
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
