package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/inventaria/inventaria/cmd/inventaria/output"
	"github.com/inventaria/inventaria/cmd/inventaria/tui"
)

var (
	dashboardDays        int
	dashboardInteractive bool
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the inventory dashboard",
	Long: `Show the inventory dashboard: stock by category, the movements
timeline, per-country totals and low stock alerts.

With --interactive the dashboard stays open and refreshes on demand.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().BoolVarP(&dashboardInteractive, "interactive", "i", false, "Keep the dashboard open")
	dashboardCmd.Flags().IntVar(&dashboardDays, "days", 7, "Days of movement history")
}

func runDashboard(ctx context.Context) error {
	api, err := newClient()
	if err != nil {
		return err
	}

	if dashboardInteractive {
		return tui.RunDashboard(api, dashboardDays)
	}

	data, err := tui.FetchDashboard(ctx, api, dashboardDays)
	if err != nil {
		log.Error("dashboard fetch failed", "error", err)
		output.Error("%s", userMessage(err))
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}

	fmt.Println(tui.RenderStockChart(data.Stock))
	fmt.Println()
	fmt.Println(tui.RenderTimeline(data.Timeline))
	fmt.Println()
	fmt.Println(tui.RenderSummaries(data.Summaries))
	fmt.Println()
	fmt.Println(tui.RenderAlerts(data.Alerts))
	return nil
}
