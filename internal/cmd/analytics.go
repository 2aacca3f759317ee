package cmd

import (
	"github.com/spf13/cobra"

	"github.com/krownhq/krown-cli/pkg/service"
)

var (
	analyticsRange  string
	analyticsSearch string
	analyticsCafe   string
	analyticsPage   int
	exportOut       string
)

var analyticsCmd = &cobra.Command{
	Use:     "analytics",
	Aliases: []string{"bookings"},
	Short:   "Bookings & payments analytics",
	Long:    "Inspect booking revenue, charts and the café leaderboard across calendar windows",
}

var analyticsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the analytics dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewAnalyticsService()
		return svc.Show(analyticsRange, analyticsSearch, analyticsCafe, analyticsPage)
	},
}

var analyticsWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Interactively search bookings",
	Long:  "Type search terms to filter bookings live. Rapid edits collapse into a single request.",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewAnalyticsService()
		return svc.Watch(analyticsRange, analyticsCafe)
	},
}

var analyticsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export bookings as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewAnalyticsService()
		return svc.ExportCSV(analyticsRange, analyticsSearch, analyticsCafe, exportOut)
	},
}

var analyticsPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Export bookings as a print-ready document",
	Long:  "Writes an HTML document that opens the browser's print dialog, capped at 60 bookings",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewAnalyticsService()
		return svc.ExportPrintable(analyticsRange, analyticsSearch, analyticsCafe, exportOut)
	},
}

func init() {
	analyticsCmd.PersistentFlags().StringVarP(&analyticsRange, "range", "r", "7d", "Time window: 7d, 10d, 1m, 3m, 6m, 1y")
	analyticsCmd.PersistentFlags().StringVarP(&analyticsSearch, "search", "s", "", "Filter bookings by customer, café or booking id")
	analyticsCmd.PersistentFlags().StringVar(&analyticsCafe, "cafe", "", "Scope to one café id")

	analyticsShowCmd.Flags().IntVarP(&analyticsPage, "page", "p", 1, "Bookings page (15 per page)")
	analyticsExportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default: export dir from config)")
	analyticsPrintCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default: export dir from config)")

	analyticsCmd.AddCommand(analyticsShowCmd)
	analyticsCmd.AddCommand(analyticsWatchCmd)
	analyticsCmd.AddCommand(analyticsExportCmd)
	analyticsCmd.AddCommand(analyticsPrintCmd)
}
