package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/krownhq/krown-cli/pkg/config"
	"github.com/krownhq/krown-cli/pkg/logger"
)

var (
	verbose    bool
	configPath string
	outputFmt  string
)

var rootCmd = &cobra.Command{
	Use:   "krown-cli",
	Short: "Krown CLI - Café booking platform administration",
	Long: `Krown CLI is the command-line admin console for the Krown café
booking platform. Inspect bookings and revenue analytics, manage
cafés and their staff, banners, subscription plans and push
notifications directly from the terminal.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := config.Init(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
			os.Exit(1)
		}

		logger.Init(verbose)

		// Save output format to config
		config.SetString("output.format", outputFmt)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ~/.config/krown/cli/config.toml)")
	rootCmd.PersistentFlags().StringVar(&outputFmt, "output", "text", "Output format: text, json, table")

	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(analyticsCmd)
	rootCmd.AddCommand(cafeCmd)
	rootCmd.AddCommand(bannerCmd)
	rootCmd.AddCommand(subscriptionCmd)
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(versionCmd)
}
