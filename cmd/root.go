package cmd

import (
	"fmt"
	"os"

	"shopping-agent/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// outputPath is where CLI commands write their JSON result. Empty means stdout.
var outputPath string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "shopping-agent",
	Short: "Shopping Agent Service",
	Long: `Shopping Agent detects products in images and compares listings
across shopping platforms. Run "start" for the HTTP API or use the
subcommands directly from the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding at debug level gives ISO8601 timestamps for CLI users
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Write the JSON result to a file instead of stdout")
}
