package cmd

import (
	"fmt"
	"os"

	"stock-migrator/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "stock-migrator",
	Short: "POS Export Migration Service",
	Long: `Stock Migrator ingests vendor point-of-sale export files (CSV/XLSX),
classifies them by header fingerprint, and normalizes them into a single
aggregate of stores, kiosks, products, customers and transactions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level so CLI errors come out readable with
		// ISO8601 timestamps rather than production JSON.
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
