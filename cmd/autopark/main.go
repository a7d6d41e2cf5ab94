package main

import (
	"os"

	"github.com/spf13/cobra"

	"autopark/internal/interfaces/cli/migrate"
	"autopark/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "autopark",
		Short: "Autopark - vehicle rental ledger",
		Long:  `Autopark ingests rental notifications, keeps the fleet registry consistent with the rental log, and serves the administrative API and financial reports.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
