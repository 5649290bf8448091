package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dailydost/dailydost/cmd/habitctl/commands"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "habitctl",
		Short: "Admin tool for the DailyDost API",
		Long:  "CLI tool for inspecting users, habit collections, and statistics in the backing store",
	}

	rootCmd.AddCommand(commands.NewUsersCmd())
	rootCmd.AddCommand(commands.NewHabitsCmd())
	rootCmd.AddCommand(commands.NewStatsCmd())
	rootCmd.AddCommand(commands.NewExportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
