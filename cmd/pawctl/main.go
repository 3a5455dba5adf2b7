package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pawlog/pawlog/cmd/pawctl/commands"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "pawctl",
		Short: "Command-line client for the PawLog API",
		Long:  "CLI tool for logging pet activities and querying summaries, reminders, and the chat assistant",
	}

	rootCmd.AddCommand(commands.NewStatusCmd())
	rootCmd.AddCommand(commands.NewLogCmd())
	rootCmd.AddCommand(commands.NewActivitiesCmd())
	rootCmd.AddCommand(commands.NewSummaryCmd())
	rootCmd.AddCommand(commands.NewReminderCmd())
	rootCmd.AddCommand(commands.NewChatCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
