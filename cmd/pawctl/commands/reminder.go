package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pawlog/pawlog/internal/handlers"
)

// NewReminderCmd creates the reminder command
func NewReminderCmd() *cobra.Command {
	var apiURL string

	cmd := &cobra.Command{
		Use:   "reminder",
		Short: "Check the evening walk reminder",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := NewClient(apiURL)

			var reminder handlers.ReminderResponse
			if err := client.Get("/api/reminder", &reminder); err != nil {
				return err
			}

			if reminder.ShowReminder {
				fmt.Println(reminder.Message)
			} else {
				fmt.Println("No reminder right now")
			}
			return nil
		},
	}

	addAPIURLFlag(cmd, &apiURL)
	return cmd
}
