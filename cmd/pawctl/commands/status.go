package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pawlog/pawlog/internal/handlers"
)

// NewStatusCmd creates the status command
func NewStatusCmd() *cobra.Command {
	var apiURL string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show API status",
		Long:  "Check that the API is reachable and print its store statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := NewClient(apiURL)

			var status handlers.HealthStatusResponse
			if err := client.Get("/api/health", &status); err != nil {
				return err
			}

			fmt.Println(status.Message)
			fmt.Printf("  Activities logged: %d\n", status.Stats.TotalActivities)
			fmt.Printf("  Chat messages:     %d\n", status.Stats.ChatMessages)
			if status.Stats.CurrentPet != "" {
				fmt.Printf("  Current pet:       %s\n", status.Stats.CurrentPet)
			}
			return nil
		},
	}

	addAPIURLFlag(cmd, &apiURL)
	return cmd
}
