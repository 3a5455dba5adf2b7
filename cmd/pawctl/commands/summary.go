package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pawlog/pawlog/internal/models"
)

// NewSummaryCmd creates the summary command
func NewSummaryCmd() *cobra.Command {
	var apiURL string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show today's activity summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := NewClient(apiURL)

			var summary models.Summary
			if err := client.Get("/api/summary", &summary); err != nil {
				return err
			}

			fmt.Println("Today's summary:")
			fmt.Printf("  Walks:       %g min\n", summary.Walks)
			fmt.Printf("  Meals:       %d\n", summary.Meals)
			fmt.Printf("  Medications: %d\n", summary.Medications)
			fmt.Printf("  Total:       %d activities\n", summary.TotalActivities)
			return nil
		},
	}

	addAPIURLFlag(cmd, &apiURL)
	return cmd
}
