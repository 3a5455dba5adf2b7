package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pawlog/pawlog/internal/handlers"
	"github.com/pawlog/pawlog/internal/models"
)

// NewActivitiesCmd creates the activities command with list and delete
// subcommands
func NewActivitiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activities",
		Short: "Manage the activity log",
		Long:  "List logged activities or delete one by ID.",
	}
	cmd.AddCommand(newActivitiesListCmd())
	cmd.AddCommand(newActivitiesDeleteCmd())
	return cmd
}

func newActivitiesListCmd() *cobra.Command {
	var apiURL string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all logged activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := NewClient(apiURL)

			var list handlers.ListActivitiesResponse
			if err := client.Get("/api/activities", &list); err != nil {
				return err
			}

			if len(list.Activities) == 0 {
				fmt.Println("No activities logged yet")
				return nil
			}

			if list.CurrentPet != "" {
				fmt.Printf("Current pet: %s\n", list.CurrentPet)
			}
			for _, a := range list.Activities {
				fmt.Printf("  [%d] %s  %s  %s %s\n",
					a.ID, a.DateTime.Local().Format("2006-01-02 15:04"), a.PetName, a.Type, formatAmount(a.Type, a.Duration))
			}
			return nil
		},
	}

	addAPIURLFlag(cmd, &apiURL)
	return cmd
}

func newActivitiesDeleteCmd() *cobra.Command {
	var apiURL string

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an activity by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid activity ID %q", args[0])
			}

			client := NewClient(apiURL)
			var deleted models.Activity
			if err := client.Delete(fmt.Sprintf("/api/activities/%d", id), &deleted); err != nil {
				return err
			}

			fmt.Printf("Deleted %s for %s (id %d)\n", deleted.Type, deleted.PetName, deleted.ID)
			return nil
		},
	}

	addAPIURLFlag(cmd, &apiURL)
	return cmd
}

// formatAmount renders an activity amount with its unit: minutes for
// walks, a plain count otherwise
func formatAmount(t models.ActivityType, d float64) string {
	if t == models.ActivityWalk {
		return fmt.Sprintf("%g min", d)
	}
	return fmt.Sprintf("x%g", d)
}
