package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pawlog/pawlog/internal/handlers"
	"github.com/pawlog/pawlog/internal/models"
	"github.com/pawlog/pawlog/internal/validation"
)

// NewLogCmd creates the log command
func NewLogCmd() *cobra.Command {
	var apiURL, activityType, at string
	var duration float64

	cmd := &cobra.Command{
		Use:   "log <pet-name>",
		Short: "Log an activity",
		Long:  "Log a walk, meal, or medication for a pet. Duration is minutes for walks and a count for meals and medications.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			petName := args[0]

			if activityType == "" {
				return fmt.Errorf("required flag: --type (walk, meal, or medication)")
			}
			if err := validation.ValidateActivityType(activityType); err != nil {
				return err
			}
			if duration <= 0 {
				return fmt.Errorf("--duration must be greater than zero")
			}

			req := handlers.CreateActivityRequest{
				PetName:      petName,
				ActivityType: activityType,
				Duration:     &duration,
			}
			if at != "" {
				when, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("--at must be RFC3339 (e.g. 2026-08-24T18:30:00Z): %w", err)
				}
				req.DateTime = &when
			}

			client := NewClient(apiURL)
			var activity models.Activity
			if err := client.Post("/api/activities", req, &activity); err != nil {
				return err
			}

			fmt.Printf("Logged %s for %s: %s (id %d)\n",
				activity.Type, activity.PetName, formatAmount(activity.Type, activity.Duration), activity.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&activityType, "type", "", "Activity type: walk, meal, or medication (required)")
	cmd.Flags().Float64Var(&duration, "duration", 0, "Minutes for walks, count for meals and medications (required)")
	cmd.Flags().StringVar(&at, "at", "", "Activity time as RFC3339 (defaults to now)")
	addAPIURLFlag(cmd, &apiURL)

	return cmd
}
