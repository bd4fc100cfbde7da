package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hoteldesk/roomrota/pkg/core/services"
)

// PlanDayCmd creates the planDay command
func PlanDayCmd(app *AppContext) *cobra.Command {
	var (
		bathType string
		limits   []string
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "planDay <date>",
		Short: "Compute and store the cleaning allocation plan for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roomLimits, err := parseLimits(limits)
			if err != nil {
				return err
			}

			result, err := services.PlanDay(app.Ctx, app.Database, app.Cfg, app.Logger, services.PlanDayParams{
				TargetDate:       args[0],
				BathTypeOverride: bathType,
				RoomLimits:       roomLimits,
				DryRun:           dryRun,
			})
			if err != nil {
				return err
			}

			if dryRun {
				fmt.Printf("\n✓ Plan computed for %s (dry run, not saved)\n", args[0])
			} else {
				fmt.Printf("\n✓ Plan saved for %s\n", args[0])
			}
			printPlan(result.Result)

			if result.Mismatch != nil {
				fmt.Printf("Inventory mismatches:\n")
				for _, shortfall := range result.Mismatch.Shortfalls {
					fmt.Printf("  ! %s\n", shortfall.String())
				}
				fmt.Println()
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&bathType, "bath-type", "", "Override the bath duty variant (none, normal, with_draining)")
	cmd.Flags().StringArrayVar(&limits, "limit", nil, "Per-staff room limit as staffID=N (positive caps, negative sets a minimum); repeatable")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compute the plan without saving it")

	return cmd
}

// parseLimits parses repeated staffID=N flags into a limit map
func parseLimits(limits []string) (map[string]int, error) {
	if len(limits) == 0 {
		return nil, nil
	}
	parsed := make(map[string]int, len(limits))
	for _, limit := range limits {
		parts := strings.SplitN(limit, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("invalid limit %q, expected staffID=N", limit)
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid limit %q, N must be an integer: %w", limit, err)
		}
		parsed[parts[0]] = n
	}
	return parsed, nil
}
