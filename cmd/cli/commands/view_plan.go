package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hoteldesk/roomrota/pkg/core/allocator"
	"github.com/hoteldesk/roomrota/pkg/core/model"
	"github.com/hoteldesk/roomrota/pkg/core/services"
)

// ViewPlanCmd creates the viewPlan command
func ViewPlanCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewPlan <date>",
		Short: "Display the stored cleaning plan for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.LoadPlan(app.Ctx, app.Database, app.Cfg, app.Logger, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\nCleaning plan for %s\n", result.TargetDate)
			printPlan(result)

			return nil
		},
	}
}

// printPlan renders an optimization result as a per-staff breakdown
func printPlan(result *allocator.OptimizationResult) {
	fmt.Println()
	for _, assignment := range result.Assignments {
		bathDuty := ""
		if result.Config != nil && result.Config.BathDutyAssignee == assignment.Staff.ID {
			bathDuty = fmt.Sprintf("  [%s]", result.Config.BathType.Label())
		}

		fmt.Printf("%s (%s)%s\n", assignment.Staff.Name, assignment.Staff.ID, bathDuty)
		fmt.Printf("  Floors: %s   Rooms: %d   Points: %.2f   Adjusted: %.2f\n",
			floorList(assignment.Floors), assignment.TotalRooms, assignment.TotalPoints, assignment.AdjustedScore)

		for _, floorNumber := range assignment.Floors {
			fmt.Printf("  Floor %2d: %s\n", floorNumber, describeFloor(assignment, floorNumber))
		}
		fmt.Println()
	}

	if len(result.Warnings) > 0 {
		fmt.Println("Warnings:")
		for _, warning := range result.Warnings {
			fmt.Printf("  ! %s\n", warning)
		}
		fmt.Println()
	}
}

// describeFloor summarizes one floor of an assignment: aggregate counts plus
// the concrete room numbers when the detailed list is present
func describeFloor(assignment *allocator.StaffAssignment, floorNumber int) string {
	alloc := assignment.RoomsByFloor[floorNumber]

	var parts []string
	for _, t := range model.RoomTypeOrder {
		if n := alloc.RoomCounts[t]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, t))
		}
	}
	if alloc.EcoRooms > 0 {
		parts = append(parts, fmt.Sprintf("%d eco", alloc.EcoRooms))
	}
	summary := strings.Join(parts, ", ")

	var numbers []string
	for _, room := range assignment.Rooms {
		if room.Floor == floorNumber {
			numbers = append(numbers, room.RoomNumber)
		}
	}
	if len(numbers) > 0 {
		sort.Strings(numbers)
		summary += "  (" + strings.Join(numbers, " ") + ")"
	}

	return summary
}

func floorList(floors []int) string {
	parts := make([]string, len(floors))
	for i, floor := range floors {
		parts[i] = fmt.Sprintf("%d", floor)
	}
	return strings.Join(parts, ", ")
}
