package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hoteldesk/roomrota/pkg/core/services"
)

// SwapRoomsCmd creates the swapRooms command
func SwapRoomsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "swapRooms <date> <room_a> <staff_a_id> <room_b> <staff_b_id>",
		Short: "Swap one room of each of two staff members in a stored plan",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.SwapRooms(app.Ctx, app.Database, app.Cfg, app.Logger, args[0], args[1], args[2], args[3], args[4])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Swapped room %s (%s) with room %s (%s)\n", args[1], args[2], args[3], args[4])
			printPlan(result)

			return nil
		},
	}
}
