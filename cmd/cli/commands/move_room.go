package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hoteldesk/roomrota/pkg/core/services"
)

// MoveRoomCmd creates the moveRoom command
func MoveRoomCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "moveRoom <date> <room_number> <from_staff_id> <to_staff_id>",
		Short: "Move one room of a stored plan to a different staff member",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.MoveRoom(app.Ctx, app.Database, app.Cfg, app.Logger, args[0], args[1], args[2], args[3])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Room %s moved from %s to %s\n", args[1], args[2], args[3])
			printPlan(result)

			return nil
		},
	}
}
