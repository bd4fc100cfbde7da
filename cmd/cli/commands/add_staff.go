package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hoteldesk/roomrota/pkg/db"
)

// AddStaffCmd creates the addStaff command
func AddStaffCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "addStaff <staff_id> <name>",
		Short: "Add a staff member to the roster, or update an existing one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			staff := &db.Staff{ID: args[0], Name: args[1], Active: true}
			if err := app.Database.InsertStaff(app.Ctx, staff); err != nil {
				return err
			}

			fmt.Printf("\n✓ Staff %s (%s) added to the roster\n\n", staff.Name, staff.ID)

			return nil
		},
	}
}
