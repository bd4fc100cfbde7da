package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListStaffCmd creates the listStaff command
func ListStaffCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listStaff",
		Short: "List the active housekeeping staff roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			staff, err := app.Database.GetStaff(app.Ctx)
			if err != nil {
				return err
			}

			if len(staff) == 0 {
				fmt.Println("\nNo active staff on the roster")
				return nil
			}

			fmt.Printf("\nActive staff (%d):\n", len(staff))
			for _, s := range staff {
				fmt.Printf("  %-12s %s\n", s.ID, s.Name)
			}
			fmt.Println()

			return nil
		},
	}
}
