package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hoteldesk/roomrota/pkg/core/services"
)

// ImportInventoryCmd creates the importInventory command
func ImportInventoryCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "importInventory <workbook.xlsx> <date>",
		Short: "Import a day's room inventory from an Excel workbook",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.ImportInventory(app.Ctx, app.Database, app.Logger, args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Inventory imported for %s\n\n", args[1])
			fmt.Printf("Rooms:        %d\n", result.RoomCount)
			fmt.Printf("Skipped rows: %d\n", len(result.Warnings))
			for _, warning := range result.Warnings {
				fmt.Printf("  ! %s\n", warning)
			}
			fmt.Println()

			return nil
		},
	}
}
