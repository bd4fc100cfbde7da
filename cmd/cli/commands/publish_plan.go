package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hoteldesk/roomrota/pkg/clients/gmailclient"
	"github.com/hoteldesk/roomrota/pkg/core/services"
)

// PublishPlanCmd creates the publishPlan command
func PublishPlanCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "publishPlan <date>",
		Short: "Email the stored plan for a date to the configured recipients",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Cfg.OAuth == nil {
				return fmt.Errorf("no oauth client configured, cannot send mail")
			}

			mailer, err := gmailclient.NewClient(app.Ctx, app.Cfg.OAuth)
			if err != nil {
				return fmt.Errorf("failed to create gmail client: %w", err)
			}

			if err := services.PublishPlan(app.Ctx, app.Database, mailer, app.Cfg, app.Logger, args[0]); err != nil {
				return err
			}

			fmt.Printf("\n✓ Plan for %s sent to %d recipient(s)\n\n", args[0], len(app.Cfg.PlanRecipients))

			return nil
		},
	}
}
