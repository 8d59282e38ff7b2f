package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemindCommand(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "remind <petID>",
		Short: "Genera y envía un recordatorio al dueño del paciente",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}
			app, cleanup, err := bootstrap(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := app.Pets.RefreshStrict(cmd.Context()); err != nil {
				return fmt.Errorf("load pets: %w", err)
			}
			app.Settings.Refresh(cmd.Context())

			r, err := app.Reminders.SendByID(cmd.Context(), args[0])
			flushNotifications(cmd.OutOrStdout(), app)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s [%s] %s\n", r.ID, r.Type, r.Message)
			return nil
		},
	}
}
