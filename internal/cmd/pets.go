package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPetsCommand(load loader) *cobra.Command {
	c := &cobra.Command{
		Use:   "pets",
		Short: "Pacientes registrados en la clínica",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Lista los pacientes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
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
			items, err := app.Pets.List(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "No patients.")
				return nil
			}
			for _, p := range items {
				fmt.Fprintf(out, "%-10s %-14s %-8s %-16s %-14s %s\n", p.ID, p.Name, p.Species, p.OwnerName, p.OwnerPhone, p.Status)
			}
			return nil
		},
	}

	var yes bool
	del := &cobra.Command{
		Use:   "delete <petID>",
		Short: "Borra un paciente (requiere --yes)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				fmt.Fprintln(cmd.ErrOrStderr(), "Deleting a patient cannot be undone; re-run with --yes to confirm.")
				return errAborted
			}
			cfg, log, err := load()
			if err != nil {
				return err
			}
			app, cleanup, err := bootstrap(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer cleanup()

			err = app.Pets.Delete(cmd.Context(), args[0], yes)
			flushNotifications(cmd.OutOrStdout(), app)
			return err
		},
	}
	del.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the deletion")

	c.AddCommand(list, del)
	return c
}
