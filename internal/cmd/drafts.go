package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDraftsCommand(load loader) *cobra.Command {
	c := &cobra.Command{
		Use:   "drafts",
		Short: "Borradores de mensajes pendientes de revisión",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Lista los borradores pendientes",
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

			if err := app.Campaigns.RefreshDraftsStrict(cmd.Context()); err != nil {
				return fmt.Errorf("load drafts: %w", err)
			}
			items, err := app.Campaigns.ListDrafts(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "No pending drafts.")
				return nil
			}
			for _, d := range items {
				fmt.Fprintf(out, "%-10s %-12s %-14s %-16s %s\n", d.ID, d.Type, d.PetName, d.OwnerName, d.DraftMessage)
			}
			return nil
		},
	}

	process := func(approved bool) *cobra.Command {
		use, short := "approve <draftID>", "Aprueba y envía un borrador"
		if !approved {
			use, short = "reject <draftID>", "Rechaza un borrador"
		}
		var message string
		pc := &cobra.Command{
			Use:   use,
			Short: short,
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

				err = app.Campaigns.ProcessDraft(cmd.Context(), args[0], approved, message)
				flushNotifications(cmd.OutOrStdout(), app)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Draft %s processed.\n", args[0])
				return nil
			},
		}
		pc.Flags().StringVarP(&message, "message", "m", "", "replacement text for the draft")
		return pc
	}

	wishes := &cobra.Command{
		Use:   "auto-wishes",
		Short: "Pide al backend borradores de saludos (cumpleaños, aniversarios)",
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

			n, err := app.Campaigns.GenerateAutoWishes(cmd.Context())
			flushNotifications(cmd.OutOrStdout(), app)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d drafts created.\n", n)
			return nil
		},
	}

	c.AddCommand(list, process(true), process(false), wishes)
	return c
}
