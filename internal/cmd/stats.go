package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCommand(load loader) *cobra.Command {
	var (
		asJSON  bool
		insight bool
	)

	c := &cobra.Command{
		Use:   "stats",
		Short: "Muestra las estadísticas derivadas del panel",
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
			s, err := app.Stats.Current(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(s)
			}

			fmt.Fprintf(out, "Total patients:    %d\n", s.TotalPets)
			fmt.Fprintf(out, "Reminders sent:    %d\n", s.RemindersSent)
			fmt.Fprintf(out, "Converted:         %d\n", s.Converted)
			fmt.Fprintf(out, "Conversion rate:   %.1f%%\n", s.ConversionRate)
			fmt.Fprintf(out, "Estimated revenue: %s\n", s.EstimatedRevenue.StringFixed(2))
			if insight {
				fmt.Fprintf(out, "\n%s\n", app.Stats.Insight(cmd.Context()))
			}
			return nil
		},
	}
	c.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	c.Flags().BoolVar(&insight, "insight", false, "also ask the backend for an AI summary")
	return c
}
