package cmd

import (
	"context"

	"kizuna-dashboard/internal/config"
	"kizuna-dashboard/internal/platform/logger"

	"github.com/spf13/cobra"
)

// NewRootCommand arma el árbol de comandos. Cada llamada devuelve uno nuevo (tests).
func NewRootCommand() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "kizuna",
		Short: "Panel de recordatorios para la clínica veterinaria",
		Long: `kizuna expone el panel de recordatorios como API HTTP (serve) y
permite operar el mismo flujo desde la terminal: listar pacientes, enviar
recordatorios, revisar estadísticas y aprobar borradores de campañas.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default ./config.yaml)")

	load := func() (*config.Config, logger.Logger, error) {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return nil, nil, err
		}
		log := logger.New(logger.Options{
			Level:  logger.ParseLevel(cfg.Log.Level),
			Format: logger.ParseFormat(cfg.Log.Format),
			App:    cfg.App.Name,
		})
		return cfg, log, nil
	}

	root.AddCommand(
		newServeCommand(load),
		newPetsCommand(load),
		newRemindCommand(load),
		newStatsCommand(load),
		newDraftsCommand(load),
	)
	return root
}

type loader func() (*config.Config, logger.Logger, error)

func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func syncLogger(log logger.Logger) {
	if s, ok := log.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}
