package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"kizuna-dashboard/internal/adapters/broker/rabbitmq"
	rediscache "kizuna-dashboard/internal/adapters/cache/redis"
	pg "kizuna-dashboard/internal/adapters/storage/postgres"
	"kizuna-dashboard/internal/config"
	"kizuna-dashboard/internal/platform/logger"
	"kizuna-dashboard/internal/router"
)

// bootstrap abre la infraestructura opcional que esté configurada y cablea la App.
// El cleanup devuelto cierra todo lo que se abrió.
func bootstrap(ctx context.Context, cfg *config.Config, log logger.Logger) (*router.App, func(), error) {
	var closers []io.Closer
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			_ = closers[i].Close()
		}
	}

	opts := router.Options{Config: cfg, Logger: log}

	if dsn := strings.TrimSpace(cfg.DB.DSN); dsn != "" {
		db, err := pg.Open(dsn)
		if err != nil {
			return nil, cleanup, fmt.Errorf("postgres: %w", err)
		}
		closers = append(closers, db)
		opts.DB = db
		log.Info("reminder history on postgres", nil)
	}

	if addr := strings.TrimSpace(cfg.Redis.Addr); addr != "" {
		rdb, err := rediscache.Open(ctx, rediscache.Config{
			Addr:     addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			cleanup()
			return nil, func() {}, fmt.Errorf("redis: %w", err)
		}
		closers = append(closers, rdb)
		opts.Redis = rdb
		log.Info("insight cache on redis", map[string]any{"addr": addr})
	}

	if url := strings.TrimSpace(cfg.AMQP.URL); url != "" {
		pub, err := rabbitmq.NewPublisher(rabbitmq.Config{URL: url, Exchange: cfg.AMQP.Exchange})
		if err != nil {
			// Sin broker el panel sigue funcionando: solo se pierden los eventos.
			log.Warn("rabbitmq unavailable, reminder events disabled", map[string]any{"err": err})
		} else {
			closers = append(closers, pub)
			opts.Publisher = pub
		}
	}

	app, err := router.NewApp(ctx, opts)
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}
	return app, cleanup, nil
}

var errAborted = errors.New("aborted")

// flushNotifications vuelca al writer lo que la operación dejó en la cola.
func flushNotifications(w io.Writer, app *router.App) {
	for _, n := range app.Notifications.Active() {
		_, _ = fmt.Fprintln(w, "» "+n.Message)
		_ = app.Notifications.Dismiss(n.ID)
	}
}
