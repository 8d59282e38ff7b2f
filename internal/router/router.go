package router

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"kizuna-dashboard/internal/adapters/backend"
	rediscache "kizuna-dashboard/internal/adapters/cache/redis"
	mem "kizuna-dashboard/internal/adapters/storage/memory"
	pg "kizuna-dashboard/internal/adapters/storage/postgres"
	"kizuna-dashboard/internal/config"
	"kizuna-dashboard/internal/domain/campaigns"
	"kizuna-dashboard/internal/domain/notifications"
	"kizuna-dashboard/internal/domain/pets"
	"kizuna-dashboard/internal/domain/reminders"
	"kizuna-dashboard/internal/domain/settings"
	"kizuna-dashboard/internal/domain/stats"
	"kizuna-dashboard/internal/middleware"
	"kizuna-dashboard/internal/platform/circuitbreaker"
	"kizuna-dashboard/internal/platform/logger"
	"kizuna-dashboard/internal/platform/metrics"

	_ "kizuna-dashboard/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	goredis "github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Config *config.Config
	Logger logger.Logger

	// Opcionales: sin DB los recordatorios viven en memoria; sin Redis el cache
	// de insights es local; sin Publisher no se emiten eventos.
	DB        *sql.DB
	Redis     *goredis.Client
	Publisher reminders.EventPublisher
}

// App agrupa los servicios de dominio ya cableados. La usan tanto el
// servidor HTTP como los comandos del CLI.
type App struct {
	Notifications *notifications.Queue
	Pets          *pets.Service
	Settings      *settings.Service
	Reminders     *reminders.Service
	Campaigns     *campaigns.Service
	Stats         *stats.Service

	cfg *config.Config
	log logger.Logger
}

func NewApp(ctx context.Context, opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, errors.New("router: config required")
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	client, err := backend.NewClient(backend.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
		Breaker: circuitbreaker.Settings{
			MaxRequests: cfg.Backend.Breaker.MaxRequests,
			Interval:    cfg.Backend.Breaker.Interval,
			Timeout:     cfg.Backend.Breaker.Timeout,
		},
	})
	if err != nil {
		return nil, err
	}

	var reminderRepo reminders.Repository
	if opts.DB != nil {
		if err := pg.EnsureSchema(ctx, opts.DB); err != nil {
			return nil, err
		}
		reminderRepo = pg.NewRemindersRepo(opts.DB)
	} else {
		reminderRepo = mem.NewReminderRepo()
	}

	var insightCache stats.InsightCache
	if opts.Redis != nil {
		insightCache = rediscache.NewInsightCache(opts.Redis)
	} else {
		insightCache = mem.NewInsightCache()
	}

	queue := notifications.NewQueue(cfg.Notifications.TTL)

	petsSvc := pets.NewService(mem.NewPetRepo(), client, queue, log)
	settingsSvc := settings.NewService(mem.NewSettingsRepo(), client, queue, log)
	remindersSvc := reminders.NewService(reminderRepo, client, petsSvc, settingsSvc, queue, log).
		WithSendTimeout(cfg.Reminders.SendTimeout)
	if opts.Publisher != nil {
		remindersSvc.WithPublisher(opts.Publisher)
	}
	campaignsSvc := campaigns.NewService(mem.NewCampaignRepo(), mem.NewDraftRepo(), client, queue, log)
	statsSvc := stats.NewService(petsSvc, remindersSvc, client, insightCache, cfg.Insights.TTL, log)

	return &App{
		Notifications: queue,
		Pets:          petsSvc,
		Settings:      settingsSvc,
		Reminders:     remindersSvc,
		Campaigns:     campaignsSvc,
		Stats:         statsSvc,
		cfg:           cfg,
		log:           log,
	}, nil
}

// Load hace la carga inicial silenciosa: un backend caído deja los stores vacíos.
func (a *App) Load(ctx context.Context) {
	a.Pets.Refresh(ctx)
	a.Settings.Refresh(ctx)
	a.Campaigns.RefreshCampaigns(ctx)
	a.Campaigns.RefreshDrafts(ctx)
}

func NewRouter(app *App) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.AccessLog(app.log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Confirm", "X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Rutas por módulo
	pets.RegisterRoutes(r, app.Pets)
	reminders.RegisterRoutes(r, app.Reminders)
	settings.RegisterRoutes(r, app.Settings)
	campaigns.RegisterRoutes(r, app.Campaigns)
	stats.RegisterRoutes(r, app.Stats)
	notifications.RegisterRoutes(r, app.Notifications)

	return r
}
