package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App           AppConfig
	Server        ServerConfig
	Backend       BackendConfig
	Log           LogConfig
	Notifications NotificationsConfig
	Reminders     RemindersConfig
	Insights      InsightsConfig
	DB            DBConfig
	Redis         RedisConfig
	AMQP          AMQPConfig
	CORS          CORSConfig
}

type AppConfig struct {
	Name string
}

type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type BackendConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout time.Duration
	Breaker BreakerConfig
}

type BreakerConfig struct {
	MaxRequests uint32 `mapstructure:"max_requests"`
	Interval    time.Duration
	Timeout     time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type NotificationsConfig struct {
	TTL time.Duration
}

type RemindersConfig struct {
	SendTimeout time.Duration `mapstructure:"send_timeout"`
}

type InsightsConfig struct {
	TTL time.Duration
}

type DBConfig struct {
	DSN string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AMQPConfig struct {
	URL      string
	Exchange string
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SetDefaults registra los defaults en v; se usa también desde el CLI antes de leer flags.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "kizuna-dashboard")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", "5s")
	v.SetDefault("server.write_timeout", "10s")

	v.SetDefault("backend.base_url", "http://127.0.0.1:5000/api")
	v.SetDefault("backend.timeout", "15s")
	v.SetDefault("backend.breaker.max_requests", 3)
	v.SetDefault("backend.breaker.interval", "1m")
	v.SetDefault("backend.breaker.timeout", "60s")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("notifications.ttl", "4s")
	v.SetDefault("reminders.send_timeout", "30s")
	v.SetDefault("insights.ttl", "10m")

	v.SetDefault("db.dsn", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("amqp.url", "")
	v.SetDefault("amqp.exchange", "kizuna.events")
	v.SetDefault("cors.allowed_origins", []string{"*"})
}

// Load lee .env (si existe), config.yaml (si existe) y variables KIZUNA_*.
// cfgFile vacío => busca config.yaml en . y ./config.
func Load(cfgFile string) (*Config, error) {
	// .env es opcional; en contenedores todo llega por env.
	_ = godotenv.Load()

	v := viper.New()
	SetDefaults(v)

	if strings.TrimSpace(cfgFile) != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("KIZUNA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var ErrInvalidConfig = errors.New("invalid config")

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Backend.BaseURL) == "" {
		return errors.Join(ErrInvalidConfig, errors.New("backend.base_url is required"))
	}
	if c.Notifications.TTL <= 0 {
		return errors.Join(ErrInvalidConfig, errors.New("notifications.ttl must be positive"))
	}
	return nil
}
