package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

type Config struct {
	Server struct {
		Env      string `split_words:"true" default:"development"`
		LogLevel string `split_words:"true" default:"info"`
		// Port is the only setting that also reads its bare name, PORT.
		Port     string `envconfig:"PORT" default:"3000"`
		Host     string `split_words:"true" default:"0.0.0.0"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `split_words:"true" default:"10"`
			GracePeriodSeconds   int64 `split_words:"true" default:"5"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name string `split_words:"true" default:"roomio"`
		CORS struct {
			AllowCredentials bool     `split_words:"true"`
			AllowedHeaders   []string `split_words:"true" default:"Accept,Content-Type,X-Request-ID"`
			AllowedMethods   []string `split_words:"true" default:"GET,POST,OPTIONS"`
			AllowedOrigins   []string `split_words:"true" default:"*"`
			Enable           bool     `split_words:"true"`
			MaxAgeSeconds    int      `split_words:"true" default:"300"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `split_words:"true"`
			MaxRequests   int  `split_words:"true" default:"100"`
			WindowSeconds int  `split_words:"true" default:"60"`
		} `envconfig:"RATE_LIMITER"`
		Booking struct {
			// AllowUnknownRoom accepts reservations for room ids missing from the catalog.
			AllowUnknownRoom bool `split_words:"true"`
		} `envconfig:"BOOKING"`
	} `envconfig:"APP"`

	Cache struct {
		Enable bool `split_words:"true"`
		Redis  struct {
			Primary struct {
				Host     string `split_words:"true" default:"localhost"`
				Port     string `split_words:"true" default:"6379"`
				Password string `split_words:"true"`
				DB       int    `split_words:"true"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `split_words:"true" default:"60"`
	} `envconfig:"CACHE"`

	DB struct {
		Driver   string `split_words:"true" default:"memory"`
		Postgres struct {
			MaxRetry       int    `split_words:"true" default:"3"`
			RetryWaitTime  int    `split_words:"true" default:"2"`
			MigrationTable string `split_words:"true" default:"schema_migrations"`
			Read           struct {
				Host     string `split_words:"true"`
				Port     string `split_words:"true" default:"5432"`
				Username string `split_words:"true"`
				Password string `split_words:"true"`
				Name     string `split_words:"true"`
				SSLMode  string `split_words:"true" default:"disable"`
			} `envconfig:"READ"`
			Write struct {
				Host     string `split_words:"true"`
				Port     string `split_words:"true" default:"5432"`
				Username string `split_words:"true"`
				Password string `split_words:"true"`
				Name     string `split_words:"true"`
				SSLMode  string `split_words:"true" default:"disable"`
			} `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Kafka struct {
		Enable  bool     `split_words:"true"`
		Brokers []string `split_words:"true" default:"localhost:9092"`
		Topic   string   `split_words:"true" default:"room-bookings"`
		SASL    struct {
			Username string `split_words:"true"`
			Password string `split_words:"true"`
		} `envconfig:"SASL"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Endpoint string `split_words:"true"`
		} `envconfig:"OTEL"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

// Load reads the environment (and a .env file when present) into a fresh Config.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Debug().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
	} else {
		log.Info().Msg("Successfully loaded variables from .env file into environment")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing environment variables: %w", err)
	}

	if cfg.DB.Driver != DriverMemory && cfg.DB.Driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}

	return &cfg, nil
}

func Init() error {
	var err error

	once.Do(func() {
		var cfg *Config

		cfg, err = Load()
		if err != nil {
			return
		}

		conf = *cfg
		initialized = true

		log.Info().Str("driver", conf.DB.Driver).Msg("Service configuration initialized successfully")
	})

	return err
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
