package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
	} `envconfig:"CACHE"`

	JWT struct {
		Secret    string `envconfig:"SECRET"`
		ExpireMin int    `envconfig:"EXPIRE_MIN"`
	} `envconfig:"JWT"`

	DB struct {
		MySQL struct {
			MaxRetry      int    `envconfig:"MAX_RETRY"`
			RetryWaitTime int    `envconfig:"RETRY_WAIT_TIME"`
			Host          string `envconfig:"HOST"`
			Port          string `envconfig:"PORT"`
			Username      string `envconfig:"USER"`
			Password      string `envconfig:"PASSWORD"`
			Name          string `envconfig:"NAME"`
		} `envconfig:"MYSQL"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		applyDefaults(&conf)

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

// applyDefaults fills the values local development relies on when the
// environment leaves them unset. The JWT secret fallback is insecure and
// exists only so a bare checkout can boot; production must set JWT_SECRET.
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "5000"
	}

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET is not set, falling back to the insecure development secret")

		cfg.JWT.Secret = "your_jwt_secret"
	}

	if cfg.JWT.ExpireMin == 0 {
		cfg.JWT.ExpireMin = 24 * 60
	}

	if cfg.DB.MySQL.MaxRetry == 0 {
		cfg.DB.MySQL.MaxRetry = 3
	}

	if cfg.DB.MySQL.RetryWaitTime == 0 {
		cfg.DB.MySQL.RetryWaitTime = 2
	}
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
