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
		APIKey string `envconfig:"API_KEY"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
				PoolSize int    `envconfig:"POOL_SIZE"`
				TLS      bool   `envconfig:"TLS"`
			} `envconfig:"PRIMARY"`
			DialTimeoutSeconds int `envconfig:"DIAL_TIMEOUT_SECONDS" default:"5"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	Session struct {
		Secret             string `envconfig:"SECRET"`
		ExpireDays         int    `envconfig:"EXPIRE_DAYS"          default:"30"`
		VerificationSecret string `envconfig:"VERIFICATION_SECRET"`
	} `envconfig:"SESSION"`

	Booking struct {
		AcceptanceTimeoutMin int    `envconfig:"ACCEPTANCE_TIMEOUT_MIN" default:"30"`
		PaymentTimeoutMin    int    `envconfig:"PAYMENT_TIMEOUT_MIN"    default:"5"`
		SweepConcurrency     int    `envconfig:"SWEEP_CONCURRENCY"      default:"4"`
		SweepBatchSize       int    `envconfig:"SWEEP_BATCH_SIZE"       default:"500"`
		Currency             string `envconfig:"CURRENCY"               default:"IDR"`
	} `envconfig:"BOOKING"`

	OTP struct {
		Length                int    `envconfig:"LENGTH"                  default:"6"`
		ExpireMin             int    `envconfig:"EXPIRE_MIN"              default:"10"`
		MaxAttempts           int    `envconfig:"MAX_ATTEMPTS"            default:"3"`
		RateLimitWindowMin    int    `envconfig:"RATE_LIMIT_WINDOW_MIN"   default:"15"`
		RateLimitMax          int    `envconfig:"RATE_LIMIT_MAX"          default:"3"`
		ResendCooldownSeconds int    `envconfig:"RESEND_COOLDOWN_SECONDS" default:"60"`
		VerificationWindowMin int    `envconfig:"VERIFICATION_WINDOW_MIN" default:"30"`
		DefaultCountryCode    string `envconfig:"DEFAULT_COUNTRY_CODE"    default:"62"`
	} `envconfig:"OTP"`

	SMS struct {
		Twilio struct {
			AccountSID string `envconfig:"ACCOUNT_SID"`
			AuthToken  string `envconfig:"AUTH_TOKEN"`
			From       string `envconfig:"FROM"`
		} `envconfig:"TWILIO"`
	} `envconfig:"SMS"`

	Kafka struct {
		Brokers       []string `envconfig:"BROKERS"`
		ConsumerGroup string   `envconfig:"CONSUMER_GROUP"`
		SASL          struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
		Topic struct {
			PushUser   string `envconfig:"PUSH_USER"   default:"push.user"`
			PushTopic  string `envconfig:"PUSH_TOPIC"  default:"push.topic"`
			PushResult string `envconfig:"PUSH_RESULT" default:"push.result"`
		} `envconfig:"TOPIC"`
	} `envconfig:"KAFKA"`

	Push struct {
		AdminTopic string `envconfig:"ADMIN_TOPIC" default:"admins"`
	} `envconfig:"PUSH"`

	DB struct {
		Postgres struct {
			MaxRetry           int    `envconfig:"MAX_RETRY"             default:"5"`
			RetryWaitTime      int    `envconfig:"RETRY_WAIT_TIME"       default:"2"`
			MaxOpenConns       int    `envconfig:"MAX_OPEN_CONNS"        default:"10"`
			MaxIdleConns       int    `envconfig:"MAX_IDLE_CONNS"        default:"10"`
			ConnMaxLifetimeMin int    `envconfig:"CONN_MAX_LIFETIME_MIN" default:"30"`
			MigrationTable     string `envconfig:"MIGRATION_TABLE"`
			AutoMigrate        bool   `envconfig:"AUTO_MIGRATE"`
			Prefix             string `envconfig:"PREFIX"`
			Read               struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"READ"`
			Write              struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Endpoint    string  `envconfig:"ENDPOINT"`
			SampleRatio float64 `envconfig:"SAMPLE_RATIO"`
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

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
