package logger

import (
	"io"
	"marketplace/config"
	"marketplace/shared/constant"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init replaces the global logger with one built from cfg and applies its level.
func Init(cfg *config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.DurationFieldUnit = time.Millisecond

	log.Logger = New(cfg, os.Stdout)

	SetLogLevel(cfg)
}

// New builds a logger tagged with the app name and environment. Development
// gets human readable console output; every other environment logs JSON.
func New(cfg *config.Config, out io.Writer) zerolog.Logger {
	if cfg.Server.Env == constant.ServerEnvDevelopment || cfg.Server.Env == "" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	ctx := zerolog.New(out).With().Timestamp()

	if cfg.App.Name != "" {
		ctx = ctx.Str("app", cfg.App.Name)
	}

	if cfg.Server.Env != "" {
		ctx = ctx.Str("env", cfg.Server.Env)
	}

	return ctx.Logger()
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel applies LOG_LEVEL. Unknown or empty values fall back to debug in
// development and info everywhere else.
func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || cfg.Server.LogLevel == "" {
		level = defaultLevel(cfg.Server.Env)
	}

	zerolog.SetGlobalLevel(level)

	log.Debug().Str("level", level.String()).Msg("log level set")
}

func defaultLevel(env string) zerolog.Level {
	if env == constant.ServerEnvProduction {
		return zerolog.InfoLevel
	}

	return zerolog.DebugLevel
}
