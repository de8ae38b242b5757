package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"marketplace/config"
	"marketplace/shared/constant"
	"marketplace/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(env, level string) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "marketplace"
	cfg.Server.Env = env
	cfg.Server.LogLevel = level

	return cfg
}

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer

	l := logger.New(newConfig(constant.ServerEnvProduction, ""), &buf)
	l.Info().Str("booking_id", "b-1").Msg("booking accepted")

	entry := map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "marketplace", entry["app"])
	assert.Equal(t, constant.ServerEnvProduction, entry["env"])
	assert.Equal(t, "b-1", entry["booking_id"])
	assert.Equal(t, "booking accepted", entry["message"])
}

func TestNew_DevelopmentWritesConsole(t *testing.T) {
	var buf bytes.Buffer

	l := logger.New(newConfig(constant.ServerEnvDevelopment, ""), &buf)
	l.Info().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(buf.Bytes()))
}

func TestErrorWithStack(t *testing.T) {
	original := log.Logger
	t.Cleanup(func() { log.Logger = original })

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger.ErrorWithStack(errors.New("test error"))

	assert.Contains(t, buf.String(), "test error")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestSetLogLevel(t *testing.T) {
	original := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(original) })

	tests := []struct {
		name  string
		env   string
		level string
		want  zerolog.Level
	}{
		{name: "explicit level", env: constant.ServerEnvProduction, level: "warn", want: zerolog.WarnLevel},
		{name: "trace", env: constant.ServerEnvDevelopment, level: "trace", want: zerolog.TraceLevel},
		{name: "empty in production", env: constant.ServerEnvProduction, level: "", want: zerolog.InfoLevel},
		{name: "empty in development", env: constant.ServerEnvDevelopment, level: "", want: zerolog.DebugLevel},
		{name: "invalid in production", env: constant.ServerEnvProduction, level: "loud", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger.SetLogLevel(newConfig(tt.env, tt.level))

			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}
