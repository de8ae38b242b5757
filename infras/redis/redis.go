package redis

import (
	"context"
	"crypto/tls"
	"marketplace/config"
	"net"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Options maps the primary redis settings onto client options.
func Options(cfg *config.Config) *goRedis.Options {
	primary := cfg.Cache.Redis.Primary
	dialTimeout := time.Duration(cfg.Cache.Redis.DialTimeoutSeconds) * time.Second

	opts := &goRedis.Options{
		Addr:        net.JoinHostPort(primary.Host, primary.Port),
		Password:    primary.Password,
		DB:          primary.DB,
		PoolSize:    primary.PoolSize,
		DialTimeout: dialTimeout,
	}

	if primary.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12, ServerName: primary.Host}
	}

	return opts
}

// New connects and pings redis. Caching and rate limiting both depend on it,
// so an unreachable server stops the process.
func New(cfg *config.Config) *goRedis.Client {
	opts := Options(cfg)
	client := goRedis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), max(opts.DialTimeout, time.Second))
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", opts.Addr).Msg("Failed to connect to Redis")
	}

	log.Info().Str("addr", opts.Addr).Int("db", opts.DB).Bool("tls", opts.TLSConfig != nil).Msg("Connected to Redis")

	return client
}
