package redis_test

import (
	"marketplace/config"
	"marketplace/infras/redis"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Redis.Primary.Host = "cache.internal"
	cfg.Cache.Redis.Primary.Port = "6380"
	cfg.Cache.Redis.Primary.DB = 2
	cfg.Cache.Redis.Primary.PoolSize = 20
	cfg.Cache.Redis.DialTimeoutSeconds = 3

	opts := redis.Options(cfg)

	assert.Equal(t, "cache.internal:6380", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 20, opts.PoolSize)
	assert.Equal(t, 3*time.Second, opts.DialTimeout)
	assert.Nil(t, opts.TLSConfig)

	cfg.Cache.Redis.Primary.TLS = true

	opts = redis.Options(cfg)

	require.NotNil(t, opts.TLSConfig)
	assert.Equal(t, "cache.internal", opts.TLSConfig.ServerName)
}
