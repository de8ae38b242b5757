package postgres

//nolint:revive
import (
	"context"
	"fmt"
	"marketplace/config"
	"net"
	"net/url"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const driverName = "postgres"

// Connection splits reads and writes. Read falls back to the write database
// when no replica host is configured.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// Target describes one database endpoint.
type Target struct {
	Role     string
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	SSLMode  string
}

func (t Target) DSN() string {
	query := url.Values{}
	if t.SSLMode != "" {
		query.Set("sslmode", t.SSLMode)
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(t.Username, t.Password),
		Host:     net.JoinHostPort(t.Host, t.Port),
		Path:     "/" + t.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// Targets returns the write and read endpoints from cfg.
func Targets(cfg *config.Config) (Target, Target) {
	pg := cfg.DB.Postgres

	write := Target{
		Role:     "write",
		Host:     pg.Write.Host,
		Port:     pg.Write.Port,
		Username: pg.Write.Username,
		Password: pg.Write.Password,
		Name:     pg.Prefix + pg.Write.Name,
		SSLMode:  pg.Write.SSLMode,
	}

	if pg.Read.Host == "" {
		read := write
		read.Role = "read"

		return write, read
	}

	read := Target{
		Role:     "read",
		Host:     pg.Read.Host,
		Port:     pg.Read.Port,
		Username: pg.Read.Username,
		Password: pg.Read.Password,
		Name:     pg.Prefix + pg.Read.Name,
		SSLMode:  pg.Read.SSLMode,
	}

	return write, read
}

// New connects both pools, retrying as configured. The process cannot serve
// anything without a database, so exhausting the retries is fatal.
func New(cfg *config.Config) *Connection {
	write, read := Targets(cfg)

	conn := &Connection{
		Write: connect(cfg, write),
	}

	if cfg.DB.Postgres.Read.Host == "" {
		conn.Read = conn.Write
	} else {
		conn.Read = connect(cfg, read)
	}

	return conn
}

func connect(cfg *config.Config, target Target) *sqlx.DB {
	pg := cfg.DB.Postgres
	attempts := max(1, pg.MaxRetry)
	logger := log.With().Str("role", target.Role).Str("host", target.Host).Str("db", target.Name).Logger()

	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		db, err := sqlx.ConnectContext(ctx, driverName, target.DSN())
		cancel()

		if err == nil {
			db.SetMaxOpenConns(pg.MaxOpenConns)
			db.SetMaxIdleConns(pg.MaxIdleConns)
			db.SetConnMaxLifetime(time.Duration(pg.ConnMaxLifetimeMin) * time.Minute)

			logger.Info().Int("attempt", attempt).Msg("Connected to database")

			return db
		}

		lastErr = err
		logger.Warn().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
	}

	logger.Fatal().Err(lastErr).Int("attempts", attempts).Msg("Giving up connecting to database")

	return nil
}

// Close closes both pools, once each when they are shared.
func (c *Connection) Close() error {
	var result *multierror.Error

	if c.Write != nil {
		if err := c.Write.Close(); err != nil {
			result = multierror.Append(result, fmt.Errorf("close write pool: %w", err))
		}
	}

	if c.Read != nil && c.Read != c.Write {
		if err := c.Read.Close(); err != nil {
			result = multierror.Append(result, fmt.Errorf("close read pool: %w", err))
		}
	}

	return result.ErrorOrNil()
}
