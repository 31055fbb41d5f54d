package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds connection settings for the Redis server. The three logical
// database selectors multiplex one physical server into independent
// namespaces for cached responses, log storage, and pub/sub bookkeeping.
//
// Timeouts and retry settings are environment-tunable so automated test runs
// can fail fast when no server is reachable.
type Config struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`

	CacheDB  int `env:"REDIS_CACHE_DB" envDefault:"0"`
	LogsDB   int `env:"REDIS_LOGS_DB" envDefault:"1"`
	PubSubDB int `env:"REDIS_PUBSUB_DB" envDefault:"2"`

	DialTimeout   time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout   time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout  time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"3s"`
	RetryAttempts int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`
	PingInterval  time.Duration `env:"REDIS_PING_INTERVAL" envDefault:"15s"`
}

// Addr returns the host:port pair for the configured server.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Conn is a client bound to one logical database, paired with the Status
// object tracking its availability.
type Conn struct {
	Client redis.UniversalClient
	Status *Status
}

// Open connects to the logical database db and pings it, retrying with a
// linear backoff up to cfg.RetryAttempts times. The returned Conn's Status
// is marked up on every successful (re)connect via the client's OnConnect
// hook.
func Open(ctx context.Context, cfg Config, db int) (*Conn, error) {
	status := NewStatus(false)

	opts := &redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           db,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		OnConnect: func(ctx context.Context, cn *redis.Conn) error {
			status.MarkUp()
			return nil
		},
	}

	attempts := max(cfg.RetryAttempts, 1)
	for i := 0; i < attempts; i++ {
		client := redis.NewClient(opts)

		if err := client.Ping(ctx).Err(); err == nil {
			status.MarkUp()
			return &Conn{Client: client, Status: status}, nil
		}

		_ = client.Close()

		if i == attempts-1 {
			break
		}
		if waitErr := wait(ctx, time.Duration(i+1)*cfg.RetryInterval); waitErr != nil {
			return nil, errors.Join(ErrConnectionFailed, waitErr)
		}
	}

	return nil, ErrConnectionFailed
}

// Conns bundles the three logical database connections the process maintains.
type Conns struct {
	Cache  *Conn
	Logs   *Conn
	PubSub *Conn
}

// OpenAll opens all three logical databases against the configured server.
// On any failure the already-opened connections are closed.
func OpenAll(ctx context.Context, cfg Config) (*Conns, error) {
	cacheConn, err := Open(ctx, cfg, cfg.CacheDB)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	logsConn, err := Open(ctx, cfg, cfg.LogsDB)
	if err != nil {
		_ = cacheConn.Client.Close()
		return nil, fmt.Errorf("open logs db: %w", err)
	}

	pubsubConn, err := Open(ctx, cfg, cfg.PubSubDB)
	if err != nil {
		_ = cacheConn.Client.Close()
		_ = logsConn.Client.Close()
		return nil, fmt.Errorf("open pubsub db: %w", err)
	}

	return &Conns{Cache: cacheConn, Logs: logsConn, PubSub: pubsubConn}, nil
}

// MustOpenAll opens all logical databases or exits on failure.
// Use for entrypoints where startup failure is fatal.
func MustOpenAll(ctx context.Context, cfg Config) *Conns {
	conns, err := OpenAll(ctx, cfg)
	if err != nil {
		slog.Error("failed to open redis connections", "addr", cfg.Addr(), "error", err)
		os.Exit(1)
	}
	return conns
}

// Close closes every open connection, returning the first error encountered.
func (c *Conns) Close() error {
	var errs []error
	for _, conn := range []*Conn{c.Cache, c.Logs, c.PubSub} {
		if conn == nil || conn.Client == nil {
			continue
		}
		conn.Status.MarkDown()
		if err := conn.Client.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func wait(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
