package redis

import (
	"context"
	"errors"
	"time"
)

// Healthcheck returns a closure that validates connectivity for health
// endpoints. The ping outcome is reflected into the connection's Status, so
// readiness probes double as availability refreshes.
// Compatible with health check interfaces expecting func(context.Context) error.
func Healthcheck(conn *Conn) func(context.Context) error {
	return func(ctx context.Context) error {
		if conn == nil || conn.Client == nil {
			return ErrHealthcheckFailed
		}
		if err := conn.Client.Ping(ctx).Err(); err != nil {
			conn.Status.MarkDownFrom(err)
			return errors.Join(ErrHealthcheckFailed, err)
		}
		conn.Status.MarkUp()
		return nil
	}
}

// defaultPingInterval is used when Monitor is given a non-positive interval.
const defaultPingInterval = 15 * time.Second

// Monitor pings the connection every interval until ctx is cancelled,
// refreshing its Status with every outcome. Run it in the background so a
// connection marked down recovers on its own instead of waiting for
// readiness-probe traffic.
func Monitor(ctx context.Context, conn *Conn, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPingInterval
	}

	check := Healthcheck(conn)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = check(ctx)
		}
	}
}
