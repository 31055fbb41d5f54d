// Package redis manages the process's Redis connections.
//
// One physical server is multiplexed into three logical databases (cached
// responses, log storage, pub/sub bookkeeping), each opened as its own
// client with its own availability Status. Connection attempts retry with a
// linear backoff; dial and retry settings come from the environment so test
// runs against an absent server fail fast instead of hanging.
//
//	conns := redis.MustOpenAll(ctx, cfg.Redis)
//	defer conns.Close()
//
//	store := cache.NewRedisStore(conns.Cache)
//
// The Status object is the process-wide availability signal consumed by the
// caching middleware: a downed status makes every cache interaction degrade
// to a no-op rather than fail the request.
package redis
