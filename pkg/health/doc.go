// Package health aggregates named dependency checks into liveness and
// readiness HTTP handlers. Checks run in parallel under a shared timeout;
// one failing check turns the whole readiness response unhealthy.
package health
