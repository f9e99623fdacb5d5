// Package timeouts centralizes context deadlines for store calls made from
// HTTP handlers.
//
//   - Ping: health checks and connectivity probes
//   - Short: single-document reads and writes
//   - Medium: list queries and the dedup existence checks
//
// Values start at the defaults and may be overridden once at startup via
// ConfigureFromEnv (LEADGATE_TIMEOUT_PING / _SHORT / _MEDIUM).
package timeouts

import (
	"os"
	"sync"
	"time"
)

const (
	DefaultPing   = 2 * time.Second
	DefaultShort  = 5 * time.Second
	DefaultMedium = 10 * time.Second
)

var (
	mu     sync.RWMutex
	ping   = DefaultPing
	short  = DefaultShort
	medium = DefaultMedium
)

// Ping returns the timeout for health checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Short returns the timeout for single-document operations.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// Medium returns the timeout for list queries and multi-step reads.
func Medium() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return medium
}

// ConfigureFromEnv overrides timeouts from environment variables. Unset or
// unparsable values keep the current setting. Returns how many were applied.
func ConfigureFromEnv() int {
	mu.Lock()
	defer mu.Unlock()
	applied := 0
	for _, e := range []struct {
		name string
		dst  *time.Duration
	}{
		{"LEADGATE_TIMEOUT_PING", &ping},
		{"LEADGATE_TIMEOUT_SHORT", &short},
		{"LEADGATE_TIMEOUT_MEDIUM", &medium},
	} {
		v := os.Getenv(e.name)
		if v == "" {
			continue
		}
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			*e.dst = d
			applied++
		}
	}
	return applied
}

// Reset restores the defaults. Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	short = DefaultShort
	medium = DefaultMedium
}
