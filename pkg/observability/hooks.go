// Package observability provides hooks for instrumenting sweep runs and
// cache operations.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register
// hooks at startup to receive events about sweep execution and artifact
// cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSweepHooks(&mySweepHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Sweep().OnLatitudeStart(ctx, latitude)
//	// ... compose and render ...
//	observability.Sweep().OnLatitudeComplete(ctx, latitude, artifacts, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Sweep Hooks
// =============================================================================

// SweepHooks receives events from the latitude sweep driver.
type SweepHooks interface {
	// OnSweepStart fires once per run, before any latitude is processed.
	OnSweepStart(ctx context.Context, runID string, latitudes int)

	// OnSweepComplete fires once per run, after all latitudes finished.
	OnSweepComplete(ctx context.Context, runID string, artifacts int, duration time.Duration, err error)

	// OnLatitudeStart fires before the plates for one latitude are composed.
	OnLatitudeStart(ctx context.Context, latitude float64)

	// OnLatitudeComplete fires after every artifact for the latitude has
	// been written.
	OnLatitudeComplete(ctx context.Context, latitude float64, artifacts int, duration time.Duration)

	// OnLatitudeSkipped fires when a latitude is rejected as unsuitable
	// for an astrolabe and the sweep moves on.
	OnLatitudeSkipped(ctx context.Context, latitude float64, reason string)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from artifact cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, key string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, key string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, key string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSweepHooks is a no-op implementation of SweepHooks.
type NoopSweepHooks struct{}

func (NoopSweepHooks) OnSweepStart(context.Context, string, int) {}
func (NoopSweepHooks) OnSweepComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopSweepHooks) OnLatitudeStart(context.Context, float64)                          {}
func (NoopSweepHooks) OnLatitudeComplete(context.Context, float64, int, time.Duration)   {}
func (NoopSweepHooks) OnLatitudeSkipped(context.Context, float64, string)                {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	sweepHooks SweepHooks = NoopSweepHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	hooksMu    sync.RWMutex
)

// SetSweepHooks registers custom sweep hooks.
// This should be called once at application startup before any sweep runs.
func SetSweepHooks(h SweepHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sweepHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Sweep returns the registered sweep hooks.
func Sweep() SweepHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sweepHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	sweepHooks = NoopSweepHooks{}
	cacheHooks = NoopCacheHooks{}
}
