package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Sweep hooks
	s := NoopSweepHooks{}
	s.OnSweepStart(ctx, "run-1", 38)
	s.OnSweepComplete(ctx, "run-1", 165, time.Second, nil)
	s.OnLatitudeStart(ctx, 52)
	s.OnLatitudeComplete(ctx, 52, 5, time.Second)
	s.OnLatitudeSkipped(ctx, 0, "latitude out of range")

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "artifact:abc")
	c.OnCacheMiss(ctx, "artifact:def")
	c.OnCacheSet(ctx, "artifact:abc", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Sweep().(NoopSweepHooks); !ok {
		t.Error("Sweep() should return NoopSweepHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	// Set custom hooks
	customSweep := &testSweepHooks{}
	SetSweepHooks(customSweep)
	if Sweep() != customSweep {
		t.Error("SetSweepHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Sweep().(NoopSweepHooks); !ok {
		t.Error("Reset() should restore NoopSweepHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testSweepHooks{}
	SetSweepHooks(custom)

	// Setting nil should be ignored
	SetSweepHooks(nil)

	if Sweep() != custom {
		t.Error("SetSweepHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testSweepHooks struct{ NoopSweepHooks }
type testCacheHooks struct{ NoopCacheHooks }
