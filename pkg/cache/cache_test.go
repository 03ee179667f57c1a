package cache

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	payload := []byte("<svg>artifact</svg>")
	if err := c.Set(ctx, "rete_52N.svg", payload, 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	got, hit, err := c.Get(ctx, "rete_52N.svg")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit")
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Get returned %q, want %q", got, payload)
	}
}

func TestFileCacheMiss(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	_, hit, err := c.Get(context.Background(), "never-set")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("expected miss for unknown key")
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "short-lived", []byte("x"), time.Nanosecond); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	_, hit, err := c.Get(ctx, "short-lived")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("expired entry should be a miss")
	}
}

func TestFileCacheDelete(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "doomed", []byte("x"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := c.Delete(ctx, "doomed"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "doomed"); hit {
		t.Error("deleted entry should be a miss")
	}
	if err := c.Delete(ctx, "doomed"); err != nil {
		t.Errorf("deleting a missing key should not error, got %v", err)
	}
}

func TestArtifactKeyChangesWithInputs(t *testing.T) {
	type cfg struct{ Obliquity float64 }

	base := ArtifactKey("rete", 52, "svg", cfg{23.44})
	tests := []struct {
		name string
		key  string
	}{
		{"kind", ArtifactKey("rule", 52, "svg", cfg{23.44})},
		{"latitude", ArtifactKey("rete", 30, "svg", cfg{23.44})},
		{"format", ArtifactKey("rete", 52, "png", cfg{23.44})},
		{"config", ArtifactKey("rete", 52, "svg", cfg{23.5})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.key == base {
				t.Errorf("changing %s did not change the key", tt.name)
			}
		})
	}

	if again := ArtifactKey("rete", 52, "svg", cfg{23.44}); again != base {
		t.Error("identical inputs produced different keys")
	}
}
