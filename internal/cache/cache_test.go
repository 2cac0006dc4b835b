package cache

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/iwvelando/mortgage-engine/internal/config"
)

func TestKey(t *testing.T) {
	a := Key("/update-mortgage", []byte(`{"a":1}`))
	if a != Key("/update-mortgage", []byte(`{"a":1}`)) {
		t.Error("Key() is not deterministic")
	}
	if !strings.HasPrefix(a, KeyPrefix+"/update-mortgage:") {
		t.Errorf("Key() = %q, expected prefix %q", a, KeyPrefix+"/update-mortgage:")
	}

	others := []string{
		Key("/update-mortgage", []byte(`{"a":2}`)),
		Key("/calculate-payment", []byte(`{"a":1}`)),
		Key("/update-mortgage", nil),
	}
	for _, other := range others {
		if other == a {
			t.Errorf("Key() collision: %q", other)
		}
	}
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Minute)
	defer c.Close()

	if _, ok, err := c.Get(ctx, "missing"); ok || err != nil {
		t.Errorf("Get(missing) = %v, %v, expected miss", ok, err)
	}
	if err := c.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, ok, err := c.Get(ctx, "k")
	if !ok || err != nil || !bytes.Equal(got, []byte("v")) {
		t.Errorf("Get(k) = %q, %v, %v, expected v", got, ok, err)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(20 * time.Millisecond)
	defer c.Close()

	if err := c.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	time.Sleep(40 * time.Millisecond)
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("Get() returned an expired entry")
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.CacheConfig
		wantNil   bool
		expectErr bool
	}{
		{name: "none", cfg: config.CacheConfig{Backend: "none"}, wantNil: true},
		{name: "memory", cfg: config.CacheConfig{Backend: "memory", TTL: time.Minute}},
		{name: "redis", cfg: config.CacheConfig{Backend: "redis", RedisAddress: "localhost:6379"}},
		{name: "unknown", cfg: config.CacheConfig{Backend: "disk"}, wantNil: true, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.cfg, nil)
			if (err != nil) != tt.expectErr {
				t.Fatalf("New() error = %v, expectErr %v", err, tt.expectErr)
			}
			if (c == nil) != tt.wantNil {
				t.Errorf("New() = %v, expected nil %v", c, tt.wantNil)
			}
			if c != nil {
				c.Close()
			}
		})
	}
}

// TestRedisCache runs against a live server named by MORTGAGE_ENGINE_TEST_REDIS.
func TestRedisCache(t *testing.T) {
	addr := os.Getenv("MORTGAGE_ENGINE_TEST_REDIS")
	if addr == "" {
		t.Skip("MORTGAGE_ENGINE_TEST_REDIS not set")
	}

	ctx := context.Background()
	c := NewRedisCache(addr, time.Minute)
	defer c.Close()

	key := Key("/test", []byte(t.Name()))
	if err := c.Set(ctx, key, []byte("payload")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, ok, err := c.Get(ctx, key)
	if !ok || err != nil || string(got) != "payload" {
		t.Errorf("Get() = %q, %v, %v, expected payload", got, ok, err)
	}
	if _, ok, err := c.Get(ctx, key+":missing"); ok || err != nil {
		t.Errorf("Get(missing) = %v, %v, expected miss", ok, err)
	}
}
