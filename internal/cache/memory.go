package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache keeps responses in process memory.
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates a MemoryCache whose entries expire after ttl.
// Expired entries are purged every two TTLs.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	ttl = ttlOrDefault(ttl)
	return &MemoryCache{store: gocache.New(ttl, 2*ttl)}
}

// Get returns the value stored under key.
func (m *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.store.Get(key)
	if !ok {
		return nil, false, nil
	}
	return v.([]byte), true, nil
}

// Set stores value under key with the default TTL.
func (m *MemoryCache) Set(_ context.Context, key string, value []byte) error {
	m.store.SetDefault(key, value)
	return nil
}

// Close drops every entry.
func (m *MemoryCache) Close() error {
	m.store.Flush()
	return nil
}
