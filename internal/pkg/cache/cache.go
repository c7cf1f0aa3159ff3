package cache

import (
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/karlseguin/ccache/v3"
)

// Store is the response cache used by the search endpoint. Values are
// pre-serialized JSON; a miss is (nil, false), and Set/Delete are
// best-effort.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
	Delete(key string)
}

// MemoryStore is an in-process TTL cache backed by ccache.
type MemoryStore struct {
	c *ccache.Cache[[]byte]
}

func NewMemoryStore(maxEntries int64) *MemoryStore {
	return &MemoryStore{
		c: ccache.New(ccache.Configure[[]byte]().MaxSize(maxEntries)),
	}
}

func (s *MemoryStore) Get(key string) ([]byte, bool) {
	item := s.c.Get(key)
	if item == nil || item.Expired() {
		return nil, false
	}
	return item.Value(), true
}

func (s *MemoryStore) Set(key string, value []byte, ttl time.Duration) {
	s.c.Set(key, value, ttl)
}

func (s *MemoryStore) Delete(key string) {
	s.c.Delete(key)
}

// MemcacheStore delegates to a shared memcached instance, for deployments
// running more than one API replica.
type MemcacheStore struct {
	client *memcache.Client
}

func NewMemcacheStore(addr string) *MemcacheStore {
	return &MemcacheStore{client: memcache.New(addr)}
}

func (s *MemcacheStore) Get(key string) ([]byte, bool) {
	item, err := s.client.Get(key)
	if err != nil {
		return nil, false
	}
	return item.Value, true
}

func (s *MemcacheStore) Set(key string, value []byte, ttl time.Duration) {
	_ = s.client.Set(&memcache.Item{
		Key:        key,
		Value:      value,
		Expiration: int32(ttl / time.Second),
	})
}

func (s *MemcacheStore) Delete(key string) {
	_ = s.client.Delete(key)
}
