// Package cache holds process-lifetime lookup caches.
package cache

import (
	"github.com/patrickmn/go-cache"
)

// AddressCache maps rounded coordinate keys to resolved addresses. A cached
// nil records a definitive miss. Entries never expire.
type AddressCache struct {
	c *cache.Cache
}

// NewAddressCache creates an empty cache without a cleanup janitor.
func NewAddressCache() *AddressCache {
	return &AddressCache{c: cache.New(cache.NoExpiration, 0)}
}

// Get returns the cached value and whether the key was present.
func (a *AddressCache) Get(key string) (*string, bool) {
	v, ok := a.c.Get(key)
	if !ok {
		return nil, false
	}
	addr, _ := v.(*string)
	return addr, true
}

// Set stores value under key. Concurrent writers for one key are
// last-write-wins.
func (a *AddressCache) Set(key string, value *string) {
	a.c.Set(key, value, cache.NoExpiration)
}

// Len returns the number of cached keys.
func (a *AddressCache) Len() int {
	return a.c.ItemCount()
}
