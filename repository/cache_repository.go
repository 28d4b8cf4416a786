package repository

import "time"

// CacheRepository is a minimal string cache. A zero TTL means the entry
// never expires.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration) error
}
