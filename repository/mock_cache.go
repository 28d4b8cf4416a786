package repository

import "time"

// MockCache is an in-memory CacheRepository for local runs and tests.
// TTLs are ignored.
type MockCache struct {
	Data map[string]string
}

func NewMockCache() *MockCache {
	return &MockCache{
		Data: make(map[string]string),
	}
}

func (m *MockCache) Get(key string) (string, bool) {
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value string, _ time.Duration) error {
	m.Data[key] = value
	return nil
}
