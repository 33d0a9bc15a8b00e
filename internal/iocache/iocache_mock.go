package iocache

import (
	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/schema"
	"github.com/stretchr/testify/mock"
)

// MockCacheManager is a mock implementation of CacheManager for testing.
type MockCacheManager struct {
	mock.Mock
}

var _ contract.CacheManager = &MockCacheManager{} // Compile-time check

// GetResponseStore implements the CacheManager interface.
func (m *MockCacheManager) GetResponseStore() contract.CacheStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.CacheStore)
	return store
}

// GetSearchStore implements the CacheManager interface.
func (m *MockCacheManager) GetSearchStore() contract.SearchStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.SearchStore)
	return store
}

// MockCacheStore is a mock implementation of CacheStore for testing.
type MockCacheStore struct {
	mock.Mock
}

var _ contract.CacheStore = &MockCacheStore{} // Compile-time check

// Get implements the CacheStore interface.
func (m *MockCacheStore) Get(key string) ([]byte, int, int64, error) {
	args := m.Called(key)
	data, _ := args.Get(0).([]byte)
	return data, args.Int(1), args.Get(2).(int64), args.Error(3)
}

// Set implements the CacheStore interface.
func (m *MockCacheStore) Set(key string, data []byte, version int, ts int64) error {
	args := m.Called(key, data, version, ts)
	return args.Error(0)
}

// GetStatus implements the CacheStore interface.
func (m *MockCacheStore) GetStatus() (schema.CacheStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.CacheStatus), args.Error(1)
}

// Close implements the CacheStore interface.
func (m *MockCacheStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockSearchStore is a mock implementation of SearchStore for testing.
type MockSearchStore struct {
	mock.Mock
}

var _ contract.SearchStore = &MockSearchStore{} // Compile-time check

// RecordSearch implements the SearchStore interface.
func (m *MockSearchStore) RecordSearch(player schema.Player, searchTerm string) (schema.SearchRecord, error) {
	args := m.Called(player, searchTerm)
	return args.Get(0).(schema.SearchRecord), args.Error(1)
}

// Trending implements the SearchStore interface.
func (m *MockSearchStore) Trending(limit int) ([]schema.SearchRecord, error) {
	args := m.Called(limit)
	records, _ := args.Get(0).([]schema.SearchRecord)
	return records, args.Error(1)
}

// ListSearches implements the SearchStore interface.
func (m *MockSearchStore) ListSearches() ([]schema.SearchRecord, error) {
	args := m.Called()
	records, _ := args.Get(0).([]schema.SearchRecord)
	return records, args.Error(1)
}

// GetStatus implements the SearchStore interface.
func (m *MockSearchStore) GetStatus() (schema.SearchStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.SearchStatus), args.Error(1)
}

// Close implements the SearchStore interface.
func (m *MockSearchStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
