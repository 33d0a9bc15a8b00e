// Package iocache is for caching I/O calls and persisting search counts.
package iocache

import (
	"sync"

	"github.com/huangsam/gridiron/internal/contract"
)

// CacheStoreManager manages the response cache and the search store.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization
	responses    contract.CacheStore
	searches     contract.SearchStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetResponseStore returns the provider response CacheStore.
func (mgr *CacheStoreManager) GetResponseStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.responses
}

// GetSearchStore returns the SearchStore, or nil when search tracking is off.
func (mgr *CacheStoreManager) GetSearchStore() contract.SearchStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.searches
}
