package snapcache

import (
	"fmt"
	"sync"

	"github.com/basetelco/revcast/internal/contract"
	"github.com/basetelco/revcast/schema"
)

// activationTable is the name of the table for activation snapshots.
const activationTable = "activation_snapshots"

// Global manager instance for main logic.
var (
	Manager   = &SnapshotStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// SnapshotStoreManager manages the snapshot store instances.
type SnapshotStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	activation   contract.SnapshotStore
}

var _ contract.SnapshotManager = &SnapshotStoreManager{} // Compile-time check

// GetActivationStore returns the activation SnapshotStore.
func (mgr *SnapshotStoreManager) GetActivationStore() contract.SnapshotStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.activation
}

// InitStores initializes the global snapshot manager. An empty backend
// disables snapshotting entirely.
func InitStores(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		var store contract.SnapshotStore
		if backend != "" {
			var err error
			store, err = NewSnapshotStore(activationTable, backend, connStr)
			if err != nil {
				initErr = fmt.Errorf("failed to initialize activation snapshots: %w", err)
				return
			}
		}
		Manager.Lock()
		defer Manager.Unlock()
		Manager.activation = store
	})

	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() {
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.activation != nil {
			_ = Manager.activation.Close()
		}
	})
}
