// Package contract provides interfaces and shared utilities for the revcast
// CLI's internal architecture.
package contract

import (
	"context"

	"github.com/basetelco/revcast/schema"
)

// HistorySource loads the historical billing dataset. Implementations are
// fail-soft: on a read failure they return an empty table plus warnings for
// the caller instead of an error that could reach the projection engine.
type HistorySource interface {
	LoadHistory(ctx context.Context) (schema.HistoryTable, []string)
}

// ActivationSource loads the pending activation pipeline, same fail-soft
// policy as HistorySource.
type ActivationSource interface {
	LoadActivations(ctx context.Context) (schema.ActivationTable, []string)
}

// DataSource combines both dataset loaders.
type DataSource interface {
	HistorySource
	ActivationSource
}

// SnapshotStore defines the interface for snapshot data storage.
// This allows mocking the store for testing.
type SnapshotStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	Status() (schema.SnapshotStatus, error)
	Clear() error
	Close() error
}

// SnapshotManager defines the interface for managing snapshot stores.
type SnapshotManager interface {
	GetActivationStore() SnapshotStore
}
