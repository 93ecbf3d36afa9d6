package contract

import (
	"context"

	"github.com/basetelco/revcast/schema"
	"github.com/stretchr/testify/mock"
)

// MockDataSource is a mock implementation of DataSource for testing.
type MockDataSource struct {
	mock.Mock
}

var _ DataSource = &MockDataSource{} // Compile-time check

// LoadHistory implements the HistorySource interface.
func (m *MockDataSource) LoadHistory(ctx context.Context) (schema.HistoryTable, []string) {
	args := m.Called(ctx)
	warnings, _ := args.Get(1).([]string)
	return args.Get(0).(schema.HistoryTable), warnings
}

// LoadActivations implements the ActivationSource interface.
func (m *MockDataSource) LoadActivations(ctx context.Context) (schema.ActivationTable, []string) {
	args := m.Called(ctx)
	warnings, _ := args.Get(1).([]string)
	return args.Get(0).(schema.ActivationTable), warnings
}

// MockSnapshotStore is a mock implementation of SnapshotStore for testing.
type MockSnapshotStore struct {
	mock.Mock
}

var _ SnapshotStore = &MockSnapshotStore{} // Compile-time check

// Get implements the SnapshotStore interface.
func (m *MockSnapshotStore) Get(key string) ([]byte, int, int64, error) {
	args := m.Called(key)
	value, _ := args.Get(0).([]byte)
	return value, args.Int(1), args.Get(2).(int64), args.Error(3)
}

// Set implements the SnapshotStore interface.
func (m *MockSnapshotStore) Set(key string, value []byte, version int, timestamp int64) error {
	args := m.Called(key, value, version, timestamp)
	return args.Error(0)
}

// Status implements the SnapshotStore interface.
func (m *MockSnapshotStore) Status() (schema.SnapshotStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.SnapshotStatus), args.Error(1)
}

// Clear implements the SnapshotStore interface.
func (m *MockSnapshotStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

// Close implements the SnapshotStore interface.
func (m *MockSnapshotStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
