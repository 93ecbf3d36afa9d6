package source

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/basetelco/revcast/internal/contract"
	"github.com/basetelco/revcast/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pipelineFixture() schema.ActivationTable {
	return schema.ActivationTable{Records: []schema.ActivationRecord{
		{
			Customer:      "ACME",
			NormalizedKey: "ACME",
			ExpectedDate:  time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC),
			MonthlyValue:  2000,
			Product:       "TOIP",
			Status:        "EM ATIVAÇÃO",
		},
	}}
}

// TestCachedActivationSourceFreshHit checks that a fresh snapshot bypasses
// the inner source entirely.
func TestCachedActivationSourceFreshHit(t *testing.T) {
	table := pipelineFixture()
	blob, err := encodeActivations(table)
	require.NoError(t, err)

	now := time.Date(2026, time.June, 10, 12, 0, 0, 0, time.UTC)

	inner := &contract.MockDataSource{}
	store := &contract.MockSnapshotStore{}
	store.On("Get", "activations:csv:pipeline.csv").
		Return(blob, snapshotVersion, now.Add(-time.Minute).Unix(), nil)

	cached := NewCachedActivationSource(inner, store, "csv:pipeline.csv", 10*time.Minute)
	cached.now = func() time.Time { return now }

	got, warnings := cached.LoadActivations(context.Background())

	assert.Empty(t, warnings)
	require.Len(t, got.Records, 1)
	assert.Equal(t, "ACME", got.Records[0].Customer)
	inner.AssertNotCalled(t, "LoadActivations", mock.Anything)
	store.AssertExpectations(t)
}

// TestCachedActivationSourceStale checks that an expired snapshot falls
// through to the inner source and re-stores the result.
func TestCachedActivationSourceStale(t *testing.T) {
	table := pipelineFixture()
	blob, err := encodeActivations(table)
	require.NoError(t, err)

	now := time.Date(2026, time.June, 10, 12, 0, 0, 0, time.UTC)

	inner := &contract.MockDataSource{}
	inner.On("LoadActivations", mock.Anything).Return(table, []string(nil))

	store := &contract.MockSnapshotStore{}
	store.On("Get", "activations:k").
		Return(blob, snapshotVersion, now.Add(-time.Hour).Unix(), nil)
	store.On("Set", "activations:k", mock.Anything, snapshotVersion, now.Unix()).Return(nil)

	cached := NewCachedActivationSource(inner, store, "k", 10*time.Minute)
	cached.now = func() time.Time { return now }

	got, warnings := cached.LoadActivations(context.Background())

	assert.Empty(t, warnings)
	require.Len(t, got.Records, 1)
	inner.AssertExpectations(t)
	store.AssertExpectations(t)
}

// TestCachedActivationSourceVersionMismatch checks that an old payload
// layout is ignored.
func TestCachedActivationSourceVersionMismatch(t *testing.T) {
	table := pipelineFixture()
	blob, err := encodeActivations(table)
	require.NoError(t, err)

	now := time.Date(2026, time.June, 10, 12, 0, 0, 0, time.UTC)

	inner := &contract.MockDataSource{}
	inner.On("LoadActivations", mock.Anything).Return(table, []string(nil))

	store := &contract.MockSnapshotStore{}
	store.On("Get", "activations:k").
		Return(blob, snapshotVersion+1, now.Add(-time.Minute).Unix(), nil)
	store.On("Set", "activations:k", mock.Anything, snapshotVersion, now.Unix()).Return(nil)

	cached := NewCachedActivationSource(inner, store, "k", 10*time.Minute)
	cached.now = func() time.Time { return now }

	_, warnings := cached.LoadActivations(context.Background())

	assert.Empty(t, warnings)
	inner.AssertExpectations(t)
	store.AssertExpectations(t)
}

// TestCachedActivationSourceMiss checks the cold path plus snapshot write.
func TestCachedActivationSourceMiss(t *testing.T) {
	table := pipelineFixture()
	now := time.Date(2026, time.June, 10, 12, 0, 0, 0, time.UTC)

	inner := &contract.MockDataSource{}
	inner.On("LoadActivations", mock.Anything).Return(table, []string(nil))

	store := &contract.MockSnapshotStore{}
	store.On("Get", "activations:k").Return([]byte(nil), 0, int64(0), sql.ErrNoRows)
	store.On("Set", "activations:k", mock.Anything, snapshotVersion, now.Unix()).Return(nil)

	cached := NewCachedActivationSource(inner, store, "k", 10*time.Minute)
	cached.now = func() time.Time { return now }

	got, warnings := cached.LoadActivations(context.Background())

	assert.Empty(t, warnings)
	require.Len(t, got.Records, 1)
	store.AssertExpectations(t)
}

// TestCachedActivationSourceStoreFailure checks degradation to a warning
// when the snapshot write fails.
func TestCachedActivationSourceStoreFailure(t *testing.T) {
	table := pipelineFixture()
	now := time.Date(2026, time.June, 10, 12, 0, 0, 0, time.UTC)

	inner := &contract.MockDataSource{}
	inner.On("LoadActivations", mock.Anything).Return(table, []string(nil))

	store := &contract.MockSnapshotStore{}
	store.On("Get", "activations:k").Return([]byte(nil), 0, int64(0), sql.ErrNoRows)
	store.On("Set", "activations:k", mock.Anything, snapshotVersion, now.Unix()).
		Return(assert.AnError)

	cached := NewCachedActivationSource(inner, store, "k", 10*time.Minute)
	cached.now = func() time.Time { return now }

	got, warnings := cached.LoadActivations(context.Background())

	require.Len(t, got.Records, 1)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "cannot store activation snapshot")
}

// TestCachedActivationSourceDisabled checks that a zero TTL disables the
// store interaction entirely.
func TestCachedActivationSourceDisabled(t *testing.T) {
	table := pipelineFixture()

	inner := &contract.MockDataSource{}
	inner.On("LoadActivations", mock.Anything).Return(table, []string(nil))

	store := &contract.MockSnapshotStore{}

	cached := NewCachedActivationSource(inner, store, "k", 0)
	got, _ := cached.LoadActivations(context.Background())

	require.Len(t, got.Records, 1)
	store.AssertNotCalled(t, "Get", mock.Anything)
	store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestEncodeDecodeActivations checks the gob round trip.
func TestEncodeDecodeActivations(t *testing.T) {
	table := pipelineFixture()

	blob, err := encodeActivations(table)
	require.NoError(t, err)

	decoded, err := decodeActivations(blob)
	require.NoError(t, err)
	require.Len(t, decoded.Records, 1)
	assert.Equal(t, table.Records[0], decoded.Records[0])
}
