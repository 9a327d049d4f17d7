package testsupport

import (
	"path/filepath"
	"testing"

	"cdinventory/internal/inventory"
	"cdinventory/internal/snapshot"
)

// NewStore returns a store holding records in order.
func NewStore(records ...inventory.Record) *inventory.Store {
	store := inventory.NewStore()
	store.ReplaceAll(records)
	return store
}

// WriteSnapshot saves records to <dir>/CDInventory.dat and returns the path.
func WriteSnapshot(t testing.TB, dir string, records ...inventory.Record) string {
	t.Helper()

	path := filepath.Join(dir, snapshot.DefaultFileName)
	SaveSnapshot(t, path, records...)
	return path
}

// SaveSnapshot writes records to path through the snapshot gateway.
func SaveSnapshot(t testing.TB, path string, records ...inventory.Record) {
	t.Helper()

	if result := snapshot.NewGateway(nil).Save(path, NewStore(records...)); !result.OK() {
		t.Fatalf("save snapshot %s: %v", path, result.Err)
	}
}

// SnapshotBytes returns the encoded snapshot for records.
func SnapshotBytes(t testing.TB, records ...inventory.Record) []byte {
	t.Helper()

	return ReadFile(t, WriteSnapshot(t, t.TempDir(), records...))
}

// LoadSnapshot reads path into a fresh store, failing unless the load succeeds.
func LoadSnapshot(t testing.TB, path string) []inventory.Record {
	t.Helper()

	store := inventory.NewStore()
	if result := snapshot.NewGateway(nil).Load(path, store); !result.OK() {
		t.Fatalf("load snapshot %s: %v", path, result.Err)
	}
	return store.List()
}
