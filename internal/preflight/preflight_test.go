package preflight_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cdinventory/internal/inventory"
	"cdinventory/internal/preflight"
	"cdinventory/internal/testsupport"
)

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()

	ok := preflight.CheckDirectoryAccess("Dir", dir)
	assert.True(t, ok.Passed)
	assert.Contains(t, ok.Detail, "read/write ok")

	missing := preflight.CheckDirectoryAccess("Dir", filepath.Join(dir, "absent"))
	assert.False(t, missing.Passed)
	assert.Contains(t, missing.Detail, "does not exist")

	file := filepath.Join(dir, "file")
	testsupport.WriteFile(t, file, []byte("x"))
	notDir := preflight.CheckDirectoryAccess("Dir", file)
	assert.False(t, notDir.Passed)
	assert.Contains(t, notDir.Detail, "is not a directory")
}

func TestCheckWritableParentMissingDirectory(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b")

	res := preflight.CheckWritableParent("Data directory", target)

	assert.True(t, res.Passed)
	assert.Contains(t, res.Detail, "will be created")
}

func TestCheckWritableParentBlockedByFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	testsupport.WriteFile(t, blocker, []byte("x"))

	res := preflight.CheckWritableParent("Data directory", filepath.Join(blocker, "sub"))

	assert.False(t, res.Passed)
}

func TestCheckSnapshotFile(t *testing.T) {
	dir := t.TempDir()

	missing := preflight.CheckSnapshotFile("Data file", filepath.Join(dir, "none.dat"))
	assert.True(t, missing.Passed)
	assert.Contains(t, missing.Detail, "not created yet")

	path := testsupport.WriteSnapshot(t, dir, inventory.Record{ID: 1, Title: "A", Artist: "B"})
	valid := preflight.CheckSnapshotFile("Data file", path)
	assert.True(t, valid.Passed)
	assert.Contains(t, valid.Detail, "1 records")

	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))
	corrupt := preflight.CheckSnapshotFile("Data file", path)
	assert.False(t, corrupt.Passed)
	assert.Contains(t, corrupt.Detail, "corrupt")
}

func TestRunAll(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithLogDir())

	results := preflight.RunAll(cfg)

	require.Len(t, results, 3)
	assert.True(t, preflight.AllPassed(results))
	assert.Nil(t, preflight.RunAll(nil))
}

func TestAllPassed(t *testing.T) {
	assert.True(t, preflight.AllPassed(nil))
	assert.False(t, preflight.AllPassed([]preflight.Result{{Passed: true}, {Passed: false}}))
}
