package snapshot_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cdinventory/internal/inventory"
	"cdinventory/internal/snapshot"
	"cdinventory/internal/testsupport"
)

func newGateway() *snapshot.Gateway {
	return snapshot.NewGateway(nil)
}

type recordingTarget struct {
	calls []string
}

func (r *recordingTarget) Clear() { r.calls = append(r.calls, "clear") }

func (r *recordingTarget) ReplaceAll(records []inventory.Record) {
	r.calls = append(r.calls, "replace")
}

func TestSaveLoadExampleScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.dat")
	gw := newGateway()

	store := inventory.NewStore()
	store.Add(1, "Abbey Road", "Beatles")
	store.Add(2, "Thriller", "Jackson")

	saved := gw.Save(path, store)
	require.True(t, saved.OK(), saved.String())
	assert.Equal(t, 2, saved.Count)

	fresh := inventory.NewStore()
	loaded := gw.Load(path, fresh)
	require.True(t, loaded.OK(), loaded.String())
	assert.Equal(t, 2, loaded.Count)
	assert.Equal(t, []inventory.Record{
		{ID: 1, Title: "Abbey Road", Artist: "Beatles"},
		{ID: 2, Title: "Thriller", Artist: "Jackson"},
	}, fresh.List())
}

func TestRoundTripPreservesOrderDuplicatesAndText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.dat")
	gw := newGateway()

	records := []inventory.Record{
		{ID: 5, Title: "Rock & Roll <Live>", Artist: "Band \"Quoted\""},
		{ID: -1, Title: "", Artist: ""},
		{ID: 5, Title: "Björk – Début", Artist: "Björk"},
		{ID: 0, Title: "Tabs\tand\nnewlines", Artist: "日本語"},
	}
	store := inventory.NewStore()
	store.ReplaceAll(records)

	require.True(t, gw.Save(path, store).OK())

	fresh := inventory.NewStore()
	require.True(t, gw.Load(path, fresh).OK())
	assert.Equal(t, records, fresh.List())
}

func TestRoundTripEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.dat")
	gw := newGateway()

	require.True(t, gw.Save(path, inventory.NewStore()).OK())

	fresh := inventory.NewStore()
	fresh.Add(1, "stale", "stale")
	result := gw.Load(path, fresh)
	require.True(t, result.OK())
	assert.Equal(t, 0, fresh.Len())
}

func TestSaveOverwritesWholeSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.dat")
	gw := newGateway()

	store := inventory.NewStore()
	store.Add(1, "A", "a")
	store.Add(2, "B", "b")
	store.Add(3, "C", "c")
	require.True(t, gw.Save(path, store).OK())

	store.Remove(1)
	store.Remove(3)
	require.True(t, gw.Save(path, store).OK())

	fresh := inventory.NewStore()
	require.True(t, gw.Load(path, fresh).OK())
	assert.Equal(t, []inventory.Record{{ID: 2, Title: "B", Artist: "b"}}, fresh.List())
}

func TestLoadMissingFileEmptiesStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.dat")
	gw := newGateway()

	store := inventory.NewStore()
	store.Add(1, "Keep?", "No")

	for range 2 {
		result := gw.Load(path, store)
		assert.Equal(t, snapshot.LoadNotFound, result.Status)
		assert.False(t, result.OK())
		assert.ErrorIs(t, result.Err, snapshot.ErrNotFound)
		assert.Equal(t, 0, store.Len())
	}
}

func TestLoadClearsBeforeOpening(t *testing.T) {
	target := &recordingTarget{}

	newGateway().Load(filepath.Join(t.TempDir(), "missing.dat"), target)

	assert.Equal(t, []string{"clear"}, target.calls)
}

func TestLoadSuccessClearsThenReplaces(t *testing.T) {
	path := testsupport.WriteSnapshot(t, t.TempDir(), inventory.Record{ID: 1, Title: "T", Artist: "A"})
	target := &recordingTarget{}

	result := newGateway().Load(path, target)

	require.True(t, result.OK())
	assert.Equal(t, []string{"clear", "replace"}, target.calls)
}

func TestLoadCorruptInputsEmptyStore(t *testing.T) {
	valid := string(testsupport.SnapshotBytes(t,
		inventory.Record{ID: 1, Title: "Abbey Road", Artist: "Beatles"},
		inventory.Record{ID: 2, Title: "Thriller", Artist: "Jackson"}))

	cases := map[string]string{
		"garbage bytes":    "\x80\x03]q\x00(}q\x01(X\x02\x00\x00\x00IDq\x02K\x01",
		"empty file":       "",
		"whitespace only":  "   \n\t",
		"truncated":        valid[:len(valid)/2],
		"tampered title":   strings.Replace(valid, "Thriller", "Bad", 1),
		"foreign json":     `[{"ID": 1, "Title": "Abbey Road", "Artist": "Beatles"}]`,
		"wrong marker":     strings.Replace(valid, "cdinventory.snapshot", "other.format", 1),
		"wrong version":    strings.Replace(valid, `"version": 1`, `"version": 2`, 1),
		"trailing data":    valid + "{}",
		"unknown field":    strings.Replace(valid, `"version": 1,`, `"version": 1, "extra": true,`, 1),
		"null records":     `{"format":"cdinventory.snapshot","version":1,"records":null,"checksum":""}`,
		"missing records":  `{"format":"cdinventory.snapshot","version":1,"checksum":""}`,
		"string record id": strings.Replace(valid, `"id": 1`, `"id": "1"`, 1),
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "inventory.dat")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			store := inventory.NewStore()
			store.Add(99, "Stale", "Stale")

			result := newGateway().Load(path, store)

			assert.Equal(t, snapshot.LoadCorrupt, result.Status)
			assert.ErrorIs(t, result.Err, snapshot.ErrCorrupt)
			assert.Equal(t, 0, store.Len())
		})
	}
}

func TestLoadDirectoryIsCorrupt(t *testing.T) {
	dir := t.TempDir()
	store := inventory.NewStore()
	store.Add(1, "Stale", "Stale")

	result := newGateway().Load(dir, store)

	assert.Equal(t, snapshot.LoadCorrupt, result.Status)
	assert.Equal(t, 0, store.Len())
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inventory.dat")
	store := inventory.NewStore()
	store.Add(1, "A", "B")

	require.True(t, newGateway().Save(path, store).OK())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "inventory.dat", entries[0].Name())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestSaveCreatesMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "inventory.dat")

	result := newGateway().Save(path, inventory.NewStore())

	require.True(t, result.OK(), result.String())
	assert.FileExists(t, path)
}

func TestSaveFailsWhenParentIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	result := newGateway().Save(filepath.Join(blocker, "inventory.dat"), inventory.NewStore())

	assert.Equal(t, snapshot.SaveFailure, result.Status)
	assert.False(t, result.OK())
	assert.ErrorIs(t, result.Err, snapshot.ErrWriteFailure)
	assert.Contains(t, result.String(), "failure")
}

func TestSaveFailureLeavesTargetUntouched(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "inventory.dat")
	require.NoError(t, os.Mkdir(target, 0o755))
	marker := filepath.Join(target, "keep.txt")
	require.NoError(t, os.WriteFile(marker, []byte("keep"), 0o644))

	store := inventory.NewStore()
	store.Add(1, "A", "B")
	result := newGateway().Save(target, store)

	require.Equal(t, snapshot.SaveFailure, result.Status)
	assert.FileExists(t, marker)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file must not be left behind")
}

func TestResultStrings(t *testing.T) {
	assert.Equal(t, "success", snapshot.LoadSuccess.String())
	assert.Equal(t, "not_found", snapshot.LoadNotFound.String())
	assert.Equal(t, "corrupt", snapshot.LoadCorrupt.String())
	assert.Equal(t, "failure", snapshot.SaveFailure.String())

	ok := snapshot.LoadResult{Status: snapshot.LoadSuccess, Path: "x.dat", Count: 2}
	assert.Equal(t, "success: 2 records from x.dat", ok.String())

	failed := snapshot.SaveResult{Status: snapshot.SaveFailure, Err: errors.New("disk full")}
	assert.Equal(t, "failure: disk full", failed.String())
}

func TestRoundTripInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.dat")
	gw := newGateway()

	store := inventory.NewStore()
	store.Add(1, "caf\xe9", "A\xff\xfeB")
	require.True(t, gw.Save(path, store).OK())

	fresh := inventory.NewStore()
	result := gw.Load(path, fresh)
	require.True(t, result.OK(), result.String())
	assert.Equal(t, []inventory.Record{{ID: 1, Title: "caf\uFFFD", Artist: "A\uFFFDB"}}, fresh.List())

	// The in-memory store keeps what the user typed.
	assert.Equal(t, "caf\xe9", store.List()[0].Title)
}
