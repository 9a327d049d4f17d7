package snapshot

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a load whose target file does not exist.
	ErrNotFound = errors.New("snapshot file not found")
	// ErrCorrupt marks a load whose target exists but is not a valid snapshot.
	ErrCorrupt = errors.New("snapshot file is corrupt")
	// ErrWriteFailure marks a save that could not replace the target file.
	ErrWriteFailure = errors.New("snapshot write failed")
)

// LoadStatus discriminates the outcome of Gateway.Load.
type LoadStatus int

const (
	LoadSuccess LoadStatus = iota
	LoadNotFound
	LoadCorrupt
)

func (s LoadStatus) String() string {
	switch s {
	case LoadSuccess:
		return "success"
	case LoadNotFound:
		return "not_found"
	case LoadCorrupt:
		return "corrupt"
	default:
		return fmt.Sprintf("load_status(%d)", int(s))
	}
}

// LoadResult reports the outcome of a load. Err is nil on success and wraps
// ErrNotFound or ErrCorrupt otherwise.
type LoadResult struct {
	Status LoadStatus
	Path   string
	Count  int
	Err    error
}

// OK reports whether the load replaced the target with the file contents.
func (r LoadResult) OK() bool { return r.Status == LoadSuccess }

func (r LoadResult) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: %v", r.Status, r.Err)
	}
	return fmt.Sprintf("%s: %d records from %s", r.Status, r.Count, r.Path)
}

// SaveStatus discriminates the outcome of Gateway.Save.
type SaveStatus int

const (
	SaveSuccess SaveStatus = iota
	SaveFailure
)

func (s SaveStatus) String() string {
	switch s {
	case SaveSuccess:
		return "success"
	case SaveFailure:
		return "failure"
	default:
		return fmt.Sprintf("save_status(%d)", int(s))
	}
}

// SaveResult reports the outcome of a save. Err is nil on success and wraps
// ErrWriteFailure otherwise.
type SaveResult struct {
	Status SaveStatus
	Path   string
	Count  int
	Err    error
}

// OK reports whether the snapshot now reflects the saved records.
func (r SaveResult) OK() bool { return r.Status == SaveSuccess }

func (r SaveResult) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: %v", r.Status, r.Err)
	}
	return fmt.Sprintf("%s: %d records to %s", r.Status, r.Count, r.Path)
}
