package snapshot

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"cdinventory/internal/inventory"
	"cdinventory/internal/logging"
)

// DefaultFileName is the snapshot file used when no path is configured.
const DefaultFileName = "CDInventory.dat"

// Target receives the records of a loaded snapshot.
type Target interface {
	Clear()
	ReplaceAll(records []inventory.Record)
}

// Source supplies the records written by Save.
type Source interface {
	List() []inventory.Record
}

// Gateway bridges an inventory and its snapshot file.
type Gateway struct {
	logger *slog.Logger
}

// NewGateway constructs a gateway. A nil logger disables logging.
func NewGateway(logger *slog.Logger) *Gateway {
	return &Gateway{logger: logging.NewComponentLogger(logger, "snapshot")}
}

// Load clears target, then replaces its contents with the snapshot at path.
// On NotFound or Corrupt the target is left empty.
func (g *Gateway) Load(path string, target Target) LoadResult {
	target.Clear()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			g.logger.Info("snapshot file not found; inventory starts empty",
				logging.String(logging.FieldEventType, "snapshot_not_found"),
				logging.String(logging.FieldPath, path))
			return LoadResult{
				Status: LoadNotFound,
				Path:   path,
				Err:    fmt.Errorf("%w: %s", ErrNotFound, path),
			}
		}
		return g.corrupt(path, fmt.Errorf("read %s: %w", path, err))
	}

	records, err := decode(data)
	if err != nil {
		return g.corrupt(path, err)
	}

	target.ReplaceAll(records)
	g.logger.Debug("loaded snapshot",
		logging.String(logging.FieldEventType, "snapshot_loaded"),
		logging.String(logging.FieldPath, path),
		logging.Int(logging.FieldRecordCount, len(records)))
	return LoadResult{Status: LoadSuccess, Path: path, Count: len(records)}
}

func (g *Gateway) corrupt(path string, cause error) LoadResult {
	logging.WarnWithContext(g.logger, "snapshot file unreadable", "snapshot_corrupt",
		logging.String(logging.FieldPath, path),
		logging.Error(cause),
		logging.String(logging.FieldErrorHint, "restore the file from a backup or remove it"),
		logging.String(logging.FieldImpact, "inventory starts empty"))
	return LoadResult{
		Status: LoadCorrupt,
		Path:   path,
		Err:    fmt.Errorf("%w: %w", ErrCorrupt, cause),
	}
}

// Save writes every record from source to path, replacing any previous
// snapshot only once the new one is fully on disk.
func (g *Gateway) Save(path string, source Source) SaveResult {
	records := source.List()

	data, err := encode(records)
	if err != nil {
		return g.saveFailed(path, err)
	}
	if err := writeAtomic(path, data); err != nil {
		return g.saveFailed(path, err)
	}
	if err := syncDir(filepath.Dir(path)); err != nil {
		logging.WarnWithContext(g.logger, "snapshot directory sync failed", "snapshot_dir_sync_failed",
			logging.String(logging.FieldPath, path),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check the filesystem holding the snapshot"),
			logging.String(logging.FieldImpact, "the new snapshot may not survive a power loss"))
	}

	g.logger.Debug("saved snapshot",
		logging.String(logging.FieldEventType, "snapshot_saved"),
		logging.String(logging.FieldPath, path),
		logging.Int(logging.FieldRecordCount, len(records)))
	return SaveResult{Status: SaveSuccess, Path: path, Count: len(records)}
}

func (g *Gateway) saveFailed(path string, cause error) SaveResult {
	logging.WarnWithContext(g.logger, "snapshot save failed", "snapshot_save_failed",
		logging.String(logging.FieldPath, path),
		logging.Error(cause),
		logging.String(logging.FieldErrorHint, "check that the directory exists and is writable"),
		logging.String(logging.FieldImpact, "previous snapshot left unchanged"))
	return SaveResult{
		Status: SaveFailure,
		Path:   path,
		Err:    fmt.Errorf("%w: %w", ErrWriteFailure, cause),
	}
}

func writeAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}
	if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// syncDir flushes a directory entry update such as a rename.
func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("open snapshot directory: %w", err)
	}
	defer d.Close()
	if err := d.Sync(); err != nil {
		return fmt.Errorf("sync snapshot directory: %w", err)
	}
	return nil
}
