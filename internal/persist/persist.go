package persist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"vidvault/internal/logging"
	"vidvault/internal/store"
)

// Outcome names the branch Load took.
type Outcome int

const (
	// OutcomeAbsent means no library file existed; the store starts empty.
	OutcomeAbsent Outcome = iota
	// OutcomeValid means the file parsed; the store holds its records.
	OutcomeValid
	// OutcomeCorrupted means the file was unreadable or unparsable; the
	// store starts empty and, when possible, a backup was written.
	OutcomeCorrupted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAbsent:
		return "absent"
	case OutcomeValid:
		return "valid"
	case OutcomeCorrupted:
		return "corrupted"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result describes what Load found on disk.
type Result struct {
	Outcome Outcome
	// BackupPath is the forensic copy of a corrupted file, when one was
	// written.
	BackupPath string
	// DroppedRecords counts records discarded during normalization
	// (duplicate or non-positive ids).
	DroppedRecords int
	// LegacyFormat reports that the file held the predecessor's bare
	// top-level array; the next save upgrades it.
	LegacyFormat bool
}

// document is the on-disk shape of the library.
type document struct {
	NextID int64         `json:"nextId"`
	Videos []store.Video `json:"videos"`
}

// Load reads the library at path. It always returns a usable store; the
// returned error is non-nil only when a corrupted file could not be copied
// to its backup, which callers should treat as fatal since retrying the next
// save would overwrite the only copy of the damaged data.
func Load(path string, logger *slog.Logger) (*store.Store, Result, error) {
	logger = logging.NewComponentLogger(logger, "persist")

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("library file not found, starting empty",
				logging.String(logging.FieldPath, path))
			return store.NewStore(), Result{Outcome: OutcomeAbsent}, nil
		}
		logger.Warn("library file unreadable, starting empty",
			logging.String(logging.FieldEventType, "library_unreadable"),
			logging.String(logging.FieldPath, path),
			logging.Error(err))
		return store.NewStore(), Result{Outcome: OutcomeCorrupted}, nil
	}

	if len(bytes.TrimSpace(data)) == 0 {
		logger.Debug("library file empty, starting empty",
			logging.String(logging.FieldPath, path))
		return store.NewStore(), Result{Outcome: OutcomeAbsent}, nil
	}

	videos, storedNextID, legacy, parseErr := decodeDocument(data)
	if parseErr != nil {
		backupPath, backupErr := backupCorrupted(path)
		if backupErr != nil {
			logger.Error("failed to back up corrupted library file",
				logging.String(logging.FieldPath, path),
				logging.Error(backupErr))
			return store.NewStore(), Result{Outcome: OutcomeCorrupted},
				fmt.Errorf("back up corrupted library file %s: %w", path, backupErr)
		}
		logger.Warn("library file corrupted, starting empty",
			logging.String(logging.FieldEventType, "library_corrupted"),
			logging.String(logging.FieldPath, path),
			logging.String("backup_path", backupPath),
			logging.Error(parseErr))
		return store.NewStore(), Result{Outcome: OutcomeCorrupted, BackupPath: backupPath}, nil
	}

	s, dropped := store.Rebuild(videos, storedNextID)
	if dropped > 0 {
		logger.Warn("discarded inconsistent records while loading library",
			logging.String(logging.FieldPath, path),
			logging.Int("dropped", dropped))
	}
	logger.Debug("loaded library",
		logging.String(logging.FieldPath, path),
		logging.Int("video_count", s.Len()),
		logging.Bool("legacy_format", legacy))
	return s, Result{Outcome: OutcomeValid, DroppedRecords: dropped, LegacyFormat: legacy}, nil
}

func decodeDocument(data []byte) (videos []store.Video, storedNextID int64, legacy bool, err error) {
	trimmed := bytes.TrimSpace(data)
	if trimmed[0] == '[' {
		// The predecessor tool wrote a bare list of records.
		if err := json.Unmarshal(trimmed, &videos); err != nil {
			return nil, 0, false, fmt.Errorf("parse legacy video list: %w", err)
		}
		return videos, 0, true, nil
	}

	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, 0, false, fmt.Errorf("parse library document: %w", err)
	}
	return doc.Videos, doc.NextID, false, nil
}

// Save writes the store to path atomically: the full document goes to a
// pending file in the same directory, is synced to stable storage, and is
// renamed over the target. On success the store is marked clean.
func Save(path string, s *store.Store) error {
	if s == nil {
		return errors.New("save: nil store")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create library directory: %w", err)
	}

	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending library file: %w", err)
	}
	defer func() {
		_ = pending.Cleanup()
	}()

	enc := json.NewEncoder(pending)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{NextID: s.NextID(), Videos: s.List()}); err != nil {
		return fmt.Errorf("encode library: %w", err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace library file: %w", err)
	}

	s.MarkClean()
	return nil
}
