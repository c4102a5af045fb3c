package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"stock-tracker/internal/models"
)

// DefaultSnapshotPath is used when a caller passes an empty path
const DefaultSnapshotPath = "inventory.json"

// SnapshotRepository persists the stock table as a pretty-printed JSON
// object: string item names mapped to integer quantities, 2-space indent.
// Keys are emitted in sorted order, so repeated saves of identical data are
// byte-identical.
type SnapshotRepository struct{}

// NewSnapshotRepository creates a new snapshot repository
func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{}
}

// Write serializes the full stock table to path. The data goes through a
// temp file in the same directory followed by a rename, so a failed write
// never truncates an existing snapshot.
func (r *SnapshotRepository) Write(path string, stock map[string]int) error {
	if path == "" {
		path = DefaultSnapshotPath
	}

	data, err := json.MarshalIndent(stock, "", "  ")
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to encode snapshot")
		return &models.StorageError{Path: path, Op: "encode", Cause: err}
	}

	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.New().String()[:8])
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to write snapshot")
		return &models.StorageError{Path: path, Op: "write", Cause: err}
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		log.Error().Err(err).Str("path", path).Msg("Failed to replace snapshot")
		return &models.StorageError{Path: path, Op: "replace", Cause: err}
	}

	log.Debug().Str("path", path).Int("items", len(stock)).Msg("Snapshot written")
	return nil
}

// Read deserializes the snapshot at path. A missing file is an expected,
// recoverable condition: the caller gets an empty mapping and a warning.
// Malformed contents fail without returning a partial mapping.
func (r *SnapshotRepository) Read(path string) (map[string]int, error) {
	if path == "" {
		path = DefaultSnapshotPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Warn().Str("path", path).Msg("Snapshot file not found, starting with empty inventory")
			return map[string]int{}, nil
		}
		log.Error().Err(err).Str("path", path).Msg("Failed to read snapshot")
		return nil, &models.StorageError{Path: path, Op: "read", Cause: err}
	}

	stock := make(map[string]int)
	if err := json.Unmarshal(data, &stock); err != nil {
		log.Error().Err(err).Str("path", path).Msg("Invalid JSON in snapshot file")
		return nil, &models.ParseError{Path: path, Cause: err}
	}

	log.Debug().Str("path", path).Int("items", len(stock)).Msg("Snapshot loaded")
	return stock, nil
}
