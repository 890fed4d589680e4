package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"weblog-analytics/internal/models"
	"weblog-analytics/internal/shared/filestorages"
)

// SnapshotStore keeps the summary of the most recent dashboard snapshot. Each Put replaces the
// previous one atomically, so a reader of the stored file sees either the old or the new
// snapshot, never a mix.
//
//go:generate mockgen -source=snapshot_store.go -destination=./mocks/snapshot_store_mock.go -package=mocks
type SnapshotStore interface {
	Put(ctx context.Context, snapshot *models.DashboardSnapshot) error
	Get(ctx context.Context) (*models.DashboardSnapshot, error)
}

type snapshotStore struct {
	fileStorage filestorages.FileStorage
	key         string
}

func NewSnapshotStore(fileStorage filestorages.FileStorage, key string) SnapshotStore {
	return &snapshotStore{fileStorage: fileStorage, key: key}
}

func (s *snapshotStore) Put(ctx context.Context, snapshot *models.DashboardSnapshot) error {
	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	_, err = s.fileStorage.Put(ctx, s.key, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to put snapshot: %w", err)
	}
	return nil
}

// Get returns the stored snapshot summary. Records are not persisted, so the result only
// carries what the snapshot JSON holds.
func (s *snapshotStore) Get(ctx context.Context) (*models.DashboardSnapshot, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	var snapshot models.DashboardSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snapshot, nil
}
