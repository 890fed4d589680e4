package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"weblog-analytics/internal/models"
	"weblog-analytics/internal/shared/filestorages"
	"weblog-analytics/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSnapshot() *models.DashboardSnapshot {
	return &models.DashboardSnapshot{
		ID:          "01J9Z3NDEKTSV4RRFFQ69G5FAV",
		GeneratedAt: time.Date(2024, 10, 10, 6, 0, 10, 0, time.UTC),
		Day:         models.Day{Year: 2024, Month: time.October, Day: 10},
		Granularity: models.Granularity15Minutes,
		TimeZone:    "UTC",
		Sources: []models.SourceStatus{
			{Kind: models.SourceAccessLog, Key: "logs/access.log", Stats: models.ParseStats{Lines: 4, Parsed: 4, DroppedByReason: map[string]int64{}}},
		},
		Dashboard: models.DashboardView{
			Series: &models.BucketSeries{
				Day:         models.Day{Year: 2024, Month: time.October, Day: 10},
				Granularity: models.Granularity15Minutes,
				Buckets: []models.TimeBucket{
					{Label: "2024-10-10 10:00", Counts: map[models.StatusClass]int64{models.StatusClass2xx: 2}},
				},
			},
			StatusClassRanking: []models.RankingEntry{{Label: "200-299", Count: 2}},
		},
		AccessRecords: []*models.LogRecord{{ClientAddress: "10.0.0.1"}},
	}
}

func TestSnapshotStore_Put_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSnapshotStore(mockFileStorage, "snapshots/latest.json")

	ctx := context.Background()
	snapshot := newTestSnapshot()
	expectedJSON, _ := json.Marshal(snapshot)

	mockFileStorage.EXPECT().
		Put(ctx, "snapshots/latest.json", gomock.Any()).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader) (*filestorages.PutResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.JSONEq(t, string(expectedJSON), string(data))
			assert.NotContains(t, string(data), "10.0.0.1")
			return &filestorages.PutResult{FileKey: key}, nil
		})

	err := store.Put(ctx, snapshot)
	assert.NoError(t, err)
}

func TestSnapshotStore_Put_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSnapshotStore(mockFileStorage, "snapshots/latest.json")

	ctx := context.Background()
	mockFileStorage.EXPECT().
		Put(ctx, "snapshots/latest.json", gomock.Any()).
		Return(nil, errors.New("storage error"))

	err := store.Put(ctx, newTestSnapshot())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to put snapshot")
	assert.Contains(t, err.Error(), "storage error")
}

func TestSnapshotStore_Get_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSnapshotStore(mockFileStorage, "snapshots/latest.json")

	ctx := context.Background()
	expected := newTestSnapshot()
	jsonData, _ := json.Marshal(expected)

	mockFileStorage.EXPECT().
		Get(ctx, "snapshots/latest.json").
		Return(io.NopCloser(bytes.NewReader(jsonData)), nil)

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected.ID, got.ID)
	assert.Equal(t, expected.Day, got.Day)
	assert.Equal(t, expected.Granularity, got.Granularity)
	assert.Equal(t, expected.Dashboard.Series.Buckets, got.Dashboard.Series.Buckets)
	assert.Empty(t, got.AccessRecords)
}

func TestSnapshotStore_Get_FileNotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSnapshotStore(mockFileStorage, "snapshots/latest.json")

	ctx := context.Background()
	mockFileStorage.EXPECT().
		Get(ctx, "snapshots/latest.json").
		Return(nil, filestorages.ErrFileNotFound)

	got, err := store.Get(ctx)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, filestorages.ErrFileNotFound)
}
