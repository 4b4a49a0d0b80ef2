package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndListRuns(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	started := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"run-a", "run-b"} {
		run := domain.BatchRun{
			RunID:      id,
			InputPath:  "categories.csv",
			OutputDir:  "out",
			Style:      "classic",
			StartedAt:  started.Add(time.Duration(i) * time.Hour),
			FinishedAt: started.Add(time.Duration(i)*time.Hour + time.Minute),
			Rows:       10,
			Sourced:    6,
			Generated:  3,
			Skipped:    1,
		}
		require.NoError(t, store.SaveRun(ctx, run))
	}

	runs, err := store.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-b", runs[0].RunID, "most recent first")
	assert.Equal(t, 6, runs[1].Sourced)
}

func TestSaveRunUpsert(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	run := domain.BatchRun{RunID: "run-a", StartedAt: time.Now().UTC(), Rows: 1}
	require.NoError(t, store.SaveRun(ctx, run))
	run.Rows = 5
	run.Failed = 2
	require.NoError(t, store.SaveRun(ctx, run))

	runs, err := store.ListRuns(ctx, 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 5, runs[0].Rows)
	assert.Equal(t, 2, runs[0].Failed)
}

func TestRecordsInWriteOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, catid := range []string{"30", "10", "20"} {
		record := domain.ManifestRecord{
			Catid:            catid,
			TitleSelected:    "subject " + catid,
			ConceptNotes:     "synthesized emblem motif",
			PrimitivesUsed:   []string{"circle", "line"},
			PathHash:         "hash-" + catid,
			Width:            256,
			Height:           256,
			StrokeWidth:      12,
			ColorHex:         "#E63B14",
			ValidationPassed: true,
			SourceIcon:       domain.GeneratedMarker,
		}
		require.NoError(t, store.SaveRecord(ctx, "run-a", record))
	}

	records, err := store.Records(ctx, "run-a")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "30", records[0].Catid)
	assert.Equal(t, []string{"circle", "line"}, records[0].PrimitivesUsed)
	assert.True(t, records[0].ValidationPassed)

	none, err := store.Records(ctx, "run-z")
	require.NoError(t, err)
	assert.Empty(t, none)
}
