package journal_repo

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"satta_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) *repo {
	t.Helper()
	r, err := NewJournalRepository(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r.(*repo)
}

func TestAppendAndRecent(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		err := r.Append(ctx, &model.JournalEntry{
			OutcomeID:     []string{"a", "b", "c"}[i],
			ResultNumber:  i,
			Weights:       [10]float64{0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1},
			HotNumbers:    []int{1},
			ColdNumbers:   []int{9, 8},
			StreakType:    model.RangeSmall,
			CurrentStreak: i + 1,
			Trap:          model.TrapSSB,
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	entries, err := r.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "c", entries[0].OutcomeID)
	assert.Equal(t, "b", entries[1].OutcomeID)
	assert.Equal(t, 2, entries[0].ResultNumber)
	assert.Equal(t, []int{1}, entries[0].HotNumbers)
	assert.Equal(t, []int{9, 8}, entries[0].ColdNumbers)
	assert.Equal(t, model.RangeSmall, entries[0].StreakType)
	assert.Equal(t, 3, entries[0].CurrentStreak)
	assert.Equal(t, model.TrapSSB, entries[0].Trap)
	assert.InDelta(t, 0.1, entries[0].Weights[5], 1e-12)
	assert.True(t, base.Add(2*time.Minute).Equal(entries[0].CreatedAt))
}

func TestAppend_EmptySetsAndNoTrap(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Append(ctx, &model.JournalEntry{OutcomeID: "x", ResultNumber: 4}))

	entries, err := r.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].HotNumbers)
	assert.Equal(t, model.TrapNone, entries[0].Trap)
	assert.Equal(t, model.RangeNone, entries[0].StreakType)
	assert.False(t, entries[0].CreatedAt.IsZero())
}

func TestAppend_DuplicateOutcomeRejected(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Append(ctx, &model.JournalEntry{OutcomeID: "dup"}))
	assert.Error(t, r.Append(ctx, &model.JournalEntry{OutcomeID: "dup"}))
}
