package services

import (
	"path/filepath"
	"testing"

	"github.com/fahrezi93/NutriSuggest/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestHistory(t *testing.T) *HistoryService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "history.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.SavedRecommendation{}))
	return NewHistoryService(db)
}

func TestSaveThenListNewestFirst(t *testing.T) {
	hist := newTestHistory(t)

	first, err := hist.Save(1, []string{"Ayam"}, FallbackResult())
	require.NoError(t, err)
	second, err := hist.Save(1, []string{"Brokoli"}, FallbackResult())
	require.NoError(t, err)

	entries, err := hist.List(1, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, second, entries[0].ID, "newest entry first")
	assert.Equal(t, first, entries[1].ID)
	assert.Equal(t, []string{"Brokoli"}, entries[0].Ingredients)

	// the reduced copy keeps foods, analysis and advice; no meal plans
	assert.Len(t, entries[0].Result.Foods, 5)
	assert.Equal(t, 541.0, entries[0].Result.NutritionAnalysis.TotalCalories)
	assert.Len(t, entries[0].Result.HealthAdvice, 4)
}

func TestListHonorsLimitBounds(t *testing.T) {
	hist := newTestHistory(t)

	for i := 0; i < 25; i++ {
		_, err := hist.Save(1, nil, FallbackResult())
		require.NoError(t, err)
	}

	entries, err := hist.List(1, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 10, "zero limit falls back to the default")

	entries, err = hist.List(1, 100)
	require.NoError(t, err)
	assert.Len(t, entries, 20, "limit is capped")
}

func TestDeleteOneIsIdempotent(t *testing.T) {
	hist := newTestHistory(t)

	id, err := hist.Save(7, []string{"Tahu"}, FallbackResult())
	require.NoError(t, err)

	require.NoError(t, hist.DeleteOne(7, id))

	entries, err := hist.List(7, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// deleting again, or deleting an id that never existed, is not an error
	assert.NoError(t, hist.DeleteOne(7, id))
	assert.NoError(t, hist.DeleteOne(7, 9999))
}

func TestUserIsolation(t *testing.T) {
	hist := newTestHistory(t)

	aliceID, err := hist.Save(1, []string{"Ayam"}, FallbackResult())
	require.NoError(t, err)
	_, err = hist.Save(2, []string{"Tempe"}, FallbackResult())
	require.NoError(t, err)

	// user B cannot see or delete user A's entry
	entries, err := hist.List(2, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"Tempe"}, entries[0].Ingredients)

	_, err = hist.Get(2, aliceID)
	assert.ErrorIs(t, err, ErrEntryNotFound)

	require.NoError(t, hist.DeleteOne(2, aliceID))
	entries, err = hist.List(1, 10)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "cross-user delete must not touch the owner's entry")
}

func TestDeleteAll(t *testing.T) {
	hist := newTestHistory(t)

	for i := 0; i < 3; i++ {
		_, err := hist.Save(1, nil, FallbackResult())
		require.NoError(t, err)
	}
	_, err := hist.Save(2, nil, FallbackResult())
	require.NoError(t, err)

	require.NoError(t, hist.DeleteAll(1))

	entries, err := hist.List(1, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = hist.List(2, 10)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "other users' history is untouched")
}

func TestGetEntry(t *testing.T) {
	hist := newTestHistory(t)

	id, err := hist.Save(1, []string{"Ayam", "Brokoli"}, FallbackResult())
	require.NoError(t, err)

	entry, err := hist.Get(1, id)
	require.NoError(t, err)
	assert.Equal(t, id, entry.ID)
	assert.Equal(t, []string{"Ayam", "Brokoli"}, entry.Ingredients)
	assert.False(t, entry.Timestamp.IsZero(), "timestamp is assigned by the store")
}
