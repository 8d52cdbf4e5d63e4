package docstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleFavorites(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	favs := SampleFavorites(now)
	require.Len(t, favs, 4)
	for _, f := range favs {
		assert.Equal(t, now, f.SavedAt)
		assert.NotEmpty(t, f.UserID)
		assert.NotZero(t, f.RecipeID)
	}
}

func TestSampleReviews(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	reviews := SampleReviews(now)
	require.Len(t, reviews, 5)
	for _, r := range reviews {
		assert.GreaterOrEqual(t, r.Rating, 1)
		assert.LessOrEqual(t, r.Rating, 5)
		assert.NotEmpty(t, r.Comment)
	}
	// The first three carry fixed historical timestamps, the rest use now.
	assert.Equal(t, 2025, reviews[0].CreatedAt.Year())
	assert.Equal(t, now, reviews[3].CreatedAt)
	assert.Equal(t, now, reviews[4].CreatedAt)
}

func TestDatabaseName(t *testing.T) {
	assert.Equal(t, "campus_meal_plan", DatabaseName)
}
