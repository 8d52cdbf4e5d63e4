package config_test

import (
	"path/filepath"
	"testing"

	"recipe-share/config"
	"recipe-share/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"RECIPE_HOST", "RECIPE_PORT", "RECIPE_DB_PATH",
		"RECIPE_TEMPLATES", "RECIPE_STATIC_DIR", "RECIPE_FALLBACK_USER_ID",
	} {
		t.Setenv(key, "")
	}

	cfg := config.Load()
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "5005", cfg.Port)
	assert.Equal(t, "database/meal_sharing.db", cfg.DBPath)
	assert.Equal(t, "templates/*.html", cfg.TemplatesGlob)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.Equal(t, uint(1), cfg.FallbackUserID)
	assert.Equal(t, "0.0.0.0:5005", cfg.Addr())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("RECIPE_HOST", "127.0.0.1")
	t.Setenv("RECIPE_PORT", "9000")
	t.Setenv("RECIPE_DB_PATH", "/tmp/recipes.db")
	t.Setenv("RECIPE_FALLBACK_USER_ID", "7")

	cfg := config.Load()
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr())
	assert.Equal(t, "/tmp/recipes.db", cfg.DBPath)
	assert.Equal(t, uint(7), cfg.FallbackUserID)
}

func TestLoadIgnoresUnparseableFallbackID(t *testing.T) {
	t.Setenv("RECIPE_FALLBACK_USER_ID", "not-a-number")
	cfg := config.Load()
	assert.Equal(t, uint(1), cfg.FallbackUserID)
}

func TestInitDBCreatesMigratesAndSeeds(t *testing.T) {
	cfg := config.Config{DBPath: filepath.Join(t.TempDir(), "data", "test.db")}

	db, err := config.InitDB(cfg)
	require.NoError(t, err)

	var users, recipes, tags, links int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Recipe{}).Count(&recipes).Error)
	require.NoError(t, db.Model(&models.DietaryTag{}).Count(&tags).Error)
	require.NoError(t, db.Model(&models.RecipeIngredient{}).Count(&links).Error)
	assert.EqualValues(t, 3, users)
	assert.EqualValues(t, 2, recipes)
	assert.EqualValues(t, 4, tags)
	assert.EqualValues(t, 6, links)

	// Seeding is idempotent
	require.NoError(t, config.Seed(db))
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.EqualValues(t, 3, users)
}
