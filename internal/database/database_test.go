package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukaszlop/ketoggler/config"
	"github.com/lukaszlop/ketoggler/internal/database"
	"github.com/lukaszlop/ketoggler/internal/logging"
	"github.com/lukaszlop/ketoggler/internal/model"
	"github.com/lukaszlop/ketoggler/internal/testhelpers"
)

func TestOpenSQLite(t *testing.T) {
	cfg := &config.Config{DBDriver: config.DriverSQLite, DBPath: filepath.Join(t.TempDir(), "test.db")}

	db, err := database.Open(cfg, logging.Discard())
	require.NoError(t, err)
	defer database.Close(db)

	assert.NoError(t, database.HealthCheck(context.Background(), db))
	assert.Equal(t, "sqlite", db.Dialector.Name())
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := database.Open(&config.Config{DBDriver: "mysql"}, logging.Discard())
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestSQLiteMigrations(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	ctx := context.Background()

	for _, m := range model.All() {
		assert.True(t, db.Migrator().HasTable(m))
	}

	migrator := database.NewMigrator(db, "", logging.Discard())
	require.NoError(t, migrator.Down(ctx))
	assert.False(t, db.Migrator().HasTable(&model.Recipe{}))

	require.NoError(t, migrator.Up(ctx))
	assert.True(t, db.Migrator().HasTable(&model.Recipe{}))
}

func TestSQLiteVersionTypeCheck(t *testing.T) {
	db := testhelpers.SetupSQLite(t)

	recipe := model.Recipe{Title: "Omelette", Description: "Three eggs and butter", UserID: "u1"}
	require.NoError(t, db.Create(&recipe).Error)

	err := db.Create(&model.RecipeVersion{RecipeID: recipe.ID, VersionNumber: 1, VersionType: "draft"}).Error
	assert.Error(t, err)

	err = db.Create(&model.RecipeVersion{RecipeID: recipe.ID, VersionNumber: 1, VersionType: model.VersionOriginal}).Error
	assert.NoError(t, err)
}

func TestPostgresMigrations(t *testing.T) {
	db, dsn := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()

	for _, table := range []string{"recipes", "macronutrients", "recipe_ingredients", "recipe_allergens", "recipe_versions", "favorites", "user_profiles", "audit_log"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	var enumCount int64
	require.NoError(t, db.Raw("SELECT count(*) FROM pg_type WHERE typname = 'recipe_version_type'").Scan(&enumCount).Error)
	assert.Equal(t, int64(1), enumCount)

	migrator := database.NewMigrator(db, dsn, logging.Discard())
	require.NoError(t, migrator.Down(ctx))
	assert.False(t, db.Migrator().HasTable("favorites"))
	assert.True(t, db.Migrator().HasTable("recipes"))

	require.NoError(t, migrator.Up(ctx))
	assert.True(t, db.Migrator().HasTable("favorites"))
}

func TestRedisOptions(t *testing.T) {
	opts, err := database.RedisOptions(&config.Config{RedisURL: "redis://:pw@cache:6380/2"})
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, "pw", opts.Password)
	assert.Equal(t, 2, opts.DB)

	opts, err = database.RedisOptions(&config.Config{RedisHost: "localhost", RedisPort: "6379", RedisDB: 1})
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, 1, opts.DB)

	_, err = database.RedisOptions(&config.Config{RedisURL: "http://nope"})
	assert.Error(t, err)
}
