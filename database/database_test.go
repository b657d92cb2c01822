package database

import (
	"context"
	"testing"

	"kinovzor/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open("oracle", "whatever", logger.Silent)
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	db, err := OpenMemory(t.Name())
	require.NoError(t, err)

	require.NoError(t, RunMigrations(db))

	for _, model := range []interface{}{&models.User{}, &models.Movie{}, &models.Review{}, &models.Rating{}, &models.Favorite{}} {
		assert.True(t, db.Migrator().HasTable(model))
	}
	assert.True(t, db.Migrator().HasIndex(&models.Rating{}, "idx_ratings_movie_user"))
	assert.True(t, db.Migrator().HasIndex(&models.Favorite{}, "idx_favorites_movie_user"))
}

func TestPing(t *testing.T) {
	Database = DbInstance{}
	assert.Error(t, Ping(context.Background()))

	db, err := OpenMemory(t.Name())
	require.NoError(t, err)
	Database = DbInstance{Db: db}
	t.Cleanup(func() { Database = DbInstance{} })

	assert.NoError(t, Ping(context.Background()))
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, logLevel("silent"))
	assert.Equal(t, logger.Info, logLevel("info"))
	assert.Equal(t, logger.Warn, logLevel("bogus"))
}
