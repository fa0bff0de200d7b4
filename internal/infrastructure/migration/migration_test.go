package migration

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/appmaster-hq/appmaster/internal/infrastructure/persistence/models"
)

func TestNewManager_PicksStrategyByDriver(t *testing.T) {
	assert.Equal(t, "gorm_auto_migrate", NewManager("sqlite").GetStrategy().GetName())
	assert.Equal(t, "goose", NewManager("mysql").GetStrategy().GetName())
}

func TestAutoMigrateStrategy_CreatesEveryTable(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	m := NewManager("sqlite")
	require.NoError(t, m.Migrate(db))

	for _, model := range models.All() {
		name := model.(schema.Tabler).TableName()
		assert.True(t, db.Migrator().HasTable(name), name)
	}

	_, err = m.Version(db)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Error(t, m.Down(db, 0))
}

func TestScripts_CoverEveryTable(t *testing.T) {
	entries, err := fs.ReadDir(scripts, scriptsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	var all strings.Builder
	for _, e := range entries {
		body, err := fs.ReadFile(scripts, scriptsDir+"/"+e.Name())
		require.NoError(t, err)
		text := string(body)
		assert.Contains(t, text, "-- +goose Up", e.Name())
		assert.Contains(t, text, "-- +goose Down", e.Name())
		all.WriteString(text)
	}

	for _, model := range models.All() {
		name := model.(schema.Tabler).TableName()
		assert.Contains(t, all.String(), "CREATE TABLE "+name+" (", name)
	}
}
