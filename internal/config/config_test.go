package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("QUIZFORGE_IMAGE_DIRS", "")
	t.Setenv("QUIZFORGE_SNIFF_IMAGES", "")
	t.Setenv("QUIZFORGE_LOG_SQL", "")
	t.Setenv("QUIZFORGE_SEED_DATABASE_PATH", "")

	cfg := NewConfig()

	assert.Empty(t, cfg.Images.ExtraDirs)
	assert.False(t, cfg.Images.SniffContent)
	assert.False(t, cfg.Database.LogSQL)
	assert.Equal(t, DefaultSeedDatabasePath, cfg.Seed.DatabasePath)
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	dirs := strings.Join([]string{"imgs", "", "shared/figures"}, string(filepath.ListSeparator))
	t.Setenv("QUIZFORGE_IMAGE_DIRS", dirs)
	t.Setenv("QUIZFORGE_SNIFF_IMAGES", "true")
	t.Setenv("QUIZFORGE_LOG_SQL", "1")
	t.Setenv("QUIZFORGE_SEED_DATABASE_PATH", "/tmp/bank.db")

	cfg := NewConfig()

	assert.Equal(t, []string{"imgs", "shared/figures"}, cfg.Images.ExtraDirs)
	assert.True(t, cfg.Images.SniffContent)
	assert.True(t, cfg.Database.LogSQL)
	assert.Equal(t, "/tmp/bank.db", cfg.Seed.DatabasePath)
}
