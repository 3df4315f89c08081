package database

import (
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanZhou416/QuizForge/internal/entities"
)

func strPtr(s string) *string { return &s }

// setupTestDB creates a fresh store in a temp dir
func setupTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := Create(filepath.Join(t.TempDir(), "bank.db"), Options{})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

type columnInfo struct {
	Name    string
	Type    string
	NotNull bool
	PK      int
}

func tableColumns(t *testing.T, db *Database, table string) []columnInfo {
	t.Helper()
	rows, err := db.DB.Raw("SELECT name, type, \"notnull\", pk FROM pragma_table_info(?)", table).Rows()
	require.NoError(t, err)
	defer rows.Close()

	var cols []columnInfo
	for rows.Next() {
		var c columnInfo
		require.NoError(t, rows.Scan(&c.Name, &c.Type, &c.NotNull, &c.PK))
		cols = append(cols, c)
	}
	return cols
}

func TestSchema_Statements(t *testing.T) {
	stmts := DefaultSchema.Statements()
	require.Len(t, stmts, 3)
	assert.Contains(t, stmts[0], "CREATE TABLE IF NOT EXISTS meta")
	assert.Contains(t, stmts[1], "CREATE TABLE IF NOT EXISTS questions")
	assert.Contains(t, stmts[2], "CREATE TABLE IF NOT EXISTS options")
}

func TestCreate_AppliesSchema(t *testing.T) {
	db := setupTestDB(t)

	assert.Equal(t, []columnInfo{
		{Name: "key", Type: "TEXT", PK: 1},
		{Name: "value", Type: "TEXT"},
	}, tableColumns(t, db, "meta"))

	assert.Equal(t, []columnInfo{
		{Name: "id", Type: "INTEGER", PK: 1},
		{Name: "type", Type: "TEXT", NotNull: true},
		{Name: "topic", Type: "TEXT"},
		{Name: "difficulty", Type: "TEXT"},
		{Name: "question_zh", Type: "TEXT", NotNull: true},
		{Name: "question_en", Type: "TEXT"},
		{Name: "image_path", Type: "TEXT"},
		{Name: "explanation_zh", Type: "TEXT"},
		{Name: "explanation_en", Type: "TEXT"},
	}, tableColumns(t, db, "questions"))

	assert.Equal(t, []columnInfo{
		{Name: "id", Type: "INTEGER", PK: 1},
		{Name: "question_id", Type: "INTEGER", NotNull: true},
		{Name: "label", Type: "TEXT", NotNull: true},
		{Name: "text_zh", Type: "TEXT", NotNull: true},
		{Name: "text_en", Type: "TEXT"},
		{Name: "is_correct", Type: "INTEGER", NotNull: true},
		{Name: "explanation_zh", Type: "TEXT"},
		{Name: "explanation_en", Type: "TEXT"},
		{Name: "sort_order", Type: "INTEGER", NotNull: true},
	}, tableColumns(t, db, "options"))
}

func TestCreate_ReplacesExistingFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "bank.db")
	require.NoError(t, os.WriteFile(dbPath, []byte("not a database"), 0o644))

	db, err := Create(dbPath, Options{})
	require.NoError(t, err)
	defer db.Close()

	count, err := db.CountQuestions()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreate_CustomSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "bank.db")
	db, err := Create(dbPath, Options{Schema: "CREATE TABLE meta (key TEXT PRIMARY KEY, value TEXT);"})
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, db.DB.Migrator().HasTable("meta"))
	assert.False(t, db.DB.Migrator().HasTable("questions"))
}

func TestCreate_InvalidSchema(t *testing.T) {
	_, err := Create(filepath.Join(t.TempDir(), "bank.db"), Options{Schema: "CREATE NONSENSE"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to apply schema")
}

func TestInsertQuestion_LinksOptions(t *testing.T) {
	db := setupTestDB(t)

	q := &entities.Question{
		Type:       entities.QuestionTypeSingle,
		Topic:      strPtr("Knee"),
		QuestionZh: "问题",
		Options: []entities.Option{
			{Label: "A", TextZh: "甲", IsCorrect: true, SortOrder: 0},
			{Label: "B", TextZh: "乙", SortOrder: 1},
		},
	}

	require.NoError(t, db.InsertQuestion(q))
	assert.Equal(t, int64(1), q.ID)
	assert.Equal(t, q.ID, q.Options[0].QuestionID)
	assert.Equal(t, q.ID, q.Options[1].QuestionID)
	assert.Less(t, q.Options[0].ID, q.Options[1].ID)

	var stored []entities.Option
	require.NoError(t, db.DB.Order("sort_order").Find(&stored).Error)
	require.Len(t, stored, 2)
	assert.True(t, stored[0].IsCorrect)
	assert.False(t, stored[1].IsCorrect)
	assert.Nil(t, stored[1].TextEn)
}

func TestInsertQuestion_RejectsUnknownQuestion(t *testing.T) {
	db := setupTestDB(t)

	err := db.DB.Create(&entities.Option{QuestionID: 42, Label: "A", TextZh: "x"}).Error
	assert.Error(t, err, "foreign keys should be enforced")
}

func TestTransaction_RollsBack(t *testing.T) {
	db := setupTestDB(t)

	err := db.Transaction(func(tx *Database) error {
		require.NoError(t, tx.InsertMeta("title", strPtr("T")))
		return tx.InsertMeta("title", strPtr("duplicate"))
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.DB.Model(&entities.Meta{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTopicCounts_OrderedWithUntaggedFirst(t *testing.T) {
	db := setupTestDB(t)

	for _, topic := range []*string{strPtr("Knee"), nil, strPtr("Ankle"), strPtr("Knee")} {
		require.NoError(t, db.InsertQuestion(&entities.Question{
			Type:       entities.QuestionTypeTrueFalse,
			Topic:      topic,
			QuestionZh: "q",
		}))
	}

	counts, err := db.TopicCounts()
	require.NoError(t, err)
	require.Len(t, counts, 3)

	assert.Nil(t, counts[0].Topic)
	assert.Equal(t, int64(1), counts[0].Count)
	assert.Equal(t, "Ankle", *counts[1].Topic)
	assert.Equal(t, int64(1), counts[1].Count)
	assert.Equal(t, "Knee", *counts[2].Topic)
	assert.Equal(t, int64(2), counts[2].Count)

	total, err := db.CountQuestions()
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
}

func TestFileURI(t *testing.T) {
	tests := []struct {
		path   string
		params url.Values
		want   string
	}{
		{"bank.db", url.Values{"mode": {"ro"}, "_foreign_keys": {"on"}}, "file:bank.db?_foreign_keys=on&mode=ro"},
		{"/tmp/a b?c#d%.db", url.Values{"_foreign_keys": {"on"}}, "file:/tmp/a%20b%3Fc%23d%25.db?_foreign_keys=on"},
		{"out/bank.db", nil, "file:out/bank.db"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FileURI(tt.path, tt.params))
		})
	}
}

func TestCreate_PathWithURIDelimiters(t *testing.T) {
	dir := t.TempDir()
	name := "bank?mode=memory#v2 %41.db"
	dbPath := filepath.Join(dir, name)

	db, err := Create(dbPath, Options{})
	require.NoError(t, err)
	require.NoError(t, db.InsertMeta("title", strPtr("T")))
	require.NoError(t, db.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, name, entries[0].Name())

	reopened, err := Open(dbPath, Options{})
	require.NoError(t, err)
	defer reopened.Close()
	var title string
	require.NoError(t, reopened.DB.Raw("SELECT value FROM meta WHERE key = ?", "title").Scan(&title).Error)
	assert.Equal(t, "T", title)
}

func TestSize(t *testing.T) {
	db := setupTestDB(t)

	size, err := db.Size()
	require.NoError(t, err)
	assert.Greater(t, size, int64(0))
}
