package database

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/RyanZhou416/QuizForge/internal/entities"
)

// Schema is the DDL run against every freshly created store.
type Schema string

// DefaultSchema is shared by the seed and generic loaders and read by the desktop app.
// It must not drift: existing banks are opened with exactly these columns.
const DefaultSchema Schema = `
CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT);
CREATE TABLE IF NOT EXISTS questions (
    id INTEGER PRIMARY KEY AUTOINCREMENT, type TEXT NOT NULL, topic TEXT,
    difficulty TEXT, question_zh TEXT NOT NULL, question_en TEXT,
    image_path TEXT, explanation_zh TEXT, explanation_en TEXT
);
CREATE TABLE IF NOT EXISTS options (
    id INTEGER PRIMARY KEY AUTOINCREMENT, question_id INTEGER NOT NULL REFERENCES questions(id),
    label TEXT NOT NULL, text_zh TEXT NOT NULL, text_en TEXT,
    is_correct INTEGER NOT NULL DEFAULT 0, explanation_zh TEXT, explanation_en TEXT,
    sort_order INTEGER NOT NULL DEFAULT 0
);
`

// Statements splits the schema into individual statements.
func (s Schema) Statements() []string {
	var stmts []string
	for _, part := range strings.Split(string(s), ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

type Options struct {
	Schema Schema // DefaultSchema when empty
	LogSQL bool
}

type Database struct {
	DB   *gorm.DB
	Path string
}

// Create removes whatever exists at dbPath and builds an empty store there.
// Stores are never patched: every run starts from nothing so identifiers restart at 1.
func Create(dbPath string, opts Options) (*Database, error) {
	if err := os.Remove(dbPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to remove existing store %s: %w", dbPath, err)
	}

	db, err := Open(dbPath, opts)
	if err != nil {
		return nil, err
	}

	schema := opts.Schema
	if schema == "" {
		schema = DefaultSchema
	}
	for _, stmt := range schema.Statements() {
		if err := db.DB.Exec(stmt).Error; err != nil {
			logClose(db)
			return nil, fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	return db, nil
}

// FileURI builds a SQLite "file:" URI for dbPath. The path is escaped, so a
// '?', '#' or '%' in a file name stays part of the name.
func FileURI(dbPath string, params url.Values) string {
	u := url.URL{
		Scheme:   "file",
		Path:     filepath.ToSlash(dbPath),
		OmitHost: true,
		RawQuery: params.Encode(),
	}
	return u.String()
}

// Open connects to an existing store without touching its schema.
func Open(dbPath string, opts Options) (*Database, error) {
	logMode := logger.Silent
	if opts.LogSQL {
		logMode = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(FileURI(dbPath, url.Values{"_foreign_keys": {"on"}})), &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Database{DB: db, Path: dbPath}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Transaction runs fn against a Database bound to a single transaction.
func (d *Database) Transaction(fn func(tx *Database) error) error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		return fn(&Database{DB: tx, Path: d.Path})
	})
}

func (d *Database) InsertMeta(key string, value *string) error {
	if err := d.DB.Create(&entities.Meta{Key: key, Value: value}).Error; err != nil {
		return fmt.Errorf("failed to insert meta %q: %w", key, err)
	}
	return nil
}

// InsertQuestion writes the question, then its options linked to the assigned ID.
// Options are written in slice order; SortOrder is taken as given.
func (d *Database) InsertQuestion(q *entities.Question) error {
	if err := d.DB.Omit(clause.Associations).Create(q).Error; err != nil {
		return fmt.Errorf("failed to insert question: %w", err)
	}

	for i := range q.Options {
		q.Options[i].QuestionID = q.ID
		if err := d.DB.Create(&q.Options[i]).Error; err != nil {
			return fmt.Errorf("failed to insert option %d of question %d: %w", i, q.ID, err)
		}
	}

	return nil
}

func (d *Database) CountQuestions() (int64, error) {
	var count int64
	err := d.DB.Model(&entities.Question{}).Count(&count).Error
	return count, err
}

func (d *Database) CountOptions() (int64, error) {
	var count int64
	err := d.DB.Model(&entities.Option{}).Count(&count).Error
	return count, err
}

// TopicCounts groups questions by topic in SQLite's collation order (untagged first).
func (d *Database) TopicCounts() ([]entities.TopicCount, error) {
	var counts []entities.TopicCount
	err := d.DB.Model(&entities.Question{}).
		Select("topic, COUNT(*) AS count").
		Group("topic").
		Order("topic").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count topics: %w", err)
	}
	return counts, nil
}

// Size returns the on-disk size of the store file in bytes.
func (d *Database) Size() (int64, error) {
	info, err := os.Stat(d.Path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func logClose(d *Database) {
	if err := d.Close(); err != nil {
		log.Printf("Error closing database %s: %v", d.Path, err)
	}
}
