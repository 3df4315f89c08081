package bank

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/RyanZhou416/QuizForge/internal/database"
)

// ErrQuestionNotFound is returned by Question when no row has the requested id.
var ErrQuestionNotFound = errors.New("question not found")

type QuestionSummary struct {
	ID         int64   `json:"id"`
	Type       string  `json:"type"`
	Topic      *string `json:"topic"`
	Difficulty *string `json:"difficulty"`
	QuestionZh string  `json:"question_zh"`
	QuestionEn *string `json:"question_en"`
	ImagePath  *string `json:"image_path"`
}

type Option struct {
	ID            int64   `json:"id"`
	QuestionID    int64   `json:"question_id"`
	Label         string  `json:"label"`
	TextZh        string  `json:"text_zh"`
	TextEn        *string `json:"text_en"`
	IsCorrect     bool    `json:"is_correct"`
	ExplanationZh *string `json:"explanation_zh"`
	ExplanationEn *string `json:"explanation_en"`
	SortOrder     int     `json:"sort_order"`
}

type QuestionDetail struct {
	QuestionSummary
	ExplanationZh *string  `json:"explanation_zh"`
	ExplanationEn *string  `json:"explanation_en"`
	Options       []Option `json:"options"`
}

// Filters narrows ListQuestions. Empty fields match everything.
type Filters struct {
	Topic      string
	Type       string
	Difficulty string
}

// Reader gives read-only access to a finished quiz bank store
type Reader struct {
	dbPath string
	db     *sql.DB
}

// Open opens the store at dbPath. The file must already exist.
func Open(dbPath string) (*Reader, error) {
	dsn := database.FileURI(dbPath, url.Values{"mode": {"ro"}, "_foreign_keys": {"on"}})
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open database %s: %w", dbPath, err)
	}

	return &Reader{dbPath: dbPath, db: db}, nil
}

func (r *Reader) Close() error {
	return r.db.Close()
}

// Meta returns the meta rows with NULL values read as "".
func (r *Reader) Meta() (map[string]string, error) {
	values, err := r.MetaValues()
	if err != nil {
		return nil, err
	}

	meta := make(map[string]string, len(values))
	for k, v := range values {
		meta[k] = deref(v)
	}
	return meta, nil
}

// MetaValues returns the meta rows, with nil for a NULL value.
func (r *Reader) MetaValues() (map[string]*string, error) {
	rows, err := r.db.Query("SELECT key, value FROM meta")
	if err != nil {
		return nil, fmt.Errorf("failed to query meta: %w", err)
	}
	defer rows.Close()

	meta := make(map[string]*string)
	for rows.Next() {
		var key string
		var value sql.NullString
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan meta row: %w", err)
		}
		meta[key] = nullable(value)
	}

	return meta, rows.Err()
}

// Topics returns the distinct, non-empty topic labels in sorted order.
func (r *Reader) Topics() ([]string, error) {
	rows, err := r.db.Query("SELECT DISTINCT topic FROM questions WHERE topic IS NOT NULL ORDER BY topic")
	if err != nil {
		return nil, fmt.Errorf("failed to query topics: %w", err)
	}
	defer rows.Close()

	var topics []string
	for rows.Next() {
		var topic string
		if err := rows.Scan(&topic); err != nil {
			return nil, fmt.Errorf("failed to scan topic: %w", err)
		}
		topics = append(topics, topic)
	}

	return topics, rows.Err()
}

func (r *Reader) ListQuestions(filters Filters) ([]QuestionSummary, error) {
	query := strings.Builder{}
	query.WriteString("SELECT id, type, topic, difficulty, question_zh, question_en, image_path FROM questions WHERE 1=1")

	var args []any
	if filters.Topic != "" {
		query.WriteString(" AND topic = ?")
		args = append(args, filters.Topic)
	}
	if filters.Type != "" {
		query.WriteString(" AND type = ?")
		args = append(args, filters.Type)
	}
	if filters.Difficulty != "" {
		query.WriteString(" AND difficulty = ?")
		args = append(args, filters.Difficulty)
	}
	query.WriteString(" ORDER BY id")

	rows, err := r.db.Query(query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	var questions []QuestionSummary
	for rows.Next() {
		var q QuestionSummary
		var topic, difficulty, questionEn, imagePath sql.NullString
		if err := rows.Scan(&q.ID, &q.Type, &topic, &difficulty, &q.QuestionZh, &questionEn, &imagePath); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		q.Topic = nullable(topic)
		q.Difficulty = nullable(difficulty)
		q.QuestionEn = nullable(questionEn)
		q.ImagePath = nullable(imagePath)
		questions = append(questions, q)
	}

	return questions, rows.Err()
}

// Question loads one question with its options in display order.
func (r *Reader) Question(id int64) (*QuestionDetail, error) {
	q := &QuestionDetail{}
	var topic, difficulty, questionEn, imagePath, expZh, expEn sql.NullString

	err := r.db.QueryRow(`
		SELECT id, type, topic, difficulty, question_zh, question_en, image_path, explanation_zh, explanation_en
		FROM questions WHERE id = ?`, id,
	).Scan(&q.ID, &q.Type, &topic, &difficulty, &q.QuestionZh, &questionEn, &imagePath, &expZh, &expEn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrQuestionNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query question %d: %w", id, err)
	}

	q.Topic = nullable(topic)
	q.Difficulty = nullable(difficulty)
	q.QuestionEn = nullable(questionEn)
	q.ImagePath = nullable(imagePath)
	q.ExplanationZh = nullable(expZh)
	q.ExplanationEn = nullable(expEn)

	q.Options, err = r.options(id)
	if err != nil {
		return nil, err
	}

	return q, nil
}

// AllQuestions loads every question with options, ordered by id.
func (r *Reader) AllQuestions() ([]QuestionDetail, error) {
	summaries, err := r.ListQuestions(Filters{})
	if err != nil {
		return nil, err
	}

	details := make([]QuestionDetail, 0, len(summaries))
	for _, s := range summaries {
		q, err := r.Question(s.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, *q)
	}

	return details, nil
}

func (r *Reader) options(questionID int64) ([]Option, error) {
	rows, err := r.db.Query(`
		SELECT id, question_id, label, text_zh, text_en, is_correct, explanation_zh, explanation_en, sort_order
		FROM options WHERE question_id = ? ORDER BY sort_order, id`, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query options for question %d: %w", questionID, err)
	}
	defer rows.Close()

	var options []Option
	for rows.Next() {
		var o Option
		var textEn, expZh, expEn sql.NullString
		if err := rows.Scan(&o.ID, &o.QuestionID, &o.Label, &o.TextZh, &textEn, &o.IsCorrect, &expZh, &expEn, &o.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		o.TextEn = nullable(textEn)
		o.ExplanationZh = nullable(expZh)
		o.ExplanationEn = nullable(expEn)
		options = append(options, o)
	}

	return options, rows.Err()
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
