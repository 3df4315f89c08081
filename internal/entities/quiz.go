package entities

type QuestionType string

const (
	QuestionTypeSingle    QuestionType = "single"
	QuestionTypeMultiple  QuestionType = "multiple"
	QuestionTypeTrueFalse QuestionType = "truefalse"
)

// Valid reports whether t is one of the known question kinds.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeSingle, QuestionTypeMultiple, QuestionTypeTrueFalse:
		return true
	}
	return false
}

// Meta is a single key/value row describing the whole bank (title, author, version...).
type Meta struct {
	Key   string  `gorm:"column:key;primaryKey" json:"key"`
	Value *string `gorm:"column:value" json:"value"`
}

func (Meta) TableName() string { return "meta" }

type Question struct {
	ID            int64        `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Type          QuestionType `gorm:"column:type" json:"type"`
	Topic         *string      `gorm:"column:topic" json:"topic"`
	Difficulty    *string      `gorm:"column:difficulty" json:"difficulty"`
	QuestionZh    string       `gorm:"column:question_zh" json:"question_zh"`
	QuestionEn    *string      `gorm:"column:question_en" json:"question_en"`
	ImagePath     *string      `gorm:"column:image_path" json:"image_path"` // relative path or data URI
	ExplanationZh *string      `gorm:"column:explanation_zh" json:"explanation_zh"`
	ExplanationEn *string      `gorm:"column:explanation_en" json:"explanation_en"`

	// Options are created together with the question, in display order.
	Options []Option `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
}

func (Question) TableName() string { return "questions" }

type Option struct {
	ID            int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	QuestionID    int64   `gorm:"column:question_id" json:"question_id"`
	Label         string  `gorm:"column:label" json:"label"` // "A", "B"... or "True"/"False"
	TextZh        string  `gorm:"column:text_zh" json:"text_zh"`
	TextEn        *string `gorm:"column:text_en" json:"text_en"`
	IsCorrect     bool    `gorm:"column:is_correct" json:"is_correct"`
	ExplanationZh *string `gorm:"column:explanation_zh" json:"explanation_zh"`
	ExplanationEn *string `gorm:"column:explanation_en" json:"explanation_en"`
	SortOrder     int     `gorm:"column:sort_order" json:"sort_order"`
}

func (Option) TableName() string { return "options" }

// TopicCount is one line of the per-topic summary. A nil Topic groups untagged questions.
type TopicCount struct {
	Topic *string
	Count int64
}
