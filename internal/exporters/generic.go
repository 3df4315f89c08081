package exporters

import "github.com/RyanZhou416/QuizForge/internal/bank"

// BankReader is the read access an exporter needs.
type BankReader interface {
	MetaValues() (map[string]*string, error)
	AllQuestions() ([]bank.QuestionDetail, error)
}

type BankExporter interface {
	Export(reader BankReader) (ExportResult, error)
}

type ExportResult struct {
	Path      string `json:"path"`
	Questions int    `json:"questions"`
	Options   int    `json:"options"`
}

var _ BankReader = (*bank.Reader)(nil)
var _ BankExporter = (*DocumentExporter)(nil)
