package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/RyanZhou416/QuizForge/internal/bank"
)

// InspectCommand prints the contents of a finished store
type InspectCommand struct {
	StorePath  string
	Filters    bank.Filters
	QuestionID int64
	JSON       bool

	out io.Writer
}

func NewInspectCommand() *InspectCommand {
	return &InspectCommand{out: os.Stdout}
}

func (cmd *InspectCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)

	fs.StringVar(&cmd.Filters.Topic, "topic", "", "Only list questions with this topic")
	fs.StringVar(&cmd.Filters.Type, "type", "", "Only list questions of this type (single, multiple, truefalse)")
	fs.StringVar(&cmd.Filters.Difficulty, "difficulty", "", "Only list questions with this difficulty")
	fs.Int64Var(&cmd.QuestionID, "id", 0, "Show one question with its options")
	fs.BoolVar(&cmd.JSON, "json", false, "Print questions as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s inspect <store> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print the metadata, topics and questions of a quiz bank store.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s inspect lower_extremity_injuries.db\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s inspect lower_extremity_injuries.db -topic Knee -type multiple\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s inspect lower_extremity_injuries.db -id 12\n", os.Args[0])
	}

	// the store may come before or after the options
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		cmd.StorePath = fs.Arg(0)
		if err := fs.Parse(fs.Args()[1:]); err != nil {
			return err
		}
	}

	if cmd.StorePath == "" || fs.NArg() > 0 {
		fs.Usage()
		return fmt.Errorf("exactly one store path is required")
	}
	if _, err := os.Stat(cmd.StorePath); err != nil {
		return fmt.Errorf("store does not exist: %s", cmd.StorePath)
	}

	return nil
}

func (cmd *InspectCommand) Run() error {
	reader, err := bank.Open(cmd.StorePath)
	if err != nil {
		return err
	}
	defer reader.Close()

	if cmd.QuestionID != 0 {
		q, err := reader.Question(cmd.QuestionID)
		if err != nil {
			return err
		}
		if cmd.JSON {
			return cmd.writeJSON(q)
		}
		cmd.printQuestion(q)
		return nil
	}

	questions, err := reader.ListQuestions(cmd.Filters)
	if err != nil {
		return err
	}
	if cmd.JSON {
		return cmd.writeJSON(questions)
	}

	meta, err := reader.Meta()
	if err != nil {
		return err
	}
	topics, err := reader.Topics()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.out, "=== %s ===\n", cmd.StorePath)
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(cmd.out, "%s: %s\n", k, meta[k])
	}

	fmt.Fprintf(cmd.out, "\nTopics (%d):\n", len(topics))
	for _, t := range topics {
		fmt.Fprintf(cmd.out, "  %s\n", t)
	}

	fmt.Fprintf(cmd.out, "\nQuestions (%d):\n", len(questions))
	for _, q := range questions {
		fmt.Fprintf(cmd.out, "  #%d [%s] %s / %s: %s\n", q.ID, q.Type, orNone(q.Topic), orNone(q.Difficulty), q.QuestionZh)
	}

	return nil
}

func (cmd *InspectCommand) printQuestion(q *bank.QuestionDetail) {
	fmt.Fprintf(cmd.out, "#%d [%s] %s / %s\n", q.ID, q.Type, orNone(q.Topic), orNone(q.Difficulty))
	fmt.Fprintf(cmd.out, "%s\n", q.QuestionZh)
	if q.QuestionEn != nil {
		fmt.Fprintf(cmd.out, "%s\n", *q.QuestionEn)
	}
	if q.ImagePath != nil {
		fmt.Fprintf(cmd.out, "Image: %s\n", abbreviate(*q.ImagePath, 60))
	}

	fmt.Fprintln(cmd.out)
	for _, o := range q.Options {
		mark := " "
		if o.IsCorrect {
			mark = "✓"
		}
		fmt.Fprintf(cmd.out, "  [%s] %s. %s", mark, o.Label, o.TextZh)
		if o.TextEn != nil {
			fmt.Fprintf(cmd.out, " / %s", *o.TextEn)
		}
		fmt.Fprintln(cmd.out)
	}

	if q.ExplanationZh != nil || q.ExplanationEn != nil {
		fmt.Fprintf(cmd.out, "\nExplanation: %s\n", orNone(q.ExplanationZh))
		if q.ExplanationEn != nil {
			fmt.Fprintf(cmd.out, "             %s\n", *q.ExplanationEn)
		}
	}
}

func (cmd *InspectCommand) writeJSON(v any) error {
	enc := json.NewEncoder(cmd.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func orNone(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

// abbreviate keeps data URIs readable on a terminal.
func abbreviate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + fmt.Sprintf("... (%d chars)", len(r))
}
