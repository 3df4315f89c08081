package loader

import (
	"fmt"
	"io"

	"github.com/RyanZhou416/QuizForge/internal/database"
	"github.com/RyanZhou416/QuizForge/internal/document"
	"github.com/RyanZhou416/QuizForge/internal/entities"
	"github.com/RyanZhou416/QuizForge/internal/images"
)

// ImageResolver maps a question's image reference to the value to store.
type ImageResolver interface {
	Resolve(ref string) images.Resolution
}

// Stats counts what Populate wrote.
type Stats struct {
	Questions      int
	Options        int
	EmbeddedImages int      // data URIs stored, whether embedded here or already inline
	MissingImages  []string // references kept unresolved
}

// Populate writes doc into an empty store inside a single transaction.
//
// Defaults: an absent type is "single"; absent primary text falls back to the
// secondary text and then to ""; an absent label is derived from the option's
// position; absent correctness is false. sort_order is the option's position.
//
// With a nil resolver image references are stored exactly as given. Otherwise
// each reference goes through the resolver and progress lines go to out.
func Populate(db *database.Database, doc *document.Document, resolver ImageResolver, out io.Writer) (*Stats, error) {
	if out == nil {
		out = io.Discard
	}
	if len(doc.Questions) == 0 {
		return nil, document.ErrNoQuestions
	}

	stats := &Stats{}
	err := db.Transaction(func(tx *database.Database) error {
		for _, entry := range doc.MetaEntries() {
			if err := tx.InsertMeta(entry.Key, entry.Value); err != nil {
				return err
			}
		}

		for i := range doc.Questions {
			q := buildQuestion(&doc.Questions[i])
			q.ImagePath = resolveImage(doc.Questions[i].ImagePath, resolver, stats, out)

			if err := tx.InsertQuestion(q); err != nil {
				return fmt.Errorf("question %d: %w", i+1, err)
			}
			stats.Questions++
			stats.Options += len(q.Options)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func buildQuestion(src *document.Question) *entities.Question {
	qType := entities.QuestionType(src.Type)
	if qType == "" {
		qType = entities.QuestionTypeSingle
	}

	q := &entities.Question{
		Type:          qType,
		Topic:         src.Topic,
		Difficulty:    src.Difficulty,
		QuestionZh:    primaryText(src.QuestionZh, src.QuestionEn),
		QuestionEn:    src.QuestionEn,
		ExplanationZh: src.ExplanationZh,
		ExplanationEn: src.ExplanationEn,
		Options:       make([]entities.Option, 0, len(src.Options)),
	}

	for idx, o := range src.Options {
		label := DefaultLabel(idx)
		if o.Label != nil {
			label = *o.Label
		}
		q.Options = append(q.Options, entities.Option{
			Label:         label,
			TextZh:        primaryText(o.TextZh, o.TextEn),
			TextEn:        o.TextEn,
			IsCorrect:     o.IsCorrect != nil && *o.IsCorrect,
			ExplanationZh: o.ExplanationZh,
			ExplanationEn: o.ExplanationEn,
			SortOrder:     idx,
		})
	}

	return q
}

func primaryText(primary, secondary *string) string {
	switch {
	case primary != nil:
		return *primary
	case secondary != nil:
		return *secondary
	}
	return ""
}

func resolveImage(ref *string, resolver ImageResolver, stats *Stats, out io.Writer) *string {
	if resolver == nil || ref == nil {
		return ref
	}

	res := resolver.Resolve(*ref)
	switch res.Status {
	case images.StatusEmpty:
		return nil
	case images.StatusEmbedded:
		fmt.Fprintf(out, "  Embedded image: %s (%s)\n", *ref, res.MediaType)
	case images.StatusNotFound:
		fmt.Fprintf(out, "  WARNING: Image not found: %s\n", *ref)
		stats.MissingImages = append(stats.MissingImages, *ref)
	case images.StatusUnreadable:
		fmt.Fprintf(out, "  WARNING: Image unreadable: %s: %v\n", *ref, res.Err)
		stats.MissingImages = append(stats.MissingImages, *ref)
	}
	if res.IsDataURI() {
		stats.EmbeddedImages++
	}

	value := res.Value
	return &value
}

var _ ImageResolver = (*images.Resolver)(nil)
