package services

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"hopa-consensus/internal/models"

	"gorm.io/datatypes"
)

// TemplateSerializer maps between stored template rows and TemplateDocument.
type TemplateSerializer struct {
	codec *UnitCodec
}

func NewTemplateSerializer(codec *UnitCodec) *TemplateSerializer {
	return &TemplateSerializer{codec: codec}
}

// Export builds the document for a template whose questions and payload rows are loaded.
// Missing scale or range rows degrade to empty fields.
func (s *TemplateSerializer) Export(tpl *models.ConsensusTemplate) (*TemplateDocument, error) {
	questions := make([]models.Question, len(tpl.Questions))
	copy(questions, tpl.Questions)
	sort.SliceStable(questions, func(i, j int) bool {
		if questions[i].Order != questions[j].Order {
			return questions[i].Order < questions[j].Order
		}
		return questions[i].ID < questions[j].ID
	})

	doc := &TemplateDocument{
		Title:       tpl.Title,
		Description: tpl.Description,
		Questions:   make([]QuestionDocument, 0, len(questions)),
	}

	for _, q := range questions {
		id := q.ID
		qd := QuestionDocument{ID: &id, Type: q.QuestionType, Question: q.QuestionText}

		switch {
		case q.QuestionType.IsChoice():
			qd.Payload = ChoicePayload{Options: exportOptions(q.Options)}

		case q.QuestionType == models.QuestionTypeScale:
			bounds := []int{}
			if q.ScaleSetting != nil {
				bounds = []int{q.ScaleSetting.MinValue, q.ScaleSetting.MaxValue}
			}
			qd.Payload = ScalePayload{Bounds: bounds}

		case q.QuestionType == models.QuestionTypeRange:
			payload, err := s.exportRange(q)
			if err != nil {
				return nil, fmt.Errorf("template %q question %d: %w", tpl.Title, q.Order, err)
			}
			qd.Payload = payload

		default:
			qd.Payload = TextPayload{}
		}

		doc.Questions = append(doc.Questions, qd)
	}

	return doc, nil
}

func exportOptions(options []models.Option) []string {
	sorted := make([]models.Option, len(options))
	copy(sorted, options)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Order != sorted[j].Order {
			return sorted[i].Order < sorted[j].Order
		}
		return sorted[i].ID < sorted[j].ID
	})

	texts := make([]string, 0, len(sorted))
	for _, o := range sorted {
		texts = append(texts, o.Text)
	}
	return texts
}

func (s *TemplateSerializer) exportRange(q models.Question) (RangePayload, error) {
	rs := q.RangeSetting
	if rs == nil {
		return RangePayload{Unit: q.Unit}, nil
	}

	unit := ""
	if rs.Unit != nil {
		unit = *rs.Unit
	}

	lower, err := s.codec.Decode("min_placeholder", unit, rs.MinPlaceholder)
	if err != nil {
		return RangePayload{}, err
	}
	upper, err := s.codec.Decode("max_placeholder", unit, rs.MaxPlaceholder)
	if err != nil {
		return RangePayload{}, err
	}

	return RangePayload{Unit: rs.Unit, MinPlaceholder: &lower, MaxPlaceholder: &upper}, nil
}

// Import turns a document into an unsaved row graph. Question order is the
// position in the document; any ids in the document are ignored.
func (s *TemplateSerializer) Import(doc *TemplateDocument) (*models.ConsensusTemplate, error) {
	if strings.TrimSpace(doc.Title) == "" {
		return nil, &MissingFieldError{Field: "title"}
	}

	source, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	tpl := &models.ConsensusTemplate{
		Title:       doc.Title,
		Description: doc.Description,
		Source:      datatypes.JSON(source),
		Questions:   make([]models.Question, 0, len(doc.Questions)),
	}

	for i, qd := range doc.Questions {
		position := i + 1
		q, err := s.importQuestion(position, qd)
		if err != nil {
			return nil, err
		}
		tpl.Questions = append(tpl.Questions, q)
	}

	return tpl, nil
}

func (s *TemplateSerializer) importQuestion(position int, qd QuestionDocument) (models.Question, error) {
	if !qd.Type.Valid() {
		return models.Question{}, fmt.Errorf("question %d: %w %q", position, ErrUnknownQuestionType, qd.Type)
	}
	if strings.TrimSpace(qd.Question) == "" {
		return models.Question{}, &MissingFieldError{Question: position, Field: "question"}
	}
	if qd.Payload != nil && !qd.Payload.accepts(qd.Type) {
		return models.Question{}, fmt.Errorf("question %d: %w: %T for %q", position, ErrPayloadMismatch, qd.Payload, qd.Type)
	}

	q := models.Question{
		QuestionText: qd.Question,
		QuestionType: qd.Type,
		Order:        position,
	}

	switch p := qd.Payload.(type) {
	case ChoicePayload:
		for i, text := range p.Options {
			q.Options = append(q.Options, models.Option{Text: text, Order: i + 1})
		}

	case ScalePayload:
		if len(p.Bounds) < 2 {
			return models.Question{}, &MissingFieldError{Question: position, Field: "scale", Detail: "expected [min, max]"}
		}
		q.ScaleSetting = &models.ScaleSetting{MinValue: p.Bounds[0], MaxValue: p.Bounds[1]}

	case RangePayload:
		rs, err := s.importRange(position, p)
		if err != nil {
			return models.Question{}, err
		}
		q.Unit = rs.Unit
		q.RangeSetting = rs

	case nil:
		if qd.Type == models.QuestionTypeScale {
			return models.Question{}, &MissingFieldError{Question: position, Field: "scale", Detail: "expected [min, max]"}
		}
		if qd.Type == models.QuestionTypeRange {
			return models.Question{}, &MissingFieldError{Question: position, Field: "unit"}
		}
	}

	return q, nil
}

func (s *TemplateSerializer) importRange(position int, p RangePayload) (*models.RangeSetting, error) {
	if p.Unit == nil || strings.TrimSpace(*p.Unit) == "" {
		return nil, &MissingFieldError{Question: position, Field: "unit"}
	}
	if p.MinPlaceholder == nil {
		return nil, &MissingFieldError{Question: position, Field: "min_placeholder"}
	}
	if p.MaxPlaceholder == nil {
		return nil, &MissingFieldError{Question: position, Field: "max_placeholder"}
	}

	unit := *p.Unit
	lower, err := s.codec.Encode("min_placeholder", unit, *p.MinPlaceholder)
	if err != nil {
		return nil, fmt.Errorf("question %d: %w", position, err)
	}
	upper, err := s.codec.Encode("max_placeholder", unit, *p.MaxPlaceholder)
	if err != nil {
		return nil, fmt.Errorf("question %d: %w", position, err)
	}

	return &models.RangeSetting{MinPlaceholder: lower, MaxPlaceholder: upper, Unit: &unit}, nil
}
