package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"hopa-consensus/internal/models"
)

// TemplateDocument is the normalized, storage independent shape of a template.
// It is both the ingestion input and the match response payload.
type TemplateDocument struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Questions   []QuestionDocument `json:"questions"`
}

// QuestionDocument is one question with exactly the payload its type calls for.
type QuestionDocument struct {
	ID       *uint
	Type     models.QuestionType
	Question string
	Payload  Payload
}

// Payload is the type specific part of a question. The concrete type is fixed
// by the question type: ChoicePayload, ScalePayload, RangePayload or TextPayload.
type Payload interface {
	accepts(t models.QuestionType) bool
}

type ChoicePayload struct {
	Options []string
}

// ScalePayload holds [min, max]; it is empty when the template carries no scale setting.
type ScalePayload struct {
	Bounds []int
}

// RangePayload holds decoded boundaries; nil boundaries mean the setting row is absent.
type RangePayload struct {
	Unit           *string
	MinPlaceholder *Placeholder
	MaxPlaceholder *Placeholder
}

// TextPayload is used by long_text and date questions, which store nothing extra.
type TextPayload struct{}

func (ChoicePayload) accepts(t models.QuestionType) bool { return t.IsChoice() }
func (ScalePayload) accepts(t models.QuestionType) bool  { return t == models.QuestionTypeScale }
func (RangePayload) accepts(t models.QuestionType) bool  { return t == models.QuestionTypeRange }
func (TextPayload) accepts(t models.QuestionType) bool {
	return t == models.QuestionTypeLongText || t == models.QuestionTypeDate
}

func NewChoiceQuestion(t models.QuestionType, text string, options ...string) QuestionDocument {
	if options == nil {
		options = []string{}
	}
	return QuestionDocument{Type: t, Question: text, Payload: ChoicePayload{Options: options}}
}

func NewScaleQuestion(text string, lower, upper int) QuestionDocument {
	return QuestionDocument{Type: models.QuestionTypeScale, Question: text, Payload: ScalePayload{Bounds: []int{lower, upper}}}
}

func NewRangeQuestion(text, unit string, lower, upper Placeholder) QuestionDocument {
	return QuestionDocument{
		Type:     models.QuestionTypeRange,
		Question: text,
		Payload:  RangePayload{Unit: &unit, MinPlaceholder: &lower, MaxPlaceholder: &upper},
	}
}

func NewTextQuestion(t models.QuestionType, text string) QuestionDocument {
	return QuestionDocument{Type: t, Question: text, Payload: TextPayload{}}
}

type questionHead struct {
	ID       *uint               `json:"id,omitempty"`
	Type     models.QuestionType `json:"type"`
	Question string              `json:"question"`
}

// questionWire is the flat authored form; absent fields stay nil.
type questionWire struct {
	questionHead
	Options        []string     `json:"options"`
	Scale          []int        `json:"scale"`
	Unit           *string      `json:"unit"`
	MinPlaceholder *Placeholder `json:"min_placeholder"`
	MaxPlaceholder *Placeholder `json:"max_placeholder"`
}

func (q QuestionDocument) MarshalJSON() ([]byte, error) {
	head := questionHead{ID: q.ID, Type: q.Type, Question: q.Question}

	switch p := q.Payload.(type) {
	case ChoicePayload:
		options := p.Options
		if options == nil {
			options = []string{}
		}
		return json.Marshal(struct {
			questionHead
			Options []string `json:"options"`
		}{head, options})
	case ScalePayload:
		bounds := p.Bounds
		if bounds == nil {
			bounds = []int{}
		}
		return json.Marshal(struct {
			questionHead
			Scale []int `json:"scale"`
		}{head, bounds})
	case RangePayload:
		return json.Marshal(struct {
			questionHead
			Unit           *string      `json:"unit"`
			MinPlaceholder *Placeholder `json:"min_placeholder"`
			MaxPlaceholder *Placeholder `json:"max_placeholder"`
		}{head, p.Unit, p.MinPlaceholder, p.MaxPlaceholder})
	}
	return json.Marshal(head)
}

// UnmarshalJSON reads the flat form and keeps only the fields the type uses.
// An unknown type leaves Payload nil; import rejects it.
func (q *QuestionDocument) UnmarshalJSON(data []byte) error {
	var w questionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*q = QuestionDocument{ID: w.ID, Type: w.Type, Question: w.Question}
	switch {
	case w.Type.IsChoice():
		q.Payload = ChoicePayload{Options: w.Options}
	case w.Type == models.QuestionTypeScale:
		q.Payload = ScalePayload{Bounds: w.Scale}
	case w.Type == models.QuestionTypeRange:
		q.Payload = RangePayload{Unit: w.Unit, MinPlaceholder: w.MinPlaceholder, MaxPlaceholder: w.MaxPlaceholder}
	case w.Type.Valid():
		q.Payload = TextPayload{}
	}
	return nil
}

// DecodeDocuments reads a bulk load file: a JSON array of documents or a
// single document object.
func DecodeDocuments(r io.Reader) ([]TemplateDocument, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("empty template file")
	}

	if data[0] == '[' {
		var docs []TemplateDocument
		if err := json.Unmarshal(data, &docs); err != nil {
			return nil, err
		}
		return docs, nil
	}

	var doc TemplateDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return []TemplateDocument{doc}, nil
}
