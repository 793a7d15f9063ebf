package models

type QuestionType string

const (
	QuestionTypeSingleChoice QuestionType = "single_choice"
	QuestionTypeMultiChoice  QuestionType = "multi_choice"
	QuestionTypeScale        QuestionType = "scale"
	QuestionTypeRange        QuestionType = "range"
	QuestionTypeLongText     QuestionType = "long_text"
	QuestionTypeDate         QuestionType = "date"
)

// Valid reports whether t is one of the known question types.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeSingleChoice, QuestionTypeMultiChoice, QuestionTypeScale,
		QuestionTypeRange, QuestionTypeLongText, QuestionTypeDate:
		return true
	}
	return false
}

// IsChoice reports whether answers are picked from Option rows.
func (t QuestionType) IsChoice() bool {
	return t == QuestionTypeSingleChoice || t == QuestionTypeMultiChoice
}
