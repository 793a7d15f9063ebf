package services

import (
	"errors"
	"fmt"
)

var (
	// ErrTemplateNotFound means an exact title or id lookup found nothing.
	// Callers treat it as an empty result.
	ErrTemplateNotFound = errors.New("consensus template not found")

	ErrUnknownQuestionType = errors.New("unknown question type")
	ErrPayloadMismatch     = errors.New("question payload does not match its type")
	ErrEmptyRequirement    = errors.New("requirement text is empty")

	// ErrCompletionFailed wraps any failure of the completion call itself.
	ErrCompletionFailed = errors.New("keyword completion failed")

	// Match outcomes surfaced to the request layer as "no result".
	ErrNoKeywords       = errors.New("no keywords extracted from the requirement")
	ErrNoMatch          = errors.New("no matching templates found for the provided keywords")
	ErrNoTemplateLoaded = errors.New("no templates found for the matched keywords")
)

// FormatError reports a range placeholder that cannot be read in its unit.
type FormatError struct {
	Field string
	Unit  string
	Value interface{}
	Err   error
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("invalid %s value %v for unit %q", e.Field, e.Value, e.Unit)
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// ParseError reports a keyword extraction reply outside the tagged list format.
type ParseError struct {
	Reply  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unexpected keyword reply (%s): %q", e.Reason, e.Reply)
}

// MissingFieldError reports a required document field absent during import.
// Question is the 1-based question position, 0 for template level fields.
type MissingFieldError struct {
	Question int
	Field    string
	Detail   string
}

func (e *MissingFieldError) Error() string {
	where := "template"
	if e.Question > 0 {
		where = fmt.Sprintf("question %d", e.Question)
	}
	if e.Detail != "" {
		return fmt.Sprintf("%s: missing field %q: %s", where, e.Field, e.Detail)
	}
	return fmt.Sprintf("%s: missing field %q", where, e.Field)
}

// IsClientError reports whether err comes from bad input rather than a failing dependency.
func IsClientError(err error) bool {
	var formatErr *FormatError
	var missingErr *MissingFieldError
	return errors.As(err, &formatErr) ||
		errors.As(err, &missingErr) ||
		errors.Is(err, ErrUnknownQuestionType) ||
		errors.Is(err, ErrPayloadMismatch) ||
		errors.Is(err, ErrEmptyRequirement)
}
