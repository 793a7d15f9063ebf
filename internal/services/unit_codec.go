package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	UnitDate  = "date"
	UnitClock = "clock"

	dateLayout  = "2006-01-02"
	clockLayout = "15:04"

	minutesPerDay = 24 * 60
)

// unitAliases maps authored unit names onto the encodings they select.
var unitAliases = map[string]string{
	UnitDate:  UnitDate,
	"日期":      UnitDate,
	UnitClock: UnitClock,
	"时钟":      UnitClock,
	"time":    UnitClock,
}

// canonicalUnit returns UnitDate, UnitClock or "" for pass-through units.
func canonicalUnit(unit string) string {
	return unitAliases[strings.ToLower(strings.TrimSpace(unit))]
}

// Placeholder is a range boundary as authored: a calendar date or clock
// string, or a plain number.
type Placeholder struct {
	text   string
	number int64
	isText bool
}

func TextPlaceholder(s string) Placeholder {
	return Placeholder{text: s, isText: true}
}

func NumberPlaceholder(n int64) Placeholder {
	return Placeholder{number: n}
}

func (p Placeholder) IsText() bool  { return p.isText }
func (p Placeholder) Text() string  { return p.text }
func (p Placeholder) Number() int64 { return p.number }

func (p Placeholder) String() string {
	if p.isText {
		return p.text
	}
	return strconv.FormatInt(p.number, 10)
}

func (p Placeholder) MarshalJSON() ([]byte, error) {
	if p.isText {
		return json.Marshal(p.text)
	}
	return json.Marshal(p.number)
}

func (p *Placeholder) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = TextPlaceholder(s)
		return nil
	}

	if string(data) == "null" {
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("placeholder must be a string or a number: %w", err)
	}
	n, err := toInt64(num.String())
	if err != nil {
		return &FormatError{Field: "placeholder", Value: num.String(), Err: err}
	}
	*p = NumberPlaceholder(n)
	return nil
}

// UnitCodec converts range placeholders to and from their stored integers.
// Dates are midnight of the day in loc, as Unix seconds.
type UnitCodec struct {
	loc *time.Location
}

func NewUnitCodec(loc *time.Location) *UnitCodec {
	if loc == nil {
		loc = time.Local
	}
	return &UnitCodec{loc: loc}
}

// Encode normalizes raw for storage. field names the boundary in errors.
func (c *UnitCodec) Encode(field, unit string, raw Placeholder) (int64, error) {
	switch canonicalUnit(unit) {
	case UnitDate:
		if !raw.IsText() {
			return 0, &FormatError{Field: field, Unit: unit, Value: raw.Number(), Err: errors.New("expected YYYY-MM-DD")}
		}
		t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(raw.Text()), c.loc)
		if err != nil {
			return 0, &FormatError{Field: field, Unit: unit, Value: raw.Text(), Err: err}
		}
		return t.Unix(), nil

	case UnitClock:
		if !raw.IsText() {
			return 0, &FormatError{Field: field, Unit: unit, Value: raw.Number(), Err: errors.New("expected HH:MM")}
		}
		t, err := time.Parse(clockLayout, strings.TrimSpace(raw.Text()))
		if err != nil {
			return 0, &FormatError{Field: field, Unit: unit, Value: raw.Text(), Err: err}
		}
		return int64(t.Hour()*60 + t.Minute()), nil
	}

	if !raw.IsText() {
		return raw.Number(), nil
	}
	return parseNumber(field, unit, raw.Text())
}

// Decode turns a stored integer back into its authored form.
func (c *UnitCodec) Decode(field, unit string, stored int64) (Placeholder, error) {
	switch canonicalUnit(unit) {
	case UnitDate:
		return TextPlaceholder(time.Unix(stored, 0).In(c.loc).Format(dateLayout)), nil
	case UnitClock:
		if stored < 0 || stored >= minutesPerDay {
			return Placeholder{}, &FormatError{Field: field, Unit: unit, Value: stored, Err: errors.New("minutes out of range 0-1439")}
		}
		return TextPlaceholder(fmt.Sprintf("%02d:%02d", stored/60, stored%60)), nil
	}
	return NumberPlaceholder(stored), nil
}

func parseNumber(field, unit, s string) (int64, error) {
	s = strings.TrimSpace(s)
	n, err := toInt64(s)
	if err != nil {
		return 0, &FormatError{Field: field, Unit: unit, Value: s, Err: err}
	}
	return n, nil
}

var errOutOfRange = errors.New("number out of int64 range")

// toInt64 reads integers exactly and truncates fractions toward zero.
func toInt64(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, errOutOfRange
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, errors.New("expected a number")
	}
	if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, errOutOfRange
	}
	return int64(math.Trunc(f)), nil
}
