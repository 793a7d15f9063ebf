package services

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitCodecDateRoundTrip(t *testing.T) {
	shanghai, err := time.LoadLocation("Asia/Shanghai")
	require.NoError(t, err)

	for _, loc := range []*time.Location{time.UTC, shanghai, time.Local} {
		codec := NewUnitCodec(loc)
		for _, unit := range []string{"date", "日期"} {
			for _, day := range []string{"2024-01-01", "2024-01-31", "2024-02-29", "1999-12-31", "2038-03-14"} {
				stored, err := codec.Encode("min_placeholder", unit, TextPlaceholder(day))
				require.NoError(t, err)

				decoded, err := codec.Decode("min_placeholder", unit, stored)
				require.NoError(t, err)
				assert.Equal(t, day, decoded.Text(), "unit %s loc %s", unit, loc)
			}
		}
	}
}

func TestUnitCodecDateIsLocalMidnight(t *testing.T) {
	codec := NewUnitCodec(time.UTC)
	stored, err := codec.Encode("min_placeholder", "date", TextPlaceholder("2024-01-01"))
	require.NoError(t, err)
	assert.Equal(t, int64(1704067200), stored)

	shanghai, err := time.LoadLocation("Asia/Shanghai")
	require.NoError(t, err)
	stored, err = NewUnitCodec(shanghai).Encode("min_placeholder", "日期", TextPlaceholder("2024-01-01"))
	require.NoError(t, err)
	assert.Equal(t, int64(1704067200-8*3600), stored)
}

func TestUnitCodecClockRoundTrip(t *testing.T) {
	codec := NewUnitCodec(time.UTC)

	cases := map[string]int64{
		"00:00": 0,
		"09:05": 545,
		"12:00": 720,
		"23:59": 1439,
	}
	for text, minutes := range cases {
		for _, unit := range []string{"clock", "时钟"} {
			stored, err := codec.Encode("max_placeholder", unit, TextPlaceholder(text))
			require.NoError(t, err)
			assert.Equal(t, minutes, stored)

			decoded, err := codec.Decode("max_placeholder", unit, stored)
			require.NoError(t, err)
			assert.Equal(t, text, decoded.Text())
		}
	}
}

func TestUnitCodecPassThrough(t *testing.T) {
	codec := NewUnitCodec(time.UTC)

	stored, err := codec.Encode("min_placeholder", "元", NumberPlaceholder(500))
	require.NoError(t, err)
	assert.Equal(t, int64(500), stored)

	stored, err = codec.Encode("min_placeholder", "天", TextPlaceholder(" 30 "))
	require.NoError(t, err)
	assert.Equal(t, int64(30), stored)

	stored, err = codec.Encode("min_placeholder", "小时", TextPlaceholder("2.9"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored)

	stored, err = codec.Encode("max_placeholder", "元", TextPlaceholder("9007199254740993"))
	require.NoError(t, err)
	assert.Equal(t, int64(9007199254740993), stored)

	for _, text := range []string{"1e30", "-1e30", "9223372036854775808", "-9223372036854775809", "NaN"} {
		_, err = codec.Encode("max_placeholder", "元", TextPlaceholder(text))
		var formatErr *FormatError
		require.True(t, errors.As(err, &formatErr), "text %q", text)
		assert.Equal(t, "max_placeholder", formatErr.Field)
	}

	decoded, err := codec.Decode("min_placeholder", "元", 500)
	require.NoError(t, err)
	assert.False(t, decoded.IsText())
	assert.Equal(t, int64(500), decoded.Number())
}

func TestUnitCodecFormatErrors(t *testing.T) {
	codec := NewUnitCodec(time.UTC)

	tests := []struct {
		name  string
		field string
		unit  string
		raw   Placeholder
	}{
		{"date with slashes", "min_placeholder", "日期", TextPlaceholder("2024/01/01")},
		{"impossible date", "max_placeholder", "date", TextPlaceholder("2024-02-30")},
		{"date as number", "min_placeholder", "date", NumberPlaceholder(20240101)},
		{"clock past midnight", "max_placeholder", "时钟", TextPlaceholder("24:00")},
		{"clock without minutes", "min_placeholder", "clock", TextPlaceholder("12")},
		{"clock as number", "min_placeholder", "clock", NumberPlaceholder(720)},
		{"not a number", "min_placeholder", "元", TextPlaceholder("many")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Encode(tt.field, tt.unit, tt.raw)
			require.Error(t, err)

			var formatErr *FormatError
			require.True(t, errors.As(err, &formatErr))
			assert.Equal(t, tt.field, formatErr.Field)
			assert.Equal(t, tt.unit, formatErr.Unit)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestUnitCodecDecodeClockOutOfRange(t *testing.T) {
	_, err := NewUnitCodec(time.UTC).Decode("max_placeholder", "clock", 1440)
	var formatErr *FormatError
	assert.True(t, errors.As(err, &formatErr))
}

func TestPlaceholderJSON(t *testing.T) {
	var p Placeholder
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-01"`), &p))
	assert.True(t, p.IsText())
	assert.Equal(t, "2024-01-01", p.String())

	require.NoError(t, json.Unmarshal([]byte(`100`), &p))
	assert.False(t, p.IsText())
	assert.Equal(t, int64(100), p.Number())

	require.NoError(t, json.Unmarshal([]byte(`12.7`), &p))
	assert.Equal(t, int64(12), p.Number())

	require.NoError(t, json.Unmarshal([]byte(`-3.7`), &p))
	assert.Equal(t, int64(-3), p.Number())

	require.NoError(t, json.Unmarshal([]byte(`9007199254740993`), &p))
	assert.Equal(t, int64(9007199254740993), p.Number())

	require.NoError(t, json.Unmarshal([]byte(`-9223372036854775808`), &p))
	assert.Equal(t, int64(math.MinInt64), p.Number())

	for _, literal := range []string{`1e30`, `9223372036854775808`, `-1e19`} {
		err := json.Unmarshal([]byte(literal), &p)
		var formatErr *FormatError
		require.True(t, errors.As(err, &formatErr), "literal %s", literal)
		assert.Equal(t, literal, formatErr.Value)
	}

	assert.Error(t, json.Unmarshal([]byte(`true`), &p))

	out, err := json.Marshal(struct {
		A *Placeholder `json:"a"`
		B Placeholder  `json:"b"`
		C *Placeholder `json:"c"`
	}{A: ptrPlaceholder(TextPlaceholder("09:00")), B: NumberPlaceholder(3)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"09:00","b":3,"c":null}`, string(out))
}

func ptrPlaceholder(p Placeholder) *Placeholder {
	return &p
}
