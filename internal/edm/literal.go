package edm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	errInt32OutOfRange   = errors.New("value out of range for Edm.Int32")
	errInvalidGuid       = errors.New("guid must use the 8-4-4-4-12 hex digit form")
	errUnquotedString    = errors.New("string literal must be enclosed in matching quote marks")
	errUnsupportedLayout = errors.New("unsupported date/time layout")
)

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
}

// ParseInt32 parses base-10 digits as an Edm.Int32. Signs are not accepted;
// negation is a separate operator in the grammar.
func ParseInt32(text string) (int32, error) {
	if text == "" || text[0] == '-' || text[0] == '+' {
		return 0, fmt.Errorf("cannot parse '%s' as %s", text, Int32Type)
	}
	v, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("'%s': %w", text, errInt32OutOfRange)
		}
		return 0, fmt.Errorf("cannot parse '%s' as %s: %w", text, Int32Type, err)
	}
	return int32(v), nil
}

// ParseDecimal parses an exact base-10 value, keeping every digit typed.
func ParseDecimal(text string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("cannot parse '%s' as %s: %w", text, DecimalType, err)
	}
	return d, nil
}

// ParseGuid validates the 8-4-4-4-12 grouping and returns the normalized value.
func ParseGuid(text string) (uuid.UUID, error) {
	if len(text) != 36 {
		return uuid.Nil, fmt.Errorf("'%s': %w", text, errInvalidGuid)
	}
	id, err := uuid.Parse(text)
	if err != nil {
		return uuid.Nil, fmt.Errorf("cannot parse '%s' as %s: %w", text, GuidType, err)
	}
	return id, nil
}

// ParseDateTimeOffset parses a date (midnight UTC) or a datetime with a Z or
// numeric offset.
func ParseDateTimeOffset(text string) (time.Time, error) {
	if len(text) == len(time.DateOnly) {
		t, err := time.Parse(time.DateOnly, text)
		if err != nil {
			return time.Time{}, fmt.Errorf("cannot parse '%s' as %s: %w", text, DateTimeOffsetType, err)
		}
		return t, nil
	}

	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse '%s' as %s: %w", text, DateTimeOffsetType, errUnsupportedLayout)
}

// Unquote strips the enclosing quote marks from a decoded string literal and
// collapses each doubled quote mark into one.
func Unquote(text string) (string, error) {
	if len(text) < 2 || (text[0] != '\'' && text[0] != '"') || text[len(text)-1] != text[0] {
		return "", fmt.Errorf("'%s': %w", text, errUnquotedString)
	}
	quote := text[:1]
	return strings.ReplaceAll(text[1:len(text)-1], quote+quote, quote), nil
}
