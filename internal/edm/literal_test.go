package edm

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestParseInt32(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  int32
		expectErr bool
	}{
		{name: "Zero", input: "0", expected: 0},
		{name: "Leading zeros", input: "007", expected: 7},
		{name: "Max", input: "2147483647", expected: 2147483647},
		{name: "Overflow", input: "2147483648", expectErr: true},
		{name: "Signed", input: "-1", expectErr: true},
		{name: "Empty", input: "", expectErr: true},
		{name: "Not a number", input: "12a", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInt32(tt.input)
			if (err != nil) != tt.expectErr {
				t.Fatalf("ParseInt32(%q) error = %v, expectErr %v", tt.input, err, tt.expectErr)
			}
			if !tt.expectErr && got != tt.expected {
				t.Errorf("ParseInt32(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseDecimal(t *testing.T) {
	t.Run("Keeps typed digits", func(t *testing.T) {
		d, err := ParseDecimal("12.50")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !d.Equal(decimal.RequireFromString("12.5")) {
			t.Errorf("expected 12.5, got %v", d)
		}
		if d.Exponent() != -2 {
			t.Errorf("expected exponent -2, got %d", d.Exponent())
		}
	})

	t.Run("Exact beyond float64 precision", func(t *testing.T) {
		text := "0.12345678901234567890123"
		d, err := ParseDecimal(text)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.String() != text {
			t.Errorf("expected %s, got %s", text, d.String())
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		if _, err := ParseDecimal("1.2.3"); err == nil {
			t.Error("expected error")
		}
	})
}

func TestParseGuid(t *testing.T) {
	id := uuid.New()

	got, err := ParseGuid(id.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != id {
		t.Errorf("expected %v, got %v", id, got)
	}

	upper, err := ParseGuid("AA1234EA-4321-1234-BBBB-AAAA1111CCCC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if upper.String() != "aa1234ea-4321-1234-bbbb-aaaa1111cccc" {
		t.Errorf("expected normalized lowercase, got %s", upper)
	}

	for _, bad := range []string{"{" + id.String() + "}", "urn:uuid:" + id.String(), "1234"} {
		if _, err := ParseGuid(bad); err == nil {
			t.Errorf("ParseGuid(%q) should fail", bad)
		}
	}
}

func TestParseDateTimeOffset(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  time.Time
		expectErr bool
	}{
		{
			name:     "Date only",
			input:    "2017-03-01",
			expected: time.Date(2017, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "UTC datetime",
			input:    "2012-05-29T09:13:28Z",
			expected: time.Date(2012, 5, 29, 9, 13, 28, 0, time.UTC),
		},
		{
			name:     "Fractional seconds",
			input:    "2012-05-29T09:13:28.125Z",
			expected: time.Date(2012, 5, 29, 9, 13, 28, 125000000, time.UTC),
		},
		{
			name:     "Without seconds",
			input:    "2012-05-29T09:13Z",
			expected: time.Date(2012, 5, 29, 9, 13, 0, 0, time.UTC),
		},
		{
			name:     "Numeric offset",
			input:    "2012-05-29T09:13:28+02:00",
			expected: time.Date(2012, 5, 29, 7, 13, 28, 0, time.UTC),
		},
		{name: "Invalid month", input: "2017-13-01", expectErr: true},
		{name: "Invalid day", input: "2017-02-30", expectErr: true},
		{name: "Missing zone", input: "2012-05-29T09:13:28", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateTimeOffset(tt.input)
			if (err != nil) != tt.expectErr {
				t.Fatalf("ParseDateTimeOffset(%q) error = %v, expectErr %v", tt.input, err, tt.expectErr)
			}
			if !tt.expectErr && !got.Equal(tt.expected) {
				t.Errorf("ParseDateTimeOffset(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input     string
		expected  string
		expectErr bool
	}{
		{input: "'Hello World'", expected: "Hello World"},
		{input: "\"Hello World\"", expected: "Hello World"},
		{input: "'O''Brien'", expected: "O'Brien"},
		{input: "''''", expected: "'"},
		{input: "''", expected: ""},
		{input: "'She said ''Hello'''", expected: "She said 'Hello'"},
		{input: "\"it's\"", expected: "it's"},
		{input: "'open", expectErr: true},
		{input: "x", expectErr: true},
	}

	for _, tt := range tests {
		got, err := Unquote(tt.input)
		if (err != nil) != tt.expectErr {
			t.Errorf("Unquote(%q) error = %v, expectErr %v", tt.input, err, tt.expectErr)
			continue
		}
		if got != tt.expected {
			t.Errorf("Unquote(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		value    interface{}
		expected string
	}{
		{true, BooleanType},
		{int32(1), Int32Type},
		{decimal.NewFromInt(1), DecimalType},
		{"s", StringType},
		{uuid.Nil, GuidType},
		{time.Time{}, DateTimeOffsetType},
		{1.5, ""},
	}

	for _, tt := range tests {
		if got := TypeName(tt.value); got != tt.expected {
			t.Errorf("TypeName(%T) = %q, want %q", tt.value, got, tt.expected)
		}
	}
}
