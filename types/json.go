package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// String renders the fraction as "numerator/denominator".
func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.num, f.den)
}

// MarshalJSON encodes the fraction as an object with numerator and
// denominator fields.
func (f Fraction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Numerator   int64 `json:"numerator"`
		Denominator int64 `json:"denominator"`
	}{
		Numerator:   f.num,
		Denominator: f.den,
	})
}

// UnmarshalJSON decodes either the object form or a human readable
// "numerator/denominator" string. Decoded values go through the validating
// constructor, so invalid fractions are rejected with a descriptive error.
func (f *Fraction) UnmarshalJSON(data []byte) error {
	var human string
	if err := json.Unmarshal(data, &human); err == nil {
		parsed, err := ParseFraction(human)
		if err != nil {
			return err
		}
		*f = parsed
		return nil
	}

	var raw struct {
		Numerator   int64 `json:"numerator"`
		Denominator int64 `json:"denominator"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewWithFeedback(raw.Numerator, raw.Denominator)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseFraction parses "numerator/denominator" or a bare integer, which is
// read as a fraction over 1. The value is validated like NewWithFeedback.
func ParseFraction(s string) (Fraction, error) {
	parts := strings.SplitN(s, "/", 2)
	num, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return Fraction{}, fmt.Errorf("parsing numerator: %w", err)
	}
	if len(parts) == 1 {
		return NewWithFeedback(num, 1)
	}
	den, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return Fraction{}, fmt.Errorf("parsing denominator: %w", err)
	}
	return NewWithFeedback(num, den)
}
