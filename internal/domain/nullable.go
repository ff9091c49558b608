package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

var jsonNull = []byte("null")

// NullString is a string that may be absent. It encodes as JSON null when not valid.
type NullString struct {
	Value string
	Valid bool
}

// SomeString returns a valid NullString.
func SomeString(s string) NullString {
	return NullString{Value: s, Valid: true}
}

func (n NullString) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return jsonNull, nil
	}
	return json.Marshal(n.Value)
}

func (n *NullString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*n = NullString{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*n = SomeString(s)
	return nil
}

// NullBool is a tri-state boolean. It encodes as JSON null when not valid.
type NullBool struct {
	Value bool
	Valid bool
}

// SomeBool returns a valid NullBool.
func SomeBool(b bool) NullBool {
	return NullBool{Value: b, Valid: true}
}

func (n NullBool) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return jsonNull, nil
	}
	return json.Marshal(n.Value)
}

func (n *NullBool) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*n = NullBool{}
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	*n = SomeBool(b)
	return nil
}

// NullFloat is a finite number that may be absent. Non-finite values are
// stored as absent.
type NullFloat struct {
	Value float64
	Valid bool
}

// SomeFloat returns a valid NullFloat, or an absent one for NaN and infinities.
func SomeFloat(f float64) NullFloat {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return NullFloat{}
	}
	return NullFloat{Value: f, Valid: true}
}

func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return jsonNull, nil
	}
	return json.Marshal(n.Value)
}

// UnmarshalJSON accepts numbers and treats anything else as absent.
func (n *NullFloat) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*n = NullFloat{}
		return nil
	}
	*n = SomeFloat(f)
	return nil
}

// Margin is a line item's markup over market price. A numeric margin is kept
// at two decimal places; a non-numeric upstream value is preserved verbatim in
// Raw so it can be displayed, but never compared as a number.
type Margin struct {
	Value float64
	Valid bool
	Raw   string
}

// NewMargin rounds f to two decimal places. NaN and infinities yield an unknown margin.
func NewMargin(f float64) Margin {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Margin{Raw: strconv.FormatFloat(f, 'f', -1, 64)}
	}
	return Margin{Value: math.Round(f*100) / 100, Valid: true}
}

// MarginText wraps an opaque, non-numeric margin value.
func MarginText(raw string) Margin {
	return Margin{Raw: raw}
}

// Float returns the numeric margin and whether it is known.
func (m Margin) Float() (float64, bool) {
	return m.Value, m.Valid
}

// String renders the margin for display: two decimals, the raw fallback, or "unknown".
func (m Margin) String() string {
	switch {
	case m.Valid:
		return strconv.FormatFloat(m.Value, 'f', 2, 64)
	case m.Raw != "":
		return m.Raw
	default:
		return "unknown"
	}
}

func (m Margin) MarshalJSON() ([]byte, error) {
	switch {
	case m.Valid:
		return []byte(strconv.FormatFloat(m.Value, 'f', 2, 64)), nil
	case m.Raw != "":
		return json.Marshal(m.Raw)
	default:
		return jsonNull, nil
	}
}

func (m *Margin) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*m = Margin{}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*m = NewMargin(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*m = MarginText(s)
		return nil
	}
	*m = MarginText(string(data))
	return nil
}
