package forensic

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"

	"docforensics/internal/domain"
)

// Coercion helpers over values produced by a json.Decoder with UseNumber.
// Each returns ok=false when the value cannot be read as the target type.

func asString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), true
	case json.Number:
		return t.String(), true
	}
	return "", false
}

func nonEmptyString(v any) *string {
	s, ok := asString(v)
	if !ok || s == "" {
		return nil
	}
	return &s
}

func asFloat(v any) (float64, bool) {
	var (
		f   float64
		err error
	)
	switch t := v.(type) {
	case json.Number:
		f, err = t.Float64()
	case float64:
		f = t
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(t), ",", "")
		s = strings.TrimSuffix(strings.Trim(s, "$€£₹ "), "%")
		f, err = strconv.ParseFloat(s, 64)
	default:
		return 0, false
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func asInt(v any) (int, bool) {
	f, ok := asFloat(v)
	if !ok {
		return 0, false
	}
	f = math.Max(math.Min(math.Round(f), 1e12), -1e12)
	return int(f), true
}

func asBool(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "yes", "y":
			return true, true
		case "false", "no", "n":
			return false, true
		}
	case json.Number:
		switch t.String() {
		case "1":
			return true, true
		case "0":
			return false, true
		}
	}
	return false, false
}

func boolPtr(v any) *bool {
	b, ok := asBool(v)
	if !ok {
		return nil
	}
	return &b
}

// confidence reads a [0,1] score. Percentages in (1,100] are rescaled.
func confidence(v any) *float64 {
	f, ok := asFloat(v)
	if !ok {
		return nil
	}
	if f > 1 && f <= 100 {
		f /= 100
	}
	f = math.Min(math.Max(f, 0), 1)
	return &f
}

func nonNegative(v any) *float64 {
	f, ok := asFloat(v)
	if !ok {
		return nil
	}
	f = math.Max(f, 0)
	return &f
}

func score(v any) *int {
	n, ok := asInt(v)
	if !ok {
		return nil
	}
	n = ClampScore(n)
	return &n
}

// stringList accepts a list of strings or a single string.
func stringList(v any) []string {
	switch t := v.(type) {
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s := nonEmptyString(e); s != nil {
				out = append(out, *s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return []string{s}
		}
	}
	return nil
}

// nullString treats explicit null and blank strings as a supplied absence.
func nullString(v any, present bool) *domain.NullString {
	if !present {
		return nil
	}
	if v == nil {
		return &domain.NullString{}
	}
	s, ok := asString(v)
	if !ok {
		return nil
	}
	if s == "" {
		return &domain.NullString{}
	}
	ns := domain.SomeString(s)
	return &ns
}

func nullBool(v any, present bool) *domain.NullBool {
	if !present {
		return nil
	}
	if v == nil {
		return &domain.NullBool{}
	}
	b, ok := asBool(v)
	if !ok {
		return nil
	}
	nb := domain.SomeBool(b)
	return &nb
}

func enumKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}

// enumValue maps a free-form status onto an enum through its alias table.
func enumValue[E ~string](v any, aliases map[string]E) *E {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	e, ok := aliases[enumKey(s)]
	if !ok {
		return nil
	}
	return &e
}

// firstOf returns the value of the first key present in m.
func firstOf(m map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v, true
		}
	}
	return nil, false
}

func object(m map[string]any, key string) (map[string]any, bool) {
	o, ok := m[key].(map[string]any)
	return o, ok
}

// present returns nil when nothing was extracted into s.
func present[T any](s *T) *T {
	if s == nil || reflect.ValueOf(s).Elem().IsZero() {
		return nil
	}
	return s
}

// projectRecord fills the pointer fields of dst, a Partial*Detail value, by
// json tag. Keys are looked up in primary first, then in fallback. Nested
// records recurse over the nested object only. It reports whether any field
// was set.
func projectRecord(dst reflect.Value, primary, fallback map[string]any) bool {
	set := false
	t := dst.Type()
	for i := 0; i < t.NumField(); i++ {
		key, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		raw, ok := primary[key]
		if !ok || raw == nil {
			raw, ok = fallback[key]
		}
		if !ok || raw == nil {
			continue
		}
		f := dst.Field(i)
		switch f.Interface().(type) {
		case *string:
			if s := nonEmptyString(raw); s != nil {
				f.Set(reflect.ValueOf(s))
				set = true
			}
		case *bool:
			if b := boolPtr(raw); b != nil {
				f.Set(reflect.ValueOf(b))
				set = true
			}
		case *int:
			if n := score(raw); n != nil {
				f.Set(reflect.ValueOf(n))
				set = true
			}
		default:
			nested, isObj := raw.(map[string]any)
			if !isObj || f.Kind() != reflect.Pointer || f.Type().Elem().Kind() != reflect.Struct {
				continue
			}
			v := reflect.New(f.Type().Elem())
			if projectRecord(v.Elem(), nested, nil) {
				f.Set(v)
				set = true
			}
		}
	}
	return set
}

// detail projects a section's detail record. A free-text detail is read as
// notes, and detail keys given at section level are accepted too.
func detail[T any](section map[string]any) *T {
	var src map[string]any
	switch d := section["detail"].(type) {
	case map[string]any:
		src = d
	case string:
		src = map[string]any{"notes": d}
	}
	out := new(T)
	if !projectRecord(reflect.ValueOf(out).Elem(), src, section) {
		return nil
	}
	return out
}
