package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var ErrUnknownAnswerType = errors.New("unknown answer type")

// QuestionType selects the input control and the Answer representation of a question.
type QuestionType string

const (
	QuestionSelect      QuestionType = "select"      // single choice among options
	QuestionMultiSelect QuestionType = "multiselect" // any subset of options
	QuestionText        QuestionType = "text"        // free text
	QuestionScale       QuestionType = "scale"       // integer from ScaleMin to ScaleMax
	QuestionNumber      QuestionType = "number"      // free numeric value, e.g. a temperature
)

// Valid reports whether t is a known question type.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionSelect, QuestionMultiSelect, QuestionText, QuestionScale, QuestionNumber:
		return true
	}
	return false
}

// HasOptions reports whether questions of this type carry a fixed option list.
func (t QuestionType) HasOptions() bool {
	return t == QuestionSelect || t == QuestionMultiSelect
}

const (
	ScaleMin = 0
	ScaleMax = 10
)

// Answer is the value given to a question. There is one concrete type per QuestionType.
type Answer interface {
	Type() QuestionType
	// IsEmpty reports whether the answer counts as "not answered" for required questions.
	IsEmpty() bool
	// Values returns the raw string forms, used for label lookup.
	Values() []string
	String() string

	answer()
}

// ChoiceAnswer is the option value picked for a select question.
type ChoiceAnswer string

func (a ChoiceAnswer) Type() QuestionType { return QuestionSelect }
func (a ChoiceAnswer) IsEmpty() bool      { return strings.TrimSpace(string(a)) == "" }
func (a ChoiceAnswer) String() string     { return string(a) }
func (ChoiceAnswer) answer()              {}

func (a ChoiceAnswer) Values() []string {
	if a.IsEmpty() {
		return nil
	}
	return []string{string(a)}
}

// TextAnswer is free text.
type TextAnswer string

func (a TextAnswer) Type() QuestionType { return QuestionText }
func (a TextAnswer) IsEmpty() bool      { return strings.TrimSpace(string(a)) == "" }
func (a TextAnswer) String() string     { return strings.TrimSpace(string(a)) }
func (TextAnswer) answer()              {}

func (a TextAnswer) Values() []string {
	if a.IsEmpty() {
		return nil
	}
	return []string{a.String()}
}

// ScaleAnswer is a 0-10 rating. Zero is a valid answer.
type ScaleAnswer int

// NewScaleAnswer clamps v into the scale range, like the slider control does.
func NewScaleAnswer(v int) ScaleAnswer {
	return ScaleAnswer(min(max(v, ScaleMin), ScaleMax))
}

func (a ScaleAnswer) Type() QuestionType { return QuestionScale }
func (a ScaleAnswer) IsEmpty() bool      { return false }
func (a ScaleAnswer) String() string     { return strconv.Itoa(int(a)) }
func (a ScaleAnswer) Values() []string   { return []string{a.String()} }
func (ScaleAnswer) answer()              {}

// NumberAnswer is a free numeric value.
type NumberAnswer float64

func (a NumberAnswer) Type() QuestionType { return QuestionNumber }
func (a NumberAnswer) IsEmpty() bool      { return false }
func (a NumberAnswer) String() string     { return strconv.FormatFloat(float64(a), 'f', -1, 64) }
func (a NumberAnswer) Values() []string   { return []string{a.String()} }
func (NumberAnswer) answer()              {}

// MultiAnswer is an ordered set of option values. Duplicates are dropped on construction.
type MultiAnswer struct {
	values []string
}

// NewMultiAnswer builds a set keeping the first occurrence of every non-empty value.
func NewMultiAnswer(values ...string) MultiAnswer {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || slices.Contains(out, v) {
			continue
		}
		out = append(out, v)
	}
	return MultiAnswer{values: out}
}

func (a MultiAnswer) Type() QuestionType { return QuestionMultiSelect }
func (a MultiAnswer) IsEmpty() bool      { return len(a.values) == 0 }
func (a MultiAnswer) Len() int           { return len(a.values) }
func (a MultiAnswer) String() string     { return strings.Join(a.values, ", ") }
func (a MultiAnswer) Values() []string   { return slices.Clone(a.values) }
func (MultiAnswer) answer()              {}

func (a MultiAnswer) Contains(v string) bool {
	return slices.Contains(a.values, v)
}

// With returns a copy of the set with v added at the end.
func (a MultiAnswer) With(v string) MultiAnswer {
	return NewMultiAnswer(append(a.Values(), v)...)
}

// Without returns a copy of the set with v removed.
func (a MultiAnswer) Without(v string) MultiAnswer {
	out := make([]string, 0, len(a.values))
	for _, x := range a.values {
		if x != v {
			out = append(out, x)
		}
	}
	return MultiAnswer{values: out}
}

// AnswerMatches reports whether a equals the sentinel value of a dependency.
// A multiselect answer matches when it contains the value.
func AnswerMatches(a Answer, value string) bool {
	if a == nil {
		return false
	}
	if m, ok := a.(MultiAnswer); ok {
		return m.Contains(value)
	}
	return a.String() == value
}

// AnswerMap maps a question id to its answer. Any key may be absent.
type AnswerMap map[string]Answer

// Clone returns a shallow copy; answers themselves are immutable values.
func (m AnswerMap) Clone() AnswerMap {
	out := make(AnswerMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Has reports whether id has a present, non-empty answer.
func (m AnswerMap) Has(id string) bool {
	a, ok := m[id]
	return ok && a != nil && !a.IsEmpty()
}

// Text returns the string form of the answer to id, or "".
func (m AnswerMap) Text(id string) string {
	if !m.Has(id) {
		return ""
	}
	return m[id].String()
}

// Scale returns the rating answered for id.
func (m AnswerMap) Scale(id string) (int, bool) {
	switch a := m[id].(type) {
	case ScaleAnswer:
		return int(a), true
	case NumberAnswer:
		return int(a), true
	}
	return 0, false
}

// Multi returns the set answered for id, or an empty set.
func (m AnswerMap) Multi(id string) MultiAnswer {
	if a, ok := m[id].(MultiAnswer); ok {
		return a
	}
	return MultiAnswer{}
}

type answerJSON struct {
	Type  QuestionType    `json:"type"`
	Value json.RawMessage `json:"value"`
}

// MarshalJSON encodes every answer as {"type": ..., "value": ...}.
func (m AnswerMap) MarshalJSON() ([]byte, error) {
	out := make(map[string]answerJSON, len(m))
	for id, a := range m {
		if a == nil {
			continue
		}

		var (
			raw []byte
			err error
		)
		switch v := a.(type) {
		case MultiAnswer:
			raw, err = json.Marshal(v.Values())
		case ScaleAnswer:
			raw, err = json.Marshal(int(v))
		case NumberAnswer:
			raw, err = json.Marshal(float64(v))
		default:
			raw, err = json.Marshal(v.String())
		}
		if err != nil {
			return nil, fmt.Errorf("encode answer %s: %w", id, err)
		}

		out[id] = answerJSON{Type: a.Type(), Value: raw}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (m *AnswerMap) UnmarshalJSON(data []byte) error {
	var raw map[string]answerJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(AnswerMap, len(raw))
	for id, r := range raw {
		a, err := decodeAnswer(r)
		if err != nil {
			return fmt.Errorf("decode answer %s: %w", id, err)
		}
		out[id] = a
	}

	*m = out
	return nil
}

func decodeAnswer(r answerJSON) (Answer, error) {
	switch r.Type {
	case QuestionSelect, QuestionText:
		var s string
		if err := json.Unmarshal(r.Value, &s); err != nil {
			return nil, err
		}
		if r.Type == QuestionSelect {
			return ChoiceAnswer(s), nil
		}
		return TextAnswer(s), nil

	case QuestionMultiSelect:
		var values []string
		if err := json.Unmarshal(r.Value, &values); err != nil {
			return nil, err
		}
		return NewMultiAnswer(values...), nil

	case QuestionScale:
		var n int
		if err := json.Unmarshal(r.Value, &n); err != nil {
			return nil, err
		}
		return NewScaleAnswer(n), nil

	case QuestionNumber:
		var f float64
		if err := json.Unmarshal(r.Value, &f); err != nil {
			return nil, err
		}
		return NumberAnswer(f), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownAnswerType, r.Type)
}
