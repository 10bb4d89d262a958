package repository

import "github.com/aliskhannn/triage-assistant/internal/domain/entities"

// LabelTable maps raw answer values to display text, per question id.
type LabelTable struct {
	labels map[string]map[string]entities.LocalizedText
}

func NewLabelTable() *LabelTable {
	return &LabelTable{
		labels: make(map[string]map[string]entities.LocalizedText),
	}
}

// AddQuestions registers option labels of questions. An existing entry is kept,
// so the first question declaring a value wins.
func (t *LabelTable) AddQuestions(questions []entities.Question) {
	for _, q := range questions {
		for _, o := range q.Options {
			if _, ok := t.lookup(q.ID, o.Value); ok {
				continue
			}
			t.Set(q.ID, o.Value, o.Label)
		}
	}
}

// Set registers or replaces the label of value for questionID.
func (t *LabelTable) Set(questionID, value string, text entities.LocalizedText) {
	values, ok := t.labels[questionID]
	if !ok {
		values = make(map[string]entities.LocalizedText)
		t.labels[questionID] = values
	}
	values[value] = text
}

// Resolve returns the display text of value. Unmapped values come back as-is with ok=false.
func (t *LabelTable) Resolve(questionID, value string, l entities.Locale) (text string, ok bool) {
	label, ok := t.lookup(questionID, value)
	if !ok {
		return value, false
	}
	return label.Get(l), true
}

// ResolveAll resolves every value in order.
func (t *LabelTable) ResolveAll(questionID string, values []string, l entities.Locale) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		text, _ := t.Resolve(questionID, v, l)
		out = append(out, text)
	}
	return out
}

func (t *LabelTable) lookup(questionID, value string) (entities.LocalizedText, bool) {
	if t == nil {
		return entities.LocalizedText{}, false
	}
	label, ok := t.labels[questionID][value]
	if !ok || label.IsZero() {
		return entities.LocalizedText{}, false
	}
	return label, true
}
