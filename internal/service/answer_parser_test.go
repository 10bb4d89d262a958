package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/triage-assistant/internal/domain/entities"
)

func TestAnswerParser_Parse(t *testing.T) {
	p := NewAnswerParser(nil)
	qs := painQuestions()
	onset, location, severity, associated := &qs[0], &qs[3], &qs[4], &qs[7]
	temperature := &entities.Question{ID: "temperature", Type: entities.QuestionNumber}
	trigger := &entities.Question{ID: "trigger", Type: entities.QuestionText}

	tests := []struct {
		name  string
		q     *entities.Question
		input string
		want  entities.Answer
	}{
		{"select by number", onset, "2", entities.ChoiceAnswer("progressif")},
		{"select by value", onset, "brutal", entities.ChoiceAnswer("brutal")},
		{"select fuzzy", onset, "progresif", entities.ChoiceAnswer("progressif")},
		{"multi by numbers", location, "1, 3", entities.NewMultiAnswer("jaw", "back")},
		{"multi mixed separators", associated, "fever; 2،cough", entities.NewMultiAnswer("fever", "nausea", "cough")},
		{"multi duplicates", associated, "1,fever", entities.NewMultiAnswer("fever")},
		{"scale", severity, "7", entities.ScaleAnswer(7)},
		{"scale out of ten", severity, "8/10", entities.ScaleAnswer(8)},
		{"scale clamped", severity, "14", entities.ScaleAnswer(10)},
		{"number with comma", temperature, "38,5", entities.NumberAnswer(38.5)},
		{"text verbatim", trigger, "  après le repas ", entities.TextAnswer("après le repas")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse(tt.q, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnswerParser_Invalid(t *testing.T) {
	p := NewAnswerParser(nil)
	qs := painQuestions()
	onset, severity, associated := &qs[0], &qs[4], &qs[7]
	temperature := &entities.Question{ID: "temperature", Type: entities.QuestionNumber}

	tests := []struct {
		name  string
		q     *entities.Question
		input string
	}{
		{"empty", onset, "   "},
		{"number out of range", onset, "3"},
		{"zero", onset, "0"},
		{"no match", onset, "hier soir"},
		{"one bad token", associated, "fever, hiccups"},
		{"separators only", associated, ",;"},
		{"scale not a number", severity, "fort"},
		{"number not a number", temperature, "chaud"},
		{"number NaN", temperature, "NaN"},
		{"number infinity", temperature, "Inf"},
		{"number signed infinity", temperature, "+Inf"},
		{"number overflow", temperature, "1e400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(tt.q, tt.input)
			assert.ErrorIs(t, err, ErrInvalidAnswer)
		})
	}
}

func TestAnswerParser_UnknownType(t *testing.T) {
	p := NewAnswerParser(NewOptionMatcher())

	_, err := p.Parse(&entities.Question{ID: "x", Type: "slider"}, "5")
	assert.ErrorIs(t, err, entities.ErrUnknownAnswerType)
}
