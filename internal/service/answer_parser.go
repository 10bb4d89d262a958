package service

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aliskhannn/triage-assistant/internal/domain/entities"
)

var ErrInvalidAnswer = errors.New("invalid answer")

// AnswerParser turns a line of user input into an Answer for a given question.
type AnswerParser struct {
	matcher *OptionMatcher
}

func NewAnswerParser(matcher *OptionMatcher) *AnswerParser {
	if matcher == nil {
		matcher = NewOptionMatcher()
	}
	return &AnswerParser{matcher: matcher}
}

// Parse reads input according to the question type:
// choices by 1-based number, value or label; multiple choices separated by commas;
// scale and number as decimals; text verbatim.
func (p *AnswerParser) Parse(q *entities.Question, input string) (entities.Answer, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidAnswer)
	}

	switch q.Type {
	case entities.QuestionSelect:
		o, err := p.option(q, input)
		if err != nil {
			return nil, err
		}
		return entities.ChoiceAnswer(o.Value), nil

	case entities.QuestionMultiSelect:
		var values []string
		for _, token := range strings.FieldsFunc(input, isListSeparator) {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			o, err := p.option(q, token)
			if err != nil {
				return nil, err
			}
			values = append(values, o.Value)
		}
		if len(values) == 0 {
			return nil, fmt.Errorf("%w: no option given", ErrInvalidAnswer)
		}
		return entities.NewMultiAnswer(values...), nil

	case entities.QuestionScale:
		v, err := strconv.Atoi(strings.TrimSuffix(input, "/10"))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a whole number", ErrInvalidAnswer, input)
		}
		return entities.NewScaleAnswer(v), nil

	case entities.QuestionNumber:
		v, err := strconv.ParseFloat(strings.ReplaceAll(input, ",", "."), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidAnswer, input)
		}
		return entities.NumberAnswer(v), nil

	case entities.QuestionText:
		return entities.TextAnswer(input), nil
	}

	return nil, fmt.Errorf("%w: %q", entities.ErrUnknownAnswerType, q.Type)
}

func (p *AnswerParser) option(q *entities.Question, token string) (entities.Option, error) {
	if n, err := strconv.Atoi(token); err == nil {
		if n < 1 || n > len(q.Options) {
			return entities.Option{}, fmt.Errorf("%w: option %d out of range", ErrInvalidAnswer, n)
		}
		return q.Options[n-1], nil
	}

	if o, ok := q.Option(token); ok {
		return o, nil
	}

	if o, ok := p.matcher.Match(token, q.Options); ok {
		return o, nil
	}

	return entities.Option{}, fmt.Errorf("%w: %q matches no option", ErrInvalidAnswer, token)
}

func isListSeparator(r rune) bool {
	return r == ',' || r == '،' || r == ';'
}
