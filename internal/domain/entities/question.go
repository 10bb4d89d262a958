package entities

// Step is the OCRSTFIT phase a question belongs to.
type Step string

const (
	StepOnset      Step = "O"  // onset
	StepCharacter  Step = "C"  // character of the sensation
	StepRadiation  Step = "R"  // radiation
	StepSeverity   Step = "S"  // severity
	StepTiming     Step = "T"  // timing and duration
	StepFactors    Step = "F"  // aggravating and relieving factors
	StepAssociated Step = "I"  // associated signs
	StepTreatment  Step = "T2" // treatment and history
)

// Option is one entry of a fixed option list.
type Option struct {
	Value string        `json:"value" yaml:"value"` // stable value stored in answers
	Label LocalizedText `json:"label" yaml:"label"` // text shown to the user
}

// Dependency makes a question a follow-up of an earlier gating question.
// The question is only asked when the gating answer equals Value.
type Dependency struct {
	QuestionID string `json:"question" yaml:"question"`
	Value      string `json:"value" yaml:"value"`
}

// Satisfied reports whether the gating answer currently equals the required value.
func (d Dependency) Satisfied(answers AnswerMap) bool {
	return AnswerMatches(answers[d.QuestionID], d.Value)
}

// Question is an immutable entry of the static catalogue.
type Question struct {
	ID        string        `json:"id" yaml:"id"`
	Step      Step          `json:"step,omitempty" yaml:"step,omitempty"`
	Text      LocalizedText `json:"text" yaml:"text"`
	Type      QuestionType  `json:"type" yaml:"type"`
	Options   []Option      `json:"options,omitempty" yaml:"options,omitempty"`
	Required  bool          `json:"required,omitempty" yaml:"required,omitempty"`
	DependsOn *Dependency   `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`
}

// Eligible reports whether q is asked for the given answers.
func (q *Question) Eligible(answers AnswerMap) bool {
	return q.DependsOn == nil || q.DependsOn.Satisfied(answers)
}

// Answered reports whether answers hold a present, non-empty value for q.
func (q *Question) Answered(answers AnswerMap) bool {
	return answers.Has(q.ID)
}

// Option returns the option with the given value.
func (q *Question) Option(value string) (Option, bool) {
	for _, o := range q.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}
