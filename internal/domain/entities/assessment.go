package entities

import "time"

// Assessment is the record produced once the questionnaire for a target reaches its end.
// One assessment exists per target; revisiting a target overwrites it.
type Assessment struct {
	TargetID    string        `json:"target_id"`              // body zone or symptom id
	Kind        TargetKind    `json:"kind,omitempty"`         // zone or symptom
	Name        LocalizedText `json:"name"`                   // target display name in both languages
	Answers     AnswerMap     `json:"answers"`                // answers keyed by question id
	Completed   bool          `json:"completed"`              // every required eligible question answered
	CompletedAt *time.Time    `json:"completed_at,omitempty"` // when the questionnaire was finished (nullable)
}

// NewAssessment creates an assessment for target from a copy of answers.
func NewAssessment(target *Target, answers AnswerMap) *Assessment {
	return &Assessment{
		TargetID: target.ID,
		Kind:     target.Kind,
		Name:     target.Name,
		Answers:  answers.Clone(),
	}
}

// Complete marks the assessment as completed and sets the completion timestamp.
func (a *Assessment) Complete(at time.Time) {
	a.Completed = true
	a.CompletedAt = &at
}

// DisplayName returns the target name in the given locale.
func (a *Assessment) DisplayName(l Locale) string {
	if a.Name.IsZero() {
		return a.TargetID
	}
	return a.Name.Get(l)
}
