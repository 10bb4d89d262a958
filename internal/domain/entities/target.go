// Package entities contains domain entities used across the application.
package entities

// TargetKind tells whether a target is a body zone or a symptom category.
type TargetKind string

const (
	TargetZone    TargetKind = "zone"    // body zone picked on the silhouette
	TargetSymptom TargetKind = "symptom" // symptom category picked from the grid
)

// Target is what the user assesses: a body zone or a symptom category,
// together with the ordered questions asked about it.
type Target struct {
	ID          string        `json:"id" yaml:"id"`                                         // stable identifier, e.g. "chest"
	Kind        TargetKind    `json:"kind" yaml:"kind"`                                     // zone or symptom
	Name        LocalizedText `json:"name" yaml:"name"`                                     // display name
	Category    string        `json:"category,omitempty" yaml:"category,omitempty"`         // e.g. "torso", "respiratory"
	Icon        string        `json:"icon,omitempty" yaml:"icon,omitempty"`                 // emoji shown next to the name
	QuestionSet string        `json:"question_set,omitempty" yaml:"question_set,omitempty"` // shared question list id
	Questions   []Question    `json:"questions,omitempty" yaml:"questions,omitempty"`       // inline or resolved questions
}

// Question returns the question with the given id.
func (t *Target) Question(id string) (*Question, bool) {
	for i := range t.Questions {
		if t.Questions[i].ID == id {
			return &t.Questions[i], true
		}
	}
	return nil, false
}
