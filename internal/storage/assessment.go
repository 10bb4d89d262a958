package storage

import (
	"slices"

	"github.com/aliskhannn/triage-assistant/internal/domain/entities"
)

// AssessmentStorage keeps session assessments in memory, keyed by target id.
// It is owned by a single session and is not safe for concurrent use.
type AssessmentStorage struct {
	order       []string
	assessments map[string]*entities.Assessment
}

// NewAssessmentStorage creates an empty AssessmentStorage.
func NewAssessmentStorage() *AssessmentStorage {
	return &AssessmentStorage{
		assessments: make(map[string]*entities.Assessment),
	}
}

// Store saves a for its target. A target assessed again is overwritten in place,
// keeping the position of its first engagement.
func (s *AssessmentStorage) Store(a *entities.Assessment) {
	if _, ok := s.assessments[a.TargetID]; !ok {
		s.order = append(s.order, a.TargetID)
	}
	s.assessments[a.TargetID] = a
}

// Get retrieves the assessment of a target.
func (s *AssessmentStorage) Get(targetID string) (*entities.Assessment, bool) {
	a, ok := s.assessments[targetID]
	return a, ok
}

// All returns assessments in engagement order.
func (s *AssessmentStorage) All() []*entities.Assessment {
	out := make([]*entities.Assessment, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.assessments[id])
	}
	return out
}

// Delete removes the assessment of a target.
func (s *AssessmentStorage) Delete(targetID string) bool {
	if _, ok := s.assessments[targetID]; !ok {
		return false
	}
	delete(s.assessments, targetID)
	s.order = slices.DeleteFunc(s.order, func(id string) bool { return id == targetID })
	return true
}

// Reset removes every assessment.
func (s *AssessmentStorage) Reset() {
	s.order = nil
	clear(s.assessments)
}

func (s *AssessmentStorage) Len() int {
	return len(s.order)
}
