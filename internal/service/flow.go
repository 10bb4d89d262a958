package service

import (
	"github.com/aliskhannn/triage-assistant/internal/domain/entities"
)

// StepResult tells the caller what a navigation request did.
type StepResult int

const (
	StepBlocked   StepResult = iota // transition unavailable, nothing changed
	StepMoved                       // position changed
	StepCompleted                   // the last question was passed and an assessment was emitted
)

func (r StepResult) String() string {
	switch r {
	case StepMoved:
		return "moved"
	case StepCompleted:
		return "completed"
	}
	return "blocked"
}

// FlowController walks the ordered questions of one target.
// Questions whose dependency is not satisfied are skipped in both directions.
type FlowController struct {
	target    *entities.Target
	clock     Clock
	position  int                // index into target.Questions
	answers   entities.AnswerMap // answers given so far
	completed bool               // set once the assessment has been emitted
}

// NewFlowController creates a controller positioned on the first question of target.
func NewFlowController(target *entities.Target, clock Clock) *FlowController {
	if clock == nil {
		clock = SystemClock{}
	}
	return &FlowController{
		target:  target,
		clock:   clock,
		answers: make(entities.AnswerMap),
	}
}

func (f *FlowController) Target() *entities.Target { return f.target }
func (f *FlowController) Position() int            { return f.position }
func (f *FlowController) Completed() bool          { return f.completed }

// Answers returns a copy of the answer map.
func (f *FlowController) Answers() entities.AnswerMap {
	return f.answers.Clone()
}

// Current returns the question at the current position.
func (f *FlowController) Current() *entities.Question {
	if f.position >= len(f.target.Questions) {
		return nil
	}
	return &f.target.Questions[f.position]
}

// Answer inserts or overwrites the answer to questionID. A nil value clears it.
// The value type is not checked against the question type.
func (f *FlowController) Answer(questionID string, value entities.Answer) {
	if value == nil {
		f.Clear(questionID)
		return
	}
	f.answers[questionID] = value
	f.settle()
}

// Clear removes the answer to questionID.
func (f *FlowController) Clear(questionID string) {
	delete(f.answers, questionID)
	f.settle()
}

// settle moves off the current question when a changed answer made it skipped:
// back to the closest eligible question, or forward when none precedes it.
func (f *FlowController) settle() {
	if f.completed {
		return
	}

	q := f.Current()
	if q == nil || q.Eligible(f.answers) {
		return
	}

	if prev, ok := f.prevEligible(f.position); ok {
		f.position = prev
		return
	}
	if next, ok := f.nextEligible(f.position); ok {
		f.position = next
	}
}

// CanProceed reports whether Advance would be accepted.
func (f *FlowController) CanProceed() bool {
	if f.completed {
		return false
	}

	q := f.Current()
	if q == nil {
		return false
	}
	return !q.Required || q.Answered(f.answers)
}

// Advance moves to the next eligible question. Past the last eligible question it
// emits the completed assessment instead. A refused transition returns StepBlocked.
func (f *FlowController) Advance() (StepResult, *entities.Assessment) {
	if !f.CanProceed() {
		return StepBlocked, nil
	}

	if next, ok := f.nextEligible(f.position); ok {
		f.position = next
		return StepMoved, nil
	}

	// A required answer given earlier may have been cleared since.
	if !IsComplete(f.target.Questions, f.answers) {
		return StepBlocked, nil
	}

	a := entities.NewAssessment(f.target, f.answers)
	a.Complete(f.clock.Now())
	f.completed = true

	return StepCompleted, a
}

// Retreat moves to the previous eligible question. It is refused on the first
// question and once the flow is completed.
func (f *FlowController) Retreat() StepResult {
	if f.completed {
		return StepBlocked
	}

	prev, ok := f.prevEligible(f.position)
	if !ok {
		return StepBlocked
	}

	f.position = prev
	return StepMoved
}

// Reset restores the initial state.
func (f *FlowController) Reset() {
	f.position = 0
	f.answers = make(entities.AnswerMap)
	f.completed = false
}

// Progress returns the 1-based rank of the current question among the eligible
// ones, and how many questions are eligible given the current answers.
func (f *FlowController) Progress() (current, total int) {
	for i := range f.target.Questions {
		if !f.target.Questions[i].Eligible(f.answers) {
			continue
		}
		total++
		if i <= f.position {
			current = total
		}
	}
	return current, total
}

// Missing returns the ids of required eligible questions still unanswered.
func (f *FlowController) Missing() []string {
	var out []string
	for i := range f.target.Questions {
		q := &f.target.Questions[i]
		if q.Required && q.Eligible(f.answers) && !q.Answered(f.answers) {
			out = append(out, q.ID)
		}
	}
	return out
}

func (f *FlowController) nextEligible(from int) (int, bool) {
	for i := from + 1; i < len(f.target.Questions); i++ {
		if f.target.Questions[i].Eligible(f.answers) {
			return i, true
		}
	}
	return 0, false
}

func (f *FlowController) prevEligible(from int) (int, bool) {
	for i := from - 1; i >= 0; i-- {
		if f.target.Questions[i].Eligible(f.answers) {
			return i, true
		}
	}
	return 0, false
}

// IsComplete reports whether every required question that is not skipped has a
// non-empty answer.
func IsComplete(questions []entities.Question, answers entities.AnswerMap) bool {
	for i := range questions {
		q := &questions[i]
		if q.Required && q.Eligible(answers) && !q.Answered(answers) {
			return false
		}
	}
	return true
}

// VerifyCompletion re-checks assessments read back from a file against the
// catalogue. An assessment marked completed whose target still has a required
// eligible question unanswered is demoted in place, and its target id returned.
// Assessments of unknown targets are left as they are.
func VerifyCompletion(targets TargetLookup, assessments []*entities.Assessment) []string {
	var demoted []string
	for _, a := range assessments {
		if a == nil || !a.Completed {
			continue
		}

		t, err := targets.GetByID(a.TargetID)
		if err != nil {
			continue
		}

		if !IsComplete(t.Questions, a.Answers) {
			a.Completed = false
			a.CompletedAt = nil
			demoted = append(demoted, a.TargetID)
		}
	}
	return demoted
}
