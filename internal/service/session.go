package service

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aliskhannn/triage-assistant/internal/domain/entities"
	"github.com/aliskhannn/triage-assistant/internal/storage"
)

var ErrNoActiveTarget = errors.New("no active target")

// Catalog is the read side of the target catalogue used by a session.
type Catalog interface {
	TargetLookup
	GetAll() []*entities.Target
	GetByKind(kind entities.TargetKind) []*entities.Target
}

// Session owns all interaction state of one user: the active questionnaire,
// the completed assessments and the display language.
// It is driven by a single caller and is not safe for concurrent use.
type Session struct {
	id          string
	catalog     Catalog
	generator   *SummaryGenerator
	clock       Clock
	logger      *zap.Logger
	patient     entities.Patient
	locale      entities.Locale
	flow        *FlowController
	assessments *storage.AssessmentStorage
}

// NewSession creates a session without an active target.
func NewSession(
	catalog Catalog,
	labels LabelResolver,
	patient entities.Patient,
	locale entities.Locale,
	clock Clock,
	logger *zap.Logger,
) *Session {
	if clock == nil {
		clock = SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if !locale.Valid() {
		locale = entities.LocaleFR
	}

	id := uuid.NewString()
	return &Session{
		id:          id,
		catalog:     catalog,
		generator:   NewSummaryGenerator(catalog, labels, clock),
		clock:       clock,
		logger:      logger.With(zap.String("session_id", id)),
		patient:     patient,
		locale:      locale,
		assessments: storage.NewAssessmentStorage(),
	}
}

func (s *Session) ID() string                { return s.id }
func (s *Session) Locale() entities.Locale   { return s.locale }
func (s *Session) Patient() entities.Patient { return s.patient }
func (s *Session) Catalog() Catalog          { return s.catalog }

// SetPatient replaces the patient metadata.
func (s *Session) SetPatient(p entities.Patient) {
	s.patient = p
}

// SetLocale switches the display language. Answers are left untouched.
func (s *Session) SetLocale(l entities.Locale) {
	if !l.Valid() {
		return
	}
	s.locale = l
	s.logger.Debug("locale changed", zap.String("locale", string(l)))
}

// ToggleLocale switches to the other display language.
func (s *Session) ToggleLocale() entities.Locale {
	s.SetLocale(s.locale.Toggle())
	return s.locale
}

// SelectTarget starts a fresh questionnaire for the target with the given id.
// Any traversal in progress is discarded.
func (s *Session) SelectTarget(id string) (*entities.Target, error) {
	t, err := s.catalog.GetByID(id)
	if err != nil {
		return nil, err
	}

	s.flow = NewFlowController(t, s.clock)
	s.logger.Debug("target selected", zap.String("target_id", t.ID))

	return t, nil
}

// Flow returns the active questionnaire, or nil.
func (s *Session) Flow() *FlowController {
	return s.flow
}

// Active reports whether a questionnaire is in progress.
func (s *Session) Active() bool {
	return s.flow != nil && !s.flow.Completed()
}

// Answer records an answer for the active questionnaire.
func (s *Session) Answer(questionID string, value entities.Answer) error {
	if s.flow == nil {
		return ErrNoActiveTarget
	}

	s.flow.Answer(questionID, value)
	s.logger.Debug("answer recorded",
		zap.String("target_id", s.flow.Target().ID),
		zap.String("question_id", questionID),
	)
	return nil
}

// Advance moves the active questionnaire forward. On completion the assessment
// is stored, replacing any earlier assessment of the same target.
func (s *Session) Advance() (StepResult, *entities.Assessment, error) {
	if s.flow == nil {
		return StepBlocked, nil, ErrNoActiveTarget
	}

	res, a := s.flow.Advance()
	switch res {
	case StepCompleted:
		s.assessments.Store(a)
		s.logger.Info("assessment completed",
			zap.String("target_id", a.TargetID),
			zap.Int("answers", len(a.Answers)),
		)
	case StepBlocked:
		s.logger.Debug("advance blocked",
			zap.String("target_id", s.flow.Target().ID),
			zap.Strings("missing", s.flow.Missing()),
		)
	}

	return res, a, nil
}

// Retreat moves the active questionnaire back.
func (s *Session) Retreat() (StepResult, error) {
	if s.flow == nil {
		return StepBlocked, ErrNoActiveTarget
	}
	return s.flow.Retreat(), nil
}

// Reset restarts the active questionnaire from its first question.
func (s *Session) Reset() error {
	if s.flow == nil {
		return ErrNoActiveTarget
	}
	s.flow.Reset()
	s.logger.Debug("flow reset", zap.String("target_id", s.flow.Target().ID))
	return nil
}

// Assessments returns the stored assessments in engagement order.
func (s *Session) Assessments() []*entities.Assessment {
	return s.assessments.All()
}

// StoreAssessment adds an assessment produced elsewhere, e.g. loaded from a dump.
func (s *Session) StoreAssessment(a *entities.Assessment) {
	s.assessments.Store(a)
}

// RemoveAssessment forgets the assessment of a target.
func (s *Session) RemoveAssessment(targetID string) bool {
	return s.assessments.Delete(targetID)
}

// Clear drops every assessment and the active questionnaire.
func (s *Session) Clear() {
	s.assessments.Reset()
	s.flow = nil
	s.logger.Debug("session cleared")
}

// Snapshot returns a portable dump of the patient and stored assessments.
func (s *Session) Snapshot() storage.Snapshot {
	snap := s.assessments.Snapshot()
	p := s.patient
	snap.Patient = &p
	snap.Locale = s.locale
	return snap
}

// Summary renders the stored assessments in the current locale.
func (s *Session) Summary() Summary {
	return s.generator.Generate(s.assessments.All(), s.patient, s.locale)
}
