package service

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/aliskhannn/triage-assistant/internal/domain/entities"
)

// LabelResolver maps raw answer values to display text.
type LabelResolver interface {
	Resolve(questionID, value string, l entities.Locale) (string, bool)
}

// TargetLookup finds the catalogue entry an assessment was made for.
type TargetLookup interface {
	GetByID(id string) (*entities.Target, error)
}

// DependencyLookup returns the catalogue-wide skip rule of a question. A
// TargetLookup implementing it lets assessments of unknown targets still drop
// answers to skipped follow-ups.
type DependencyLookup interface {
	Dependency(questionID string) (entities.Dependency, bool)
}

// SummaryFields tells the generator which question ids feed each part of the summary.
// The first answered id of a list is used.
type SummaryFields struct {
	Character         []string
	Severity          []string
	Onset             []string
	Duration          []string
	Timing            []string
	RadiationLocation []string
	Aggravating       []string
	Relieving         []string
	Associated        []string
	Previous          []string

	// Ignored lists values meaning "nothing to report", per question id.
	Ignored map[string][]string
}

// DefaultSummaryFields matches the OCRSTFIT question set and the symptom catalogue.
var DefaultSummaryFields = SummaryFields{
	Character:         []string{"character", "type"},
	Severity:          []string{"severity", "intensity"},
	Onset:             []string{"onset"},
	Duration:          []string{"duration"},
	Timing:            []string{"timing"},
	RadiationLocation: []string{"radiation_location"},
	Aggravating:       []string{"aggravating"},
	Relieving:         []string{"relieving"},
	Associated:        []string{"associated"},
	Previous:          []string{"previous"},
	Ignored: map[string][]string{
		"aggravating": {"none"},
		"relieving":   {"nothing"},
	},
}

// Stats is the statistics block of a summary.
type Stats struct {
	CompletedCount  int `json:"completed_count"`
	MaxSeverity     int `json:"max_severity"`
	AssociatedCount int `json:"associated_count"`
}

// Detail is one answered (or unanswered) question of an assessment, ready for display.
type Detail struct {
	QuestionID string        `json:"question_id"`
	Step       entities.Step `json:"step,omitempty"`
	Question   string        `json:"question"`
	Value      string        `json:"value"`
	Answered   bool          `json:"answered"`
}

// AssessmentSummary is the rendered form of one completed assessment.
type AssessmentSummary struct {
	TargetID    string   `json:"target_id"`
	Name        string   `json:"name"`
	Clause      string   `json:"clause"`      // "Chest (burning, 7/10, brutal, <24h)"
	Description string   `json:"description"` // prose sentence fragment
	Severity    int      `json:"severity"`
	Details     []Detail `json:"details"`
}

// Summary is the clinical hand-off generated from a session.
type Summary struct {
	Locale              entities.Locale     `json:"locale"`
	Patient             entities.Patient    `json:"patient"`
	GeneratedAt         time.Time           `json:"generated_at"`
	Assessments         []AssessmentSummary `json:"assessments"`
	ChiefComplaint      string              `json:"chief_complaint"`
	AssociatedSymptoms  []string            `json:"associated_symptoms"` // raw values
	AssociatedLabels    []string            `json:"associated_labels"`   // resolved values
	HasPreviousEpisodes bool                `json:"has_previous_episodes"`
	Stats               Stats               `json:"stats"`
	Text                string              `json:"text"` // professional prose summary
}

// SummaryGenerator renders completed assessments into a clinical summary.
// Output depends only on its inputs and the injected clock.
type SummaryGenerator struct {
	targets TargetLookup
	labels  LabelResolver
	clock   Clock
	fields  SummaryFields
}

// NewSummaryGenerator creates a generator. targets and labels may be nil, in which
// case no skip rules are applied and raw values are printed.
func NewSummaryGenerator(targets TargetLookup, labels LabelResolver, clock Clock) *SummaryGenerator {
	if clock == nil {
		clock = SystemClock{}
	}
	return &SummaryGenerator{
		targets: targets,
		labels:  labels,
		clock:   clock,
		fields:  DefaultSummaryFields,
	}
}

// WithFields returns a copy of the generator using another field mapping.
func (g *SummaryGenerator) WithFields(fields SummaryFields) *SummaryGenerator {
	cp := *g
	cp.fields = fields
	return &cp
}

// Generate builds the summary of the completed assessments among assessments.
func (g *SummaryGenerator) Generate(
	assessments []*entities.Assessment, patient entities.Patient, locale entities.Locale,
) Summary {
	p := phrasesFor(locale)
	now := g.clock.Now()

	summary := Summary{
		Locale:             locale,
		Patient:            patient,
		GeneratedAt:        now,
		Assessments:        []AssessmentSummary{},
		AssociatedSymptoms: []string{},
		AssociatedLabels:   []string{},
	}

	completed := make([]*entities.Assessment, 0, len(assessments))
	for _, a := range assessments {
		if a != nil && a.Completed {
			completed = append(completed, a)
		}
	}

	if len(completed) == 0 {
		summary.Text = p.nothingCompleted
		return summary
	}

	var clauses, descriptions []string
	for _, a := range completed {
		target := g.lookupTarget(a.TargetID)
		answers := g.effectiveAnswers(target, a.Answers)

		as := AssessmentSummary{
			TargetID: a.TargetID,
			Name:     a.DisplayName(locale),
			Details:  g.details(target, answers, locale),
		}
		as.Severity, _ = g.severity(answers)
		as.Clause = g.clause(as.Name, answers, locale)
		as.Description = g.description(as.Name, answers, locale)

		summary.Assessments = append(summary.Assessments, as)
		summary.Stats.MaxSeverity = max(summary.Stats.MaxSeverity, as.Severity)

		clauses = append(clauses, as.Clause)
		descriptions = append(descriptions, as.Description)

		for _, v := range g.associated(answers) {
			if !slices.Contains(summary.AssociatedSymptoms, v.value) {
				summary.AssociatedSymptoms = append(summary.AssociatedSymptoms, v.value)
				summary.AssociatedLabels = append(summary.AssociatedLabels, g.resolve(v.questionID, v.value, locale))
			}
		}

		if id, ok := firstAnswered(answers, g.fields.Previous); ok && entities.AnswerMatches(answers[id], "yes") {
			summary.HasPreviousEpisodes = true
		}
	}

	summary.ChiefComplaint = strings.Join(clauses, p.complaintSep)
	summary.Stats.CompletedCount = len(completed)
	summary.Stats.AssociatedCount = len(summary.AssociatedSymptoms)
	summary.Text = g.proseText(summary, descriptions, now, locale)

	return summary
}

// clause renders "Name (character, N/10, onset, duration)" with the present fields only.
func (g *SummaryGenerator) clause(name string, answers entities.AnswerMap, locale entities.Locale) string {
	p := phrasesFor(locale)

	var parts []string
	if v, ok := g.fieldText(g.fields.Character, answers, locale); ok {
		parts = append(parts, v)
	}
	if sev, ok := g.severity(answers); ok {
		parts = append(parts, fmt.Sprintf("%d%s", sev, p.severitySuffix))
	}
	if v, ok := g.fieldText(g.fields.Onset, answers, locale); ok {
		parts = append(parts, v)
	}
	if v, ok := g.fieldText(g.fields.Duration, answers, locale); ok {
		parts = append(parts, v)
	}

	if len(parts) == 0 {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, strings.Join(parts, p.listSep))
}

// description renders the prose fragment describing one target.
func (g *SummaryGenerator) description(name string, answers entities.AnswerMap, locale entities.Locale) string {
	p := phrasesFor(locale)

	var b strings.Builder
	if v, ok := g.fieldText(g.fields.Character, answers, locale); ok {
		fmt.Fprintf(&b, p.ofType, name, v)
	} else {
		b.WriteString(name)
	}

	if sev, ok := g.severity(answers); ok && sev > 0 {
		fmt.Fprintf(&b, p.intensity, sev)
	}

	optional := []struct {
		ids    []string
		format string
	}{
		{g.fields.Onset, p.onset},
		{g.fields.Duration, p.duration},
		{g.fields.Timing, p.timing},
		{g.fields.RadiationLocation, p.radiation},
		{g.fields.Aggravating, p.aggravated},
		{g.fields.Relieving, p.relieved},
	}
	for _, o := range optional {
		if v, ok := g.fieldText(o.ids, answers, locale); ok {
			fmt.Fprintf(&b, o.format, v)
		}
	}

	return b.String()
}

func (g *SummaryGenerator) proseText(s Summary, descriptions []string, now time.Time, locale entities.Locale) string {
	p := phrasesFor(locale)

	name := s.Patient.Name
	if strings.TrimSpace(name) == "" {
		name = p.unspecified
	}

	var b strings.Builder
	fmt.Fprintf(&b, p.intro,
		name,
		s.Patient.Age,
		now.Format(p.dateLayout),
		now.Format(p.timeLayout),
		strings.Join(descriptions, p.descriptionSep),
	)

	if len(s.AssociatedLabels) > 0 {
		fmt.Fprintf(&b, p.associated, strings.Join(s.AssociatedLabels, p.listSep))
	}
	if s.HasPreviousEpisodes {
		b.WriteString(p.previous)
	}

	return b.String()
}

// details lists every eligible question of the target, or every answer when the
// target is unknown.
func (g *SummaryGenerator) details(target *entities.Target, answers entities.AnswerMap, locale entities.Locale) []Detail {
	p := phrasesFor(locale)

	if target == nil {
		ids := make([]string, 0, len(answers))
		for id := range answers {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		out := make([]Detail, 0, len(ids))
		for _, id := range ids {
			out = append(out, Detail{
				QuestionID: id,
				Question:   id,
				Value:      g.answerText(id, answers[id], locale),
				Answered:   answers.Has(id),
			})
		}
		return out
	}

	out := make([]Detail, 0, len(target.Questions))
	for i := range target.Questions {
		q := &target.Questions[i]
		if !q.Eligible(answers) {
			continue
		}

		d := Detail{
			QuestionID: q.ID,
			Step:       q.Step,
			Question:   q.Text.Get(locale),
			Value:      p.unspecified,
		}
		if q.Answered(answers) {
			d.Value = g.answerText(q.ID, answers[q.ID], locale)
			d.Answered = true
		}
		out = append(out, d)
	}
	return out
}

type fieldValue struct {
	questionID string
	value      string
}

func (g *SummaryGenerator) associated(answers entities.AnswerMap) []fieldValue {
	var out []fieldValue
	for _, id := range g.fields.Associated {
		for _, v := range answers.Multi(id).Values() {
			out = append(out, fieldValue{questionID: id, value: v})
		}
	}
	return out
}

func (g *SummaryGenerator) severity(answers entities.AnswerMap) (int, bool) {
	for _, id := range g.fields.Severity {
		if v, ok := answers.Scale(id); ok {
			return v, true
		}
	}
	return 0, false
}

// fieldText resolves the first answered id of ids, dropping ignored values.
func (g *SummaryGenerator) fieldText(ids []string, answers entities.AnswerMap, locale entities.Locale) (string, bool) {
	id, ok := firstAnswered(answers, ids)
	if !ok {
		return "", false
	}

	values := answers[id].Values()
	if ignored := g.fields.Ignored[id]; len(ignored) > 0 {
		values = slices.DeleteFunc(values, func(v string) bool { return slices.Contains(ignored, v) })
	}
	if len(values) == 0 {
		return "", false
	}

	return strings.Join(g.resolveAll(id, values, locale), phrasesFor(locale).listSep), true
}

func (g *SummaryGenerator) answerText(id string, a entities.Answer, locale entities.Locale) string {
	p := phrasesFor(locale)

	if a == nil || a.IsEmpty() {
		return p.unspecified
	}
	if s, ok := a.(entities.ScaleAnswer); ok {
		return fmt.Sprintf("%d%s", int(s), p.severitySuffix)
	}
	return strings.Join(g.resolveAll(id, a.Values(), locale), p.listSep)
}

func (g *SummaryGenerator) resolveAll(id string, values []string, locale entities.Locale) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, g.resolve(id, v, locale))
	}
	return out
}

func (g *SummaryGenerator) resolve(id, value string, locale entities.Locale) string {
	if g.labels == nil {
		return value
	}
	text, _ := g.labels.Resolve(id, value, locale)
	return text
}

func (g *SummaryGenerator) lookupTarget(id string) *entities.Target {
	if g.targets == nil {
		return nil
	}
	t, err := g.targets.GetByID(id)
	if err != nil {
		return nil
	}
	return t
}

// effectiveAnswers drops answers to questions skipped by their dependency.
// Dependencies always point backwards, so one ordered pass handles chains.
// Without a target the catalogue-wide rules are applied until nothing changes.
func (g *SummaryGenerator) effectiveAnswers(target *entities.Target, answers entities.AnswerMap) entities.AnswerMap {
	out := answers.Clone()
	if target == nil {
		if deps, ok := g.targets.(DependencyLookup); ok {
			dropUnsatisfied(deps, out)
		}
		return out
	}

	for i := range target.Questions {
		q := &target.Questions[i]
		if !q.Eligible(out) {
			delete(out, q.ID)
		}
	}
	return out
}

func dropUnsatisfied(deps DependencyLookup, answers entities.AnswerMap) {
	for changed := true; changed; {
		changed = false
		for id := range answers {
			if d, ok := deps.Dependency(id); ok && !d.Satisfied(answers) {
				delete(answers, id)
				changed = true
			}
		}
	}
}

func firstAnswered(answers entities.AnswerMap, ids []string) (string, bool) {
	for _, id := range ids {
		if answers.Has(id) {
			return id, true
		}
	}
	return "", false
}
