package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aliskhannn/triage-assistant/internal/domain/entities"
)

var (
	ErrTargetNotFound = errors.New("target not found")
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// CatalogData is the on-disk shape of the static symptom and question catalogue.
type CatalogData struct {
	QuestionSets map[string][]entities.Question                `json:"question_sets" yaml:"question_sets"`
	Targets      []entities.Target                             `json:"targets" yaml:"targets"`
	Labels       map[string]map[string]entities.LocalizedText `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// CatalogRepository provides read-only access to targets and their questions.
// The catalogue is loaded once and never changes afterwards.
type CatalogRepository struct {
	targets []*entities.Target
	byID    map[string]*entities.Target
	deps    map[string]entities.Dependency // question id -> first dependency declared for it
	labels  *LabelTable
}

// NewCatalogRepository loads and validates the catalogue at path.
// Files ending in .json are decoded as JSON, everything else as YAML.
func NewCatalogRepository(path string) (*CatalogRepository, error) {
	data, err := readCatalog(path)
	if err != nil {
		return nil, err
	}

	return NewCatalogRepositoryFromData(data)
}

// NewCatalogRepositoryFromData validates data and resolves shared question sets.
func NewCatalogRepositoryFromData(data CatalogData) (*CatalogRepository, error) {
	for id, questions := range data.QuestionSets {
		if err := validateQuestions(questions); err != nil {
			return nil, fmt.Errorf("%w: question set %q: %v", ErrInvalidCatalog, id, err)
		}
	}

	r := &CatalogRepository{
		targets: make([]*entities.Target, 0, len(data.Targets)),
		byID:    make(map[string]*entities.Target, len(data.Targets)),
		deps:    make(map[string]entities.Dependency),
		labels:  NewLabelTable(),
	}

	for i := range data.Targets {
		t := data.Targets[i]

		if err := r.resolveTarget(&t, data.QuestionSets); err != nil {
			return nil, err
		}

		r.targets = append(r.targets, &t)
		r.byID[t.ID] = &t
		r.labels.AddQuestions(t.Questions)
		r.indexDependencies(t.Questions)
	}

	for questionID, values := range data.Labels {
		for value, text := range values {
			r.labels.Set(questionID, value, text)
		}
	}

	return r, nil
}

func (r *CatalogRepository) indexDependencies(questions []entities.Question) {
	for _, q := range questions {
		if q.DependsOn == nil {
			continue
		}
		if _, ok := r.deps[q.ID]; !ok {
			r.deps[q.ID] = *q.DependsOn
		}
	}
}

func (r *CatalogRepository) resolveTarget(t *entities.Target, sets map[string][]entities.Question) error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("%w: target without id", ErrInvalidCatalog)
	}
	if _, dup := r.byID[t.ID]; dup {
		return fmt.Errorf("%w: duplicate target %q", ErrInvalidCatalog, t.ID)
	}

	switch t.Kind {
	case "":
		t.Kind = entities.TargetZone
	case entities.TargetZone, entities.TargetSymptom:
	default:
		return fmt.Errorf("%w: target %q: unknown kind %q", ErrInvalidCatalog, t.ID, t.Kind)
	}

	if t.Name.IsZero() {
		return fmt.Errorf("%w: target %q: missing name", ErrInvalidCatalog, t.ID)
	}

	if t.QuestionSet != "" {
		if len(t.Questions) > 0 {
			return fmt.Errorf("%w: target %q: both question_set and questions given", ErrInvalidCatalog, t.ID)
		}

		set, ok := sets[t.QuestionSet]
		if !ok {
			return fmt.Errorf("%w: target %q: unknown question set %q", ErrInvalidCatalog, t.ID, t.QuestionSet)
		}
		t.Questions = slices.Clone(set)
		return nil
	}

	if len(t.Questions) == 0 {
		return fmt.Errorf("%w: target %q: no questions", ErrInvalidCatalog, t.ID)
	}
	if err := validateQuestions(t.Questions); err != nil {
		return fmt.Errorf("%w: target %q: %v", ErrInvalidCatalog, t.ID, err)
	}

	return nil
}

// GetByID returns the target with the given id.
func (r *CatalogRepository) GetByID(id string) (*entities.Target, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, id)
	}
	return t, nil
}

// GetAll returns every target in catalogue order.
func (r *CatalogRepository) GetAll() []*entities.Target {
	return slices.Clone(r.targets)
}

// GetByKind returns the zones or the symptom categories.
func (r *CatalogRepository) GetByKind(kind entities.TargetKind) []*entities.Target {
	return r.filter(func(t *entities.Target) bool { return t.Kind == kind })
}

// GetByCategory returns targets of one category, e.g. "torso" or "respiratory".
func (r *CatalogRepository) GetByCategory(category string) []*entities.Target {
	return r.filter(func(t *entities.Target) bool { return t.Category == category })
}

// Dependency returns the skip rule declared for questionID by the first target
// asking it.
func (r *CatalogRepository) Dependency(questionID string) (entities.Dependency, bool) {
	d, ok := r.deps[questionID]
	return d, ok
}

// Labels returns the answer label lookup table.
func (r *CatalogRepository) Labels() *LabelTable {
	return r.labels
}

func (r *CatalogRepository) filter(keep func(*entities.Target) bool) []*entities.Target {
	var out []*entities.Target
	for _, t := range r.targets {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func validateQuestions(questions []entities.Question) error {
	seen := make(map[string]int, len(questions))

	for i, q := range questions {
		if strings.TrimSpace(q.ID) == "" {
			return fmt.Errorf("question %d without id", i)
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("duplicate question %q", q.ID)
		}
		if !q.Type.Valid() {
			return fmt.Errorf("question %q: unknown type %q", q.ID, q.Type)
		}
		if q.Type.HasOptions() && len(q.Options) == 0 {
			return fmt.Errorf("question %q: %s without options", q.ID, q.Type)
		}
		if err := validateOptions(q); err != nil {
			return err
		}

		if d := q.DependsOn; d != nil {
			gateIdx, ok := seen[d.QuestionID]
			if !ok {
				return fmt.Errorf("question %q: depends on unknown or later question %q", q.ID, d.QuestionID)
			}

			gate := questions[gateIdx]
			if gate.Type.HasOptions() {
				if _, ok := gate.Option(d.Value); !ok {
					return fmt.Errorf("question %q: value %q is not an option of %q", q.ID, d.Value, gate.ID)
				}
			}
		}

		seen[q.ID] = i
	}

	return nil
}

func validateOptions(q entities.Question) error {
	values := make(map[string]struct{}, len(q.Options))
	for _, o := range q.Options {
		if strings.TrimSpace(o.Value) == "" {
			return fmt.Errorf("question %q: option without value", q.ID)
		}
		if _, dup := values[o.Value]; dup {
			return fmt.Errorf("question %q: duplicate option %q", q.ID, o.Value)
		}
		values[o.Value] = struct{}{}
	}
	return nil
}

func readCatalog(path string) (CatalogData, error) {
	var data CatalogData

	raw, err := os.ReadFile(path)
	if err != nil {
		return data, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err = json.Unmarshal(raw, &data); err != nil {
			return data, fmt.Errorf("failed to unmarshal catalog JSON: %w", err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err = dec.Decode(&data); err != nil {
			return data, fmt.Errorf("failed to unmarshal catalog YAML: %w", err)
		}
	}

	if len(data.Targets) == 0 {
		return data, fmt.Errorf("%w: no targets in %s", ErrInvalidCatalog, path)
	}

	return data, nil
}
