package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aliskhannn/triage-assistant/internal/domain/entities"
)

var ErrInvalidSnapshot = errors.New("invalid assessment snapshot")

// Snapshot is the portable JSON dump of a session's assessments.
type Snapshot struct {
	Patient     *entities.Patient      `json:"patient,omitempty"`
	Locale      entities.Locale        `json:"locale,omitempty"`
	Assessments []*entities.Assessment `json:"assessments"`
}

// Snapshot returns the stored assessments in engagement order.
func (s *AssessmentStorage) Snapshot() Snapshot {
	return Snapshot{Assessments: s.All()}
}

// WriteSnapshot encodes snap as indented JSON.
func WriteSnapshot(w io.Writer, snap Snapshot) error {
	if snap.Assessments == nil {
		snap.Assessments = []*entities.Assessment{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot decodes a snapshot. A bare JSON array of assessments is accepted too.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	var snap Snapshot

	raw, err := io.ReadAll(r)
	if err != nil {
		return snap, err
	}

	if strings.HasPrefix(strings.TrimSpace(string(raw)), "[") {
		err = json.Unmarshal(raw, &snap.Assessments)
	} else {
		err = json.Unmarshal(raw, &snap)
	}
	if err != nil {
		return snap, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	for i, a := range snap.Assessments {
		if a == nil || strings.TrimSpace(a.TargetID) == "" {
			return snap, fmt.Errorf("%w: assessment %d without target id", ErrInvalidSnapshot, i)
		}
	}

	return snap, nil
}
