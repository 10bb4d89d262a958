package terminal

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

type IntakeStep int

const (
	StepName IntakeStep = iota
	StepAge
	StepDone
)

// intake asks the patient metadata before the first questionnaire.
type intake struct {
	step IntakeStep
	name string
	age  int
}

func newIntake() *intake {
	return &intake{step: StepName}
}

func (in *intake) prompt(m messages) string {
	switch in.step {
	case StepName:
		return m.askName
	case StepAge:
		return m.askAge
	}
	return ""
}

// accept consumes one line. It returns a non-empty error message when the line is rejected.
func (in *intake) accept(line string, m messages) string {
	switch in.step {
	case StepName:
		if line == "" {
			return m.askName
		}
		in.name = line
		in.step = StepAge

	case StepAge:
		age, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || age < 0 || age > 150 {
			return m.invalidAge
		}
		in.age = age
		in.step = StepDone
	}
	return ""
}

func (h *Handler) handleIntake(line string) {
	m := h.msgs()

	if rejected := h.intake.accept(line, m); rejected != "" {
		h.sendError(rejected)
		return
	}

	if h.intake.step != StepDone {
		h.send(h.intake.prompt(m))
		return
	}

	p := h.session.Patient()
	p.Name = h.intake.name
	p.Age = h.intake.age
	h.session.SetPatient(p)
	h.intake = nil

	h.logger.Debug("patient intake completed", zap.String("session_id", h.session.ID()))

	h.send(h.palette.ok.Sprintf(m.intakeDone, p.Name))
	h.send(h.renderTargets(""))
}
