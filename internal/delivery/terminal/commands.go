package terminal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/triage-assistant/internal/domain/entities"
	"github.com/aliskhannn/triage-assistant/internal/report"
	"github.com/aliskhannn/triage-assistant/internal/repository"
	"github.com/aliskhannn/triage-assistant/internal/service"
	"github.com/aliskhannn/triage-assistant/internal/storage"
)

// answerHandler answers the current question with line and advances. Without an
// active questionnaire, line is read as a target name.
func (h *Handler) answerHandler(line string) HandlerFunc {
	return func(ctx context.Context, cmd command) error {
		m := h.msgs()

		if !h.session.Active() {
			if t, ok := h.matcher.MatchTarget(line, h.session.Catalog().GetAll()); ok {
				return h.startTarget(t.ID)
			}
			h.sendError(m.noActiveTarget)
			return nil
		}

		flow := h.session.Flow()
		q := flow.Current()

		a, err := h.parser.Parse(q, line)
		if err != nil {
			if errors.Is(err, service.ErrInvalidAnswer) {
				h.logger.Debug("answer rejected",
					zap.String("question_id", q.ID),
					zap.Error(err),
				)
				h.sendError(m.invalidAnswer)
				h.send(h.renderQuestion(flow))
				return nil
			}
			return err
		}

		if err := h.session.Answer(q.ID, a); err != nil {
			return err
		}

		return h.advance()
	}
}

func (h *Handler) targetsHandler(_ context.Context, cmd command) error {
	var kind entities.TargetKind
	switch strings.ToLower(cmd.arg(0)) {
	case "zone", "zones":
		kind = entities.TargetZone
	case "symptom", "symptoms":
		kind = entities.TargetSymptom
	}

	h.send(h.renderTargets(kind))
	return nil
}

func (h *Handler) startHandler(_ context.Context, cmd command) error {
	id := cmd.arg(0)
	if id == "" {
		h.send(h.renderTargets(""))
		return nil
	}

	if _, err := h.session.Catalog().GetByID(id); err != nil {
		if !errors.Is(err, repository.ErrTargetNotFound) {
			return err
		}

		query := strings.Join(cmd.Args, " ")
		t, ok := h.matcher.MatchTarget(query, h.session.Catalog().GetAll())
		if !ok {
			h.sendError(fmt.Sprintf(h.msgs().targetNotFound, query))
			return nil
		}
		id = t.ID
	}

	return h.startTarget(id)
}

func (h *Handler) startTarget(id string) error {
	if _, err := h.session.SelectTarget(id); err != nil {
		return err
	}

	h.send(h.renderQuestion(h.session.Flow()))
	return nil
}

func (h *Handler) nextHandler(_ context.Context, _ command) error {
	return h.advance()
}

func (h *Handler) advance() error {
	m := h.msgs()

	res, a, err := h.session.Advance()
	if err != nil {
		if errors.Is(err, service.ErrNoActiveTarget) {
			h.sendError(m.noActiveTarget)
			return nil
		}
		return err
	}

	flow := h.session.Flow()
	switch res {
	case service.StepMoved:
		h.send(h.renderQuestion(flow))

	case service.StepCompleted:
		h.send(h.palette.ok.Sprintf(m.completed, a.DisplayName(h.session.Locale())))
		h.send(h.palette.hint.Sprint(m.pickTarget))

	case service.StepBlocked:
		if flow.Completed() {
			h.send(m.alreadyCompleted)
			return nil
		}
		h.sendError(m.required)
		h.send(h.renderQuestion(flow))
	}

	return nil
}

func (h *Handler) backHandler(_ context.Context, _ command) error {
	m := h.msgs()

	res, err := h.session.Retreat()
	if err != nil {
		if errors.Is(err, service.ErrNoActiveTarget) {
			h.sendError(m.noActiveTarget)
			return nil
		}
		return err
	}

	flow := h.session.Flow()
	if res == service.StepBlocked {
		if flow.Completed() {
			h.send(m.alreadyCompleted)
			return nil
		}
		h.sendError(m.cannotGoBack)
		return nil
	}

	h.send(h.renderQuestion(flow))
	return nil
}

func (h *Handler) resetHandler(_ context.Context, _ command) error {
	m := h.msgs()

	if err := h.session.Reset(); err != nil {
		if errors.Is(err, service.ErrNoActiveTarget) {
			h.sendError(m.noActiveTarget)
			return nil
		}
		return err
	}

	h.send(m.flowReset)
	h.send(h.renderQuestion(h.session.Flow()))
	return nil
}

func (h *Handler) removeHandler(_ context.Context, cmd command) error {
	m := h.msgs()
	id := cmd.arg(0)

	if id != "" && h.session.RemoveAssessment(id) {
		h.send(h.palette.ok.Sprintf(m.removed, id))
		return nil
	}

	h.sendError(fmt.Sprintf(m.notRemoved, id))
	return nil
}

func (h *Handler) summaryHandler(_ context.Context, cmd command) error {
	format := cmd.arg(0)
	if format == "" {
		format = h.format
	}

	out, err := report.Render(format, h.session.Summary())
	if err != nil {
		if errors.Is(err, report.ErrUnknownFormat) {
			h.sendError(fmt.Sprintf(h.msgs().unknownFormat, format))
			return nil
		}
		return err
	}

	h.send(out)
	return nil
}

func (h *Handler) exportHandler(_ context.Context, cmd command) error {
	path := cmd.arg(0)
	if path == "" {
		h.sendError(h.msgs().exportUsage)
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if err := storage.WriteSnapshot(f, h.session.Snapshot()); err != nil {
		return err
	}

	h.send(h.palette.ok.Sprintf(h.msgs().exported, path))
	return nil
}

func (h *Handler) langHandler(_ context.Context, cmd command) error {
	if tag := cmd.arg(0); tag != "" {
		l, err := entities.ParseLocale(tag)
		if err != nil {
			if errors.Is(err, entities.ErrUnsupportedLocale) {
				h.sendError(fmt.Sprintf(h.msgs().unknownLocale, tag))
				return nil
			}
			return err
		}
		h.session.SetLocale(l)
	} else {
		h.session.ToggleLocale()
	}

	h.send(h.msgs().localeChanged)
	if h.session.Active() {
		h.send(h.renderQuestion(h.session.Flow()))
	}
	return nil
}
