package terminal

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/aliskhannn/triage-assistant/internal/domain/entities"
	"github.com/aliskhannn/triage-assistant/internal/service"
)

const rlm = "\u200F"

// ColorEnabled resolves a colour mode (auto, always, never) for the given output file.
func ColorEnabled(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if f == nil || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type palette struct {
	title  *color.Color
	step   *color.Color
	number *color.Color
	hint   *color.Color
	err    *color.Color
	ok     *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		title:  color.New(color.FgCyan, color.Bold),
		step:   color.New(color.FgMagenta, color.Bold),
		number: color.New(color.FgYellow),
		hint:   color.New(color.Faint),
		err:    color.New(color.FgRed),
		ok:     color.New(color.FgGreen),
	}

	for _, c := range []*color.Color{p.title, p.step, p.number, p.hint, p.err, p.ok} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// renderQuestion renders the current question of flow with its options and input hint.
func (h *Handler) renderQuestion(flow *service.FlowController) string {
	q := flow.Current()
	if q == nil {
		return ""
	}

	l := h.session.Locale()
	m := msgs(l)
	current, total := flow.Progress()

	var sb strings.Builder
	if l == entities.LocaleAR {
		sb.WriteString(rlm)
	}

	header := fmt.Sprintf("%s · %d/%d", flow.Target().Name.Get(l), current, total)
	if q.Step != "" {
		sb.WriteString(h.palette.step.Sprintf("[%s] ", q.Step))
	}
	sb.WriteString(h.palette.title.Sprint(header))
	sb.WriteString("\n")

	sb.WriteString(q.Text.Get(l))
	if q.Required {
		sb.WriteString(" *")
	}
	sb.WriteString("\n")

	answers := flow.Answers()
	for i, o := range q.Options {
		marker := " "
		if entities.AnswerMatches(answers[q.ID], o.Value) {
			marker = "•"
		}
		fmt.Fprintf(&sb, "  %s %s %s\n", marker, h.palette.number.Sprintf("%d)", i+1), o.Label.Get(l))
	}

	hint := m.hintText
	switch q.Type {
	case entities.QuestionSelect:
		hint = m.hintSelect
	case entities.QuestionMultiSelect:
		hint = m.hintMulti
	case entities.QuestionScale:
		hint = m.hintScale
	case entities.QuestionNumber:
		hint = m.hintNumber
	}
	if !q.Required {
		hint += " " + m.hintOptional
	}
	if a, ok := answers[q.ID]; ok && !a.IsEmpty() {
		hint += fmt.Sprintf(" [%s]", a.String())
	}
	sb.WriteString(h.palette.hint.Sprint(hint))

	return sb.String()
}

// renderTargets lists targets grouped by kind.
func (h *Handler) renderTargets(kind entities.TargetKind) string {
	l := h.session.Locale()
	m := msgs(l)
	catalog := h.session.Catalog()

	groups := []struct {
		kind  entities.TargetKind
		title string
	}{
		{entities.TargetZone, m.zones},
		{entities.TargetSymptom, m.symptoms},
	}

	var sb strings.Builder
	for _, g := range groups {
		if kind != "" && kind != g.kind {
			continue
		}

		targets := catalog.GetByKind(g.kind)
		if len(targets) == 0 {
			continue
		}

		sb.WriteString(h.palette.title.Sprint(g.title))
		sb.WriteString("\n")
		for _, t := range targets {
			name := t.Name.Get(l)
			if t.Icon != "" {
				name = t.Icon + " " + name
			}
			fmt.Fprintf(&sb, "  %-20s %s\n", t.ID, name)
		}
	}
	sb.WriteString(h.palette.hint.Sprint(m.pickTarget))

	return sb.String()
}

// renderAssessments lists the stored assessments with their chief complaint clause.
func (h *Handler) renderAssessments() string {
	l := h.session.Locale()
	s := h.session.Summary()
	if len(s.Assessments) == 0 {
		return msgs(l).noAssessments
	}

	var sb strings.Builder
	for i, a := range s.Assessments {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%s %s  %s", h.palette.ok.Sprint("✓"), a.TargetID, a.Clause)
	}
	return sb.String()
}

func (h *Handler) renderStatus() string {
	m := h.msgs()
	flow := h.session.Flow()
	if !h.session.Active() {
		return fmt.Sprintf(m.statusIdle, len(h.session.Assessments()))
	}

	current, total := flow.Progress()
	answered := 0
	for _, a := range flow.Answers() {
		if !a.IsEmpty() {
			answered++
		}
	}

	return fmt.Sprintf(m.status, flow.Target().Name.Get(h.session.Locale()), current, total, answered)
}
