// Package report renders clinical summaries for the copy-to-clipboard sink.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/aliskhannn/triage-assistant/internal/domain/entities"
	"github.com/aliskhannn/triage-assistant/internal/service"
)

var ErrUnknownFormat = errors.New("unknown report format")

const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Formats lists the supported output formats.
var Formats = []string{FormatText, FormatMarkdown, FormatHTML}

type headings struct {
	title       string
	patient     string
	years       string
	date        string
	consulted   string
	complaint   string
	question    string
	answer      string
	associated  string
	stats       string
	zones       string
	maxSeverity string
	signs       string
	forDoctor   string
}

var reportHeadings = map[entities.Locale]headings{
	entities.LocaleFR: {
		title:       "Résumé Clinique (SOAP-S)",
		patient:     "Patient",
		years:       "ans",
		date:        "Date",
		consulted:   "Consultation",
		complaint:   "Motif de consultation",
		question:    "Question",
		answer:      "Réponse",
		associated:  "Signes associés",
		stats:       "Statistiques",
		zones:       "Zones évaluées",
		maxSeverity: "Intensité max",
		signs:       "Symptômes liés",
		forDoctor:   "Résumé pour le médecin",
	},
	entities.LocaleAR: {
		title:       "الملخص السريري (SOAP-S)",
		patient:     "المريض",
		years:       "سنة",
		date:        "التاريخ",
		consulted:   "الاستشارة",
		complaint:   "سبب الاستشارة",
		question:    "السؤال",
		answer:      "الإجابة",
		associated:  "علامات مصاحبة",
		stats:       "إحصائيات",
		zones:       "مناطق مقيمة",
		maxSeverity: "أقصى شدة",
		signs:       "أعراض مرتبطة",
		forDoctor:   "ملخص للطبيب",
	},
}

func headingsFor(l entities.Locale) headings {
	if h, ok := reportHeadings[l]; ok {
		return h
	}
	return reportHeadings[entities.LocaleFR]
}

// Render renders s in the given format.
func Render(format string, s service.Summary) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		return Text(s), nil
	case FormatMarkdown, "md":
		return Markdown(s), nil
	case FormatHTML:
		return HTML(s)
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Text returns the professional prose summary, the text handed to the physician.
func Text(s service.Summary) string {
	return s.Text
}

// Markdown renders the full SOAP-S document.
func Markdown(s service.Summary) string {
	h := headingsFor(s.Locale)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", h.title)

	name := s.Patient.Name
	if strings.TrimSpace(name) == "" {
		name = service.UnspecifiedPlaceholder(s.Locale)
	}
	fmt.Fprintf(&b, "- **%s:** %s, %d %s\n", h.patient, name, s.Patient.Age, h.years)
	fmt.Fprintf(&b, "- **%s:** %s\n", h.date, s.GeneratedAt.Format("02/01/2006 15:04"))
	if !s.Patient.ConsultationTime.IsZero() {
		fmt.Fprintf(&b, "- **%s:** %s\n", h.consulted, s.Patient.ConsultationTime.Format("02/01/2006 15:04"))
	}
	b.WriteString("\n")

	if s.ChiefComplaint != "" {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", h.complaint, s.ChiefComplaint)
	}

	for _, a := range s.Assessments {
		fmt.Fprintf(&b, "## %s\n\n", a.Name)
		fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", h.question, h.answer)
		for _, d := range a.Details {
			q := d.Question
			if d.Step != "" {
				q = fmt.Sprintf("**%s** %s", d.Step, q)
			}
			fmt.Fprintf(&b, "| %s | %s |\n", cell(q), cell(d.Value))
		}
		b.WriteString("\n")
	}

	if len(s.AssociatedLabels) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", h.associated)
		for _, l := range s.AssociatedLabels {
			fmt.Fprintf(&b, "- %s\n", l)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## %s\n\n", h.stats)
	fmt.Fprintf(&b, "| %s | %s | %s |\n|---|---|---|\n", h.zones, h.maxSeverity, h.signs)
	fmt.Fprintf(&b, "| %d | %d | %d |\n\n", s.Stats.CompletedCount, s.Stats.MaxSeverity, s.Stats.AssociatedCount)

	fmt.Fprintf(&b, "## %s\n\n%s\n", h.forDoctor, s.Text)

	return b.String()
}

// HTML renders the Markdown document to HTML.
func HTML(s service.Summary) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(s)), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}

func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
