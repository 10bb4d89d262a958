package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/triage-assistant/internal/domain/entities"
	"github.com/aliskhannn/triage-assistant/internal/service"
)

var generatedAt = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

func sampleSummary() service.Summary {
	return service.Summary{
		Locale:      entities.LocaleFR,
		Patient:     entities.NewPatient("Amina", 34, generatedAt),
		GeneratedAt: generatedAt,
		Assessments: []service.AssessmentSummary{
			{
				TargetID: "chest",
				Name:     "Poitrine",
				Clause:   "Poitrine (brûlure, 7/10)",
				Severity: 7,
				Details: []service.Detail{
					{QuestionID: "character", Step: entities.StepCharacter, Question: "Type de douleur ?", Value: "brûlure", Answered: true},
					{QuestionID: "trigger", Question: "Déclencheur ?", Value: "effort | stress", Answered: true},
				},
			},
		},
		ChiefComplaint:     "Poitrine (brûlure, 7/10)",
		AssociatedSymptoms: []string{"fever"},
		AssociatedLabels:   []string{"fièvre"},
		Stats:              service.Stats{CompletedCount: 1, MaxSeverity: 7, AssociatedCount: 1},
		Text:               "Patient Amina, 34 ans, consulte le 14/10/2026 à 09:30 pour Poitrine de type brûlure.",
	}
}

func TestRender_Formats(t *testing.T) {
	s := sampleSummary()

	for _, format := range []string{"", "text", " TEXT "} {
		got, err := Render(format, s)
		require.NoError(t, err)
		assert.Equal(t, s.Text, got)
	}

	md, err := Render("md", s)
	require.NoError(t, err)
	assert.Equal(t, Markdown(s), md)

	_, err = Render("pdf", s)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sampleSummary())

	for _, want := range []string{
		"# Résumé Clinique (SOAP-S)\n",
		"- **Patient:** Amina, 34 ans\n",
		"- **Date:** 14/10/2026 09:30\n",
		"## Motif de consultation\n\nPoitrine (brûlure, 7/10)\n",
		"## Poitrine\n\n| Question | Réponse |\n|---|---|\n",
		"| **C** Type de douleur ? | brûlure |\n",
		"| Déclencheur ? | effort \\| stress |\n",
		"## Signes associés\n\n- fièvre\n",
		"| 1 | 7 | 1 |\n",
		"## Résumé pour le médecin\n\nPatient Amina",
	} {
		assert.Contains(t, md, want)
	}

	assert.Less(t, strings.Index(md, "Motif de consultation"), strings.Index(md, "## Poitrine"))
	assert.Less(t, strings.Index(md, "Statistiques"), strings.Index(md, "Résumé pour le médecin"))
}

func TestMarkdown_EmptyAndArabic(t *testing.T) {
	s := service.Summary{
		Locale:      entities.LocaleAR,
		GeneratedAt: generatedAt,
		Text:        service.NothingCompletedMessage(entities.LocaleAR),
	}

	md := Markdown(s)

	assert.Contains(t, md, "# الملخص السريري (SOAP-S)")
	assert.Contains(t, md, "- **المريض:** غير محدد, 0 سنة")
	assert.NotContains(t, md, "سبب الاستشارة")
	assert.NotContains(t, md, "علامات مصاحبة")
	assert.Contains(t, md, "| 0 | 0 | 0 |")
	assert.True(t, strings.HasSuffix(md, service.NothingCompletedMessage(entities.LocaleAR)+"\n"))
}

func TestHTML(t *testing.T) {
	html, err := HTML(sampleSummary())
	require.NoError(t, err)

	assert.Contains(t, html, "<h1>Résumé Clinique (SOAP-S)</h1>")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<strong>C</strong> Type de douleur ?")
	assert.Contains(t, html, "<li>fièvre</li>")
	assert.Contains(t, html, "effort | stress")
}
