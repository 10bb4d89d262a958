package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/triage-assistant/internal/domain/entities"
	"github.com/aliskhannn/triage-assistant/internal/repository"
)

var consultation = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

func opts(values ...string) []entities.Option {
	out := make([]entities.Option, 0, len(values))
	for _, v := range values {
		out = append(out, entities.Option{Value: v, Label: entities.Text(v, "")})
	}
	return out
}

// painQuestions is a reduced OCRSTFIT list with one skippable follow-up.
func painQuestions() []entities.Question {
	return []entities.Question{
		{ID: "onset", Step: entities.StepOnset, Text: entities.Text("Début ?", "البداية؟"), Type: entities.QuestionSelect, Required: true, Options: opts("brutal", "progressif")},
		{ID: "character", Step: entities.StepCharacter, Text: entities.Text("Type ?", "النوع؟"), Type: entities.QuestionSelect, Required: true, Options: opts("burning", "stabbing")},
		{ID: "radiation", Step: entities.StepRadiation, Text: entities.Text("Irradiation ?", "انتشار؟"), Type: entities.QuestionSelect, Required: true, Options: opts("yes", "no")},
		{
			ID: "radiation_location", Step: entities.StepRadiation, Text: entities.Text("Vers où ?", "إلى أين؟"),
			Type: entities.QuestionMultiSelect, Required: true, Options: opts("jaw", "left-arm", "back"),
			DependsOn: &entities.Dependency{QuestionID: "radiation", Value: "yes"},
		},
		{ID: "severity", Step: entities.StepSeverity, Text: entities.Text("Intensité ?", "الشدة؟"), Type: entities.QuestionScale, Required: true},
		{ID: "duration", Step: entities.StepTiming, Text: entities.Text("Depuis ?", "منذ؟"), Type: entities.QuestionSelect, Options: opts("<24h", "1-3days")},
		{ID: "aggravating", Step: entities.StepFactors, Text: entities.Text("Aggravé par ?", "يزداد مع؟"), Type: entities.QuestionMultiSelect, Options: opts("effort", "none")},
		{ID: "associated", Step: entities.StepAssociated, Text: entities.Text("Signes associés ?", "أعراض مصاحبة؟"), Type: entities.QuestionMultiSelect, Options: opts("fever", "nausea", "cough")},
		{ID: "previous", Step: entities.StepTreatment, Text: entities.Text("Déjà eu ?", "سبق؟"), Type: entities.QuestionSelect, Options: opts("yes", "no")},
	}
}

func chestTarget() *entities.Target {
	return &entities.Target{
		ID:        "chest",
		Kind:      entities.TargetZone,
		Name:      entities.Text("Poitrine", "الصدر"),
		Questions: painQuestions(),
	}
}

func newTestCatalog(t *testing.T) *repository.CatalogRepository {
	t.Helper()

	repo, err := repository.NewCatalogRepositoryFromData(repository.CatalogData{
		QuestionSets: map[string][]entities.Question{"pain": painQuestions()},
		Targets: []entities.Target{
			{ID: "chest", Name: entities.Text("Poitrine", "الصدر"), QuestionSet: "pain"},
			{ID: "head", Name: entities.Text("Tête", "الرأس"), QuestionSet: "pain"},
			{
				ID:   "toux",
				Kind: entities.TargetSymptom,
				Name: entities.Text("Toux", "سعال"),
				Questions: []entities.Question{
					{ID: "type", Text: entities.Text("Type de toux ?", "نوع السعال؟"), Type: entities.QuestionSelect, Required: true, Options: opts("dry", "productive")},
				},
			},
		},
		Labels: map[string]map[string]entities.LocalizedText{
			"character":  {"burning": entities.Text("brûlure", "حرقة")},
			"onset":      {"brutal": entities.Text("brutal", "مفاجئة")},
			"duration":   {"<24h": entities.Text("moins de 24 heures", "أقل من 24 ساعة")},
			"associated": {"fever": entities.Text("fièvre", "حمى"), "nausea": entities.Text("nausées", "غثيان")},
		},
	})
	require.NoError(t, err)

	return repo
}
