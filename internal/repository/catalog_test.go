package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/triage-assistant/internal/domain/entities"
)

func TestNewCatalogRepository_YAML(t *testing.T) {
	repo, err := NewCatalogRepository(filepath.Join("testdata", "catalog.yaml"))
	require.NoError(t, err)

	all := repo.GetAll()
	require.Len(t, all, 3)
	assert.Equal(t, []string{"chest", "abdomen", "toux"}, []string{all[0].ID, all[1].ID, all[2].ID})

	chest, err := repo.GetByID("chest")
	require.NoError(t, err)
	assert.Equal(t, entities.TargetZone, chest.Kind, "kind defaults to zone")
	require.Len(t, chest.Questions, 3)
	assert.Equal(t, "radiation_location", chest.Questions[1].ID)
	require.NotNil(t, chest.Questions[1].DependsOn)
	assert.Equal(t, "radiation", chest.Questions[1].DependsOn.QuestionID)

	assert.Len(t, repo.GetByKind(entities.TargetZone), 2)
	assert.Len(t, repo.GetByKind(entities.TargetSymptom), 1)
	assert.Len(t, repo.GetByCategory("torso"), 2)
	assert.Empty(t, repo.GetByCategory("legs"))
}

func TestNewCatalogRepository_SharedSetIsCopied(t *testing.T) {
	repo, err := NewCatalogRepository(filepath.Join("testdata", "catalog.yaml"))
	require.NoError(t, err)

	chest, _ := repo.GetByID("chest")
	abdomen, _ := repo.GetByID("abdomen")

	chest.Questions[0].Required = false
	assert.True(t, abdomen.Questions[0].Required)
}

func TestDependency(t *testing.T) {
	repo, err := NewCatalogRepository(filepath.Join("testdata", "catalog.yaml"))
	require.NoError(t, err)

	d, ok := repo.Dependency("radiation_location")
	require.True(t, ok)
	assert.Equal(t, entities.Dependency{QuestionID: "radiation", Value: "yes"}, d)

	_, ok = repo.Dependency("severity")
	assert.False(t, ok, "unconditional question")

	_, ok = repo.Dependency("unknown")
	assert.False(t, ok)
}

func TestDependency_FirstTargetWins(t *testing.T) {
	gate := entities.Question{ID: "radiation", Type: entities.QuestionSelect, Options: []entities.Option{{Value: "yes"}, {Value: "no"}}}
	followUp := func(value string) entities.Question {
		return entities.Question{ID: "where", Type: entities.QuestionText, DependsOn: &entities.Dependency{QuestionID: "radiation", Value: value}}
	}

	repo, err := NewCatalogRepositoryFromData(CatalogData{
		Targets: []entities.Target{
			{ID: "chest", Name: entities.Text("Poitrine", ""), Questions: []entities.Question{gate, followUp("yes")}},
			{ID: "back", Name: entities.Text("Dos", ""), Questions: []entities.Question{gate, followUp("no")}},
		},
	})
	require.NoError(t, err)

	d, ok := repo.Dependency("where")
	require.True(t, ok)
	assert.Equal(t, "yes", d.Value)
}

func TestNewCatalogRepository_JSON(t *testing.T) {
	repo, err := NewCatalogRepository(filepath.Join("testdata", "catalog.json"))
	require.NoError(t, err)

	fievre, err := repo.GetByID("fievre")
	require.NoError(t, err)
	assert.Equal(t, entities.TargetSymptom, fievre.Kind)
	assert.Equal(t, entities.QuestionNumber, fievre.Questions[0].Type)

	text, ok := repo.Labels().Resolve("associated", "chills", entities.LocaleAR)
	assert.True(t, ok)
	assert.Equal(t, "قشعريرة", text)
}

func TestNewCatalogRepository_FileErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		invalid bool
	}{
		{"missing file", "nope.yaml", false},
		{"unknown field", "unknown_field.yaml", false},
		{"no targets", "empty.yaml", true},
		{"forward dependency", "forward_dependency.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalogRepository(filepath.Join("testdata", tt.file))
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidCatalog)
			}
		})
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, err := NewCatalogRepository(filepath.Join("testdata", "catalog.yaml"))
	require.NoError(t, err)

	_, err = repo.GetByID("knee")
	assert.ErrorIs(t, err, ErrTargetNotFound)
}

func TestNewCatalogRepositoryFromData_Validation(t *testing.T) {
	name := entities.Text("Poitrine", "الصدر")
	scale := entities.Question{ID: "severity", Type: entities.QuestionScale}
	yesNo := entities.Question{
		ID:      "radiation",
		Type:    entities.QuestionSelect,
		Options: []entities.Option{{Value: "yes"}, {Value: "no"}},
	}

	tests := []struct {
		name string
		data CatalogData
	}{
		{
			name: "target without id",
			data: CatalogData{Targets: []entities.Target{{Name: name, Questions: []entities.Question{scale}}}},
		},
		{
			name: "duplicate target",
			data: CatalogData{Targets: []entities.Target{
				{ID: "chest", Name: name, Questions: []entities.Question{scale}},
				{ID: "chest", Name: name, Questions: []entities.Question{scale}},
			}},
		},
		{
			name: "unknown kind",
			data: CatalogData{Targets: []entities.Target{{ID: "chest", Kind: "organ", Name: name, Questions: []entities.Question{scale}}}},
		},
		{
			name: "missing name",
			data: CatalogData{Targets: []entities.Target{{ID: "chest", Questions: []entities.Question{scale}}}},
		},
		{
			name: "unknown question set",
			data: CatalogData{Targets: []entities.Target{{ID: "chest", Name: name, QuestionSet: "ocrstfit"}}},
		},
		{
			name: "set and inline questions",
			data: CatalogData{
				QuestionSets: map[string][]entities.Question{"s": {scale}},
				Targets:      []entities.Target{{ID: "chest", Name: name, QuestionSet: "s", Questions: []entities.Question{scale}}},
			},
		},
		{
			name: "no questions",
			data: CatalogData{Targets: []entities.Target{{ID: "chest", Name: name}}},
		},
		{
			name: "duplicate question",
			data: CatalogData{Targets: []entities.Target{{ID: "chest", Name: name, Questions: []entities.Question{scale, scale}}}},
		},
		{
			name: "unknown question type",
			data: CatalogData{Targets: []entities.Target{{ID: "chest", Name: name, Questions: []entities.Question{{ID: "x", Type: "slider"}}}}},
		},
		{
			name: "select without options",
			data: CatalogData{Targets: []entities.Target{{ID: "chest", Name: name, Questions: []entities.Question{{ID: "x", Type: entities.QuestionSelect}}}}},
		},
		{
			name: "duplicate option",
			data: CatalogData{Targets: []entities.Target{{ID: "chest", Name: name, Questions: []entities.Question{{
				ID: "x", Type: entities.QuestionSelect, Options: []entities.Option{{Value: "a"}, {Value: "a"}},
			}}}}},
		},
		{
			name: "dependency value not an option",
			data: CatalogData{Targets: []entities.Target{{ID: "chest", Name: name, Questions: []entities.Question{
				yesNo,
				{ID: "where", Type: entities.QuestionText, DependsOn: &entities.Dependency{QuestionID: "radiation", Value: "maybe"}},
			}}}},
		},
		{
			name: "invalid shared set",
			data: CatalogData{
				QuestionSets: map[string][]entities.Question{"s": {scale, scale}},
				Targets:      []entities.Target{{ID: "chest", Name: name, QuestionSet: "s"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalogRepositoryFromData(tt.data)
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestShippedCatalog(t *testing.T) {
	repo, err := NewCatalogRepository(filepath.Join("..", "..", "assets", "data", "catalog.yaml"))
	require.NoError(t, err)

	assert.Len(t, repo.GetByKind(entities.TargetZone), 19)
	assert.Len(t, repo.GetByKind(entities.TargetSymptom), 15)

	chest, err := repo.GetByID("chest")
	require.NoError(t, err)

	ids := make([]string, 0, len(chest.Questions))
	for _, q := range chest.Questions {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []string{
		"onset", "character", "radiation", "radiation_location", "severity", "timing", "duration",
		"aggravating", "relieving", "trigger", "associated", "previous", "treatment",
	}, ids)

	labels := repo.Labels()
	text, ok := labels.Resolve("character", "burning", entities.LocaleFR)
	assert.True(t, ok)
	assert.Equal(t, "brûlure", text)

	text, _ = labels.Resolve("duration", "<24h", entities.LocaleFR)
	assert.Equal(t, "moins de 24 heures", text)

	text, _ = labels.Resolve("associated", "fever", entities.LocaleFR)
	assert.Equal(t, "fièvre", text)
}
