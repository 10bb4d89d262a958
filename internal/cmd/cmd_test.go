package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCatalog = filepath.Join("..", "repository", "testdata", "catalog.yaml")

const snapshotJSON = `{
  "patient": {"name": "Amina", "age": 34, "consultation_time": "2026-10-14T09:30:00Z"},
  "locale": "fr",
  "assessments": [
    {
      "target_id": "chest",
      "kind": "zone",
      "name": {"fr": "Poitrine", "ar": "الصدر"},
      "answers": {
        "radiation": {"type": "select", "value": "no"},
        "radiation_location": {"type": "multiselect", "value": ["jaw"]},
        "severity": {"type": "scale", "value": 6}
      },
      "completed": true
    },
    {
      "target_id": "toux",
      "kind": "symptom",
      "name": {"fr": "Toux", "ar": "سعال"},
      "answers": {"type": {"type": "select", "value": "dry"}},
      "completed": true
    }
  ]
}`

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	t.Setenv("TRIAGE_CATALOG_PATH", testCatalog)
	t.Setenv("LOG_LEVEL", "off")

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeSnapshot(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "assessments.json")
	require.NoError(t, os.WriteFile(path, []byte(snapshotJSON), 0o600))
	return path
}

func TestValidateCatalog(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, validateCatalog(testCatalog, &out))
	assert.Contains(t, out.String(), "Catalog is valid: "+testCatalog)
	assert.Contains(t, out.String(), "  2 zones, 1 symptoms, 7 questions")
}

func TestValidateCatalog_Invalid(t *testing.T) {
	var out bytes.Buffer

	err := validateCatalog(filepath.Join("..", "repository", "testdata", "forward_dependency.yaml"), &out)
	require.Error(t, err)
	assert.Contains(t, out.String(), "Validation failed:")
}

func TestValidateCommand_ShippedCatalog(t *testing.T) {
	out, err := execute(t, "", "validate", filepath.Join("..", "..", "assets", "data", "catalog.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "19 zones, 15 symptoms")
}

func TestTargetsCommand(t *testing.T) {
	out, err := execute(t, "", "targets")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)
	assert.Contains(t, out, "Poitrine")

	out, err = execute(t, "", "targets", "--kind", "symptom", "--locale", "ar")
	require.NoError(t, err)
	assert.Contains(t, out, "سعال")
	assert.NotContains(t, out, "chest")

	_, err = execute(t, "", "targets", "--kind", "organ")
	assert.Error(t, err)

	_, err = execute(t, "", "targets", "--locale", "ja")
	assert.Error(t, err)
}

func TestRenderCommand(t *testing.T) {
	path := writeSnapshot(t)

	out, err := execute(t, "", "render", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Patient Amina, 34 ans")
	assert.Contains(t, out, "pour Poitrine d'intensité 6/10. Toux de type Sèche.")
	assert.NotContains(t, out, "irradiation")

	out, err = execute(t, "", "render", path, "--format", "markdown", "--locale", "ar")
	require.NoError(t, err)
	assert.Contains(t, out, "# الملخص السريري (SOAP-S)")
	assert.Contains(t, out, "الصدر (6/10) ؛ سعال (جاف)")
}

func TestRenderCommand_DropsIncompleteAssessment(t *testing.T) {
	incomplete := strings.Replace(snapshotJSON, `,
        "severity": {"type": "scale", "value": 6}`, "", 1)
	require.NotEqual(t, snapshotJSON, incomplete)

	path := filepath.Join(t.TempDir(), "assessments.json")
	require.NoError(t, os.WriteFile(path, []byte(incomplete), 0o600))

	out, err := execute(t, "", "render", path)
	require.NoError(t, err)
	assert.Contains(t, out, "pour Toux de type Sèche.")
	assert.NotContains(t, out, "Poitrine")
}

func TestRenderCommand_OutFile(t *testing.T) {
	path := writeSnapshot(t)
	dest := filepath.Join(t.TempDir(), "summary.html")

	out, err := execute(t, "", "render", path, "-f", "html", "-o", dest)
	require.NoError(t, err)
	assert.Empty(t, out)

	html, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<table>")
}

func TestRenderCommand_Errors(t *testing.T) {
	path := writeSnapshot(t)

	_, err := execute(t, "", "render", filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)

	_, err = execute(t, "", "render", path, "--format", "pdf")
	assert.Error(t, err)

	_, err = execute(t, "", "render")
	assert.Error(t, err)
}

func TestRunCommand(t *testing.T) {
	t.Setenv("PATIENT_NAME", "Amina")
	t.Setenv("PATIENT_AGE", "34")

	out, err := execute(t, "/start toux\n1\n/summary\n/quit\n", "run")
	require.NoError(t, err)

	assert.NotContains(t, out, "Quel est votre nom ?")
	assert.Contains(t, out, "Patient Amina, 34 ans")
	assert.Contains(t, out, "pour Toux de type Sèche.")
}

func TestRunCommand_Intake(t *testing.T) {
	out, err := execute(t, "Karim\n51\n/quit\n", "run")
	require.NoError(t, err)
	assert.Contains(t, out, "Merci Karim.")

	out, err = execute(t, "/quit\n", "run", "--no-intake")
	require.NoError(t, err)
	assert.NotContains(t, out, "Quel est votre nom ?")
}
