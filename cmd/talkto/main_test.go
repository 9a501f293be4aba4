package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talkto/internal/types"
)

// setupCommandTest isolates config loading and resets flag-bound globals.
func setupCommandTest(t *testing.T) *bytes.Buffer {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", dir)
	t.Setenv("CONGRESS_API_KEY", "")
	t.Setenv("TALKTO_CONGRESS_API_KEY", "")

	cfgFile = ""
	verbose = false
	colorMode = "never"
	cfg = nil
	repsJSON, trendsJSON, activityJSON, orgsJSON, metrosJSON = false, false, false, false, false
	orgsCategory, orgsZip, metrosZip = "", "", ""
	validateOrganizations, validateLocalOrganizations = "", ""

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	return buf
}

func execute(args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestRootCmd_Help(t *testing.T) {
	buf := setupCommandTest(t)

	require.NoError(t, execute("--help"))
	assert.Contains(t, buf.String(), "talkto")
	assert.Contains(t, buf.String(), "serve")
}

func TestRootCmd_InvalidColorMode(t *testing.T) {
	setupCommandTest(t)

	err := execute("orgs", "--color", "sometimes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid color mode")
}

func TestOrgs_ListsCategories(t *testing.T) {
	buf := setupCommandTest(t)

	require.NoError(t, execute("orgs"))
	assert.Contains(t, buf.String(), "environment")
	assert.Contains(t, buf.String(), "Voting Rights")
}

func TestOrgs_RecommendationJSON(t *testing.T) {
	buf := setupCommandTest(t)

	require.NoError(t, execute("orgs", "--category", "housing", "--zip", "94110", "--json"))

	var rec types.Recommendation
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "housing", rec.Category.ID)
	require.NotNil(t, rec.Metro)
	assert.Equal(t, "san-francisco", rec.Metro.ID)
	assert.NotEmpty(t, rec.National)
}

func TestOrgs_UnknownCategory(t *testing.T) {
	setupCommandTest(t)

	err := execute("orgs", "--category", "astrology")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown issue category")
}

func TestOrgs_InvalidZip(t *testing.T) {
	setupCommandTest(t)

	err := execute("orgs", "--category", "housing", "--zip", "12")
	require.Error(t, err)
}

func TestMetros_ResolveZip(t *testing.T) {
	buf := setupCommandTest(t)

	require.NoError(t, execute("metros", "--zip", "02139", "--json"))

	var metros []types.Metro
	require.NoError(t, json.Unmarshal(buf.Bytes(), &metros))
	require.Len(t, metros, 1)
	assert.Equal(t, "boston", metros[0].ID)
}

func TestMetros_UncoveredZip(t *testing.T) {
	buf := setupCommandTest(t)

	require.NoError(t, execute("metros", "--zip", "59801"))
	assert.Contains(t, buf.String(), "No metro area covers 59801")
}

func TestReps_InvalidZipFailsBeforeNetwork(t *testing.T) {
	setupCommandTest(t)
	t.Setenv("TALKTO_FIVE_CALLS_URL", "http://127.0.0.1:1")

	err := execute("reps", "abcde")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Please enter a valid 5-digit zip code")
}

func TestActivity_MissingKey(t *testing.T) {
	setupCommandTest(t)

	err := execute("activity")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Congress API key not configured")
}

func TestTrends_UnavailableUpstreamScoresNeutral(t *testing.T) {
	buf := setupCommandTest(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()
	t.Setenv("TALKTO_TRENDS_URL", srv.URL)

	require.NoError(t, execute("trends", "--json"))

	var resp types.PublicTrendsResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, types.SourceGoogleTrends, resp.Source)
	require.Len(t, resp.Trends, 6)
	for _, tr := range resp.Trends {
		assert.Equal(t, 50, tr.Intensity)
	}
}

func TestValidateData_Embedded(t *testing.T) {
	buf := setupCommandTest(t)

	require.NoError(t, execute("validate-data"))
	assert.Contains(t, buf.String(), "✓ directory (embedded, embedded)")
}

func TestValidateData_SchemaFailure(t *testing.T) {
	buf := setupCommandTest(t)
	path := filepath.Join(t.TempDir(), "organizations.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"categories": [{"id": "x"}]}`), 0644))

	err := execute("validate-data", "--organizations", path)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "✗ organizations.json")
}
