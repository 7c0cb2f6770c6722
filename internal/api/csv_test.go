package api

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StronkOnes/BrieflyOS/internal/model"
)

func TestLeadsCSVQuotesEveryField(t *testing.T) {
	out := leadsCSV([]*model.Lead{
		{ID: 7, Name: `Ada "Countess" Lovelace`, Email: "ada@x.com", Stage: "Qualified", CreatedAt: "2026-01-02T03:04:05Z"},
	})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,name,email,stage,createdAt", lines[0])
	assert.Equal(t, `"7","Ada ""Countess"" Lovelace","ada@x.com","Qualified","2026-01-02T03:04:05Z"`, lines[1])
}

func TestExportLeadsCSVEndpoint(t *testing.T) {
	srv := newTestServer(t, &scriptedClient{})

	// Empty collection is a 404, not an empty file.
	resp, err := http.Get(srv.URL + "/api/leads/export-csv")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	doJSON(t, "POST", srv.URL+"/api/leads", map[string]string{"name": "Ada", "email": "ada@x.com", "stage": "New"})

	resp, err = http.Get(srv.URL + "/api/leads/export-csv")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `filename="leads.csv"`)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	lines := strings.Split(string(body), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "id,name,email,stage,createdAt", lines[0])
	assert.Contains(t, lines[1], `"Ada"`)
}
