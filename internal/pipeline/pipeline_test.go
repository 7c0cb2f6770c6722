package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StronkOnes/BrieflyOS/internal/completion"
)

// fakeClient replays scripted responses and records every prompt it saw.
type fakeClient struct {
	responses []string
	err       error
	calls     [][]completion.Message
}

func (f *fakeClient) Complete(ctx context.Context, messages []completion.Message) (string, error) {
	f.calls = append(f.calls, messages)
	if f.err != nil {
		return "", f.err
	}
	i := len(f.calls) - 1
	if i >= len(f.responses) {
		return "", errors.New("no scripted response")
	}
	return f.responses[i], nil
}

func TestGenerateArticleChainsTwoCalls(t *testing.T) {
	fc := &fakeClient{responses: []string{"RESEARCH", "DRAFT"}}
	svc := NewService(fc)

	out, err := svc.GenerateArticle(context.Background(), "solar panels")
	require.NoError(t, err)
	assert.Equal(t, "RESEARCH", out.ResearchSummary)
	assert.Equal(t, "DRAFT", out.ArticleDraft)

	require.Len(t, fc.calls, 2)
	assert.Contains(t, fc.calls[0][1].Content, "solar panels")
	// Step two is seeded by step one's output.
	assert.Contains(t, fc.calls[1][1].Content, "RESEARCH")
	assert.Equal(t, completion.RoleSystem, fc.calls[0][0].Role)
}

func TestGenerateArticleFailsAsAUnit(t *testing.T) {
	fc := &fakeClient{err: errors.New("upstream down")}
	svc := NewService(fc)

	out, err := svc.GenerateArticle(context.Background(), "x")
	require.Error(t, err)
	assert.Nil(t, out)
	assert.Len(t, fc.calls, 1)
}

func TestGenerateScriptDefaultsMissingResearch(t *testing.T) {
	fc := &fakeClient{responses: []string{"SCRIPT"}}
	svc := NewService(fc)

	out, err := svc.GenerateScript(context.Background(), ScriptShort, "ai tools", "")
	require.NoError(t, err)
	assert.Equal(t, "SCRIPT", out)
	assert.Contains(t, fc.calls[0][1].Content, "No research provided")
}

func TestGenerateScriptPersonaPerKind(t *testing.T) {
	for kind, want := range map[ScriptKind]string{
		ScriptShort:   "short-form video scripts",
		ScriptPodcast: "podcast script writer",
		ScriptYouTube: "YouTube script writer",
	} {
		fc := &fakeClient{responses: []string{"S"}}
		_, err := NewService(fc).GenerateScript(context.Background(), kind, "t", "r")
		require.NoError(t, err)
		assert.Contains(t, fc.calls[0][0].Content, want, "kind %s", kind)
	}
}

func TestAnalyzeKPIsEmbedsCompactJSON(t *testing.T) {
	fc := &fakeClient{responses: []string{"ANALYSIS"}}
	svc := NewService(fc)

	leads := json.RawMessage(`[{"name": "A"}]`)
	opps := json.RawMessage(`[]`)
	out, err := svc.AnalyzeKPIs(context.Background(), leads, opps)
	require.NoError(t, err)
	assert.Equal(t, "ANALYSIS", out)
	assert.Contains(t, fc.calls[0][1].Content, `[{"name":"A"}]`)
}

func TestScrapeContactsUnwrapsFencedJSON(t *testing.T) {
	raw := "```json\n[{\"name\":\"A\",\"email\":\"a@x.com\",\"title\":\"\",\"organization\":\"\",\"contactNumber\":\"\",\"sourceUrl\":\"\"}]\n```"
	fc := &fakeClient{responses: []string{raw}}
	svc := NewService(fc)

	contacts, err := svc.ScrapeContacts(context.Background(), "plumbers in Austin")
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "A", contacts[0].Name)
	assert.Equal(t, "a@x.com", contacts[0].Email)
}

func TestScrapeContactsBareArray(t *testing.T) {
	fc := &fakeClient{responses: []string{`[{"name":"B","email":"b@x.com"}]`}}
	svc := NewService(fc)

	contacts, err := svc.ScrapeContacts(context.Background(), "q")
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "B", contacts[0].Name)
}

func TestScrapeContactsParseFailureCarriesRawOutput(t *testing.T) {
	fc := &fakeClient{responses: []string{"I could not find any contacts."}}
	svc := NewService(fc)

	_, err := svc.ScrapeContacts(context.Background(), "q")
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "I could not find any contacts.", pe.RawOutput)
}

func TestScrapeContactsNonArrayJSONIsParseError(t *testing.T) {
	fc := &fakeClient{responses: []string{`{"name":"not an array"}`}}
	svc := NewService(fc)

	_, err := svc.ScrapeContacts(context.Background(), "q")
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}
