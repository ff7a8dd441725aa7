package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSuggestions_PlainJSON(t *testing.T) {
	text := `[
		{"commit_title": "feat: add login", "explanation": "adds login", "files": ["auth.go"]},
		{"commit_title": "fix: typo", "explanation": "", "files": []}
	]`

	suggestions := parseSuggestions(text)

	require.Len(t, suggestions, 2)
	assert.Equal(t, "feat: add login", suggestions[0].CommitTitle)
	assert.Equal(t, []string{"auth.go"}, suggestions[0].Files)
}

func TestParseSuggestions_MarkdownFences(t *testing.T) {
	text := "```json\n[{\"commit_title\": \"chore: bump deps\"}]\n```"

	suggestions := parseSuggestions(text)

	require.Len(t, suggestions, 1)
	assert.Equal(t, "chore: bump deps", suggestions[0].CommitTitle)
}

func TestParseSuggestions_DropsEmptyTitles(t *testing.T) {
	text := `[{"commit_title": ""}, {"commit_title": "fix: real one"}]`

	suggestions := parseSuggestions(text)

	require.Len(t, suggestions, 1)
	assert.Equal(t, "fix: real one", suggestions[0].CommitTitle)
}

func TestParseSuggestions_InvalidJSON(t *testing.T) {
	assert.Nil(t, parseSuggestions("this is not json"))
	assert.Nil(t, parseSuggestions(""))
}

func TestParsePRSummary(t *testing.T) {
	summary, ok := parsePRSummary(`{"title": "fix: cache", "body": "details", "labels": ["fix"]}`)

	require.True(t, ok)
	assert.Equal(t, "fix: cache", summary.Title)
	assert.Equal(t, []string{"fix"}, summary.Labels)
}

func TestParsePRSummary_MissingTitle(t *testing.T) {
	_, ok := parsePRSummary(`{"body": "only body"}`)
	assert.False(t, ok)

	_, ok = parsePRSummary("garbage")
	assert.False(t, ok)
}

func TestParseIssueContent(t *testing.T) {
	content, ok := parseIssueContent("```\n{\"title\": \"Bug in parser\", \"body\": \"b\", \"labels\": [\"fix\"]}\n```")

	require.True(t, ok)
	assert.Equal(t, "Bug in parser", content.Title)
}

func TestChunkPromptTemplateByLocale(t *testing.T) {
	assert.Contains(t, chunkPromptTemplate("es"), "Resumí")
	assert.Contains(t, chunkPromptTemplate("en"), "Summarize")
	// Cualquier otro locale cae en inglés.
	assert.Contains(t, chunkPromptTemplate("fr"), "Summarize")
}
