package gemini

import (
	"encoding/json"
	"strings"

	"github.com/tomasalvarez/resumate/internal/domain/models"
)

// stripCodeFences limpia los bloques markdown con los que Gemini a veces
// envuelve el JSON (` ```json ... ``` `).
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}

func parseSuggestions(text string) []models.CommitSuggestion {
	text = stripCodeFences(text)
	if text == "" {
		return nil
	}

	var suggestions []models.CommitSuggestion
	if err := json.Unmarshal([]byte(text), &suggestions); err != nil {
		return nil
	}

	// Se descartan entradas sin título: no hay nada que commitear con ellas.
	valid := suggestions[:0]
	for _, s := range suggestions {
		if strings.TrimSpace(s.CommitTitle) != "" {
			valid = append(valid, s)
		}
	}
	return valid
}

func parsePRSummary(text string) (models.PRSummary, bool) {
	text = stripCodeFences(text)
	if text == "" {
		return models.PRSummary{}, false
	}

	var summary models.PRSummary
	if err := json.Unmarshal([]byte(text), &summary); err != nil {
		return models.PRSummary{}, false
	}
	if strings.TrimSpace(summary.Title) == "" {
		return models.PRSummary{}, false
	}
	return summary, true
}

func parseIssueContent(text string) (models.IssueContent, bool) {
	text = stripCodeFences(text)
	if text == "" {
		return models.IssueContent{}, false
	}

	var content models.IssueContent
	if err := json.Unmarshal([]byte(text), &content); err != nil {
		return models.IssueContent{}, false
	}
	if strings.TrimSpace(content.Title) == "" {
		return models.IssueContent{}, false
	}
	return content, true
}
