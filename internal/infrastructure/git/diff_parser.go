package git

import (
	"strings"

	"github.com/tomasalvarez/resumate/internal/domain/models"
	"github.com/tomasalvarez/resumate/internal/domain/ports"
)

// tokensPerChar es la estimación de tokens del modelo por caracter de diff.
// Aproximación estándar de ~4 caracteres por token.
const tokensPerChar = 4

var _ ports.DiffParser = (*DiffParser)(nil)

// DiffParser separa un diff unificado en registros por archivo.
type DiffParser struct{}

func NewDiffParser() *DiffParser {
	return &DiffParser{}
}

// Parse corta el diff en los encabezados "diff --git" y arma un FileDiff por
// archivo con conteos de líneas agregadas/quitadas, estimación de tokens y
// prioridad heurística por ruta. Preserva el orden de aparición.
func (p *DiffParser) Parse(diff string) []models.FileDiff {
	if strings.TrimSpace(diff) == "" {
		return nil
	}

	var files []models.FileDiff
	sections := splitSections(diff)

	for _, section := range sections {
		path := parsePath(section)
		if path == "" {
			continue
		}

		additions, deletions := countChanges(section)

		files = append(files, models.FileDiff{
			Path:       path,
			Content:    section,
			Additions:  additions,
			Deletions:  deletions,
			TokenCount: EstimateTokens(section),
			Priority:   classifyPriority(path),
		})
	}

	return files
}

// EstimateTokens estima cuántos tokens del modelo consume content.
func EstimateTokens(content string) int {
	return (len(content) + tokensPerChar - 1) / tokensPerChar
}

func splitSections(diff string) []string {
	lines := strings.Split(diff, "\n")
	var sections []string
	var current []string

	for _, line := range lines {
		if strings.HasPrefix(line, "diff --git ") && len(current) > 0 {
			sections = append(sections, strings.Join(current, "\n"))
			current = nil
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		sections = append(sections, strings.Join(current, "\n"))
	}

	return sections
}

// parsePath extrae la ruta nueva del encabezado "diff --git a/x b/x".
func parsePath(section string) string {
	header, _, _ := strings.Cut(section, "\n")
	if !strings.HasPrefix(header, "diff --git ") {
		return ""
	}

	parts := strings.Fields(header)
	if len(parts) < 4 {
		return ""
	}
	return strings.TrimPrefix(parts[3], "b/")
}

func countChanges(section string) (additions, deletions int) {
	for _, line := range strings.Split(section, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			additions++
		case strings.HasPrefix(line, "-"):
			deletions++
		}
	}
	return additions, deletions
}

// classifyPriority asigna una prioridad heurística según la ruta: el código
// fuente pesa más que los tests, y los archivos generados o de lock pesan menos.
func classifyPriority(path string) models.DiffPriority {
	lower := strings.ToLower(path)

	switch {
	case strings.HasSuffix(lower, ".lock"),
		strings.HasSuffix(lower, ".sum"),
		strings.HasSuffix(lower, ".svg"),
		strings.Contains(lower, "vendor/"),
		strings.Contains(lower, "node_modules/"):
		return models.PriorityLow
	case strings.Contains(lower, "_test.") || strings.Contains(lower, ".test."),
		strings.HasSuffix(lower, ".md"),
		strings.HasSuffix(lower, ".txt"):
		return models.PriorityMedium
	default:
		return models.PriorityHigh
	}
}
