package ports

import (
	"context"

	"github.com/tomasalvarez/resumate/internal/domain/models"
)

// ChunkSummarizer define el backend de resumen por chunk.
// Un resultado vacío (sin error) significa que el backend no pudo
// producir un resumen para ese chunk.
type ChunkSummarizer interface {
	SummarizeChunk(ctx context.Context, chunkText string, lang string) (string, error)
}

// CommitSummarizer define el servicio que genera sugerencias de commit.
type CommitSummarizer interface {
	// GenerateSuggestions genera una lista de sugerencias de mensajes de commit.
	GenerateSuggestions(ctx context.Context, info models.CommitInfo, count int) ([]models.CommitSuggestion, error)
}

// PRSummarizer define el servicio que resume Pull Requests.
type PRSummarizer interface {
	// GeneratePRSummary genera el resumen de un PR a partir de un prompt.
	GeneratePRSummary(ctx context.Context, prompt string) (models.PRSummary, error)
}

// IssueGenerator define el servicio que redacta issues con IA.
type IssueGenerator interface {
	GenerateIssueContent(ctx context.Context, request models.IssueRequest) (models.IssueContent, error)
}

// TokenCounter cuenta tokens de un contenido sin invocar la generación.
type TokenCounter interface {
	CountTokens(ctx context.Context, content string) (int, error)
}
