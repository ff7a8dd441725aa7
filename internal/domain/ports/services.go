package ports

import (
	"context"

	"github.com/tomasalvarez/resumate/internal/domain/models"
)

// ProgressFunc recibe mensajes de progreso legibles por el usuario.
// Se invoca a lo más una vez por chunk, no bloquea y es best-effort:
// su ausencia no cambia el resultado de la operación.
type ProgressFunc func(message string)

// DiffSummarizer define el resumen map-reduce de un diff particionado en chunks.
type DiffSummarizer interface {
	Summarize(ctx context.Context, files []models.FileDiff, lang string) (models.SummaryReport, error)
}

// CommitService genera sugerencias de commit a partir de los cambios locales.
type CommitService interface {
	GenerateSuggestions(ctx context.Context, count int, progress ProgressFunc) ([]models.CommitSuggestion, error)
}

// PRService resume una Pull Request y la actualiza en el proveedor.
type PRService interface {
	SummarizePR(ctx context.Context, prNumber int, progress ProgressFunc) (models.PRSummary, error)
}

// IssueService redacta un issue desde el diff local y lo crea en el proveedor.
type IssueService interface {
	CreateIssueFromChanges(ctx context.Context, extraContext string, progress ProgressFunc) (models.Issue, error)
}

// CommitHandler presenta las sugerencias al usuario y concreta el commit elegido.
type CommitHandler interface {
	HandleSuggestions(ctx context.Context, suggestions []models.CommitSuggestion) error
}
