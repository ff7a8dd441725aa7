package ports

import (
	"context"

	"github.com/tomasalvarez/resumate/internal/domain/models"
)

// VCSClient define los métodos comunes para interactuar con las APIs de los
// sistemas de control de versiones.
type VCSClient interface {
	// GetPR obtiene los datos de un PR (commits, diff, rama, descripción).
	GetPR(ctx context.Context, prNumber int) (models.PRData, error)
	// UpdatePR actualiza una Pull Request (título, body y etiquetas) en el proveedor.
	UpdatePR(ctx context.Context, prNumber int, summary models.PRSummary) error
	// CreateIssue crea un issue en el proveedor y retorna el issue creado.
	CreateIssue(ctx context.Context, content models.IssueContent) (models.Issue, error)
}
