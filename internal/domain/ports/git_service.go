package ports

import (
	"context"

	"github.com/tomasalvarez/resumate/internal/domain/models"
)

// GitService define las operaciones de git que consume la aplicación.
type GitService interface {
	HasStagedChanges(ctx context.Context) bool
	GetChangedFiles(ctx context.Context) ([]models.GitChange, error)
	GetDiff(ctx context.Context) (string, error)
	// GetFileDiffs retorna el diff separado por archivo, con conteos de
	// líneas y una estimación de tokens por archivo.
	GetFileDiffs(ctx context.Context) ([]models.FileDiff, error)
	CreateCommit(ctx context.Context, message string) error
	GetCurrentBranch(ctx context.Context) (string, error)
	GetRepoInfo(ctx context.Context) (owner string, repo string, err error)
}
