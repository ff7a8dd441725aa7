package ports

import "github.com/tomasalvarez/resumate/internal/domain/models"

// DiffParser separa un diff unificado en registros por archivo, con conteos
// de líneas y estimación de tokens. El particionado en chunks consume su salida.
type DiffParser interface {
	Parse(diff string) []models.FileDiff
}
