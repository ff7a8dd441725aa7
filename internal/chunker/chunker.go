// Package chunker particiona la lista de archivos modificados en chunks
// que respetan un presupuesto de tokens por llamada al modelo.
package chunker

import (
	"github.com/tomasalvarez/resumate/internal/domain/models"
)

// Partition particiona files en chunks ordenados cuya suma de tokens no
// supera tokenBudget. El algoritmo es greedy y preserva el orden: nunca
// reordena, pierde ni duplica archivos, y para la misma entrada produce
// siempre la misma partición.
//
// Un archivo cuyo TokenCount supera por sí solo el presupuesto se emite
// como chunk singleton (la excepción de archivo sobredimensionado).
// El límite es inclusivo: un archivo que lleva la suma exactamente a
// tokenBudget entra en el chunk abierto.
func Partition(files []models.FileDiff, tokenBudget int) []models.Chunk {
	if len(files) == 0 {
		return nil
	}

	chunks := make([]models.Chunk, 0)
	var open []models.FileDiff
	openTokens := 0

	for _, file := range files {
		if len(open) == 0 && file.TokenCount > tokenBudget {
			// Archivo sobredimensionado: chunk singleton, el abierto sigue vacío.
			chunks = append(chunks, models.Chunk{Files: []models.FileDiff{file}})
			continue
		}

		if len(open) > 0 && openTokens+file.TokenCount > tokenBudget {
			chunks = append(chunks, models.Chunk{Files: open})
			open = nil
			openTokens = 0

			if file.TokenCount > tokenBudget {
				chunks = append(chunks, models.Chunk{Files: []models.FileDiff{file}})
				continue
			}
		}

		open = append(open, file)
		openTokens += file.TokenCount
	}

	if len(open) > 0 {
		chunks = append(chunks, models.Chunk{Files: open})
	}

	return chunks
}
