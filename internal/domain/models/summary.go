package models

type (
	// ChunkOutcome es el resultado de resumir un chunk: un resumen (éxito)
	// o su ausencia (falla), junto con las rutas de los archivos que el
	// chunk contenía, necesarias para reportar qué cambios quedaron sin resumen.
	ChunkOutcome struct {
		Summary   string
		FilePaths []string
		Failed    bool
	}

	// SummaryReport es la salida combinada del resumen map-reduce.
	// Invariante: ChunksProcessed + ChunksFailed == total de chunks.
	SummaryReport struct {
		SummaryText     string
		ChunksProcessed int
		ChunksFailed    int
	}
)

// TotalChunks retorna la cantidad de chunks que participaron del resumen.
func (r SummaryReport) TotalChunks() int {
	return r.ChunksProcessed + r.ChunksFailed
}
