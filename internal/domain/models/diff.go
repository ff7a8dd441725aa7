package models

// DiffPriority clasifica la relevancia de un archivo dentro del diff.
// Hoy es informativa: el particionado no la usa, pero se transporta
// para una futura priorización de chunks.
type DiffPriority string

const (
	PriorityHigh   DiffPriority = "high"
	PriorityMedium DiffPriority = "medium"
	PriorityLow    DiffPriority = "low"
)

type (
	// FileDiff representa la contribución de un archivo al diff total.
	// Se construye una sola vez en el parser de diffs y es inmutable
	// durante toda la operación de resumen.
	FileDiff struct {
		Path       string
		Content    string
		Additions  int
		Deletions  int
		TokenCount int
		Priority   DiffPriority
	}

	// Chunk es una secuencia ordenada y no vacía de FileDiff cuya suma de
	// tokens respeta el presupuesto, salvo el caso del archivo sobredimensionado
	// que ocupa un chunk él solo.
	Chunk struct {
		Files []FileDiff
	}
)

// TokenCount retorna la suma de tokens de los archivos del chunk.
func (c Chunk) TokenCount() int {
	total := 0
	for _, f := range c.Files {
		total += f.TokenCount
	}
	return total
}

// FilePaths retorna las rutas de los archivos del chunk, en orden.
func (c Chunk) FilePaths() []string {
	paths := make([]string, len(c.Files))
	for i, f := range c.Files {
		paths[i] = f.Path
	}
	return paths
}
