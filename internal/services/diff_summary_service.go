package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/tomasalvarez/resumate/internal/chunker"
	"github.com/tomasalvarez/resumate/internal/domain/models"
	"github.com/tomasalvarez/resumate/internal/domain/ports"
	"github.com/tomasalvarez/resumate/internal/i18n"
)

// chunkTokenBudget es el presupuesto de tokens por llamada de resumen.
// Es una constante interna del servicio, independiente del caller.
const chunkTokenBudget = 12000

// DiffSummaryService implementa el resumen map-reduce de un diff: particiona
// los archivos en chunks, resume cada chunk con el backend inyectado y reduce
// los resultados parciales en un único reporte. La falla de un chunk nunca
// aborta el resto: se registra como dato y el procesamiento continúa.
type DiffSummaryService struct {
	summarizer ports.ChunkSummarizer
	trans      *i18n.Translations
	log        *slog.Logger
	progress   ports.ProgressFunc
}

// NewDiffSummaryService crea el servicio con el backend de resumen y el
// logger inyectados. progress es opcional: nil es válido y no altera el
// resultado. Un log nil cae en el default de slog.
func NewDiffSummaryService(summarizer ports.ChunkSummarizer, trans *i18n.Translations, log *slog.Logger, progress ports.ProgressFunc) *DiffSummaryService {
	if log == nil {
		log = slog.Default()
	}
	return &DiffSummaryService{
		summarizer: summarizer,
		trans:      trans,
		log:        log,
		progress:   progress,
	}
}

// Summarize procesa los chunks secuencialmente, en orden. Un resultado vacío
// del backend cuenta como falla del chunk; un error del backend también se
// convierte en falla del chunk en lugar de propagarse, para que una llamada
// fallida no pierda los resúmenes del resto del diff.
func (s *DiffSummaryService) Summarize(ctx context.Context, files []models.FileDiff, lang string) (models.SummaryReport, error) {
	chunks := chunker.Partition(files, chunkTokenBudget)
	if len(chunks) == 0 {
		return models.SummaryReport{}, nil
	}

	outcomes := make([]models.ChunkOutcome, 0, len(chunks))
	processed := 0
	failed := 0

	for i, chunk := range chunks {
		s.reportProgress(i+1, len(chunks))

		chunkText := renderChunk(chunk)
		summary, err := s.summarizer.SummarizeChunk(ctx, chunkText, lang)
		if err != nil {
			s.log.WarnContext(ctx, "falló el resumen del chunk",
				"chunk", i+1,
				"total", len(chunks),
				"archivos", chunk.FilePaths(),
				"error", err)
			summary = ""
		}

		if summary == "" {
			outcomes = append(outcomes, models.ChunkOutcome{
				FilePaths: chunk.FilePaths(),
				Failed:    true,
			})
			failed++
			continue
		}

		outcomes = append(outcomes, models.ChunkOutcome{
			Summary:   summary,
			FilePaths: chunk.FilePaths(),
		})
		processed++
	}

	return models.SummaryReport{
		SummaryText:     s.reduce(outcomes),
		ChunksProcessed: processed,
		ChunksFailed:    failed,
	}, nil
}

func (s *DiffSummaryService) reportProgress(current, total int) {
	if s.progress == nil {
		return
	}
	s.progress(s.trans.GetMessage("summarizing_chunk", 0, map[string]interface{}{
		"Current": current,
		"Total":   total,
	}))
}

// reduce concatena, en orden de chunk, los resúmenes exitosos y un aviso
// explícito por cada chunk fallido que nombra los archivos afectados, para
// que el prompt final nunca pierda contenido en silencio.
func (s *DiffSummaryService) reduce(outcomes []models.ChunkOutcome) string {
	parts := make([]string, 0, len(outcomes))
	for _, outcome := range outcomes {
		if outcome.Failed {
			parts = append(parts, s.trans.GetMessage("chunk_summary_failed", 0, map[string]interface{}{
				"Files": strings.Join(outcome.FilePaths, ", "),
			}))
			continue
		}
		parts = append(parts, outcome.Summary)
	}
	return strings.Join(parts, "\n\n")
}

// renderChunk concatena los diffs de los archivos del chunk en un único
// cuerpo de texto para el backend.
func renderChunk(chunk models.Chunk) string {
	var sb strings.Builder
	for i, file := range chunk.Files {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(file.Content)
	}
	return sb.String()
}
