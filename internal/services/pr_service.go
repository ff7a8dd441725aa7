package services

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "github.com/tomasalvarez/resumate/internal/domain/errors"
	"github.com/tomasalvarez/resumate/internal/domain/models"
	"github.com/tomasalvarez/resumate/internal/domain/ports"
	"github.com/tomasalvarez/resumate/internal/i18n"
)

// PRService resume una Pull Request y la actualiza en el proveedor VCS.
type PRService struct {
	vcsClient  ports.VCSClient
	aiService  ports.PRSummarizer
	diffs      ports.DiffSummarizer
	diffParser ports.DiffParser
	trans      *i18n.Translations
	log        *slog.Logger
	lang       string
}

func NewPRService(vcsClient ports.VCSClient, aiService ports.PRSummarizer, diffs ports.DiffSummarizer, diffParser ports.DiffParser, trans *i18n.Translations, log *slog.Logger, lang string) *PRService {
	if log == nil {
		log = slog.Default()
	}
	return &PRService{
		vcsClient:  vcsClient,
		aiService:  aiService,
		diffs:      diffs,
		diffParser: diffParser,
		trans:      trans,
		log:        log,
		lang:       lang,
	}
}

func (s *PRService) SummarizePR(ctx context.Context, prNumber int, progress ports.ProgressFunc) (models.PRSummary, error) {
	// Obtener los datos del PR desde el proveedor
	prData, err := s.vcsClient.GetPR(ctx, prNumber)
	if err != nil {
		msg := s.trans.GetMessage("error_fetching_pr", 0, map[string]interface{}{
			"PRNumber": prNumber,
			"Error":    err.Error(),
		})
		return models.PRSummary{}, apperrors.New(apperrors.CodeVCSProvider, msg, err)
	}

	diff, err := s.resolvePRDiff(ctx, prData.Diff, progress)
	if err != nil {
		return models.PRSummary{}, err
	}

	// Generar el resumen usando el servicio AI
	prompt := s.buildPRPrompt(prData, diff)
	summary, err := s.aiService.GeneratePRSummary(ctx, prompt)
	if err != nil {
		msg := s.trans.GetMessage("error_generating_summary", 0, map[string]interface{}{
			"PRNumber": prNumber,
			"Error":    err.Error(),
		})
		return models.PRSummary{}, apperrors.New(apperrors.CodeAIProvider, msg, err)
	}

	// Actualizar el PR con el resumen generado
	if err := s.vcsClient.UpdatePR(ctx, prNumber, summary); err != nil {
		msg := s.trans.GetMessage("error_updating_pr", 0, map[string]interface{}{
			"PRNumber": prNumber,
			"Error":    err.Error(),
		})
		return models.PRSummary{}, apperrors.New(apperrors.CodeVCSProvider, msg, err)
	}

	return summary, nil
}

// resolvePRDiff reduce el diff del PR con el resumen map-reduce cuando no
// entra en una sola llamada al modelo.
func (s *PRService) resolvePRDiff(ctx context.Context, diff string, progress ports.ProgressFunc) (string, error) {
	fileDiffs := s.diffParser.Parse(diff)

	total := 0
	for _, fd := range fileDiffs {
		total += fd.TokenCount
	}
	if total <= chunkTokenBudget {
		return diff, nil
	}

	report, err := s.diffs.Summarize(ctx, fileDiffs, s.lang)
	if err != nil {
		return "", err
	}

	if report.ChunksFailed > 0 {
		s.log.WarnContext(ctx, "resumen del diff del PR incompleto",
			"fallidos", report.ChunksFailed,
			"total", report.TotalChunks())
		if progress != nil {
			progress(s.trans.GetMessage("chunks_failed_warning", 0, map[string]interface{}{
				"Failed": report.ChunksFailed,
				"Total":  report.TotalChunks(),
			}))
		}
	}

	return report.SummaryText, nil
}

func (s *PRService) buildPRPrompt(prData models.PRData, diff string) string {
	var prompt string

	prompt += fmt.Sprintf("PR #%d by %s\n\n", prData.ID, prData.Creator)

	prompt += "Commits:\n"
	for _, commit := range prData.Commits {
		prompt += fmt.Sprintf("- %s\n", commit.Message)
	}
	prompt += "\n"

	prompt += "Changes:\n"
	prompt += diff

	return prompt
}
