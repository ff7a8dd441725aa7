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

// CommitService genera sugerencias de commit para los cambios locales.
// Cuando el diff excede el presupuesto de una llamada, lo reduce primero
// con el resumen map-reduce para que el prompt final siempre entre en contexto.
type CommitService struct {
	git   ports.GitService
	ai    ports.CommitSummarizer
	diffs ports.DiffSummarizer
	trans *i18n.Translations
	log   *slog.Logger
	lang  string
}

func NewCommitService(git ports.GitService, ai ports.CommitSummarizer, diffs ports.DiffSummarizer, trans *i18n.Translations, log *slog.Logger, lang string) *CommitService {
	if log == nil {
		log = slog.Default()
	}
	return &CommitService{
		git:   git,
		ai:    ai,
		diffs: diffs,
		trans: trans,
		log:   log,
		lang:  lang,
	}
}

func (s *CommitService) GenerateSuggestions(ctx context.Context, count int, progress ports.ProgressFunc) ([]models.CommitSuggestion, error) {
	fileDiffs, err := s.git.GetFileDiffs(ctx)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeGit, s.trans.GetMessage("error_no_changes", 0, nil), err)
	}

	if len(fileDiffs) == 0 {
		return nil, apperrors.NewWarning(apperrors.CodeGit, s.trans.GetMessage("error_no_changes", 0, nil), nil)
	}

	diff, err := s.resolveDiff(ctx, fileDiffs, progress)
	if err != nil {
		return nil, err
	}

	files := make([]string, len(fileDiffs))
	for i, fd := range fileDiffs {
		files[i] = fd.Path
	}

	info := models.CommitInfo{
		Files: files,
		Diff:  diff,
	}

	return s.ai.GenerateSuggestions(ctx, info, count)
}

// resolveDiff retorna el diff crudo si entra en una sola llamada, o el
// resumen reducido cuando lo excede.
func (s *CommitService) resolveDiff(ctx context.Context, fileDiffs []models.FileDiff, progress ports.ProgressFunc) (string, error) {
	total := 0
	var raw string
	for _, fd := range fileDiffs {
		total += fd.TokenCount
		if raw != "" {
			raw += "\n\n"
		}
		raw += fd.Content
	}

	if total <= chunkTokenBudget {
		return raw, nil
	}

	report, err := s.diffs.Summarize(ctx, fileDiffs, s.lang)
	if err != nil {
		return "", err
	}

	if report.ChunksFailed > 0 {
		s.log.WarnContext(ctx, "resumen de diff incompleto",
			"fallidos", report.ChunksFailed,
			"total", report.TotalChunks())
		if progress != nil {
			progress(s.trans.GetMessage("chunks_failed_warning", 0, map[string]interface{}{
				"Failed": report.ChunksFailed,
				"Total":  report.TotalChunks(),
			}))
		}
	}

	return fmt.Sprintf("%s\n\n%s", s.trans.GetMessage("summarized_diff_header", 0, nil), report.SummaryText), nil
}
