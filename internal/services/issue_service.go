package services

import (
	"context"

	apperrors "github.com/tomasalvarez/resumate/internal/domain/errors"
	"github.com/tomasalvarez/resumate/internal/domain/models"
	"github.com/tomasalvarez/resumate/internal/domain/ports"
	"github.com/tomasalvarez/resumate/internal/i18n"
)

// IssueService redacta un issue desde los cambios locales y lo crea en el
// proveedor VCS. El cuerpo del issue siempre se construye sobre el resumen
// map-reduce del diff, así el texto generado nunca incluye parches crudos.
type IssueService struct {
	git       ports.GitService
	ai        ports.IssueGenerator
	diffs     ports.DiffSummarizer
	vcsClient ports.VCSClient
	trans     *i18n.Translations
	lang      string
}

func NewIssueService(git ports.GitService, ai ports.IssueGenerator, diffs ports.DiffSummarizer, vcsClient ports.VCSClient, trans *i18n.Translations, lang string) *IssueService {
	return &IssueService{
		git:       git,
		ai:        ai,
		diffs:     diffs,
		vcsClient: vcsClient,
		trans:     trans,
		lang:      lang,
	}
}

func (s *IssueService) CreateIssueFromChanges(ctx context.Context, extraContext string, progress ports.ProgressFunc) (models.Issue, error) {
	fileDiffs, err := s.git.GetFileDiffs(ctx)
	if err != nil {
		return models.Issue{}, apperrors.New(apperrors.CodeGit, s.trans.GetMessage("error_no_changes", 0, nil), err)
	}

	if len(fileDiffs) == 0 {
		return models.Issue{}, apperrors.NewWarning(apperrors.CodeGit, s.trans.GetMessage("error_no_changes", 0, nil), nil)
	}

	report, err := s.diffs.Summarize(ctx, fileDiffs, s.lang)
	if err != nil {
		return models.Issue{}, err
	}

	if report.ChunksFailed > 0 && progress != nil {
		progress(s.trans.GetMessage("chunks_failed_warning", 0, map[string]interface{}{
			"Failed": report.ChunksFailed,
			"Total":  report.TotalChunks(),
		}))
	}

	request := models.IssueRequest{
		Summary:     report.SummaryText,
		Description: extraContext,
	}

	content, err := s.ai.GenerateIssueContent(ctx, request)
	if err != nil {
		msg := s.trans.GetMessage("error_creating_issue", 0, map[string]interface{}{
			"Error": err.Error(),
		})
		return models.Issue{}, apperrors.New(apperrors.CodeAIProvider, msg, err)
	}

	issue, err := s.vcsClient.CreateIssue(ctx, content)
	if err != nil {
		msg := s.trans.GetMessage("error_creating_issue", 0, map[string]interface{}{
			"Error": err.Error(),
		})
		return models.Issue{}, apperrors.New(apperrors.CodeVCSProvider, msg, err)
	}

	return issue, nil
}
