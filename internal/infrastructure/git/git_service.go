package git

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	apperrors "github.com/tomasalvarez/resumate/internal/domain/errors"
	"github.com/tomasalvarez/resumate/internal/domain/models"
	"github.com/tomasalvarez/resumate/internal/domain/ports"
)

var _ ports.GitService = (*GitService)(nil)

// GitService ejecuta git localmente para obtener cambios y crear commits.
type GitService struct {
	parser ports.DiffParser
}

func NewGitService() *GitService {
	return &GitService{parser: NewDiffParser()}
}

// HasStagedChanges indica si hay cambios en el área de staging.
func (s *GitService) HasStagedChanges(ctx context.Context) bool {
	cmd := exec.CommandContext(ctx, "git", "diff", "--cached", "--quiet")
	err := cmd.Run()

	// exit status 1 significa que hay cambios staged
	return err != nil && cmd.ProcessState.ExitCode() == 1
}

func (s *GitService) GetChangedFiles(ctx context.Context) ([]models.GitChange, error) {
	cmd := exec.CommandContext(ctx, "git", "status", "--porcelain")
	output, err := cmd.Output()
	if err != nil {
		return nil, apperrors.New(apperrors.CodeGit, "git status failed", err)
	}

	changes := make([]models.GitChange, 0)
	for _, line := range strings.Split(string(output), "\n") {
		if len(line) > 3 {
			path := strings.TrimSpace(line[3:])
			if path != "" {
				changes = append(changes, models.GitChange{
					Path:   path,
					Status: strings.TrimSpace(line[:2]),
				})
			}
		}
	}

	return changes, nil
}

// GetDiff retorna el diff combinado de staging y working tree.
func (s *GitService) GetDiff(ctx context.Context) (string, error) {
	stagedCmd := exec.CommandContext(ctx, "git", "diff", "--cached")
	stagedOutput, err := stagedCmd.Output()
	if err != nil {
		return "", apperrors.New(apperrors.CodeGit, "git diff --cached failed", err)
	}

	unstagedCmd := exec.CommandContext(ctx, "git", "diff")
	unstagedOutput, err := unstagedCmd.Output()
	if err != nil {
		return "", apperrors.New(apperrors.CodeGit, "git diff failed", err)
	}

	return string(stagedOutput) + string(unstagedOutput), nil
}

// GetFileDiffs retorna el diff actual separado por archivo, listo para el
// particionado en chunks.
func (s *GitService) GetFileDiffs(ctx context.Context) ([]models.FileDiff, error) {
	diff, err := s.GetDiff(ctx)
	if err != nil {
		return nil, err
	}
	return s.parser.Parse(diff), nil
}

func (s *GitService) CreateCommit(ctx context.Context, message string) error {
	if !s.HasStagedChanges(ctx) {
		return apperrors.NewWarning(apperrors.CodeGit, "no staged changes", nil)
	}

	cmd := exec.CommandContext(ctx, "git", "commit", "-m", message)
	if err := cmd.Run(); err != nil {
		return apperrors.New(apperrors.CodeGit, "git commit failed", err)
	}
	return nil
}

func (s *GitService) GetCurrentBranch(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--abbrev-ref", "HEAD")
	output, err := cmd.Output()
	if err != nil {
		return "", apperrors.New(apperrors.CodeGit, "could not resolve current branch", err)
	}
	return strings.TrimSpace(string(output)), nil
}

var remoteRegex = regexp.MustCompile(`[:/]([^/:]+)/([^/]+?)(\.git)?$`)

// GetRepoInfo deduce owner y repo desde la URL del remoto origin.
func (s *GitService) GetRepoInfo(ctx context.Context) (string, string, error) {
	cmd := exec.CommandContext(ctx, "git", "remote", "get-url", "origin")
	output, err := cmd.Output()
	if err != nil {
		return "", "", apperrors.New(apperrors.CodeGit, "could not read origin remote", err)
	}

	url := strings.TrimSpace(string(output))
	matches := remoteRegex.FindStringSubmatch(url)
	if matches == nil {
		return "", "", apperrors.New(apperrors.CodeGit, fmt.Sprintf("unrecognized remote url: %s", url), nil)
	}

	return matches[1], matches[2], nil
}
