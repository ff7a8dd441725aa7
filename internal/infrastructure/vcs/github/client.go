package github

import (
	"context"
	"net/http"

	"github.com/google/go-github/github"
	"golang.org/x/oauth2"

	apperrors "github.com/tomasalvarez/resumate/internal/domain/errors"
	"github.com/tomasalvarez/resumate/internal/domain/models"
	"github.com/tomasalvarez/resumate/internal/domain/ports"
	"github.com/tomasalvarez/resumate/internal/i18n"
)

var _ ports.VCSClient = (*GitHubClient)(nil)

// PullRequestsService abstrae las operaciones de PR de la API de GitHub
// que usa el cliente, para poder mockearla en tests.
type PullRequestsService interface {
	Get(ctx context.Context, owner, repo string, number int) (*github.PullRequest, *github.Response, error)
	ListCommits(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.RepositoryCommit, *github.Response, error)
	GetRaw(ctx context.Context, owner, repo string, number int, opts github.RawOptions) (string, *github.Response, error)
	Edit(ctx context.Context, owner, repo string, number int, pr *github.PullRequest) (*github.PullRequest, *github.Response, error)
}

// IssuesService abstrae las operaciones de issues de la API de GitHub.
type IssuesService interface {
	Create(ctx context.Context, owner, repo string, issue *github.IssueRequest) (*github.Issue, *github.Response, error)
	AddLabelsToIssue(ctx context.Context, owner, repo string, number int, labels []string) ([]*github.Label, *github.Response, error)
}

type GitHubClient struct {
	prService     PullRequestsService
	issuesService IssuesService
	owner         string
	repo          string
	trans         *i18n.Translations
}

func NewGitHubClient(owner, repo, token string, trans *i18n.Translations) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return &GitHubClient{
		prService:     client.PullRequests,
		issuesService: client.Issues,
		owner:         owner,
		repo:          repo,
		trans:         trans,
	}
}

// NewGitHubClientWithServices permite inyectar los servicios de la API,
// pensado para tests.
func NewGitHubClientWithServices(prService PullRequestsService, issuesService IssuesService, owner, repo string, trans *i18n.Translations) *GitHubClient {
	return &GitHubClient{
		prService:     prService,
		issuesService: issuesService,
		owner:         owner,
		repo:          repo,
		trans:         trans,
	}
}

func (ghc *GitHubClient) GetPR(ctx context.Context, prNumber int) (models.PRData, error) {
	pr, _, err := ghc.prService.Get(ctx, ghc.owner, ghc.repo, prNumber)
	if err != nil {
		return models.PRData{}, apperrors.New(apperrors.CodeVCSProvider, ghc.trans.GetMessage("error_fetching_pr", 0, map[string]interface{}{
			"PRNumber": prNumber,
			"Error":    err.Error(),
		}), err)
	}

	commits, _, err := ghc.prService.ListCommits(ctx, ghc.owner, ghc.repo, prNumber, &github.ListOptions{})
	if err != nil {
		return models.PRData{}, apperrors.New(apperrors.CodeVCSProvider, ghc.trans.GetMessage("error_fetching_pr", 0, map[string]interface{}{
			"PRNumber": prNumber,
			"Error":    err.Error(),
		}), err)
	}

	prCommits := make([]models.Commit, len(commits))
	for i, commit := range commits {
		prCommits[i] = models.Commit{
			Message: commit.GetCommit().GetMessage(),
		}
	}

	diff, _, err := ghc.prService.GetRaw(ctx, ghc.owner, ghc.repo, prNumber, github.RawOptions{Type: github.Diff})
	if err != nil {
		return models.PRData{}, apperrors.New(apperrors.CodeVCSProvider, ghc.trans.GetMessage("error_fetching_pr", 0, map[string]interface{}{
			"PRNumber": prNumber,
			"Error":    err.Error(),
		}), err)
	}

	return models.PRData{
		ID:          prNumber,
		Title:       pr.GetTitle(),
		Creator:     pr.GetUser().GetLogin(),
		Commits:     prCommits,
		Diff:        diff,
		BranchName:  pr.GetHead().GetRef(),
		Description: pr.GetBody(),
	}, nil
}

func (ghc *GitHubClient) UpdatePR(ctx context.Context, prNumber int, summary models.PRSummary) error {
	pr := &github.PullRequest{
		Title: github.String(summary.Title),
		Body:  github.String(summary.Body),
	}

	_, _, err := ghc.prService.Edit(ctx, ghc.owner, ghc.repo, prNumber, pr)
	if err != nil {
		return apperrors.New(apperrors.CodeVCSProvider, ghc.trans.GetMessage("error_updating_pr", 0, map[string]interface{}{
			"PRNumber": prNumber,
			"Error":    err.Error(),
		}), err)
	}

	if len(summary.Labels) > 0 {
		// Las etiquetas de un PR se agregan por la API de issues.
		if _, _, err := ghc.issuesService.AddLabelsToIssue(ctx, ghc.owner, ghc.repo, prNumber, summary.Labels); err != nil {
			return apperrors.NewWarning(apperrors.CodeVCSProvider, ghc.trans.GetMessage("error_updating_pr", 0, map[string]interface{}{
				"PRNumber": prNumber,
				"Error":    err.Error(),
			}), err)
		}
	}

	return nil
}

func (ghc *GitHubClient) CreateIssue(ctx context.Context, content models.IssueContent) (models.Issue, error) {
	request := &github.IssueRequest{
		Title: github.String(content.Title),
		Body:  github.String(content.Body),
	}
	if len(content.Labels) > 0 {
		request.Labels = &content.Labels
	}

	issue, _, err := ghc.issuesService.Create(ctx, ghc.owner, ghc.repo, request)
	if err != nil {
		return models.Issue{}, apperrors.New(apperrors.CodeVCSProvider, ghc.trans.GetMessage("error_creating_issue", 0, map[string]interface{}{
			"Error": err.Error(),
		}), err)
	}

	return models.Issue{
		Number: issue.GetNumber(),
		Title:  issue.GetTitle(),
		URL:    issue.GetHTMLURL(),
	}, nil
}
