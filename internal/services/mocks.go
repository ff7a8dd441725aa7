package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tomasalvarez/resumate/internal/domain/models"
)

type (
	MockGitService struct {
		mock.Mock
	}

	MockChunkSummarizer struct {
		mock.Mock
	}

	MockCommitSummarizer struct {
		mock.Mock
	}

	MockPRSummarizer struct {
		mock.Mock
	}

	MockIssueGenerator struct {
		mock.Mock
	}

	MockVCSClient struct {
		mock.Mock
	}

	MockDiffSummarizer struct {
		mock.Mock
	}
)

func (m *MockGitService) HasStagedChanges(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *MockGitService) GetChangedFiles(ctx context.Context) ([]models.GitChange, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.GitChange), args.Error(1)
}

func (m *MockGitService) GetDiff(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGitService) GetFileDiffs(ctx context.Context) ([]models.FileDiff, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.FileDiff), args.Error(1)
}

func (m *MockGitService) CreateCommit(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockGitService) GetCurrentBranch(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGitService) GetRepoInfo(ctx context.Context) (string, string, error) {
	args := m.Called(ctx)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockChunkSummarizer) SummarizeChunk(ctx context.Context, chunkText string, lang string) (string, error) {
	args := m.Called(ctx, chunkText, lang)
	return args.String(0), args.Error(1)
}

func (m *MockCommitSummarizer) GenerateSuggestions(ctx context.Context, info models.CommitInfo, count int) ([]models.CommitSuggestion, error) {
	args := m.Called(ctx, info, count)
	return args.Get(0).([]models.CommitSuggestion), args.Error(1)
}

func (m *MockPRSummarizer) GeneratePRSummary(ctx context.Context, prompt string) (models.PRSummary, error) {
	args := m.Called(ctx, prompt)
	return args.Get(0).(models.PRSummary), args.Error(1)
}

func (m *MockIssueGenerator) GenerateIssueContent(ctx context.Context, request models.IssueRequest) (models.IssueContent, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(models.IssueContent), args.Error(1)
}

func (m *MockVCSClient) GetPR(ctx context.Context, prNumber int) (models.PRData, error) {
	args := m.Called(ctx, prNumber)
	return args.Get(0).(models.PRData), args.Error(1)
}

func (m *MockVCSClient) UpdatePR(ctx context.Context, prNumber int, summary models.PRSummary) error {
	args := m.Called(ctx, prNumber, summary)
	return args.Error(0)
}

func (m *MockVCSClient) CreateIssue(ctx context.Context, content models.IssueContent) (models.Issue, error) {
	args := m.Called(ctx, content)
	return args.Get(0).(models.Issue), args.Error(1)
}

func (m *MockDiffSummarizer) Summarize(ctx context.Context, files []models.FileDiff, lang string) (models.SummaryReport, error) {
	args := m.Called(ctx, files, lang)
	return args.Get(0).(models.SummaryReport), args.Error(1)
}
