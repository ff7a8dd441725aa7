package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/tomasalvarez/resumate/internal/domain/errors"
	"github.com/tomasalvarez/resumate/internal/domain/models"
)

func TestIssueService_CreateIssueFromChanges(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockGit := new(MockGitService)
	mockAI := new(MockIssueGenerator)
	mockDiffs := new(MockDiffSummarizer)
	mockVCS := new(MockVCSClient)
	service := NewIssueService(mockGit, mockAI, mockDiffs, mockVCS, newTestTranslations(t), "en")

	fileDiffs := []models.FileDiff{fileOfTokens("auth.go", 300)}
	report := models.SummaryReport{SummaryText: "auth flow reworked", ChunksProcessed: 1}
	content := models.IssueContent{Title: "Rework auth flow", Body: "details", Labels: []string{"feature"}}
	created := models.Issue{Number: 42, Title: content.Title, URL: "https://github.com/o/r/issues/42"}

	mockGit.On("GetFileDiffs", ctx).Return(fileDiffs, nil)
	mockDiffs.On("Summarize", ctx, fileDiffs, "en").Return(report, nil)
	mockAI.On("GenerateIssueContent", ctx, models.IssueRequest{
		Summary:     "auth flow reworked",
		Description: "extra",
	}).Return(content, nil)
	mockVCS.On("CreateIssue", ctx, content).Return(created, nil)

	// Act
	issue, err := service.CreateIssueFromChanges(ctx, "extra", nil)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, created, issue)
	mockVCS.AssertExpectations(t)
}

func TestIssueService_NoChanges(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockGit := new(MockGitService)
	service := NewIssueService(mockGit, new(MockIssueGenerator), new(MockDiffSummarizer), new(MockVCSClient), newTestTranslations(t), "en")

	mockGit.On("GetFileDiffs", ctx).Return([]models.FileDiff{}, nil)

	// Act
	_, err := service.CreateIssueFromChanges(ctx, "", nil)

	// Assert
	require.Error(t, err)
	assert.Equal(t, apperrors.SeverityWarning, apperrors.SeverityOf(err))
}

func TestIssueService_CreateIssueError(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockGit := new(MockGitService)
	mockAI := new(MockIssueGenerator)
	mockDiffs := new(MockDiffSummarizer)
	mockVCS := new(MockVCSClient)
	service := NewIssueService(mockGit, mockAI, mockDiffs, mockVCS, newTestTranslations(t), "en")

	fileDiffs := []models.FileDiff{fileOfTokens("a.go", 10)}
	mockGit.On("GetFileDiffs", ctx).Return(fileDiffs, nil)
	mockDiffs.On("Summarize", ctx, fileDiffs, "en").Return(models.SummaryReport{SummaryText: "s", ChunksProcessed: 1}, nil)
	mockAI.On("GenerateIssueContent", ctx, models.IssueRequest{Summary: "s"}).Return(models.IssueContent{Title: "t"}, nil)
	mockVCS.On("CreateIssue", ctx, models.IssueContent{Title: "t"}).Return(models.Issue{}, errors.New("api error"))

	// Act
	_, err := service.CreateIssueFromChanges(ctx, "", nil)

	// Assert
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeVCSProvider, apperrors.CodeOf(err))
}
