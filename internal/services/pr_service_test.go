package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	apperrors "github.com/tomasalvarez/resumate/internal/domain/errors"
	"github.com/tomasalvarez/resumate/internal/domain/models"
)

// stubDiffParser es un parser determinista para tests: un archivo por línea
// "path tokens" no hace falta; directamente retorna lo configurado.
type stubDiffParser struct {
	files []models.FileDiff
}

func (p *stubDiffParser) Parse(diff string) []models.FileDiff {
	return p.files
}

func TestPRService_SummarizePR_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	prNumber := 123

	mockVCS := new(MockVCSClient)
	mockAI := new(MockPRSummarizer)
	mockDiffs := new(MockDiffSummarizer)
	parser := &stubDiffParser{files: []models.FileDiff{fileOfTokens("file.txt", 10)}}
	service := NewPRService(mockVCS, mockAI, mockDiffs, parser, newTestTranslations(t), newTestLogger(io.Discard), "en")

	prData := models.PRData{
		ID:      prNumber,
		Creator: "user1",
		Commits: []models.Commit{
			{Message: "fix: bug correction"},
			{Message: "feat: new feature"},
		},
		Diff: "diff --git a/file.txt b/file.txt",
	}

	expectedSummary := models.PRSummary{
		Title:  "Improved features",
		Body:   "Summary of changes",
		Labels: []string{"fix"},
	}

	mockVCS.On("GetPR", ctx, prNumber).Return(prData, nil)
	mockAI.On("GeneratePRSummary", ctx, mock.MatchedBy(func(prompt string) bool {
		return len(prompt) > 0
	})).Return(expectedSummary, nil)
	mockVCS.On("UpdatePR", ctx, prNumber, expectedSummary).Return(nil)

	// Act
	summary, err := service.SummarizePR(ctx, prNumber, nil)

	// Assert: diff chico, no se invoca el resumen map-reduce.
	require.NoError(t, err)
	assert.Equal(t, expectedSummary, summary)
	mockDiffs.AssertNotCalled(t, "Summarize")
	mockVCS.AssertExpectations(t)
	mockAI.AssertExpectations(t)
}

func TestPRService_SummarizePR_LargeDiffUsesMapReduce(t *testing.T) {
	// Arrange
	ctx := context.Background()
	prNumber := 7

	mockVCS := new(MockVCSClient)
	mockAI := new(MockPRSummarizer)
	mockDiffs := new(MockDiffSummarizer)
	bigFiles := []models.FileDiff{
		fileOfTokens("a.go", 10000),
		fileOfTokens("b.go", 10000),
	}
	parser := &stubDiffParser{files: bigFiles}
	service := NewPRService(mockVCS, mockAI, mockDiffs, parser, newTestTranslations(t), newTestLogger(io.Discard), "en")

	mockVCS.On("GetPR", ctx, prNumber).Return(models.PRData{ID: prNumber, Diff: "huge diff"}, nil)
	mockDiffs.On("Summarize", ctx, bigFiles, "en").Return(models.SummaryReport{
		SummaryText:     "reduced summary",
		ChunksProcessed: 2,
	}, nil)
	mockAI.On("GeneratePRSummary", ctx, mock.MatchedBy(func(prompt string) bool {
		return len(prompt) > 0
	})).Return(models.PRSummary{Title: "t", Body: "b"}, nil)
	mockVCS.On("UpdatePR", ctx, prNumber, mock.Anything).Return(nil)

	// Act
	_, err := service.SummarizePR(ctx, prNumber, nil)

	// Assert
	require.NoError(t, err)
	mockDiffs.AssertExpectations(t)
}

func TestPRService_SummarizePR_FetchError(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockVCS := new(MockVCSClient)
	service := NewPRService(mockVCS, new(MockPRSummarizer), new(MockDiffSummarizer), &stubDiffParser{}, newTestTranslations(t), newTestLogger(io.Discard), "en")

	mockVCS.On("GetPR", ctx, 99).Return(models.PRData{}, errors.New("not found"))

	// Act
	_, err := service.SummarizePR(ctx, 99, nil)

	// Assert
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeVCSProvider, apperrors.CodeOf(err))
}

func TestPRService_SummarizePR_UpdateError(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockVCS := new(MockVCSClient)
	mockAI := new(MockPRSummarizer)
	parser := &stubDiffParser{files: []models.FileDiff{fileOfTokens("x.go", 5)}}
	service := NewPRService(mockVCS, mockAI, new(MockDiffSummarizer), parser, newTestTranslations(t), newTestLogger(io.Discard), "en")

	mockVCS.On("GetPR", ctx, 5).Return(models.PRData{ID: 5, Diff: "d"}, nil)
	mockAI.On("GeneratePRSummary", ctx, mock.Anything).Return(models.PRSummary{Title: "t"}, nil)
	mockVCS.On("UpdatePR", ctx, 5, mock.Anything).Return(errors.New("forbidden"))

	// Act
	_, err := service.SummarizePR(ctx, 5, nil)

	// Assert
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeVCSProvider, apperrors.CodeOf(err))
	assert.ErrorContains(t, err, "forbidden")
}
