package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tomasalvarez/resumate/internal/domain/models"
	"github.com/tomasalvarez/resumate/internal/i18n"
)

func newTestTranslations(t *testing.T) *i18n.Translations {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	return trans
}

func newTestLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, nil))
}

// fileOfTokens crea un FileDiff con el TokenCount pedido. El contenido lleva
// la ruta para poder verificar qué archivos llegaron a cada llamada.
func fileOfTokens(path string, tokens int) models.FileDiff {
	return models.FileDiff{
		Path:       path,
		Content:    "diff " + path,
		TokenCount: tokens,
		Priority:   models.PriorityMedium,
	}
}

func TestSummarize_EmptyInput(t *testing.T) {
	// Arrange
	mockAI := new(MockChunkSummarizer)
	service := NewDiffSummaryService(mockAI, newTestTranslations(t), newTestLogger(io.Discard), nil)

	// Act
	report, err := service.Summarize(context.Background(), nil, "en")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "", report.SummaryText)
	assert.Equal(t, 0, report.ChunksProcessed)
	assert.Equal(t, 0, report.ChunksFailed)
	mockAI.AssertNotCalled(t, "SummarizeChunk")
}

func TestSummarize_AllChunksSucceed(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockAI := new(MockChunkSummarizer)
	service := NewDiffSummaryService(mockAI, newTestTranslations(t), newTestLogger(io.Discard), nil)

	// Dos chunks: el primero con dos archivos chicos, el segundo con uno
	// sobredimensionado.
	files := []models.FileDiff{
		fileOfTokens("a.go", 5000),
		fileOfTokens("b.go", 5000),
		fileOfTokens("big.go", 20000),
	}

	mockAI.On("SummarizeChunk", ctx, "diff a.go\n\ndiff b.go", "en").Return("resumen uno", nil)
	mockAI.On("SummarizeChunk", ctx, "diff big.go", "en").Return("resumen dos", nil)

	// Act
	report, err := service.Summarize(ctx, files, "en")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, report.ChunksProcessed)
	assert.Equal(t, 0, report.ChunksFailed)
	assert.Equal(t, "resumen uno\n\nresumen dos", report.SummaryText)
	mockAI.AssertExpectations(t)
}

func TestSummarize_EmptyResultCountsAsChunkFailure(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockAI := new(MockChunkSummarizer)
	service := NewDiffSummaryService(mockAI, newTestTranslations(t), newTestLogger(io.Discard), nil)

	files := []models.FileDiff{
		fileOfTokens("ok.go", 10000),
		fileOfTokens("fail1.go", 6000),
		fileOfTokens("fail2.go", 6000),
	}

	mockAI.On("SummarizeChunk", ctx, "diff ok.go", "en").Return("first summary", nil).Once()
	mockAI.On("SummarizeChunk", ctx, "diff fail1.go\n\ndiff fail2.go", "en").Return("", nil).Once()

	// Act
	report, err := service.Summarize(ctx, files, "en")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, report.ChunksProcessed)
	assert.Equal(t, 1, report.ChunksFailed)
	assert.Contains(t, report.SummaryText, "first summary")
	assert.Contains(t, report.SummaryText, "fail1.go, fail2.go")
	mockAI.AssertExpectations(t)
}

func TestSummarize_BackendErrorDoesNotAbortRemainingChunks(t *testing.T) {
	// Arrange: un error del backend se convierte en falla del chunk y el
	// procesamiento continúa con los chunks siguientes.
	ctx := context.Background()
	mockAI := new(MockChunkSummarizer)
	service := NewDiffSummaryService(mockAI, newTestTranslations(t), newTestLogger(io.Discard), nil)

	files := []models.FileDiff{
		fileOfTokens("boom.go", 20000),
		fileOfTokens("ok.go", 5000),
	}

	mockAI.On("SummarizeChunk", ctx, "diff boom.go", "en").Return("", errors.New("rate limited")).Once()
	mockAI.On("SummarizeChunk", ctx, "diff ok.go", "en").Return("summary", nil).Once()

	// Act
	report, err := service.Summarize(ctx, files, "en")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, report.ChunksProcessed)
	assert.Equal(t, 1, report.ChunksFailed)
	assert.Contains(t, report.SummaryText, "boom.go")
	assert.Contains(t, report.SummaryText, "summary")
	mockAI.AssertExpectations(t)
}

func TestSummarize_BackendErrorGoesToInjectedLogger(t *testing.T) {
	// Arrange: el servicio loguea por el logger inyectado en el
	// constructor, no por el default del proceso.
	ctx := context.Background()
	mockAI := new(MockChunkSummarizer)

	var logs bytes.Buffer
	service := NewDiffSummaryService(mockAI, newTestTranslations(t), newTestLogger(&logs), nil)

	files := []models.FileDiff{fileOfTokens("boom.go", 100)}
	mockAI.On("SummarizeChunk", ctx, "diff boom.go", "en").Return("", errors.New("rate limited"))

	// Act
	_, err := service.Summarize(ctx, files, "en")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "boom.go")
	assert.Contains(t, logs.String(), "rate limited")
}

func TestSummarize_AllChunksFail(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockAI := new(MockChunkSummarizer)
	service := NewDiffSummaryService(mockAI, newTestTranslations(t), newTestLogger(io.Discard), nil)

	files := []models.FileDiff{
		fileOfTokens("a.go", 20000),
		fileOfTokens("b.go", 20000),
	}

	mockAI.On("SummarizeChunk", ctx, mock.AnythingOfType("string"), "en").Return("", nil)

	// Act
	report, err := service.Summarize(ctx, files, "en")

	// Assert: falla total pero retorno exitoso; escalar es responsabilidad
	// del caller usando los contadores.
	require.NoError(t, err)
	assert.Equal(t, 0, report.ChunksProcessed)
	assert.Equal(t, 2, report.ChunksFailed)
	assert.Contains(t, report.SummaryText, "a.go")
	assert.Contains(t, report.SummaryText, "b.go")
}

func TestSummarize_CountInvariant(t *testing.T) {
	// Arrange: mezcla de éxitos y fallas, la suma de contadores debe
	// igualar el total de chunks producidos.
	ctx := context.Background()
	mockAI := new(MockChunkSummarizer)
	service := NewDiffSummaryService(mockAI, newTestTranslations(t), newTestLogger(io.Discard), nil)

	files := []models.FileDiff{
		fileOfTokens("a.go", 20000),
		fileOfTokens("b.go", 20000),
		fileOfTokens("c.go", 20000),
	}

	mockAI.On("SummarizeChunk", ctx, "diff a.go", "en").Return("uno", nil).Once()
	mockAI.On("SummarizeChunk", ctx, "diff b.go", "en").Return("", nil).Once()
	mockAI.On("SummarizeChunk", ctx, "diff c.go", "en").Return("tres", nil).Once()

	// Act
	report, err := service.Summarize(ctx, files, "en")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, report.TotalChunks())
	assert.Equal(t, 2, report.ChunksProcessed)
	assert.Equal(t, 1, report.ChunksFailed)
}

func TestSummarize_ProgressReportedInChunkOrder(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockAI := new(MockChunkSummarizer)

	var messages []string
	progress := func(msg string) {
		messages = append(messages, msg)
	}
	service := NewDiffSummaryService(mockAI, newTestTranslations(t), newTestLogger(io.Discard), progress)

	files := []models.FileDiff{
		fileOfTokens("a.go", 20000),
		fileOfTokens("b.go", 20000),
	}

	mockAI.On("SummarizeChunk", ctx, mock.AnythingOfType("string"), "en").Return("ok", nil)

	// Act
	_, err := service.Summarize(ctx, files, "en")

	// Assert: un mensaje por chunk, en orden monótono creciente.
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.True(t, strings.Contains(messages[0], "1"))
	assert.True(t, strings.Contains(messages[1], "2"))
}

func TestSummarize_NilProgressDoesNotChangeOutcomes(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockAI := new(MockChunkSummarizer)
	withProgress := NewDiffSummaryService(mockAI, newTestTranslations(t), newTestLogger(io.Discard), func(string) {})
	withoutProgress := NewDiffSummaryService(mockAI, newTestTranslations(t), newTestLogger(io.Discard), nil)

	files := []models.FileDiff{fileOfTokens("a.go", 100)}
	mockAI.On("SummarizeChunk", ctx, "diff a.go", "en").Return("same", nil)

	// Act
	first, err1 := withProgress.Summarize(ctx, files, "en")
	second, err2 := withoutProgress.Summarize(ctx, files, "en")

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}
