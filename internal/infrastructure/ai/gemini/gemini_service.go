package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/tomasalvarez/resumate/internal/config"
	apperrors "github.com/tomasalvarez/resumate/internal/domain/errors"
	"github.com/tomasalvarez/resumate/internal/domain/models"
	"github.com/tomasalvarez/resumate/internal/domain/ports"
	"github.com/tomasalvarez/resumate/internal/i18n"
)

var (
	_ ports.ChunkSummarizer  = (*GeminiService)(nil)
	_ ports.CommitSummarizer = (*GeminiService)(nil)
	_ ports.PRSummarizer     = (*GeminiService)(nil)
	_ ports.IssueGenerator   = (*GeminiService)(nil)
	_ ports.TokenCounter     = (*GeminiService)(nil)
)

// GeminiService implementa los backends de IA de la aplicación sobre la API
// de Gemini: resumen de chunks, sugerencias de commit, resúmenes de PR y
// redacción de issues.
type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
	config *config.Config
	trans  *i18n.Translations
}

func NewGeminiService(ctx context.Context, cfg *config.Config, trans *i18n.Translations) (*GeminiService, error) {
	if cfg.GeminiAPIKey == "" {
		msg := trans.GetMessage("error_missing_api_key", 0, nil)
		return nil, apperrors.New(apperrors.CodeConfig, msg, nil)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		msg := trans.GetMessage("error_gemini_client", 0, map[string]interface{}{
			"Error": err.Error(),
		})
		return nil, apperrors.New(apperrors.CodeAIProvider, msg, err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SetTemperature(0.3)

	return &GeminiService{
		client: client,
		model:  model,
		config: cfg,
		trans:  trans,
	}, nil
}

// Close libera el cliente subyacente.
func (s *GeminiService) Close() error {
	return s.client.Close()
}

// SummarizeChunk resume una porción del diff. Una respuesta vacía del modelo
// se retorna como cadena vacía sin error: es el caller quien decide qué
// significa la ausencia de resumen.
func (s *GeminiService) SummarizeChunk(ctx context.Context, chunkText string, lang string) (string, error) {
	prompt := fmt.Sprintf(chunkPromptTemplate(lang), chunkText)

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		msg := s.trans.GetMessage("error_generating_content", 0, map[string]interface{}{
			"Error": err.Error(),
		})
		return "", apperrors.New(apperrors.CodeSummarization, msg, err)
	}

	return strings.TrimSpace(responseText(resp)), nil
}

func (s *GeminiService) GenerateSuggestions(ctx context.Context, info models.CommitInfo, count int) ([]models.CommitSuggestion, error) {
	if count <= 0 {
		msg := s.trans.GetMessage("error_invalid_suggestion_count", 0, nil)
		return nil, apperrors.New(apperrors.CodeInvalidRequest, msg, nil)
	}

	if len(info.Files) == 0 {
		msg := s.trans.GetMessage("error_no_files", 0, nil)
		return nil, apperrors.New(apperrors.CodeInvalidRequest, msg, nil)
	}

	prompt := fmt.Sprintf(commitPromptTemplate(s.config.Language), count, formatFileList(info.Files), info.Diff)

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		msg := s.trans.GetMessage("error_generating_content", 0, map[string]interface{}{
			"Error": err.Error(),
		})
		return nil, apperrors.New(apperrors.CodeAIProvider, msg, err)
	}

	suggestions := parseSuggestions(responseText(resp))
	if len(suggestions) == 0 {
		msg := s.trans.GetMessage("error_no_suggestions", 0, nil)
		return nil, apperrors.New(apperrors.CodeAIProvider, msg, nil)
	}

	return suggestions, nil
}

func (s *GeminiService) GeneratePRSummary(ctx context.Context, prompt string) (models.PRSummary, error) {
	fullPrompt := fmt.Sprintf(prPromptTemplate(s.config.Language), prompt)

	resp, err := s.model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		msg := s.trans.GetMessage("error_generating_content", 0, map[string]interface{}{
			"Error": err.Error(),
		})
		return models.PRSummary{}, apperrors.New(apperrors.CodeAIProvider, msg, err)
	}

	summary, ok := parsePRSummary(responseText(resp))
	if !ok {
		msg := s.trans.GetMessage("error_no_suggestions", 0, nil)
		return models.PRSummary{}, apperrors.New(apperrors.CodeAIProvider, msg, nil)
	}

	return summary, nil
}

func (s *GeminiService) GenerateIssueContent(ctx context.Context, request models.IssueRequest) (models.IssueContent, error) {
	prompt := fmt.Sprintf(issuePromptTemplate(s.config.Language), request.Summary, request.Description)

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		msg := s.trans.GetMessage("error_generating_content", 0, map[string]interface{}{
			"Error": err.Error(),
		})
		return models.IssueContent{}, apperrors.New(apperrors.CodeAIProvider, msg, err)
	}

	content, ok := parseIssueContent(responseText(resp))
	if !ok {
		msg := s.trans.GetMessage("error_no_suggestions", 0, nil)
		return models.IssueContent{}, apperrors.New(apperrors.CodeAIProvider, msg, nil)
	}

	return content, nil
}

// CountTokens cuenta los tokens de un contenido sin invocar la generación.
func (s *GeminiService) CountTokens(ctx context.Context, content string) (int, error) {
	resp, err := s.model.CountTokens(ctx, genai.Text(content))
	if err != nil {
		return 0, err
	}
	return int(resp.TotalTokens), nil
}

func formatFileList(files []string) string {
	formatted := make([]string, len(files))
	for i, file := range files {
		formatted[i] = fmt.Sprintf("- %s", file)
	}
	return strings.Join(formatted, "\n")
}

// responseText concatena las partes de texto de la respuesta de Gemini.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return sb.String()
}
