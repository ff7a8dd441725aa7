package handler

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	apperrors "github.com/tomasalvarez/resumate/internal/domain/errors"
	"github.com/tomasalvarez/resumate/internal/domain/models"
	"github.com/tomasalvarez/resumate/internal/domain/ports"
	"github.com/tomasalvarez/resumate/internal/i18n"
)

var _ ports.CommitHandler = (*SuggestionHandler)(nil)

// SuggestionHandler muestra las sugerencias de commit y concreta la elegida.
type SuggestionHandler struct {
	gitService ports.GitService
	t          *i18n.Translations
	in         io.Reader
	out        io.Writer
}

func NewSuggestionHandler(git ports.GitService, t *i18n.Translations) *SuggestionHandler {
	return &SuggestionHandler{
		gitService: git,
		t:          t,
		in:         os.Stdin,
		out:        os.Stdout,
	}
}

// NewSuggestionHandlerWithIO permite inyectar entrada y salida, pensado para tests.
func NewSuggestionHandlerWithIO(git ports.GitService, t *i18n.Translations, in io.Reader, out io.Writer) *SuggestionHandler {
	return &SuggestionHandler{
		gitService: git,
		t:          t,
		in:         in,
		out:        out,
	}
}

func (h *SuggestionHandler) HandleSuggestions(ctx context.Context, suggestions []models.CommitSuggestion) error {
	h.displaySuggestions(suggestions)
	return h.handleSelection(ctx, suggestions)
}

func (h *SuggestionHandler) displaySuggestions(suggestions []models.CommitSuggestion) {
	for i, suggestion := range suggestions {
		fmt.Fprintf(h.out, "\n=========[ %d ]=========\n", i+1)
		fmt.Fprintf(h.out, "Commit: %s\n", suggestion.CommitTitle)
		if suggestion.Explanation != "" {
			fmt.Fprintf(h.out, "%s\n", suggestion.Explanation)
		}
		if len(suggestion.Files) > 0 {
			fmt.Fprintln(h.out, "Archivos:")
			for _, file := range suggestion.Files {
				fmt.Fprintf(h.out, "  - %s\n", file)
			}
		}
	}

	fmt.Fprintln(h.out, h.t.GetMessage("select_suggestion", 0, nil))
}

func (h *SuggestionHandler) handleSelection(ctx context.Context, suggestions []models.CommitSuggestion) error {
	reader := bufio.NewReader(h.in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return apperrors.New(apperrors.CodeInvalidRequest, "could not read selection", err)
	}

	line = strings.TrimSpace(line)
	selection, err := strconv.Atoi(line)
	if err != nil || selection < 0 || selection > len(suggestions) {
		return apperrors.NewWarning(apperrors.CodeInvalidRequest, h.t.GetMessage("invalid_selection", 0, map[string]interface{}{
			"Value": line,
		}), err)
	}

	if selection == 0 {
		fmt.Fprintln(h.out, h.t.GetMessage("operation_cancelled", 0, nil))
		return nil
	}

	if !h.gitService.HasStagedChanges(ctx) {
		return apperrors.NewWarning(apperrors.CodeGit, h.t.GetMessage("no_staged_changes", 0, nil), nil)
	}

	chosen := suggestions[selection-1]
	if err := h.gitService.CreateCommit(ctx, chosen.CommitTitle); err != nil {
		return err
	}

	fmt.Fprintf(h.out, "%s\n  %s\n", h.t.GetMessage("commit_created", 0, nil), chosen.CommitTitle)
	return nil
}
