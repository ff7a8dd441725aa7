package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	configcmd "github.com/tomasalvarez/resumate/internal/cli/command/config"
	"github.com/tomasalvarez/resumate/internal/cli/command/handler"
	"github.com/tomasalvarez/resumate/internal/cli/command/issues"
	"github.com/tomasalvarez/resumate/internal/cli/command/pr"
	"github.com/tomasalvarez/resumate/internal/cli/command/suggest"
	"github.com/tomasalvarez/resumate/internal/cli/registry"
	cfg "github.com/tomasalvarez/resumate/internal/config"
	apperrors "github.com/tomasalvarez/resumate/internal/domain/errors"
	"github.com/tomasalvarez/resumate/internal/i18n"
	"github.com/tomasalvarez/resumate/internal/infrastructure/ai/gemini"
	gitinfra "github.com/tomasalvarez/resumate/internal/infrastructure/git"
	githubvcs "github.com/tomasalvarez/resumate/internal/infrastructure/vcs/github"
	"github.com/tomasalvarez/resumate/internal/logger"
	"github.com/tomasalvarez/resumate/internal/services"
	"github.com/tomasalvarez/resumate/internal/version"
)

func main() {
	appLog := logger.New(os.Getenv("RESUMATE_DEBUG") != "", os.Getenv("RESUMATE_VERBOSE") != "")

	app, err := initializeApp(appLog)
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		// La severidad del error decide cómo se notifica al usuario.
		switch apperrors.SeverityOf(err) {
		case apperrors.SeverityWarning:
			fmt.Fprintf(os.Stderr, "⚠️  %v\n", err)
		default:
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
			os.Exit(1)
		}
	}
}

func initializeApp(appLog *slog.Logger) (*cli.Command, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("no se pudo obtener el directorio del usuario: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, fmt.Errorf("error al cargar las traducciones: %w", err)
	}

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("config", configcmd.NewConfigCommandFactory()); err != nil {
		return nil, err
	}

	ctx := context.Background()

	aiService, err := gemini.NewGeminiService(ctx, cfgApp, translations)
	if err != nil {
		// Sin IA solo queda el comando config; el resto necesita el backend.
		log.Printf("Warning: la IA no está configurada: %v", err)
		log.Println("Configurala con 'resumate config set-api-key <key>'")
		return buildApp(translations, registerCommand), nil
	}

	gitService := gitinfra.NewGitService()
	diffParser := gitinfra.NewDiffParser()

	progress := func(msg string) {
		fmt.Println(msg)
	}
	diffSummarizer := services.NewDiffSummaryService(aiService, translations, appLog, progress)

	commitService := services.NewCommitService(gitService, aiService, diffSummarizer, translations, appLog, cfgApp.Language)
	commitHandler := handler.NewSuggestionHandler(gitService, translations)

	owner, repo := cfgApp.GitHub.Owner, cfgApp.GitHub.Repo
	if owner == "" || repo == "" {
		// Si no está configurado se intenta deducir del remoto origin.
		if detectedOwner, detectedRepo, err := gitService.GetRepoInfo(ctx); err == nil {
			owner, repo = detectedOwner, detectedRepo
		}
	}
	vcsClient := githubvcs.NewGitHubClient(owner, repo, cfgApp.GitHub.Token, translations)

	prService := services.NewPRService(vcsClient, aiService, diffSummarizer, diffParser, translations, appLog, cfgApp.Language)
	issueService := services.NewIssueService(gitService, aiService, diffSummarizer, vcsClient, translations, cfgApp.Language)

	if err := registerCommand.Register("suggest", suggest.NewSuggestCommandFactory(commitService, commitHandler)); err != nil {
		return nil, err
	}
	if err := registerCommand.Register("summarize-pr", pr.NewSummarizeCommandFactory(prService)); err != nil {
		return nil, err
	}
	if err := registerCommand.Register("issue", issues.NewIssuesCommandFactory(issueService)); err != nil {
		return nil, err
	}

	return buildApp(translations, registerCommand), nil
}

func buildApp(translations *i18n.Translations, registerCommand *registry.Registry) *cli.Command {
	return &cli.Command{
		Name:        "resumate",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Description: translations.GetMessage("app_description", 0, nil),
		Version:     version.Version,
		Commands:    registerCommand.CreateCommands(),
	}
}
