package config

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	cfg "github.com/tomasalvarez/resumate/internal/config"
	"github.com/tomasalvarez/resumate/internal/i18n"
)

type ConfigCommandFactory struct{}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{}
}

func (f *ConfigCommandFactory) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: t.GetMessage("config_command_usage", 0, nil),
		Commands: []*cli.Command{
			f.showCommand(t, config),
			f.setLangCommand(t, config),
			f.setAPIKeyCommand(t, config),
			f.setGitHubCommand(t, config),
		},
	}
}

func (f *ConfigCommandFactory) showCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			fmt.Printf("%s:\n", t.GetMessage("current_config", 0, nil))
			fmt.Printf("  language: %s\n", config.Language)
			fmt.Printf("  model: %s\n", config.Model)
			fmt.Printf("  suggestions: %d\n", config.SuggestionsCount)
			fmt.Printf("  gemini_api_key: %s\n", maskSecret(config.GeminiAPIKey))
			fmt.Printf("  github: %s/%s (token: %s)\n", config.GitHub.Owner, config.GitHub.Repo, maskSecret(config.GitHub.Token))
			return nil
		},
	}
}

func (f *ConfigCommandFactory) setLangCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-lang",
		Usage:     t.GetMessage("config_set_lang_usage", 0, nil),
		ArgsUsage: "<lang>",
		Action: func(ctx context.Context, command *cli.Command) error {
			lang := command.Args().First()
			if err := t.SetLanguage(lang); err != nil {
				return err
			}
			config.Language = lang
			if err := cfg.SaveConfig(config); err != nil {
				return err
			}
			fmt.Println(t.GetMessage("config_saved", 0, nil))
			return nil
		},
	}
}

func (f *ConfigCommandFactory) setAPIKeyCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-api-key",
		Usage:     t.GetMessage("config_set_api_key_usage", 0, nil),
		ArgsUsage: "<key>",
		Action: func(ctx context.Context, command *cli.Command) error {
			key := command.Args().First()
			if key == "" {
				return fmt.Errorf("%s", t.GetMessage("error_missing_api_key", 0, nil))
			}
			config.GeminiAPIKey = key
			if err := cfg.SaveConfig(config); err != nil {
				return err
			}
			fmt.Println(t.GetMessage("config_saved", 0, nil))
			return nil
		},
	}
}

func (f *ConfigCommandFactory) setGitHubCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-github",
		Usage:     t.GetMessage("config_set_github_usage", 0, nil),
		ArgsUsage: "<owner> <repo> <token>",
		Action: func(ctx context.Context, command *cli.Command) error {
			args := command.Args()
			if args.Len() < 3 {
				return fmt.Errorf("%s", t.GetMessage("error_github_not_configured", 0, nil))
			}
			config.GitHub.Owner = args.Get(0)
			config.GitHub.Repo = args.Get(1)
			config.GitHub.Token = args.Get(2)
			if err := cfg.SaveConfig(config); err != nil {
				return err
			}
			fmt.Println(t.GetMessage("config_saved", 0, nil))
			return nil
		},
	}
}

func maskSecret(secret string) string {
	if secret == "" {
		return "(not set)"
	}
	if len(secret) <= 4 {
		return "****"
	}
	return "****" + secret[len(secret)-4:]
}
