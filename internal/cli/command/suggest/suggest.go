package suggest

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tomasalvarez/resumate/internal/config"
	"github.com/tomasalvarez/resumate/internal/domain/ports"
	"github.com/tomasalvarez/resumate/internal/i18n"
)

type SuggestCommandFactory struct {
	commitService ports.CommitService
	commitHandler ports.CommitHandler
}

func NewSuggestCommandFactory(commitService ports.CommitService, commitHandler ports.CommitHandler) *SuggestCommandFactory {
	return &SuggestCommandFactory{
		commitService: commitService,
		commitHandler: commitHandler,
	}
}

func (f *SuggestCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "suggest",
		Aliases: []string{"s"},
		Usage:   t.GetMessage("suggest_command_usage", 0, nil),
		Flags:   f.createFlags(cfg, t),
		Action:  f.createAction(cfg, t),
	}
}

func (f *SuggestCommandFactory) createFlags(cfg *config.Config, t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Value:   int64(cfg.SuggestionsCount),
			Usage:   t.GetMessage("suggest_count_flag_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:    "lang",
			Aliases: []string{"l"},
			Value:   cfg.Language,
			Usage:   t.GetMessage("suggest_lang_flag_usage", 0, nil),
		},
	}
}

func (f *SuggestCommandFactory) createAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		count := command.Int("count")
		if count < 1 || count > 10 {
			msg := t.GetMessage("invalid_suggestions_count", 0, map[string]interface{}{
				"Min": 1,
				"Max": 10,
			})
			return fmt.Errorf("%s", msg)
		}

		fmt.Println(t.GetMessage("analyzing_changes", 0, nil))

		progress := func(msg string) {
			fmt.Println(msg)
		}

		suggestions, err := f.commitService.GenerateSuggestions(ctx, int(count), progress)
		if err != nil {
			return err
		}

		return f.commitHandler.HandleSuggestions(ctx, suggestions)
	}
}
