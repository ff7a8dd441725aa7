package pr

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tomasalvarez/resumate/internal/config"
	"github.com/tomasalvarez/resumate/internal/domain/ports"
	"github.com/tomasalvarez/resumate/internal/i18n"
)

type SummarizeCommandFactory struct {
	prService ports.PRService
}

func NewSummarizeCommandFactory(prService ports.PRService) *SummarizeCommandFactory {
	return &SummarizeCommandFactory{prService: prService}
}

func (f *SummarizeCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "summarize-pr",
		Aliases: []string{"pr"},
		Usage:   t.GetMessage("pr_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "number",
				Aliases:  []string{"p"},
				Usage:    t.GetMessage("pr_number_flag_usage", 0, nil),
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			prNumber := int(command.Int("number"))

			progress := func(msg string) {
				fmt.Println(msg)
			}

			summary, err := f.prService.SummarizePR(ctx, prNumber, progress)
			if err != nil {
				return err
			}

			fmt.Println(t.GetMessage("pr_updated", 0, map[string]interface{}{
				"Number": prNumber,
				"Title":  summary.Title,
			}))
			return nil
		},
	}
}
