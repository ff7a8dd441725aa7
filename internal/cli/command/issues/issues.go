package issues

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tomasalvarez/resumate/internal/config"
	"github.com/tomasalvarez/resumate/internal/domain/ports"
	"github.com/tomasalvarez/resumate/internal/i18n"
)

type IssuesCommandFactory struct {
	issueService ports.IssueService
}

func NewIssuesCommandFactory(issueService ports.IssueService) *IssuesCommandFactory {
	return &IssuesCommandFactory{issueService: issueService}
}

func (f *IssuesCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "issue",
		Aliases: []string{"i"},
		Usage:   t.GetMessage("issue_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "context",
				Aliases: []string{"c"},
				Usage:   t.GetMessage("issue_context_flag_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			fmt.Println(t.GetMessage("analyzing_changes", 0, nil))

			progress := func(msg string) {
				fmt.Println(msg)
			}

			issue, err := f.issueService.CreateIssueFromChanges(ctx, command.String("context"), progress)
			if err != nil {
				return err
			}

			fmt.Println(t.GetMessage("issue_created", 0, map[string]interface{}{
				"Number": issue.Number,
				"URL":    issue.URL,
			}))
			return nil
		},
	}
}
