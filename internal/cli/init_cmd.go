package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dreambig/appgen/internal/application"
	"github.com/dreambig/appgen/internal/cli/formatter"
	"github.com/dreambig/appgen/internal/mapper"
)

func newInitCmd(app *App) *cobra.Command {
	var (
		noInput bool
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "init <data-file>",
		Short: "Write a skeleton application data file",
		Long: `Writes an application data file with every field present and blank.
When attached to a terminal it first asks for the project name,
organization name, volunteer count and SDGs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				} else if !errors.Is(err, os.ErrNotExist) {
					return err
				}
			}

			var answers initAnswers
			if !noInput && app.interactive() {
				if err := initForm(&answers).RunWithContext(cmd.Context()); err != nil {
					return fmt.Errorf("init cancelled: %w", err)
				}
			}

			raw, err := application.Encode(skeleton(answers))
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, raw, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("已建立申請資料檔："+path))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noInput, "no-input", false, "do not prompt; write an empty skeleton")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

// skeleton returns application data with every optional record present so
// the written file shows the full shape of the input.
func skeleton(a initAnswers) *application.ApplicationData {
	group := func() *application.TargetGroup {
		return &application.TargetGroup{Types: []application.Str{}}
	}

	org := &application.Organization{
		FullName: application.Str(strings.TrimSpace(a.Organization)),
		ServiceTargets: &application.ServiceTargets{
			Children: group(),
			Youth:    group(),
			Adults:   group(),
			Elderly:  group(),
			Other:    &application.OtherTarget{},
		},
		Financial: &application.Financial{
			CorporateSponsorship: &application.Sponsorship{},
			Other:                &application.OtherFunding{},
		},
	}
	if n, err := strconv.Atoi(a.Volunteers); err == nil {
		org.Volunteers = application.Number(float64(n))
	}

	meetings := mapper.Meetings()
	attendees := make(map[string][]application.Attendee, len(meetings))
	for _, m := range meetings {
		attendees[m.Key] = make([]application.Attendee, m.Seats)
	}

	sdgs := a.SDGs
	if sdgs == nil {
		sdgs = []int{}
	}

	return &application.ApplicationData{
		ProjectName:  application.Str(strings.TrimSpace(a.ProjectName)),
		Organization: org,
		SDGs:         sdgs,
		Budget:       []application.BudgetItem{{}},
		Attendees:    attendees,
	}
}
