package cli

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/alexanderramin/plannerhub/internal/cli/formatter"
	"github.com/alexanderramin/plannerhub/internal/domain"
	"github.com/alexanderramin/plannerhub/internal/service"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "schedule",
		Aliases: []string{"agenda"},
		Short:   "Manage the agenda",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listSchedule(cmd, app)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List appointments in time order",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return listSchedule(cmd, app)
			},
		},
		newScheduleAddCmd(app),
		newScheduleEditCmd(app),
		newScheduleRemoveCmd(app),
	)

	return cmd
}

func listSchedule(cmd *cobra.Command, app *App) error {
	entries, err := app.Schedule.List()
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSchedule(entries, app.now()))
	return nil
}

func parseWhenFlag(s string) (time.Time, error) {
	at, ok := domain.ParseWhen(s, time.Local)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid --when %q: expected DD/MM/YYYY HH:MMam", s)
	}
	return at, nil
}

func newScheduleAddCmd(app *App) *cobra.Command {
	var (
		when     string
		priority int
	)

	cmd := &cobra.Command{
		Use:   "add TEXT...",
		Short: "Add an appointment",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if when == "" {
				return service.ErrMissingWhen
			}
			at, err := parseWhenFlag(when)
			if err != nil {
				return err
			}
			var p *int
			if cmd.Flags().Changed("priority") {
				p = &priority
			}
			e, err := app.Schedule.Add(cmd.Context(), at, strings.Join(args, " "), p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Scheduled %s at %s %s\n", e.Text, e.DateAndTime, formatter.Dim("#"+e.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&when, "when", "", "Date and time, e.g. 05/10/2025 11:00am")
	cmd.Flags().IntVar(&priority, "priority", 0, "Priority, 1 is the highest")

	return cmd
}

func newScheduleEditCmd(app *App) *cobra.Command {
	var (
		when     string
		text     string
		priority int
		clearPri bool
	)

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Schedule.List()
			if err != nil {
				return err
			}
			var cur *domain.ScheduleEntry
			for i := range entries {
				if entries[i].ID == args[0] {
					cur = &entries[i]
					break
				}
			}
			if cur == nil {
				return fmt.Errorf("%w: %s", service.ErrEntryNotFound, args[0])
			}

			at, p, t := cur.At, cur.Priority, cur.Text
			if cmd.Flags().Changed("when") {
				if at, err = parseWhenFlag(when); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("text") {
				t = text
			}
			switch {
			case clearPri:
				p = nil
			case cmd.Flags().Changed("priority"):
				p = &priority
			}
			if err := app.Schedule.Edit(cmd.Context(), cur.ID, at, t, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated appointment %s\n", cur.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&when, "when", "", "New date and time")
	cmd.Flags().StringVar(&text, "text", "", "New description")
	cmd.Flags().IntVar(&priority, "priority", 0, "New priority")
	cmd.Flags().BoolVar(&clearPri, "no-priority", false, "Remove the priority")

	return cmd
}

func newScheduleRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Delete an appointment",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Schedule.List()
			if err != nil {
				return err
			}
			if !slices.ContainsFunc(entries, func(e domain.ScheduleEntry) bool { return e.ID == args[0] }) {
				return nothingDeleted(cmd, "appointment", args[0])
			}
			if err := app.Schedule.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted appointment %s\n", args[0])
			return nil
		},
	}
}
