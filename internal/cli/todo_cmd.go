package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/plannerhub/internal/cli/formatter"
	"github.com/alexanderramin/plannerhub/internal/domain"
	"github.com/alexanderramin/plannerhub/internal/scheduler"
	"github.com/alexanderramin/plannerhub/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// sectionFlags are shared by the todo and note subcommands.
type sectionFlags struct {
	item    string
	section string
}

func (f *sectionFlags) register(fs *pflag.FlagSet, defaultItem, sectionName, sectionUsage string) {
	fs.StringVar(&f.item, "item", defaultItem, "Menu item id")
	fs.StringVar(&f.section, sectionName, "", sectionUsage)
}

// locate returns the title of the section holding id. An explicit section
// wins over the lookup.
func (f *sectionFlags) locate(sections []domain.Section, id string) (string, error) {
	if f.section != "" {
		return f.section, nil
	}
	if title, ok := sectionOf(sections, "", id); ok {
		return title, nil
	}
	return "", fmt.Errorf("%w: %s", service.ErrEntryNotFound, id)
}

// sectionOf returns the title of the section holding id. A non-empty only
// restricts the search to that section.
func sectionOf(sections []domain.Section, only, id string) (string, bool) {
	for _, s := range sections {
		if only != "" && !strings.EqualFold(s.Title, only) {
			continue
		}
		for _, e := range s.Entries {
			if e.EntryID() == id {
				return s.Title, true
			}
		}
	}
	return "", false
}

// nothingDeleted reports a delete whose id matched no entry. Deleting a
// missing entry is not an error.
func nothingDeleted(cmd *cobra.Command, kind, id string) error {
	fmt.Fprintf(cmd.OutOrStdout(), "Nothing to delete: no %s %s\n", kind, id)
	return nil
}

func newTodoCmd(app *App) *cobra.Command {
	var flags sectionFlags

	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage the weekly to-do lists",
	}

	flags.register(cmd.PersistentFlags(), domain.ProTodoItemID, "day", "Weekday section, e.g. MONDAY (defaults to today)")

	cmd.AddCommand(
		newTodoListCmd(app, &flags),
		newTodoAddCmd(app, &flags),
		newTodoEditCmd(app, &flags),
		newTodoDoneCmd(app, &flags),
		newTodoRemoveCmd(app, &flags),
	)

	return cmd
}

func (f *sectionFlags) day(app *App) string {
	if f.section != "" {
		return strings.ToUpper(strings.TrimSpace(f.section))
	}
	return scheduler.WeekdayTitle(app.now())
}

func newTodoListCmd(app *App, flags *sectionFlags) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the tasks of a day, or the whole week with --all",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sections, err := app.Todos.Sections(flags.item)
			if err != nil {
				return err
			}
			only := flags.day(app)
			if all {
				only = ""
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTodoSections(sections, only))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Show every day of the week")

	return cmd
}

func newTodoAddCmd(app *App, flags *sectionFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "add TEXT...",
		Short: "Add a task to a day",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day := flags.day(app)
			e, err := app.Todos.Add(cmd.Context(), flags.item, day, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added to %s: %s\n", day, formatter.TodoLine(e))
			return nil
		},
	}
}

// todoTarget resolves the section for an id-addressed subcommand.
func todoTarget(app *App, flags *sectionFlags, id string) (string, error) {
	sections, err := app.Todos.Sections(flags.item)
	if err != nil {
		return "", err
	}
	day, err := flags.locate(sections, id)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(day), nil
}

func newTodoEditCmd(app *App, flags *sectionFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "edit ID TEXT...",
		Short: "Change the text of a task",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := todoTarget(app, flags, args[0])
			if err != nil {
				return err
			}
			if err := app.Todos.Edit(cmd.Context(), flags.item, day, args[0], strings.Join(args[1:], " ")); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", args[0])
			return nil
		},
	}
}

func newTodoDoneCmd(app *App, flags *sectionFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "done ID",
		Aliases: []string{"toggle"},
		Short:   "Toggle a task between done and open",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := todoTarget(app, flags, args[0])
			if err != nil {
				return err
			}
			if err := app.Todos.Toggle(cmd.Context(), flags.item, day, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Toggled task %s\n", args[0])
			return nil
		},
	}
}

func newTodoRemoveCmd(app *App, flags *sectionFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sections, err := app.Todos.Sections(flags.item)
			if err != nil {
				return err
			}
			day, ok := sectionOf(sections, flags.section, args[0])
			if !ok {
				return nothingDeleted(cmd, "task", args[0])
			}
			if err := app.Todos.Delete(cmd.Context(), flags.item, day, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", args[0])
			return nil
		},
	}
}
