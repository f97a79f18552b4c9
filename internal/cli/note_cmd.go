package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/plannerhub/internal/cli/formatter"
	"github.com/alexanderramin/plannerhub/internal/domain"
	"github.com/alexanderramin/plannerhub/internal/service"
	"github.com/spf13/cobra"
)

const noteWidth = 80

func newNoteCmd(app *App) *cobra.Command {
	var flags sectionFlags

	cmd := &cobra.Command{
		Use:     "note",
		Aliases: []string{"notes"},
		Short:   "Manage notes",
	}

	flags.register(cmd.PersistentFlags(), domain.NotesItemID, "section", "Note section (defaults to the first one)")

	cmd.AddCommand(
		newNoteListCmd(app, &flags),
		newNoteShowCmd(app, &flags),
		newNoteAddCmd(app, &flags),
		newNoteEditCmd(app, &flags),
		newNoteRemoveCmd(app, &flags),
	)

	return cmd
}

// findNote returns the note with id and the title of its section.
func findNote(app *App, flags *sectionFlags, id string) (domain.NoteEntry, string, error) {
	sections, err := app.Notes.Sections(flags.item)
	if err != nil {
		return domain.NoteEntry{}, "", err
	}
	for _, s := range sections {
		if flags.section != "" && s.Title != flags.section {
			continue
		}
		for _, e := range s.Entries {
			if note, ok := e.(domain.NoteEntry); ok && note.ID == id {
				return note, s.Title, nil
			}
		}
	}
	return domain.NoteEntry{}, "", fmt.Errorf("%w: %s", service.ErrEntryNotFound, id)
}

func newNoteListCmd(app *App, flags *sectionFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List notes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sections, err := app.Notes.Sections(flags.item)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNotes(sections))
			return nil
		},
	}
}

func newNoteShowCmd(app *App, flags *sectionFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a note, rendering its description as markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			note, _, err := findNote(app, flags, args[0])
			if err != nil {
				return err
			}
			body := note.Description
			if app.IsInteractive {
				settings, err := app.Settings.Get()
				if err != nil {
					return err
				}
				body = formatter.RenderMarkdown(body, noteWidth, settings.DarkModeEnabled)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNote(note, body))
			return nil
		},
	}
}

func newNoteAddCmd(app *App, flags *sectionFlags) *cobra.Command {
	var body string

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Add a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			note, err := app.Notes.Add(cmd.Context(), flags.item, flags.section, args[0], body)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added note %s %s\n", formatter.Bold(note.Title), formatter.Dim("#"+note.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&body, "body", "", "Note description (markdown)")

	return cmd
}

func newNoteEditCmd(app *App, flags *sectionFlags) *cobra.Command {
	var title, body string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change a note's title or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			note, section, err := findNote(app, flags, args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("title") {
				note.Title = title
			}
			if cmd.Flags().Changed("body") {
				note.Description = body
			}
			if err := app.Notes.Edit(cmd.Context(), flags.item, section, note.ID, note.Title, note.Description); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated note %s\n", note.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&body, "body", "", "New description")

	return cmd
}

func newNoteRemoveCmd(app *App, flags *sectionFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Delete a note",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, section, err := findNote(app, flags, args[0])
			if errors.Is(err, service.ErrEntryNotFound) {
				return nothingDeleted(cmd, "note", args[0])
			}
			if err != nil {
				return err
			}
			if err := app.Notes.Delete(cmd.Context(), flags.item, section, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted note %s\n", args[0])
			return nil
		},
	}
}
