package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/taskmaster/internal/cli/formatter"
	"github.com/alexanderramin/taskmaster/internal/domain"
	"github.com/spf13/cobra"
)

func newStudentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "student",
		Aliases: []string{"students"},
		Short:   "Manage the current class roster",
	}

	cmd.AddCommand(
		newStudentImportCmd(app),
		newStudentListCmd(app),
	)

	return cmd
}

func newStudentImportCmd(app *App) *cobra.Command {
	var names string

	cmd := &cobra.Command{
		Use:   "import [FILE]",
		Short: "Append students from a .txt/.csv file or from --names",
		Long: "Names are separated by commas or newlines. Surrounding whitespace is trimmed,\n" +
			"blank entries are skipped and duplicates are kept.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && names == "" {
				return fmt.Errorf("provide a roster FILE or --names")
			}
			ws, err := loadWorkspace(cmd, app)
			if err != nil {
				return err
			}

			var added []domain.Student
			if len(args) == 1 {
				added, err = app.Roster.ImportFile(cmd.Context(), ws, args[0])
			} else {
				added, err = app.Roster.ImportText(cmd.Context(), ws, names)
			}
			if err != nil {
				return err
			}
			if err := saveWorkspace(cmd.Context(), app, ws); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(added) == 0 {
				fmt.Fprintln(out, "No names found; roster unchanged.")
				return nil
			}
			fmt.Fprintf(out, "Imported %d %s into %s\n", len(added), plural(len(added), "student"), formatter.Bold(ws.CurrentClass().Name))
			return nil
		},
	}

	cmd.Flags().StringVar(&names, "names", "", "Comma- or newline-separated names")

	return cmd
}

func newStudentListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List students with their grade on the active task",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(cmd, app)
			if err != nil {
				return err
			}
			if err := saveWorkspace(cmd.Context(), app, ws); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStudentList(ws.Tracking()))
			return nil
		},
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
