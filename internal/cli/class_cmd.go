package cli

import (
	"fmt"

	"github.com/alexanderramin/taskmaster/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newClassCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "class",
		Aliases: []string{"classes"},
		Short:   "Manage classes",
	}

	cmd.AddCommand(
		newClassAddCmd(app),
		newClassListCmd(app),
		newClassUseCmd(app),
	)

	return cmd
}

func newClassAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add [NAME...]",
		Short: "Create a class and make it current",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(cmd, app)
			if err != nil {
				return err
			}
			name, err := nameFromArgs(app, args, "class")
			if err != nil {
				return err
			}
			c, err := ws.CreateClass(name)
			if err != nil {
				return err
			}
			if err := saveWorkspace(cmd.Context(), app, ws); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created class %s %s\n", formatter.Bold(c.Name), formatter.Dim("["+formatter.TruncID(c.ID)+"]"))
			return nil
		},
	}
}

func newClassListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List classes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(cmd, app)
			if err != nil {
				return err
			}
			if err := saveWorkspace(cmd.Context(), app, ws); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatClassList(ws.Classes(), ws.CurrentClassID()))
			return nil
		},
	}
}

func newClassUseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "use CLASS",
		Short: "Switch the current class",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(cmd, app)
			if err != nil {
				return err
			}
			id, err := ws.ResolveClass(joinArgs(args))
			if err != nil {
				return err
			}
			if err := ws.SelectClass(id); err != nil {
				return err
			}
			if err := saveWorkspace(cmd.Context(), app, ws); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Current class: %s\n", formatter.Bold(ws.CurrentClass().Name))
			return nil
		},
	}
}
