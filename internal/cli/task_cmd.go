package cli

import (
	"fmt"

	"github.com/alexanderramin/taskmaster/internal/cli/formatter"
	"github.com/alexanderramin/taskmaster/internal/workspace"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks"},
		Short:   "Manage the current class's tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskRenameCmd(app),
		newTaskDeleteCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add [NAME...]",
		Short: "Add a task; it becomes the active task",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(cmd, app)
			if err != nil {
				return err
			}
			if ws.CurrentClass() == nil {
				return workspace.ErrNoClassSelected
			}
			name, err := nameFromArgs(app, args, "task")
			if err != nil {
				return err
			}
			task, err := ws.AddTask(name)
			if err != nil {
				return err
			}
			if err := saveWorkspace(cmd.Context(), app, ws); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added task %s %s to %s\n",
				formatter.Bold(task.Name), formatter.Dim("["+formatter.TruncID(task.ID)+"]"), ws.CurrentClass().Name)
			return nil
		},
	}
}

func newTaskListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks in creation order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(cmd, app)
			if err != nil {
				return err
			}
			c := ws.CurrentClass()
			if c == nil {
				return workspace.ErrNoClassSelected
			}
			if err := saveWorkspace(cmd.Context(), app, ws); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskList(c, ws.ActiveTaskID()))
			return nil
		},
	}
}

func newTaskRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename TASK NEW_NAME...",
		Short: "Rename a task",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(cmd, app)
			if err != nil {
				return err
			}
			taskID, err := ws.ResolveTask(args[0])
			if err != nil {
				return err
			}
			old := ws.CurrentClass().Task(taskID).Name
			if err := ws.RenameTask(taskID, joinArgs(args[1:])); err != nil {
				return err
			}
			if err := saveWorkspace(cmd.Context(), app, ws); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %s\n", old, formatter.Bold(ws.CurrentClass().Task(taskID).Name))
			return nil
		},
	}
}

func newTaskDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete TASK",
		Aliases: []string{"rm"},
		Short:   "Delete a task and every grade recorded for it",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(cmd, app)
			if err != nil {
				return err
			}
			taskID, err := ws.ResolveTask(joinArgs(args))
			if err != nil {
				return err
			}
			name := ws.CurrentClass().Task(taskID).Name

			ok, err := confirmOrYes(app, yes,
				fmt.Sprintf("Delete %q? All grades for it will be lost.", name))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}

			if err := ws.DeleteTask(taskID); err != nil {
				return err
			}
			if err := saveWorkspace(cmd.Context(), app, ws); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", formatter.Bold(name))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
