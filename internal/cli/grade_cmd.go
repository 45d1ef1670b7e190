package cli

import (
	"fmt"

	"github.com/alexanderramin/taskmaster/internal/cli/formatter"
	"github.com/alexanderramin/taskmaster/internal/workspace"
	"github.com/spf13/cobra"
)

func newGradeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grade",
		Short: "Record student grades",
	}

	cmd.AddCommand(
		newGradeSetCmd(app),
		newGradeCycleCmd(app),
	)

	return cmd
}

// selectTaskFlag makes the --task reference the active task when given.
func selectTaskFlag(ws *workspace.Workspace, ref string) error {
	if ref == "" {
		if ws.ActiveTaskID() == "" {
			if ws.CurrentClass() == nil {
				return workspace.ErrNoClassSelected
			}
			return workspace.ErrNoActiveTask
		}
		return nil
	}
	id, err := ws.ResolveTask(ref)
	if err != nil {
		return err
	}
	return ws.SelectTask(id)
}

func newGradeSetCmd(app *App) *cobra.Command {
	var (
		grade gradeFlag
		task  string
	)

	cmd := &cobra.Command{
		Use:   "set STUDENT --grade GRADE",
		Short: "Set a student's grade on a task (default: the active task)",
		Long:  "GRADE is a code or label: N/A (Not Started), E (Excellent), G (Good), Q (Questionable), D (Deficient).",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(cmd, app)
			if err != nil {
				return err
			}
			if err := selectTaskFlag(ws, task); err != nil {
				return err
			}
			studentID, err := ws.ResolveStudent(joinArgs(args))
			if err != nil {
				return err
			}
			if err := ws.SetGrade(studentID, ws.ActiveTaskID(), grade.grade); err != nil {
				return err
			}
			if err := saveWorkspace(cmd.Context(), app, ws); err != nil {
				return err
			}
			printGrade(cmd, ws, studentID)
			return nil
		},
	}

	cmd.Flags().VarP(&grade, "grade", "g", "Grade code or label (N/A, E, G, Q, D)")
	cmd.Flags().StringVarP(&task, "task", "t", "", "Task (ID, name or ID prefix)")
	_ = cmd.MarkFlagRequired("grade")

	return cmd
}

func newGradeCycleCmd(app *App) *cobra.Command {
	var task string

	cmd := &cobra.Command{
		Use:   "cycle STUDENT",
		Short: "Advance a student's grade to the next level",
		Long:  "Steps through N/A → E → G → Q → D → N/A on the active task.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(cmd, app)
			if err != nil {
				return err
			}
			if err := selectTaskFlag(ws, task); err != nil {
				return err
			}
			studentID, err := ws.ResolveStudent(joinArgs(args))
			if err != nil {
				return err
			}
			if _, err := ws.CycleGrade(studentID); err != nil {
				return err
			}
			if err := saveWorkspace(cmd.Context(), app, ws); err != nil {
				return err
			}
			printGrade(cmd, ws, studentID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&task, "task", "t", "", "Task (ID, name or ID prefix)")

	return cmd
}

func printGrade(cmd *cobra.Command, ws *workspace.Workspace, studentID string) {
	c := ws.CurrentClass()
	s := c.Student(studentID)
	t := ws.ActiveTask()
	fmt.Fprintf(cmd.OutOrStdout(), "%s · %s: %s\n", s.Name, t.Name, formatter.GradeBadge(s.Grades.Get(t.ID)))
}
