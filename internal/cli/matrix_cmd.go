package cli

import (
	"fmt"

	"github.com/alexanderramin/taskmaster/internal/cli/formatter"
	"github.com/alexanderramin/taskmaster/internal/workspace"
	"github.com/spf13/cobra"
)

func newMatrixCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "matrix",
		Aliases: []string{"overview"},
		Short:   "Show every student's grade on every task",
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
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMatrix(c.Name, ws.Overview()))
			return nil
		},
	}
}
