package cli

import (
	"fmt"

	"github.com/alexanderramin/taskmaster/internal/workspace"
	"github.com/spf13/cobra"
)

func newTrackCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "track",
		Short: "Open the interactive grade tracker for the current class",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(cmd, app)
			if err != nil {
				return err
			}
			if ws.CurrentClass() == nil {
				return workspace.ErrNoClassSelected
			}
			if !app.IsInteractive() {
				return fmt.Errorf("track needs an interactive terminal")
			}
			ctx := cmd.Context()
			m := newTrackModel(ws, func() error { return saveWorkspace(ctx, app, ws) })
			return app.RunProgram(ctx, m)
		},
	}
}
