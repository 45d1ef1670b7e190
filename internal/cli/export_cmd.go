package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current class report as an .xlsx spreadsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(cmd, app)
			if err != nil {
				return err
			}
			if err := saveWorkspace(cmd.Context(), app, ws); err != nil {
				return err
			}
			path, err := app.Export.ExportClass(cmd.Context(), ws.CurrentClass(), dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Output directory (default: configured export dir)")

	return cmd
}
