package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/taskmaster/internal/roster"
	"github.com/alexanderramin/taskmaster/internal/service"
	"github.com/alexanderramin/taskmaster/internal/workspace"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds the services and terminal hooks used by CLI commands.
type App struct {
	State   service.StateService
	Roster  service.RosterService
	Export  service.ExportService
	Mutator *roster.Mutator

	// IsInteractive reports whether prompts can be shown.
	IsInteractive func() bool
	// Confirm asks a yes/no question. Defaults to a huh form.
	Confirm func(title string) (bool, error)
	// Prompt asks for a line of text. Defaults to a huh form.
	Prompt func(title string) (string, error)
	// RunProgram runs a full-screen bubbletea program.
	RunProgram func(ctx context.Context, m tea.Model) error
}

// NewRootCmd creates the top-level "taskmaster" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	app.setDefaults()

	root := &cobra.Command{
		Use:           "taskmaster",
		Short:         "Track student progress on class tasks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("class", "", "Class to work on (ID, name or ID prefix); becomes the current class")

	root.AddCommand(
		newClassCmd(app),
		newStudentCmd(app),
		newTaskCmd(app),
		newGradeCmd(app),
		newMatrixCmd(app),
		newExportCmd(app),
		newTrackCmd(app),
	)

	return root
}

func (app *App) setDefaults() {
	if app.Mutator == nil {
		app.Mutator = roster.New()
	}
	if app.IsInteractive == nil {
		app.IsInteractive = func() bool { return false }
	}
	if app.Confirm == nil {
		app.Confirm = huhConfirm
	}
	if app.Prompt == nil {
		app.Prompt = huhPrompt
	}
	if app.RunProgram == nil {
		app.RunProgram = runFullScreen
	}
}

// loadWorkspace reads the stored state and applies the --class flag.
func loadWorkspace(cmd *cobra.Command, app *App) (*workspace.Workspace, error) {
	state, err := app.State.Load(cmd.Context())
	if err != nil {
		return nil, err
	}
	ws := workspace.New(app.Mutator, state.Classes, state.CurrentClassID)

	ref, _ := cmd.Flags().GetString("class")
	if ref = strings.TrimSpace(ref); ref != "" {
		id, err := ws.ResolveClass(ref)
		if err != nil {
			return nil, err
		}
		if err := ws.SelectClass(id); err != nil {
			return nil, err
		}
	}
	return ws, nil
}

// saveWorkspace persists ws when it has unsaved changes.
func saveWorkspace(ctx context.Context, app *App, ws *workspace.Workspace) error {
	if !ws.Dirty() {
		return nil
	}
	err := app.State.Save(ctx, service.State{
		Classes:        ws.Classes(),
		CurrentClassID: ws.CurrentClassID(),
	})
	if err != nil {
		return err
	}
	ws.MarkSaved()
	return nil
}

func runFullScreen(ctx context.Context, m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
