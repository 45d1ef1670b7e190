package service

import (
	"context"

	"github.com/alexanderramin/taskmaster/internal/domain"
	"github.com/alexanderramin/taskmaster/internal/workspace"
)

// StateService loads and saves the whole class collection.
type StateService interface {
	// Load returns the stored state. A missing or unreadable blob yields an
	// empty collection rather than an error.
	Load(ctx context.Context) (*State, error)
	// Save writes the class blob and the current class ID atomically.
	Save(ctx context.Context, state State) error
}

// RosterService imports student names into the current class.
type RosterService interface {
	ImportFile(ctx context.Context, ws *workspace.Workspace, path string) ([]domain.Student, error)
	ImportText(ctx context.Context, ws *workspace.Workspace, text string) ([]domain.Student, error)
}

// ExportService writes a class report spreadsheet. An empty dir uses the
// configured export directory.
type ExportService interface {
	ExportClass(ctx context.Context, class *domain.ClassGroup, dir string) (string, error)
}
