package service

import (
	"context"
	"path/filepath"
	"time"

	"github.com/alexanderramin/taskmaster/internal/domain"
	"github.com/alexanderramin/taskmaster/internal/importer"
	"github.com/alexanderramin/taskmaster/internal/workspace"
)

type rosterService struct {
	observer UseCaseObserver
}

func NewRosterService(observers ...UseCaseObserver) RosterService {
	return &rosterService{observer: useCaseObserverOrNoop(observers)}
}

func (s *rosterService) ImportFile(ctx context.Context, ws *workspace.Workspace, path string) ([]domain.Student, error) {
	return s.observe(ctx, map[string]any{"source": filepath.Base(path)}, func() ([]domain.Student, error) {
		names, err := importer.LoadRoster(path)
		if err != nil {
			return nil, err
		}
		return ws.ImportStudents(names)
	})
}

func (s *rosterService) ImportText(ctx context.Context, ws *workspace.Workspace, text string) ([]domain.Student, error) {
	return s.observe(ctx, map[string]any{"source": "text"}, func() ([]domain.Student, error) {
		return ws.ImportStudents(importer.ParseNames(text))
	})
}

func (s *rosterService) observe(ctx context.Context, fields map[string]any, fn func() ([]domain.Student, error)) (added []domain.Student, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		fields["added"] = len(added)
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import_roster",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()
	return fn()
}
