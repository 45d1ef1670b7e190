package service

import (
	"context"
	"time"

	"github.com/alexanderramin/taskmaster/internal/domain"
	"github.com/alexanderramin/taskmaster/internal/exporter"
	"github.com/alexanderramin/taskmaster/internal/workspace"
)

type exportService struct {
	dir      string
	observer UseCaseObserver
}

// NewExportService writes reports into dir.
func NewExportService(dir string, observers ...UseCaseObserver) ExportService {
	return &exportService{dir: dir, observer: useCaseObserverOrNoop(observers)}
}

func (s *exportService) ExportClass(ctx context.Context, class *domain.ClassGroup, dir string) (path string, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		fields["path"] = path
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "export_class",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if class == nil {
		return "", workspace.ErrNoClassSelected
	}
	fields["class"] = class.Name
	fields["students"] = len(class.Students)
	fields["tasks"] = len(class.Tasks)

	if dir == "" {
		dir = s.dir
	}
	return exporter.SaveXLSX(dir, class)
}
