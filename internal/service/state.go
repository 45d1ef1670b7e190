package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/taskmaster/internal/db"
	"github.com/alexanderramin/taskmaster/internal/domain"
	"github.com/alexanderramin/taskmaster/internal/repository"
)

// State is what survives between sessions: every class plus the selected
// class ID.
type State struct {
	Classes        []domain.ClassGroup
	CurrentClassID string
}

type stateService struct {
	uow      db.UnitOfWork
	key      string
	logger   *slog.Logger
	observer UseCaseObserver
}

// NewStateService stores the class blob under key. A nil logger discards
// recovery warnings.
func NewStateService(
	uow db.UnitOfWork,
	key string,
	logger *slog.Logger,
	observers ...UseCaseObserver,
) StateService {
	if key == "" {
		key = repository.KeyClasses
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &stateService{
		uow:      uow,
		key:      key,
		logger:   logger,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *stateService) Load(ctx context.Context) (state *State, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"key": s.key}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "load_state",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	state = &State{Classes: []domain.ClassGroup{}}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteStateRepo(tx)

		blob, err := getOptional(ctx, repo, s.key)
		if err != nil {
			return err
		}
		if blob != "" {
			classes, dropped, err := repository.UnmarshalClasses([]byte(blob))
			switch {
			case err != nil:
				s.logger.WarnContext(ctx, "stored class data is unreadable, starting empty",
					"key", s.key, "error", err)
				fields["recovered"] = true
			default:
				if dropped.Total() > 0 {
					s.logger.WarnContext(ctx, "dropped stored grades that match no task or grade",
						"key", s.key, "orphaned", dropped.Orphaned, "unknown", dropped.Unknown)
					fields["dropped_grades"] = dropped.Total()
				}
				state.Classes = classes
			}
		}

		current, err := getOptional(ctx, repo, repository.KeyCurrentClass)
		if err != nil {
			return err
		}
		if domain.FindClass(state.Classes, current) != nil {
			state.CurrentClassID = current
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading state: %w", err)
	}
	fields["class_count"] = len(state.Classes)
	return state, nil
}

func (s *stateService) Save(ctx context.Context, state State) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"key":         s.key,
		"class_count": len(state.Classes),
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "save_state",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	blob, err := repository.MarshalClasses(state.Classes)
	if err != nil {
		return err
	}
	fields["bytes"] = len(blob)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteStateRepo(tx)
		if err := repo.Put(ctx, s.key, string(blob)); err != nil {
			return err
		}
		if state.CurrentClassID == "" {
			return repo.Delete(ctx, repository.KeyCurrentClass)
		}
		return repo.Put(ctx, repository.KeyCurrentClass, state.CurrentClassID)
	})
	if err != nil {
		return fmt.Errorf("saving state: %w", err)
	}
	return nil
}

func getOptional(ctx context.Context, repo repository.StateRepo, key string) (string, error) {
	v, err := repo.Get(ctx, key)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil
	}
	return v, err
}
