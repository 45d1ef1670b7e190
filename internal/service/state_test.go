package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/alexanderramin/taskmaster/internal/domain"
	"github.com/alexanderramin/taskmaster/internal/repository"
	"github.com/alexanderramin/taskmaster/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) last() UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

func TestStateService_LoadEmptyStore(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewStateService(testutil.NewTestUoW(database), "", nil)

	state, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, state.Classes)
	assert.Empty(t, state.Classes)
	assert.Equal(t, "", state.CurrentClassID)
}

func TestStateService_SaveThenLoad(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewStateService(testutil.NewTestUoW(database), "", nil)
	ctx := context.Background()

	math := testutil.NewTestClass("Math",
		testutil.WithStudents("Alice", "Bob"),
		testutil.WithTasks("Quiz 1", "Quiz 2"),
		testutil.WithGrade("Alice", "Quiz 1", domain.GradeExcellent),
		testutil.WithGrade("Bob", "Quiz 2", domain.GradeDeficient),
	)
	art := testutil.NewTestClass("Art")

	require.NoError(t, svc.Save(ctx, State{
		Classes:        []domain.ClassGroup{math, art},
		CurrentClassID: math.ID,
	}))

	got, err := svc.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Classes, 2)
	assert.Equal(t, math.ID, got.CurrentClassID)
	assert.Equal(t, math.Name, got.Classes[0].Name)
	assert.Equal(t, math.Tasks[1].ID, got.Classes[0].Tasks[1].ID)
	assert.True(t, math.Tasks[0].CreatedAt.Equal(got.Classes[0].Tasks[0].CreatedAt))
	assert.Equal(t, domain.GradeExcellent, got.Classes[0].Students[0].Grades.Get(math.Tasks[0].ID))
	assert.Equal(t, domain.GradeDeficient, got.Classes[0].Students[1].Grades.Get(math.Tasks[1].ID))
	assert.Equal(t, art.ID, got.Classes[1].ID)
}

func TestStateService_ClearingSelectionDeletesKey(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewStateService(testutil.NewTestUoW(database), "", nil)
	ctx := context.Background()
	c := testutil.NewTestClass("Math")

	require.NoError(t, svc.Save(ctx, State{Classes: []domain.ClassGroup{c}, CurrentClassID: c.ID}))
	require.NoError(t, svc.Save(ctx, State{Classes: []domain.ClassGroup{c}}))

	_, err := repository.NewSQLiteStateRepo(database).Get(ctx, repository.KeyCurrentClass)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStateService_StaleSelectionIgnored(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := repository.NewSQLiteStateRepo(database)
	require.NoError(t, repo.Put(ctx, repository.KeyClasses, `[]`))
	require.NoError(t, repo.Put(ctx, repository.KeyCurrentClass, "deleted-class"))

	state, err := NewStateService(testutil.NewTestUoW(database), "", nil).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", state.CurrentClassID)
}

func TestStateService_CorruptBlobStartsEmpty(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	require.NoError(t, repository.NewSQLiteStateRepo(database).Put(ctx, repository.KeyClasses, `{not json`))

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	obs := &recordingObserver{}
	svc := NewStateService(testutil.NewTestUoW(database), "", logger, obs)

	state, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, state.Classes)
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "unreadable")

	e := obs.last()
	assert.Equal(t, "load_state", e.Name)
	assert.True(t, e.Success)
	assert.Equal(t, true, e.Fields["recovered"])
}

func TestStateService_ReadsOriginalBrowserFormat(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	blob := `[{"id":"c1","name":"Math","students":[{"id":"s1","name":"Alice","grades":{"t1":"G"}}],"tasks":[{"id":"t1","name":"Quiz","createdAt":1757000000000}]}]`
	require.NoError(t, repository.NewSQLiteStateRepo(database).Put(ctx, repository.KeyClasses, blob))

	state, err := NewStateService(testutil.NewTestUoW(database), "", nil).Load(ctx)
	require.NoError(t, err)
	require.Len(t, state.Classes, 1)
	assert.Equal(t, domain.GradeGood, state.Classes[0].Students[0].Grades.Get("t1"))
	assert.Equal(t, int64(1757000000000), state.Classes[0].Tasks[0].CreatedAt.UnixMilli())
}

func TestStateService_DropsGradesForMissingTasks(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := repository.NewSQLiteStateRepo(database)
	blob := `[{"id":"c1","name":"Math","students":[{"id":"s1","name":"Alice","grades":{"t1":"G","deleted":"E"}}],"tasks":[{"id":"t1","name":"Quiz","createdAt":1757000000000}]}]`
	require.NoError(t, repo.Put(ctx, repository.KeyClasses, blob))

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	obs := &recordingObserver{}
	svc := NewStateService(testutil.NewTestUoW(database), "", logger, obs)

	state, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.GradeMap{"t1": domain.GradeGood}, state.Classes[0].Students[0].Grades)
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "orphaned=1")
	assert.Equal(t, 1, obs.last().Fields["dropped_grades"])

	require.NoError(t, svc.Save(ctx, *state))
	saved, err := repo.Get(ctx, repository.KeyClasses)
	require.NoError(t, err)
	assert.NotContains(t, saved, "deleted")
}

func TestStateService_CustomKey(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	svc := NewStateService(testutil.NewTestUoW(database), "otherKey", nil)
	c := testutil.NewTestClass("Math")

	require.NoError(t, svc.Save(ctx, State{Classes: []domain.ClassGroup{c}}))

	repo := repository.NewSQLiteStateRepo(database)
	_, err := repo.Get(ctx, repository.KeyClasses)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repo.Get(ctx, "otherKey")
	assert.NoError(t, err)
}

func TestStateService_SaveRollsBackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	good := NewStateService(testutil.NewTestUoW(database), "", nil)

	before := testutil.NewTestClass("Before")
	require.NoError(t, good.Save(ctx, State{Classes: []domain.ClassGroup{before}, CurrentClassID: before.ID}))

	// Exec #1 writes the class blob, #2 the current class ID.
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 2,
		Err:    fmt.Errorf("injected write failure"),
	}
	obs := &recordingObserver{}
	bad := NewStateService(failUoW, "", nil, obs)

	after := testutil.NewTestClass("After")
	err := bad.Save(ctx, State{Classes: []domain.ClassGroup{after}, CurrentClassID: after.ID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected write failure")

	e := obs.last()
	assert.Equal(t, "save_state", e.Name)
	assert.False(t, e.Success)

	state, err := good.Load(ctx)
	require.NoError(t, err)
	require.Len(t, state.Classes, 1)
	assert.Equal(t, "Before", state.Classes[0].Name)
	assert.Equal(t, before.ID, state.CurrentClassID)
}
