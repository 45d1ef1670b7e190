package views

import (
	"testing"
	"time"

	"github.com/alexanderramin/taskmaster/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classWithTasks() *domain.ClassGroup {
	t0 := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	return &domain.ClassGroup{
		ID:   "c1",
		Name: "Math",
		Tasks: []domain.Task{
			{ID: "A", Name: "Quiz A", CreatedAt: t0.Add(time.Second)},
			{ID: "B", Name: "Quiz B", CreatedAt: t0.Add(2 * time.Second)},
		},
		Students: []domain.Student{
			{ID: "s1", Name: "Alice", Grades: domain.GradeMap{"A": domain.GradeGood, "B": domain.GradeExcellent}},
			{ID: "s2", Name: "Bob", Grades: domain.GradeMap{"A": domain.GradeDeficient}},
		},
	}
}

func TestResolveActiveTask_DefaultsToMostRecent(t *testing.T) {
	c := classWithTasks()
	assert.Equal(t, "B", ResolveActiveTask(c, ""))
	assert.Equal(t, "B", ResolveActiveTask(c, "gone"))
	assert.Equal(t, "A", ResolveActiveTask(c, "A"))
}

func TestResolveActiveTask_ShiftsAfterDelete(t *testing.T) {
	c := classWithTasks()
	active := ResolveActiveTask(c, "")
	require.Equal(t, "B", active)

	c.Tasks = c.Tasks[:1]
	assert.Equal(t, "A", ResolveActiveTask(c, active))
}

func TestResolveActiveTask_Empty(t *testing.T) {
	assert.Equal(t, "", ResolveActiveTask(nil, "A"))
	assert.Equal(t, "", ResolveActiveTask(&domain.ClassGroup{ID: "c"}, "A"))
}

func TestTrack_Cards(t *testing.T) {
	c := classWithTasks()
	tr := Track(c, "A")

	assert.Equal(t, ReasonNone, tr.Empty)
	require.NotNil(t, tr.Active)
	assert.Equal(t, "Quiz A", tr.Active.Name)
	require.Len(t, tr.Cards, 2)
	assert.Equal(t, Card{StudentID: "s1", Name: "Alice", Grade: domain.GradeGood}, tr.Cards[0])
	assert.Equal(t, domain.GradeDeficient, tr.Cards[1].Grade)

	tr = Track(c, "B")
	assert.Equal(t, domain.GradeNotStarted, tr.Cards[1].Grade, "missing key reads as not started")
}

func TestTrack_EmptyReasons(t *testing.T) {
	assert.Equal(t, ReasonNoClass, Track(nil, "").Empty)
	assert.Equal(t, ReasonNoStudents, Track(&domain.ClassGroup{ID: "c", Tasks: []domain.Task{{ID: "A"}}}, "A").Empty)
	assert.Equal(t, ReasonNoTasks, Track(&domain.ClassGroup{ID: "c", Students: []domain.Student{{ID: "s"}}}, "").Empty)
}

func TestOverview_ResolvesDefaults(t *testing.T) {
	m := Overview(classWithTasks())

	require.Len(t, m.Tasks, 2)
	require.Len(t, m.Rows, 2)
	assert.Equal(t, []domain.GradeLevel{domain.GradeGood, domain.GradeExcellent}, m.Rows[0].Cells)
	assert.Equal(t, []domain.GradeLevel{domain.GradeDeficient, domain.GradeNotStarted}, m.Rows[1].Cells)
}

func TestOverview_Idempotent(t *testing.T) {
	c := classWithTasks()
	assert.Equal(t, Overview(c), Overview(c))
}

func TestOverview_NilClass(t *testing.T) {
	m := Overview(nil)
	assert.Empty(t, m.Rows)
	assert.Empty(t, m.Tasks)
}

func TestMatrix_Tally(t *testing.T) {
	counts := Overview(classWithTasks()).Tally()
	assert.Equal(t, 1, counts[domain.GradeGood])
	assert.Equal(t, 1, counts[domain.GradeExcellent])
	assert.Equal(t, 1, counts[domain.GradeDeficient])
	assert.Equal(t, 1, counts[domain.GradeNotStarted])
	assert.Equal(t, 0, counts[domain.GradeQuestionable])
}

func TestProgress(t *testing.T) {
	c := classWithTasks()
	assert.InDelta(t, 1.0, Progress(c, "A"), 1e-9)
	assert.InDelta(t, 0.5, Progress(c, "B"), 1e-9)
	assert.Zero(t, Progress(c, "missing"))
	assert.Zero(t, Progress(nil, "A"))
	assert.Zero(t, Progress(&domain.ClassGroup{}, "A"))
}
