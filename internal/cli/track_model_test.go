package cli

import (
	"errors"
	"regexp"
	"testing"

	"github.com/alexanderramin/taskmaster/internal/domain"
	"github.com/alexanderramin/taskmaster/internal/testutil"
	"github.com/alexanderramin/taskmaster/internal/workspace"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func keyRune(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }
func keySpace() tea.KeyMsg      { return tea.KeyMsg{Type: tea.KeySpace} }
func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func press(m tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

// trackFixture returns a model over a class with Alice and Bob and tasks
// "Quiz A" then "Quiz B", plus a counter of save calls.
func trackFixture(t *testing.T) (trackModel, *workspace.Workspace, *int) {
	t.Helper()
	c := testutil.NewTestClass("Math",
		testutil.WithStudents("Alice", "Bob"),
		testutil.WithTasks("Quiz A", "Quiz B"),
	)
	ws := workspace.New(testutil.SeqMutator("tui"), []domain.ClassGroup{c}, c.ID)
	saves := 0
	m := newTrackModel(ws, func() error {
		saves++
		ws.MarkSaved()
		return nil
	})
	return m, ws, &saves
}

func gradeAt(ws *workspace.Workspace, student, task int) domain.GradeLevel {
	c := ws.CurrentClass()
	return c.Students[student].Grades.Get(c.Tasks[task].ID)
}

func TestTrackModel_DefaultsToLatestTask(t *testing.T) {
	m, ws, _ := trackFixture(t)

	assert.Equal(t, ws.CurrentClass().Tasks[1].ID, ws.ActiveTaskID())
	view := stripANSI(m.View())
	assert.Contains(t, view, "[Quiz B]")
	assert.Contains(t, view, "Alice")
	assert.Contains(t, view, "● Not Started")
}

func TestTrackModel_CycleAndNavigate(t *testing.T) {
	m, ws, _ := trackFixture(t)

	// Alice on Quiz B: N/A -> E -> G
	var tm tea.Model = m
	tm = press(tm, keySpace(), keyType(tea.KeyEnter))
	assert.Equal(t, domain.GradeGood, gradeAt(ws, 0, 1))
	assert.Contains(t, stripANSI(tm.View()), "Alice → Good")

	// Bob on Quiz A: N/A -> E
	tm = press(tm, keyType(tea.KeyDown), keyType(tea.KeyLeft), keySpace())
	assert.Equal(t, domain.GradeExcellent, gradeAt(ws, 1, 0))
	assert.Equal(t, domain.GradeNotStarted, gradeAt(ws, 1, 1))

	// Cursor and task index clamp at the edges.
	tm = press(tm, keyType(tea.KeyDown), keyType(tea.KeyDown), keyType(tea.KeyLeft))
	assert.Equal(t, 1, tm.(trackModel).cursor)
	assert.Equal(t, ws.CurrentClass().Tasks[0].ID, ws.ActiveTaskID())

	tm = press(tm, keyRune('l'), keyRune('l'))
	assert.Equal(t, ws.CurrentClass().Tasks[1].ID, ws.ActiveTaskID())
	tm = press(tm, keyRune('k'), keyRune('k'))
	assert.Equal(t, 0, tm.(trackModel).cursor)
}

func TestTrackModel_OverviewToggle(t *testing.T) {
	m, ws, _ := trackFixture(t)
	var tm tea.Model = m

	tm = press(tm, keyRune('o'))
	view := stripANSI(tm.View())
	assert.Contains(t, view, "Legend:")
	assert.Regexp(t, `Alice\s+N/A\s+N/A`, view)

	// Grading keys are inert in the overview.
	tm = press(tm, keySpace())
	assert.Equal(t, domain.GradeNotStarted, gradeAt(ws, 0, 1))

	tm = press(tm, keyType(tea.KeyEsc))
	assert.Equal(t, modeTrack, tm.(trackModel).mode)
	tm = press(tm, keyRune('o'), keyRune('o'))
	assert.Equal(t, modeTrack, tm.(trackModel).mode)
}

func TestTrackModel_DeleteConfirm(t *testing.T) {
	m, ws, _ := trackFixture(t)
	quizB := ws.CurrentClass().Tasks[1].ID
	var tm tea.Model = m
	tm = press(tm, keySpace())

	tm = press(tm, keyRune('x'))
	assert.Contains(t, stripANSI(tm.View()), `Delete "Quiz B"`)
	tm = press(tm, keyRune('n'))
	assert.Len(t, ws.CurrentClass().Tasks, 2)
	assert.Contains(t, stripANSI(tm.View()), "Delete cancelled.")

	tm = press(tm, keyRune('x'), keyRune('y'))
	c := ws.CurrentClass()
	require.Len(t, c.Tasks, 1)
	assert.Equal(t, c.Tasks[0].ID, ws.ActiveTaskID(), "active task falls back to the remaining one")
	assert.NotContains(t, c.Students[0].Grades, quizB)
	assert.Contains(t, stripANSI(tm.View()), "[Quiz A]")
}

func TestTrackModel_DeleteLastTaskShowsEmptyState(t *testing.T) {
	m, _, _ := trackFixture(t)
	var tm tea.Model = m

	tm = press(tm, keyRune('x'), keyRune('y'), keyRune('x'), keyRune('y'))
	assert.Contains(t, stripANSI(tm.View()), "No tasks yet")

	tm = press(tm, keySpace())
	assert.Contains(t, stripANSI(tm.View()), workspace.ErrNoActiveTask.Error())
}

func TestTrackModel_NoStudentsShowsImportHint(t *testing.T) {
	c := testutil.NewTestClass("Art", testutil.WithTasks("Sketch"))
	ws := workspace.New(testutil.SeqMutator("tui"), []domain.ClassGroup{c}, c.ID)
	m := newTrackModel(ws, func() error { return nil })

	view := stripANSI(m.View())
	assert.Contains(t, view, "ART")
	assert.Contains(t, view, "No students yet")
	assert.NotContains(t, view, "Graded")
}

func TestTrackModel_QuitWithUnsavedChanges(t *testing.T) {
	m, _, saves := trackFixture(t)
	var tm tea.Model = m
	tm = press(tm, keySpace())

	tm, cmd := tm.Update(keyRune('q'))
	assert.Nil(t, cmd, "first q only warns")
	assert.Contains(t, stripANSI(tm.View()), "Unsaved changes")

	_, cmd = tm.Update(keyRune('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, 0, *saves)
}

func TestTrackModel_WarningResetsAfterOtherKey(t *testing.T) {
	m, _, _ := trackFixture(t)
	var tm tea.Model = m
	tm = press(tm, keySpace(), keyRune('q'), keyType(tea.KeyDown))

	_, cmd := tm.Update(keyRune('q'))
	assert.Nil(t, cmd)
}

func TestTrackModel_SaveThenQuit(t *testing.T) {
	m, ws, saves := trackFixture(t)
	var tm tea.Model = m
	tm = press(tm, keySpace(), keyType(tea.KeyCtrlS))
	assert.Equal(t, 1, *saves)
	assert.False(t, ws.Dirty())
	assert.Contains(t, stripANSI(tm.View()), "Saved.")

	_, cmd := tm.Update(keyRune('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTrackModel_SaveError(t *testing.T) {
	_, ws, _ := trackFixture(t)
	m := newTrackModel(ws, func() error { return errors.New("disk full") })

	tm := press(m, keyRune('s'))
	assert.Contains(t, stripANSI(tm.View()), "Save failed: disk full")
}

func TestTrackModel_CtrlCQuitsImmediately(t *testing.T) {
	m, _, _ := trackFixture(t)
	var tm tea.Model = m
	tm = press(tm, keySpace())

	_, cmd := tm.Update(keyType(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTrackModel_UnsavedMarker(t *testing.T) {
	m, _, _ := trackFixture(t)
	assert.NotContains(t, stripANSI(m.View()), "unsaved")

	tm := press(m, keySpace())
	assert.Contains(t, stripANSI(tm.View()), "● unsaved")
}
