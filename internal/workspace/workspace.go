// Package workspace holds the editing session: the current class collection
// snapshot plus the class and task selections the user is working with.
//
// Every change goes through the roster mutators and swaps in a new snapshot,
// after which the active task is re-derived. A Workspace is not safe for
// concurrent use; it is owned by one CLI invocation or one TUI program.
package workspace

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/taskmaster/internal/domain"
	"github.com/alexanderramin/taskmaster/internal/roster"
	"github.com/alexanderramin/taskmaster/internal/views"
)

var (
	ErrBlankName       = errors.New("name must not be blank")
	ErrNoClassSelected = errors.New("no class selected")
	ErrNoActiveTask    = errors.New("class has no tasks")
	ErrUnknownClass    = errors.New("class not found")
	ErrUnknownTask     = errors.New("task not found")
	ErrUnknownStudent  = errors.New("student not found")
)

// Workspace is the explicit application state passed to the CLI and TUI.
type Workspace struct {
	mut *roster.Mutator

	classes        []domain.ClassGroup
	currentClassID string
	activeTaskID   string
	dirty          bool
}

// New wraps a loaded snapshot. A currentClassID that no longer resolves is
// dropped.
func New(m *roster.Mutator, classes []domain.ClassGroup, currentClassID string) *Workspace {
	if classes == nil {
		classes = []domain.ClassGroup{}
	}
	w := &Workspace{mut: m, classes: classes}
	if domain.FindClass(classes, currentClassID) != nil {
		w.currentClassID = currentClassID
	}
	w.refresh()
	return w
}

// Classes returns the current snapshot. Callers must treat it as read-only.
func (w *Workspace) Classes() []domain.ClassGroup { return w.classes }

// CurrentClassID returns the selected class ID, or "".
func (w *Workspace) CurrentClassID() string { return w.currentClassID }

// CurrentClass returns the selected class, or nil.
func (w *Workspace) CurrentClass() *domain.ClassGroup {
	return domain.FindClass(w.classes, w.currentClassID)
}

// ActiveTaskID returns the task receiving tap-to-cycle grades.
func (w *Workspace) ActiveTaskID() string { return w.activeTaskID }

// ActiveTask returns the active task of the current class, or nil.
func (w *Workspace) ActiveTask() *domain.Task {
	c := w.CurrentClass()
	if c == nil {
		return nil
	}
	return c.Task(w.activeTaskID)
}

// Dirty reports whether there are changes since the last MarkSaved.
func (w *Workspace) Dirty() bool { return w.dirty }

// MarkSaved clears the dirty flag after a successful save.
func (w *Workspace) MarkSaved() { w.dirty = false }

// SelectClass makes id the current class.
func (w *Workspace) SelectClass(id string) error {
	if domain.FindClass(w.classes, id) == nil {
		return fmt.Errorf("%w: %q", ErrUnknownClass, id)
	}
	if id != w.currentClassID {
		w.currentClassID = id
		w.dirty = true
	}
	w.refresh()
	return nil
}

// SelectTask makes taskID the active task of the current class.
func (w *Workspace) SelectTask(taskID string) error {
	c, err := w.requireClass()
	if err != nil {
		return err
	}
	if c.Task(taskID) == nil {
		return fmt.Errorf("%w: %q", ErrUnknownTask, taskID)
	}
	w.activeTaskID = taskID
	w.refresh()
	return nil
}

// CreateClass adds a class and selects it.
func (w *Workspace) CreateClass(name string) (domain.ClassGroup, error) {
	name, err := cleanName(name)
	if err != nil {
		return domain.ClassGroup{}, err
	}
	var c domain.ClassGroup
	w.classes, c = w.mut.CreateClass(w.classes, name)
	w.currentClassID = c.ID
	w.dirty = true
	w.refresh()
	return c, nil
}

// ImportStudents appends names to the current class roster.
func (w *Workspace) ImportStudents(names []string) ([]domain.Student, error) {
	c, err := w.requireClass()
	if err != nil {
		return nil, err
	}
	var added []domain.Student
	w.classes, added = w.mut.ImportStudents(w.classes, c.ID, names)
	if len(added) > 0 {
		w.dirty = true
	}
	return added, nil
}

// AddTask creates a task in the current class.
func (w *Workspace) AddTask(name string) (domain.Task, error) {
	name, err := cleanName(name)
	if err != nil {
		return domain.Task{}, err
	}
	c, err := w.requireClass()
	if err != nil {
		return domain.Task{}, err
	}
	var task domain.Task
	w.classes, task, _ = w.mut.AddTask(w.classes, c.ID, name)
	w.dirty = true
	w.refresh()
	return task, nil
}

// RenameTask changes a task's display name.
func (w *Workspace) RenameTask(taskID, name string) error {
	name, err := cleanName(name)
	if err != nil {
		return err
	}
	c, err := w.requireTask(taskID)
	if err != nil {
		return err
	}
	w.classes = roster.EditTask(w.classes, c.ID, taskID, name)
	w.dirty = true
	return nil
}

// DeleteTask removes a task and every grade recorded for it. Confirmation
// is the caller's job.
func (w *Workspace) DeleteTask(taskID string) error {
	c, err := w.requireTask(taskID)
	if err != nil {
		return err
	}
	w.classes = roster.DeleteTask(w.classes, c.ID, taskID)
	w.dirty = true
	w.refresh()
	return nil
}

// SetGrade records g for the student on the task.
func (w *Workspace) SetGrade(studentID, taskID string, g domain.GradeLevel) error {
	c, err := w.requireTask(taskID)
	if err != nil {
		return err
	}
	if c.Student(studentID) == nil {
		return fmt.Errorf("%w: %q", ErrUnknownStudent, studentID)
	}
	w.classes = roster.UpdateGrade(w.classes, c.ID, studentID, taskID, g)
	w.dirty = true
	return nil
}

// CycleGrade advances the student's grade on the active task to the next
// level of the scale and returns it.
func (w *Workspace) CycleGrade(studentID string) (domain.GradeLevel, error) {
	c, err := w.requireClass()
	if err != nil {
		return "", err
	}
	if w.activeTaskID == "" {
		return "", ErrNoActiveTask
	}
	s := c.Student(studentID)
	if s == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownStudent, studentID)
	}
	next := domain.NextGrade(s.Grades.Get(w.activeTaskID))
	if err := w.SetGrade(studentID, w.activeTaskID, next); err != nil {
		return "", err
	}
	return next, nil
}

// Tracking projects the current class for rapid grade entry.
func (w *Workspace) Tracking() views.Tracking {
	return views.Track(w.CurrentClass(), w.activeTaskID)
}

// Overview projects the current class as a student × task matrix.
func (w *Workspace) Overview() views.Matrix {
	return views.Overview(w.CurrentClass())
}

// refresh re-derives the active task after any class switch, task list
// change or selection change.
func (w *Workspace) refresh() {
	w.activeTaskID = views.ResolveActiveTask(w.CurrentClass(), w.activeTaskID)
}

func (w *Workspace) requireClass() (*domain.ClassGroup, error) {
	c := w.CurrentClass()
	if c == nil {
		return nil, ErrNoClassSelected
	}
	return c, nil
}

func (w *Workspace) requireTask(taskID string) (*domain.ClassGroup, error) {
	c, err := w.requireClass()
	if err != nil {
		return nil, err
	}
	if c.Task(taskID) == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTask, taskID)
	}
	return c, nil
}

func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrBlankName
	}
	return name, nil
}
