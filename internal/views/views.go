// Package views derives read-only projections of a class for tracking and
// review. Nothing here mutates its input.
package views

import "github.com/alexanderramin/taskmaster/internal/domain"

// ResolveActiveTask returns the task ID that should be active for class given
// the current selection. A selection naming an existing task is kept;
// otherwise the most recently created task is chosen. The result is empty
// when class is nil or has no tasks.
func ResolveActiveTask(class *domain.ClassGroup, selected string) string {
	if class == nil || len(class.Tasks) == 0 {
		return ""
	}
	if selected != "" && class.Task(selected) != nil {
		return selected
	}
	return class.LatestTask().ID
}

// EmptyReason explains why a tracking view has nothing to show.
type EmptyReason string

const (
	ReasonNone       EmptyReason = ""
	ReasonNoClass    EmptyReason = "no_class"
	ReasonNoStudents EmptyReason = "no_students"
	ReasonNoTasks    EmptyReason = "no_tasks"
)

// Card is one student tile in the tracking grid.
type Card struct {
	StudentID string
	Name      string
	Grade     domain.GradeLevel
}

// Tracking is the rapid-entry projection: every task as a tab and one card
// per student showing the grade for the active task.
type Tracking struct {
	ClassID string
	Tasks   []domain.Task
	Active  *domain.Task
	Cards   []Card
	Empty   EmptyReason
}

// Track builds the tracking projection for class with activeTaskID already
// resolved by ResolveActiveTask.
func Track(class *domain.ClassGroup, activeTaskID string) Tracking {
	if class == nil {
		return Tracking{Empty: ReasonNoClass}
	}
	tr := Tracking{ClassID: class.ID, Tasks: class.Tasks}
	switch {
	case len(class.Students) == 0:
		tr.Empty = ReasonNoStudents
		return tr
	case len(class.Tasks) == 0:
		tr.Empty = ReasonNoTasks
		return tr
	}

	tr.Active = class.Task(activeTaskID)
	tr.Cards = make([]Card, len(class.Students))
	for i, s := range class.Students {
		grade := domain.GradeNotStarted
		if tr.Active != nil {
			grade = s.Grades.Get(tr.Active.ID)
		}
		tr.Cards[i] = Card{StudentID: s.ID, Name: s.Name, Grade: grade}
	}
	return tr
}

// MatrixRow is one student's line in the overview matrix.
type MatrixRow struct {
	StudentID string
	Name      string
	Cells     []domain.GradeLevel
}

// Matrix is the full student × task grid. Cells[i] of every row belongs to
// Tasks[i].
type Matrix struct {
	Tasks []domain.Task
	Rows  []MatrixRow
}

// Overview builds the matrix for class in its current student and task
// order, resolving every missing grade to GradeNotStarted.
func Overview(class *domain.ClassGroup) Matrix {
	if class == nil {
		return Matrix{}
	}
	m := Matrix{
		Tasks: append([]domain.Task(nil), class.Tasks...),
		Rows:  make([]MatrixRow, len(class.Students)),
	}
	for i, s := range class.Students {
		cells := make([]domain.GradeLevel, len(class.Tasks))
		for j, t := range class.Tasks {
			cells[j] = s.Grades.Get(t.ID)
		}
		m.Rows[i] = MatrixRow{StudentID: s.ID, Name: s.Name, Cells: cells}
	}
	return m
}

// Tally counts how many cells of the matrix hold each grade.
func (m Matrix) Tally() map[domain.GradeLevel]int {
	counts := make(map[domain.GradeLevel]int, len(domain.GradeCycle))
	for _, row := range m.Rows {
		for _, g := range row.Cells {
			counts[g]++
		}
	}
	return counts
}

// Progress returns the share of students with a grade other than
// GradeNotStarted on taskID. A class without students reports 0.
func Progress(class *domain.ClassGroup, taskID string) float64 {
	if class == nil || len(class.Students) == 0 {
		return 0
	}
	graded := 0
	for _, s := range class.Students {
		if s.Grades.Get(taskID) != domain.GradeNotStarted {
			graded++
		}
	}
	return float64(graded) / float64(len(class.Students))
}
