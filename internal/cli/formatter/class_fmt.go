package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/taskmaster/internal/domain"
	"github.com/alexanderramin/taskmaster/internal/views"
)

const currentMarker = "*"

// FormatClassList renders every class with its size. The current class is
// marked with "*".
func FormatClassList(classes []domain.ClassGroup, currentID string) string {
	if len(classes) == 0 {
		return Dim("No classes yet. Create one with 'taskmaster class add <name>'.") + "\n"
	}
	rows := make([][]string, 0, len(classes))
	for _, c := range classes {
		marker := ""
		name := c.Name
		if c.ID == currentID {
			marker = StyleGreen.Render(currentMarker)
			name = Bold(name)
		}
		rows = append(rows, []string{
			marker,
			Dim(TruncID(c.ID)),
			name,
			fmt.Sprintf("%d", len(c.Students)),
			fmt.Sprintf("%d", len(c.Tasks)),
		})
	}
	return RenderTable([]string{"", "ID", "CLASS", "STUDENTS", "TASKS"}, rows)
}

// FormatTaskList renders the class's tasks in creation order. The active
// task is marked with "*".
func FormatTaskList(class *domain.ClassGroup, activeID string) string {
	if len(class.Tasks) == 0 {
		return Dim(EmptyMessage(views.ReasonNoTasks)) + "\n"
	}
	rows := make([][]string, 0, len(class.Tasks))
	for _, t := range class.Tasks {
		marker := ""
		name := t.Name
		if t.ID == activeID {
			marker = StyleGreen.Render(currentMarker)
			name = Bold(name)
		}
		rows = append(rows, []string{
			marker,
			Dim(TruncID(t.ID)),
			name,
			RenderProgress(views.Progress(class, t.ID), 10),
			RelativeDate(t.CreatedAt),
		})
	}
	return RenderTable([]string{"", "ID", "TASK", "GRADED", "CREATED"}, rows)
}

// FormatStudentList renders the roster with each student's grade on the
// active task.
func FormatStudentList(tr views.Tracking) string {
	if tr.Empty == views.ReasonNoClass || tr.Empty == views.ReasonNoStudents {
		return Dim(EmptyMessage(tr.Empty)) + "\n"
	}
	gradeHeader := "GRADE"
	if tr.Active != nil {
		gradeHeader = strings.ToUpper(Truncate(tr.Active.Name, MaxHeaderRunes))
	}
	rows := make([][]string, 0, len(tr.Cards))
	for _, c := range tr.Cards {
		grade := Dim("-")
		if tr.Active != nil {
			grade = GradeBadge(c.Grade)
		}
		rows = append(rows, []string{Dim(TruncID(c.StudentID)), c.Name, grade})
	}
	return RenderTable([]string{"ID", "STUDENT", gradeHeader}, rows)
}

// FormatMatrix renders the student × task overview for a class, followed by
// the grade legend. Long task names are truncated in the header only.
func FormatMatrix(className string, m views.Matrix) string {
	var b strings.Builder
	b.WriteString(Header(className))
	b.WriteString("\n\n")

	switch {
	case len(m.Rows) == 0:
		b.WriteString(Dim(EmptyMessage(views.ReasonNoStudents)) + "\n")
		return b.String()
	case len(m.Tasks) == 0:
		b.WriteString(Dim(EmptyMessage(views.ReasonNoTasks)) + "\n")
		return b.String()
	}

	headers := make([]string, 0, len(m.Tasks)+1)
	headers = append(headers, "Student")
	for _, t := range m.Tasks {
		headers = append(headers, Truncate(t.Name, MaxHeaderRunes))
	}
	rows := make([][]string, 0, len(m.Rows))
	for _, r := range m.Rows {
		line := make([]string, 0, len(r.Cells)+1)
		line = append(line, r.Name)
		for _, g := range r.Cells {
			line = append(line, GradeCode(g))
		}
		rows = append(rows, line)
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(Totals(m.Tally()))
	b.WriteString("\n")
	b.WriteString(Legend())
	b.WriteString("\n")
	return b.String()
}

// Totals renders how many matrix cells hold each grade, in cycle order.
func Totals(counts map[domain.GradeLevel]int) string {
	parts := make([]string, 0, len(domain.GradeCycle))
	for _, g := range domain.GradeCycle {
		parts = append(parts, fmt.Sprintf("%s %d", GradeCode(g), counts[g]))
	}
	return Dim("Totals: ") + strings.Join(parts, "  ")
}

// EmptyMessage returns the hint shown when a view has nothing to list.
func EmptyMessage(r views.EmptyReason) string {
	switch r {
	case views.ReasonNoClass:
		return "No class selected. Create one with 'taskmaster class add <name>'."
	case views.ReasonNoStudents:
		return "No students yet. Import a roster with 'taskmaster student import <file>'."
	case views.ReasonNoTasks:
		return "No tasks yet. Add one with 'taskmaster task add <name>'."
	}
	return ""
}
