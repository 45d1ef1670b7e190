// Package roster holds the pure transforms applied to a class collection.
//
// Every function takes the current snapshot and returns a new one in which at
// most the targeted class is replaced. The input slice, its classes and their
// student grade maps are never written to, so callers may keep an old
// snapshot around after a mutation. An identifier that does not resolve makes
// the call a no-op that returns the input unchanged.
package roster

import (
	"time"

	"github.com/alexanderramin/taskmaster/internal/domain"
	"github.com/google/uuid"
)

// Mutator carries the identifier and clock sources used when creating
// classes, students and tasks.
type Mutator struct {
	newID func() string
	now   func() time.Time
}

// Option configures a Mutator.
type Option func(*Mutator)

// WithIDFunc overrides the identifier generator.
func WithIDFunc(fn func() string) Option {
	return func(m *Mutator) { m.newID = fn }
}

// WithClock overrides the clock used for task creation timestamps.
func WithClock(fn func() time.Time) Option {
	return func(m *Mutator) { m.now = fn }
}

// New returns a Mutator that issues random UUIDs and reads the wall clock.
func New(opts ...Option) *Mutator {
	m := &Mutator{
		newID: func() string { return uuid.New().String() },
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CreateClass appends an empty class named name.
func (m *Mutator) CreateClass(classes []domain.ClassGroup, name string) ([]domain.ClassGroup, domain.ClassGroup) {
	c := domain.ClassGroup{
		ID:       m.newID(),
		Name:     name,
		Students: []domain.Student{},
		Tasks:    []domain.Task{},
	}
	out := make([]domain.ClassGroup, 0, len(classes)+1)
	out = append(out, classes...)
	out = append(out, c)
	return out, c
}

// ImportStudents appends one student per name, in order, to the class. Each
// new student starts with GradeNotStarted for every task the class already
// has. Names are taken as given: no trimming or de-duplication.
func (m *Mutator) ImportStudents(classes []domain.ClassGroup, classID string, names []string) ([]domain.ClassGroup, []domain.Student) {
	var added []domain.Student
	out, _ := replaceClass(classes, classID, func(c domain.ClassGroup) domain.ClassGroup {
		added = make([]domain.Student, 0, len(names))
		for _, name := range names {
			grades := make(domain.GradeMap, len(c.Tasks))
			for _, t := range c.Tasks {
				grades[t.ID] = domain.GradeNotStarted
			}
			added = append(added, domain.Student{ID: m.newID(), Name: name, Grades: grades})
		}
		students := make([]domain.Student, 0, len(c.Students)+len(added))
		students = append(students, c.Students...)
		students = append(students, added...)
		c.Students = students
		return c
	})
	return out, added
}

// AddTask appends a new task to the class and seeds GradeNotStarted for it
// on every existing student. ok is false when classID is unknown.
func (m *Mutator) AddTask(classes []domain.ClassGroup, classID, name string) (out []domain.ClassGroup, task domain.Task, ok bool) {
	out, ok = replaceClass(classes, classID, func(c domain.ClassGroup) domain.ClassGroup {
		task = domain.Task{ID: m.newID(), Name: name, CreatedAt: m.now()}

		tasks := make([]domain.Task, 0, len(c.Tasks)+1)
		tasks = append(tasks, c.Tasks...)
		c.Tasks = append(tasks, task)

		students := make([]domain.Student, len(c.Students))
		for i, s := range c.Students {
			s.Grades = s.Grades.Clone()
			s.Grades[task.ID] = domain.GradeNotStarted
			students[i] = s
		}
		c.Students = students
		return c
	})
	return out, task, ok
}

// EditTask renames a task. Its ID and all recorded grades are kept.
func EditTask(classes []domain.ClassGroup, classID, taskID, newName string) []domain.ClassGroup {
	out, _ := replaceClass(classes, classID, func(c domain.ClassGroup) domain.ClassGroup {
		if c.Task(taskID) == nil {
			return c
		}
		tasks := make([]domain.Task, len(c.Tasks))
		for i, t := range c.Tasks {
			if t.ID == taskID {
				t.Name = newName
			}
			tasks[i] = t
		}
		c.Tasks = tasks
		return c
	})
	return out
}

// DeleteTask removes a task from the class and drops its grade entry from
// every student. The remaining tasks keep their relative order.
func DeleteTask(classes []domain.ClassGroup, classID, taskID string) []domain.ClassGroup {
	out, _ := replaceClass(classes, classID, func(c domain.ClassGroup) domain.ClassGroup {
		if c.Task(taskID) == nil {
			return c
		}
		tasks := make([]domain.Task, 0, len(c.Tasks)-1)
		for _, t := range c.Tasks {
			if t.ID != taskID {
				tasks = append(tasks, t)
			}
		}
		c.Tasks = tasks

		students := make([]domain.Student, len(c.Students))
		for i, s := range c.Students {
			if _, has := s.Grades[taskID]; has {
				s.Grades = s.Grades.Clone()
				delete(s.Grades, taskID)
			}
			students[i] = s
		}
		c.Students = students
		return c
	})
	return out
}

// UpdateGrade sets the grade of one student for one task. The call is a
// no-op unless class, student and task all resolve; a grade is never
// recorded against a task the class does not have.
func UpdateGrade(classes []domain.ClassGroup, classID, studentID, taskID string, grade domain.GradeLevel) []domain.ClassGroup {
	out, _ := replaceClass(classes, classID, func(c domain.ClassGroup) domain.ClassGroup {
		if c.Task(taskID) == nil || c.Student(studentID) == nil {
			return c
		}
		students := make([]domain.Student, len(c.Students))
		for i, s := range c.Students {
			if s.ID == studentID {
				s.Grades = s.Grades.Clone()
				s.Grades[taskID] = grade
			}
			students[i] = s
		}
		c.Students = students
		return c
	})
	return out
}

// replaceClass returns a copy of classes with the class matching id
// replaced by fn's result. When no class matches, classes is returned as-is
// and ok is false.
func replaceClass(classes []domain.ClassGroup, id string, fn func(domain.ClassGroup) domain.ClassGroup) ([]domain.ClassGroup, bool) {
	for i := range classes {
		if classes[i].ID != id {
			continue
		}
		out := make([]domain.ClassGroup, len(classes))
		copy(out, classes)
		out[i] = fn(classes[i])
		return out, true
	}
	return classes, false
}
