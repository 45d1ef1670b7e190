package domain

import "time"

// Task is a gradable assignment within a class.
type Task struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// GradeMap records a student's grade per task ID. A missing key means the
// task has not been graded yet and reads as GradeNotStarted.
type GradeMap map[string]GradeLevel

// Get returns the grade for taskID, defaulting to GradeNotStarted.
func (m GradeMap) Get(taskID string) GradeLevel {
	if g, ok := m[taskID]; ok && g != "" {
		return g
	}
	return GradeNotStarted
}

// Clone returns an independent copy of the map.
func (m GradeMap) Clone() GradeMap {
	out := make(GradeMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Student is a roster member of exactly one class.
type Student struct {
	ID     string
	Name   string
	Grades GradeMap
}

// ClassGroup is one roster/gradebook. Students and Tasks are kept in
// insertion order; the last task is the most recently created.
type ClassGroup struct {
	ID       string
	Name     string
	Students []Student
	Tasks    []Task
}

// Task returns the task with the given ID, or nil.
func (c *ClassGroup) Task(id string) *Task {
	for i := range c.Tasks {
		if c.Tasks[i].ID == id {
			return &c.Tasks[i]
		}
	}
	return nil
}

// Student returns the student with the given ID, or nil.
func (c *ClassGroup) Student(id string) *Student {
	for i := range c.Students {
		if c.Students[i].ID == id {
			return &c.Students[i]
		}
	}
	return nil
}

// LatestTask returns the most recently created task, or nil when the class
// has none.
func (c *ClassGroup) LatestTask() *Task {
	if len(c.Tasks) == 0 {
		return nil
	}
	return &c.Tasks[len(c.Tasks)-1]
}

// FindClass returns the class with the given ID from classes, or nil.
func FindClass(classes []ClassGroup, id string) *ClassGroup {
	for i := range classes {
		if classes[i].ID == id {
			return &classes[i]
		}
	}
	return nil
}
