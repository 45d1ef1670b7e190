package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/taskmaster/internal/domain"
)

// The persisted layout is a JSON array of classes with nested students,
// tasks and per-task grade codes. Task timestamps are epoch milliseconds.

type classRecord struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Students []studentRecord `json:"students"`
	Tasks    []taskRecord    `json:"tasks"`
}

type studentRecord struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Grades map[string]string `json:"grades"`
}

type taskRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt"`
}

// MarshalClasses serializes the class collection to its persisted JSON form.
func MarshalClasses(classes []domain.ClassGroup) ([]byte, error) {
	records := make([]classRecord, len(classes))
	for i, c := range classes {
		rec := classRecord{
			ID:       c.ID,
			Name:     c.Name,
			Students: make([]studentRecord, len(c.Students)),
			Tasks:    make([]taskRecord, len(c.Tasks)),
		}
		for j, t := range c.Tasks {
			rec.Tasks[j] = taskRecord{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt.UnixMilli()}
		}
		for j, s := range c.Students {
			grades := make(map[string]string, len(s.Grades))
			for taskID, g := range s.Grades {
				grades[taskID] = string(g)
			}
			rec.Students[j] = studentRecord{ID: s.ID, Name: s.Name, Grades: grades}
		}
		records[i] = rec
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encoding classes: %w", err)
	}
	return data, nil
}

// DroppedGrades counts grade entries UnmarshalClasses discarded.
type DroppedGrades struct {
	// Orphaned grades point at a task the class no longer has.
	Orphaned int
	// Unknown grades hold a code outside the grade scale.
	Unknown int
}

// Total returns the number of discarded entries.
func (d DroppedGrades) Total() int { return d.Orphaned + d.Unknown }

// UnmarshalClasses parses the persisted JSON form. Missing collections decode
// as empty, never nil. Grades for tasks the class does not have and grades
// with unknown codes are dropped and counted; a dropped grade reads as
// not started.
func UnmarshalClasses(data []byte) ([]domain.ClassGroup, DroppedGrades, error) {
	var dropped DroppedGrades
	var records []classRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, dropped, fmt.Errorf("decoding classes: %w", err)
	}

	classes := make([]domain.ClassGroup, len(records))
	for i, rec := range records {
		c := domain.ClassGroup{
			ID:       rec.ID,
			Name:     rec.Name,
			Students: make([]domain.Student, len(rec.Students)),
			Tasks:    make([]domain.Task, len(rec.Tasks)),
		}
		taskIDs := make(map[string]bool, len(rec.Tasks))
		for j, t := range rec.Tasks {
			c.Tasks[j] = domain.Task{ID: t.ID, Name: t.Name, CreatedAt: time.UnixMilli(t.CreatedAt).UTC()}
			taskIDs[t.ID] = true
		}
		for j, s := range rec.Students {
			grades := make(domain.GradeMap, len(s.Grades))
			for taskID, code := range s.Grades {
				g := domain.GradeLevel(code)
				switch {
				case !taskIDs[taskID]:
					dropped.Orphaned++
				case !g.Valid():
					dropped.Unknown++
				default:
					grades[taskID] = g
				}
			}
			c.Students[j] = domain.Student{ID: s.ID, Name: s.Name, Grades: grades}
		}
		classes[i] = c
	}
	return classes, dropped, nil
}
