package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/taskmaster/internal/domain"
	"github.com/alexanderramin/taskmaster/internal/roster"
)

var fixtureSeq atomic.Int64

// SeqMutator returns a roster.Mutator issuing IDs "<prefix>-1", "<prefix>-2",
// ... and task timestamps one minute apart, so fixtures are deterministic.
func SeqMutator(prefix string) *roster.Mutator {
	var n atomic.Int64
	base := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)
	var tick atomic.Int64
	return roster.New(
		roster.WithIDFunc(func() string {
			return fmt.Sprintf("%s-%d", prefix, n.Add(1))
		}),
		roster.WithClock(func() time.Time {
			return base.Add(time.Duration(tick.Add(1)) * time.Minute)
		}),
	)
}

// ClassOption adds content to a fixture class.
type ClassOption func(b *classBuilder)

type classBuilder struct {
	m       *roster.Mutator
	classes []domain.ClassGroup
	id      string
}

func (b *classBuilder) class() *domain.ClassGroup {
	return domain.FindClass(b.classes, b.id)
}

// WithStudents imports the given student names.
func WithStudents(names ...string) ClassOption {
	return func(b *classBuilder) {
		b.classes, _ = b.m.ImportStudents(b.classes, b.id, names)
	}
}

// WithTasks adds tasks in order, so the last one is the most recent.
func WithTasks(names ...string) ClassOption {
	return func(b *classBuilder) {
		for _, n := range names {
			b.classes, _, _ = b.m.AddTask(b.classes, b.id, n)
		}
	}
}

// WithGrade records a grade by student and task name. Unknown names are
// ignored.
func WithGrade(student, task string, g domain.GradeLevel) ClassOption {
	return func(b *classBuilder) {
		c := b.class()
		var sID, tID string
		for _, s := range c.Students {
			if s.Name == student {
				sID = s.ID
				break
			}
		}
		for _, t := range c.Tasks {
			if t.Name == task {
				tID = t.ID
				break
			}
		}
		b.classes = roster.UpdateGrade(b.classes, b.id, sID, tID, g)
	}
}

// NewTestClass builds a class through the real mutators. IDs are prefixed
// per fixture so classes built in the same test never collide.
func NewTestClass(name string, opts ...ClassOption) domain.ClassGroup {
	prefix := fmt.Sprintf("fx%d", fixtureSeq.Add(1))
	b := &classBuilder{m: SeqMutator(prefix)}
	var c domain.ClassGroup
	b.classes, c = b.m.CreateClass(nil, name)
	b.id = c.ID
	for _, opt := range opts {
		opt(b)
	}
	return *b.class()
}
