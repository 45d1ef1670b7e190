package cli

import (
	"github.com/alexanderramin/taskmaster/internal/domain"
	"github.com/spf13/pflag"
)

// gradeFlag is a pflag.Value accepting grade codes or labels.
type gradeFlag struct {
	grade domain.GradeLevel
	set   bool
}

var _ pflag.Value = (*gradeFlag)(nil)

func (f *gradeFlag) String() string {
	if !f.set {
		return ""
	}
	return f.grade.Code()
}

func (f *gradeFlag) Set(s string) error {
	g, err := domain.ParseGradeLevel(s)
	if err != nil {
		return err
	}
	f.grade = g
	f.set = true
	return nil
}

func (f *gradeFlag) Type() string { return "grade" }
