package domain

import (
	"fmt"
	"strings"
)

// GradeLevel is one step of the five-point grading scale. The string value
// is the short code, which is also what gets persisted and exported.
type GradeLevel string

const (
	GradeNotStarted   GradeLevel = "N/A"
	GradeExcellent    GradeLevel = "E"
	GradeGood         GradeLevel = "G"
	GradeQuestionable GradeLevel = "Q"
	GradeDeficient    GradeLevel = "D"
)

// GradeCycle is the fixed order grades are stepped through by repeated taps.
var GradeCycle = []GradeLevel{
	GradeNotStarted,
	GradeExcellent,
	GradeGood,
	GradeQuestionable,
	GradeDeficient,
}

var gradeLabels = map[GradeLevel]string{
	GradeNotStarted:   "Not Started",
	GradeExcellent:    "Excellent",
	GradeGood:         "Good",
	GradeQuestionable: "Questionable",
	GradeDeficient:    "Deficient",
}

// NextGrade returns the grade after current in GradeCycle, wrapping from the
// last element back to the first. A value outside the cycle yields the first
// element.
func NextGrade(current GradeLevel) GradeLevel {
	idx := -1
	for i, g := range GradeCycle {
		if g == current {
			idx = i
			break
		}
	}
	return GradeCycle[(idx+1)%len(GradeCycle)]
}

// Code returns the short display code.
func (g GradeLevel) Code() string { return string(g) }

// Label returns the descriptive name, e.g. "Excellent".
func (g GradeLevel) Label() string {
	if l, ok := gradeLabels[g]; ok {
		return l
	}
	return string(g)
}

// Valid reports whether g is one of the five scale values.
func (g GradeLevel) Valid() bool {
	_, ok := gradeLabels[g]
	return ok
}

// ParseGradeLevel accepts a short code ("E", "n/a", "NA") or a label
// ("excellent", "not started"), case-insensitively.
func ParseGradeLevel(s string) (GradeLevel, error) {
	in := strings.TrimSpace(s)
	switch strings.ToUpper(in) {
	case "NA", "N/A", "-":
		return GradeNotStarted, nil
	}
	for _, g := range GradeCycle {
		if strings.EqualFold(in, g.Code()) || strings.EqualFold(in, g.Label()) {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown grade %q (expected one of N/A, E, G, Q, D)", s)
}
