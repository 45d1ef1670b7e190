package formatter

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/taskmaster/internal/domain"
	"github.com/alexanderramin/taskmaster/internal/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences for stripping before golden comparison.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes from a string so golden files
// are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// goldenTest compares got against a golden file in testdata/<name>.golden.
// Set GOLDEN_UPDATE=1 to regenerate golden files.
func goldenTest(t *testing.T, name, got string) {
	t.Helper()

	goldenDir := filepath.Join("testdata")
	goldenPath := filepath.Join(goldenDir, name+".golden")

	stripped := stripANSI(got)

	if os.Getenv("GOLDEN_UPDATE") == "1" {
		require.NoError(t, os.MkdirAll(goldenDir, 0755))
		require.NoError(t, os.WriteFile(goldenPath, []byte(stripped), 0644))
		t.Logf("updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if os.IsNotExist(err) {
		t.Fatalf("golden file %s does not exist; run with GOLDEN_UPDATE=1 to create it", goldenPath)
	}
	require.NoError(t, err)

	assert.Equal(t, string(expected), stripped,
		"output does not match golden file %s; run with GOLDEN_UPDATE=1 to update", goldenPath)
}

func goldenClass() *domain.ClassGroup {
	t0 := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)
	return &domain.ClassGroup{
		ID:   "class-0001",
		Name: "Math 101",
		Tasks: []domain.Task{
			{ID: "task-0001", Name: "Quiz 1", CreatedAt: t0},
			{ID: "task-0002", Name: "Chapter Review Essay", CreatedAt: t0.Add(time.Hour)},
		},
		Students: []domain.Student{
			{ID: "stud-0001", Name: "Alice", Grades: domain.GradeMap{"task-0001": domain.GradeExcellent, "task-0002": domain.GradeGood}},
			{ID: "stud-0002", Name: "Bob", Grades: domain.GradeMap{"task-0002": domain.GradeDeficient}},
		},
	}
}

func TestFormatMatrix_Golden(t *testing.T) {
	c := goldenClass()
	goldenTest(t, "matrix", FormatMatrix(c.Name, views.Overview(c)))
}
