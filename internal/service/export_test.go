package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/taskmaster/internal/domain"
	"github.com/alexanderramin/taskmaster/internal/exporter"
	"github.com/alexanderramin/taskmaster/internal/testutil"
	"github.com/alexanderramin/taskmaster/internal/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportService_WritesReport(t *testing.T) {
	dir := t.TempDir()
	c := testutil.NewTestClass("Math",
		testutil.WithStudents("Alice"),
		testutil.WithTasks("Quiz"),
		testutil.WithGrade("Alice", "Quiz", domain.GradeGood),
	)
	obs := &recordingObserver{}

	path, err := NewExportService(dir, obs).ExportClass(context.Background(), &c, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Math_Report.xlsx"), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Math")
	require.NoError(t, err)
	assert.Equal(t, exporter.Table(&c), rows)

	e := obs.last()
	assert.Equal(t, "export_class", e.Name)
	assert.True(t, e.Success)
	assert.Equal(t, path, e.Fields["path"])
}

func TestExportService_DirOverride(t *testing.T) {
	override := t.TempDir()
	c := testutil.NewTestClass("Art")

	path, err := NewExportService(t.TempDir()).ExportClass(context.Background(), &c, override)
	require.NoError(t, err)
	assert.Equal(t, override, filepath.Dir(path))
}

func TestExportService_NoClass(t *testing.T) {
	_, err := NewExportService(t.TempDir()).ExportClass(context.Background(), nil, "")
	assert.ErrorIs(t, err, workspace.ErrNoClassSelected)
}
