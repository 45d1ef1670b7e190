package cli

import (
	"testing"

	"github.com/alexanderramin/taskmaster/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradeFlag(t *testing.T) {
	var f gradeFlag
	assert.Equal(t, "", f.String())
	assert.Equal(t, "grade", f.Type())

	require.NoError(t, f.Set("questionable"))
	assert.Equal(t, domain.GradeQuestionable, f.grade)
	assert.Equal(t, "Q", f.String())

	require.NoError(t, f.Set("n/a"))
	assert.Equal(t, domain.GradeNotStarted, f.grade)
	assert.Equal(t, "N/A", f.String())

	assert.Error(t, f.Set("B+"))
	assert.Equal(t, domain.GradeNotStarted, f.grade, "failed Set keeps the previous value")
}
