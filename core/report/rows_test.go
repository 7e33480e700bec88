package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/assignment"
	"github.com/trezcool/gradebook/core/grade"
	"github.com/trezcool/gradebook/storage/database/seed"
)

func TestAssignmentRows(t *testing.T) {
	ds := seed.Default()
	asgmts := append(ds.Assignments, assignment.Assignment{
		ID: 5, SubjectID: 42, Title: "Huérfana",
		DueDate: core.MustParseDate("2025-03-01"),
	})

	rows := AssignmentRows(asgmts, ds.Subjects, core.MustParseDate("2025-01-22"))

	if assert.Len(t, rows, 5) {
		assert.Equal(t, "Matemáticas", rows[0].SubjectName)
		assert.Equal(t, "20/01/2025", rows[0].DueLabel)
		assert.True(t, rows[0].Overdue)
		assert.False(t, rows[1].Overdue, "due 2025-01-25")
		assert.Equal(t, MissingSubject, rows[4].SubjectName)
	}
}

func TestGradeRows(t *testing.T) {
	ds := seed.Default()
	grades := append(ds.Grades, grade.Grade{ID: 11, AssignmentID: 404, Score: 5})

	rows := GradeRows(grades, ds.Assignments, ds.Subjects)

	if assert.Len(t, rows, 11) {
		// 45 out of 50
		assert.Equal(t, "Tarea de Geometría", rows[4].AssignmentTitle)
		assert.Equal(t, "Matemáticas", rows[4].SubjectName)
		assert.Equal(t, 90.0, rows[4].Percentage)
		assert.Equal(t, grade.BandExcellent, rows[4].Band)
		assert.True(t, rows[4].Passed)
		assert.NotEmpty(t, rows[4].SubmittedLabel)

		orphan := rows[10]
		assert.Equal(t, MissingAssignment, orphan.AssignmentTitle)
		assert.Equal(t, MissingValue, orphan.SubjectName)
		assert.Zero(t, orphan.Percentage)
		assert.Empty(t, orphan.Band)
		assert.False(t, orphan.Passed)
	}
}
