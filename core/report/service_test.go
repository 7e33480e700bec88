package report_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/gradebook/core/assignment"
	"github.com/trezcool/gradebook/core/grade"
	"github.com/trezcool/gradebook/core/report"
	"github.com/trezcool/gradebook/core/student"
	"github.com/trezcool/gradebook/core/subject"
	inmemdb "github.com/trezcool/gradebook/storage/database/inmem"
)

func newService(db *inmemdb.DB) *report.Service {
	return report.NewService(
		subject.NewService(inmemdb.NewSubjectRepository(db)),
		assignment.NewService(inmemdb.NewAssignmentRepository(db)),
		grade.NewService(inmemdb.NewGradeRepository(db)),
		student.NewService(inmemdb.NewStudentRepository(db)),
		60,
	)
}

func TestService(t *testing.T) {
	ctx := context.Background()
	db := inmemdb.OpenSeeded()
	svc := newService(db)

	sum, err := svc.SubjectStats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 71.67, sum.Mean)
	assert.Equal(t, 4, sum.StudentCount)

	_, err = svc.SubjectStats(ctx, 99)
	assert.Equal(t, subject.ErrNotFound, err)

	asum, err := svc.AssignmentStats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 85.75, asum.Mean)

	_, err = svc.AssignmentStats(ctx, 99)
	assert.Equal(t, assignment.ErrNotFound, err)

	all, err := svc.AllSubjectStats(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	ov, err := svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, ov.Totals.Grades)

	// summaries follow the store
	require.NoError(t, inmemdb.NewAssignmentRepository(db).DeleteAssignment(ctx, 2))
	sum, err = svc.SubjectStats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 85.75, sum.Mean)
	assert.Equal(t, 1, sum.AssignmentCount)
}
