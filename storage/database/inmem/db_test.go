package inmemdb

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/assignment"
	"github.com/trezcool/gradebook/core/grade"
	"github.com/trezcool/gradebook/core/student"
	"github.com/trezcool/gradebook/core/subject"
	"github.com/trezcool/gradebook/storage/database/seed"
)

var ctx = context.Background()

func gradeIDs(grades []grade.Grade) []int {
	ids := make([]int, 0, len(grades))
	for _, g := range grades {
		ids = append(ids, g.ID)
	}
	return ids
}

func assignmentIDs(asgmts []assignment.Assignment) []int {
	ids := make([]int, 0, len(asgmts))
	for _, a := range asgmts {
		ids = append(ids, a.ID)
	}
	return ids
}

func TestCreate_nextID(t *testing.T) {
	db := Open()
	subjRepo := NewSubjectRepository(db)

	subj, err := subjRepo.CreateSubject(ctx, subject.Subject{Name: "Arte", Description: "Dibujo y pintura", Color: subject.ColorPink})
	require.NoError(t, err)
	assert.Equal(t, 1, subj.ID, "empty table starts at 1")

	require.NoError(t, db.Load(seed.Dataset{
		Subjects: []subject.Subject{{ID: 1, Name: "Matemáticas"}},
		Assignments: []assignment.Assignment{
			{ID: 2, SubjectID: 1, Title: "Tarea"},
			{ID: 7, SubjectID: 1, Title: "Examen"},
		},
	}))
	asgmt, err := NewAssignmentRepository(db).CreateAssignment(ctx, assignment.Assignment{SubjectID: 1, Title: "Quiz"})
	require.NoError(t, err)
	assert.Equal(t, 8, asgmt.ID, "max id + 1")

	// ids are not reused after a delete of a lower id
	require.NoError(t, NewAssignmentRepository(db).DeleteAssignment(ctx, 2))
	asgmt, err = NewAssignmentRepository(db).CreateAssignment(ctx, assignment.Assignment{SubjectID: 1, Title: "Otra"})
	require.NoError(t, err)
	assert.Equal(t, 9, asgmt.ID)
}

func TestDeleteSubject_cascades(t *testing.T) {
	db := OpenSeeded()
	subjRepo := NewSubjectRepository(db)
	asgmtRepo := NewAssignmentRepository(db)
	grdRepo := NewGradeRepository(db)

	require.NoError(t, subjRepo.DeleteSubject(ctx, 1))

	_, err := subjRepo.GetSubject(ctx, 1)
	assert.Equal(t, subject.ErrNotFound, err)

	asgmts, err := asgmtRepo.QueryAssignments(ctx, assignment.QueryFilter{})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, assignmentIDs(asgmts))

	grades, err := grdRepo.QueryGrades(ctx, grade.QueryFilter{})
	require.NoError(t, err)
	assert.Equal(t, []int{7, 8, 9, 10}, gradeIDs(grades))

	subjects, err := subjRepo.QuerySubjects(ctx, subject.QueryFilter{})
	require.NoError(t, err)
	assert.Len(t, subjects, 3)

	students, err := NewStudentRepository(db).QueryStudents(ctx, student.QueryFilter{})
	require.NoError(t, err)
	assert.Len(t, students, 4, "roster is untouched")
}

func TestDeleteAssignment_cascades(t *testing.T) {
	db := OpenSeeded()
	asgmtRepo := NewAssignmentRepository(db)
	grdRepo := NewGradeRepository(db)

	require.NoError(t, asgmtRepo.DeleteAssignment(ctx, 2))

	grades, err := grdRepo.QueryGrades(ctx, grade.QueryFilter{})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 7, 8, 9, 10}, gradeIDs(grades))

	asgmts, err := asgmtRepo.QueryAssignments(ctx, assignment.QueryFilter{})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4}, assignmentIDs(asgmts))

	_, err = NewSubjectRepository(db).GetSubject(ctx, 1)
	assert.NoError(t, err, "the subject survives")
}

func TestDelete_notFound(t *testing.T) {
	db := OpenSeeded()

	assert.Equal(t, subject.ErrNotFound, NewSubjectRepository(db).DeleteSubject(ctx, 99))
	assert.Equal(t, assignment.ErrNotFound, NewAssignmentRepository(db).DeleteAssignment(ctx, 99))
	assert.Equal(t, grade.ErrNotFound, NewGradeRepository(db).DeleteGrade(ctx, 99))

	grades, err := NewGradeRepository(db).QueryGrades(ctx, grade.QueryFilter{})
	require.NoError(t, err)
	assert.Len(t, grades, 10)
}

func TestUpdate(t *testing.T) {
	db := OpenSeeded()
	subjRepo := NewSubjectRepository(db)

	t.Run("unknown id", func(t *testing.T) {
		_, err := subjRepo.UpdateSubject(ctx, subject.Subject{ID: 42, Name: "Nada"})
		assert.Equal(t, subject.ErrNotFound, err)
		_, err = NewAssignmentRepository(db).UpdateAssignment(ctx, assignment.Assignment{ID: 42})
		assert.Equal(t, assignment.ErrNotFound, err)
		_, err = NewGradeRepository(db).UpdateGrade(ctx, grade.Grade{ID: 42})
		assert.Equal(t, grade.ErrNotFound, err)

		subjects, err := subjRepo.QuerySubjects(ctx, subject.QueryFilter{})
		require.NoError(t, err)
		assert.Len(t, subjects, 4)
	})

	t.Run("keeps id", func(t *testing.T) {
		updated, err := subjRepo.UpdateSubject(ctx, subject.Subject{
			ID:          2,
			Name:        "Ciencias Naturales",
			Description: "Física, química y biología",
			Color:       subject.ColorTeal,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, updated.ID)
		assert.Equal(t, "Ciencias Naturales", updated.Name)
		assert.Equal(t, core.MustParseDate("2025-01-02"), updated.CreatedAt, "zero date keeps the stored one")

		got, err := subjRepo.GetSubject(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	t.Run("shrinking max score leaves grades alone", func(t *testing.T) {
		asgmtRepo := NewAssignmentRepository(db)
		asgmt, err := asgmtRepo.GetAssignment(ctx, 1)
		require.NoError(t, err)
		asgmt.MaxScore = 50
		_, err = asgmtRepo.UpdateAssignment(ctx, asgmt)
		require.NoError(t, err)

		grd, err := NewGradeRepository(db).GetGrade(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, 92.0, grd.Score)
	})
}

func TestQueryFilters(t *testing.T) {
	db := OpenSeeded()
	asgmtRepo := NewAssignmentRepository(db)
	grdRepo := NewGradeRepository(db)

	tests := []struct {
		name   string
		filter grade.QueryFilter
		want   []int
	}{
		{name: "all", want: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{name: "by subject", filter: grade.QueryFilter{SubjectID: 1}, want: []int{1, 2, 3, 4, 5, 6}},
		{name: "by assignment", filter: grade.QueryFilter{AssignmentID: 3}, want: []int{7, 8}},
		{name: "by student", filter: grade.QueryFilter{StudentID: 1}, want: []int{1, 5, 9}},
		{name: "combined", filter: grade.QueryFilter{SubjectID: 1, StudentID: 2}, want: []int{2, 6}},
		{name: "no match", filter: grade.QueryFilter{SubjectID: 4}, want: []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grades, err := grdRepo.QueryGrades(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, gradeIDs(grades))
		})
	}

	asgmts, err := asgmtRepo.QueryAssignments(ctx, assignment.QueryFilter{SubjectID: 1, Kind: assignment.KindExam})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, assignmentIDs(asgmts))

	asgmts, err = asgmtRepo.QueryAssignments(ctx, assignment.QueryFilter{Search: "QUÍMICA"})
	require.NoError(t, err)
	assert.Equal(t, []int{3}, assignmentIDs(asgmts))
}

func TestQueryOrdering(t *testing.T) {
	db := OpenSeeded()
	grdRepo := NewGradeRepository(db)

	grades, err := grdRepo.QueryGrades(ctx, grade.QueryFilter{AssignmentID: 1}, core.DBOrdering{Field: "score", Ascending: true})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 4, 2}, gradeIDs(grades), "ascending")

	grades, err = grdRepo.QueryGrades(ctx, grade.QueryFilter{AssignmentID: 1}, core.DBOrdering{Field: "score", Ascending: false})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 1, 3}, gradeIDs(grades), "descending")

	grades, err = grdRepo.QueryGrades(ctx, grade.QueryFilter{AssignmentID: 1},
		core.DBOrdering{Field: "submitted_at", Ascending: false},
		core.DBOrdering{Field: "student_name", Ascending: true},
	)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2, 4}, gradeIDs(grades), "multiple fields")

	asgmts, err := NewAssignmentRepository(db).QueryAssignments(ctx, assignment.QueryFilter{}, core.DBOrdering{Field: "nope", Ascending: true})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, assignmentIDs(asgmts), "unknown fields are ignored")
}

func TestReset(t *testing.T) {
	db := OpenSeeded()
	require.NoError(t, NewSubjectRepository(db).DeleteSubject(ctx, 1))
	_, err := NewSubjectRepository(db).CreateSubject(ctx, subject.Subject{Name: "Arte"})
	require.NoError(t, err)

	require.NoError(t, db.Reset())

	subjects, err := NewSubjectRepository(db).QuerySubjects(ctx, subject.QueryFilter{})
	require.NoError(t, err)
	assert.Equal(t, seed.Default().Subjects, subjects)
	grades, err := NewGradeRepository(db).QueryGrades(ctx, grade.QueryFilter{})
	require.NoError(t, err)
	assert.Len(t, grades, 10)
}

func TestLoad_brokenIDs(t *testing.T) {
	db := OpenSeeded()
	err := db.Load(seed.Dataset{
		Subjects: []subject.Subject{{ID: 1, Name: "Arte"}, {ID: 1, Name: "Música"}},
	})
	require.Error(t, err)
	assert.True(t, core.IsShutdown(err))
	assert.Equal(t, "loading dataset: duplicate subject id 1", err.Error())

	subjects, err := NewSubjectRepository(db).QuerySubjects(ctx, subject.QueryFilter{})
	require.NoError(t, err)
	assert.Equal(t, seed.Default().Subjects, subjects, "tables are left untouched")
}

func TestConcurrentDeletes(t *testing.T) {
	db := OpenSeeded()
	subjRepo := NewSubjectRepository(db)
	grdRepo := NewGradeRepository(db)

	var wg sync.WaitGroup
	for id := 1; id <= 4; id++ {
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			_ = subjRepo.DeleteSubject(ctx, id)
		}(id)
		go func() {
			defer wg.Done()
			_, _ = grdRepo.QueryGrades(ctx, grade.QueryFilter{SubjectID: 1})
		}()
	}
	wg.Wait()

	grades, err := grdRepo.QueryGrades(ctx, grade.QueryFilter{})
	require.NoError(t, err)
	assert.Empty(t, grades)
}
