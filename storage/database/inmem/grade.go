package inmemdb

import (
	"cmp"
	"context"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/grade"
)

var gradeFields = map[string]comparer[grade.Grade]{
	"id":            func(a, b grade.Grade) int { return cmp.Compare(a.ID, b.ID) },
	"assignment_id": func(a, b grade.Grade) int { return cmp.Compare(a.AssignmentID, b.AssignmentID) },
	"student_id":    func(a, b grade.Grade) int { return cmp.Compare(a.StudentID, b.StudentID) },
	"student_name":  func(a, b grade.Grade) int { return cmp.Compare(a.StudentName, b.StudentName) },
	"score":         func(a, b grade.Grade) int { return cmp.Compare(a.Score, b.Score) },
	"submitted_at":  func(a, b grade.Grade) int { return compareDates(a.SubmittedAt, b.SubmittedAt) },
}

type gradeRepository struct {
	db *DB
}

var _ grade.Repository = (*gradeRepository)(nil)

func NewGradeRepository(db *DB) grade.Repository {
	return &gradeRepository{db: db}
}

func (repo *gradeRepository) CreateGrade(_ context.Context, grd grade.Grade) (grade.Grade, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	grd.ID = nextID(repo.db.grades)
	repo.db.grades[grd.ID] = &grd
	return grd, nil
}

func (repo *gradeRepository) QueryGrades(_ context.Context, filter grade.QueryFilter, ordering ...core.DBOrdering) ([]grade.Grade, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	grades := make([]grade.Grade, 0, len(repo.db.grades))
	for _, grd := range rows(repo.db.grades) {
		if filter.AssignmentID != 0 && grd.AssignmentID != filter.AssignmentID {
			continue
		}
		if filter.StudentID != 0 && grd.StudentID != filter.StudentID {
			continue
		}
		if filter.SubjectID != 0 {
			asgmt, ok := repo.db.assignments[grd.AssignmentID]
			if !ok || asgmt.SubjectID != filter.SubjectID {
				continue
			}
		}
		grades = append(grades, grd)
	}
	orderBy(grades, ordering, gradeFields)
	return grades, nil
}

func (repo *gradeRepository) GetGrade(_ context.Context, id int) (grade.Grade, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if grd, ok := repo.db.grades[id]; ok {
		return *grd, nil
	}
	return grade.Grade{}, grade.ErrNotFound
}

func (repo *gradeRepository) UpdateGrade(_ context.Context, grd grade.Grade) (grade.Grade, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	orig, ok := repo.db.grades[grd.ID]
	if !ok {
		return grade.Grade{}, grade.ErrNotFound
	}
	orig.AssignmentID = grd.AssignmentID
	orig.StudentID = grd.StudentID
	if grd.StudentName != "" {
		orig.StudentName = grd.StudentName
	}
	orig.Score = grd.Score
	orig.SubmittedAt = grd.SubmittedAt
	orig.Comment = grd.Comment
	return *orig, nil
}

func (repo *gradeRepository) DeleteGrade(_ context.Context, id int) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.grades[id]; !ok {
		return grade.ErrNotFound
	}
	delete(repo.db.grades, id)
	return nil
}
