package inmemdb

import (
	"cmp"
	"context"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/student"
)

var studentFields = map[string]comparer[student.Student]{
	"id":            func(a, b student.Student) int { return cmp.Compare(a.ID, b.ID) },
	"first_name":    func(a, b student.Student) int { return cmp.Compare(a.FirstName, b.FirstName) },
	"last_name":     func(a, b student.Student) int { return cmp.Compare(a.LastName, b.LastName) },
	"email":         func(a, b student.Student) int { return cmp.Compare(a.Email, b.Email) },
	"registered_at": func(a, b student.Student) int { return compareDates(a.RegisteredAt, b.RegisteredAt) },
}

// studentRepository is read-only: the roster only changes through DB.Load.
type studentRepository struct {
	db *DB
}

var _ student.Repository = (*studentRepository)(nil)

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) QueryStudents(_ context.Context, filter student.QueryFilter, ordering ...core.DBOrdering) ([]student.Student, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	students := make([]student.Student, 0, len(repo.db.students))
	for _, stud := range rows(repo.db.students) {
		if filter.Matches(stud) {
			students = append(students, stud)
		}
	}
	orderBy(students, ordering, studentFields)
	return students, nil
}

func (repo *studentRepository) GetStudent(_ context.Context, id int) (student.Student, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if stud, ok := repo.db.students[id]; ok {
		return *stud, nil
	}
	return student.Student{}, student.ErrNotFound
}
