package inmemdb

import (
	"cmp"
	"context"
	"strings"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/subject"
)

var subjectFields = map[string]comparer[subject.Subject]{
	"id":         func(a, b subject.Subject) int { return cmp.Compare(a.ID, b.ID) },
	"name":       func(a, b subject.Subject) int { return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)) },
	"created_at": func(a, b subject.Subject) int { return compareDates(a.CreatedAt, b.CreatedAt) },
}

type subjectRepository struct {
	db *DB
}

var _ subject.Repository = (*subjectRepository)(nil)

func NewSubjectRepository(db *DB) subject.Repository {
	return &subjectRepository{db: db}
}

func (repo *subjectRepository) CreateSubject(_ context.Context, subj subject.Subject) (subject.Subject, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	subj.ID = nextID(repo.db.subjects)
	repo.db.subjects[subj.ID] = &subj
	return subj, nil
}

func (repo *subjectRepository) QuerySubjects(
	_ context.Context,
	filter subject.QueryFilter,
	ordering ...core.DBOrdering,
) ([]subject.Subject, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	search := strings.ToLower(filter.Search)
	subjects := make([]subject.Subject, 0, len(repo.db.subjects))
	for _, subj := range rows(repo.db.subjects) {
		if search != "" &&
			!strings.Contains(strings.ToLower(subj.Name), search) &&
			!strings.Contains(strings.ToLower(subj.Description), search) {
			continue
		}
		subjects = append(subjects, subj)
	}
	orderBy(subjects, ordering, subjectFields)
	return subjects, nil
}

func (repo *subjectRepository) GetSubject(_ context.Context, id int) (subject.Subject, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if subj, ok := repo.db.subjects[id]; ok {
		return *subj, nil
	}
	return subject.Subject{}, subject.ErrNotFound
}

func (repo *subjectRepository) UpdateSubject(_ context.Context, subj subject.Subject) (subject.Subject, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	orig, ok := repo.db.subjects[subj.ID]
	if !ok {
		return subject.Subject{}, subject.ErrNotFound
	}
	orig.Name = subj.Name
	orig.Description = subj.Description
	orig.Color = subj.Color
	if !subj.CreatedAt.IsZero() {
		orig.CreatedAt = subj.CreatedAt
	}
	return *orig, nil
}

func (repo *subjectRepository) DeleteSubject(_ context.Context, id int) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.subjects[id]; !ok {
		return subject.ErrNotFound
	}
	for asgmtID, asgmt := range repo.db.assignments {
		if asgmt.SubjectID == id {
			repo.db.deleteAssignment(asgmtID)
		}
	}
	delete(repo.db.subjects, id)
	return nil
}
