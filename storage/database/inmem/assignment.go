package inmemdb

import (
	"cmp"
	"context"
	"strings"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/assignment"
)

var assignmentFields = map[string]comparer[assignment.Assignment]{
	"id":         func(a, b assignment.Assignment) int { return cmp.Compare(a.ID, b.ID) },
	"subject_id": func(a, b assignment.Assignment) int { return cmp.Compare(a.SubjectID, b.SubjectID) },
	"title": func(a, b assignment.Assignment) int {
		return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	},
	"kind":       func(a, b assignment.Assignment) int { return cmp.Compare(a.Kind, b.Kind) },
	"created_at": func(a, b assignment.Assignment) int { return compareDates(a.CreatedAt, b.CreatedAt) },
	"due_date":   func(a, b assignment.Assignment) int { return compareDates(a.DueDate, b.DueDate) },
	"max_score":  func(a, b assignment.Assignment) int { return cmp.Compare(a.MaxScore, b.MaxScore) },
}

type assignmentRepository struct {
	db *DB
}

var _ assignment.Repository = (*assignmentRepository)(nil)

func NewAssignmentRepository(db *DB) assignment.Repository {
	return &assignmentRepository{db: db}
}

func (repo *assignmentRepository) CreateAssignment(_ context.Context, asgmt assignment.Assignment) (assignment.Assignment, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	asgmt.ID = nextID(repo.db.assignments)
	repo.db.assignments[asgmt.ID] = &asgmt
	return asgmt, nil
}

func (repo *assignmentRepository) QueryAssignments(
	_ context.Context,
	filter assignment.QueryFilter,
	ordering ...core.DBOrdering,
) ([]assignment.Assignment, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	search := strings.ToLower(filter.Search)
	asgmts := make([]assignment.Assignment, 0, len(repo.db.assignments))
	for _, asgmt := range rows(repo.db.assignments) {
		if filter.SubjectID != 0 && asgmt.SubjectID != filter.SubjectID {
			continue
		}
		if filter.Kind != "" && asgmt.Kind != filter.Kind {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(asgmt.Title), search) &&
			!strings.Contains(strings.ToLower(asgmt.Description), search) {
			continue
		}
		asgmts = append(asgmts, asgmt)
	}
	orderBy(asgmts, ordering, assignmentFields)
	return asgmts, nil
}

func (repo *assignmentRepository) GetAssignment(_ context.Context, id int) (assignment.Assignment, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if asgmt, ok := repo.db.assignments[id]; ok {
		return *asgmt, nil
	}
	return assignment.Assignment{}, assignment.ErrNotFound
}

func (repo *assignmentRepository) UpdateAssignment(_ context.Context, asgmt assignment.Assignment) (assignment.Assignment, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	orig, ok := repo.db.assignments[asgmt.ID]
	if !ok {
		return assignment.Assignment{}, assignment.ErrNotFound
	}
	orig.SubjectID = asgmt.SubjectID
	orig.Title = asgmt.Title
	orig.Description = asgmt.Description
	orig.Kind = asgmt.Kind
	orig.DueDate = asgmt.DueDate
	orig.MaxScore = asgmt.MaxScore
	if !asgmt.CreatedAt.IsZero() {
		orig.CreatedAt = asgmt.CreatedAt
	}
	return *orig, nil
}

func (repo *assignmentRepository) DeleteAssignment(_ context.Context, id int) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.assignments[id]; !ok {
		return assignment.ErrNotFound
	}
	repo.db.deleteAssignment(id)
	return nil
}

// deleteAssignment removes the assignment and its grades; the caller holds the write lock.
func (db *DB) deleteAssignment(id int) {
	for grdID, grd := range db.grades {
		if grd.AssignmentID == id {
			delete(db.grades, grdID)
		}
	}
	delete(db.assignments, id)
}
