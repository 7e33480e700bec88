package grade

import (
	"context"
	"errors"

	"github.com/trezcool/gradebook/core"
)

var ErrNotFound = errors.New("grade not found")

type (
	Repository interface {
		CreateGrade(ctx context.Context, grd Grade) (Grade, error)
		// QueryGrades applies AND operation on available QueryFilter fields.
		QueryGrades(ctx context.Context, filter QueryFilter, ordering ...core.DBOrdering) ([]Grade, error)
		GetGrade(ctx context.Context, id int) (Grade, error)
		UpdateGrade(ctx context.Context, grd Grade) (Grade, error)
		DeleteGrade(ctx context.Context, id int) error
	}

	Service interface {
		Create(ctx context.Context, ng NewGrade) (Grade, error)
		Query(ctx context.Context, filter QueryFilter, ordering ...core.DBOrdering) ([]Grade, error)
		GetByID(ctx context.Context, id int) (Grade, error)
		// Update expects ug to be validated against the stored Grade; unset fields are kept.
		Update(ctx context.Context, id int, ug UpdateGrade) (Grade, error)
		Delete(ctx context.Context, id int) error
	}

	service struct {
		repo Repository
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create expects a validated NewGrade; the student name comes from validation.
func (svc *service) Create(ctx context.Context, ng NewGrade) (Grade, error) {
	return svc.repo.CreateGrade(ctx, Grade{
		AssignmentID: ng.AssignmentID,
		StudentID:    ng.StudentID,
		StudentName:  ng.studentName,
		Score:        ng.Score,
		SubmittedAt:  ng.SubmittedAt,
		Comment:      ng.Comment,
	})
}

func (svc *service) Query(ctx context.Context, filter QueryFilter, ordering ...core.DBOrdering) ([]Grade, error) {
	return svc.repo.QueryGrades(ctx, filter, ordering...)
}

func (svc *service) GetByID(ctx context.Context, id int) (Grade, error) {
	return svc.repo.GetGrade(ctx, id)
}

// Update expects a validated UpdateGrade; unset fields keep the stored values.
func (svc *service) Update(ctx context.Context, id int, ug UpdateGrade) (Grade, error) {
	grd, err := svc.repo.GetGrade(ctx, id)
	if err != nil {
		return Grade{}, err
	}
	if ug.AssignmentID != 0 {
		grd.AssignmentID = ug.AssignmentID
	}
	if ug.StudentID != 0 {
		grd.StudentID = ug.StudentID
	}
	if ug.studentName != "" {
		grd.StudentName = ug.studentName
	}
	if ug.Score != nil {
		grd.Score = *ug.Score
	}
	if !ug.SubmittedAt.IsZero() {
		grd.SubmittedAt = ug.SubmittedAt
	}
	if ug.Comment != nil {
		grd.Comment = *ug.Comment
	}
	return svc.repo.UpdateGrade(ctx, grd)
}

func (svc *service) Delete(ctx context.Context, id int) error {
	return svc.repo.DeleteGrade(ctx, id)
}
