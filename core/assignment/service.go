package assignment

import (
	"context"
	"errors"

	"github.com/trezcool/gradebook/core"
)

var ErrNotFound = errors.New("assignment not found")

type (
	Repository interface {
		CreateAssignment(ctx context.Context, asgmt Assignment) (Assignment, error)
		// QueryAssignments applies AND operation on available QueryFilter fields.
		QueryAssignments(ctx context.Context, filter QueryFilter, ordering ...core.DBOrdering) ([]Assignment, error)
		GetAssignment(ctx context.Context, id int) (Assignment, error)
		UpdateAssignment(ctx context.Context, asgmt Assignment) (Assignment, error)
		// DeleteAssignment removes the Assignment and its Grades.
		DeleteAssignment(ctx context.Context, id int) error
	}

	Service interface {
		Create(ctx context.Context, na NewAssignment) (Assignment, error)
		Query(ctx context.Context, filter QueryFilter, ordering ...core.DBOrdering) ([]Assignment, error)
		GetByID(ctx context.Context, id int) (Assignment, error)
		// Update expects ua to be validated against the stored Assignment; unset fields are kept.
		Update(ctx context.Context, id int, ua UpdateAssignment) (Assignment, error)
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

func (svc *service) Create(ctx context.Context, na NewAssignment) (Assignment, error) {
	return svc.repo.CreateAssignment(ctx, Assignment{
		SubjectID:   na.SubjectID,
		Title:       na.Title,
		Description: na.Description,
		Kind:        na.Kind,
		CreatedAt:   na.CreatedAt,
		DueDate:     na.DueDate,
		MaxScore:    na.MaxScore,
	})
}

func (svc *service) Query(ctx context.Context, filter QueryFilter, ordering ...core.DBOrdering) ([]Assignment, error) {
	return svc.repo.QueryAssignments(ctx, filter, ordering...)
}

func (svc *service) GetByID(ctx context.Context, id int) (Assignment, error) {
	return svc.repo.GetAssignment(ctx, id)
}

// Update never touches existing Grades, even when MaxScore shrinks below them.
// Blank fields of ua keep the stored values.
func (svc *service) Update(ctx context.Context, id int, ua UpdateAssignment) (Assignment, error) {
	asgmt, err := svc.repo.GetAssignment(ctx, id)
	if err != nil {
		return Assignment{}, err
	}
	if ua.SubjectID != 0 {
		asgmt.SubjectID = ua.SubjectID
	}
	if ua.Title != "" {
		asgmt.Title = ua.Title
	}
	if ua.Description != "" {
		asgmt.Description = ua.Description
	}
	if ua.Kind != "" {
		asgmt.Kind = ua.Kind
	}
	if !ua.CreatedAt.IsZero() {
		asgmt.CreatedAt = ua.CreatedAt
	}
	if !ua.DueDate.IsZero() {
		asgmt.DueDate = ua.DueDate
	}
	if ua.MaxScore != nil {
		asgmt.MaxScore = *ua.MaxScore
	}
	return svc.repo.UpdateAssignment(ctx, asgmt)
}

func (svc *service) Delete(ctx context.Context, id int) error {
	return svc.repo.DeleteAssignment(ctx, id)
}
