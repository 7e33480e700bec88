package subject

import (
	"context"
	"errors"

	"github.com/trezcool/gradebook/core"
)

var ErrNotFound = errors.New("subject not found")

type (
	Repository interface {
		CreateSubject(ctx context.Context, subj Subject) (Subject, error)
		QuerySubjects(ctx context.Context, filter QueryFilter, ordering ...core.DBOrdering) ([]Subject, error)
		GetSubject(ctx context.Context, id int) (Subject, error)
		UpdateSubject(ctx context.Context, subj Subject) (Subject, error)
		// DeleteSubject removes the Subject, its Assignments and their Grades.
		DeleteSubject(ctx context.Context, id int) error
	}

	Service interface {
		Create(ctx context.Context, ns NewSubject) (Subject, error)
		Query(ctx context.Context, filter QueryFilter, ordering ...core.DBOrdering) ([]Subject, error)
		GetByID(ctx context.Context, id int) (Subject, error)
		Update(ctx context.Context, id int, us UpdateSubject) (Subject, error)
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

func (svc *service) Create(ctx context.Context, ns NewSubject) (Subject, error) {
	return svc.repo.CreateSubject(ctx, Subject{
		Name:        ns.Name,
		Description: ns.Description,
		Color:       ns.Color,
		CreatedAt:   ns.CreatedAt,
	})
}

func (svc *service) Query(ctx context.Context, filter QueryFilter, ordering ...core.DBOrdering) ([]Subject, error) {
	return svc.repo.QuerySubjects(ctx, filter, ordering...)
}

func (svc *service) GetByID(ctx context.Context, id int) (Subject, error) {
	return svc.repo.GetSubject(ctx, id)
}

// Update keeps the stored value of every blank field of us.
func (svc *service) Update(ctx context.Context, id int, us UpdateSubject) (Subject, error) {
	subj, err := svc.repo.GetSubject(ctx, id)
	if err != nil {
		return Subject{}, err
	}
	if us.Name != "" {
		subj.Name = us.Name
	}
	if us.Description != "" {
		subj.Description = us.Description
	}
	if us.Color != "" {
		subj.Color = us.Color
	}
	if !us.CreatedAt.IsZero() {
		subj.CreatedAt = us.CreatedAt
	}
	return svc.repo.UpdateSubject(ctx, subj)
}

func (svc *service) Delete(ctx context.Context, id int) error {
	return svc.repo.DeleteSubject(ctx, id)
}
