package student

import (
	"context"
	"errors"

	"github.com/trezcool/gradebook/core"
)

var ErrNotFound = errors.New("student not found")

type (
	Repository interface {
		QueryStudents(ctx context.Context, filter QueryFilter, ordering ...core.DBOrdering) ([]Student, error)
		GetStudent(ctx context.Context, id int) (Student, error)
	}

	Service interface {
		Query(ctx context.Context, filter QueryFilter, ordering ...core.DBOrdering) ([]Student, error)
		GetByID(ctx context.Context, id int) (Student, error)
	}

	service struct {
		repo Repository
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (svc *service) Query(ctx context.Context, filter QueryFilter, ordering ...core.DBOrdering) ([]Student, error) {
	return svc.repo.QueryStudents(ctx, filter, ordering...)
}

func (svc *service) GetByID(ctx context.Context, id int) (Student, error) {
	return svc.repo.GetStudent(ctx, id)
}
