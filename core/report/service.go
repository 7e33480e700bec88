package report

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core/assignment"
	"github.com/trezcool/gradebook/core/grade"
	"github.com/trezcool/gradebook/core/student"
	"github.com/trezcool/gradebook/core/subject"
)

type Service struct {
	subjects      subject.Service
	asgmts        assignment.Service
	grades        grade.Service
	students      student.Service
	passThreshold float64
}

func NewService(
	subjects subject.Service,
	asgmts assignment.Service,
	grades grade.Service,
	students student.Service,
	passThreshold float64,
) *Service {
	return &Service{
		subjects:      subjects,
		asgmts:        asgmts,
		grades:        grades,
		students:      students,
		passThreshold: passThreshold,
	}
}

func (svc *Service) PassThreshold() float64 { return svc.passThreshold }

// SubjectStats returns subject.ErrNotFound for unknown ids.
func (svc *Service) SubjectStats(ctx context.Context, id int) (SubjectSummary, error) {
	subj, err := svc.subjects.GetByID(ctx, id)
	if err != nil {
		return SubjectSummary{}, err
	}
	asgmts, err := svc.asgmts.Query(ctx, assignment.QueryFilter{SubjectID: id})
	if err != nil {
		return SubjectSummary{}, errors.Wrap(err, "querying assignments")
	}
	grades, err := svc.grades.Query(ctx, grade.QueryFilter{SubjectID: id})
	if err != nil {
		return SubjectSummary{}, errors.Wrap(err, "querying grades")
	}
	return SubjectStats(subj, asgmts, grades), nil
}

func (svc *Service) AllSubjectStats(ctx context.Context) ([]SubjectSummary, error) {
	subjects, asgmts, grades, err := svc.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]SubjectSummary, 0, len(subjects))
	for _, subj := range subjects {
		summaries = append(summaries, SubjectStats(subj, asgmts, grades))
	}
	return summaries, nil
}

// AssignmentStats returns assignment.ErrNotFound for unknown ids.
func (svc *Service) AssignmentStats(ctx context.Context, id int) (AssignmentSummary, error) {
	asgmt, err := svc.asgmts.GetByID(ctx, id)
	if err != nil {
		return AssignmentSummary{}, err
	}
	grades, err := svc.grades.Query(ctx, grade.QueryFilter{AssignmentID: id})
	if err != nil {
		return AssignmentSummary{}, errors.Wrap(err, "querying grades")
	}
	return AssignmentStats(asgmt, grades, svc.passThreshold), nil
}

func (svc *Service) Overview(ctx context.Context) (Overview, error) {
	subjects, asgmts, grades, err := svc.loadAll(ctx)
	if err != nil {
		return Overview{}, err
	}
	students, err := svc.students.Query(ctx, student.QueryFilter{})
	if err != nil {
		return Overview{}, errors.Wrap(err, "querying students")
	}
	return BuildOverview(subjects, asgmts, grades, students, svc.passThreshold), nil
}

func (svc *Service) loadAll(ctx context.Context) ([]subject.Subject, []assignment.Assignment, []grade.Grade, error) {
	subjects, err := svc.subjects.Query(ctx, subject.QueryFilter{})
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "querying subjects")
	}
	asgmts, err := svc.asgmts.Query(ctx, assignment.QueryFilter{})
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "querying assignments")
	}
	grades, err := svc.grades.Query(ctx, grade.QueryFilter{})
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "querying grades")
	}
	return subjects, asgmts, grades, nil
}
