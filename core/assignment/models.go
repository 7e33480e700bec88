package assignment

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/subject"
)

// Kind is the closed set of assignment kinds.
type Kind string

const (
	KindTask    Kind = "Tarea"
	KindExam    Kind = "Examen"
	KindProject Kind = "Proyecto"
	KindQuiz    Kind = "Quiz"
)

const MaxScoreLimit = 1000

var Kinds = []KindInfo{
	{Name: "Tarea", Value: KindTask},
	{Name: "Examen", Value: KindExam},
	{Name: "Proyecto", Value: KindProject},
	{Name: "Quiz", Value: KindQuiz},
}

type KindInfo struct {
	Name  string `json:"name"`
	Value Kind   `json:"value"`
}

func (k Kind) IsValid() bool {
	switch k {
	case KindTask, KindExam, KindProject, KindQuiz:
		return true
	}
	return false
}

type Assignment struct {
	ID          int       `json:"id"`
	SubjectID   int       `json:"subject_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Kind        Kind      `json:"kind"`
	CreatedAt   core.Date `json:"created_at"`
	DueDate     core.Date `json:"due_date"`
	MaxScore    float64   `json:"max_score"`
}

// IsOverdue reports whether the due date is already past on `today`.
func (a Assignment) IsOverdue(today core.Date) bool {
	return a.DueDate.Before(today)
}

// SubjectGetter finds the Subject an Assignment belongs to.
type SubjectGetter interface {
	GetByID(ctx context.Context, id int) (subject.Subject, error)
}

// NewAssignment contains information needed to create a new Assignment.
type NewAssignment struct {
	SubjectID   int       `json:"subject_id" validate:"required"`
	Title       string    `json:"title" validate:"required,min=3"`
	Description string    `json:"description" validate:"required,min=10"`
	Kind        Kind      `json:"kind" validate:"required,assignmentkind"`
	CreatedAt   core.Date `json:"created_at"`
	DueDate     core.Date `json:"due_date" validate:"required"`
	MaxScore    float64   `json:"max_score" validate:"gt=0,lte=1000"`
}

func (na *NewAssignment) Validate(ctx context.Context, validate *validator.Validate, subjects SubjectGetter) error {
	na.Title = core.CleanString(na.Title)
	na.Description = core.CleanString(na.Description)
	na.Kind = Kind(core.CleanString(string(na.Kind)))
	if na.CreatedAt.IsZero() {
		na.CreatedAt = core.Today()
	}

	if err := validate.Struct(na); err != nil {
		return err
	}
	return checkSubject(ctx, na.SubjectID, subjects)
}

// UpdateAssignment defines what information may be provided to modify an existing Assignment.
// Blank fields and a nil MaxScore keep the original value.
type UpdateAssignment struct {
	SubjectID   int       `json:"subject_id" validate:"required"`
	Title       string    `json:"title" validate:"required,min=3"`
	Description string    `json:"description" validate:"required,min=10"`
	Kind        Kind      `json:"kind" validate:"required,assignmentkind"`
	CreatedAt   core.Date `json:"created_at"`
	DueDate     core.Date `json:"due_date" validate:"required"`
	MaxScore    *float64  `json:"max_score" validate:"gt=0,lte=1000"`
}

func (ua *UpdateAssignment) Validate(ctx context.Context, orig Assignment, validate *validator.Validate, subjects SubjectGetter) error {
	if ua.SubjectID == 0 {
		ua.SubjectID = orig.SubjectID
	}
	if title := core.CleanString(ua.Title); title != "" {
		ua.Title = title
	} else {
		ua.Title = orig.Title
	}
	if desc := core.CleanString(ua.Description); desc != "" {
		ua.Description = desc
	} else {
		ua.Description = orig.Description
	}
	if kind := Kind(core.CleanString(string(ua.Kind))); kind != "" {
		ua.Kind = kind
	} else {
		ua.Kind = orig.Kind
	}
	if ua.CreatedAt.IsZero() {
		ua.CreatedAt = orig.CreatedAt
	}
	if ua.DueDate.IsZero() {
		ua.DueDate = orig.DueDate
	}
	if ua.MaxScore == nil {
		maxScore := orig.MaxScore
		ua.MaxScore = &maxScore
	}

	if err := validate.Struct(ua); err != nil {
		return err
	}
	return checkSubject(ctx, ua.SubjectID, subjects)
}

func checkSubject(ctx context.Context, id int, subjects SubjectGetter) error {
	if _, err := subjects.GetByID(ctx, id); err != nil {
		if errors.Cause(err) == subject.ErrNotFound {
			return core.NewValidationError(nil, core.FieldError{Field: "subject_id", Error: invalidSubjectText})
		}
		return errors.Wrap(err, "finding subject")
	}
	return nil
}

type QueryFilter struct {
	SubjectID int    `query:"subject_id"`
	Kind      Kind   `query:"kind"`
	Search    string `query:"search"`
}

func (qf *QueryFilter) Clean() {
	qf.Kind = Kind(core.CleanString(string(qf.Kind)))
	qf.Search = core.CleanString(qf.Search)
}
