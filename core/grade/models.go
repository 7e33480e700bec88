package grade

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/assignment"
	"github.com/trezcool/gradebook/core/stats"
	"github.com/trezcool/gradebook/core/student"
)

var (
	scoreTooHighText      = "score cannot exceed %v points"
	invalidAssignmentText = "a valid assignment must be selected"
	invalidStudentText    = "a valid student must be selected"
)

// Band buckets a grade by its percentage of the assignment's max score.
type Band string

const (
	BandExcellent Band = "Excelente (90-100%)"
	BandVeryGood  Band = "Muy Bueno (80-89%)"
	BandGood      Band = "Bueno (70-79%)"
	BandFair      Band = "Regular (60-69%)"
	BandPoor      Band = "Deficiente (0-59%)"
)

// Bands lists every Band from best to worst.
var Bands = []Band{BandExcellent, BandVeryGood, BandGood, BandFair, BandPoor}

func BandOf(percentage float64) Band {
	switch {
	case percentage >= 90:
		return BandExcellent
	case percentage >= 80:
		return BandVeryGood
	case percentage >= 70:
		return BandGood
	case percentage >= 60:
		return BandFair
	default:
		return BandPoor
	}
}

type Grade struct {
	ID           int       `json:"id"`
	AssignmentID int       `json:"assignment_id"`
	StudentID    int       `json:"student_id"`
	StudentName  string    `json:"student_name"` // captured when the grade is entered
	Score        float64   `json:"score"`
	SubmittedAt  core.Date `json:"submitted_at"`
	Comment      string    `json:"comment,omitempty"`
}

// Percentage is the score as a rounded percentage of maxScore.
func (g Grade) Percentage(maxScore float64) float64 {
	return stats.Percentage(g.Score, maxScore)
}

func (g Grade) Passed(maxScore float64) bool {
	return g.Percentage(maxScore) >= stats.DefaultPassThreshold
}

// Scores extracts the score sequence of grades.
func Scores(grades []Grade) []float64 {
	scores := make([]float64, 0, len(grades))
	for _, g := range grades {
		scores = append(scores, g.Score)
	}
	return scores
}

type (
	AssignmentGetter interface {
		GetByID(ctx context.Context, id int) (assignment.Assignment, error)
	}

	StudentGetter interface {
		GetByID(ctx context.Context, id int) (student.Student, error)
	}
)

// NewGrade contains information needed to create a new Grade.
type NewGrade struct {
	AssignmentID int       `json:"assignment_id" validate:"required"`
	StudentID    int       `json:"student_id" validate:"required"`
	Score        float64   `json:"score" validate:"gte=0"`
	SubmittedAt  core.Date `json:"submitted_at" validate:"required"`
	Comment      string    `json:"comment"`

	studentName string
}

func (ng *NewGrade) Validate(ctx context.Context, validate *validator.Validate, asgmts AssignmentGetter, students StudentGetter) error {
	ng.Comment = core.CleanString(ng.Comment)

	if err := validate.Struct(ng); err != nil {
		return err
	}
	name, err := checkReferences(ctx, ng.AssignmentID, ng.StudentID, ng.Score, asgmts, students)
	if err != nil {
		return err
	}
	ng.studentName = name
	return nil
}

// UpdateGrade defines what information may be provided to modify an existing Grade.
// Nil or zero fields keep the original value; an empty Comment clears it.
type UpdateGrade struct {
	AssignmentID int       `json:"assignment_id"`
	StudentID    int       `json:"student_id"`
	Score        *float64  `json:"score" validate:"omitempty,gte=0"`
	SubmittedAt  core.Date `json:"submitted_at"`
	Comment      *string   `json:"comment"`

	studentName string
}

func (ug *UpdateGrade) Validate(ctx context.Context, orig Grade, validate *validator.Validate, asgmts AssignmentGetter, students StudentGetter) error {
	if ug.AssignmentID == 0 {
		ug.AssignmentID = orig.AssignmentID
	}
	if ug.StudentID == 0 {
		ug.StudentID = orig.StudentID
	}
	if ug.Score == nil {
		score := orig.Score
		ug.Score = &score
	}
	if ug.SubmittedAt.IsZero() {
		ug.SubmittedAt = orig.SubmittedAt
	}
	if ug.Comment == nil {
		comment := orig.Comment
		ug.Comment = &comment
	} else {
		comment := core.CleanString(*ug.Comment)
		ug.Comment = &comment
	}

	if err := validate.Struct(ug); err != nil {
		return err
	}
	name, err := checkReferences(ctx, ug.AssignmentID, ug.StudentID, *ug.Score, asgmts, students)
	if err != nil {
		return err
	}
	ug.studentName = name
	return nil
}

// checkReferences looks up the graded Assignment and Student; it returns the
// Student's full name to be stored with the Grade.
func checkReferences(
	ctx context.Context,
	asgmtID, studentID int,
	score float64,
	asgmts AssignmentGetter,
	students StudentGetter,
) (string, error) {
	var fldErrs []core.FieldError

	asgmt, err := asgmts.GetByID(ctx, asgmtID)
	switch {
	case err == nil:
		if score > asgmt.MaxScore {
			fldErrs = append(fldErrs, core.FieldError{
				Field: "score",
				Error: fmt.Sprintf(scoreTooHighText, asgmt.MaxScore),
			})
		}
	case errors.Cause(err) == assignment.ErrNotFound:
		fldErrs = append(fldErrs, core.FieldError{Field: "assignment_id", Error: invalidAssignmentText})
	default:
		return "", errors.Wrap(err, "finding assignment")
	}

	stud, err := students.GetByID(ctx, studentID)
	switch {
	case err == nil:
	case errors.Cause(err) == student.ErrNotFound:
		fldErrs = append(fldErrs, core.FieldError{Field: "student_id", Error: invalidStudentText})
	default:
		return "", errors.Wrap(err, "finding student")
	}

	if len(fldErrs) > 0 {
		return "", core.NewValidationError(nil, fldErrs...)
	}
	return stud.FullName(), nil
}

type QueryFilter struct {
	SubjectID    int `query:"subject_id"` // through the graded Assignment
	AssignmentID int `query:"assignment_id"`
	StudentID    int `query:"student_id"`
}
