// Package testutil holds helpers shared by the test suites.
package testutil

import (
	"context"
	"testing"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/assignment"
	"github.com/trezcool/gradebook/core/grade"
	"github.com/trezcool/gradebook/core/subject"
)

// NewValidator returns a validator with every domain validator registered.
func NewValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	subject.InitValidators(validate, translator)
	assignment.InitValidators(validate, translator)
	return validate, translator
}

func CreateSubject(t *testing.T, repo subject.Repository, name string, createdAt ...core.Date) subject.Subject {
	t.Helper()
	date := core.Today()
	if len(createdAt) > 0 {
		date = createdAt[0]
	}
	subj, err := repo.CreateSubject(context.Background(), subject.Subject{
		Name:        name,
		Description: "Descripción de " + name,
		Color:       subject.DefaultColor,
		CreatedAt:   date,
	})
	if err != nil {
		t.Fatalf("CreateSubject() failed: %v", err)
	}
	return subj
}

func CreateAssignment(
	t *testing.T,
	repo assignment.Repository,
	subjectID int,
	title string,
	kind assignment.Kind,
	maxScore float64,
) assignment.Assignment {
	t.Helper()
	today := core.Today()
	asgmt, err := repo.CreateAssignment(context.Background(), assignment.Assignment{
		SubjectID:   subjectID,
		Title:       title,
		Description: "Descripción de " + title,
		Kind:        kind,
		CreatedAt:   today,
		DueDate:     core.DateOf(today.AddDate(0, 0, 7)),
		MaxScore:    maxScore,
	})
	if err != nil {
		t.Fatalf("CreateAssignment() failed: %v", err)
	}
	return asgmt
}

func CreateGrade(t *testing.T, repo grade.Repository, asgmtID, studentID int, score float64) grade.Grade {
	t.Helper()
	grd, err := repo.CreateGrade(context.Background(), grade.Grade{
		AssignmentID: asgmtID,
		StudentID:    studentID,
		Score:        score,
		SubmittedAt:  core.Today(),
	})
	if err != nil {
		t.Fatalf("CreateGrade() failed: %v", err)
	}
	return grd
}
