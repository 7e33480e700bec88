package report

import (
	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/assignment"
	"github.com/trezcool/gradebook/core/grade"
	"github.com/trezcool/gradebook/core/subject"
)

// Placeholders shown for dangling references.
const (
	MissingSubject    = "Materia no encontrada"
	MissingAssignment = "Tarea no encontrada"
	MissingValue      = "N/A"
)

// AssignmentRow is an Assignment as listed, joined with its Subject.
type AssignmentRow struct {
	assignment.Assignment
	SubjectName string `json:"subject_name"`
	DueLabel    string `json:"due_label"`
	Overdue     bool   `json:"overdue"`
}

// GradeRow is a Grade as listed, joined with its Assignment and Subject.
type GradeRow struct {
	grade.Grade
	AssignmentTitle string     `json:"assignment_title"`
	SubjectName     string     `json:"subject_name"`
	SubmittedLabel  string     `json:"submitted_label"`
	Percentage      float64    `json:"percentage"`
	Band            grade.Band `json:"band,omitempty"`
	Passed          bool       `json:"passed"`
}

func AssignmentRows(asgmts []assignment.Assignment, subjects []subject.Subject, today core.Date) []AssignmentRow {
	names := subjectNames(subjects)
	rows := make([]AssignmentRow, 0, len(asgmts))
	for _, a := range asgmts {
		name, ok := names[a.SubjectID]
		if !ok {
			name = MissingSubject
		}
		rows = append(rows, AssignmentRow{
			Assignment:  a,
			SubjectName: name,
			DueLabel:    a.DueDate.FormatShort(),
			Overdue:     a.IsOverdue(today),
		})
	}
	return rows
}

// GradeRows leaves Percentage, Band and Passed unset for grades of missing assignments.
func GradeRows(grades []grade.Grade, asgmts []assignment.Assignment, subjects []subject.Subject) []GradeRow {
	names := subjectNames(subjects)
	byID := make(map[int]assignment.Assignment, len(asgmts))
	for _, a := range asgmts {
		byID[a.ID] = a
	}

	rows := make([]GradeRow, 0, len(grades))
	for _, g := range grades {
		row := GradeRow{
			Grade:           g,
			AssignmentTitle: MissingAssignment,
			SubjectName:     MissingValue,
			SubmittedLabel:  g.SubmittedAt.FormatLong(),
		}
		if a, ok := byID[g.AssignmentID]; ok {
			row.AssignmentTitle = a.Title
			if name, ok := names[a.SubjectID]; ok {
				row.SubjectName = name
			}
			row.Percentage = g.Percentage(a.MaxScore)
			row.Band = grade.BandOf(row.Percentage)
			row.Passed = g.Passed(a.MaxScore)
		}
		rows = append(rows, row)
	}
	return rows
}

func subjectNames(subjects []subject.Subject) map[int]string {
	names := make(map[int]string, len(subjects))
	for _, s := range subjects {
		names[s.ID] = s.Name
	}
	return names
}
