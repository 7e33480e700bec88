// Package report assembles the statistics shown on the dashboard: per-subject
// and per-assignment summaries and the chart series of the overview.
// Everything is recomputed on every call.
package report

import (
	"github.com/trezcool/gradebook/core/assignment"
	"github.com/trezcool/gradebook/core/grade"
	"github.com/trezcool/gradebook/core/stats"
	"github.com/trezcool/gradebook/core/subject"
)

type SubjectSummary struct {
	SubjectID       int     `json:"subject_id"`
	SubjectName     string  `json:"subject_name"`
	Mean            float64 `json:"mean"`
	Max             float64 `json:"max"`
	Min             float64 `json:"min"`
	AssignmentCount int     `json:"assignment_count"`
	StudentCount    int     `json:"student_count"` // distinct graded students
}

type AssignmentSummary struct {
	AssignmentID    int     `json:"assignment_id"`
	AssignmentTitle string  `json:"assignment_title"`
	Mean            float64 `json:"mean"`
	Max             float64 `json:"max"`
	Min             float64 `json:"min"`
	Median          float64 `json:"median"`
	StdDev          float64 `json:"std_dev"`
	PassRate        float64 `json:"pass_rate"`
	GradeCount      int     `json:"grade_count"`
	MaxScore        float64 `json:"max_score"`
}

// SubjectStats summarizes the grades of every assignment of subj.
func SubjectStats(subj subject.Subject, asgmts []assignment.Assignment, grades []grade.Grade) SubjectSummary {
	asgmtIDs := make(map[int]struct{})
	for _, a := range asgmts {
		if a.SubjectID == subj.ID {
			asgmtIDs[a.ID] = struct{}{}
		}
	}

	var subjGrades []grade.Grade
	studentIDs := make(map[int]struct{})
	for _, g := range grades {
		if _, ok := asgmtIDs[g.AssignmentID]; ok {
			subjGrades = append(subjGrades, g)
			studentIDs[g.StudentID] = struct{}{}
		}
	}
	scores := grade.Scores(subjGrades)

	return SubjectSummary{
		SubjectID:       subj.ID,
		SubjectName:     subj.Name,
		Mean:            stats.Mean(scores),
		Max:             stats.Max(scores),
		Min:             stats.Min(scores),
		AssignmentCount: len(asgmtIDs),
		StudentCount:    len(studentIDs),
	}
}

// AssignmentStats summarizes the grades of asgmt. The pass rate uses passThreshold
// against raw scores.
func AssignmentStats(asgmt assignment.Assignment, grades []grade.Grade, passThreshold ...float64) AssignmentSummary {
	threshold := stats.DefaultPassThreshold
	if len(passThreshold) > 0 {
		threshold = passThreshold[0]
	}

	var asgmtGrades []grade.Grade
	for _, g := range grades {
		if g.AssignmentID == asgmt.ID {
			asgmtGrades = append(asgmtGrades, g)
		}
	}
	scores := grade.Scores(asgmtGrades)

	return AssignmentSummary{
		AssignmentID:    asgmt.ID,
		AssignmentTitle: asgmt.Title,
		Mean:            stats.Mean(scores),
		Max:             stats.Max(scores),
		Min:             stats.Min(scores),
		Median:          stats.Median(scores),
		StdDev:          stats.StdDev(scores),
		PassRate:        stats.PassRate(scores, threshold),
		GradeCount:      len(asgmtGrades),
		MaxScore:        asgmt.MaxScore,
	}
}
