package report

import (
	"sort"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/assignment"
	"github.com/trezcool/gradebook/core/grade"
	"github.com/trezcool/gradebook/core/stats"
	"github.com/trezcool/gradebook/core/student"
	"github.com/trezcool/gradebook/core/subject"
)

type (
	Totals struct {
		Subjects    int `json:"subjects"`
		Assignments int `json:"assignments"`
		Grades      int `json:"grades"`
		Students    int `json:"students"`
	}

	// SubjectBar is one bar group of the per-subject chart.
	SubjectBar struct {
		Name string  `json:"name"`
		Mean float64 `json:"mean"`
		Max  float64 `json:"max"`
		Min  float64 `json:"min"`
	}

	// Slice is one named value of a pie chart.
	Slice struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}

	// TrendPoint is the mean score of the grades submitted on one date.
	TrendPoint struct {
		Date  core.Date `json:"date"`
		Label string    `json:"label"`
		Mean  float64   `json:"mean"`
	}

	Overview struct {
		Totals           Totals           `json:"totals"`
		OverallMean      float64          `json:"overall_mean"`
		OverallPassRate  float64          `json:"overall_pass_rate"`
		Subjects         []SubjectSummary `json:"subjects"`
		SubjectBars      []SubjectBar     `json:"subject_bars"`
		KindDistribution []Slice          `json:"kind_distribution"`
		Trend            []TrendPoint     `json:"trend"`
		BandDistribution []Slice          `json:"band_distribution"`
	}
)

// BuildOverview computes the dashboard from whole collections.
// The overall pass rate counts grades at or above passThreshold percent of their
// assignment's max score; grades of missing assignments are skipped there and in
// the band distribution.
func BuildOverview(
	subjects []subject.Subject,
	asgmts []assignment.Assignment,
	grades []grade.Grade,
	students []student.Student,
	passThreshold float64,
) Overview {
	ov := Overview{
		Totals: Totals{
			Subjects:    len(subjects),
			Assignments: len(asgmts),
			Grades:      len(grades),
			Students:    len(students),
		},
		OverallMean:      stats.Mean(grade.Scores(grades)),
		Subjects:         make([]SubjectSummary, 0, len(subjects)),
		SubjectBars:      make([]SubjectBar, 0, len(subjects)),
		KindDistribution: kindDistribution(asgmts),
		Trend:            trend(grades),
	}

	for _, subj := range subjects {
		sum := SubjectStats(subj, asgmts, grades)
		ov.Subjects = append(ov.Subjects, sum)
		ov.SubjectBars = append(ov.SubjectBars, SubjectBar{Name: sum.SubjectName, Mean: sum.Mean, Max: sum.Max, Min: sum.Min})
	}

	maxScores := make(map[int]float64, len(asgmts))
	for _, a := range asgmts {
		maxScores[a.ID] = a.MaxScore
	}
	var percentages []float64
	for _, g := range grades {
		if max, ok := maxScores[g.AssignmentID]; ok {
			percentages = append(percentages, g.Percentage(max))
		}
	}
	ov.OverallPassRate = stats.PassRate(percentages, passThreshold)
	ov.BandDistribution = bandDistribution(percentages)

	return ov
}

// kindDistribution counts assignments per kind, in first-seen order.
func kindDistribution(asgmts []assignment.Assignment) []Slice {
	slices := make([]Slice, 0, len(assignment.Kinds))
	index := make(map[assignment.Kind]int)
	for _, a := range asgmts {
		i, ok := index[a.Kind]
		if !ok {
			i = len(slices)
			index[a.Kind] = i
			slices = append(slices, Slice{Name: string(a.Kind)})
		}
		slices[i].Value++
	}
	return slices
}

// trend groups scores by submission date, oldest first.
func trend(grades []grade.Grade) []TrendPoint {
	dates := make(map[string]core.Date)
	byDate := make(map[string][]float64)
	for _, g := range grades {
		key := g.SubmittedAt.String()
		dates[key] = g.SubmittedAt
		byDate[key] = append(byDate[key], g.Score)
	}

	points := make([]TrendPoint, 0, len(byDate))
	for key, scores := range byDate {
		date := dates[key]
		points = append(points, TrendPoint{Date: date, Label: date.FormatDayMonth(), Mean: stats.Mean(scores)})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points
}

// bandDistribution counts percentages per grade.Band, best band first; empty bands are left out.
func bandDistribution(percentages []float64) []Slice {
	counts := make(map[grade.Band]int)
	for _, pct := range percentages {
		counts[grade.BandOf(pct)]++
	}
	slices := make([]Slice, 0, len(counts))
	for _, band := range grade.Bands {
		if n := counts[band]; n > 0 {
			slices = append(slices, Slice{Name: string(band), Value: n})
		}
	}
	return slices
}
