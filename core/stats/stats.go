// Package stats holds the score aggregations behind every summary.
//
// Every function returns 0 for an empty sequence. That is a policy, not a
// mathematical result: an empty Max is indistinguishable from a real score of 0.
package stats

import (
	"math"
	"sort"
)

// DefaultPassThreshold is the score at or above which a grade passes.
const DefaultPassThreshold = 60.0

// Round rounds x half away from zero to the given number of decimal places.
func Round(x float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(x*pow) / pow
}

// Mean returns the arithmetic mean rounded to 2 decimals.
func Mean(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return Round(sum/float64(len(scores)), 2)
}

func Max(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	max := scores[0]
	for _, s := range scores[1:] {
		if s > max {
			max = s
		}
	}
	return max
}

func Min(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	min := scores[0]
	for _, s := range scores[1:] {
		if s < min {
			min = s
		}
	}
	return min
}

// Median sorts a copy of scores; an even count averages the two central values.
func Median(scores []float64) float64 {
	n := len(scores)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, scores)
	sort.Float64s(sorted)

	mid := n / 2
	if n%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// StdDev returns the population standard deviation (divides by N) around the
// rounded Mean, rounded to 2 decimals.
func StdDev(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	mean := Mean(scores)
	var sumSq float64
	for _, s := range scores {
		diff := s - mean
		sumSq += diff * diff
	}
	return Round(math.Sqrt(sumSq/float64(len(scores))), 2)
}

// PassRate returns the integer percentage of scores >= threshold.
func PassRate(scores []float64, threshold float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var passed int
	for _, s := range scores {
		if s >= threshold {
			passed++
		}
	}
	return Percentage(float64(passed), float64(len(scores)))
}

// Percentage returns value/total as a rounded integer percentage, 0 when total is 0.
func Percentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(value / total * 100)
}
