// Package inmemdb is the process-local store behind the domain Repository
// interfaces. Every table lives on one DB guarded by a single lock, so an
// operation (cascades included) is atomic with respect to the others.
package inmemdb

import (
	"fmt"
	"sort"
	"sync"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/assignment"
	"github.com/trezcool/gradebook/core/grade"
	"github.com/trezcool/gradebook/core/student"
	"github.com/trezcool/gradebook/core/subject"
	"github.com/trezcool/gradebook/storage/database/seed"
)

type DB struct {
	mutex       sync.RWMutex
	subjects    map[int]*subject.Subject
	assignments map[int]*assignment.Assignment
	grades      map[int]*grade.Grade
	students    map[int]*student.Student
}

// Open returns an empty DB.
func Open() *DB {
	db := new(DB)
	db.load(seed.Empty())
	return db
}

// OpenSeeded returns a DB holding the seed dataset.
func OpenSeeded() *DB {
	db := new(DB)
	db.load(seed.Default())
	return db
}

// Load replaces every table with the records of ds.
// A dataset with broken ids leaves the tables untouched and returns a shutdown error:
// the process can no longer tell which records it serves.
func (db *DB) Load(ds seed.Dataset) error {
	if err := ds.Check(); err != nil {
		return core.NewShutdownError(fmt.Sprintf("loading dataset: %v", err))
	}
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.load(ds)
	return nil
}

// Reset restores the seed dataset.
func (db *DB) Reset() error {
	return db.Load(seed.Default())
}

func (db *DB) load(ds seed.Dataset) {
	db.subjects = make(map[int]*subject.Subject, len(ds.Subjects))
	for i := range ds.Subjects {
		s := ds.Subjects[i]
		db.subjects[s.ID] = &s
	}
	db.assignments = make(map[int]*assignment.Assignment, len(ds.Assignments))
	for i := range ds.Assignments {
		a := ds.Assignments[i]
		db.assignments[a.ID] = &a
	}
	db.grades = make(map[int]*grade.Grade, len(ds.Grades))
	for i := range ds.Grades {
		g := ds.Grades[i]
		db.grades[g.ID] = &g
	}
	db.students = make(map[int]*student.Student, len(ds.Students))
	for i := range ds.Students {
		s := ds.Students[i]
		db.students[s.ID] = &s
	}
}

// nextID is max(existing ids) + 1, or 1 for an empty table.
func nextID[T any](table map[int]*T) int {
	maxID := 0
	for id := range table {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

// rows copies the table sorted by id.
func rows[T any](table map[int]*T) []T {
	ids := make([]int, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, *table[id])
	}
	return out
}

// comparer reports -1, 0 or 1 comparing two rows on one field.
type comparer[T any] func(a, b T) int

// orderBy sorts items on the given orderings, stable on the id order rows returns.
// Unknown fields are ignored.
func orderBy[T any](items []T, ordering []core.DBOrdering, fields map[string]comparer[T]) {
	if len(ordering) == 0 {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		for _, ord := range ordering {
			compare, ok := fields[ord.Field]
			if !ok {
				continue
			}
			c := compare(items[i], items[j])
			if c == 0 {
				continue
			}
			if ord.Ascending {
				return c < 0
			}
			return c > 0
		}
		return false
	})
}

func compareDates(a, b core.Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}
