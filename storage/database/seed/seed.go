// Package seed holds the dataset the store starts from and is reset to.
package seed

import (
	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/assignment"
	"github.com/trezcool/gradebook/core/grade"
	"github.com/trezcool/gradebook/core/student"
	"github.com/trezcool/gradebook/core/subject"
)

type Dataset struct {
	Subjects    []subject.Subject
	Assignments []assignment.Assignment
	Grades      []grade.Grade
	Students    []student.Student
}

// Default returns a fresh copy of the seed records; callers may mutate it.
func Default() Dataset {
	return Dataset{
		Subjects:    subjects(),
		Assignments: assignments(),
		Grades:      grades(),
		Students:    students(),
	}
}

// Empty is a Dataset with no records, handy for tests.
func Empty() Dataset { return Dataset{} }

// Check reports the first id that is not positive or not unique within its table.
func (ds Dataset) Check() error {
	if err := checkIDs("subject", len(ds.Subjects), func(i int) int { return ds.Subjects[i].ID }); err != nil {
		return err
	}
	if err := checkIDs("assignment", len(ds.Assignments), func(i int) int { return ds.Assignments[i].ID }); err != nil {
		return err
	}
	if err := checkIDs("grade", len(ds.Grades), func(i int) int { return ds.Grades[i].ID }); err != nil {
		return err
	}
	return checkIDs("student", len(ds.Students), func(i int) int { return ds.Students[i].ID })
}

func checkIDs(table string, n int, idAt func(i int) int) error {
	seen := make(map[int]bool, n)
	for i := 0; i < n; i++ {
		id := idAt(i)
		switch {
		case id <= 0:
			return errors.Errorf("%s id %d is not positive", table, id)
		case seen[id]:
			return errors.Errorf("duplicate %s id %d", table, id)
		}
		seen[id] = true
	}
	return nil
}

func subjects() []subject.Subject {
	return []subject.Subject{
		{
			ID:          1,
			Name:        "Matemáticas",
			Description: "Curso de matemáticas básicas y avanzadas",
			Color:       subject.ColorBlue,
			CreatedAt:   core.MustParseDate("2025-01-01"),
		},
		{
			ID:          2,
			Name:        "Ciencias",
			Description: "Física, química y biología",
			Color:       subject.ColorGreen,
			CreatedAt:   core.MustParseDate("2025-01-02"),
		},
		{
			ID:          3,
			Name:        "Historia",
			Description: "Historia universal y nacional",
			Color:       subject.ColorYellow,
			CreatedAt:   core.MustParseDate("2025-01-03"),
		},
		{
			ID:          4,
			Name:        "Literatura",
			Description: "Análisis de textos y escritura creativa",
			Color:       subject.ColorPurple,
			CreatedAt:   core.MustParseDate("2025-01-04"),
		},
	}
}

func assignments() []assignment.Assignment {
	return []assignment.Assignment{
		{
			ID:          1,
			SubjectID:   1,
			Title:       "Examen de Álgebra",
			Description: "Evaluación de conceptos básicos de álgebra",
			Kind:        assignment.KindExam,
			CreatedAt:   core.MustParseDate("2025-01-05"),
			DueDate:     core.MustParseDate("2025-01-20"),
			MaxScore:    100,
		},
		{
			ID:          2,
			SubjectID:   1,
			Title:       "Tarea de Geometría",
			Description: "Ejercicios de geometría plana",
			Kind:        assignment.KindTask,
			CreatedAt:   core.MustParseDate("2025-01-10"),
			DueDate:     core.MustParseDate("2025-01-25"),
			MaxScore:    50,
		},
		{
			ID:          3,
			SubjectID:   2,
			Title:       "Laboratorio de Química",
			Description: "Práctica de reacciones químicas",
			Kind:        assignment.KindProject,
			CreatedAt:   core.MustParseDate("2025-01-08"),
			DueDate:     core.MustParseDate("2025-01-30"),
			MaxScore:    80,
		},
		{
			ID:          4,
			SubjectID:   3,
			Title:       "Quiz de Historia Antigua",
			Description: "Evaluación rápida sobre civilizaciones antiguas",
			Kind:        assignment.KindQuiz,
			CreatedAt:   core.MustParseDate("2025-01-12"),
			DueDate:     core.MustParseDate("2025-01-18"),
			MaxScore:    25,
		},
	}
}

func grades() []grade.Grade {
	g := func(id, asgmtID, studentID int, name string, score float64, date, comment string) grade.Grade {
		return grade.Grade{
			ID:           id,
			AssignmentID: asgmtID,
			StudentID:    studentID,
			StudentName:  name,
			Score:        score,
			SubmittedAt:  core.MustParseDate(date),
			Comment:      comment,
		}
	}
	return []grade.Grade{
		g(1, 1, 1, "Ana García", 85, "2025-01-19", "Buen dominio de los conceptos básicos"),
		g(2, 1, 2, "Carlos López", 92, "2025-01-19", "Excelente trabajo"),
		g(3, 1, 3, "María Rodríguez", 78, "2025-01-20", "Necesita repasar algunos temas"),
		g(4, 1, 4, "Luis Martínez", 88, "2025-01-19", "Muy buen desempeño"),
		g(5, 2, 1, "Ana García", 45, "2025-01-24", "Excelente presentación"),
		g(6, 2, 2, "Carlos López", 42, "2025-01-25", "Buena resolución de problemas"),
		g(7, 3, 3, "María Rodríguez", 75, "2025-01-29", "Buen trabajo experimental"),
		g(8, 3, 4, "Luis Martínez", 72, "2025-01-30", "Necesita mejorar el reporte"),
		g(9, 4, 1, "Ana García", 23, "2025-01-18", "Excelente conocimiento histórico"),
		g(10, 4, 2, "Carlos López", 20, "2025-01-18", "Buen esfuerzo"),
	}
}

func students() []student.Student {
	return []student.Student{
		{ID: 1, FirstName: "Ana", LastName: "García", Email: "ana.garcia@email.com", RegisteredAt: core.MustParseDate("2025-01-01")},
		{ID: 2, FirstName: "Carlos", LastName: "López", Email: "carlos.lopez@email.com", RegisteredAt: core.MustParseDate("2025-01-02")},
		{ID: 3, FirstName: "María", LastName: "Rodríguez", Email: "maria.rodriguez@email.com", RegisteredAt: core.MustParseDate("2025-01-03")},
		{ID: 4, FirstName: "Luis", LastName: "Martínez", Email: "luis.martinez@email.com", RegisteredAt: core.MustParseDate("2025-01-04")},
	}
}
