package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/assignment"
	"github.com/trezcool/gradebook/core/grade"
	"github.com/trezcool/gradebook/core/report"
	"github.com/trezcool/gradebook/core/subject"
)

func (cli *commandLine) table() *tabwriter.Writer {
	return tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
}

func (cli *commandLine) listSubjects(ctx context.Context) error {
	subjects, err := cli.subjects.Query(ctx, subject.QueryFilter{}, core.DBOrdering{Field: "name", Ascending: true})
	if err != nil {
		return errors.Wrap(err, "querying subjects")
	}

	sums, err := cli.reports.AllSubjectStats(ctx)
	if err != nil {
		return errors.Wrap(err, "computing subject stats")
	}
	means := make(map[int]string, len(sums))
	for _, sum := range sums {
		if sum.AssignmentCount > 0 {
			means[sum.SubjectID] = fmt.Sprintf("%.2f", sum.Mean)
		}
	}

	cli.rule("Materias")
	tw := cli.table()
	fmt.Fprintln(tw, "ID\tNOMBRE\tPROMEDIO\tCREADA\tDESCRIPCIÓN")
	for _, s := range subjects {
		mean, ok := means[s.ID]
		if !ok {
			mean = report.MissingValue
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", s.ID, s.Name, mean, s.CreatedAt.FormatShort(), s.Description)
	}
	return tw.Flush()
}

func (cli *commandLine) printSubjectStats(ctx context.Context, name string) error {
	var sums []report.SubjectSummary
	if name == "" {
		var err error
		if sums, err = cli.reports.AllSubjectStats(ctx); err != nil {
			return errors.Wrap(err, "computing subject stats")
		}
	} else {
		subj, err := cli.findSubject(ctx, name)
		if err != nil {
			return err
		}
		sum, err := cli.reports.SubjectStats(ctx, subj.ID)
		if err != nil {
			return errors.Wrap(err, "computing subject stats")
		}
		sums = append(sums, sum)
	}

	cli.rule("Estadísticas por materia")
	tw := cli.table()
	fmt.Fprintln(tw, "MATERIA\tPROMEDIO\tMÁX\tMÍN\tTAREAS\tESTUDIANTES")
	for _, s := range sums {
		fmt.Fprintf(tw, "%s\t%.2f\t%g\t%g\t%d\t%d\n",
			s.SubjectName, s.Mean, s.Max, s.Min, s.AssignmentCount, s.StudentCount)
	}
	return tw.Flush()
}

// findSubject matches name case-insensitively; unknown names get a suggestion.
func (cli *commandLine) findSubject(ctx context.Context, name string) (subject.Subject, error) {
	subjects, err := cli.subjects.Query(ctx, subject.QueryFilter{})
	if err != nil {
		return subject.Subject{}, errors.Wrap(err, "querying subjects")
	}
	names := make([]string, 0, len(subjects))
	for _, s := range subjects {
		if strings.EqualFold(s.Name, core.CleanString(name)) {
			return s, nil
		}
		names = append(names, s.Name)
	}
	if suggestion := closestMatch(name, names); suggestion != "" {
		return subject.Subject{}, errors.Errorf("unknown subject %q; did you mean %q?", name, suggestion)
	}
	return subject.Subject{}, errors.Errorf("unknown subject %q", name)
}

func (cli *commandLine) printAssignment(ctx context.Context, id int) error {
	asgmt, err := cli.asgmts.GetByID(ctx, id)
	if err != nil {
		if errors.Cause(err) == assignment.ErrNotFound {
			return errors.Errorf("unknown assignment %d", id)
		}
		return errors.Wrap(err, "finding assignment")
	}
	sum, err := cli.reports.AssignmentStats(ctx, id)
	if err != nil {
		return errors.Wrap(err, "computing assignment stats")
	}
	grades, err := cli.grades.Query(ctx, grade.QueryFilter{AssignmentID: id}, core.DBOrdering{Field: "score", Ascending: false})
	if err != nil {
		return errors.Wrap(err, "querying grades")
	}

	cli.rule(fmt.Sprintf("%s (%s)", asgmt.Title, asgmt.Kind))
	fmt.Fprintf(cli.out, "Entrega: %s\n", asgmt.DueDate.FormatLong())
	fmt.Fprintf(cli.out, "Puntaje máximo: %g\n\n", asgmt.MaxScore)

	tw := cli.table()
	fmt.Fprintf(tw, "Notas\t%d\n", sum.GradeCount)
	fmt.Fprintf(tw, "Promedio\t%.2f\n", sum.Mean)
	fmt.Fprintf(tw, "Mediana\t%g\n", sum.Median)
	fmt.Fprintf(tw, "Desviación estándar\t%.2f\n", sum.StdDev)
	fmt.Fprintf(tw, "Máx / Mín\t%g / %g\n", sum.Max, sum.Min)
	fmt.Fprintf(tw, "Aprobados\t%g%%\n", sum.PassRate)
	if err = tw.Flush(); err != nil {
		return err
	}
	if len(grades) == 0 {
		return nil
	}

	fmt.Fprintln(cli.out)
	tw = cli.table()
	fmt.Fprintln(tw, "ESTUDIANTE\tNOTA\t%\tCALIFICACIÓN\tFECHA")
	for _, g := range grades {
		pct := g.Percentage(asgmt.MaxScore)
		fmt.Fprintf(tw, "%s\t%g\t%g\t%s\t%s\n", g.StudentName, g.Score, pct, grade.BandOf(pct), g.SubmittedAt.FormatShort())
	}
	return tw.Flush()
}

func (cli *commandLine) printOverview(ctx context.Context) error {
	ov, err := cli.reports.Overview(ctx)
	if err != nil {
		return errors.Wrap(err, "building overview")
	}

	cli.rule("Resumen")
	tw := cli.table()
	fmt.Fprintf(tw, "Materias\t%d\n", ov.Totals.Subjects)
	fmt.Fprintf(tw, "Tareas\t%d\n", ov.Totals.Assignments)
	fmt.Fprintf(tw, "Notas\t%d\n", ov.Totals.Grades)
	fmt.Fprintf(tw, "Estudiantes\t%d\n", ov.Totals.Students)
	fmt.Fprintf(tw, "Promedio general\t%.2f\n", ov.OverallMean)
	fmt.Fprintf(tw, "Tasa de aprobación\t%g%%\n", ov.OverallPassRate)
	if err = tw.Flush(); err != nil {
		return err
	}

	cli.printSlices("Tipos de tarea", ov.KindDistribution)
	cli.printSlices("Distribución de calificaciones", ov.BandDistribution)

	fmt.Fprintln(cli.out)
	cli.rule("Tendencia")
	tw = cli.table()
	for _, p := range ov.Trend {
		fmt.Fprintf(tw, "%s\t%.2f\n", p.Label, p.Mean)
	}
	return tw.Flush()
}

func (cli *commandLine) printSlices(title string, slices []report.Slice) {
	fmt.Fprintln(cli.out)
	cli.rule(title)
	tw := cli.table()
	for _, s := range slices {
		fmt.Fprintf(tw, "%s\t%d\n", s.Name, s.Value)
	}
	_ = tw.Flush()
}
