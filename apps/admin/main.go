package main

import (
	"io"
	"log"
	"os"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/assignment"
	"github.com/trezcool/gradebook/core/grade"
	"github.com/trezcool/gradebook/core/report"
	"github.com/trezcool/gradebook/core/student"
	"github.com/trezcool/gradebook/core/subject"
	logsvc "github.com/trezcool/gradebook/services/logger"
	inmemdb "github.com/trezcool/gradebook/storage/database/inmem"
)

func main() {
	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile), conf)
	logger.Enable(!conf.Debug)
	defer logger.Flush()

	// set up store
	db := inmemdb.Open()
	if conf.Grading.LoadSeed {
		db = inmemdb.OpenSeeded()
	}

	// start CLI
	cli := newCommandLine(os.Stdout, int(os.Stdout.Fd()), db, conf.Grading.PassThreshold)
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error("admin command failed", err)
		}
		logger.Flush()
		os.Exit(1)
	}
}

func newCommandLine(out io.Writer, fd int, db *inmemdb.DB, passThreshold float64) *commandLine {
	subjSvc := subject.NewService(inmemdb.NewSubjectRepository(db))
	asgmtSvc := assignment.NewService(inmemdb.NewAssignmentRepository(db))
	grdSvc := grade.NewService(inmemdb.NewGradeRepository(db))
	studSvc := student.NewService(inmemdb.NewStudentRepository(db))

	return &commandLine{
		out:      out,
		fd:       fd,
		subjects: subjSvc,
		asgmts:   asgmtSvc,
		grades:   grdSvc,
		reports:  report.NewService(subjSvc, asgmtSvc, grdSvc, studSvc, passThreshold),
	}
}
