package dig_container

import (
	"log"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/trezcool/gradebook/apps/api/echo"
	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/assignment"
	"github.com/trezcool/gradebook/core/grade"
	"github.com/trezcool/gradebook/core/report"
	"github.com/trezcool/gradebook/core/student"
	"github.com/trezcool/gradebook/core/subject"
	logsvc "github.com/trezcool/gradebook/services/logger"
	inmemdb "github.com/trezcool/gradebook/storage/database/inmem"
)

type DBLoggerParam struct {
	dig.In
	Logger core.Logger `name:"dbLogger"`
}

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newDBLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newDB(conf *core.Config, loggerParam DBLoggerParam) *inmemdb.DB {
	if !conf.Grading.LoadSeed {
		loggerParam.Logger.Info("opening empty store")
		return inmemdb.Open()
	}
	loggerParam.Logger.Info("opening store with seed dataset")
	return inmemdb.OpenSeeded()
}

func newValidator() *validator.Validate {
	return validator.New()
}

func newReportService(
	conf *core.Config,
	subjects subject.Service,
	asgmts assignment.Service,
	grades grade.Service,
	students student.Service,
) *report.Service {
	return report.NewService(subjects, asgmts, grades, students, conf.Grading.PassThreshold)
}

type serverParams struct {
	dig.In
	Conf          *core.Config
	Logger        core.Logger
	Validate      *validator.Validate
	Translator    ut.Translator
	SubjectSvc    subject.Service
	AssignmentSvc assignment.Service
	GradeSvc      grade.Service
	StudentSvc    student.Service
	ReportSvc     *report.Service
	DB            *inmemdb.DB
}

func newServer(p serverParams) *echoapi.Server {
	return echoapi.NewServer(echoapi.ServerDeps{
		Conf:          p.Conf,
		Logger:        p.Logger,
		Validate:      p.Validate,
		Translator:    p.Translator,
		SubjectSvc:    p.SubjectSvc,
		AssignmentSvc: p.AssignmentSvc,
		GradeSvc:      p.GradeSvc,
		StudentSvc:    p.StudentSvc,
		ReportSvc:     p.ReportSvc,
		Store:         p.DB,
	})
}

// New returns a new dependency injection dig.Container.
// newConfig defaults to core.NewConfig.
func New(newConfig ...func() *core.Config) *dig.Container {
	c := dig.New()

	confFunc := core.NewConfig
	if len(newConfig) > 0 {
		confFunc = newConfig[0]
	}

	must(c.Provide(confFunc))
	must(c.Provide(newLogger))
	must(c.Provide(newDBLogger, dig.Name("dbLogger")))
	must(c.Provide(newDB))
	must(c.Provide(inmemdb.NewSubjectRepository))
	must(c.Provide(inmemdb.NewAssignmentRepository))
	must(c.Provide(inmemdb.NewGradeRepository))
	must(c.Provide(inmemdb.NewStudentRepository))
	must(c.Provide(subject.NewService))
	must(c.Provide(assignment.NewService))
	must(c.Provide(grade.NewService))
	must(c.Provide(student.NewService))
	must(c.Provide(newReportService))
	must(c.Provide(newValidator))
	must(c.Provide(core.NewTranslator))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
