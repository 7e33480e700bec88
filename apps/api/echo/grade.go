package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core/assignment"
	"github.com/trezcool/gradebook/core/grade"
	"github.com/trezcool/gradebook/core/report"
	"github.com/trezcool/gradebook/core/student"
	"github.com/trezcool/gradebook/core/subject"
)

type gradeApi struct {
	svc      grade.Service
	asgmts   assignment.Service
	subjects subject.Service
	students student.Service
	validate *validator.Validate
}

func registerGradeAPI(
	g *echo.Group,
	svc grade.Service,
	asgmts assignment.Service,
	subjects subject.Service,
	students student.Service,
	validate *validator.Validate,
) {
	api := gradeApi{
		svc:      svc,
		asgmts:   asgmts,
		subjects: subjects,
		students: students,
		validate: validate,
	}

	gg := g.Group("/grades")
	gg.POST("", api.create)
	gg.GET("", api.query)

	// detail endpoints
	dg := gg.Group("/:id", objectMiddleware(svc.GetByID))
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
}

// Handlers

func (api *gradeApi) create(ctx echo.Context) error {
	var data grade.NewGrade
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewGrade")
	}
	rctx := ctx.Request().Context()
	if err := data.Validate(rctx, api.validate, api.asgmts, api.students); err != nil {
		return err
	}

	grd, err := api.svc.Create(rctx, data)
	if err != nil {
		return errors.Wrap(err, "creating grade")
	}
	return ctx.JSON(http.StatusCreated, grd)
}

// query lists grades joined with their assignment and subject.
func (api *gradeApi) query(ctx echo.Context) error {
	filter := new(grade.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []report.GradeRow{})
	}
	ordering := new(Ordering)
	ordering.Bind(ctx)

	rctx := ctx.Request().Context()
	grades, err := api.svc.Query(rctx, *filter, ordering.Orderings...)
	if err != nil {
		return errors.Wrap(err, "querying grades")
	}
	asgmts, err := api.asgmts.Query(rctx, assignment.QueryFilter{})
	if err != nil {
		return errors.Wrap(err, "querying assignments")
	}
	subjects, err := api.subjects.Query(rctx, subject.QueryFilter{})
	if err != nil {
		return errors.Wrap(err, "querying subjects")
	}
	return ctx.JSON(http.StatusOK, report.GradeRows(grades, asgmts, subjects))
}

func (api *gradeApi) retrieve(ctx echo.Context) error {
	grd, err := contextObject[grade.Grade](ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, grd)
}

func (api *gradeApi) update(ctx echo.Context) error {
	grd, err := contextObject[grade.Grade](ctx)
	if err != nil {
		return err
	}

	var data grade.UpdateGrade
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateGrade")
	}
	rctx := ctx.Request().Context()
	if err = data.Validate(rctx, grd, api.validate, api.asgmts, api.students); err != nil {
		return err
	}

	grd, err = api.svc.Update(rctx, grd.ID, data)
	if err != nil {
		return errors.Wrap(err, "updating grade")
	}
	return ctx.JSON(http.StatusOK, grd)
}

func (api *gradeApi) destroy(ctx echo.Context) error {
	grd, err := contextObject[grade.Grade](ctx)
	if err != nil {
		return err
	}
	if err = api.svc.Delete(ctx.Request().Context(), grd.ID); err != nil {
		return errors.Wrap(err, "deleting grade")
	}
	return ctx.NoContent(http.StatusNoContent)
}
