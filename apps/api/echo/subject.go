package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core/report"
	"github.com/trezcool/gradebook/core/subject"
)

type subjectApi struct {
	svc      subject.Service
	reports  *report.Service
	validate *validator.Validate
}

func registerSubjectAPI(g *echo.Group, svc subject.Service, reports *report.Service, validate *validator.Validate) {
	api := subjectApi{
		svc:      svc,
		reports:  reports,
		validate: validate,
	}

	sg := g.Group("/subjects")
	sg.POST("", api.create)
	sg.GET("", api.query)
	sg.GET("/colors", api.queryColors)

	// detail endpoints
	dg := sg.Group("/:id", objectMiddleware(svc.GetByID))
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
	dg.GET("/stats", api.stats)
}

// Handlers

func (api *subjectApi) create(ctx echo.Context) error {
	var data subject.NewSubject
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSubject")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	subj, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating subject")
	}
	return ctx.JSON(http.StatusCreated, subj)
}

func (api *subjectApi) query(ctx echo.Context) error {
	filter := new(subject.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []subject.Subject{})
	}
	filter.Clean()
	ordering := new(Ordering)
	ordering.Bind(ctx)

	subjects, err := api.svc.Query(ctx.Request().Context(), *filter, ordering.Orderings...)
	if err != nil {
		return errors.Wrap(err, "querying subjects")
	}
	return ctx.JSON(http.StatusOK, subjects)
}

func (api *subjectApi) queryColors(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, subject.Colors)
}

func (api *subjectApi) retrieve(ctx echo.Context) error {
	subj, err := contextObject[subject.Subject](ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, subj)
}

func (api *subjectApi) update(ctx echo.Context) error {
	subj, err := contextObject[subject.Subject](ctx)
	if err != nil {
		return err
	}

	var data subject.UpdateSubject
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateSubject")
	}
	if err = data.Validate(subj, api.validate); err != nil {
		return err
	}

	subj, err = api.svc.Update(ctx.Request().Context(), subj.ID, data)
	if err != nil {
		return errors.Wrap(err, "updating subject")
	}
	return ctx.JSON(http.StatusOK, subj)
}

// destroy also removes the subject's assignments and their grades.
func (api *subjectApi) destroy(ctx echo.Context) error {
	subj, err := contextObject[subject.Subject](ctx)
	if err != nil {
		return err
	}
	if err = api.svc.Delete(ctx.Request().Context(), subj.ID); err != nil {
		return errors.Wrap(err, "deleting subject")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *subjectApi) stats(ctx echo.Context) error {
	subj, err := contextObject[subject.Subject](ctx)
	if err != nil {
		return err
	}
	sum, err := api.reports.SubjectStats(ctx.Request().Context(), subj.ID)
	if err != nil {
		return errors.Wrap(err, "computing subject stats")
	}
	return ctx.JSON(http.StatusOK, sum)
}
