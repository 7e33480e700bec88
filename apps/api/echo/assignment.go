package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/assignment"
	"github.com/trezcool/gradebook/core/report"
	"github.com/trezcool/gradebook/core/subject"
)

type assignmentApi struct {
	svc      assignment.Service
	subjects subject.Service
	reports  *report.Service
	validate *validator.Validate
}

func registerAssignmentAPI(
	g *echo.Group,
	svc assignment.Service,
	subjects subject.Service,
	reports *report.Service,
	validate *validator.Validate,
) {
	api := assignmentApi{
		svc:      svc,
		subjects: subjects,
		reports:  reports,
		validate: validate,
	}

	ag := g.Group("/assignments")
	ag.POST("", api.create)
	ag.GET("", api.query)
	ag.GET("/kinds", api.queryKinds)

	// detail endpoints
	dg := ag.Group("/:id", objectMiddleware(svc.GetByID))
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
	dg.GET("/stats", api.stats)
}

// Handlers

func (api *assignmentApi) create(ctx echo.Context) error {
	var data assignment.NewAssignment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAssignment")
	}
	rctx := ctx.Request().Context()
	if err := data.Validate(rctx, api.validate, api.subjects); err != nil {
		return err
	}

	asgmt, err := api.svc.Create(rctx, data)
	if err != nil {
		return errors.Wrap(err, "creating assignment")
	}
	return ctx.JSON(http.StatusCreated, asgmt)
}

// query lists assignments with their subject name and due state.
func (api *assignmentApi) query(ctx echo.Context) error {
	filter := new(assignment.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []report.AssignmentRow{})
	}
	filter.Clean()
	ordering := new(Ordering)
	ordering.Bind(ctx)

	rctx := ctx.Request().Context()
	asgmts, err := api.svc.Query(rctx, *filter, ordering.Orderings...)
	if err != nil {
		return errors.Wrap(err, "querying assignments")
	}
	subjects, err := api.subjects.Query(rctx, subject.QueryFilter{})
	if err != nil {
		return errors.Wrap(err, "querying subjects")
	}
	return ctx.JSON(http.StatusOK, report.AssignmentRows(asgmts, subjects, core.Today()))
}

func (api *assignmentApi) queryKinds(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, assignment.Kinds)
}

func (api *assignmentApi) retrieve(ctx echo.Context) error {
	asgmt, err := contextObject[assignment.Assignment](ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, asgmt)
}

func (api *assignmentApi) update(ctx echo.Context) error {
	asgmt, err := contextObject[assignment.Assignment](ctx)
	if err != nil {
		return err
	}

	var data assignment.UpdateAssignment
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateAssignment")
	}
	rctx := ctx.Request().Context()
	if err = data.Validate(rctx, asgmt, api.validate, api.subjects); err != nil {
		return err
	}

	asgmt, err = api.svc.Update(rctx, asgmt.ID, data)
	if err != nil {
		return errors.Wrap(err, "updating assignment")
	}
	return ctx.JSON(http.StatusOK, asgmt)
}

// destroy also removes the assignment's grades.
func (api *assignmentApi) destroy(ctx echo.Context) error {
	asgmt, err := contextObject[assignment.Assignment](ctx)
	if err != nil {
		return err
	}
	if err = api.svc.Delete(ctx.Request().Context(), asgmt.ID); err != nil {
		return errors.Wrap(err, "deleting assignment")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *assignmentApi) stats(ctx echo.Context) error {
	asgmt, err := contextObject[assignment.Assignment](ctx)
	if err != nil {
		return err
	}
	sum, err := api.reports.AssignmentStats(ctx.Request().Context(), asgmt.ID)
	if err != nil {
		return errors.Wrap(err, "computing assignment stats")
	}
	return ctx.JSON(http.StatusOK, sum)
}
