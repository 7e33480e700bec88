package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/report"
)

type statsApi struct {
	reports *report.Service
	store   Resetter
	logger  core.Logger
}

func registerStatsAPI(g *echo.Group, reports *report.Service, store Resetter, logger core.Logger) {
	api := statsApi{
		reports: reports,
		store:   store,
		logger:  logger,
	}

	sg := g.Group("/stats")
	sg.GET("/overview", api.overview)
	sg.GET("/subjects", api.subjects)

	g.POST("/reset", api.reset)
}

func (api *statsApi) overview(ctx echo.Context) error {
	ov, err := api.reports.Overview(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "building overview")
	}
	return ctx.JSON(http.StatusOK, ov)
}

func (api *statsApi) subjects(ctx echo.Context) error {
	sums, err := api.reports.AllSubjectStats(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "computing subject stats")
	}
	return ctx.JSON(http.StatusOK, sums)
}

// reset drops every change and restores the seed dataset.
func (api *statsApi) reset(ctx echo.Context) error {
	if err := api.store.Reset(); err != nil {
		return errors.Wrap(err, "resetting store")
	}
	api.logger.Info("store reset to seed dataset", requestInfo(ctx))
	return ctx.NoContent(http.StatusNoContent)
}
