package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core/student"
)

type studentApi struct {
	svc student.Service
}

// The roster is read-only.
func registerStudentAPI(g *echo.Group, svc student.Service) {
	api := studentApi{svc: svc}

	sg := g.Group("/students")
	sg.GET("", api.query)
	sg.GET("/:id", api.retrieve, objectMiddleware(svc.GetByID))
}

func (api *studentApi) query(ctx echo.Context) error {
	filter := new(student.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []student.Student{})
	}
	filter.Clean()
	ordering := new(Ordering)
	ordering.Bind(ctx)

	students, err := api.svc.Query(ctx.Request().Context(), *filter, ordering.Orderings...)
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *studentApi) retrieve(ctx echo.Context) error {
	stud, err := contextObject[student.Student](ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, stud)
}
