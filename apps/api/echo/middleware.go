package echoapi

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const ctxObjectKey = "object"

var errObjNotFoundInCtx = errors.New("object not found in echo.Context")

// objectMiddleware loads the `:id` object with get and stores it in the context
// for detail endpoints.
func objectMiddleware[T any](get func(ctx context.Context, id int) (T, error)) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			id, err := pathID(ctx)
			if err != nil {
				return err
			}
			obj, err := get(ctx.Request().Context(), id)
			if err != nil {
				if isNotFound(errors.Cause(err)) {
					return errHttpNotFound
				}
				return errors.Wrap(err, "finding object by ID")
			}
			ctx.Set(ctxObjectKey, obj)
			return next(ctx)
		}
	}
}

func contextObject[T any](ctx echo.Context) (T, error) {
	obj, ok := ctx.Get(ctxObjectKey).(T)
	if !ok {
		return obj, errors.Wrap(errObjNotFoundInCtx, "retrieving object from context")
	}
	return obj, nil
}
