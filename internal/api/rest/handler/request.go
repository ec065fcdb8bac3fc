package handler

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shopkeep/shopkeep-server/internal/model"
)

// parsePage reads the skip and limit query parameters.
func parsePage(c echo.Context) (model.Page, error) {
	page := model.DefaultPage()

	if v := c.QueryParam("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return model.Page{}, model.NewValidationError("skip", "must be a non-negative integer")
		}
		page.Offset = n
	}

	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > model.MaxPageLimit {
			return model.Page{}, model.NewValidationError("limit",
				fmt.Sprintf("must be an integer between 1 and %d", model.MaxPageLimit))
		}
		page.Limit = n
	}

	return page, nil
}

func parseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, model.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}

// bindAndValidate decodes the request into req, runs normalize and then the
// struct validator.
func bindAndValidate[T interface{ normalize() }](c echo.Context, req T) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	req.normalize()
	return c.Validate(req)
}
