package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gita-search-api/internal/models"
	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every error as {"error": message}. Unexpected errors
// become 500 with their raw message.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := err.Error()

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if he.Internal != nil && code >= http.StatusInternalServerError {
			message = he.Internal.Error()
		} else {
			message = fmt.Sprint(he.Message)
		}
	}

	if code >= http.StatusInternalServerError {
		c.Logger().Error(err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, models.ErrorResponse{Error: message})
	}
	if err != nil {
		c.Logger().Error(err)
	}
}
