package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var body interface{} = map[string]string{"message": err.Error()}

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		switch m := he.Message.(type) {
		case string:
			body = map[string]string{"message": m}
		default:
			// Field-level validation errors pass through as-is.
			body = m
		}
	}

	_ = c.JSON(code, body)
}
