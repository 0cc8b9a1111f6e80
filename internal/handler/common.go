package handler // handler defines the HTTP handlers for the API

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"
)

// getUserID extracts the authenticated subject stored by the JWT
// middleware and converts it to an int.  Tokens carry the subject as a
// string, but older clients issued numeric claims, so both are accepted.
func getUserID(c echo.Context) (int, error) {
	switch t := c.Get("user_id").(type) {
	case string:
		if n, err := strconv.Atoi(t); err == nil {
			return n, nil
		}
	case float64:
		return int(t), nil
	case int:
		return t, nil
	}
	return 0, errors.New("invalid user_id in context")
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}
