package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fleetdemo/commute-benefits/internal/core/domain"
)

// ctxSession extracts the claims injected by the Auth middleware. The
// session id must be present; its absence means the middleware did not run.
func ctxSession(c echo.Context) (sessionID, username string, err error) {
	sessionID, _ = c.Get("sid").(string)
	if sessionID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	username, _ = c.Get("username").(string)
	return sessionID, username, nil
}

// employeeParam parses the :id path parameter as an employee id.
func employeeParam(c echo.Context) (domain.EmployeeID, error) {
	n, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || !domain.EmployeeID(n).Valid() {
		return 0, domain.ErrInvalidEmployeeID
	}
	return domain.EmployeeID(n), nil
}
