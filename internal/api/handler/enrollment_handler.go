package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetdemo/commute-benefits/internal/core/ports"
)

// EnrollmentHandler serves the admin enrollment console.
type EnrollmentHandler struct {
	consoles ports.Consoles
}

func NewEnrollmentHandler(consoles ports.Consoles) *EnrollmentHandler {
	return &EnrollmentHandler{consoles: consoles}
}

// Roster handles GET /v1/employees.
//
// @Summary      List employees with their effective enrollment state
// @Tags         enrollments
// @Produce      json
// @Security     BearerAuth
// @Param        department  query     string  false  "Department filter, applied by the commute API"
// @Param        search      query     string  false  "Case- and accent-insensitive match on name or email"
// @Success      200         {object}  rosterResponse
// @Failure      401         {object}  map[string]string
// @Failure      502         {object}  map[string]string
// @Router       /v1/employees [get]
func (h *EnrollmentHandler) Roster(c echo.Context) error {
	sid, username, err := ctxSession(c)
	if err != nil {
		return err
	}

	res, err := h.consoles.Get(sid, username).Roster(c.Request().Context(), ports.RosterQuery{
		Department: c.QueryParam("department"),
		Search:     c.QueryParam("search"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRosterResponse(res))
}

// Enroll handles POST /v1/employees/:id/enroll.
//
// @Summary      Enroll an employee
// @Tags         enrollments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Employee id"
// @Success      200  {object}  actionResponse
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /v1/employees/{id}/enroll [post]
func (h *EnrollmentHandler) Enroll(c echo.Context) error {
	sid, username, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := employeeParam(c)
	if err != nil {
		return err
	}

	res, err := h.consoles.Get(sid, username).Enroll(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toActionResponse(res))
}

// Cancel handles POST /v1/employees/:id/cancel. With no active enrollment to
// cancel the response is 200 with skipped set.
//
// @Summary      Cancel an employee's active enrollment
// @Tags         enrollments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Employee id"
// @Success      200  {object}  actionResponse
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /v1/employees/{id}/cancel [post]
func (h *EnrollmentHandler) Cancel(c echo.Context) error {
	sid, username, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := employeeParam(c)
	if err != nil {
		return err
	}

	res, err := h.consoles.Get(sid, username).Cancel(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toActionResponse(res))
}
