package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetdemo/commute-benefits/internal/core/ports"
)

// PoolHandler manages rewards pool membership. Membership is independent of
// enrollment.
type PoolHandler struct {
	consoles ports.Consoles
}

func NewPoolHandler(consoles ports.Consoles) *PoolHandler {
	return &PoolHandler{consoles: consoles}
}

// List handles GET /v1/pool.
//
// @Summary      List rewards pool members
// @Tags         pool
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  poolResponse
// @Router       /v1/pool [get]
func (h *PoolHandler) List(c echo.Context) error {
	sid, username, err := ctxSession(c)
	if err != nil {
		return err
	}
	members := h.consoles.Get(sid, username).Pool(c.Request().Context())
	return c.JSON(http.StatusOK, toPoolResponse(members))
}

// Join handles PUT /v1/pool/:id.
//
// @Summary      Add an employee to the rewards pool
// @Tags         pool
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Employee id"
// @Success      200  {object}  poolResponse
// @Failure      400  {object}  map[string]string
// @Router       /v1/pool/{id} [put]
func (h *PoolHandler) Join(c echo.Context) error {
	sid, username, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := employeeParam(c)
	if err != nil {
		return err
	}
	members := h.consoles.Get(sid, username).JoinPool(c.Request().Context(), id)
	return c.JSON(http.StatusOK, toPoolResponse(members))
}

// Leave handles DELETE /v1/pool/:id.
//
// @Summary      Remove an employee from the rewards pool
// @Tags         pool
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Employee id"
// @Success      200  {object}  poolResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/pool/{id} [delete]
func (h *PoolHandler) Leave(c echo.Context) error {
	sid, username, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := employeeParam(c)
	if err != nil {
		return err
	}
	members, err := h.consoles.Get(sid, username).LeavePool(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPoolResponse(members))
}
