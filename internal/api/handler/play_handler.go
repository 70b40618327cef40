package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fleetdemo/commute-benefits/internal/core/ports"
)

// PlayHandler serves the commuter's daily flow.
type PlayHandler struct {
	play ports.PlayService
}

func NewPlayHandler(play ports.PlayService) *PlayHandler {
	return &PlayHandler{play: play}
}

// Lobby handles GET /v1/play/lobby.
//
// @Summary      Commute lobby
// @Tags         play
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Lobby
// @Router       /v1/play/lobby [get]
func (h *PlayHandler) Lobby(c echo.Context) error {
	sid, _, err := ctxSession(c)
	if err != nil {
		return err
	}
	l, err := h.play.Lobby(c.Request().Context(), sid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, l)
}

// Today handles GET /v1/play/today.
//
// @Summary      Today's commute options with routes
// @Tags         play
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  todayResponse
// @Router       /v1/play/today [get]
func (h *PlayHandler) Today(c echo.Context) error {
	sid, _, err := ctxSession(c)
	if err != nil {
		return err
	}
	v, err := h.play.Today(c.Request().Context(), sid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTodayResponse(v))
}

// Select handles POST /v1/play/select.
//
// @Summary      Select today's commute option
// @Tags         play
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      selectRequest  true  "Option to select"
// @Success      200   {object}  domain.SelectedOption
// @Failure      400   {object}  map[string]string
// @Router       /v1/play/select [post]
func (h *PlayHandler) Select(c echo.Context) error {
	sid, _, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req selectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	sel, err := h.play.Select(c.Request().Context(), sid, req.OptionID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sel)
}

// StartQuest handles POST /v1/play/sessions.
//
// @Summary      Start a commute quest
// @Tags         play
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  domain.QuestSession
// @Router       /v1/play/sessions [post]
func (h *PlayHandler) StartQuest(c echo.Context) error {
	sid, _, err := ctxSession(c)
	if err != nil {
		return err
	}
	q, err := h.play.StartQuest(c.Request().Context(), sid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, q)
}

// FinishQuest handles POST /v1/play/sessions/:id/finish.
//
// @Summary      Finish a commute quest
// @Tags         play
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Quest session id"
// @Success      200  {object}  domain.QuestSession
// @Failure      400  {object}  map[string]string
// @Router       /v1/play/sessions/{id}/finish [post]
func (h *PlayHandler) FinishQuest(c echo.Context) error {
	sid, _, err := ctxSession(c)
	if err != nil {
		return err
	}
	questID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || questID <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid quest id"})
	}
	q, err := h.play.FinishQuest(c.Request().Context(), sid, questID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, q)
}

// Rewards handles GET /v1/play/rewards.
//
// @Summary      Reward progress
// @Tags         play
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  rewardsResponse
// @Router       /v1/play/rewards [get]
func (h *PlayHandler) Rewards(c echo.Context) error {
	sid, _, err := ctxSession(c)
	if err != nil {
		return err
	}
	v, err := h.play.Rewards(c.Request().Context(), sid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRewardsResponse(v))
}
