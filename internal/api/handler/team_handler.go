package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gearguard/maintenance-tracker/internal/core/domain"
	"github.com/gearguard/maintenance-tracker/internal/core/ports"
)

// TeamHandler handles HTTP requests for the teams page.
type TeamHandler struct {
	service ports.TeamService
}

func NewTeamHandler(service ports.TeamService) *TeamHandler {
	return &TeamHandler{service: service}
}

type createTeamRequest struct {
	Name    string `json:"name"    validate:"required"`
	Members int    `json:"members" validate:"gte=0"`
}

type teamListResponse struct {
	Teams []domain.Team `json:"teams"`
	Total int           `json:"total"`
}

// List handles GET /v1/teams.
//
// @Summary      List teams
// @Tags         teams
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  teamListResponse
// @Router       /v1/teams [get]
func (h *TeamHandler) List(c echo.Context) error {
	teams, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if teams == nil {
		teams = []domain.Team{}
	}
	return c.JSON(http.StatusOK, teamListResponse{Teams: teams, Total: len(teams)})
}

// Create handles POST /v1/teams.
//
// @Summary      Add a team
// @Tags         teams
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTeamRequest  true  "Team details"
// @Success      201   {object}  domain.Team
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/teams [post]
func (h *TeamHandler) Create(c echo.Context) error {
	var req createTeamRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	team, err := h.service.Create(c.Request().Context(), ports.CreateTeamInput{
		Name:    req.Name,
		Members: req.Members,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, team)
}

// Delete handles DELETE /v1/teams/:id.
//
// @Summary      Remove a team
// @Tags         teams
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Team id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/teams/{id} [delete]
func (h *TeamHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "team deleted"})
}
