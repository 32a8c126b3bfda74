package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gearguard/maintenance-tracker/internal/core/domain"
	"github.com/gearguard/maintenance-tracker/internal/core/ports"
)

// MaintenanceHandler handles HTTP requests for maintenance requests.
type MaintenanceHandler struct {
	service ports.MaintenanceService
}

func NewMaintenanceHandler(service ports.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{service: service}
}

type createRequestRequest struct {
	EquipmentID  string `json:"equipment_id"  validate:"required"`
	TeamID       string `json:"team_id"`
	Type         string `json:"type"          validate:"required,oneof=preventive corrective inspection"`
	Priority     string `json:"priority"      validate:"required,oneof=high medium low"`
	Description  string `json:"description"`
	ScheduledFor string `json:"scheduled_for"` // RFC 3339; defaults to now
}

type transitionRequest struct {
	Stage string `json:"stage" validate:"required,oneof=in_progress repaired cancelled"`
	Notes string `json:"notes"`
}

type requestListResponse struct {
	Requests []domain.MaintenanceRequest `json:"requests"`
	Total    int                         `json:"total"`
}

// List handles GET /v1/maintenance with optional stage/priority/equipment filters.
//
// @Summary      List maintenance requests
// @Tags         maintenance
// @Produce      json
// @Security     BearerAuth
// @Param        stage         query     string  false  "Filter by stage"
// @Param        priority      query     string  false  "Filter by priority"
// @Param        equipment_id  query     string  false  "Filter by equipment"
// @Success      200           {object}  requestListResponse
// @Router       /v1/maintenance [get]
func (h *MaintenanceHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), ports.RequestFilter{
		Stage:       domain.RequestStage(c.QueryParam("stage")),
		Priority:    domain.RequestPriority(c.QueryParam("priority")),
		EquipmentID: c.QueryParam("equipment_id"),
	})
	if err != nil {
		return err
	}
	if items == nil {
		items = []domain.MaintenanceRequest{}
	}
	return c.JSON(http.StatusOK, requestListResponse{Requests: items, Total: len(items)})
}

// Create handles POST /v1/maintenance.
//
// @Summary      Create a maintenance request
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRequestRequest  true  "Request details"
// @Success      201   {object}  domain.MaintenanceRequest
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/maintenance [post]
func (h *MaintenanceHandler) Create(c echo.Context) error {
	var req createRequestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	var scheduled time.Time
	if req.ScheduledFor != "" {
		parsed, err := time.Parse(time.RFC3339, req.ScheduledFor)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "scheduled_for must be RFC 3339"})
		}
		scheduled = parsed
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateRequestInput{
		EquipmentID:  req.EquipmentID,
		TeamID:       req.TeamID,
		Type:         domain.RequestType(req.Type),
		Priority:     domain.RequestPriority(req.Priority),
		Description:  req.Description,
		ScheduledFor: scheduled,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Get handles GET /v1/maintenance/:id.
//
// @Summary      Get a maintenance request
// @Tags         maintenance
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Request id"
// @Success      200  {object}  domain.MaintenanceRequest
// @Failure      404  {object}  errorResponse
// @Router       /v1/maintenance/{id} [get]
func (h *MaintenanceHandler) Get(c echo.Context) error {
	req, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, req)
}

// Transition handles POST /v1/maintenance/:id/transition.
//
// @Summary      Move a request to its next stage
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Request id"
// @Param        body  body      transitionRequest  true  "Target stage"
// @Success      200   {object}  domain.MaintenanceRequest
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/maintenance/{id}/transition [post]
func (h *MaintenanceHandler) Transition(c echo.Context) error {
	var req transitionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	updated, err := h.service.Transition(c.Request().Context(), c.Param("id"), domain.RequestStage(req.Stage), req.Notes)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /v1/maintenance/:id.
//
// @Summary      Delete a maintenance request
// @Tags         maintenance
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Request id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/maintenance/{id} [delete]
func (h *MaintenanceHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "maintenance request deleted"})
}
