package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gearguard/maintenance-tracker/internal/core/domain"
	"github.com/gearguard/maintenance-tracker/internal/core/ports"
)

// EquipmentHandler handles HTTP requests for the equipment page.
type EquipmentHandler struct {
	service ports.EquipmentService
}

func NewEquipmentHandler(service ports.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{service: service}
}

type createEquipmentRequest struct {
	Name         string `json:"name"          validate:"required"`
	SerialNumber string `json:"serial_number" validate:"required"`
	Status       string `json:"status"        validate:"omitempty,oneof=operational maintenance repair"`
	Location     string `json:"location"      validate:"required"`
}

type equipmentListResponse struct {
	Equipment []domain.Equipment `json:"equipment"`
	Total     int                `json:"total"`
}

// List handles GET /v1/equipment with optional status and search filters.
//
// @Summary      List equipment
// @Tags         equipment
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status (operational, maintenance, repair)"
// @Param        q       query     string  false  "Search in name or serial number"
// @Success      200     {object}  equipmentListResponse
// @Failure      400     {object}  errorResponse
// @Router       /v1/equipment [get]
func (h *EquipmentHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), ports.EquipmentFilter{
		Status: domain.EquipmentStatus(c.QueryParam("status")),
		Search: c.QueryParam("q"),
	})
	if err != nil {
		return err
	}
	if items == nil {
		items = []domain.Equipment{}
	}
	return c.JSON(http.StatusOK, equipmentListResponse{Equipment: items, Total: len(items)})
}

// Create handles POST /v1/equipment.
//
// @Summary      Add equipment
// @Tags         equipment
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEquipmentRequest  true  "Equipment details"
// @Success      201   {object}  domain.Equipment
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/equipment [post]
func (h *EquipmentHandler) Create(c echo.Context) error {
	var req createEquipmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	eq, err := h.service.Create(c.Request().Context(), ports.CreateEquipmentInput{
		Name:         req.Name,
		SerialNumber: req.SerialNumber,
		Status:       domain.EquipmentStatus(req.Status),
		Location:     req.Location,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, eq)
}

// Get handles GET /v1/equipment/:id.
//
// @Summary      Get equipment by id
// @Tags         equipment
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Equipment id"
// @Success      200  {object}  domain.Equipment
// @Failure      404  {object}  errorResponse
// @Router       /v1/equipment/{id} [get]
func (h *EquipmentHandler) Get(c echo.Context) error {
	eq, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, eq)
}

// Delete handles DELETE /v1/equipment/:id.
//
// @Summary      Remove equipment
// @Tags         equipment
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Equipment id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/equipment/{id} [delete]
func (h *EquipmentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "equipment deleted"})
}
