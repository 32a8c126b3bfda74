package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gearguard/maintenance-tracker/internal/core/ports"
)

// DashboardHandler serves the landing page aggregates.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Stats handles GET /v1/dashboard/stats.
//
// @Summary      Dashboard statistics
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Router       /v1/dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Activity handles GET /v1/dashboard/activity.
//
// @Summary      Recent activity feed
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum entries (default 10)"
// @Success      200    {array}   ports.ActivityEntry
// @Router       /v1/dashboard/activity [get]
func (h *DashboardHandler) Activity(c echo.Context) error {
	limit := 10
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := h.service.RecentActivity(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []ports.ActivityEntry{}
	}
	return c.JSON(http.StatusOK, entries)
}
