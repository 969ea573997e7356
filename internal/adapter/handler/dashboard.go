package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dashboardUsecase "github.com/johnquangdev/meeting-feedback/internal/usecase/dashboard"
)

// Dashboard serves per user statistics
type Dashboard struct {
	dashboardService dashboardUsecase.Service
	logger           *zap.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService dashboardUsecase.Service, logger *zap.Logger) *Dashboard {
	return &Dashboard{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetUserDashboard handles GET /api/users/:userId/dashboard
// @Summary      User dashboard
// @Description  Meetings owned by the user with feedback counts
// @Tags         Dashboard
// @Produce      json
// @Param        userId  path      string  true  "User ID"
// @Success      200     {object}  dashboard.Stats
// @Failure      500     {object}  common.ErrorResponse
// @Router       /api/users/{userId}/dashboard [get]
func (h *Dashboard) GetUserDashboard(c echo.Context) error {
	stats, err := h.dashboardService.GetUserDashboard(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, stats)
}
