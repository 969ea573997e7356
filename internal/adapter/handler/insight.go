package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-feedback/errors"
	"github.com/johnquangdev/meeting-feedback/internal/adapter/dto/common"
	insightDTO "github.com/johnquangdev/meeting-feedback/internal/adapter/dto/insight"
	"github.com/johnquangdev/meeting-feedback/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	insightUsecase "github.com/johnquangdev/meeting-feedback/internal/usecase/insight"
)

// Insight handles AI insight reports
type Insight struct {
	insightService insightUsecase.Service
	logger         *zap.Logger
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(insightService insightUsecase.Service, logger *zap.Logger) *Insight {
	return &Insight{
		insightService: insightService,
		logger:         logger,
	}
}

// GetMeetingInsights handles GET /api/meetings/:id/insights
// @Summary      Summarize meeting feedback
// @Description  Builds an insight report from the feedback of a meeting. source tells whether the
// @Description  report was generated or is one of the canned fallbacks (no_feedback, default, degraded).
// @Tags         Insights
// @Produce      json
// @Param        id      path      string  true   "Meeting ID"
// @Param        userId  query     string  false  "Whose question set to include"
// @Success      200     {object}  insight.MeetingInsightsResponse
// @Failure      500     {object}  common.ErrorResponse
// @Router       /api/meetings/{id}/insights [get]
func (h *Insight) GetMeetingInsights(c echo.Context) error {
	var req insightDTO.GetInsightsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload("Invalid request parameters", err))
	}

	result, err := h.insightService.GenerateMeetingInsights(c.Request().Context(), req.MeetingID, req.UserID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingInsightsResponse(result))
}

// SaveInsight handles POST /api/ai-insights
// @Summary      Save an AI insight
// @Description  Stores an insight record as posted. Unknown fields are dropped.
// @Tags         Insights
// @Accept       json
// @Produce      json
// @Param        request  body      entities.Insight  true  "Insight"
// @Success      200      {object}  common.ResultResponse
// @Failure      400      {object}  common.ErrorResponse
// @Failure      500      {object}  common.ErrorResponse
// @Router       /api/ai-insights [post]
func (h *Insight) SaveInsight(c echo.Context) error {
	var insight entities.Insight
	if err := (&echo.DefaultBinder{}).BindBody(c, &insight); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload("Invalid insight payload", err))
	}

	result, err := h.insightService.SaveInsight(c.Request().Context(), &insight)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, common.ResultResponse{Message: "AI Insight saved", Result: result})
}

// ListInsights handles GET /api/ai-insights
// @Summary      List AI insights
// @Tags         Insights
// @Produce      json
// @Success      200  {array}   entities.Insight
// @Failure      500  {object}  common.ErrorResponse
// @Router       /api/ai-insights [get]
func (h *Insight) ListInsights(c echo.Context) error {
	insights, err := h.insightService.ListInsights(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, nonNil(insights))
}
