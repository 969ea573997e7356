package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-feedback/errors"
	"github.com/johnquangdev/meeting-feedback/internal/adapter/dto/common"
	feedbackDTO "github.com/johnquangdev/meeting-feedback/internal/adapter/dto/feedback"
	feedbackUsecase "github.com/johnquangdev/meeting-feedback/internal/usecase/feedback"
)

const msgFeedbackRequired = "meetingId, userId, and responses are required"

// Feedback handles feedback form submissions
type Feedback struct {
	feedbackService feedbackUsecase.Service
	logger          *zap.Logger
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(feedbackService feedbackUsecase.Service, logger *zap.Logger) *Feedback {
	return &Feedback{
		feedbackService: feedbackService,
		logger:          logger,
	}
}

// SubmitFeedback handles POST /api/feedback
// @Summary      Submit feedback
// @Description  Stores a feedback form. meetingId and userId may be strings or numbers.
// @Tags         Feedback
// @Accept       json
// @Produce      json
// @Param        request  body      feedback.SubmitFeedbackRequest  true  "Feedback"
// @Success      200      {object}  common.ResultResponse
// @Failure      400      {object}  common.ErrorResponse  "meetingId, userId, and responses are required"
// @Failure      500      {object}  common.ErrorResponse
// @Router       /api/feedback [post]
func (h *Feedback) SubmitFeedback(c echo.Context) error {
	var req feedbackDTO.SubmitFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(msgFeedbackRequired, err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(msgFeedbackRequired))
	}

	result, err := h.feedbackService.SubmitFeedback(c.Request().Context(), feedbackUsecase.SubmitFeedbackInput{
		MeetingID: req.MeetingID.String(),
		UserID:    req.UserID.String(),
		Responses: req.Responses,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, common.ResultResponse{Message: "Feedback saved", Result: result})
}

// ListFeedback handles GET /api/feedback
// @Summary      List feedback
// @Tags         Feedback
// @Produce      json
// @Success      200  {array}   entities.Feedback
// @Failure      500  {object}  common.ErrorResponse
// @Router       /api/feedback [get]
func (h *Feedback) ListFeedback(c echo.Context) error {
	items, err := h.feedbackService.ListFeedback(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, nonNil(items))
}
