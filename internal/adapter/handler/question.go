package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-feedback/errors"
	"github.com/johnquangdev/meeting-feedback/internal/adapter/dto/common"
	questionDTO "github.com/johnquangdev/meeting-feedback/internal/adapter/dto/question"
	questionUsecase "github.com/johnquangdev/meeting-feedback/internal/usecase/question"
)

const msgQuestionsRequired = "meetId, userId, and questions[] required"

// Question handles per meeting and user question sets
type Question struct {
	questionService questionUsecase.Service
	logger          *zap.Logger
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionService questionUsecase.Service, logger *zap.Logger) *Question {
	return &Question{
		questionService: questionService,
		logger:          logger,
	}
}

// SaveQuestions handles POST /api/questions
// @Summary      Save a question set
// @Description  Replaces the questions of (meetId, userId), creating the set when missing
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        request  body      question.SaveQuestionsRequest  true  "Question set"
// @Success      200      {object}  common.ResultResponse
// @Failure      400      {object}  common.ErrorResponse  "meetId, userId, and questions[] required"
// @Failure      500      {object}  common.ErrorResponse
// @Router       /api/questions [post]
func (h *Question) SaveQuestions(c echo.Context) error {
	var req questionDTO.SaveQuestionsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(msgQuestionsRequired, err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(msgQuestionsRequired))
	}

	result, err := h.questionService.SaveQuestions(c.Request().Context(), req.MeetID.String(), req.UserID.String(), req.Questions)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, common.ResultResponse{Message: "Questions saved", Result: result})
}

// GetQuestions handles GET /api/questions/:meetId/:userId
// @Summary      Get a question set
// @Description  Returns the questions of (meetId, userId), or an empty list
// @Tags         Questions
// @Produce      json
// @Param        meetId  path      string  true  "Meeting ID"
// @Param        userId  path      string  true  "User ID"
// @Success      200     {array}   entities.Question
// @Failure      500     {object}  common.ErrorResponse
// @Router       /api/questions/{meetId}/{userId} [get]
func (h *Question) GetQuestions(c echo.Context) error {
	var req questionDTO.GetQuestionsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload("Invalid path parameters", err))
	}

	questions, err := h.questionService.GetQuestions(c.Request().Context(), req.MeetID, req.UserID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, nonNil(questions))
}
