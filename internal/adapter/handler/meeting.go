package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-feedback/errors"
	"github.com/johnquangdev/meeting-feedback/internal/adapter/dto/common"
	meetingDTO "github.com/johnquangdev/meeting-feedback/internal/adapter/dto/meeting"
	meetingUsecase "github.com/johnquangdev/meeting-feedback/internal/usecase/meeting"
)

const msgMeetingRequired = "Meeting ID and createdBy (userId) are required"

// Meeting handles meeting-related HTTP requests
type Meeting struct {
	meetingService meetingUsecase.Service
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService meetingUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

// CreateMeeting handles POST /api/meetings
// @Summary      Create a meeting
// @Description  Stores a meeting. userId and meetingId are copied from createdBy and id.
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.CreateMeetingRequest  true  "Meeting"
// @Success      200      {object}  common.ResultResponse
// @Failure      400      {object}  common.ErrorResponse  "Meeting ID and createdBy (userId) are required"
// @Failure      500      {object}  common.ErrorResponse
// @Router       /api/meetings [post]
func (h *Meeting) CreateMeeting(c echo.Context) error {
	var req meetingDTO.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(msgMeetingRequired, err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(msgMeetingRequired))
	}

	result, err := h.meetingService.CreateMeeting(c.Request().Context(), meetingUsecase.CreateMeetingInput{
		ID:          req.ID.String(),
		CreatedBy:   req.CreatedBy.String(),
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Description: req.Description,
		MeetingType: req.MeetingType,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, common.ResultResponse{Message: "Meeting created", Result: result})
}

// GetMeeting handles GET /api/meetings/:id
// @Summary      Get a meeting
// @Description  Looks a meeting up by meetingId, then by id
// @Tags         Meetings
// @Produce      json
// @Param        id   path      string  true  "Meeting ID"
// @Success      200  {object}  entities.Meeting
// @Failure      404  {object}  common.ErrorResponse  "Meeting not found"
// @Failure      500  {object}  common.ErrorResponse
// @Router       /api/meetings/{id} [get]
func (h *Meeting) GetMeeting(c echo.Context) error {
	meeting, err := h.meetingService.GetMeeting(c.Request().Context(), c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, meeting)
}

// ListMeetings handles GET /api/meetings
// @Summary      List meetings
// @Description  Lists every meeting. userId scopes the list to one owner, search filters by title or meetingId.
// @Tags         Meetings
// @Produce      json
// @Param        userId  query     string  false  "Owner"
// @Param        search  query     string  false  "Case-insensitive title or meetingId substring"
// @Success      200     {array}   entities.Meeting
// @Failure      500     {object}  common.ErrorResponse
// @Router       /api/meetings [get]
func (h *Meeting) ListMeetings(c echo.Context) error {
	var req meetingDTO.ListMeetingsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload("Invalid query parameters", err))
	}

	meetings, err := h.meetingService.ListMeetings(c.Request().Context(), meetingUsecase.ListFilter{
		UserID: req.UserID,
		Search: req.Search,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, nonNil(meetings))
}
