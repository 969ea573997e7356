package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-feedback/errors"
	insightDTO "github.com/johnquangdev/meeting-feedback/internal/adapter/dto/insight"
)

// ListArchivedReports handles GET /api/meetings/:id/insights/archive
// @Summary      List archived reports
// @Description  Lists generated reports archived in object storage, with presigned download URLs.
// @Description  The list is empty when storage is disabled.
// @Tags         Insights
// @Produce      json
// @Param        id   path      string  true  "Meeting ID"
// @Success      200  {object}  insight.ArchiveResponse
// @Failure      500  {object}  common.ErrorResponse
// @Router       /api/meetings/{id}/insights/archive [get]
func (h *Insight) ListArchivedReports(c echo.Context) error {
	meetingID := c.Param("id")

	reports, err := h.insightService.ListArchivedReports(c.Request().Context(), meetingID)
	if err != nil {
		if h.logger != nil {
			h.logger.Error("failed to list archived reports",
				zap.String("meeting_id", meetingID),
				zap.Error(err))
		}
		return HandleError(h.logger, c, errors.ErrStorageFailed("list_archived_reports", err))
	}

	reports = nonNil(reports)
	return HandleSuccess(h.logger, c, insightDTO.ArchiveResponse{
		MeetingID: meetingID,
		Reports:   reports,
		Count:     len(reports),
	})
}
