package handler

import (
	stdErrors "errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-feedback/errors"
	"github.com/johnquangdev/meeting-feedback/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/meeting-feedback/internal/usecase/errors"
)

// getRequestID reads X-Request-ID from the request, or the one the RequestID middleware generated
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Request().Header.Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

// toAppError maps usecase errors to their HTTP representation
func toAppError(c echo.Context, err error) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	var teamErr *entities.TeamValidationError
	if stdErrors.As(err, &teamErr) {
		return errors.ErrTeamInvalid(teamErr)
	}

	switch {
	case stdErrors.Is(err, usecaseErrors.ErrMeetingNotFound):
		return errors.ErrMeetingNotFound(c.Param("id"))
	case stdErrors.Is(err, usecaseErrors.ErrTeamNotFound):
		return errors.ErrTeamNotFound(c.Param("id"))
	case stdErrors.Is(err, usecaseErrors.ErrProfileNotFound):
		return errors.ErrProfileNotFound(c.Param("email"))
	case stdErrors.Is(err, usecaseErrors.ErrNotFound):
		return errors.ErrNotFound("Resource")
	case stdErrors.Is(err, usecaseErrors.ErrInvalidInput):
		return errors.ErrInvalidArgument(err.Error())
	}
	// anything else escaped a repository call
	return errors.ErrDBQueryFailed(c.Request().Method+" "+c.Path(), err)
}

// HandleSuccess writes data as a 200 JSON response
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	if logger != nil {
		logger.Debug("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}
	return c.JSON(http.StatusOK, data)
}

// HandleError centralizes error handling and logging. Clients only ever see the message;
// the raw error of a 500 stays in the log.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	appErr := toAppError(c, err)

	if logger != nil {
		fields := []zap.Field{
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Stringer("app_code", appErr.Code),
			zap.Error(err),
		}
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.Error("http.response.error", fields...)
		} else {
			logger.Warn("http.response.error", fields...)
		}
	}

	return c.JSON(appErr.HTTPCode, common.ErrorResponse{Message: appErr.Message})
}

// ErrorHandler replaces echo's default so routing errors and recovered panics
// share the {"message"} body of handler errors.
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if stdErrors.As(err, &he) && he.Code < http.StatusInternalServerError {
			_ = c.JSON(he.Code, common.ErrorResponse{Message: fmt.Sprint(he.Message)})
			return
		}
		_ = HandleError(logger, c, errors.ErrInternal(err))
	}
}

// nonNil keeps empty collections serialized as [] rather than null
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
