package handler

import (
	"net/url"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-feedback/errors"
	"github.com/johnquangdev/meeting-feedback/internal/adapter/dto/common"
	profileDTO "github.com/johnquangdev/meeting-feedback/internal/adapter/dto/profile"
	profileUsecase "github.com/johnquangdev/meeting-feedback/internal/usecase/profile"
)

const msgEmailRequired = "Email is required"

// Profile handles user profile attribute bags
type Profile struct {
	profileService profileUsecase.Service
	logger         *zap.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService profileUsecase.Service, logger *zap.Logger) *Profile {
	return &Profile{
		profileService: profileService,
		logger:         logger,
	}
}

// SaveProfile handles POST /api/profile
// @Summary      Save a profile
// @Description  Merges the posted attributes into the profile with the same email. _id is ignored.
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Param        request  body      object  true  "Profile attributes, email required"
// @Success      200      {object}  common.ProfileResultResponse
// @Failure      400      {object}  common.ErrorResponse  "Email is required"
// @Failure      500      {object}  common.ErrorResponse
// @Router       /api/profile [post]
func (h *Profile) SaveProfile(c echo.Context) error {
	var req profileDTO.SaveProfileRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(msgEmailRequired, err))
	}
	email := req.Email()
	if email == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(msgEmailRequired))
	}

	result, profile, err := h.profileService.SaveProfile(c.Request().Context(), email, req)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, common.ProfileResultResponse{
		Message: "Profile saved",
		Result:  result,
		Profile: profile,
	})
}

// GetProfile handles GET /api/profile/:email
// @Summary      Get a profile
// @Tags         Profile
// @Produce      json
// @Param        email  path      string  true  "URL encoded email"
// @Success      200    {object}  entities.Profile
// @Failure      404    {object}  common.ErrorResponse  "Profile not found"
// @Failure      500    {object}  common.ErrorResponse
// @Router       /api/profile/{email} [get]
func (h *Profile) GetProfile(c echo.Context) error {
	email, err := url.PathUnescape(c.Param("email"))
	if err != nil {
		email = c.Param("email")
	}

	profile, err := h.profileService.GetProfile(c.Request().Context(), email)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, profile)
}
