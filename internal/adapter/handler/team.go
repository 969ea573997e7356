package handler

import (
	"bytes"
	"encoding/json"
	stdErrors "errors"
	"io"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-feedback/errors"
	"github.com/johnquangdev/meeting-feedback/internal/adapter/dto/common"
	teamDTO "github.com/johnquangdev/meeting-feedback/internal/adapter/dto/team"
	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	teamUsecase "github.com/johnquangdev/meeting-feedback/internal/usecase/team"
)

// Team handles team-related HTTP requests
type Team struct {
	teamService teamUsecase.Service
	logger      *zap.Logger
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService teamUsecase.Service, logger *zap.Logger) *Team {
	return &Team{
		teamService: teamService,
		logger:      logger,
	}
}

// bindTeam decodes the team body. An empty body or a JSON array is an empty team so the
// validator reports the missing name. null, scalars and malformed JSON are a missing team.
func bindTeam(c echo.Context) (*entities.Team, error) {
	missing := (&entities.TeamValidationError{Violation: entities.TeamViolationMissing, MemberIndex: -1}).Error()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, errors.ErrInvalidPayload(missing, err)
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return &entities.Team{}, nil
	}
	if !json.Valid(body) {
		return nil, errors.ErrInvalidPayload(missing, stdErrors.New("malformed JSON body"))
	}

	switch body[0] {
	case '{':
		var req teamDTO.TeamRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, errors.ErrInvalidPayload(missing, err)
		}
		return req.ToEntity(), nil
	case '[':
		return &entities.Team{}, nil
	default:
		return nil, nil
	}
}

// CreateTeam handles POST /api/teams
// @Summary      Create a team
// @Tags         Teams
// @Accept       json
// @Produce      json
// @Param        request  body      team.TeamRequest  true  "Team"
// @Success      200      {object}  common.ResultResponse
// @Failure      400      {object}  common.ErrorResponse  "First validation failure"
// @Failure      500      {object}  common.ErrorResponse
// @Router       /api/teams [post]
func (h *Team) CreateTeam(c echo.Context) error {
	team, err := bindTeam(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.teamService.CreateTeam(c.Request().Context(), team)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, common.ResultResponse{Message: "Team created", Result: result})
}

// ListTeams handles GET /api/teams
// @Summary      List teams
// @Tags         Teams
// @Produce      json
// @Success      200  {array}   entities.Team
// @Failure      500  {object}  common.ErrorResponse
// @Router       /api/teams [get]
func (h *Team) ListTeams(c echo.Context) error {
	teams, err := h.teamService.ListTeams(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, nonNil(teams))
}

// GetTeam handles GET /api/teams/:id
// @Summary      Get a team
// @Tags         Teams
// @Produce      json
// @Param        id   path      string  true  "Team ID"
// @Success      200  {object}  entities.Team
// @Failure      404  {object}  common.ErrorResponse  "Team not found"
// @Failure      500  {object}  common.ErrorResponse
// @Router       /api/teams/{id} [get]
func (h *Team) GetTeam(c echo.Context) error {
	team, err := h.teamService.GetTeam(c.Request().Context(), c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, team)
}

// UpdateTeam handles PUT /api/teams/:id
// @Summary      Replace a team
// @Description  Replaces name and members of a team
// @Tags         Teams
// @Accept       json
// @Produce      json
// @Param        id       path      string            true  "Team ID"
// @Param        request  body      team.TeamRequest  true  "Team"
// @Success      200      {object}  common.ResultResponse
// @Failure      400      {object}  common.ErrorResponse  "First validation failure"
// @Failure      404      {object}  common.ErrorResponse  "Team not found"
// @Failure      500      {object}  common.ErrorResponse
// @Router       /api/teams/{id} [put]
func (h *Team) UpdateTeam(c echo.Context) error {
	team, err := bindTeam(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.teamService.UpdateTeam(c.Request().Context(), c.Param("id"), team)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, common.ResultResponse{Message: "Team updated", Result: result})
}

// DeleteTeam handles DELETE /api/teams/:id
// @Summary      Delete a team
// @Tags         Teams
// @Produce      json
// @Param        id   path      string  true  "Team ID"
// @Success      200  {object}  common.ResultResponse
// @Failure      404  {object}  common.ErrorResponse  "Team not found"
// @Failure      500  {object}  common.ErrorResponse
// @Router       /api/teams/{id} [delete]
func (h *Team) DeleteTeam(c echo.Context) error {
	result, err := h.teamService.DeleteTeam(c.Request().Context(), c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, common.ResultResponse{Message: "Team deleted", Result: result})
}
