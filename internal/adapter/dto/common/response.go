package common

import "github.com/johnquangdev/meeting-feedback/internal/domain/entities"

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// ResultResponse acknowledges a write and carries the store result
type ResultResponse struct {
	Message string                   `json:"message"`
	Result  *entities.OperationResult `json:"result"`
}

// ProfileResultResponse acknowledges a profile save and echoes the stored profile
type ProfileResultResponse struct {
	Message string                   `json:"message"`
	Result  *entities.OperationResult `json:"result"`
	Profile *entities.Profile         `json:"profile"`
}

// HealthResponse reports service status
type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Store       string `json:"store"`
}
