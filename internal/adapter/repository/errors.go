package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories"
)

// translateError maps gorm errors to repository errors
func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repositories.ErrNotFound
	}
	return err
}

// validID reports whether id can be compared against a uuid column
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
