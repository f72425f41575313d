package helpers

import (
	"errors"
	"net/http"

	"journey-backend/models"
)

// StatusForError maps domain error kinds onto HTTP statuses.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrDocumentNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrNetwork), errors.Is(err, models.ErrInvalidResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
