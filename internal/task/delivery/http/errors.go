package http

import (
	"net/http"

	"prosync/internal/task"
	pkgErrors "prosync/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Unknown errors stay as-is and fall through as a 400 envelope.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	case task.ErrEmptyTitle, task.ErrInvalidCategory, task.ErrInvalidPriority,
		task.ErrInvalidSortKey, task.ErrInvalidMonth:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
