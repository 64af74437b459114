package http

import (
	"prosync/internal/suggestion"
	"prosync/pkg/log"
)

type handler struct {
	l  log.Logger
	uc suggestion.UseCase
}

// New creates a new HTTP handler for the suggestion domain.
func New(l log.Logger, uc suggestion.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
