package usecase

import (
	"context"

	"prosync/internal/model"
	"prosync/pkg/gemini"
	"prosync/pkg/log"
)

// Generator is the slice of the Gemini client this usecase needs.
type Generator interface {
	GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
}

// TaskSource provides a read-only snapshot of the task collection.
type TaskSource interface {
	Snapshot() []model.Task
}

// implUseCase is the private implementation of suggestion.UseCase.
type implUseCase struct {
	l     log.Logger
	llm   Generator
	tasks TaskSource
}

// New creates a new suggestion UseCase implementation.
func New(l log.Logger, llm Generator, tasks TaskSource) *implUseCase {
	return &implUseCase{
		l:     l,
		llm:   llm,
		tasks: tasks,
	}
}
