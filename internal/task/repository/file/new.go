package file

import (
	"prosync/internal/task/repository"
	"prosync/pkg/log"
)

type implRepository struct {
	path string
	l    log.Logger
}

// New creates a file-backed Repository persisting the collection as a
// single JSON document at path.
func New(path string, l log.Logger) repository.Repository {
	if path == "" {
		panic("task/repository/file: path is required")
	}
	return &implRepository{path: path, l: l}
}
