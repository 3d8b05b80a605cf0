package repository

import (
	"context"
	"errors"

	"tasktrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when a task does not exist for the given owner.
// A task that exists but belongs to someone else yields the same error, so the
// persistence layer never reveals whether a foreign task id is in use.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines the standard operations for task persistence.
// Every operation is scoped by the owner's username.
type TaskRepository interface {
	// Create persists a new task for the given owner.
	Create(ctx context.Context, task *entity.Task) error

	// ListByOwner returns all tasks belonging to the owner.
	ListByOwner(ctx context.Context, owner string) ([]*entity.Task, error)

	// FindByID retrieves a single task by id, constrained to the owner.
	// Returns ErrTaskNotFound for both missing and not-owned tasks.
	FindByID(ctx context.Context, id uuid.UUID, owner string) (*entity.Task, error)

	// Update modifies an existing task, constrained to the owner.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes a task by id, constrained to the owner.
	// Returns ErrTaskNotFound for both missing and not-owned tasks.
	Delete(ctx context.Context, id uuid.UUID, owner string) error
}
