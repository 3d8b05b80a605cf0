package usecase

import (
	"context"

	"tasktrack/internal/domain/entity"

	"github.com/google/uuid"
)

// TaskInput defines the payload for creating or replacing a task.
// The owner is never part of the input; it always comes from the resolved
// request identity.
type TaskInput struct {
	Title       string
	Description string
	Completed   bool
}

// TaskUsecase defines the interface for task business operations. Every
// operation is scoped to the owner username resolved from the bearer token.
type TaskUsecase interface {
	CreateTask(ctx context.Context, owner string, input *TaskInput) (*entity.Task, error)
	ListTasks(ctx context.Context, owner string) ([]*entity.Task, error)
	GetTask(ctx context.Context, id uuid.UUID, owner string) (*entity.Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, owner string, input *TaskInput) (*entity.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID, owner string) error
}
