package impl

import (
	"context"
	"log/slog"

	deliverycontext "tasktrack/internal/delivery/context"
	"tasktrack/internal/domain/entity"
	domainerrors "tasktrack/internal/domain/errors"
	"tasktrack/internal/domain/repository"
	"tasktrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// taskService implements the TaskUsecase interface. The owner argument on
// every method is the username resolved from the request's bearer token; the
// repository scopes every query by it, so one user can never observe
// another's tasks.
type taskService struct {
	taskRepo repository.TaskRepository
	logger   *slog.Logger
}

// TaskServiceParams holds dependencies for taskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TaskRepo repository.TaskRepository
	Logger   *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		taskRepo: params.TaskRepo,
		logger:   params.Logger,
	}
}

func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTask persists a new task for the owner.
func (srv *taskService) CreateTask(ctx context.Context, owner string, input *usecase.TaskInput) (*entity.Task, error) {
	task := &entity.Task{
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
		Owner:       owner,
	}

	if err := srv.taskRepo.Create(ctx, task); err != nil {
		srv.log(ctx).Error("Failed to create task", slog.String("owner", owner), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create task")
	}

	srv.log(ctx).Debug("Task created", slog.String("owner", owner), slog.Any("taskID", task.ID))

	return task, nil
}

// ListTasks returns every task belonging to the owner.
func (srv *taskService) ListTasks(ctx context.Context, owner string) ([]*entity.Task, error) {
	tasks, err := srv.taskRepo.ListByOwner(ctx, owner)
	if err != nil {
		srv.log(ctx).Error("Failed to list tasks", slog.String("owner", owner), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return tasks, nil
}

// GetTask returns a single task. A task that is missing and a task owned by
// someone else both surface ErrTaskNotFound.
func (srv *taskService) GetTask(ctx context.Context, id uuid.UUID, owner string) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByID(ctx, id, owner)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTaskNotFound, "task lookup failed")
		}

		srv.log(ctx).Error("Failed to load task", slog.String("owner", owner), slog.Any("taskID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load task")
	}

	return task, nil
}

// UpdateTask replaces the task's title, description and completed flag.
func (srv *taskService) UpdateTask(ctx context.Context, id uuid.UUID, owner string, input *usecase.TaskInput) (*entity.Task, error) {
	task := &entity.Task{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
		Owner:       owner,
	}

	if err := srv.taskRepo.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTaskNotFound, "task update failed")
		}

		srv.log(ctx).Error("Failed to update task", slog.String("owner", owner), slog.Any("taskID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update task")
	}

	updated, err := srv.taskRepo.FindByID(ctx, id, owner)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTaskNotFound, "task reload failed")
		}

		return nil, errors.Wrap(err, "failed to reload task after update")
	}

	return updated, nil
}

// DeleteTask removes the owner's task.
func (srv *taskService) DeleteTask(ctx context.Context, id uuid.UUID, owner string) error {
	if err := srv.taskRepo.Delete(ctx, id, owner); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return errors.Wrap(domainerrors.ErrTaskNotFound, "task delete failed")
		}

		srv.log(ctx).Error("Failed to delete task", slog.String("owner", owner), slog.Any("taskID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete task")
	}

	srv.log(ctx).Debug("Task deleted", slog.String("owner", owner), slog.Any("taskID", id))

	return nil
}
