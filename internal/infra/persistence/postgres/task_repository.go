package postgres

import (
	"context"

	"tasktrack/internal/domain/entity"
	"tasktrack/internal/domain/repository"
	"tasktrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// taskRepository implements the domain's TaskRepository interface.
// Every query carries an owner predicate, so a task belonging to another user
// is indistinguishable from a task that does not exist.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

// Create persists a new task for its owner.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		return errors.Wrap(err, "failed to create task")
	}

	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// ListByOwner returns all tasks belonging to the owner, oldest first.
func (repo *taskRepository) ListByOwner(ctx context.Context, owner string) ([]*entity.Task, error) {
	var taskModels []*model.TaskModel
	err := repo.db.WithContext(ctx).
		Where("owner = ?", owner).
		Order("created_at ASC").
		Find(&taskModels).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	tasks := make([]*entity.Task, 0, len(taskModels))
	for _, taskM := range taskModels {
		tasks = append(tasks, toTaskDomain(taskM))
	}

	return tasks, nil
}

// FindByID retrieves a single task by id, constrained to the owner.
func (repo *taskRepository) FindByID(ctx context.Context, id uuid.UUID, owner string) (*entity.Task, error) {
	var taskM model.TaskModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND owner = ?", id, owner).
		First(&taskM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toTaskDomain(&taskM), nil
}

// Update modifies an existing task, constrained to the owner.
func (repo *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("id = ? AND owner = ?", task.ID, task.Owner).
		Updates(map[string]any{
			"title":       task.Title,
			"description": task.Description,
			"completed":   task.Completed,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update task")
	}

	// If no rows were affected, the task was not found (or not owned).
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// Delete removes a task by id, constrained to the owner.
func (repo *taskRepository) Delete(ctx context.Context, id uuid.UUID, owner string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND owner = ?", id, owner).
		Delete(&model.TaskModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete task")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toTaskDomain converts a GORM TaskModel to a domain Task entity.
func toTaskDomain(data *model.TaskModel) *entity.Task {
	if data == nil {
		return nil
	}

	return &entity.Task{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Completed:   data.Completed,
		Owner:       data.Owner,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromTaskDomain converts a domain Task entity to a GORM TaskModel.
func fromTaskDomain(data *entity.Task) *model.TaskModel {
	if data == nil {
		return nil
	}

	return &model.TaskModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Completed:   data.Completed,
		Owner:       data.Owner,
	}
}
