package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "tasktrack/internal/delivery/context"
	"tasktrack/internal/delivery/http/response"
	"tasktrack/internal/domain/entity"
	domainerrors "tasktrack/internal/domain/errors"
	"tasktrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// taskRequest is the JSON payload for creating or replacing a task.
type taskRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// taskResponse is the public view of a task.
type taskResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toTaskResponse(task *entity.Task) taskResponse {
	return taskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// TaskHandler holds dependencies for the task endpoints. Every handler runs
// behind the auth middleware, so a resolved identity is always present.
type TaskHandler struct {
	uc     usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		uc:     uc,
		logger: logger,
	}
}

// owner returns the username of the request identity.
func owner(c echo.Context) (string, error) {
	user := deliverycontext.GetIdentity(c)
	if user == nil {
		// Only reachable if a route is wired without the auth middleware.
		return "", errors.WithStack(domainerrors.ErrTokenInvalid)
	}

	return user.Username, nil
}

// taskID parses the :id path parameter. An unparsable id cannot belong to
// anyone, so it reports the same not-found as a missing task.
func taskID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrTaskNotFound, "invalid task id")
	}

	return id, nil
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(c echo.Context) error {
	username, err := owner(c)
	if err != nil {
		return err
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "bind task payload")
	}
	if err := c.Validate(&req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "validate task payload")
	}

	task, err := h.uc.CreateTask(c.Request().Context(), username, &usecase.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTaskResponse(task), "Task created successfully")
}

// List handles GET /tasks.
func (h *TaskHandler) List(c echo.Context) error {
	username, err := owner(c)
	if err != nil {
		return err
	}

	tasks, err := h.uc.ListTasks(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]taskResponse, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, toTaskResponse(task))
	}

	return response.Success(c, http.StatusOK, items, "")
}

// Get handles GET /tasks/:id.
func (h *TaskHandler) Get(c echo.Context) error {
	username, err := owner(c)
	if err != nil {
		return err
	}

	id, err := taskID(c)
	if err != nil {
		return err
	}

	task, err := h.uc.GetTask(c.Request().Context(), id, username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTaskResponse(task), "")
}

// Update handles PUT /tasks/:id, replacing title, description and completed.
func (h *TaskHandler) Update(c echo.Context) error {
	username, err := owner(c)
	if err != nil {
		return err
	}

	id, err := taskID(c)
	if err != nil {
		return err
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "bind task payload")
	}
	if err := c.Validate(&req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "validate task payload")
	}

	task, err := h.uc.UpdateTask(c.Request().Context(), id, username, &usecase.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTaskResponse(task), "Task updated successfully")
}

// Delete handles DELETE /tasks/:id.
func (h *TaskHandler) Delete(c echo.Context) error {
	username, err := owner(c)
	if err != nil {
		return err
	}

	id, err := taskID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteTask(c.Request().Context(), id, username); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "Task deleted successfully")
}
