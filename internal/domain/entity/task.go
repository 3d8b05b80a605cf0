package entity

import (
	"time"

	"github.com/google/uuid"
)

// Task is a single to-do item. Owner holds the username of the identity that
// created it; every read and write of a task is scoped by that owner.
type Task struct {
	ID          uuid.UUID // The unique identifier for the task record.
	Title       string    // Short title of the task.
	Description string    // Free-form description.
	Completed   bool      // Whether the task has been completed.
	Owner       string    // Username of the identity that owns this task.
	CreatedAt   time.Time // Timestamp of when the task was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
