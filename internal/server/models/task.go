package models

import "time"

// Task status values. There are exactly two states; transitions are symmetric
// and happen only through explicit update or toggle.
const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

// ValidTaskStatus reports whether s is one of the two allowed status values.
func ValidTaskStatus(s string) bool {
	return s == TaskStatusPending || s == TaskStatusCompleted
}

// ToggledStatus returns the opposite status value.
func ToggledStatus(s string) string {
	if s == TaskStatusPending {
		return TaskStatusCompleted
	}
	return TaskStatusPending
}

// Task is a single to-do item. UserID is the owning account, fixed at
// creation and never reassigned.
type Task struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
