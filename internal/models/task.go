package model

import (
	"time"

	"task-manager.com/task-manager/internal/constants"
)

type Task struct {
	ID           string               `gorm:"primaryKey;size:36" json:"id"`
	Title        string               `gorm:"not null" json:"title"`
	Description  string               `gorm:"not null" json:"description"`
	Status       constants.TaskStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedUser  string               `gorm:"size:36;not null;index" json:"createdUser"`
	AssignedUser *string              `gorm:"size:36;index" json:"assignedUser"`
	CreatedAt    time.Time            `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

// IsAssigned reports whether the task has an assignee.
func (t *Task) IsAssigned() bool {
	return t.AssignedUser != nil && *t.AssignedUser != ""
}

// MutableBy applies the ownership rule: an unassigned task is open to any
// caller, an assigned one only to its assignee.
func (t *Task) MutableBy(userID string) bool {
	return !t.IsAssigned() || *t.AssignedUser == userID
}
