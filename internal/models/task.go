package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// TaskStatuses and TaskPriorities list the accepted enum values in
// display order.
var (
	TaskStatuses   = []string{StatusPending, StatusInProgress, StatusCompleted}
	TaskPriorities = []string{PriorityLow, PriorityMedium, PriorityHigh}
)

// ChecklistItem is a single todo line within a task's checklist.
type ChecklistItem struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type Task struct {
	ID            uuid.UUID                               `gorm:"type:uuid;primaryKey" json:"id"`
	Title         string                                  `gorm:"size:255;not null" json:"title"`
	Description   string                                  `gorm:"type:text" json:"description"`
	Priority      string                                  `gorm:"size:20;default:'Medium'" json:"priority"`
	Status        string                                  `gorm:"size:20;default:'Pending';index" json:"status"`
	DueDate       time.Time                               `gorm:"not null" json:"dueDate"`
	Progress      int                                     `gorm:"default:0" json:"progress"`
	TodoChecklist datatypes.JSONSlice[ChecklistItem]      `json:"todoChecklist"`
	Attachments   datatypes.JSONSlice[string]             `json:"attachments"`
	AssignedTo    []User                                  `gorm:"many2many:task_assignees" json:"assignedTo"`
	CreatedByID   uuid.UUID                               `gorm:"type:uuid;not null;index" json:"createdById"`
	CreatedBy     User                                    `gorm:"foreignKey:CreatedByID" json:"createdBy"`
	CreatedAt     time.Time                               `gorm:"index" json:"createdAt"`
	UpdatedAt     time.Time                               `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt                          `gorm:"index" json:"-"`
}

func ValidStatus(s string) bool {
	for _, v := range TaskStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func ValidPriority(p string) bool {
	for _, v := range TaskPriorities {
		if v == p {
			return true
		}
	}
	return false
}
