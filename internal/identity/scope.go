package identity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignedTo returns a GORM scope that restricts a task query to tasks
// where the given user appears in the assignee list.
func AssignedTo(userID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Joins("JOIN task_assignees ON task_assignees.task_id = tasks.id").
			Where("task_assignees.user_id = ?", userID)
	}
}

// TasksVisibleTo scopes a task query to what the caller may see:
// admins see every task, members only the tasks assigned to them.
func TasksVisibleTo(ident Identity) func(db *gorm.DB) *gorm.DB {
	if ident.IsAdmin() {
		return func(db *gorm.DB) *gorm.DB { return db }
	}
	return AssignedTo(ident.ID)
}
