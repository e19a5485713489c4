package services

import (
	"testing"

	"github.com/Amitkumarsahu1/Task-Management-System/internal/dto"
	"github.com/Amitkumarsahu1/Task-Management-System/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_ListReturnsMembersWithTaskCounts(t *testing.T) {
	db := setupTestDB(t)
	taskSvc := NewTaskService(db)
	userSvc := NewUserService(db)
	admin := createTestUser(t, db, "Admin", "admin@example.com", models.RoleAdmin)
	alice := createTestUser(t, db, "Alice", "alice@example.com", models.RoleMember)
	bob := createTestUser(t, db, "Bob", "bob@example.com", models.RoleMember)

	createTestTask(t, taskSvc, admin, alice, "Alice pending", models.PriorityMedium, "a")
	done := createTestTask(t, taskSvc, admin, alice, "Alice done", models.PriorityMedium, "a")
	completeAll(t, taskSvc, done, asIdentity(alice))
	createTestTask(t, taskSvc, admin, bob, "Bob pending", models.PriorityMedium, "a")

	users, err := userSvc.List()
	require.NoError(t, err)

	// Admins are not part of the member directory.
	require.Len(t, users, 2)

	byName := make(map[string]int)
	for i, u := range users {
		byName[u.Name] = i
	}

	aliceEntry := users[byName["Alice"]]
	assert.Equal(t, int64(1), aliceEntry.PendingTasks)
	assert.Equal(t, int64(0), aliceEntry.InProgressTasks)
	assert.Equal(t, int64(1), aliceEntry.CompletedTasks)

	bobEntry := users[byName["Bob"]]
	assert.Equal(t, int64(1), bobEntry.PendingTasks)
	assert.Equal(t, int64(0), bobEntry.CompletedTasks)
}

func TestUserService_GetByID(t *testing.T) {
	db := setupTestDB(t)
	userSvc := NewUserService(db)
	alice := createTestUser(t, db, "Alice", "alice@example.com", models.RoleMember)

	user, err := userSvc.GetByID(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)

	_, err = userSvc.GetByID(uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_DeleteRemovesAssigneeRows(t *testing.T) {
	db := setupTestDB(t)
	taskSvc := NewTaskService(db)
	userSvc := NewUserService(db)
	admin := createTestUser(t, db, "Admin", "admin@example.com", models.RoleAdmin)
	alice := createTestUser(t, db, "Alice", "alice@example.com", models.RoleMember)
	bob := createTestUser(t, db, "Bob", "bob@example.com", models.RoleMember)

	task, err := taskSvc.Create(admin.ID, &dto.CreateTaskRequest{
		Title:         "Shared task",
		Description:   "Assigned to two members",
		DueDate:       dueTomorrow(),
		AssignedTo:    []uuid.UUID{alice.ID, bob.ID},
		TodoChecklist: todos("step"),
	})
	require.NoError(t, err)
	require.Len(t, task.AssignedTo, 2)

	require.NoError(t, userSvc.Delete(alice.ID))

	_, err = userSvc.GetByID(alice.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	// The task survives with one fewer assignee.
	reloaded, err := taskSvc.GetByID(task.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.AssignedTo, 1)
	assert.Equal(t, bob.ID, reloaded.AssignedTo[0].ID)

	assert.ErrorIs(t, userSvc.Delete(alice.ID), ErrUserNotFound)
}

func TestUserService_UpdateProfileImage(t *testing.T) {
	db := setupTestDB(t)
	userSvc := NewUserService(db)
	alice := createTestUser(t, db, "Alice", "alice@example.com", models.RoleMember)

	user, err := userSvc.UpdateProfileImage(alice.ID, "/uploads/profile/alice.png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/profile/alice.png", user.ProfileImageURL)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", alice.ID).Error)
	assert.Equal(t, "/uploads/profile/alice.png", stored.ProfileImageURL)
}
