package services

import (
	"testing"
	"time"

	"github.com/Amitkumarsahu1/Task-Management-System/internal/dto"
	"github.com/Amitkumarsahu1/Task-Management-System/internal/identity"
	"github.com/Amitkumarsahu1/Task-Management-System/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.RefreshToken{},
	))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name, email, role string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		ID:       uuid.New(),
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func asIdentity(user models.User) identity.Identity {
	return identity.Identity{ID: user.ID, Role: user.Role}
}

func dueTomorrow() *time.Time {
	due := time.Now().Add(24 * time.Hour)
	return &due
}

func todos(texts ...string) []dto.TodoInput {
	list := make([]dto.TodoInput, len(texts))
	for i, text := range texts {
		list[i] = dto.TodoInput{Text: text}
	}
	return list
}

func createTestTask(t *testing.T, svc *TaskService, creator models.User, assignee models.User, title, priority string, checklistTexts ...string) *models.Task {
	t.Helper()

	if len(checklistTexts) == 0 {
		checklistTexts = []string{"step one"}
	}
	task, err := svc.Create(creator.ID, &dto.CreateTaskRequest{
		Title:       title,
		Description: "test task",
		Priority:    priority,
		DueDate:     dueTomorrow(),
		AssignedTo:  []uuid.UUID{assignee.ID},
		TodoChecklist: todos(checklistTexts...),
	})
	require.NoError(t, err)
	return task
}

// completeAll marks every checklist item of a task done through the
// checklist endpoint, driving it to Completed.
func completeAll(t *testing.T, svc *TaskService, task *models.Task, ident identity.Identity) *models.Task {
	t.Helper()

	items := make([]models.ChecklistItem, len(task.TodoChecklist))
	for i, item := range task.TodoChecklist {
		items[i] = models.ChecklistItem{Text: item.Text, Completed: true}
	}
	updated, err := svc.UpdateChecklist(task.ID, ident, items)
	require.NoError(t, err)
	return updated
}
