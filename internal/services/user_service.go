package services

import (
	"errors"
	"fmt"

	"github.com/Amitkumarsahu1/Task-Management-System/internal/dto"
	"github.com/Amitkumarsahu1/Task-Management-System/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService is the user directory. Task code reads from it for
// display projections; only admin operations mutate it.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// List returns every member together with their assigned-task counts
// per status (the admin team view).
func (s *UserService) List() ([]dto.UserWithTaskCounts, error) {
	var users []models.User
	if err := s.db.Where("role = ?", models.RoleMember).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var rows []struct {
		UserID uuid.UUID
		Status string
		Count  int64
	}
	err := s.db.Model(&models.Task{}).
		Joins("JOIN task_assignees ON task_assignees.task_id = tasks.id").
		Select("task_assignees.user_id AS user_id, tasks.status AS status, COUNT(*) AS count").
		Group("task_assignees.user_id, tasks.status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count user tasks: %w", err)
	}

	type counts struct{ pending, inProgress, completed int64 }
	byUser := make(map[uuid.UUID]*counts, len(users))
	for _, row := range rows {
		c := byUser[row.UserID]
		if c == nil {
			c = &counts{}
			byUser[row.UserID] = c
		}
		switch row.Status {
		case models.StatusPending:
			c.pending = row.Count
		case models.StatusInProgress:
			c.inProgress = row.Count
		case models.StatusCompleted:
			c.completed = row.Count
		}
	}

	result := make([]dto.UserWithTaskCounts, len(users))
	for i, user := range users {
		entry := dto.UserWithTaskCounts{UserResponse: toUserResponse(&user)}
		if c := byUser[user.ID]; c != nil {
			entry.PendingTasks = c.pending
			entry.InProgressTasks = c.inProgress
			entry.CompletedTasks = c.completed
		}
		result[i] = entry
	}
	return result, nil
}

func (s *UserService) GetByID(userID uuid.UUID) (*dto.UserResponse, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	resp := toUserResponse(&user)
	return &resp, nil
}

// Delete removes a user, their refresh tokens, and their assignee
// rows. Tasks they were assigned to simply lose one assignee; tasks
// they created keep the creator reference.
func (s *UserService) Delete(userID uuid.UUID) error {
	var user models.User
	err := s.db.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM task_assignees WHERE user_id = ?", userID).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}

// UpdateProfileImage sets the caller's profile image URL.
func (s *UserService) UpdateProfileImage(userID uuid.UUID, imageURL string) (*dto.UserResponse, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := s.db.Model(&user).Update("profile_image_url", imageURL).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile image: %w", err)
	}
	user.ProfileImageURL = imageURL
	resp := toUserResponse(&user)
	return &resp, nil
}
