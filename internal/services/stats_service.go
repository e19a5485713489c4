package services

import (
	"fmt"

	"github.com/Amitkumarsahu1/Task-Management-System/internal/checklist"
	"github.com/Amitkumarsahu1/Task-Management-System/internal/dto"
	"github.com/Amitkumarsahu1/Task-Management-System/internal/identity"
	"github.com/Amitkumarsahu1/Task-Management-System/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// recentTaskLimit caps the dashboard's newest-first task cards.
const recentTaskLimit = 10

// StatsService computes the dashboard aggregates: status and priority
// distributions plus recent-task summaries, over either all tasks or
// the tasks assigned to one user. Keys are always synthesized, so an
// empty scope yields zero counts rather than missing entries.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// AdminDashboard aggregates over every task.
func (s *StatsService) AdminDashboard() (*dto.DashboardResponse, error) {
	return s.dashboard(func(db *gorm.DB) *gorm.DB { return db })
}

// UserDashboard aggregates over the tasks assigned to the given user.
func (s *StatsService) UserDashboard(userID uuid.UUID) (*dto.DashboardResponse, error) {
	return s.dashboard(identity.AssignedTo(userID))
}

func (s *StatsService) dashboard(scope func(*gorm.DB) *gorm.DB) (*dto.DashboardResponse, error) {
	distribution, err := s.taskDistribution(scope)
	if err != nil {
		return nil, err
	}

	priorities, err := s.taskPriorityLevel(scope)
	if err != nil {
		return nil, err
	}

	recent, err := s.recentTasks(scope)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		Charts: dto.DashboardCharts{
			TaskDistribution:  distribution,
			TaskPriorityLevel: priorities,
		},
		RecentTasks: recent,
	}, nil
}

func (s *StatsService) taskDistribution(scope func(*gorm.DB) *gorm.DB) (dto.TaskDistribution, error) {
	rows, err := s.groupCounts(scope, "tasks.status")
	if err != nil {
		return dto.TaskDistribution{}, err
	}

	var dist dto.TaskDistribution
	for key, count := range rows {
		switch key {
		case models.StatusPending:
			dist.Pending = count
		case models.StatusInProgress:
			dist.InProgress = count
		case models.StatusCompleted:
			dist.Completed = count
		}
	}
	dist.All = dist.Pending + dist.InProgress + dist.Completed
	return dist, nil
}

func (s *StatsService) taskPriorityLevel(scope func(*gorm.DB) *gorm.DB) (dto.TaskPriorityLevel, error) {
	rows, err := s.groupCounts(scope, "tasks.priority")
	if err != nil {
		return dto.TaskPriorityLevel{}, err
	}

	var levels dto.TaskPriorityLevel
	for key, count := range rows {
		switch key {
		case models.PriorityLow:
			levels.Low = count
		case models.PriorityMedium:
			levels.Medium = count
		case models.PriorityHigh:
			levels.High = count
		}
	}
	return levels, nil
}

func (s *StatsService) groupCounts(scope func(*gorm.DB) *gorm.DB, column string) (map[string]int64, error) {
	var rows []struct {
		Key   string
		Count int64
	}
	err := s.db.Model(&models.Task{}).Scopes(scope).
		Select(column + " AS key, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group by %s: %w", column, err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Key] = row.Count
	}
	return counts, nil
}

func (s *StatsService) recentTasks(scope func(*gorm.DB) *gorm.DB) ([]dto.RecentTask, error) {
	var tasks []models.Task
	err := s.db.Model(&models.Task{}).Scopes(scope).
		Order("tasks.created_at DESC").
		Limit(recentTaskLimit).
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recent tasks: %w", err)
	}

	recent := make([]dto.RecentTask, len(tasks))
	for i, task := range tasks {
		recent[i] = dto.RecentTask{
			ID:             task.ID,
			Title:          task.Title,
			Priority:       task.Priority,
			Status:         task.Status,
			DueDate:        task.DueDate,
			CompletedCount: checklist.CompletedCount(task.TodoChecklist),
			TotalCount:     len(task.TodoChecklist),
			CreatedAt:      task.CreatedAt,
		}
	}
	return recent, nil
}
