package services

import (
	"errors"
	"fmt"

	"github.com/Amitkumarsahu1/Task-Management-System/internal/checklist"
	"github.com/Amitkumarsahu1/Task-Management-System/internal/dto"
	"github.com/Amitkumarsahu1/Task-Management-System/internal/identity"
	"github.com/Amitkumarsahu1/Task-Management-System/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	// DefaultPageSize matches the smallest page size the web client
	// requests; callers may pass their own limit up to MaxPageSize.
	DefaultPageSize = 8
	MaxPageSize     = 100
)

// TaskService owns Task documents: all assignment and checklist
// mutations go through it, and every checklist-affecting write
// re-derives progress and status via the evaluator.
//
// Concurrent updates to the same task are last-write-wins; two
// simultaneous checklist toggles can silently drop one update. The
// underlying store's per-row atomicity is the only guarantee.
type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

// Create validates and persists a new task. Supplied checklist entries
// always start uncompleted; progress and status come from the
// evaluator, never from the client.
func (s *TaskService) Create(creatorID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	if req.Title == "" {
		return nil, missingField("title")
	}
	if req.Description == "" {
		return nil, missingField("description")
	}
	if req.DueDate == nil || req.DueDate.IsZero() {
		return nil, missingField("dueDate")
	}
	if len(req.AssignedTo) == 0 {
		return nil, missingField("assignedTo")
	}
	if len(req.TodoChecklist) == 0 {
		return nil, missingField("todoChecklist")
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !models.ValidPriority(priority) {
		return nil, invalidField("priority", "must be one of Low, Medium, High")
	}

	assignees, err := s.resolveAssignees(req.AssignedTo)
	if err != nil {
		return nil, err
	}

	items := make([]models.ChecklistItem, len(req.TodoChecklist))
	for i, todo := range req.TodoChecklist {
		items[i] = models.ChecklistItem{Text: todo.Text, Completed: false}
	}
	progress, status := checklist.Evaluate(items)

	task := models.Task{
		ID:            uuid.New(),
		Title:         req.Title,
		Description:   req.Description,
		Priority:      priority,
		Status:        status,
		DueDate:       *req.DueDate,
		Progress:      progress,
		TodoChecklist: datatypes.NewJSONSlice(items),
		Attachments:   datatypes.NewJSONSlice(req.Attachments),
		AssignedTo:    assignees,
		CreatedByID:   creatorID,
	}

	if err := s.db.Create(&task).Error; err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	// Resolve the creator so callers get a complete projection back.
	if err := s.db.First(&task.CreatedBy, "id = ?", creatorID).Error; err != nil {
		return nil, fmt.Errorf("failed to load creator: %w", err)
	}

	return &task, nil
}

// Update applies a partial edit. A checklist in the patch is merged by
// item text against the stored checklist: items already present keep
// their completed flag regardless of position, new (or renamed) items
// start uncompleted. Every other present field replaces the stored
// value wholesale.
func (s *TaskService) Update(taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.load(taskID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil {
		if !models.ValidPriority(*req.Priority) {
			return nil, invalidField("priority", "must be one of Low, Medium, High")
		}
		task.Priority = *req.Priority
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
	if req.Attachments != nil {
		task.Attachments = datatypes.NewJSONSlice(*req.Attachments)
	}

	if req.AssignedTo != nil {
		if len(*req.AssignedTo) == 0 {
			return nil, missingField("assignedTo")
		}
		assignees, err := s.resolveAssignees(*req.AssignedTo)
		if err != nil {
			return nil, err
		}
		if err := s.db.Model(task).Association("AssignedTo").Replace(assignees); err != nil {
			return nil, fmt.Errorf("failed to replace assignees: %w", err)
		}
		task.AssignedTo = assignees
	}

	if req.TodoChecklist != nil {
		previous := make(map[string]bool, len(task.TodoChecklist))
		for _, item := range task.TodoChecklist {
			previous[item.Text] = item.Completed
		}
		merged := make([]models.ChecklistItem, len(*req.TodoChecklist))
		for i, todo := range *req.TodoChecklist {
			merged[i] = models.ChecklistItem{Text: todo.Text, Completed: previous[todo.Text]}
		}
		task.TodoChecklist = datatypes.NewJSONSlice(merged)
	}

	// Checklist state is the only status driver while items exist, and
	// an emptied checklist resets progress to zero. A direct status
	// edit applies only when no checklist remains.
	if len(task.TodoChecklist) > 0 || req.TodoChecklist != nil {
		task.Progress, task.Status = checklist.Evaluate(task.TodoChecklist)
	}
	if len(task.TodoChecklist) == 0 && req.Status != nil {
		if !models.ValidStatus(*req.Status) {
			return nil, invalidField("status", "must be one of Pending, In Progress, Completed")
		}
		task.Status = *req.Status
	}

	if err := s.db.Omit("AssignedTo", "CreatedBy").Save(task).Error; err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// UpdateChecklist toggles checklist items for an assignee, the
// creator, or an admin. Items are replaced at matching indices; the
// stored checklist keeps its length.
func (s *TaskService) UpdateChecklist(taskID uuid.UUID, ident identity.Identity, items []models.ChecklistItem) (*models.Task, error) {
	task, err := s.load(taskID)
	if err != nil {
		return nil, err
	}

	if !s.mayToggle(task, ident) {
		return nil, ErrForbidden
	}

	updated := make([]models.ChecklistItem, len(task.TodoChecklist))
	copy(updated, task.TodoChecklist)
	for i := range updated {
		if i < len(items) {
			updated[i] = items[i]
		}
	}
	task.TodoChecklist = datatypes.NewJSONSlice(updated)
	task.Progress, task.Status = checklist.Evaluate(task.TodoChecklist)

	if err := s.db.Omit("AssignedTo", "CreatedBy").Save(task).Error; err != nil {
		return nil, fmt.Errorf("failed to update checklist: %w", err)
	}
	return task, nil
}

// Delete removes a task and its assignee join rows. Nothing else
// cascades.
func (s *TaskService) Delete(taskID uuid.UUID) error {
	task, err := s.load(taskID)
	if err != nil {
		return err
	}

	if err := s.db.Model(task).Association("AssignedTo").Clear(); err != nil {
		return fmt.Errorf("failed to clear assignees: %w", err)
	}
	if err := s.db.Delete(task).Error; err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// GetByID is the only populating read: assignees and creator are
// resolved to their display projections.
func (s *TaskService) GetByID(taskID uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := s.db.Preload("AssignedTo").Preload("CreatedBy").First(&task, "id = ?", taskID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load task: %w", err)
	}
	return &task, nil
}

// List returns one page of tasks within the caller's scope, optionally
// filtered by status. The status summary always reflects the scope
// before the filter so tab counts stay stable while browsing one tab.
func (s *TaskService) List(ident identity.Identity, filterStatus string, page, limit int) (*dto.TaskListResponse, error) {
	if filterStatus != "" && !models.ValidStatus(filterStatus) {
		return nil, invalidField("status", "must be one of Pending, In Progress, Completed")
	}
	if limit < 1 || limit > MaxPageSize {
		limit = DefaultPageSize
	}

	scope := identity.TasksVisibleTo(ident)

	summary, err := s.statusSummary(scope)
	if err != nil {
		return nil, err
	}

	filtered := s.db.Model(&models.Task{}).Scopes(scope)
	if filterStatus != "" {
		filtered = filtered.Where("tasks.status = ?", filterStatus)
	}
	var totalTasks int64
	if err := filtered.Count(&totalTasks).Error; err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	totalPages := int((totalTasks + int64(limit) - 1) / int64(limit))

	// Out-of-range pages yield an empty slice, not an error; clamping
	// is the caller's concern.
	var tasks []models.Task
	if page >= 1 && page <= totalPages {
		query := s.db.Model(&models.Task{}).Scopes(scope).
			Preload("AssignedTo", func(db *gorm.DB) *gorm.DB {
				return db.Select("users.id", "users.name", "users.email", "users.profile_image_url")
			}).
			Order("tasks.created_at DESC").
			Offset((page - 1) * limit).
			Limit(limit)
		if filterStatus != "" {
			query = query.Where("tasks.status = ?", filterStatus)
		}
		if err := query.Find(&tasks).Error; err != nil {
			return nil, fmt.Errorf("failed to list tasks: %w", err)
		}
	}

	responses := make([]dto.TaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = ToTaskResponse(&tasks[i])
	}

	return &dto.TaskListResponse{
		Tasks:         responses,
		StatusSummary: summary,
		Pagination: dto.Pagination{
			TotalPages:  totalPages,
			TotalTasks:  totalTasks,
			CurrentPage: page,
		},
	}, nil
}

func (s *TaskService) statusSummary(scope func(*gorm.DB) *gorm.DB) (dto.StatusSummary, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := s.db.Model(&models.Task{}).Scopes(scope).
		Select("tasks.status AS status, COUNT(*) AS count").
		Group("tasks.status").
		Scan(&rows).Error
	if err != nil {
		return dto.StatusSummary{}, fmt.Errorf("failed to count statuses: %w", err)
	}

	var summary dto.StatusSummary
	for _, row := range rows {
		switch row.Status {
		case models.StatusPending:
			summary.PendingTasks = row.Count
		case models.StatusInProgress:
			summary.InProgressTasks = row.Count
		case models.StatusCompleted:
			summary.CompletedTasks = row.Count
		}
		summary.All += row.Count
	}
	return summary, nil
}

func (s *TaskService) load(taskID uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := s.db.Preload("AssignedTo").First(&task, "id = ?", taskID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load task: %w", err)
	}
	return &task, nil
}

func (s *TaskService) resolveAssignees(ids []uuid.UUID) ([]models.User, error) {
	var users []models.User
	if err := s.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve assignees: %w", err)
	}
	found := make(map[uuid.UUID]bool, len(users))
	for _, u := range users {
		found[u.ID] = true
	}
	for _, id := range ids {
		if !found[id] {
			return nil, ErrUserNotFound
		}
	}
	return users, nil
}

func (s *TaskService) mayToggle(task *models.Task, ident identity.Identity) bool {
	if ident.IsAdmin() || task.CreatedByID == ident.ID {
		return true
	}
	for _, u := range task.AssignedTo {
		if u.ID == ident.ID {
			return true
		}
	}
	return false
}

// ToTaskResponse shapes a task for list and detail consumers, deriving
// completedCount at read time.
func ToTaskResponse(task *models.Task) dto.TaskResponse {
	assignees := make([]dto.UserAvatar, len(task.AssignedTo))
	for i, u := range task.AssignedTo {
		assignees[i] = toUserAvatar(&u)
	}

	return dto.TaskResponse{
		ID:             task.ID,
		Title:          task.Title,
		Description:    task.Description,
		Priority:       task.Priority,
		Status:         task.Status,
		DueDate:        task.DueDate,
		Progress:       task.Progress,
		TodoChecklist:  task.TodoChecklist,
		Attachments:    task.Attachments,
		AssignedTo:     assignees,
		CreatedBy:      toUserAvatar(&task.CreatedBy),
		CompletedCount: checklist.CompletedCount(task.TodoChecklist),
		CreatedAt:      task.CreatedAt,
		UpdatedAt:      task.UpdatedAt,
	}
}

func toUserAvatar(user *models.User) dto.UserAvatar {
	return dto.UserAvatar{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		ProfileImageURL: user.ProfileImageURL,
	}
}
