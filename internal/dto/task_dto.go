package dto

import (
	"time"

	"github.com/Amitkumarsahu1/Task-Management-System/internal/models"
	"github.com/google/uuid"
)

type TodoInput struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type CreateTaskRequest struct {
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Priority      string      `json:"priority"`
	DueDate       *time.Time  `json:"dueDate"`
	AssignedTo    []uuid.UUID `json:"assignedTo"`
	TodoChecklist []TodoInput `json:"todoChecklist"`
	Attachments   []string    `json:"attachments"`
}

// UpdateTaskRequest carries a partial task edit. Nil fields are left
// untouched; present fields replace the stored value wholesale, except
// the checklist which is merged by item text.
type UpdateTaskRequest struct {
	Title         *string      `json:"title"`
	Description   *string      `json:"description"`
	Priority      *string      `json:"priority"`
	Status        *string      `json:"status"`
	DueDate       *time.Time   `json:"dueDate"`
	AssignedTo    *[]uuid.UUID `json:"assignedTo"`
	TodoChecklist *[]TodoInput `json:"todoChecklist"`
	Attachments   *[]string    `json:"attachments"`
}

type UpdateChecklistRequest struct {
	TodoChecklist []models.ChecklistItem `json:"todoChecklist"`
}

// UserAvatar is the minimal assignee projection carried by list and
// detail responses.
type UserAvatar struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	ProfileImageURL string    `json:"profileImageUrl"`
}

type TaskResponse struct {
	ID             uuid.UUID              `json:"id"`
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	Priority       string                 `json:"priority"`
	Status         string                 `json:"status"`
	DueDate        time.Time              `json:"dueDate"`
	Progress       int                    `json:"progress"`
	TodoChecklist  []models.ChecklistItem `json:"todoChecklist"`
	Attachments    []string               `json:"attachments"`
	AssignedTo     []UserAvatar           `json:"assignedTo"`
	CreatedBy      UserAvatar             `json:"createdBy"`
	CompletedCount int                    `json:"completedCount"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

type StatusSummary struct {
	All             int64 `json:"all"`
	PendingTasks    int64 `json:"pendingTasks"`
	InProgressTasks int64 `json:"inProgressTasks"`
	CompletedTasks  int64 `json:"completedTasks"`
}

type Pagination struct {
	TotalPages  int   `json:"totalPages"`
	TotalTasks  int64 `json:"totalTasks"`
	CurrentPage int   `json:"currentPage"`
}

type TaskListResponse struct {
	Tasks         []TaskResponse `json:"tasks"`
	StatusSummary StatusSummary  `json:"statusSummary"`
	Pagination    Pagination     `json:"pagination"`
}

// TaskDistribution carries dashboard status counts. Every key is
// always present, even at zero, so chart consumers never see gaps.
type TaskDistribution struct {
	All        int64 `json:"All"`
	Pending    int64 `json:"Pending"`
	InProgress int64 `json:"InProgress"`
	Completed  int64 `json:"Completed"`
}

type TaskPriorityLevel struct {
	Low    int64 `json:"Low"`
	Medium int64 `json:"Medium"`
	High   int64 `json:"High"`
}

type DashboardCharts struct {
	TaskDistribution  TaskDistribution  `json:"taskDistribution"`
	TaskPriorityLevel TaskPriorityLevel `json:"taskPriorityLevel"`
}

// RecentTask is a dashboard summary card: enough to render without a
// second round trip.
type RecentTask struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Priority       string    `json:"priority"`
	Status         string    `json:"status"`
	DueDate        time.Time `json:"dueDate"`
	CompletedCount int       `json:"completedCount"`
	TotalCount     int       `json:"totalCount"`
	CreatedAt      time.Time `json:"createdAt"`
}

type DashboardResponse struct {
	Charts      DashboardCharts `json:"charts"`
	RecentTasks []RecentTask    `json:"recentTasks"`
}
