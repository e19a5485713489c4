package handlers

import (
	"errors"

	"github.com/Amitkumarsahu1/Task-Management-System/internal/dto"
	"github.com/Amitkumarsahu1/Task-Management-System/internal/identity"
	"github.com/Amitkumarsahu1/Task-Management-System/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TaskHandler struct {
	taskService  *services.TaskService
	statsService *services.StatsService
}

func NewTaskHandler(taskService *services.TaskService, statsService *services.StatsService) *TaskHandler {
	return &TaskHandler{taskService: taskService, statsService: statsService}
}

// List handles GET /tasks. Admins see every task, members the tasks
// assigned to them; ?status filters the page without touching the
// status summary.
func (h *TaskHandler) List(c *fiber.Ctx) error {
	ident, err := identity.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	filterStatus := c.Query("status")
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", services.DefaultPageSize)

	resp, err := h.taskService.List(ident, filterStatus, page, limit)
	if err != nil {
		return taskError(c, err)
	}
	return c.JSON(resp)
}

// DashboardData handles GET /tasks/dashboard-data (admin, all tasks).
func (h *TaskHandler) DashboardData(c *fiber.Ctx) error {
	resp, err := h.statsService.AdminDashboard()
	if err != nil {
		return taskError(c, err)
	}
	return c.JSON(resp)
}

// UserDashboardData handles GET /tasks/user-dashboard-data, scoped to
// tasks assigned to the caller.
func (h *TaskHandler) UserDashboardData(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	resp, err := h.statsService.UserDashboard(userID)
	if err != nil {
		return taskError(c, err)
	}
	return c.JSON(resp)
}

func (h *TaskHandler) GetByID(c *fiber.Ctx) error {
	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid task ID",
		})
	}

	task, err := h.taskService.GetByID(taskID)
	if err != nil {
		return taskError(c, err)
	}
	return c.JSON(services.ToTaskResponse(task))
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	task, err := h.taskService.Create(userID, &req)
	if err != nil {
		return taskError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Task created successfully",
		"task":    services.ToTaskResponse(task),
	})
}

func (h *TaskHandler) Update(c *fiber.Ctx) error {
	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid task ID",
		})
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	task, err := h.taskService.Update(taskID, &req)
	if err != nil {
		return taskError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Task updated successfully",
		"task":    services.ToTaskResponse(task),
	})
}

// UpdateChecklist handles PUT /tasks/:id/todo for assignees, the
// creator, and admins.
func (h *TaskHandler) UpdateChecklist(c *fiber.Ctx) error {
	ident, err := identity.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid task ID",
		})
	}

	var req dto.UpdateChecklistRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	task, err := h.taskService.UpdateChecklist(taskID, ident, req.TodoChecklist)
	if err != nil {
		return taskError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Checklist updated successfully",
		"task":    services.ToTaskResponse(task),
	})
}

func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid task ID",
		})
	}

	if err := h.taskService.Delete(taskID); err != nil {
		return taskError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Task deleted successfully"})
}

// taskError maps service failures onto HTTP responses; unknown errors
// stay generic.
func taskError(c *fiber.Ctx, err error) error {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: ve.Message,
		})
	case errors.Is(err, services.ErrTaskNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Task not found",
		})
	case errors.Is(err, services.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "User not found",
		})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Not authorized to modify this task",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
}
