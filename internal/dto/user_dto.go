package dto

// UserWithTaskCounts is the admin user-directory projection: the user
// plus their assigned-task counts broken down by status.
type UserWithTaskCounts struct {
	UserResponse
	PendingTasks    int64 `json:"pendingTasks"`
	InProgressTasks int64 `json:"inProgressTasks"`
	CompletedTasks  int64 `json:"completedTasks"`
}

type UpdateProfileImageRequest struct {
	ProfileImageURL string `json:"profileImageUrl"`
}

type UploadImageResponse struct {
	ImageURL string `json:"imageUrl"`
}
