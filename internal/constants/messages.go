package constants

const (
	MsgUserSignupSuccess = "User signup successfully"
	MsgUserLoginSuccess  = "User login successfully"

	MsgUsersFetchedSuccess       = "Users fetched successfully"
	MsgUserProfileFetchedSuccess = "User profile fetched successfully"
	MsgUserDeletedSuccess        = "User deleted successfully"

	MsgTaskCreatedSuccess       = "Task created successfully"
	MsgTasksFetchedSuccess      = "Task fetched successfully"
	MsgTaskDetailFetchedSuccess = "Task detail fetched successfully"
	MsgTaskUpdateSuccess        = "Task updated successfully"
	MsgTaskDeletedSuccess       = "Task deleted successfully"
	MsgTaskStatusChangedSuccess = "Task status changed successfully"
	MsgUserAssignedSuccess      = "User assigned on the task successfully"

	MsgHealthy = "Service is healthy"
)
