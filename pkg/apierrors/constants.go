package apierrors

const (
	MsgInvalidCredentials = "invalidCredentials"
	MsgUnauthorized       = "unauthorized"
	MsgFailLogin          = "failLogin"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailListTasks      = "failListTasks"
	MsgFailGetTask        = "failGetTask"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
)
