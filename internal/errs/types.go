package errs

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

// RemoteUnavailableError means the remote store could not be reached at all:
// connection refused, DNS failure, timeout. Create paths recover by queuing
// locally; pull paths abort and leave local state untouched.
type RemoteUnavailableError struct {
	ErrorMessage
}

// RemoteRejectedError means the remote store answered and said no: validation
// failure, duplicate, permission. Not retried automatically.
type RemoteRejectedError struct {
	ErrorMessage
	Status int
}

// StorageUnavailableError means the local bbolt store failed. Callers treat
// reads as empty and carry on with in-memory state for the session.
type StorageUnavailableError struct {
	ErrorMessage
}

type ValidationError struct {
	ErrorMessage
}

type NotFoundError struct {
	ErrorMessage
}

type UnauthorizedError struct {
	ErrorMessage
}

func NewRemoteUnavailableError(message string) *RemoteUnavailableError {
	return &RemoteUnavailableError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewRemoteRejectedError(message string, status int) *RemoteRejectedError {
	return &RemoteRejectedError{
		ErrorMessage: ErrorMessage{Message: message},
		Status:       status,
	}
}

func NewStorageUnavailableError(message string) *StorageUnavailableError {
	return &StorageUnavailableError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewUnauthorizedError(message string) *UnauthorizedError {
	return &UnauthorizedError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}
