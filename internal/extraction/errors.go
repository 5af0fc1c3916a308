package extraction

import "fmt"

// ServiceError represents a failed call to the mediated extraction service
type ServiceError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *ServiceError) Error() string {
	switch {
	case e.Cause != nil:
		return fmt.Sprintf("extraction service: %s: %v", e.Message, e.Cause)
	case e.StatusCode != 0:
		return fmt.Sprintf("extraction service: status %d: %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("extraction service: %s", e.Message)
	}
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// ResponseError represents a model response that could not be interpreted
type ResponseError struct {
	Message string
	Cause   error
}

func (e *ResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("response error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("response error: %s", e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.Cause
}
