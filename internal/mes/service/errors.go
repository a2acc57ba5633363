package service

import "fmt"

// ValidationError 업무 규칙 위반. 사용자에게 그대로 노출되는 메시지를 담는다.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
