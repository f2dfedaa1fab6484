package service

import "errors"

var (
	ErrPlanNotFound     = errors.New("no SQL prep plan found")
	ErrQuestionNotFound = errors.New("question not found")
)

// ValidationError reports client-correctable input problems. Details maps each
// required field to whether it was present.
type ValidationError struct {
	Message string          `json:"message"`
	Details map[string]bool `json:"details,omitempty"`
}

func (e *ValidationError) Error() string { return e.Message }
