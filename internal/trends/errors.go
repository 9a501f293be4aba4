package trends

import "fmt"

// Error represents a failure scoring a single topic.
type Error struct {
	Topic   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("trends error (%s): %s: %v", e.Topic, e.Message, e.Cause)
	}
	return fmt.Sprintf("trends error (%s): %s", e.Topic, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
