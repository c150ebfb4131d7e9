package jobs

import "fmt"

type panicError struct {
	value interface{}
}

func (e panicError) Error() string {
	return fmt.Sprintf("notifier panicked: %v", e.value)
}
