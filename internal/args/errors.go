// file: internal/args/errors.go

package args

import "fmt"

// ArgumentError reports a bad command line argument and the flag it came from
type ArgumentError struct {
	Flag    string
	Message string
	Err     error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Flag)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// NewArgumentError creates an ArgumentError for flag
func NewArgumentError(flag, message string) *ArgumentError {
	return &ArgumentError{Flag: flag, Message: message}
}

// WrapArgumentError attributes err to flag, using err's text as the message
func WrapArgumentError(flag string, err error) *ArgumentError {
	return &ArgumentError{Flag: flag, Message: err.Error(), Err: err}
}
