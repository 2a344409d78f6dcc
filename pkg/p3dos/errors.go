// file: pkg/p3dos/errors.go

package p3dos

import (
	"errors"
	"fmt"
)

var (
	ErrHeaderSize       = errors.New("unexpected header size")
	ErrInvalidFileType  = errors.New("invalid file type")
	ErrLineOutOfRange   = errors.New("BASIC start line can't be more than 9999")
	ErrMissingArrayName = errors.New("missing array name")
	ErrInvalidSignature = errors.New("invalid PLUS3DOS header signature")
	ErrInvalidChecksum  = errors.New("header checksum verification failed")
)

// SaveError reports a failure to write the output file
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("Could not save file %q.", e.Path)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}
