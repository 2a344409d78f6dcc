// file: pkg/p3dos/hostio_unix.go

//go:build !windows

package p3dos

import (
	"os"

	"github.com/google/renameio/v2"
)

// replaceFile writes a temporary file next to path and renames it into place
func replaceFile(path string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(path, data, perm, renameio.WithExistingPermissions())
}
