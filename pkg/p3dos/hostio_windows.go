// file: pkg/p3dos/hostio_windows.go

//go:build windows

package p3dos

import "os"

// renameio does not support Windows, where the file is written in place
func replaceFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}
