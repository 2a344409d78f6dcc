// file: pkg/p3dos/hostio.go

package p3dos

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// ReadFile reads a whole host file and splits off its header
func ReadFile(hostPath string) (*File, error) {
	data, err := os.ReadFile(hostPath)
	if err != nil {
		return nil, err
	}
	log.Debugf("read %d bytes from %s", len(data), hostPath)
	return Parse(data), nil
}

// WriteFile saves data to hostPath. A symlink is followed so the file it
// points to is replaced, not the link. The new content is renamed over the
// old file, so a failed save leaves it untouched. When the directory does
// not allow that, an existing writable file is written in place.
func WriteFile(hostPath string, data []byte) error {
	target := resolvePath(hostPath)
	mode := fileMode(target)

	err := replaceFile(target, data, mode)
	if errors.Is(err, fs.ErrPermission) && fileExists(target) {
		log.Debugf("cannot replace %s (%v), writing in place", target, err)
		err = os.WriteFile(target, data, mode)
	}
	if err != nil {
		return &SaveError{Path: hostPath, Err: err}
	}

	log.Debugf("wrote %d bytes to %s", len(data), target)
	return nil
}

// resolvePath follows symlinks of an existing path
func resolvePath(hostPath string) string {
	if resolved, err := filepath.EvalSymlinks(hostPath); err == nil {
		return resolved
	}
	return filepath.Clean(hostPath)
}

func fileExists(hostPath string) bool {
	info, err := os.Stat(hostPath)
	return err == nil && info.Mode().IsRegular()
}

// fileMode keeps the permissions of a file being replaced
func fileMode(hostPath string) os.FileMode {
	if info, err := os.Stat(hostPath); err == nil {
		return info.Mode().Perm()
	}
	return 0644
}
