// file: internal/console/console.go

package console

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// StatusFormatter prints log entries as bare status lines
type StatusFormatter struct{}

// Format implements logrus.Formatter
func (f *StatusFormatter) Format(entry *log.Entry) ([]byte, error) {
	switch entry.Level {
	case log.InfoLevel:
		return []byte(entry.Message + "\n"), nil
	case log.DebugLevel, log.TraceLevel:
		return []byte("debug: " + entry.Message + "\n"), nil
	default:
		return []byte(entry.Level.String() + ": " + entry.Message + "\n"), nil
	}
}

// Setup points the standard logger at w with status formatting
func Setup(w io.Writer, quiet, debug bool) {
	log.SetOutput(w)
	log.SetFormatter(&StatusFormatter{})
	switch {
	case debug:
		log.SetLevel(log.DebugLevel)
	case quiet:
		log.SetLevel(log.WarnLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// WaitForKey prompts on w and blocks until a key is read from in. A terminal
// is put in raw mode so the key does not need a return.
func WaitForKey(in io.Reader, w io.Writer) error {
	fmt.Fprintln(w, "Press any key to continue...")

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		state, err := term.MakeRaw(fd)
		if err != nil {
			return err
		}
		defer term.Restore(fd, state)
	}

	var key [1]byte
	_, err := io.ReadFull(in, key[:])
	if err == io.EOF {
		return nil
	}
	return err
}
