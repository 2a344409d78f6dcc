// file: cmd/rewrite/rewrite.go

package rewrite

import (
	"errors"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/ha1tch/p3header/internal/args"
	"github.com/ha1tch/p3header/pkg/p3dos"
)

// Flags holds the raw command line values before validation
type Flags struct {
	Input        string
	Output       string
	Basic        bool
	NumericArray bool
	CharArray    bool
	Code         bool
	Address      string
	Variables    string
	Line         string
	Name         string
	RemoveHeader bool
}

// RewriteOptions configures a header rewrite
type RewriteOptions struct {
	Output       string         // Output path, the input path when empty
	FileType     p3dos.FileType // Target file type
	Address      *uint16        // CODE execute address
	Variables    *uint16        // BASIC variables offset
	Line         *uint16        // BASIC autorun line
	Name         byte           // Array variable name, zero for none
	RemoveHeader bool           // Save the body without the header
}

// DefaultRewriteOptions returns default options for Rewrite
func DefaultRewriteOptions() *RewriteOptions {
	return &RewriteOptions{
		FileType:     p3dos.FileTypeCode,
		RemoveHeader: false,
	}
}

// NewRewriteOptions validates raw flags and converts them to options
func NewRewriteOptions(f *Flags) (*RewriteOptions, error) {
	opts := DefaultRewriteOptions()
	opts.Output = f.Output
	opts.RemoveHeader = f.RemoveHeader

	switch {
	case f.Basic:
		opts.FileType = p3dos.FileTypeProgram
	case f.NumericArray:
		opts.FileType = p3dos.FileTypeNumericArray
	case f.CharArray:
		opts.FileType = p3dos.FileTypeCharArray
	}

	var err error
	if opts.Address, err = args.OptionalWord("-a", f.Address); err != nil {
		return nil, err
	}
	if opts.Variables, err = args.OptionalWord("-v", f.Variables); err != nil {
		return nil, err
	}
	if opts.Line, err = args.OptionalWord("-l", f.Line); err != nil {
		return nil, err
	}
	if f.Name != "" {
		opts.Name = f.Name[0]
	}

	return opts, nil
}

// Rewrite adds or updates the +3DOS header of inPath and saves the result
func Rewrite(inPath string, opts *RewriteOptions) error {
	if opts == nil {
		opts = DefaultRewriteOptions()
	}

	outPath := opts.Output
	if strings.TrimSpace(outPath) == "" {
		outPath = inPath
	}

	// Validate input exists
	if info, err := os.Stat(inPath); inPath == "" || err != nil || info.IsDir() {
		return args.NewArgumentError("-f", fmt.Sprintf("File %q doesn't exist.", inPath))
	}

	if opts.FileType == p3dos.FileTypeProgram && opts.Line != nil && *opts.Line > p3dos.MaxLine {
		return args.WrapArgumentError("-l", p3dos.ErrLineOutOfRange)
	}
	warnIgnored(opts)

	f, err := p3dos.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inPath, err)
	}

	if err := f.Apply(codecOptions(opts)); err != nil {
		switch {
		case errors.Is(err, p3dos.ErrLineOutOfRange):
			return args.WrapArgumentError("-l", err)
		case errors.Is(err, p3dos.ErrMissingArrayName):
			return args.WrapArgumentError("-n", err)
		}
		return err
	}

	out, err := f.Assemble(opts.RemoveHeader)
	if err != nil {
		return err
	}

	if err := p3dos.WriteFile(outPath, out); err != nil {
		return err
	}
	log.Infof("Saved file %q.", outPath)

	return nil
}

func codecOptions(opts *RewriteOptions) *p3dos.Options {
	return &p3dos.Options{
		FileType:   opts.FileType,
		Line:       opts.Line,
		VarsOffset: opts.Variables,
		Address:    opts.Address,
		Name:       opts.Name,
	}
}

// warnIgnored reports arguments that do not apply to the target type
func warnIgnored(opts *RewriteOptions) {
	t := opts.FileType
	if opts.Address != nil && t != p3dos.FileTypeCode {
		log.Warnf("Ignoring execute address (-a) for %s file.", t)
	}
	if opts.Variables != nil && t != p3dos.FileTypeProgram {
		log.Warnf("Ignoring variables offset (-v) for %s file.", t)
	}
	if opts.Line != nil && t != p3dos.FileTypeProgram {
		log.Warnf("Ignoring autorun line (-l) for %s file.", t)
	}
	if opts.Name != 0 && t != p3dos.FileTypeNumericArray && t != p3dos.FileTypeCharArray {
		log.Warnf("Ignoring array name (-n) for %s file.", t)
	}
}
