// file: cmd/info/info.go

package info

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"

	"github.com/ha1tch/p3header/pkg/p3dos"
)

// HeaderInfo represents header information in a structured format
type HeaderInfo struct {
	Path          string `json:"path"`
	Headered      bool   `json:"headered"`
	Reason        string `json:"reason,omitempty"`
	Type          string `json:"type,omitempty"`
	TypeCode      *byte  `json:"type_code,omitempty"`
	Issue         byte   `json:"issue,omitempty"`
	Version       byte   `json:"version,omitempty"`
	FileLength    uint32 `json:"file_length,omitempty"`
	DataLength    uint16 `json:"data_length,omitempty"`
	BodyLength    int    `json:"body_length"`
	Params        string `json:"params,omitempty"`
	Checksum      string `json:"checksum,omitempty"`
	Fingerprint   string `json:"fingerprint"`
	Inconsistency string `json:"inconsistency,omitempty"`
}

// InfoOptions configures the information display
type InfoOptions struct {
	JSON   bool      // Output in JSON format
	Output io.Writer // Destination, stdout when nil
}

// DefaultInfoOptions returns default options for Info
func DefaultInfoOptions() *InfoOptions {
	return &InfoOptions{
		JSON:   false,
		Output: os.Stdout,
	}
}

// Info displays the +3DOS header of a host file
func Info(path string, opts *InfoOptions) error {
	// Validate options
	if opts == nil {
		opts = DefaultInfoOptions()
	}
	w := opts.Output
	if w == nil {
		w = os.Stdout
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %w", err)
	}

	f, err := p3dos.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	info := Describe(path, f)
	if opts.JSON {
		return outputJSON(w, info)
	}
	return outputText(w, info)
}

// Describe summarizes a parsed file
func Describe(path string, f *p3dos.File) *HeaderInfo {
	info := &HeaderInfo{
		Path:        path,
		Headered:    f.Recovered,
		BodyLength:  len(f.Body),
		Fingerprint: fmt.Sprintf("%016x", xxhash.Sum64(f.Body)),
	}
	if !f.Recovered {
		if f.Reason != nil {
			info.Reason = f.Reason.Error()
		}
		return info
	}

	h := f.Header
	code := byte(h.FileType)
	info.Type = h.FileType.String()
	info.TypeCode = &code
	info.Issue = h.Issue
	info.Version = h.Version
	info.FileLength = f.DeclaredLength
	info.DataLength = h.DataLength
	info.Checksum = fmt.Sprintf("$%02X", h.Checksum)
	if p, err := h.Params(); err == nil {
		info.Params = p.String()
	}
	switch {
	case int(h.DataLength) != len(f.Body)&0xFFFF:
		info.Inconsistency = fmt.Sprintf("header declares %d body bytes, file has %d", h.DataLength, len(f.Body))
	case f.DeclaredLength != h.FileLength:
		info.Inconsistency = fmt.Sprintf("header declares a %d byte file, file has %d", f.DeclaredLength, h.FileLength)
	}
	return info
}

// outputJSON writes header information in JSON format
func outputJSON(w io.Writer, info *HeaderInfo) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(info)
}

// outputText writes header information in human-readable format
func outputText(w io.Writer, info *HeaderInfo) error {
	fmt.Fprintf(w, "File:        %s\n\n", info.Path)
	if !info.Headered {
		if info.Reason != "" {
			fmt.Fprintf(w, "Header:      none (%s)\n", info.Reason)
		} else {
			fmt.Fprintf(w, "Header:      none\n")
		}
		fmt.Fprintf(w, "Body:        %d bytes\n", info.BodyLength)
		fmt.Fprintf(w, "Fingerprint: %s\n", info.Fingerprint)
		return nil
	}

	fmt.Fprintf(w, "Header:      +3DOS issue %d version %d\n", info.Issue, info.Version)
	fmt.Fprintf(w, "Type:        %s (%d)\n", info.Type, *info.TypeCode)
	if info.Params != "" {
		fmt.Fprintf(w, "Params:      %s\n", info.Params)
	}
	fmt.Fprintf(w, "Length:      %d bytes (header says %d)\n", info.BodyLength, info.DataLength)
	fmt.Fprintf(w, "File length: %d bytes\n", info.FileLength)
	fmt.Fprintf(w, "Checksum:    %s\n", info.Checksum)
	fmt.Fprintf(w, "Fingerprint: %s\n", info.Fingerprint)

	if info.Inconsistency != "" {
		fmt.Fprintf(w, "\nWarnings:\n")
		fmt.Fprintf(w, "- %s\n", info.Inconsistency)
	}

	return nil
}
