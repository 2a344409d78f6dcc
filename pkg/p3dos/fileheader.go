// file: pkg/p3dos/fileheader.go

package p3dos

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	// Header constants
	HeaderSignature = "PLUS3DOS"
	HeaderSoftEOF   = 0x1A
	HeaderSize      = 128
	HeaderIssue     = 1
	HeaderVersion   = 0

	offsetChecksum = HeaderSize - 1
)

// FileType is the +3 BASIC file type stored at offset 15
type FileType byte

const (
	FileTypeProgram      FileType = 0
	FileTypeNumericArray FileType = 1
	FileTypeCharArray    FileType = 2
	FileTypeCode         FileType = 3

	// FileTypeUnknown marks a file with no prior header. Never written.
	FileTypeUnknown FileType = 0xFF
)

// Valid reports whether t is one of the four +3 BASIC file types
func (t FileType) Valid() bool {
	return t <= FileTypeCode
}

func (t FileType) String() string {
	switch t {
	case FileTypeProgram:
		return "BASIC Program"
	case FileTypeNumericArray:
		return "Numeric Array"
	case FileTypeCharArray:
		return "Character Array"
	case FileTypeCode:
		return "Code/Screen$"
	default:
		return "Unknown"
	}
}

// Header represents the 128-byte header structure
type Header struct {
	Signature  [8]byte   // "PLUS3DOS"
	SoftEOF    byte      // 0x1A
	Issue      byte      // Issue number
	Version    byte      // Version number
	FileLength uint32    // Length of the file in bytes, header included
	FileType   FileType  // +3 BASIC header data starts here
	DataLength uint16    // Length of the body
	Param1     uint16    // LINE, load address, or array name in the high byte
	Param2     uint16    // Variables offset for BASIC, zero otherwise
	Unused     [2]byte   // Bytes 22-23, cleared whenever params are set
	Reserved   [103]byte // Reserved space
	Checksum   byte      // Sum of bytes 0-126 modulo 256
}

// NewHeader creates a new header with standard values
func NewHeader() *Header {
	header := &Header{
		SoftEOF: HeaderSoftEOF,
		Issue:   HeaderIssue,
		Version: HeaderVersion,
	}
	copy(header.Signature[:], HeaderSignature)
	return header
}

// Bytes serializes the header to its 128-byte disk layout
func (h *Header) Bytes() []byte {
	buf := new(bytes.Buffer)
	buf.Grow(HeaderSize)
	// Writes to a bytes.Buffer cannot fail for a fixed-size struct
	_ = binary.Write(buf, binary.LittleEndian, h)
	return buf.Bytes()
}

// FromBytes populates the header from a byte slice
func (h *Header) FromBytes(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: %d", ErrHeaderSize, len(data))
	}
	return binary.Read(bytes.NewReader(data[:HeaderSize]), binary.LittleEndian, h)
}

// SetParams stores the type-specific parameters in the BASIC header data
func (h *Header) SetParams(p Params) {
	h.FileType = p.Type()
	h.Param1, h.Param2 = p.words()
	h.Unused = [2]byte{}
}

// Params decodes the BASIC header data according to the file type
func (h *Header) Params() (Params, error) {
	return decodeParams(h.FileType, h.Param1, h.Param2)
}

// UpdateChecksum calculates and sets the header checksum
func (h *Header) UpdateChecksum() {
	h.Checksum = Checksum(h.Bytes())
}

// Validate checks the signature and checksum, the two properties that tell
// a headered file from a raw one
func (h *Header) Validate() error {
	if !bytes.Equal(h.Signature[:], []byte(HeaderSignature)) {
		return ErrInvalidSignature
	}
	if Checksum(h.Bytes()) != h.Checksum {
		return ErrInvalidChecksum
	}
	return nil
}

// String returns a human-readable representation of the header
func (h *Header) String() string {
	info := fmt.Sprintf("Type: %s, Length: %d", h.FileType, h.DataLength)
	p, err := h.Params()
	if err != nil {
		return info
	}
	return info + ", " + p.String()
}

// Checksum returns the sum of the first 127 bytes of buf modulo 256
func Checksum(buf []byte) byte {
	var sum byte
	for i := 0; i < offsetChecksum && i < len(buf); i++ {
		sum += buf[i]
	}
	return sum
}

// FinalizeChecksum writes the checksum into byte 127 of a serialized header
func FinalizeChecksum(buf []byte) error {
	if len(buf) != HeaderSize {
		return fmt.Errorf("%w: %d", ErrHeaderSize, len(buf))
	}
	buf[offsetChecksum] = Checksum(buf)
	return nil
}
