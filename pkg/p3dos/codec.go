// file: pkg/p3dos/codec.go

package p3dos

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
)

// File is a header and body pair being rewritten
type File struct {
	Header *Header
	Body   []byte

	// Recovered is set when Header was parsed from the input rather than created
	Recovered bool

	// Values of the recovered header, used as defaults
	ExistingType FileType
	ExistingArg1 uint16
	ExistingArg2 uint16

	// DeclaredLength is the file length stored in the recovered header
	DeclaredLength uint32

	// Reason says why the input was not taken as headered
	Reason error
}

// Options selects the target file type and the user-supplied parameters.
// A nil pointer or a zero Name means the value was not supplied.
type Options struct {
	FileType   FileType
	Line       *uint16 // BASIC autorun line
	VarsOffset *uint16 // BASIC variables offset
	Address    *uint16 // CODE execute/load address
	Name       byte    // Array variable name
}

// Parse splits data into header and body. When data does not start with a
// valid header, the whole input becomes the body and a fresh header is made.
func Parse(data []byte) *File {
	f := &File{ExistingType: FileTypeUnknown}

	header, err := decodeHeader(data)
	if err == nil {
		f.Header = header
		f.Body = data[HeaderSize:]
		f.Recovered = true
		f.ExistingType = f.Header.FileType
		f.ExistingArg1 = f.Header.Param1
		f.ExistingArg2 = f.Header.Param2
		f.DeclaredLength = f.Header.FileLength
		log.Debugf("found +3DOS header: %s", f.Header)
	} else {
		f.Header = NewHeader()
		f.Body = data
		f.Reason = err
		log.Debugf("no +3DOS header found (%v), treating %d bytes as body", err, len(data))
	}

	// The stored length is never trusted
	f.Header.FileLength = uint32(HeaderSize + len(f.Body))
	return f
}

// decodeHeader reads the first 128 bytes of data as a header and checks its
// signature and checksum
func decodeHeader(data []byte) (*Header, error) {
	header := &Header{}
	if err := header.FromBytes(data); err != nil {
		return nil, err
	}
	if err := header.Validate(); err != nil {
		return nil, err
	}
	return header, nil
}

// Apply sets the file type and type-specific parameters for opts.FileType,
// falling back to the recovered header's values and then to fixed defaults.
func (f *File) Apply(opts *Options) error {
	if opts == nil {
		opts = &Options{FileType: FileTypeCode}
	}
	if !opts.FileType.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidFileType, opts.FileType)
	}
	if opts.FileType == FileTypeProgram && opts.Line != nil && *opts.Line > MaxLine {
		return ErrLineOutOfRange
	}

	params, err := f.resolveParams(opts)
	if err != nil {
		return err
	}

	if len(f.Body) > math.MaxUint16 {
		log.Warnf("Body is %d bytes, header length field is truncated to 16 bits.", len(f.Body))
	}
	f.Header.DataLength = uint16(len(f.Body))
	f.Header.SetParams(params)
	return nil
}

func (f *File) resolveParams(opts *Options) (Params, error) {
	matches := f.ExistingType == opts.FileType

	switch opts.FileType {
	case FileTypeProgram:
		log.Info("Adding a BASIC header (type 0).")
		p := ProgramParams{Line: AutorunNone, VarsOffset: uint16(len(f.Body))}
		if opts.Line != nil {
			p.Line = *opts.Line
		} else if matches {
			p.Line = f.ExistingArg1
		}
		if p.Autorun() {
			log.Infof("Setting autorun line to %d.", p.Line)
		} else {
			log.Infof("Clearing autorun line ($%04X).", p.Line)
		}
		if opts.VarsOffset != nil {
			p.VarsOffset = *opts.VarsOffset
		} else if matches {
			p.VarsOffset = f.ExistingArg2
		}
		log.Infof("Setting variable offset address to $%04X.", p.VarsOffset)
		return p, nil

	case FileTypeNumericArray:
		log.Info("Adding a numeric array header (type 1).")
		name, err := f.arrayName(opts, matches, "numeric")
		if err != nil {
			return nil, err
		}
		return NumericArrayParams{Name: name}, nil

	case FileTypeCharArray:
		log.Info("Adding a character array header (type 2).")
		name, err := f.arrayName(opts, matches, "character")
		if err != nil {
			return nil, err
		}
		return CharArrayParams{Name: name}, nil

	default:
		log.Info("Adding a code header (type 3).")
		p := CodeParams{}
		if opts.Address != nil {
			p.Address = *opts.Address
		} else if matches {
			p.Address = f.ExistingArg1
		}
		log.Infof("Setting execute address to $%04X.", p.Address)
		return p, nil
	}
}

func (f *File) arrayName(opts *Options, matches bool, kind string) (byte, error) {
	name := opts.Name
	switch {
	case name != 0:
	case matches:
		// A zero name from an earlier header is kept as it is
		name = ArrayName(f.ExistingArg1)
	default:
		return 0, fmt.Errorf("%w: %s array", ErrMissingArrayName, kind)
	}
	log.Infof("Setting variable name to %c.", name)
	return name, nil
}

// Assemble finalizes the header checksum and returns the output bytes,
// the body alone when strip is set
func (f *File) Assemble(strip bool) ([]byte, error) {
	header := f.Header.Bytes()
	if err := FinalizeChecksum(header); err != nil {
		return nil, err
	}
	f.Header.Checksum = header[offsetChecksum]
	log.Infof("Calculated checksum as $%02X.", f.Header.Checksum)

	if strip {
		log.Info("Saving file without +3DOS header.")
		out := make([]byte, len(f.Body))
		copy(out, f.Body)
		return out, nil
	}

	log.Info("Saving file with +3DOS header.")
	out := make([]byte, 0, len(header)+len(f.Body))
	out = append(out, header...)
	out = append(out, f.Body...)
	return out, nil
}

// Rewrite parses data, applies opts and assembles the output
func Rewrite(data []byte, opts *Options, strip bool) (*File, []byte, error) {
	f := Parse(data)
	if err := f.Apply(opts); err != nil {
		return f, nil, err
	}
	out, err := f.Assemble(strip)
	if err != nil {
		return f, nil, err
	}
	return f, out, nil
}
