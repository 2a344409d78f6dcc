// file: pkg/p3dos/params.go

package p3dos

import "fmt"

const (
	// AutorunNone is the LINE value of a BASIC program that does not autorun
	AutorunNone uint16 = 0x8000

	// MaxLine is the highest BASIC line number
	MaxLine uint16 = 9999
)

// Params is the type-specific part of the BASIC header data. Each file type
// has its own implementation; all of them pack into offsets 18-21.
type Params interface {
	Type() FileType
	String() string
	words() (param1, param2 uint16)
}

// ProgramParams describes a BASIC program
type ProgramParams struct {
	Line       uint16 // Autorun line, AutorunNone for none
	VarsOffset uint16 // Offset of the variables area from the start of the program
}

func (p ProgramParams) Type() FileType { return FileTypeProgram }

func (p ProgramParams) words() (uint16, uint16) { return p.Line, p.VarsOffset }

// Autorun reports whether the program starts by itself after loading
func (p ProgramParams) Autorun() bool {
	return p.Line != AutorunNone
}

func (p ProgramParams) String() string {
	if !p.Autorun() {
		return fmt.Sprintf("No autorun, Variables offset: %d", p.VarsOffset)
	}
	return fmt.Sprintf("LINE %d, Variables offset: %d", p.Line, p.VarsOffset)
}

// NumericArrayParams describes a saved numeric array
type NumericArrayParams struct {
	Name byte
}

func (p NumericArrayParams) Type() FileType { return FileTypeNumericArray }

func (p NumericArrayParams) words() (uint16, uint16) { return arrayWord(p.Name), 0 }

func (p NumericArrayParams) String() string {
	return fmt.Sprintf("Variable: %c()", p.Name)
}

// CharArrayParams describes a saved character array
type CharArrayParams struct {
	Name byte
}

func (p CharArrayParams) Type() FileType { return FileTypeCharArray }

func (p CharArrayParams) words() (uint16, uint16) { return arrayWord(p.Name), 0 }

func (p CharArrayParams) String() string {
	return fmt.Sprintf("Variable: %c$()", p.Name)
}

// CodeParams describes a CODE (or SCREEN$) block
type CodeParams struct {
	Address uint16 // Load and execute address
}

func (p CodeParams) Type() FileType { return FileTypeCode }

func (p CodeParams) words() (uint16, uint16) { return p.Address, 0 }

func (p CodeParams) String() string {
	return fmt.Sprintf("Load address: %d ($%04X)", p.Address, p.Address)
}

// Byte 18 is zero and byte 19 holds the name
func arrayWord(name byte) uint16 {
	return uint16(name) << 8
}

// ArrayName extracts the variable name from an array file's first parameter
func ArrayName(param1 uint16) byte {
	return byte(param1 >> 8)
}

func decodeParams(t FileType, param1, param2 uint16) (Params, error) {
	switch t {
	case FileTypeProgram:
		return ProgramParams{Line: param1, VarsOffset: param2}, nil
	case FileTypeNumericArray:
		return NumericArrayParams{Name: ArrayName(param1)}, nil
	case FileTypeCharArray:
		return CharArrayParams{Name: ArrayName(param1)}, nil
	case FileTypeCode:
		return CodeParams{Address: param1}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidFileType, t)
	}
}
