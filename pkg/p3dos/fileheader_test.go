// file: pkg/p3dos/fileheader_test.go

package p3dos

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewHeader(t *testing.T) {
	header := NewHeader()

	// Check signature
	expectedSig := []byte(HeaderSignature)
	if !bytes.Equal(header.Signature[:], expectedSig) {
		t.Errorf("Wrong signature. Expected %s, got %s",
			expectedSig, header.Signature)
	}

	// Check standard values
	if header.SoftEOF != HeaderSoftEOF {
		t.Errorf("Wrong soft-EOF. Expected 0x%02X, got 0x%02X",
			HeaderSoftEOF, header.SoftEOF)
	}
	if header.Issue != HeaderIssue {
		t.Errorf("Wrong issue number. Expected %d, got %d",
			HeaderIssue, header.Issue)
	}
	if header.Version != HeaderVersion {
		t.Errorf("Wrong version. Expected %d, got %d",
			HeaderVersion, header.Version)
	}

	// Everything after the version is zero
	data := header.Bytes()
	for i := 11; i < HeaderSize; i++ {
		if data[i] != 0 {
			t.Fatalf("Byte %d of a fresh header is 0x%02X, want 0", i, data[i])
		}
	}
}

func TestHeaderLayout(t *testing.T) {
	header := NewHeader()
	header.FileLength = 0x01020304
	header.DataLength = 0x0506
	header.SetParams(ProgramParams{Line: 0x0708, VarsOffset: 0x090A})
	header.Reserved[0] = 0xEE

	data := header.Bytes()
	if len(data) != HeaderSize {
		t.Fatalf("Wrong data size. Expected %d, got %d", HeaderSize, len(data))
	}

	tests := []struct {
		offset int
		want   byte
	}{
		{8, HeaderSoftEOF},
		{9, HeaderIssue},
		{11, 0x04}, {12, 0x03}, {13, 0x02}, {14, 0x01},
		{15, byte(FileTypeProgram)},
		{16, 0x06}, {17, 0x05},
		{18, 0x08}, {19, 0x07},
		{20, 0x0A}, {21, 0x09},
		{22, 0x00}, {23, 0x00},
		{24, 0xEE},
	}
	for _, tt := range tests {
		if data[tt.offset] != tt.want {
			t.Errorf("Byte %d: got 0x%02X, want 0x%02X", tt.offset, data[tt.offset], tt.want)
		}
	}
}

func TestHeaderChecksum(t *testing.T) {
	header := NewHeader()
	header.SetParams(CodeParams{Address: 32768})
	header.UpdateChecksum()

	if err := header.Validate(); err != nil {
		t.Errorf("Valid header failed validation: %v", err)
	}

	// Corrupt data and verify checksum fails
	header.Param1 = 1
	if err := header.Validate(); !errors.Is(err, ErrInvalidChecksum) {
		t.Errorf("Expected ErrInvalidChecksum, got %v", err)
	}
}

func TestChecksum(t *testing.T) {
	buf := make([]byte, HeaderSize)
	for i := range buf {
		buf[i] = 0xFF
	}
	// 127 * 0xFF = 0x7E81
	if got := Checksum(buf); got != 0x81 {
		t.Errorf("Checksum = 0x%02X, want 0x81", got)
	}

	if err := FinalizeChecksum(buf); err != nil {
		t.Fatalf("FinalizeChecksum failed: %v", err)
	}
	if buf[127] != 0x81 {
		t.Errorf("Byte 127 = 0x%02X, want 0x81", buf[127])
	}

	// Idempotent
	if err := FinalizeChecksum(buf); err != nil || buf[127] != 0x81 {
		t.Errorf("Second FinalizeChecksum changed the result: 0x%02X, %v", buf[127], err)
	}
}

func TestFinalizeChecksumSize(t *testing.T) {
	for _, n := range []int{0, 127, 129} {
		err := FinalizeChecksum(make([]byte, n))
		if !errors.Is(err, ErrHeaderSize) {
			t.Errorf("Size %d: expected ErrHeaderSize, got %v", n, err)
		}
	}
}

func TestHeaderByteConversion(t *testing.T) {
	header := NewHeader()
	header.SetParams(CharArrayParams{Name: 'a'})
	header.DataLength = 42
	header.UpdateChecksum()

	data := header.Bytes()

	newHeader := &Header{}
	if err := newHeader.FromBytes(data); err != nil {
		t.Fatalf("FromBytes failed: %v", err)
	}
	if *newHeader != *header {
		t.Errorf("Headers don't match after conversion:\n%+v\n%+v", header, newHeader)
	}

	if err := newHeader.FromBytes(data[:100]); !errors.Is(err, ErrHeaderSize) {
		t.Errorf("Expected ErrHeaderSize for short data, got %v", err)
	}
}

func TestHeaderValidation(t *testing.T) {
	header := NewHeader()
	header.UpdateChecksum()

	// Test invalid signature
	badHeader := *header
	copy(badHeader.Signature[:], "INVALID!")
	badHeader.UpdateChecksum()
	if err := badHeader.Validate(); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("Expected ErrInvalidSignature, got %v", err)
	}
}

func TestDecodeHeader(t *testing.T) {
	valid := NewHeader()
	valid.UpdateChecksum()
	data := valid.Bytes()

	if _, err := decodeHeader(data); err != nil {
		t.Errorf("Header of exactly 128 bytes not detected: %v", err)
	}
	if _, err := decodeHeader(append(data, 1, 2, 3)); err != nil {
		t.Errorf("Header followed by a body not detected: %v", err)
	}
	if _, err := decodeHeader(data[:127]); !errors.Is(err, ErrHeaderSize) {
		t.Errorf("Expected ErrHeaderSize for 127 bytes, got %v", err)
	}

	bad := append([]byte(nil), data...)
	bad[127]++
	if _, err := decodeHeader(bad); !errors.Is(err, ErrInvalidChecksum) {
		t.Errorf("Expected ErrInvalidChecksum, got %v", err)
	}

	unsigned := append([]byte(nil), data...)
	copy(unsigned, "PLUS2DOS")
	unsigned[127] = Checksum(unsigned)
	if _, err := decodeHeader(unsigned); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("Expected ErrInvalidSignature, got %v", err)
	}
}

func TestHeaderString(t *testing.T) {
	header := NewHeader()

	header.SetParams(ProgramParams{Line: 10, VarsOffset: 950})
	if str := header.String(); str == "" {
		t.Error("String representation should not be empty")
	}

	header.SetParams(CodeParams{Address: 16384})
	header.DataLength = 6912
	want := "Type: Code/Screen$, Length: 6912, Load address: 16384 ($4000)"
	if str := header.String(); str != want {
		t.Errorf("String() = %q, want %q", str, want)
	}
}

func TestFileTypeString(t *testing.T) {
	if FileTypeUnknown.Valid() {
		t.Error("FileTypeUnknown should not be valid")
	}
	if FileTypeUnknown.String() != "Unknown" {
		t.Errorf("Wrong name for unknown type: %s", FileTypeUnknown)
	}
	if FileTypeCharArray.String() != "Character Array" {
		t.Errorf("Wrong name for char array: %s", FileTypeCharArray)
	}
}
