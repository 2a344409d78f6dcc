// file: internal/args/number.go

package args

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseWord parses a 16-bit argument value given as decimal, $hex, #hex or
// 0xhex. Errors name the flag and the raw text.
func ParseWord(flag, text string) (uint16, error) {
	digits, base := text, 10
	switch {
	case strings.HasPrefix(text, "$"), strings.HasPrefix(text, "#"):
		digits, base = text[1:], 16
	case strings.HasPrefix(text, "0x"), strings.HasPrefix(text, "0X"):
		digits, base = text[2:], 16
	}

	v, err := strconv.ParseUint(digits, base, 16)
	if err != nil || digits == "" {
		return 0, &ArgumentError{
			Flag:    flag,
			Message: fmt.Sprintf("%q is not a number.", text),
			Err:     err,
		}
	}
	return uint16(v), nil
}

// OptionalWord parses text with ParseWord, returning nil for an empty value
func OptionalWord(flag, text string) (*uint16, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	v, err := ParseWord(flag, text)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
