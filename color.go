package kittypal

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGB colour with 8-bit components.
type Color struct {
	R, G, B uint8
}

// ParseColor parses a 6-hex-digit colour string, optionally prefixed with
// '#'. Parsing is case-insensitive. Any other shape fails with a KindParse
// error.
func ParseColor(text string) (Color, error) {
	hex := strings.TrimPrefix(text, "#")
	if len(hex) != 6 || !isHexDigits(hex) {
		return Color{}, &Error{
			Kind: KindParse,
			Op:   "parse colour",
			Err:  fmt.Errorf("%q is not a 6-digit hex colour", text),
		}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, &Error{Kind: KindParse, Op: "parse colour", Err: err}
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Hex returns the colour as bare lowercase hex, e.g. "1e1e2e".
func (c Color) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the colour as '#'-prefixed lowercase hex, e.g. "#1e1e2e".
func (c Color) String() string {
	return "#" + c.Hex()
}
