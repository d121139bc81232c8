package canvas

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// PresetColors are the drawing colors offered by the editor.
var PresetColors = []string{"#000000", "#FF0000", "#0000FF", "#00FF00", "#FFFF00", "#FF00FF", "#00FFFF"}

// ParseHexColor parses #RRGGBB or #RGB into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// FormatHexColor renders c as #RRGGBB, ignoring alpha.
func FormatHexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
