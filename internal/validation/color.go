package validation

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// MinBrightness is the lowest average channel value accepted for a glow color.
const MinBrightness = 30

var (
	ErrInvalidColor = errors.New("invalid color")

	bareHexPattern = regexp.MustCompile(`^[0-9a-f]{3}$|^[0-9a-f]{6}$`)
	hexPattern     = regexp.MustCompile(`^#([0-9a-f]{3}|[0-9a-f]{6})$`)
)

// namedColors maps Portuguese and English color names to hex values.
var namedColors = map[string]string{
	"azul": "#3b82f6", "blue": "#3b82f6",
	"vermelho": "#ef4444", "red": "#ef4444",
	"verde": "#10b981", "green": "#10b981",
	"amarelo": "#fbbf24", "yellow": "#fbbf24",
	"roxo": "#a855f7", "purple": "#a855f7", "rox": "#a855f7",
	"rosa": "#ec4899", "pink": "#ec4899",
	"laranja": "#f97316", "orange": "#f97316",
	"ciano": "#06b6d4", "cyan": "#06b6d4",
	"branco": "#ffffff", "white": "#ffffff",
	"cinza": "#6b7280", "gray": "#6b7280", "grey": "#6b7280",
	"aqua": "#00ffff", "fuchsia": "#ff00ff", "lime": "#00ff00",
	"maroon": "#800000", "navy": "#000080", "olive": "#808000",
	"silver": "#c0c0c0", "teal": "#008080",
}

// ResolveColor turns a user token (color name, "#rgb", "#rrggbb" or bare hex)
// into a lowercase hex color. ok is false when the token is not a color.
func ResolveColor(token string) (hex string, ok bool) {
	lower := strings.ToLower(strings.TrimSpace(token))
	if bareHexPattern.MatchString(lower) {
		lower = "#" + lower
	}
	if hexPattern.MatchString(lower) {
		return lower, true
	}
	if named, found := namedColors[lower]; found {
		return named, true
	}
	return "", false
}

// Brightness returns the average of the red, green and blue channels of a
// "#rgb" or "#rrggbb" color. Short forms are expanded CSS-style first.
func Brightness(hex string) (float64, error) {
	if !hexPattern.MatchString(hex) {
		return 0, ErrInvalidColor
	}
	digits := hex[1:]
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	rgb, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, ErrInvalidColor
	}
	r := (rgb >> 16) & 0xff
	g := (rgb >> 8) & 0xff
	b := rgb & 0xff
	return float64(r+g+b) / 3, nil
}

// IsTooDark reports whether a color falls below MinBrightness. Values that
// are not valid hex colors are treated as too dark.
func IsTooDark(hex string) bool {
	brightness, err := Brightness(hex)
	if err != nil {
		return true
	}
	return brightness < MinBrightness
}

// ColorNames lists every name ResolveColor understands.
func ColorNames() []string {
	names := make([]string, 0, len(namedColors))
	for name := range namedColors {
		names = append(names, name)
	}
	return names
}
