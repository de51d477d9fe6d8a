package style

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultColor is the index of the terminal's default color.
const DefaultColor = -1

// colorNames is the palette of named terminal colors, mapping to indices
// of the 256-color palette.
var colorNames = map[string]int{
	"default": DefaultColor,
	"normal":  DefaultColor,
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
	"grey":    8,
	"gray":    8,
}

func init() {
	for _, c := range []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		colorNames["light"+c] = colorNames[c] + 8
		colorNames["bright"+c] = colorNames[c] + 8
	}
	colorNames["lightgrey"] = 7
	colorNames["lightgray"] = 7
	colorNames["brightgrey"] = 7
	colorNames["brightgray"] = 7
}

var hexColorPattern = regexp.MustCompile(`^#([0-9a-f]{3}|[0-9a-f]{6})$`)

// NormalizeColor checks if s resolves in the terminal color palette and
// returns its canonical spelling. Names are compared case-insensitively,
// ignoring dashes and blanks ("light-red" = "LightRed"). Besides names, hex
// colors (#rgb, #rrggbb) and palette indices 0…255 are accepted.
func NormalizeColor(s string) (string, bool) {
	c := strings.ToLower(strings.TrimSpace(s))
	if hexColorPattern.MatchString(c) {
		if len(c) == 4 {
			c = string([]byte{'#', c[1], c[1], c[2], c[2], c[3], c[3]})
		}
		return c, true
	}
	if n, err := strconv.Atoi(c); err == nil {
		return c, n >= 0 && n <= 255
	}
	c = strings.NewReplacer("-", "", " ", "", "_", "").Replace(c)
	if _, ok := colorNames[c]; ok {
		return c, true
	}
	return "", false
}

// ColorIndex returns the palette index of a normalized color. For hex colors
// ok is true and index is -2, callers will have to use the hex string.
func ColorIndex(c string) (index int, ok bool) {
	if strings.HasPrefix(c, "#") {
		return -2, true
	}
	if n, err := strconv.Atoi(c); err == nil {
		return n, true
	}
	index, ok = colorNames[c]
	return
}
