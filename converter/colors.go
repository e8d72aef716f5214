package converter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jkrenek/zotero-notion-converter/notion"
)

// highlightColors maps the source highlighter palette to destination tokens.
var highlightColors = map[string]notion.Color{
	"#ffd400": notion.ColorYellowBackground,
	"#ff6666": notion.ColorRedBackground,
	"#5fb236": notion.ColorGreenBackground,
	"#2ea8e5": notion.ColorBlueBackground,
	"#a28ae5": notion.ColorPurpleBackground,
	"#e56eee": notion.ColorPinkBackground,
	"#f19837": notion.ColorOrangeBackground,
	"#aaaaaa": notion.ColorGrayBackground,
}

var rgbPattern = regexp.MustCompile(`^rgba?\((\d{1,3}),(\d{1,3}),(\d{1,3})(?:,[0-9.]+)?\)$`)

// backgroundColorToken normalizes a CSS color value and maps it through the
// palette. Colors outside the palette report false and are dropped by
// callers.
func backgroundColorToken(value string) (notion.Color, bool) {
	hex, ok := normalizeCSSColor(value)
	if !ok {
		return "", false
	}
	token, ok := highlightColors[hex]
	return token, ok
}

// normalizeCSSColor reduces a hex or rgb() color value to lower-case #rrggbb
// form. Case, whitespace and an alpha component are tolerated.
func normalizeCSSColor(value string) (string, bool) {
	value = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(value), " ", ""))
	if value == "" {
		return "", false
	}

	if match := rgbPattern.FindStringSubmatch(value); match != nil {
		r, g, b := colorByte(match[1]), colorByte(match[2]), colorByte(match[3])
		if r < 0 || g < 0 || b < 0 {
			return "", false
		}
		return fmt.Sprintf("#%02x%02x%02x", r, g, b), true
	}

	if !strings.HasPrefix(value, "#") {
		return "", false
	}
	digits := value[1:]
	switch len(digits) {
	case 8: // #rrggbbaa
		digits = digits[:6]
	case 6:
	case 3:
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	default:
		return "", false
	}
	if !isHexDigits(digits) {
		return "", false
	}
	return "#" + digits, true
}

func colorByte(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n > 255 {
		return -1
	}
	return n
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// colorSectionTitles names the per-color sections used when grouping
// annotations by color.
var colorSectionTitles = map[notion.Color]string{
	notion.ColorYellowBackground: "General highlights",
	notion.ColorGreenBackground:  "Important",
	notion.ColorBlueBackground:   "Questions",
	notion.ColorPurpleBackground: "Definitions",
	notion.ColorRedBackground:    "Disagreements",
	notion.ColorPinkBackground:   "To discuss",
	notion.ColorOrangeBackground: "Examples",
	notion.ColorGrayBackground:   "Background",
}

// sectionTitle returns the section heading text for a color, deriving a
// readable fallback from the token itself for colors outside the table.
func sectionTitle(color notion.Color) string {
	if title, ok := colorSectionTitles[color]; ok {
		return title
	}
	name := strings.ReplaceAll(strings.TrimSuffix(string(color), "_background"), "_", " ")
	if name == "" {
		return "Other highlights"
	}
	return strings.ToUpper(name[:1]) + name[1:] + " highlights"
}
