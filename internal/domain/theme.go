package domain

// Theme selects a chart color palette.
type Theme string

const (
	ThemeClassic Theme = "classic"
	ThemeDark    Theme = "dark"
	ThemePrint   Theme = "print"
)

// Palette is the resolved color tuple for one theme. Colors are CSS-style
// hex strings; OldColor draws the reconstructed series, NewColor the
// observed one.
type Palette struct {
	OldColor        string
	NewColor        string
	BackgroundColor string
	GridColor       string
}

// palettes is the closed theme table. Keeping it a single map (instead of the
// original's scattered per-theme conditionals) makes it exhaustively testable
// and leaves no silent fallthrough for misspelled tokens.
var palettes = map[Theme]Palette{
	ThemeClassic: {
		OldColor:        "#6495ED",
		NewColor:        "#FF6347",
		BackgroundColor: "#F0F8FF",
		GridColor:       "#808080",
	},
	ThemeDark: {
		OldColor:        "#7EB6FF",
		NewColor:        "#FF8C69",
		BackgroundColor: "#1C1C28",
		GridColor:       "#44475A",
	},
	ThemePrint: {
		OldColor:        "#555555",
		NewColor:        "#000000",
		BackgroundColor: "#FFFFFF",
		GridColor:       "#CCCCCC",
	},
}

// ResolvePalette maps a theme token to its palette. Unknown tokens are a
// ConfigurationError, never a default palette.
func ResolvePalette(t Theme) (Palette, error) {
	p, ok := palettes[t]
	if !ok {
		return Palette{}, configErrorf("theme", "unknown token %q", string(t))
	}
	return p, nil
}
