package kpi

// Glyph is the abstract status icon of a band.
type Glyph string

const (
	GlyphCheck Glyph = "check"
	GlyphWarn  Glyph = "warn"
	GlyphCross Glyph = "cross"
)

// Palette is the abstract color family of a band.
type Palette string

const (
	PaletteGreen  Palette = "green"
	PaletteOrange Palette = "orange"
	PaletteRed    Palette = "red"
)

// Token is the presentation of a band: an icon, a color family and the
// concrete symbol and hex color the terminal view draws with.
type Token struct {
	Glyph   Glyph
	Palette Palette
	Symbol  string
	Color   string
}

var tokens = map[Band]Token{
	BandOK:       {Glyph: GlyphCheck, Palette: PaletteGreen, Symbol: "✅", Color: "#2E7D32"},
	BandWarning:  {Glyph: GlyphWarn, Palette: PaletteOrange, Symbol: "⚠️", Color: "#EF6C00"},
	BandCritical: {Glyph: GlyphCross, Palette: PaletteRed, Symbol: "❌", Color: "#C62828"},
}

// Tokens returns the presentation token for b. Unknown bands render as critical.
func Tokens(b Band) Token {
	if t, ok := tokens[b]; ok {
		return t
	}
	return tokens[BandCritical]
}
