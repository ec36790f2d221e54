package theme

// Recognized tokens for the enumerated settings. Anything else stored in
// the table decodes to the default token.
const (
	PatternNone     = "none"
	PatternDots     = "dots"
	PatternGrid     = "grid"
	PatternDiagonal = "diagonal"
	PatternWaves    = "waves"

	FontSmall  = "small"
	FontMedium = "medium"
	FontLarge  = "large"
	FontXLarge = "xlarge"

	RadiusNone   = "none"
	RadiusSmall  = "small"
	RadiusMedium = "medium"
	RadiusLarge  = "large"

	LogoSmall  = "small"
	LogoMedium = "medium"
	LogoLarge  = "large"
	LogoXLarge = "xlarge"
)

var fontScale = map[string]float64{
	FontSmall:  0.9,
	FontMedium: 1.0,
	FontLarge:  1.1,
	FontXLarge: 1.2,
}

var radiusRem = map[string]float64{
	RadiusNone:   0,
	RadiusSmall:  0.375,
	RadiusMedium: 0.5,
	RadiusLarge:  1,
}

var logoPixels = map[string]int{
	LogoSmall:  64,
	LogoMedium: 96,
	LogoLarge:  128,
	LogoXLarge: 160,
}

// background-image declarations with {color} standing in for the accent
// color. The alpha suffixes piggyback on 8-digit hex notation.
var patternCSS = map[string]string{
	PatternNone:     "",
	PatternDots:     "radial-gradient(circle, {color}30 2px, transparent 2px)",
	PatternGrid:     "linear-gradient({color}20 1.5px, transparent 1.5px), linear-gradient(90deg, {color}20 1.5px, transparent 1.5px)",
	PatternDiagonal: "repeating-linear-gradient(45deg, {color}15, {color}15 2px, transparent 2px, transparent 12px)",
	PatternWaves:    "repeating-radial-gradient(circle at 0 0, transparent 0, {color}15 15px, transparent 30px)",
}
