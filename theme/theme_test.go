package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kursatemre/qr-menu-api/models"
)

func row(key, value string) models.DisplaySetting {
	return models.DisplaySetting{SettingKey: key, SettingValue: value}
}

func TestResolveEmptyInputYieldsDefaults(t *testing.T) {
	assert.Equal(t, Defaults(), Resolve(nil))
	assert.Equal(t, Defaults(), Resolve([]models.DisplaySetting{}))
}

func TestResolveAbsentKeysKeepDefaults(t *testing.T) {
	resolved := Resolve([]models.DisplaySetting{
		row(KeyAccentColor, "#00ff00"),
	})

	assert.Equal(t, "#00ff00", resolved.AccentColor)

	// Every other field stays at its default.
	want := Defaults()
	want.AccentColor = "#00ff00"
	assert.Equal(t, want, resolved)
}

func TestResolveIgnoresUnknownKeys(t *testing.T) {
	resolved := Resolve([]models.DisplaySetting{
		row("not_a_setting", "whatever"),
		row("header_color", "#123456"),
	})

	assert.Equal(t, Defaults(), resolved)
}

func TestResolveUnrecognizedEnumFallsBackToDefault(t *testing.T) {
	resolved := Resolve([]models.DisplaySetting{
		row(KeyFontSize, "huge"),
		row(KeyBorderRadius, "rounded"),
		row(KeyBackgroundPattern, "stripes"),
		row(KeyLogoSize, "gigantic"),
	})

	assert.Equal(t, FontMedium, resolved.FontSize)
	assert.Equal(t, RadiusMedium, resolved.BorderRadius)
	assert.Equal(t, PatternNone, resolved.BackgroundPattern)
	assert.Equal(t, LogoMedium, resolved.LogoSize)

	// The derived multiplier equals the medium default.
	assert.Equal(t, 1.0, resolved.FontScale())
}

func TestResolveRecognizedEnumTokens(t *testing.T) {
	resolved := Resolve([]models.DisplaySetting{
		row(KeyFontSize, FontXLarge),
		row(KeyBorderRadius, RadiusLarge),
		row(KeyBackgroundPattern, PatternDots),
		row(KeyLogoSize, LogoSmall),
	})

	assert.Equal(t, 1.2, resolved.FontScale())
	assert.Equal(t, "1rem", resolved.RadiusCSS())
	assert.Equal(t, 64, resolved.LogoPixels())
	assert.Contains(t, resolved.PatternCSS(), "radial-gradient")
}

func TestRadiusCSSNoneIsZero(t *testing.T) {
	resolved := Resolve([]models.DisplaySetting{row(KeyBorderRadius, RadiusNone)})
	assert.Equal(t, "0", resolved.RadiusCSS())
}

func TestPatternCSSUsesAccentColor(t *testing.T) {
	resolved := Resolve([]models.DisplaySetting{
		row(KeyAccentColor, "#abcdef"),
		row(KeyBackgroundPattern, PatternGrid),
	})

	css := resolved.PatternCSS()
	assert.Contains(t, css, "#abcdef")
	assert.NotContains(t, css, "{color}")
}

func TestPatternCSSNoneIsEmpty(t *testing.T) {
	assert.Equal(t, "", Defaults().PatternCSS())
}

func TestRowsCoversEveryRecognizedKey(t *testing.T) {
	rows := Defaults().Rows()
	require.Len(t, rows, 22)

	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		assert.False(t, seen[r.SettingKey], "duplicate key %s", r.SettingKey)
		seen[r.SettingKey] = true
	}
}

func TestRowsResolveRoundTrip(t *testing.T) {
	original := Defaults()
	original.AccentColor = "#112233"
	original.HeaderTitle = "Akşam Menüsü"
	original.FontSize = FontLarge
	original.BackgroundPattern = PatternWaves

	resolved := Resolve(original.Rows())
	assert.Equal(t, original, resolved)

	// Stable under a second round trip (the upsert idempotence property
	// at the value level).
	assert.Equal(t, resolved.Rows(), Resolve(resolved.Rows()).Rows())
}

func TestSanitizedCoercesBadTokens(t *testing.T) {
	bad := Defaults()
	bad.FontSize = "huge"
	bad.BorderRadius = ""
	bad.BackgroundPattern = "stripes"
	bad.LogoSize = "??"

	clean := bad.Sanitized()
	assert.Equal(t, FontMedium, clean.FontSize)
	assert.Equal(t, RadiusMedium, clean.BorderRadius)
	assert.Equal(t, PatternNone, clean.BackgroundPattern)
	assert.Equal(t, LogoMedium, clean.LogoSize)
}

func TestDerivedDefaults(t *testing.T) {
	d := Defaults().Derived()
	assert.Equal(t, 1.0, d.FontScale)
	assert.Equal(t, "0.5rem", d.BorderRadius)
	assert.Equal(t, 96, d.LogoSizePx)
	assert.Equal(t, "", d.PatternCSS)
}
