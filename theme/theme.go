// Package theme resolves the flat display_settings key/value rows into the
// typed configuration consumed by the mobile menu, the TV display and the
// admin settings editor. The settings table itself is schemaless; this
// package is the only place that defines which keys exist and what their
// defaults are.
package theme

import (
	"fmt"
	"strings"

	"github.com/kursatemre/qr-menu-api/models"
)

// Setting keys recognized by the resolver. Rows with any other key are
// ignored.
const (
	KeyBackgroundColor    = "background_color"
	KeyAccentColor        = "accent_color"
	KeyPageBgColor        = "page_bg_color"
	KeyContentAreaBgColor = "content_area_bg_color"
	KeyHeaderBgColor      = "header_bg_color"
	KeyHeaderTextColor    = "header_text_color"
	KeyCategoryBgColor    = "category_bg_color"
	KeyCategoryTextColor  = "category_text_color"
	KeyProductBgColor     = "product_bg_color"
	KeyProductNameColor   = "product_name_color"
	KeyProductDescColor   = "product_desc_color"
	KeyPriceColor         = "price_color"
	KeyPriceBgColor       = "price_bg_color"
	KeyBackgroundPattern  = "background_pattern"
	KeyFontSize           = "font_size"
	KeyBorderRadius       = "border_radius"
	KeyLogoSize           = "logo_size"
	KeyHeaderTitle        = "header_title"
	KeyHeaderSubtitle     = "header_subtitle"
	KeyHeaderLogoURL      = "header_logo_url"
	KeyFooterText         = "footer_text"
	KeyFooterLogoURL      = "footer_logo_url"
)

// Theme is the fully resolved display configuration. Every field is always
// populated; renderers never see a partial theme.
type Theme struct {
	BackgroundColor    string `json:"background_color"`
	AccentColor        string `json:"accent_color"`
	PageBgColor        string `json:"page_bg_color"`
	ContentAreaBgColor string `json:"content_area_bg_color"`
	HeaderBgColor      string `json:"header_bg_color"`
	HeaderTextColor    string `json:"header_text_color"`
	CategoryBgColor    string `json:"category_bg_color"`
	CategoryTextColor  string `json:"category_text_color"`
	ProductBgColor     string `json:"product_bg_color"`
	ProductNameColor   string `json:"product_name_color"`
	ProductDescColor   string `json:"product_desc_color"`
	PriceColor         string `json:"price_color"`
	PriceBgColor       string `json:"price_bg_color"`
	BackgroundPattern  string `json:"background_pattern"`
	FontSize           string `json:"font_size"`
	BorderRadius       string `json:"border_radius"`
	LogoSize           string `json:"logo_size"`
	HeaderTitle        string `json:"header_title"`
	HeaderSubtitle     string `json:"header_subtitle"`
	HeaderLogoURL      string `json:"header_logo_url"`
	FooterText         string `json:"footer_text"`
	FooterLogoURL      string `json:"footer_logo_url"`
}

// Defaults returns the theme used when no settings rows exist at all.
func Defaults() Theme {
	return Theme{
		BackgroundColor:    "#ffffff",
		AccentColor:        "#ef4444",
		PageBgColor:        "#f9fafb",
		ContentAreaBgColor: "#ffffff",
		HeaderBgColor:      "#1f2937",
		HeaderTextColor:    "#ffffff",
		CategoryBgColor:    "#f3f4f6",
		CategoryTextColor:  "#111827",
		ProductBgColor:     "#ffffff",
		ProductNameColor:   "#111827",
		ProductDescColor:   "#6b7280",
		PriceColor:         "#ef4444",
		PriceBgColor:       "#fef2f2",
		BackgroundPattern:  PatternNone,
		FontSize:           FontMedium,
		BorderRadius:       RadiusMedium,
		LogoSize:           LogoMedium,
		HeaderTitle:        "Menümüz",
		HeaderSubtitle:     "Lezzetli yemeklerimizi keşfedin",
		HeaderLogoURL:      "",
		FooterText:         "Afiyet olsun!",
		FooterLogoURL:      "",
	}
}

// Resolve folds the stored rows over the defaults. Unknown keys are skipped;
// enumerated fields keep the stored token only when it is recognized, so a
// value like font_size="huge" decodes to the same theme as an absent row.
func Resolve(rows []models.DisplaySetting) Theme {
	t := Defaults()
	for _, row := range rows {
		v := row.SettingValue
		switch row.SettingKey {
		case KeyBackgroundColor:
			t.BackgroundColor = v
		case KeyAccentColor:
			t.AccentColor = v
		case KeyPageBgColor:
			t.PageBgColor = v
		case KeyContentAreaBgColor:
			t.ContentAreaBgColor = v
		case KeyHeaderBgColor:
			t.HeaderBgColor = v
		case KeyHeaderTextColor:
			t.HeaderTextColor = v
		case KeyCategoryBgColor:
			t.CategoryBgColor = v
		case KeyCategoryTextColor:
			t.CategoryTextColor = v
		case KeyProductBgColor:
			t.ProductBgColor = v
		case KeyProductNameColor:
			t.ProductNameColor = v
		case KeyProductDescColor:
			t.ProductDescColor = v
		case KeyPriceColor:
			t.PriceColor = v
		case KeyPriceBgColor:
			t.PriceBgColor = v
		case KeyBackgroundPattern:
			if _, ok := patternCSS[v]; ok {
				t.BackgroundPattern = v
			}
		case KeyFontSize:
			if _, ok := fontScale[v]; ok {
				t.FontSize = v
			}
		case KeyBorderRadius:
			if _, ok := radiusRem[v]; ok {
				t.BorderRadius = v
			}
		case KeyLogoSize:
			if _, ok := logoPixels[v]; ok {
				t.LogoSize = v
			}
		case KeyHeaderTitle:
			t.HeaderTitle = v
		case KeyHeaderSubtitle:
			t.HeaderSubtitle = v
		case KeyHeaderLogoURL:
			t.HeaderLogoURL = v
		case KeyFooterText:
			t.FooterText = v
		case KeyFooterLogoURL:
			t.FooterLogoURL = v
		}
	}
	return t
}

// Rows flattens the theme back into the stored row set, one row per
// recognized key. Upserting the result twice leaves the store unchanged.
func (t Theme) Rows() []models.DisplaySetting {
	pairs := []struct{ key, value string }{
		{KeyBackgroundColor, t.BackgroundColor},
		{KeyAccentColor, t.AccentColor},
		{KeyPageBgColor, t.PageBgColor},
		{KeyContentAreaBgColor, t.ContentAreaBgColor},
		{KeyHeaderBgColor, t.HeaderBgColor},
		{KeyHeaderTextColor, t.HeaderTextColor},
		{KeyCategoryBgColor, t.CategoryBgColor},
		{KeyCategoryTextColor, t.CategoryTextColor},
		{KeyProductBgColor, t.ProductBgColor},
		{KeyProductNameColor, t.ProductNameColor},
		{KeyProductDescColor, t.ProductDescColor},
		{KeyPriceColor, t.PriceColor},
		{KeyPriceBgColor, t.PriceBgColor},
		{KeyBackgroundPattern, t.BackgroundPattern},
		{KeyFontSize, t.FontSize},
		{KeyBorderRadius, t.BorderRadius},
		{KeyLogoSize, t.LogoSize},
		{KeyHeaderTitle, t.HeaderTitle},
		{KeyHeaderSubtitle, t.HeaderSubtitle},
		{KeyHeaderLogoURL, t.HeaderLogoURL},
		{KeyFooterText, t.FooterText},
		{KeyFooterLogoURL, t.FooterLogoURL},
	}

	rows := make([]models.DisplaySetting, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, models.DisplaySetting{
			SettingKey:   p.key,
			SettingValue: p.value,
		})
	}
	return rows
}

// Sanitized returns a copy with every enumerated field coerced to a
// recognized token. Used before persisting an admin-submitted theme so the
// store never accumulates values Resolve would discard.
func (t Theme) Sanitized() Theme {
	if _, ok := patternCSS[t.BackgroundPattern]; !ok {
		t.BackgroundPattern = PatternNone
	}
	if _, ok := fontScale[t.FontSize]; !ok {
		t.FontSize = FontMedium
	}
	if _, ok := radiusRem[t.BorderRadius]; !ok {
		t.BorderRadius = RadiusMedium
	}
	if _, ok := logoPixels[t.LogoSize]; !ok {
		t.LogoSize = LogoMedium
	}
	return t
}

// Derived holds the CSS-ready values the rendering surfaces consume.
type Derived struct {
	FontScale    float64 `json:"font_scale"`
	BorderRadius string  `json:"border_radius_css"`
	LogoSizePx   int     `json:"logo_size_px"`
	PatternCSS   string  `json:"pattern_css"`
}

// Derived maps the enumerated fields through the fixed lookup tables.
func (t Theme) Derived() Derived {
	return Derived{
		FontScale:    t.FontScale(),
		BorderRadius: t.RadiusCSS(),
		LogoSizePx:   t.LogoPixels(),
		PatternCSS:   t.PatternCSS(),
	}
}

func (t Theme) FontScale() float64 {
	if s, ok := fontScale[t.FontSize]; ok {
		return s
	}
	return fontScale[FontMedium]
}

func (t Theme) RadiusCSS() string {
	rem := radiusRem[RadiusMedium]
	if r, ok := radiusRem[t.BorderRadius]; ok {
		rem = r
	}
	if rem == 0 {
		return "0"
	}
	return fmt.Sprintf("%grem", rem)
}

func (t Theme) LogoPixels() int {
	if px, ok := logoPixels[t.LogoSize]; ok {
		return px
	}
	return logoPixels[LogoMedium]
}

// PatternCSS renders the background-image declaration for the configured
// pattern, tinted with the accent color.
func (t Theme) PatternCSS() string {
	tmpl, ok := patternCSS[t.BackgroundPattern]
	if !ok {
		tmpl = patternCSS[PatternNone]
	}
	if tmpl == "" {
		return ""
	}
	return strings.ReplaceAll(tmpl, "{color}", t.AccentColor)
}
