package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is a supported UI language.
type Locale string

const (
	English Locale = "en"
	Arabic  Locale = "ar"

	DefaultLocale = English
)

// Parse accepts "en" or "ar" in any case.
func Parse(s string) (Locale, bool) {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	return l, l.Supported()
}

func (l Locale) Supported() bool {
	return l == English || l == Arabic
}

// Dir is the text direction of the locale.
func (l Locale) Dir() string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

func (l Locale) FontClass() string {
	if l == Arabic {
		return "font-arabic"
	}
	return "font-sans"
}

// Tag is the formatting region for the locale. Arabic always formats as ar-EG.
func (l Locale) Tag() language.Tag {
	if l == Arabic {
		return language.MustParse("ar-EG")
	}
	return language.AmericanEnglish
}

// Name is the English display name used in announcements.
func (l Locale) Name() string {
	if l == Arabic {
		return "Arabic"
	}
	return "English"
}
