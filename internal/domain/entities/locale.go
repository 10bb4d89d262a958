package entities

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

var ErrUnsupportedLocale = errors.New("unsupported locale")

// Locale selects which parallel text field is read from every localized label.
type Locale string

const (
	LocaleFR Locale = "fr" // French, the default display language
	LocaleAR Locale = "ar" // Arabic
)

// supportedTags order must match the locales returned by ParseLocale.
var supportedTags = []language.Tag{language.French, language.Arabic}

var localeMatcher = language.NewMatcher(supportedTags)

// ParseLocale maps a BCP 47 tag such as "fr", "fr-FR" or "ar-SA" to a supported Locale.
func ParseLocale(s string) (Locale, error) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, s)
	}

	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, s)
	}

	if idx == 1 {
		return LocaleAR, nil
	}
	return LocaleFR, nil
}

// Valid reports whether l is one of the two display languages.
func (l Locale) Valid() bool {
	return l == LocaleFR || l == LocaleAR
}

// Toggle returns the other display language.
func (l Locale) Toggle() Locale {
	if l == LocaleAR {
		return LocaleFR
	}
	return LocaleAR
}

// LocalizedText holds the same text in both display languages.
type LocalizedText struct {
	FR string `json:"fr" yaml:"fr"`
	AR string `json:"ar,omitempty" yaml:"ar,omitempty"`
}

// Text builds a LocalizedText from its French and Arabic forms.
func Text(fr, ar string) LocalizedText {
	return LocalizedText{FR: fr, AR: ar}
}

// Get returns the text for l. Missing Arabic text falls back to French.
func (t LocalizedText) Get(l Locale) string {
	if l == LocaleAR && t.AR != "" {
		return t.AR
	}
	return t.FR
}

func (t LocalizedText) IsZero() bool {
	return t.FR == "" && t.AR == ""
}
