// Package i18n provides the storefront's English and Swahili strings.
// A key missing from a table translates to itself.
package i18n

import (
	"golang.org/x/text/language"
)

// Language is a supported locale code
type Language string

const (
	English Language = "en"
	Swahili Language = "sw"
)

// Default is used when nothing else selects a language
const Default = English

var supported = []language.Tag{language.English, language.Swahili}

var matcher = language.NewMatcher(supported)

// Valid reports whether l has a table
func (l Language) Valid() bool {
	return l == English || l == Swahili
}

// Toggle flips between the two locales
func (l Language) Toggle() Language {
	if l == Swahili {
		return English
	}
	return Swahili
}

// Parse maps a user-supplied code such as "sw-TZ" to a supported language
func Parse(code string) (Language, bool) {
	tag, err := language.Parse(code)
	if err != nil {
		return Default, false
	}
	base, _ := tag.Base()
	switch base.String() {
	case "sw":
		return Swahili, true
	case "en":
		return English, true
	}
	return Default, false
}

// Negotiate picks the best supported language for an Accept-Language header
func Negotiate(acceptLanguage string) Language {
	if acceptLanguage == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default
	}
	if supported[index] == language.Swahili {
		return Swahili
	}
	return English
}

// Translator looks keys up per language
type Translator struct {
	tables map[Language]map[string]string
}

// New returns a translator over the given tables
func New(tables map[Language]map[string]string) *Translator {
	return &Translator{tables: tables}
}

// NewDefault returns a translator over the built-in tables
func NewDefault() *Translator {
	return New(builtin)
}

// T returns the string for key in lang, or key itself when there is none
func (t *Translator) T(lang Language, key string) string {
	if s, ok := t.tables[lang][key]; ok && s != "" {
		return s
	}
	return key
}

// For binds the translator to one language
func (t *Translator) For(lang Language) func(string) string {
	return func(key string) string {
		return t.T(lang, key)
	}
}
