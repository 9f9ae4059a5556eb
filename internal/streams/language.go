package streams

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// LanguageTag parses the Language property, which MediaInfo reports as a
// 2-letter code when one exists and a 3-letter code otherwise.
func (m *Menu) LanguageTag() (language.Tag, bool) {
	return parseLanguage(m.Language())
}

// LanguageName is the English name of the stream language, or the raw
// value when it is not a known code.
func (m *Menu) LanguageName() string {
	raw := m.Language()
	tag, ok := parseLanguage(raw)
	if !ok {
		return raw
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return raw
}

func parseLanguage(value string) (language.Tag, bool) {
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil || tag == language.Und {
		return language.Und, false
	}
	return tag, true
}
