package model

// Language is a locale tag selecting a translation table
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"

	DefaultLanguage = LanguageEnglish
)

// Languages lists the supported tags in display order
var Languages = []Language{LanguageEnglish, LanguageHindi}

// IsSupported reports whether a translation table exists for the tag
func (l Language) IsSupported() bool {
	for _, lang := range Languages {
		if lang == l {
			return true
		}
	}
	return false
}
