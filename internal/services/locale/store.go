package locale

import (
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/mcoot/mindcare/internal/model"
)

// Store holds the active language of one profile. It is never persisted.
type Store struct {
	catalog Catalog

	mu       sync.RWMutex
	language model.Language
}

// New creates a Store with the default language active
func New(catalog Catalog) *Store {
	return &Store{
		catalog:  catalog,
		language: model.DefaultLanguage,
	}
}

// SetLanguage replaces the active language. The tag is not validated; an
// unknown tag makes every key translate to itself.
func (s *Store) SetLanguage(tag model.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = tag
}

// Language returns the active language
func (s *Store) Language() model.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// Translate returns the display text for key in the active language,
// or the key itself when there is no non-empty entry
func (s *Store) Translate(key string) string {
	return s.catalog.Translate(s.Language(), key)
}

// Translate looks key up in the table for lang, falling back to the key
func (c Catalog) Translate(lang model.Language, key string) string {
	if text := c[lang][key]; text != "" {
		return text
	}
	return key
}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Hindi,
})

// Negotiate picks a supported language from an Accept-Language header value,
// defaulting to English
func Negotiate(acceptLanguage string) model.Language {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return model.DefaultLanguage
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return model.DefaultLanguage
	}
	if index == 1 {
		return model.LanguageHindi
	}
	return model.LanguageEnglish
}

// ParseLanguage converts user input such as "hi", "HI" or "hi-IN" into a
// supported language
func ParseLanguage(value string) (model.Language, bool) {
	tag, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	lang := model.Language(base.String())
	if !lang.IsSupported() {
		return "", false
	}
	return lang, true
}
