package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/mindcare/internal/model"
)

type StoreSuite struct {
	suite.Suite
	store *Store
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.store = New(DefaultCatalog())
}

func (s *StoreSuite) TestDefaultsToEnglish() {
	s.Equal(model.LanguageEnglish, s.store.Language())
	s.Equal("Home", s.store.Translate("nav.home"))
}

func (s *StoreSuite) TestTranslatePresentKeyEnglish() {
	s.Equal("Your Mental Wellness Companion", s.store.Translate("hero.title"))
}

func (s *StoreSuite) TestTranslatePresentKeyHindi() {
	s.store.SetLanguage(model.LanguageHindi)
	s.Equal("होम", s.store.Translate("nav.home"))
	s.Equal("संकट हेल्पलाइन: 112", s.store.Translate("emergency.helpline"))
}

func (s *StoreSuite) TestTranslateAbsentKeyReturnsKey() {
	s.Equal("missing.key", s.store.Translate("missing.key"))

	s.store.SetLanguage(model.LanguageHindi)
	s.Equal("missing.key", s.store.Translate("missing.key"))
}

func (s *StoreSuite) TestTranslateKeyOnlyInEnglishFallsBackToKeyInHindi() {
	s.store.SetLanguage(model.LanguageHindi)
	s.Equal("auth.passwordMismatch", s.store.Translate("auth.passwordMismatch"))
}

func (s *StoreSuite) TestUnknownLanguageTranslatesToKey() {
	s.store.SetLanguage("fr")
	s.Equal(model.Language("fr"), s.store.Language())
	s.Equal("nav.home", s.store.Translate("nav.home"))
}

func (s *StoreSuite) TestEmptyEntryFallsBackToKey() {
	store := New(Catalog{model.LanguageEnglish: Table{"blank": ""}})
	s.Equal("blank", store.Translate("blank"))
}

func (s *StoreSuite) TestSwitchingBackRestoresEnglish() {
	s.store.SetLanguage(model.LanguageHindi)
	s.store.SetLanguage(model.LanguageEnglish)
	s.Equal("Login", s.store.Translate("nav.login"))
}

func TestCatalogKeysHaveText(t *testing.T) {
	for lang, table := range DefaultCatalog() {
		for key, text := range table {
			assert.NotEmpty(t, text, "%s: %s", lang, key)
		}
	}
}

func TestHindiKeysExistInEnglish(t *testing.T) {
	catalog := DefaultCatalog()
	for key := range catalog[model.LanguageHindi] {
		assert.Contains(t, catalog[model.LanguageEnglish], key)
	}
}

func TestNegotiate(t *testing.T) {
	tests := []struct {
		header string
		want   model.Language
	}{
		{"", model.LanguageEnglish},
		{"en-US,en;q=0.9", model.LanguageEnglish},
		{"hi-IN,hi;q=0.9,en;q=0.8", model.LanguageHindi},
		{"fr-FR", model.LanguageEnglish},
		{"de;q=0.9,hi;q=0.5", model.LanguageHindi},
		{"not a header;;", model.LanguageEnglish},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, Negotiate(tt.header))
		})
	}
}

func TestParseLanguage(t *testing.T) {
	lang, ok := ParseLanguage("HI")
	assert.True(t, ok)
	assert.Equal(t, model.LanguageHindi, lang)

	lang, ok = ParseLanguage("en-GB")
	assert.True(t, ok)
	assert.Equal(t, model.LanguageEnglish, lang)

	_, ok = ParseLanguage("fr")
	assert.False(t, ok)

	_, ok = ParseLanguage("")
	assert.False(t, ok)
}
