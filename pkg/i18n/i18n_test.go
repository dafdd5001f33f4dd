package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { Init(LocaleEN) })

	t.Run("known locale", func(t *testing.T) {
		Init(LocaleES)
		assert.Equal(t, LocaleES, Locale())
	})

	t.Run("unknown locale falls back to english", func(t *testing.T) {
		Init("fr")
		assert.Equal(t, LocaleEN, Locale())
	})
}

func TestT(t *testing.T) {
	t.Cleanup(func() { Init(LocaleEN) })

	t.Run("active table wins", func(t *testing.T) {
		Init(LocaleES)
		assert.Equal(t, es["common.save"], T("common.save"))
		assert.NotEqual(t, en["common.save"], T("common.save"))
	})

	t.Run("missing key falls back to the key itself", func(t *testing.T) {
		Init(LocaleEN)
		assert.Equal(t, "no.such.key", T("no.such.key"))
	})
}

func TestSetLocale(t *testing.T) {
	t.Cleanup(func() { Init(LocaleEN) })

	t.Run("notifies listeners", func(t *testing.T) {
		var got string
		OnChange(func(l string) { got = l })

		SetLocale(LocaleES)
		assert.Equal(t, LocaleES, got)
		assert.Equal(t, LocaleES, Locale())
	})

	t.Run("unknown locale is ignored", func(t *testing.T) {
		Init(LocaleEN)
		SetLocale("de")
		assert.Equal(t, LocaleEN, Locale())
	})
}

// Every key in the English table must have a Spanish translation, and the
// Spanish table must not carry keys English lacks.
func TestTableParity(t *testing.T) {
	for _, key := range Keys() {
		assert.Contains(t, es, key, "missing spanish translation for %s", key)
	}
	for key := range es {
		assert.Contains(t, en, key, "spanish-only key %s", key)
	}
}
