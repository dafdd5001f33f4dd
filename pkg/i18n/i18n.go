// Package i18n provides the locale string tables for the terminal UI.
// Locale selection is process-wide state: it is set once at startup and may
// be changed later through SetLocale, which notifies registered listeners so
// open views can re-render their labels.
package i18n

import (
	"sort"
	"sync"
)

// Supported locales.
const (
	LocaleEN = "en"
	LocaleES = "es"
)

var (
	mu        sync.RWMutex
	locale    = LocaleEN
	listeners []func(string)

	tables = map[string]map[string]string{
		LocaleEN: en,
		LocaleES: es,
	}
)

// Init sets the startup locale. Unknown locales fall back to English.
func Init(l string) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := tables[l]; !ok {
		l = LocaleEN
	}
	locale = l
}

// Locale returns the active locale.
func Locale() string {
	mu.RLock()
	defer mu.RUnlock()
	return locale
}

// SetLocale switches the active locale and notifies listeners. Switching to
// an unknown locale is ignored.
func SetLocale(l string) {
	mu.Lock()
	if _, ok := tables[l]; !ok {
		mu.Unlock()
		return
	}
	locale = l
	notify := make([]func(string), len(listeners))
	copy(notify, listeners)
	mu.Unlock()

	for _, fn := range notify {
		fn(l)
	}
}

// OnChange registers a listener invoked after every locale switch.
func OnChange(fn func(locale string)) {
	mu.Lock()
	defer mu.Unlock()
	listeners = append(listeners, fn)
}

// T looks up a dotted key in the active locale's table, falling back to the
// English table and finally to the key itself so missing entries stay
// visible rather than blank.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if s, ok := tables[locale][key]; ok {
		return s
	}
	if s, ok := en[key]; ok {
		return s
	}
	return key
}

// Keys returns every key present in the English table, sorted. Used by the
// table-completeness test.
func Keys() []string {
	keys := make([]string, 0, len(en))
	for k := range en {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
