package storage

import "fyne.io/fyne/v2"

// PreferencesStore adapts fyne application preferences to Store.
//
// fyne.Preferences has no presence check, so each getter reads the key with
// two different fallbacks: a stored value returns the same result both times.
type PreferencesStore struct {
	prefs fyne.Preferences
}

// NewPreferencesStore wraps prefs, typically fyne.App.Preferences().
func NewPreferencesStore(prefs fyne.Preferences) *PreferencesStore {
	return &PreferencesStore{prefs: prefs}
}

func (store *PreferencesStore) Bool(key string) (bool, bool) {
	first := store.prefs.BoolWithFallback(key, true)
	second := store.prefs.BoolWithFallback(key, false)
	if first != second {
		return false, false
	}
	return first, true
}

func (store *PreferencesStore) SetBool(key string, value bool) error {
	store.prefs.SetBool(key, value)
	return nil
}

func (store *PreferencesStore) Float(key string) (float64, bool) {
	first := store.prefs.FloatWithFallback(key, -1)
	second := store.prefs.FloatWithFallback(key, -2)
	if first != second {
		return 0, false
	}
	return first, true
}

func (store *PreferencesStore) SetFloat(key string, value float64) error {
	store.prefs.SetFloat(key, value)
	return nil
}

func (store *PreferencesStore) String(key string) (string, bool) {
	first := store.prefs.StringWithFallback(key, "\x00absent-a")
	second := store.prefs.StringWithFallback(key, "\x00absent-b")
	if first != second {
		return "", false
	}
	return first, true
}

func (store *PreferencesStore) SetString(key string, value string) error {
	store.prefs.SetString(key, value)
	return nil
}
