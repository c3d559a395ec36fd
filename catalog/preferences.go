package catalog

import (
	"context"
	"encoding/json"
	"errors"
)

// Preferences is the last filter and sort a visitor used.
type Preferences struct {
	Filter FilterState `json:"filter"`
	Sort   SortSpec    `json:"sort"`
}

func DefaultPreferences() Preferences {
	return Preferences{Sort: DefaultSort}
}

// PreferenceStore persists encoded preferences under a caller-chosen key.
// Load returns (nil, nil) when nothing is stored.
type PreferenceStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

var errNoStore = errors.New("catalog: no preference store")

// LoadPreferences never fails: a missing store, a missing key, a read error or
// a malformed payload all yield DefaultPreferences. A stored sort written
// with aliases or other casing comes back in canonical form.
func LoadPreferences(ctx context.Context, store PreferenceStore, key string) Preferences {
	if store == nil || key == "" {
		return DefaultPreferences()
	}

	data, err := store.Load(ctx, key)
	if err != nil || len(data) == 0 {
		return DefaultPreferences()
	}

	var prefs Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return DefaultPreferences()
	}
	spec, ok := prefs.Sort.Normalize()
	if !ok {
		return DefaultPreferences()
	}
	prefs.Sort = spec
	return prefs
}

func SavePreferences(ctx context.Context, store PreferenceStore, key string, prefs Preferences) error {
	if store == nil || key == "" {
		return errNoStore
	}
	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return store.Save(ctx, key, data)
}
