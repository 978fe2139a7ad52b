package storage

import (
	badger "github.com/dgraph-io/badger/v4"
	"github.com/manav03panchal/habitflare/internal/logging"
	"github.com/manav03panchal/habitflare/internal/model"
)

// SettingsRepo provides operations for the Settings singleton.
type SettingsRepo struct {
	db *DB
}

// NewSettingsRepo creates a new settings repository.
func NewSettingsRepo(db *DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// Get retrieves the settings. A missing or unparseable record falls back
// to defaults; corrupt preferences never surface as an error.
func (r *SettingsRepo) Get() (*model.Settings, error) {
	settings := &model.Settings{}
	err := r.db.Get(model.KeySettings, settings)
	if err == nil {
		return settings, nil
	}

	if !IsErrKeyNotFound(err) {
		logging.Warn("settings record unreadable, using defaults", "error", err)
	}
	return model.DefaultSettings(), nil
}

// Update stores the settings.
func (r *SettingsRepo) Update(settings *model.Settings) error {
	settings.Key = model.KeySettings
	return r.db.Set(settings)
}

// ResetAll wipes the habit collection and restores default settings in a
// single transaction. No reader can observe an empty collection paired
// with stale preferences or the reverse.
func ResetAll(db *DB) error {
	keys, err := db.ListByPrefix(model.PrefixHabit + ":")
	if err != nil {
		return err
	}

	return db.Badger().Update(func(txn *badger.Txn) error {
		for _, key := range keys {
			if err := txn.Delete([]byte(key)); err != nil {
				return err
			}
		}
		return txn.Delete([]byte(model.KeySettings))
	})
}
