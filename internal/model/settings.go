package model

// Settings holds user preferences (singleton).
type Settings struct {
	Key      string `json:"-"`
	DarkMode bool   `json:"darkMode"`
}

// SetKey sets the database key for the settings record.
func (s *Settings) SetKey(key string) {
	s.Key = key
}

// GetKey returns the database key for the settings record.
func (s *Settings) GetKey() string {
	return s.Key
}

// DefaultSettings returns the settings a fresh install starts with.
func DefaultSettings() *Settings {
	return &Settings{
		Key:      KeySettings,
		DarkMode: false,
	}
}

// SettingsPatch is a partial settings update. Nil fields keep their
// previous value.
type SettingsPatch struct {
	DarkMode *bool
}

// Merge applies the patch and returns the updated settings copy.
func (s *Settings) Merge(patch SettingsPatch) *Settings {
	merged := *s
	if patch.DarkMode != nil {
		merged.DarkMode = *patch.DarkMode
	}
	return &merged
}
