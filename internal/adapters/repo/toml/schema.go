package toml

import "fmt"

const currentSchemaVersion = 1

// fileSchema is the whole state document. Each section belongs to one component and is
// rewritten only by that component's repository methods.
type fileSchema struct {
	Version    int                 `toml:"version"`
	Settings   *settingsSchema     `toml:"settings,omitempty"`
	Pins       map[string]bool     `toml:"pins,omitempty"`
	Countdowns []countdownSchema   `toml:"countdowns,omitempty"`
	Archive    []closedEntrySchema `toml:"archive,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported state schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type settingsSchema struct {
	InactivityLimit string `toml:"inactivity_limit"`
	MaxTabs         int    `toml:"max_tabs"`
}

type countdownSchema struct {
	TabID      string `toml:"tab_id"`
	Title      string `toml:"title,omitempty"`
	URL        string `toml:"url,omitempty"`
	Remaining  string `toml:"remaining"`
	Warned     bool   `toml:"warned"`
	ComputedAt string `toml:"computed_at"`
}

type closedEntrySchema struct {
	ID         string `toml:"id"`
	TabID      string `toml:"tab_id"`
	Title      string `toml:"title"`
	URL        string `toml:"url"`
	FavIconURL string `toml:"fav_icon_url,omitempty"`
	TimeClosed string `toml:"time_closed"`
}
