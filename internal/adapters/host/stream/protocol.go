// Package stream connects the scheduler to a host that speaks newline-delimited JSON.
package stream

import (
	"fmt"
	"time"

	"github.com/bnema/tabsweep/internal/application"
	"github.com/bnema/tabsweep/internal/domain"
)

// Inbound message types.
const (
	TypeOpened         = "opened"
	TypeUpdated        = "updated"
	TypeActivated      = "activated"
	TypeClosed         = "closed"
	TypeTick           = "tick"
	TypeSetPinned      = "set_pinned"
	TypeGetSnapshot    = "get_snapshot"
	TypeUpdateSettings = "update_settings"
)

// Outbound message types.
const (
	TypeWarn     = "warn"
	TypeClose    = "close"
	TypeSnapshot = "snapshot"
	TypeAck      = "ack"
	TypeError    = "error"
)

type inboundMessage struct {
	Type      string           `json:"type"`
	RequestID string           `json:"request_id,omitempty"`
	ID        string           `json:"id,omitempty"`
	Tab       *tabMessage      `json:"tab,omitempty"`
	Name      string           `json:"name,omitempty"`
	Pinned    bool             `json:"pinned,omitempty"`
	Settings  *settingsMessage `json:"settings,omitempty"`
}

type tabMessage struct {
	ID         string `json:"id"`
	WindowID   string `json:"window_id,omitempty"`
	Title      string `json:"title,omitempty"`
	URL        string `json:"url,omitempty"`
	FavIconURL string `json:"fav_icon_url,omitempty"`
	Active     bool   `json:"active,omitempty"`
}

func (m tabMessage) toDomain() domain.Tab {
	return domain.Tab{
		ID:         domain.TabID(m.ID),
		WindowID:   m.WindowID,
		Title:      m.Title,
		URL:        m.URL,
		FavIconURL: m.FavIconURL,
		Focused:    m.Active,
	}
}

// settingsMessage carries durations as Go duration strings ("30m", "90s").
type settingsMessage struct {
	InactivityLimit string `json:"inactivity_limit,omitempty"`
	MaxTabs         *int   `json:"max_tabs,omitempty"`
}

func (m settingsMessage) toPatch() (domain.SettingsPatch, error) {
	var patch domain.SettingsPatch
	if m.InactivityLimit != "" {
		limit, err := time.ParseDuration(m.InactivityLimit)
		if err != nil {
			return domain.SettingsPatch{}, fmt.Errorf("%w: inactivity limit %q: %w", domain.ErrInvalidSettings, m.InactivityLimit, err)
		}
		patch.InactivityLimit = &limit
	}
	patch.MaxTabs = m.MaxTabs

	return patch, nil
}

func fromSettings(settings domain.Settings) *settingsMessage {
	maxTabs := settings.MaxTabs
	return &settingsMessage{
		InactivityLimit: settings.InactivityLimit.String(),
		MaxTabs:         &maxTabs,
	}
}

type outboundMessage struct {
	Type      string           `json:"type"`
	RequestID string           `json:"request_id,omitempty"`
	ID        string           `json:"id,omitempty"`
	Title     string           `json:"title,omitempty"`
	Message   string           `json:"message,omitempty"`
	ClosesAt  *time.Time       `json:"closes_at,omitempty"`
	Settings  *settingsMessage `json:"settings,omitempty"`
	Snapshot  *snapshotMessage `json:"snapshot,omitempty"`
	Error     string           `json:"error,omitempty"`
}

type snapshotMessage struct {
	TakenAt   time.Time        `json:"taken_at"`
	Settings  *settingsMessage `json:"settings"`
	OpenTabs  int              `json:"open_tabs"`
	OverLimit bool             `json:"over_limit"`
	Tabs      []tabStatus      `json:"tabs"`
}

type tabStatus struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	URL       string            `json:"url,omitempty"`
	Focused   bool              `json:"focused"`
	Pinned    bool              `json:"pinned"`
	Warning   string            `json:"warning"`
	ClosesAt  *time.Time        `json:"closes_at,omitempty"`
	Countdown *countdownMessage `json:"countdown,omitempty"`
}

type countdownMessage struct {
	RemainingSeconds float64 `json:"remaining_seconds"`
	Warned           bool    `json:"warned"`
}

func fromSnapshot(snapshot application.Snapshot) *snapshotMessage {
	msg := &snapshotMessage{
		TakenAt:   snapshot.TakenAt,
		Settings:  fromSettings(snapshot.Settings),
		OpenTabs:  snapshot.OpenTabs,
		OverLimit: snapshot.OverLimit,
		Tabs:      make([]tabStatus, 0, len(snapshot.Tabs)),
	}

	for _, status := range snapshot.Tabs {
		entry := tabStatus{
			ID:      string(status.Tab.ID),
			Title:   status.Tab.DisplayTitle(),
			URL:     status.Tab.URL,
			Focused: status.Tab.Focused,
			Pinned:  status.Pinned,
			Warning: string(status.Warning),
		}
		if !status.ClosesAt.IsZero() {
			closesAt := status.ClosesAt
			entry.ClosesAt = &closesAt
		}
		if status.Countdown != nil {
			entry.Countdown = &countdownMessage{
				RemainingSeconds: status.Countdown.Remaining.Seconds(),
				Warned:           status.Countdown.Warned,
			}
		}
		msg.Tabs = append(msg.Tabs, entry)
	}

	return msg
}
