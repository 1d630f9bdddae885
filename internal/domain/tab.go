package domain

import "strings"

// TabID identifies an open tab. Hosts never reuse an id after the tab closes.
type TabID string

type Tab struct {
	ID         TabID
	WindowID   string
	Title      string
	URL        string
	FavIconURL string
	// Focused is true for the active tab of its window.
	Focused bool
}

// DisplayTitle returns the title shown in warnings and listings.
func (t Tab) DisplayTitle() string {
	if title := strings.TrimSpace(t.Title); title != "" {
		return title
	}
	if url := strings.TrimSpace(t.URL); url != "" {
		return url
	}
	return "Tab"
}

func (id TabID) Valid() bool {
	return strings.TrimSpace(string(id)) != ""
}
