package status

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/tabsweep/internal/application"
	"github.com/bnema/tabsweep/internal/domain"
	"github.com/charmbracelet/lipgloss"
	units "github.com/docker/go-units"
)

const barWidth = 24

type RenderOptions struct {
	Now time.Time
}

// RenderStatus renders the persisted settings, pins and last countdowns.
func RenderStatus(status application.PersistedStatus, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderStatusView(status, opts, s)
	})
}

// RenderArchive renders closed tabs, newest first.
func RenderArchive(entries []domain.ClosedEntry, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderArchiveView(entries, opts, s)
	})
}

func renderStatusView(status application.PersistedStatus, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Tab Sweep"),
		s.header.Render(fmt.Sprintf(
			"close after %s idle, keep at most %d tabs",
			formatDuration(status.Settings.InactivityLimit),
			status.Settings.MaxTabs,
		)),
	}

	if len(status.Pins) > 0 {
		ids := make([]string, 0, len(status.Pins))
		for _, id := range status.Pins {
			ids = append(ids, string(id))
		}
		lines = append(lines, s.pinned.Render("pinned: "+strings.Join(ids, ", ")))
	}

	if len(status.Countdowns) == 0 {
		lines = append(lines, s.section.Render(s.empty.Render("No tabs scheduled for closing.")))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, countdown := range status.Countdowns {
		lines = append(lines, s.section.Render(renderCountdown(countdown, status.Settings, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderCountdown(countdown domain.Countdown, settings domain.Settings, opts RenderOptions, s styles) string {
	title := countdown.Title
	if title == "" {
		title = countdown.URL
	}
	if title == "" {
		title = "Tab"
	}

	remaining := countdown.Remaining
	if !opts.Now.IsZero() && !countdown.ComputedAt.IsZero() {
		remaining -= opts.Now.Sub(countdown.ComputedAt)
	}

	meta := fmt.Sprintf("closes in %s", formatDuration(remaining))
	if remaining <= 0 {
		meta = "closing now"
	}

	line := lipgloss.JoinHorizontal(
		lipgloss.Top,
		renderProgressBar(remaining, settings.InactivityLimit, s),
		" ",
		s.detail.Render(meta),
	)
	if countdown.Warned {
		line += " " + s.warning.Render("[warned]")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.tab.Render(fmt.Sprintf("%s (%s)", title, countdown.TabID)),
		line,
	)
}

func renderArchiveView(entries []domain.ClosedEntry, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Closed Tabs"),
		s.header.Render(fmt.Sprintf("entries: %d", len(entries))),
	}

	if len(entries) == 0 {
		lines = append(lines, s.empty.Render("No closed tabs."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, entry := range entries {
		title := strings.TrimSpace(entry.Title)
		if title == "" {
			title = entry.URL
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			s.tab.Render(title),
			s.detail.Render(entry.URL),
			s.header.Render(closedAgo(entry.TimeClosed, opts.Now)),
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderProgressBar(remaining, limit time.Duration, s styles) string {
	fraction := 0.0
	if limit > 0 {
		fraction = float64(remaining) / float64(limit)
	}
	filled := int(math.Round(barWidth * clampFraction(fraction)))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", barWidth-filled)),
		s.barBracket.Render("]"),
	)
}

func clampFraction(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func closedAgo(closedAt, now time.Time) string {
	if now.IsZero() {
		return "closed " + closedAt.Format(time.RFC3339)
	}
	if closedAt.After(now) {
		return "closed just now"
	}
	return "closed " + strings.ToLower(units.HumanDuration(now.Sub(closedAt))) + " ago"
}

// formatDuration prints short durations exactly and long ones the way people say them.
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return d.Round(time.Second).String()
	}
	return strings.ToLower(units.HumanDuration(d))
}
