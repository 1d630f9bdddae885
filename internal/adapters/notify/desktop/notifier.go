package desktop

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/bnema/tabsweep/internal/domain"
	"github.com/bnema/tabsweep/internal/ports"
)

var ErrUnavailable = errors.New("notify-send command unavailable")

const (
	appName = "tabsweep"
	summary = "Tab Closing Soon"
)

type runFunc func(ctx context.Context, args ...string) (stderr string, err error)

// Notifier shows warnings as desktop notifications through notify-send.
type Notifier struct {
	run runFunc
}

var _ ports.Notifier = (*Notifier)(nil)

func NewNotifier() *Notifier {
	return &Notifier{run: runNotifySend}
}

func (n *Notifier) Warn(ctx context.Context, warning domain.Warning) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body := warning.Message
	if warning.Title != "" {
		body = warning.Title + "\n" + warning.Message
	}

	expire := strconv.FormatInt(domain.WarningWindow.Milliseconds(), 10)
	stderr, err := n.run(ctx, "--app-name", appName, "--urgency", "normal", "--expire-time", expire, summary, body)
	if err != nil {
		return formatError(warning.TabID, err, stderr)
	}

	return nil
}

func runNotifySend(ctx context.Context, args ...string) (string, error) {
	path, err := exec.LookPath("notify-send")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", ErrUnavailable
		}
		return "", fmt.Errorf("locate notify-send command: %w", err)
	}

	cmd := exec.CommandContext(ctx, path, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err = cmd.Run()
	return strings.TrimSpace(stderr.String()), err
}

func formatError(id domain.TabID, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("notify-send warning for tab %q: %w", id, err)
	}

	return fmt.Errorf("notify-send warning for tab %q: %w: %s", id, err, stderr)
}
