package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/tabsweep/internal/domain"
	"github.com/bnema/tabsweep/internal/ports"
)

// Emitter writes outbound messages, one JSON document per line.
type Emitter struct {
	mu  sync.Mutex
	enc *json.Encoder
}

var _ ports.Notifier = (*Emitter)(nil)

func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{enc: json.NewEncoder(w)}
}

func (e *Emitter) Warn(_ context.Context, warning domain.Warning) error {
	closesAt := warning.ClosesAt
	return e.emit(outboundMessage{
		Type:     TypeWarn,
		ID:       string(warning.TabID),
		Title:    warning.Title,
		Message:  warning.Message,
		ClosesAt: &closesAt,
	})
}

func (e *Emitter) emit(msg outboundMessage) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.enc.Encode(msg); err != nil {
		return fmt.Errorf("emit %s message: %w", msg.Type, err)
	}
	return nil
}
