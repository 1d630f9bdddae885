package stream

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/tabsweep/internal/application"
	"github.com/bnema/tabsweep/internal/domain"
	"github.com/bnema/tabsweep/internal/logging"
)

const (
	maxLineSize    = 1 << 20
	readBufferSize = 64 << 10
)

// EventSender is the inbound side of the scheduler loop.
type EventSender interface {
	Send(ctx context.Context, event application.Event) error
}

// Server reads host messages, keeps the tab table current and forwards the resulting events
// to the scheduler loop.
type Server struct {
	loop    EventSender
	table   *Table
	emitter *Emitter
}

func NewServer(loop EventSender, table *Table, emitter *Emitter) *Server {
	return &Server{loop: loop, table: table, emitter: emitter}
}

// Serve handles messages from r until it is exhausted or ctx is cancelled. Malformed or
// oversized lines are answered with an error message and do not stop the server.
func (s *Server) Serve(ctx context.Context, r io.Reader) error {
	log := logging.FromContext(ctx)
	reader := bufio.NewReaderSize(r, readBufferSize)

	for {
		line, oversized, err := readLine(reader, maxLineSize)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read host messages: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return nil
		}

		if oversized {
			log.Warn().Int("limit", maxLineSize).Msg("oversized host message dropped")
			s.reply(ctx, outboundMessage{Type: TypeError, Error: fmt.Sprintf("message exceeds %d bytes", maxLineSize)})
			continue
		}
		if len(line) == 0 {
			continue
		}

		var msg inboundMessage
		if err := json.Unmarshal(line, &msg); err != nil {
			log.Warn().Err(err).Msg("malformed host message")
			s.reply(ctx, outboundMessage{Type: TypeError, Error: fmt.Sprintf("decode message: %v", err)})
			continue
		}

		if err := s.handle(ctx, msg); err != nil {
			if errors.Is(err, application.ErrLoopStopped) || errors.Is(err, context.Canceled) {
				return nil
			}
			log.Warn().Err(err).Str("type", msg.Type).Msg("host message rejected")
			s.reply(ctx, outboundMessage{Type: TypeError, RequestID: msg.RequestID, Error: err.Error()})
		}
	}
}

// readLine returns the next newline-terminated line without its terminator. A line longer
// than limit is consumed and reported as oversized with no content. The final line may lack a
// newline; io.EOF is only returned once nothing is left.
func readLine(r *bufio.Reader, limit int) ([]byte, bool, error) {
	var line []byte
	oversized := false
	read := false

	for {
		chunk, err := r.ReadSlice('\n')
		if len(chunk) > 0 {
			read = true
		}
		if !oversized {
			if len(line)+len(chunk) > limit {
				oversized = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}

		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF) && read:
			return bytes.TrimRight(line, "\r\n"), oversized, nil
		case err != nil:
			return nil, false, err
		}
		return bytes.TrimRight(line, "\r\n"), oversized, nil
	}
}

func (s *Server) handle(ctx context.Context, msg inboundMessage) error {
	switch msg.Type {
	case TypeOpened, TypeUpdated:
		if msg.Tab == nil || msg.Tab.ID == "" {
			return fmt.Errorf("%s: missing tab", msg.Type)
		}
		tab := msg.Tab.toDomain()
		s.table.Upsert(tab)
		return s.loop.Send(ctx, application.ActivityEvent{TabID: tab.ID})

	case TypeActivated:
		id, err := requireID(msg)
		if err != nil {
			return err
		}
		if !s.table.Activate(id) {
			logging.FromContext(ctx).Debug().Str("tab_id", string(id)).Msg("activated tab not in table")
		}
		return s.loop.Send(ctx, application.ActivityEvent{TabID: id})

	case TypeClosed:
		id, err := requireID(msg)
		if err != nil {
			return err
		}
		s.table.Remove(id)
		return s.loop.Send(ctx, application.ClosedEvent{TabID: id})

	case TypeTick:
		result := make(chan error, 1)
		if err := s.loop.Send(ctx, application.TickEvent{Name: msg.Name, Result: result}); err != nil {
			return err
		}
		if err := wait(ctx, result); err != nil {
			return err
		}
		return s.ack(ctx, msg, nil)

	case TypeSetPinned:
		id, err := requireID(msg)
		if err != nil {
			return err
		}
		result := make(chan error, 1)
		if err := s.loop.Send(ctx, application.PinEvent{TabID: id, Pinned: msg.Pinned, Result: result}); err != nil {
			return err
		}
		if err := wait(ctx, result); err != nil && !errors.Is(err, domain.ErrStoreUnavailable) {
			return err
		}
		return s.ack(ctx, msg, nil)

	case TypeGetSnapshot:
		result := make(chan application.SnapshotResult, 1)
		if err := s.loop.Send(ctx, application.SnapshotEvent{Result: result}); err != nil {
			return err
		}
		res, err := receive(ctx, result)
		if err != nil {
			return err
		}
		if res.Err != nil {
			return res.Err
		}
		return s.reply(ctx, outboundMessage{Type: TypeSnapshot, RequestID: msg.RequestID, Snapshot: fromSnapshot(res.Snapshot)})

	case TypeUpdateSettings:
		if msg.Settings == nil {
			return fmt.Errorf("%w: missing settings", domain.ErrInvalidSettings)
		}
		patch, err := msg.Settings.toPatch()
		if err != nil {
			return err
		}
		result := make(chan application.SettingsResult, 1)
		if err := s.loop.Send(ctx, application.SettingsEvent{Patch: patch, Result: result}); err != nil {
			return err
		}
		res, err := receive(ctx, result)
		if err != nil {
			return err
		}
		if res.Err != nil && !errors.Is(res.Err, domain.ErrStoreUnavailable) {
			return res.Err
		}
		return s.ack(ctx, msg, fromSettings(res.Settings))

	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownEvent, msg.Type)
	}
}

func (s *Server) ack(ctx context.Context, msg inboundMessage, settings *settingsMessage) error {
	return s.reply(ctx, outboundMessage{Type: TypeAck, RequestID: msg.RequestID, Settings: settings})
}

func (s *Server) reply(ctx context.Context, msg outboundMessage) error {
	if err := s.emitter.emit(msg); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("writing host reply failed")
	}
	return nil
}

func requireID(msg inboundMessage) (domain.TabID, error) {
	id := domain.TabID(msg.ID)
	if !id.Valid() {
		return "", fmt.Errorf("%s: missing id", msg.Type)
	}
	return id, nil
}

func wait(ctx context.Context, result <-chan error) error {
	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func receive[T any](ctx context.Context, result <-chan T) (T, error) {
	select {
	case res := <-result:
		return res, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
