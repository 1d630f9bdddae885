package application

import (
	"context"
	"errors"

	"github.com/bnema/tabsweep/internal/domain"
	"github.com/bnema/tabsweep/internal/logging"
)

var ErrLoopStopped = errors.New("event loop stopped")

// Event is an inbound host or timer event applied on the loop goroutine.
type Event interface {
	apply(ctx context.Context, s *Scheduler)
}

// ActivityEvent reports that a tab was opened, updated or activated.
type ActivityEvent struct {
	TabID domain.TabID
}

func (e ActivityEvent) apply(ctx context.Context, s *Scheduler) {
	s.Touch(ctx, e.TabID)
}

type ClosedEvent struct {
	TabID domain.TabID
}

func (e ClosedEvent) apply(ctx context.Context, s *Scheduler) {
	s.TabClosed(ctx, e.TabID)
}

type TickEvent struct {
	Name string
	// Result, when set, receives the outcome. It must be buffered.
	Result chan<- error
}

func (e TickEvent) apply(ctx context.Context, s *Scheduler) {
	err := s.HandleTick(ctx, e.Name)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("tick", e.Name).Msg("tick failed")
	}
	if e.Result != nil {
		e.Result <- err
	}
}

type PinEvent struct {
	TabID  domain.TabID
	Pinned bool
	Result chan<- error
}

func (e PinEvent) apply(ctx context.Context, s *Scheduler) {
	err := s.SetPinned(ctx, e.TabID, e.Pinned)
	if e.Result != nil {
		e.Result <- err
	}
}

type SettingsResult struct {
	Settings domain.Settings
	Err      error
}

type SettingsEvent struct {
	Patch  domain.SettingsPatch
	Result chan<- SettingsResult
}

func (e SettingsEvent) apply(ctx context.Context, s *Scheduler) {
	settings, err := s.UpdateSettings(ctx, e.Patch)
	if e.Result != nil {
		e.Result <- SettingsResult{Settings: settings, Err: err}
	}
}

type SnapshotResult struct {
	Snapshot Snapshot
	Err      error
}

type SnapshotEvent struct {
	Result chan<- SnapshotResult
}

func (e SnapshotEvent) apply(ctx context.Context, s *Scheduler) {
	snapshot, err := s.Snapshot(ctx)
	e.Result <- SnapshotResult{Snapshot: snapshot, Err: err}
}

// ReloadEvent re-reads persisted pins and settings after an external edit.
type ReloadEvent struct{}

func (ReloadEvent) apply(ctx context.Context, s *Scheduler) {
	if err := s.Reload(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("reloading state failed")
		return
	}
	logging.FromContext(ctx).Debug().Msg("state reloaded")
}

type funcEvent func(ctx context.Context)

func (f funcEvent) apply(ctx context.Context, _ *Scheduler) {
	f(ctx)
}

// Loop serializes every event and timer callback onto a single goroutine.
type Loop struct {
	scheduler *Scheduler
	events    chan Event
	done      chan struct{}
}

func NewLoop(scheduler *Scheduler, buffer int) *Loop {
	if buffer < 0 {
		buffer = 0
	}

	l := &Loop{
		scheduler: scheduler,
		events:    make(chan Event, buffer),
		done:      make(chan struct{}),
	}
	scheduler.SetDispatcher(l.dispatch)

	return l
}

// Run applies events until ctx is cancelled, then cancels pending closes and flushes state.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)

	for {
		select {
		case <-ctx.Done():
			if err := l.scheduler.Shutdown(context.WithoutCancel(ctx)); err != nil {
				logging.FromContext(ctx).Warn().Err(err).Msg("flushing state on shutdown failed")
			}
			return nil
		case event := <-l.events:
			event.apply(ctx, l.scheduler)
		}
	}
}

// Send queues an event. It fails once the loop has stopped.
func (l *Loop) Send(ctx context.Context, event Event) error {
	select {
	case l.events <- event:
		return nil
	case <-l.done:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

func (l *Loop) dispatch(_ context.Context, fn func(ctx context.Context)) {
	select {
	case l.events <- funcEvent(fn):
	case <-l.done:
	}
}
