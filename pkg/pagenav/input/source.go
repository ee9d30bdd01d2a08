// Package input reads directional gestures from Linux evdev devices: arrow
// keys, d-pads and touch panels.
//
// Events are read on a background goroutine and queued; Dispatch delivers
// them on the caller's goroutine, so the navigation manager is only ever
// touched from the UI thread.
package input

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/BrandonKowalski/pagenav/pkg/pagenav/constants"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/internal"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/toolkit"
	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

var ErrAlreadyRunning = errors.New("input source already running")

// queueSize bounds gestures waiting for Dispatch; extra gestures are dropped.
const queueSize = 16

// EventReader is the part of *evdev.InputDevice the source reads from.
type EventReader interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

type subscriber struct {
	fn      func(constants.Direction)
	removed bool
}

// Source is a toolkit.GestureSource fed by an evdev device.
type Source struct {
	dev     EventReader
	tracker *tracker
	queue   chan constants.Direction

	running *atomic.Bool
	dropped *atomic.Int64
	read    *atomic.Int64

	closeOnce sync.Once
	done      chan struct{}

	subs   []*subscriber
	logger *slog.Logger
}

// Open opens the evdev node at path.
func Open(path string, threshold int32) (*Source, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input device %s: %w", path, err)
	}

	s := NewSource(dev, threshold)
	name, _ := dev.Name()
	s.logger.Info("Opened input device", "path", path, "name", name)
	return s, nil
}

// NewSource wraps an already opened reader. A threshold of zero selects
// DefaultSwipeThreshold.
func NewSource(dev EventReader, threshold int32) *Source {
	return &Source{
		dev:     dev,
		tracker: newTracker(threshold),
		queue:   make(chan constants.Direction, queueSize),
		running: atomic.NewBool(false),
		dropped: atomic.NewInt64(0),
		read:    atomic.NewInt64(0),
		done:    make(chan struct{}),
		logger:  internal.Logger("input"),
	}
}

// Start reads events until ctx is cancelled, the device fails or Close is called.
func (s *Source) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	go s.loop()
	go func() {
		select {
		case <-ctx.Done():
			s.Close()
		case <-s.done:
		}
	}()
	return nil
}

func (s *Source) loop() {
	defer s.running.Store(false)

	for {
		ev, err := s.dev.ReadOne()
		if err != nil {
			select {
			case <-s.done:
			default:
				s.logger.Error("Input device read failed", "error", err)
			}
			return
		}
		s.read.Inc()

		dir := s.tracker.feed(ev)
		if dir == constants.DirectionNone {
			continue
		}

		select {
		case s.queue <- dir:
		default:
			s.dropped.Inc()
			s.logger.Warn("Gesture queue full, dropping", "gesture", dir.String())
		}
	}
}

// Running reports whether the read loop is active.
func (s *Source) Running() bool { return s.running.Load() }

// Dropped returns how many gestures were discarded because Dispatch fell behind.
func (s *Source) Dropped() int64 { return s.dropped.Load() }

// EventsRead returns how many raw events have been read.
func (s *Source) EventsRead() int64 { return s.read.Load() }

// Pending returns how many gestures are waiting for Dispatch.
func (s *Source) Pending() int { return len(s.queue) }

// OnGesture implements toolkit.GestureSource.
func (s *Source) OnGesture(_ toolkit.Surface, fn func(constants.Direction)) toolkit.Binding {
	sub := &subscriber{fn: fn}
	s.subs = append(s.subs, sub)
	return toolkit.BindingFunc(func() {
		sub.removed = true
		live := s.subs[:0]
		for _, other := range s.subs {
			if !other.removed {
				live = append(live, other)
			}
		}
		s.subs = live
	})
}

// Dispatch delivers queued gestures to subscribers and returns how many were
// delivered. Call it from the UI thread once per frame.
func (s *Source) Dispatch() int {
	n := 0
	for {
		select {
		case dir := <-s.queue:
			for _, sub := range append([]*subscriber(nil), s.subs...) {
				if !sub.removed {
					sub.fn(dir)
				}
			}
			n++
		default:
			return n
		}
	}
}

// Close stops the read loop and closes the device.
func (s *Source) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.dev.Close()
	})
	return err
}
