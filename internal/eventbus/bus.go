// Package eventbus fans desktop lifecycle events out to subscribers on a
// background goroutine so publishers on the UI thread never block.
package eventbus

import (
	"sync"
	"sync/atomic"
	"time"
)

const (
	WindowOpened = "window.opened"
	WindowClosed = "window.closed"
	AppLaunched  = "app.launched"
	AppRejected  = "app.rejected"
)

type Event struct {
	Type      string
	Timestamp time.Time
	Data      map[string]interface{}
}

type Handler interface {
	Handle(event Event)
	ID() string
}

type Bus struct {
	subscribers map[string][]Handler
	mu          sync.RWMutex
	buffer      chan Event
	done        chan struct{}
	// closeMu orders Publish against Shutdown so an enqueued event is
	// always seen by the draining dispatcher.
	closeMu sync.RWMutex
	closed  bool
	wg      sync.WaitGroup
	dropped atomic.Int64
}

func NewBus(bufferSize int) *Bus {
	bus := &Bus{
		subscribers: make(map[string][]Handler),
		buffer:      make(chan Event, bufferSize),
		done:        make(chan struct{}),
	}

	bus.startWorker()
	return bus
}

// Publish never blocks; events are dropped when the buffer is full or the
// bus is shut down.
func (b *Bus) Publish(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	b.closeMu.RLock()
	defer b.closeMu.RUnlock()

	if b.closed {
		b.dropped.Add(1)
		return
	}

	select {
	case b.buffer <- event:
	default:
		b.dropped.Add(1)
	}
}

func (b *Bus) Subscribe(eventType string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// Dropped counts events that were never delivered.
func (b *Bus) Dropped() int64 {
	return b.dropped.Load()
}

// Shutdown stops accepting events, drains what is buffered and waits for
// the dispatcher to exit.
func (b *Bus) Shutdown() {
	b.closeMu.Lock()
	if !b.closed {
		b.closed = true
		close(b.done)
	}
	b.closeMu.Unlock()
	b.wg.Wait()
}

func (b *Bus) startWorker() {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		for {
			select {
			case event := <-b.buffer:
				b.dispatch(event)
			case <-b.done:
				for {
					select {
					case event := <-b.buffer:
						b.dispatch(event)
					default:
						return
					}
				}
			}
		}
	}()
}

func (b *Bus) dispatch(event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.subscribers[event.Type]))
	copy(handlers, b.subscribers[event.Type])
	b.mu.RUnlock()

	for _, handler := range handlers {
		func(h Handler) {
			defer func() {
				// A failing subscriber must not stop delivery to the rest.
				_ = recover()
			}()
			h.Handle(event)
		}(handler)
	}
}
