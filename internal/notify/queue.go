package notify

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	ErrQueueFull   = errors.New("queue is full")
	ErrQueueClosed = errors.New("queue is closed")
)

// Event is one lead submission waiting to be announced.
type Event struct {
	Kind    string
	Message string
}

// EventQueue is an in-memory queue decoupling lead creation from
// notification delivery, so a slow Telegram call never delays the HTTP
// response to the user.
type EventQueue struct {
	items    chan Event
	done     chan struct{}
	closed   bool
	mu       sync.RWMutex
	logger   *logrus.Logger
	handlers []func(Event) error
}

// NewEventQueue creates a queue with the specified buffer size.
func NewEventQueue(bufferSize int, logger *logrus.Logger) *EventQueue {
	return &EventQueue{
		items:    make(chan Event, bufferSize),
		done:     make(chan struct{}),
		logger:   logger,
		handlers: make([]func(Event) error, 0),
	}
}

// Push adds an event to the queue without blocking. A full queue drops
// the event; notifications are best-effort.
func (q *EventQueue) Push(event Event) error {
	q.mu.RLock()
	if q.closed {
		q.mu.RUnlock()
		return ErrQueueClosed
	}
	q.mu.RUnlock()

	select {
	case q.items <- event:
		q.logger.WithField("kind", event.Kind).Debug("Pushed event to queue")
		return nil
	default:
		return ErrQueueFull
	}
}

// Subscribe adds a handler function that will be called for each event.
func (q *EventQueue) Subscribe(handler func(Event) error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers = append(q.handlers, handler)
}

// Start begins processing events in the queue.
func (q *EventQueue) Start() {
	go q.process()
}

func (q *EventQueue) process() {
	for {
		select {
		case <-q.done:
			return
		case event := <-q.items:
			q.dispatch(event)
		}
	}
}

// dispatch sends the event to all subscribed handlers. Handler failures
// are logged and dropped; there is no retry.
func (q *EventQueue) dispatch(event Event) {
	q.mu.RLock()
	handlers := q.handlers
	q.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(event); err != nil {
			q.logger.WithError(err).Error("Handler failed to process event")
		}
	}
}

// Close stops the queue and prevents new events from being added.
func (q *EventQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}

	q.closed = true
	close(q.done)
	return nil
}

// Len returns the current number of events in the queue.
func (q *EventQueue) Len() int {
	return len(q.items)
}

// IsClosed returns whether the queue has been closed.
func (q *EventQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
