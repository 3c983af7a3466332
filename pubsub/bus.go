package pubsub

import (
	"errors"

	"github.com/boz/go-lifecycle"
)

// ErrNotRunning is returned when publishing to or subscribing on a closed bus
var ErrNotRunning = errors.New("not running")

type Event interface{}

type Publisher interface {
	Publish(Event) error
}

// Subscriber receives every event published after it subscribed, in
// publish order. A slow subscriber never blocks the publisher.
type Subscriber interface {
	Events() <-chan Event
	Close()
	Done() <-chan struct{}
}

type Bus interface {
	Publisher
	Subscribe() (Subscriber, error)
	Close()
	Done() <-chan struct{}
}

type bus struct {
	subscriptions map[*subscriber]struct{}

	pubch   chan Event
	subch   chan chan<- Subscriber
	unsubch chan *subscriber

	lc lifecycle.Lifecycle
}

// NewBus runs a new in-process bus
func NewBus() Bus {
	b := &bus{
		subscriptions: make(map[*subscriber]struct{}),
		pubch:         make(chan Event),
		subch:         make(chan chan<- Subscriber),
		unsubch:       make(chan *subscriber),
		lc:            lifecycle.New(),
	}

	go b.run()

	return b
}

func (b *bus) Publish(ev Event) error {
	select {
	case b.pubch <- ev:
		return nil
	case <-b.lc.ShuttingDown():
		return ErrNotRunning
	}
}

func (b *bus) Subscribe() (Subscriber, error) {
	ch := make(chan Subscriber, 1)

	select {
	case b.subch <- ch:
		return <-ch, nil
	case <-b.lc.ShuttingDown():
		return nil, ErrNotRunning
	}
}

func (b *bus) Close() {
	b.lc.Shutdown(nil)
}

func (b *bus) Done() <-chan struct{} {
	return b.lc.Done()
}

func (b *bus) run() {
	defer b.lc.ShutdownCompleted()

loop:
	for {
		select {
		case err := <-b.lc.ShutdownRequest():
			b.lc.ShutdownInitiated(err)
			break loop

		case ev := <-b.pubch:
			for sub := range b.subscriptions {
				sub.push(ev)
			}

		case ch := <-b.subch:
			sub := newSubscriber(b.unsubch)
			b.subscriptions[sub] = struct{}{}
			ch <- sub

		case sub := <-b.unsubch:
			delete(b.subscriptions, sub)
		}
	}

	for sub := range b.subscriptions {
		sub.lc.ShutdownAsync(nil)
	}

	for len(b.subscriptions) > 0 {
		sub := <-b.unsubch
		delete(b.subscriptions, sub)
	}
}

type subscriber struct {
	evbuf []Event

	inch     chan Event
	eventch  chan Event
	parentch chan<- *subscriber

	lc lifecycle.Lifecycle
}

func newSubscriber(parentch chan<- *subscriber) *subscriber {
	sub := &subscriber{
		inch:     make(chan Event),
		eventch:  make(chan Event),
		parentch: parentch,
		lc:       lifecycle.New(),
	}

	go sub.run()

	return sub
}

func (s *subscriber) Events() <-chan Event {
	return s.eventch
}

func (s *subscriber) Close() {
	s.lc.Shutdown(nil)
}

func (s *subscriber) Done() <-chan struct{} {
	return s.lc.Done()
}

// push is called from the bus goroutine only
func (s *subscriber) push(ev Event) {
	select {
	case s.inch <- ev:
	case <-s.lc.ShuttingDown():
	}
}

func (s *subscriber) run() {
	defer s.lc.ShutdownCompleted()

	var outch chan<- Event
	var curev Event

loop:
	for {
		if len(s.evbuf) > 0 {
			outch = s.eventch
			curev = s.evbuf[0]
		} else {
			// sending to a nil channel always blocks
			outch = nil
		}

		select {
		case err := <-s.lc.ShutdownRequest():
			s.lc.ShutdownInitiated(err)
			break loop

		case outch <- curev:
			s.evbuf = s.evbuf[1:]

		case ev := <-s.inch:
			s.evbuf = append(s.evbuf, ev)
		}
	}

	s.parentch <- s
}
