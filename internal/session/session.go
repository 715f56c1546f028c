// Package session holds the process-wide authenticated-session state
// as an observable value: one writer (the auth layer), many readers.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type State struct {
	UserID     *uuid.UUID
	Email      *string
	VerifiedAt time.Time
}

func (s State) Active() bool {
	return s.UserID != nil
}

type Observable struct {
	mu      sync.RWMutex
	current State
	subs    map[int]func(State)
	nextID  int
}

func NewObservable() *Observable {
	return &Observable{subs: map[int]func(State){}}
}

func (o *Observable) Get() State {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.current
}

// Set publishes a new state and notifies subscribers. Only the
// identity layer should call this.
func (o *Observable) Set(s State) {
	o.mu.Lock()
	o.current = s
	callbacks := make([]func(State), 0, len(o.subs))
	for _, fn := range o.subs {
		callbacks = append(callbacks, fn)
	}
	o.mu.Unlock()

	for _, fn := range callbacks {
		fn(s)
	}
}

// Subscribe registers a callback for state changes and returns an
// unsubscribe func. Callbacks run on the publisher's goroutine and
// should return quickly.
func (o *Observable) Subscribe(fn func(State)) func() {
	o.mu.Lock()
	id := o.nextID
	o.nextID++
	o.subs[id] = fn
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		delete(o.subs, id)
		o.mu.Unlock()
	}
}
