// Package signal provides an observable value holder. Observers run
// synchronously after a commit on the committing goroutine unless another
// goroutine is already notifying; scheduling a re-render is their job.
package signal

import "sync"

type State[T any] struct {
	mu        sync.RWMutex
	value     T
	version   uint64 // commits so far
	delivered uint64 // last version fanned out
	busy      bool   // a goroutine is fanning out
	nextID    int
	observers []observer[T]
}

type observer[T any] struct {
	id int
	fn func(T)
}

func New[T any](initial T) *State[T] {
	return &State[T]{value: initial}
}

// Get returns the most recently committed value.
func (s *State[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set replaces the value and notifies observers.
func (s *State[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	s.version++
	s.dispatch()
}

// Update applies fn to the current value under the lock, commits the result
// and notifies observers with it.
func (s *State[T]) Update(fn func(T) T) T {
	s.mu.Lock()
	v := fn(s.value)
	s.value = v
	s.version++
	s.dispatch()
	return v
}

// dispatch is entered with mu held and releases it. One goroutine fans out
// at a time. A commit made meanwhile, from another goroutine or from inside
// an observer, is picked up by that goroutine after the current round, so
// observers always finish on the latest value. Intermediate values may be
// coalesced.
func (s *State[T]) dispatch() {
	if s.busy {
		s.mu.Unlock()
		return
	}
	s.busy = true
	for s.delivered != s.version {
		v, obs := s.value, s.snapshot()
		s.delivered = s.version
		s.mu.Unlock()
		notify(obs, v)
		s.mu.Lock()
	}
	s.busy = false
	s.mu.Unlock()
}

// Subscribe registers fn and returns a function that removes it.
func (s *State[T]) Subscribe(fn func(T)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, observer[T]{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, o := range s.observers {
				if o.id == id {
					s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *State[T]) snapshot() []observer[T] {
	if len(s.observers) == 0 {
		return nil
	}
	out := make([]observer[T], len(s.observers))
	copy(out, s.observers)
	return out
}

// Observers are called outside the lock so they may read or write the state.
func notify[T any](obs []observer[T], v T) {
	for _, o := range obs {
		o.fn(v)
	}
}
