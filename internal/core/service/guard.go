package service

import "sync"

// SingleFlight lets one long-running command execute at a time across the whole process. It
// rejects rather than queues.
type SingleFlight struct {
	running bool
	mutex   sync.Mutex
}

func NewSingleFlight() *SingleFlight {
	return &SingleFlight{}
}

// TryAcquire takes the slot if it is free and reports whether it did.
func (s *SingleFlight) TryAcquire() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.running {
		return false
	}

	s.running = true

	return true
}

// Release frees the slot unconditionally.
func (s *SingleFlight) Release() {
	s.mutex.Lock()
	s.running = false
	s.mutex.Unlock()
}
