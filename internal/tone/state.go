package tone

import "sync"

// State carries the flags shared between the player goroutine and the
// caller driving the video side. All access goes through one mutex held
// only for the duration of a field copy, never across delivery or drawing.
type State struct {
	mu   sync.Mutex
	bip  bool
	bop  bool
	stop bool
}

// Markers returns the current bip/bop flags in a single lock acquisition.
func (s *State) Markers() (bip, bop bool) {
	s.mu.Lock()
	bip = s.bip
	bop = s.bop
	s.mu.Unlock()
	return bip, bop
}

// SetBip publishes the bip flag.
func (s *State) SetBip(v bool) {
	s.mu.Lock()
	s.bip = v
	s.mu.Unlock()
}

// SetBop publishes the bop flag.
func (s *State) SetBop(v bool) {
	s.mu.Lock()
	s.bop = v
	s.mu.Unlock()
}

// RequestStop asks the player loop to exit at its next poll.
func (s *State) RequestStop() {
	s.mu.Lock()
	s.stop = true
	s.mu.Unlock()
}

// Stopping reports whether a stop has been requested.
func (s *State) Stopping() bool {
	s.mu.Lock()
	v := s.stop
	s.mu.Unlock()
	return v
}
