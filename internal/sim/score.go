package sim

// Score is the player's kill counter.
type Score struct {
	value int
}

// Increment adds one point.
func (s *Score) Increment() {
	s.value++
}

// Reset sets the score back to zero.
func (s *Score) Reset() {
	s.value = 0
}

// Value returns the current score.
func (s *Score) Value() int {
	return s.value
}
