package random

// Sequence replays fixed draws in order. Each value is reduced modulo n, so
// callers script the zero-based result they expect. Once exhausted it wraps
// around to the first value.
type Sequence struct {
	values []int
	next   int
}

// NewSequence returns a source that replays values.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: append([]int(nil), values...)}
}

// Intn returns the next scripted value modulo n.
func (s *Sequence) Intn(n int) int {
	if n <= 0 {
		panic("random: invalid argument to Intn")
	}
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Drawn reports how many values have been consumed.
func (s *Sequence) Drawn() int {
	return s.next
}
