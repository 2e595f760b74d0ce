package tasklist

// sequence allocates task sequence numbers for one generation pass. It is
// seeded with the highest number among tasks the user completed manually, so
// regeneration never renumbers below what the user already acknowledged.
type sequence struct {
	n int
}

func newSequence(baseline int) *sequence {
	return &sequence{n: baseline}
}

func (s *sequence) Next() int {
	s.n++
	return s.n
}
