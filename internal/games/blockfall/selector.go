package blockfall

import "math/rand"

// Selector decides which catalog piece comes next.
// Implementations return an index in [0, PieceCount-1].
type Selector interface {
	Next() int
}

// RandomSelector picks uniformly among the seven pieces.
type RandomSelector struct {
	rng *rand.Rand
}

// NewRandomSelector creates a selector seeded for reproducible sequences.
func NewRandomSelector(seed int64) *RandomSelector {
	return &RandomSelector{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniformly random piece index.
func (s *RandomSelector) Next() int {
	return s.rng.Intn(PieceCount)
}

// SequenceSelector cycles through a fixed list of piece indices.
type SequenceSelector struct {
	seq []int
	pos int
}

// NewSequenceSelector creates a selector that repeats seq forever.
// An empty sequence always yields piece 0.
func NewSequenceSelector(seq ...int) *SequenceSelector {
	return &SequenceSelector{seq: append([]int(nil), seq...)}
}

// Next returns the next index in the cycle.
func (s *SequenceSelector) Next() int {
	if len(s.seq) == 0 {
		return 0
	}
	i := s.seq[s.pos%len(s.seq)]
	s.pos++
	return i
}
