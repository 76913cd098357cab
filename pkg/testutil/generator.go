package testutil

// SequenceGenerator hands out fixed identifiers in order and then repeats
// the last one.
type SequenceGenerator struct {
	IDs  []string
	next int
}

// NewSequenceGenerator returns a generator yielding ids.
func NewSequenceGenerator(ids ...string) *SequenceGenerator {
	return &SequenceGenerator{IDs: ids}
}

// Generate returns the next identifier.
func (g *SequenceGenerator) Generate() string {
	if len(g.IDs) == 0 {
		return ""
	}
	if g.next >= len(g.IDs) {
		return g.IDs[len(g.IDs)-1]
	}
	id := g.IDs[g.next]
	g.next++
	return id
}
