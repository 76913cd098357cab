package mapping

import (
	"math/rand/v2"
	"regexp"
	"strings"

	"github.com/arthur-debert/milton/pkg/errors"
	"github.com/arthur-debert/milton/pkg/logging"
)

// DefaultHostPrefix is prepended to every experiment directory name.
const DefaultHostPrefix = "localhost-"

// maxDraws bounds the re-draws for a single replacement.
const maxDraws = 1000

var identifierPattern = regexp.MustCompile(`^[0-9]{8}_[0-9]{6}$`)

// IsIdentifier reports whether s has the replacement identifier shape.
func IsIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}

// Generator produces candidate replacement identifiers. Generate makes no
// uniqueness promise; Mapper.Build handles collisions.
type Generator interface {
	Generate() string
}

// RandomGenerator draws every digit uniformly from 0-9.
type RandomGenerator struct {
	rng *rand.Rand
}

// NewRandomGenerator returns a generator seeded from the runtime's entropy.
func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededGenerator returns a deterministic generator.
func NewSeededGenerator(seed uint64) *RandomGenerator {
	return &RandomGenerator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Generate returns an identifier of the form DDDDDDDD_DDDDDD.
func (g *RandomGenerator) Generate() string {
	var b strings.Builder
	b.Grow(15)
	for i := 0; i < 8; i++ {
		b.WriteByte(byte('0' + g.rng.IntN(10)))
	}
	b.WriteByte('_')
	for i := 0; i < 6; i++ {
		b.WriteByte(byte('0' + g.rng.IntN(10)))
	}
	return b.String()
}

// Mapper turns experiment directory names into a pseudonym mapping.
type Mapper struct {
	HostPrefix string
	Generator  Generator
}

// NewMapper returns a mapper for directories named hostPrefix+identifier.
// A nil generator selects NewRandomGenerator.
func NewMapper(hostPrefix string, gen Generator) *Mapper {
	if gen == nil {
		gen = NewRandomGenerator()
	}
	return &Mapper{HostPrefix: hostPrefix, Generator: gen}
}

// Strip removes the host prefix from a directory name.
func (m *Mapper) Strip(dirName string) string {
	return strings.TrimPrefix(dirName, m.HostPrefix)
}

// DirName re-applies the host prefix to an identifier.
func (m *Mapper) DirName(id string) string {
	return m.HostPrefix + id
}

// Build strips the host prefix from every name and assigns each resulting
// identifier a fresh replacement, in the order given. A candidate equal to
// any identifier already in the mapping is drawn again. Names reducing to an
// identifier seen before are skipped. A name that is only the host prefix
// fails with INVALID_INPUT.
func (m *Mapper) Build(dirNames []string) (*Mapping, error) {
	logger := logging.GetLogger("mapping")
	out := New()

	for _, name := range dirNames {
		original := m.Strip(name)
		if original == "" {
			return nil, errors.Newf(errors.ErrInvalidInput,
				"%s has no experiment identifier after the host prefix %q", name, m.HostPrefix).
				WithDetail("name", name)
		}
		if out.HasOriginal(original) {
			logger.Debug().Str("name", name).Str("original", original).Msg("Skipping duplicate experiment")
			continue
		}

		replacement, err := m.draw(out, original)
		if err != nil {
			return nil, err
		}
		out.Set(original, replacement)
	}

	logger.Debug().Int("pairs", out.Len()).Msg("Mapping built")
	return out, nil
}

func (m *Mapper) draw(current *Mapping, original string) (string, error) {
	for i := 0; i < maxDraws; i++ {
		candidate := m.Generator.Generate()
		if candidate == original || current.HasReplacement(candidate) || current.HasOriginal(candidate) {
			continue
		}
		return candidate, nil
	}
	return "", errors.Newf(errors.ErrMappingExhausted,
		"no unused replacement for %s after %d draws", original, maxDraws)
}
