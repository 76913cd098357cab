package mapping

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/milton/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Pair is one original to replacement edge of a mapping.
type Pair struct {
	Original    string
	Replacement string
}

// Mapping is an insertion-ordered map from original to replacement identifier.
// The zero value is empty and ready to use.
type Mapping struct {
	keys    []string
	values  map[string]string
	inverse map[string]string
}

// New returns an empty mapping.
func New() *Mapping {
	return &Mapping{}
}

// FromPairs builds a mapping from pairs in order. Later pairs overwrite the
// value of an earlier pair with the same original.
func FromPairs(pairs ...Pair) *Mapping {
	m := New()
	for _, p := range pairs {
		m.Set(p.Original, p.Replacement)
	}
	return m
}

// Set assigns replacement to original. A new original is appended; an
// existing one keeps its position.
func (m *Mapping) Set(original, replacement string) {
	if m.values == nil {
		m.values = make(map[string]string)
		m.inverse = make(map[string]string)
	}
	old, ok := m.values[original]
	if !ok {
		m.keys = append(m.keys, original)
	}
	m.values[original] = replacement
	m.inverse[replacement] = original
	if ok && old != replacement && m.inverse[old] == original {
		m.reindex(old)
	}
}

// reindex points replacement back at the first original still using it, or
// drops it from the inverse index.
func (m *Mapping) reindex(replacement string) {
	delete(m.inverse, replacement)
	for _, k := range m.keys {
		if m.values[k] == replacement {
			m.inverse[replacement] = k
			return
		}
	}
}

// Get returns the replacement for original.
func (m *Mapping) Get(original string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.values[original]
	return v, ok
}

// HasOriginal reports whether original is a key of the mapping.
func (m *Mapping) HasOriginal(original string) bool {
	_, ok := m.Get(original)
	return ok
}

// HasReplacement reports whether replacement is a value of the mapping.
func (m *Mapping) HasReplacement(replacement string) bool {
	if m == nil {
		return false
	}
	_, ok := m.inverse[replacement]
	return ok
}

// Len returns the number of pairs.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Originals returns the keys in insertion order.
func (m *Mapping) Originals() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Pairs returns the edges in insertion order.
func (m *Mapping) Pairs() []Pair {
	if m == nil {
		return nil
	}
	pairs := make([]Pair, 0, len(m.keys))
	for _, k := range m.keys {
		pairs = append(pairs, Pair{Original: k, Replacement: m.values[k]})
	}
	return pairs
}

// Invert returns the replacement to original mapping, preserving order.
// A mapping in which two originals share a replacement cannot be inverted
// and yields MAPPING_COLLISION.
func (m *Mapping) Invert() (*Mapping, error) {
	inv := New()
	for _, p := range m.Pairs() {
		if prev, ok := inv.Get(p.Replacement); ok {
			return nil, errors.Newf(errors.ErrMappingCollision,
				"%s and %s share the replacement %s", prev, p.Original, p.Replacement).
				WithDetail("replacement", p.Replacement)
		}
		inv.Set(p.Replacement, p.Original)
	}
	return inv, nil
}

// MarshalYAML encodes the mapping as an ordered YAML mapping of strings.
func (m *Mapping) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, p := range m.Pairs() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Original},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Replacement},
		)
	}
	return node, nil
}

// UnmarshalYAML decodes an ordered YAML mapping of scalars. Duplicate keys
// and empty or null identifiers are rejected.
func (m *Mapping) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: mapping must be a YAML mapping", value.Line)
	}
	decoded := New()
	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := value.Content[i], value.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: mapping entries must be plain strings", k.Line)
		}
		if blank(k) || blank(v) {
			return fmt.Errorf("line %d: mapping entries need a non-empty identifier on both sides", k.Line)
		}
		if decoded.HasOriginal(k.Value) {
			return fmt.Errorf("line %d: duplicate mapping key %q", k.Line, k.Value)
		}
		decoded.Set(k.Value, v.Value)
	}
	*m = *decoded
	return nil
}

func blank(n *yaml.Node) bool {
	return n.ShortTag() == "!!null" || strings.TrimSpace(n.Value) == ""
}
