// Package mapping builds the pseudonym mapping used to blind experiments.
//
// Every experiment directory is named <host prefix><identifier>, for example
// localhost-20200619_161734. The mapping pairs each original identifier with
// a random replacement of the same shape (8 digits, underscore, 6 digits), so
// blinded directories are indistinguishable from real ones by name.
//
// A Mapping keeps insertion order. The order survives a YAML round trip,
// which keeps manifests diffable and progress output stable between the
// obfuscate and restore runs of the same experiments.
//
// Mapper.Build guarantees a bijection: candidate replacements that collide
// with an identifier already in the mapping are drawn again, and names that
// reduce to the same identifier are mapped once. Mapping.Invert refuses
// mappings that are not injective instead of dropping entries.
package mapping
