// Package adapter defines the contract every output target implements.
//
// An Adapter exposes a stable Name used as its registry key, a TypeMapping
// table translating the six abstract field types into target type names, and
// a Transform operation that renders a model.Definition into text. Transform
// must be deterministic, free of I/O and must never mutate its input.
//
// Adapters share behaviour through free functions rather than a base type:
// ResolveFieldTypeName applies the fallback policy (an unmapped field type is
// emitted verbatim), Lines walks fields in insertion order, and Check reports
// mapping gaps so tests and tooling can flag incomplete adapters.
package adapter
