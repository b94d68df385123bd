// Package wit resolves type descriptors from a WIT document in the JSON
// form produced by `wasm-tools component wit --json`.
//
// Sizes, alignments, and field offsets follow the Component Model's
// Canonical ABI: record fields are laid out sequentially with alignment
// padding, a variant is a discriminant followed by the payload region all
// cases overlay, and lists, strings, and resource handles are indirect and
// therefore reported as pointer-kind leaves.
//
// Variant descriptors expose only the payload region: every case spans the
// region from its start, and the discriminant's storage is part of the
// union's total size but never reported as a field.
package wit
