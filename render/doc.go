// Package render turns layout trees into indented, optionally colorized
// text.
//
// The format is one line per member as
// `name => start - end`, expanded members re-entering as a nested brace
// block annotated with the member's type name, gaps as `--- Hole: N bytes
// ---` markers (or `--- Padding: N bytes ---` for the trailing gap), and a
// totals footer. Nested braces cycle a small color palette by depth so
// matching pairs are easy to spot.
//
// The format is illustrative, not a wire contract.
package render
