// Package export converts an ordered transaction sequence into portable file
// formats: an RFC 4180 CSV with a fixed column schema, and an indented JSON
// document preserving the full record shape.
//
// Both transforms are pure and deterministic: the same input always produces
// byte-identical output, and absent optional fields serialize to empty cells,
// never to a "null" literal.
package export
