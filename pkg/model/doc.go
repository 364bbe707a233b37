// Package model defines the language-neutral model definition that adapters
// render into target-specific text. A Definition is a named record holding an
// ordered set of typed fields. Field names are unique within a definition and
// keep their insertion order, so every adapter emits members in the order the
// author declared them. Only Field.Type drives type mapping; the remaining
// attributes (Required, Default, Description, Constraints) are carried through
// untouched for adapters that want to surface them. Definitions are authored in
// Go through the Builder; nothing in this package parses schema files.
package model
