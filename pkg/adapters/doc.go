// Package adapters groups the bundled adapter implementations. Each target
// lives in its own sub-package (typescript, python, postgres, openapi, yaml,
// htmldoc, template) and exposes a New constructor with functional options.
// Defaults returns fresh instances of the three core targets and All adds the
// document oriented ones.
package adapters
