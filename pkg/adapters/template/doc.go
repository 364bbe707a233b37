// Package template builds adapters from pongo2 templates so new targets can
// be added without writing Go.
//
// A template is compiled once and rendered with this context:
//
//	model     name, description, required (names), empty
//	fields    ordered list; each entry has name, type, target_type, required,
//	          has_default, default, description, constraints, index, first, last
//	typename  function resolving a field type through the adapter mapping
//
// Whitespace around tags is controlled with {%- and -%}. Output is not HTML
// escaped unless WithAutoescape is set; the mode also applies to files pulled
// in with include and extends (see WithFS). Besides the pongo2 built-ins the
// filters trim, lowerfirst, upperfirst, snake, camel, pascal, kebab and
// screaming are available.
package template
