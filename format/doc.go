// Package format names the text formats mawu reads and writes.
//
// JSON and CSV are native: they are parsed and serialized by this module's
// own state machines. YAML is supported for conversion through
// github.com/goccy/go-yaml.
package format
