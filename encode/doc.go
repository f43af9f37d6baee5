// Package encode renders value trees in the supported output syntaxes:
// the relaxed configuration syntax, pretty and compact JSON, and YAML.
package encode
