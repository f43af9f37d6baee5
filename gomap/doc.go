// Package gomap converts between Go values and configuration value
// trees. ToIR maps Go values (scalars, maps, slices, structs) to nodes
// by reflection; FromIR produces the plain Go shape (map[string]any,
// []any, scalars) that Load hands back.
package gomap
