// Package scalar classifies bare (unquoted) literals into typed values.
//
// Classification is a priority-ordered chain of (matches, convert)
// pairs: boolean aliases first, then integers (decimal or 0x hex), then
// floating point, with the verbatim string as the fallback. A literal
// that matches a classifier's shape but fails conversion (for example a
// decimal run that overflows int64) falls through the rest of the chain
// unchanged. Quoted strings never reach this package.
package scalar
