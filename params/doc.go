// Package params parses and validates the attribute parameter blocks
// attached to type, variant and field declarations. A block is a comma
// separated list of entries: a bare name (unit flag), a name with a quoted
// value (string literal), or a name with a parenthesized sub list (nested).
// Every error is anchored at the attachment point location.
package params
