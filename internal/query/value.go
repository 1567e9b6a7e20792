package query

import "strconv"

// Value is a sealed interface representing the literal types a predicate may
// compare against. Only String, Int, and Bool implement it. Floats are
// excluded: every recognized account parameter is a name, a count, or a flag,
// and string-encoding must be deterministic.
type Value interface {
	// Encode returns the literal as it appears in an extracted parameter
	// map, which is also how it would be written on the wire.
	Encode() string

	value() // Sealed - only types in this package implement it
}

// String represents a string literal in a predicate.
type String string

func (String) value() {}

// Encode returns the string unchanged.
func (s String) Encode() string { return string(s) }

// Int represents an integer literal in a predicate.
// Always int64, never float64.
type Int int64

func (Int) value() {}

// Encode returns the base-10 representation.
func (i Int) Encode() string { return strconv.FormatInt(int64(i), 10) }

// Bool represents a boolean literal in a predicate.
type Bool bool

func (Bool) value() {}

// Encode returns "true" or "false".
func (b Bool) Encode() string { return strconv.FormatBool(bool(b)) }
