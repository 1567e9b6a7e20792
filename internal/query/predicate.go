package query

// Predicate represents a filter condition over recognized account fields.
//
// This is a sealed interface - only types in this package implement it.
// The marker method pattern prevents external implementations and enables
// exhaustive type switches in the parameter walker.
//
// Predicate types:
//   - Equals: field = literal value
//   - And: all predicates must be true
//
// OR, negation, and inequality are intentionally unsupported: the remote API
// selects behavior by named parameter, so only conjunctions of equality
// comparisons are meaningful.
type Predicate interface {
	predicateNode() // Marker method - seals interface to this package
}

// Equals represents a field-equals-literal comparison.
//
// Example:
//
//	Equals{Field: "Type", Value: String("Settings")}
//
// Field names are matched case-sensitively against the processor's
// recognized-field list during extraction; unrecognized fields are ignored,
// not rejected.
type Equals struct {
	Field string // Recognized field name (e.g., "Type")
	Value Value  // Literal value (constrained to Value types)
}

func (Equals) predicateNode() {}

// And represents a conjunction of predicates (all must hold).
//
// An empty Predicates slice is vacuously true and extracts nothing.
// Nested And nodes are walked recursively.
type And struct {
	Predicates []Predicate
}

func (And) predicateNode() {}

// Walk visits every Equals leaf in p in declaration order, calling fn for
// each. Nil predicates are skipped. Walk returns the number of leaves
// visited.
//
// Walk is the single traversal primitive for the AST; extraction and any
// future validation are built on it rather than re-implementing the type
// switch.
func Walk(p Predicate, fn func(Equals)) int {
	if p == nil {
		return 0
	}

	switch node := p.(type) {
	case Equals:
		fn(node)
		return 1
	case *Equals:
		fn(*node)
		return 1
	case And:
		return walkAnd(node, fn)
	case *And:
		return walkAnd(*node, fn)
	default:
		// Unreachable: Predicate is sealed to this package.
		return 0
	}
}

func walkAnd(and And, fn func(Equals)) int {
	n := 0
	for _, sub := range and.Predicates {
		n += Walk(sub, fn)
	}
	return n
}

// Literals returns the field/value pairs of every Equals leaf in p, in
// declaration order. Later leaves win on duplicate field names when callers
// collapse the result into a map.
func Literals(p Predicate) []Equals {
	var leaves []Equals
	Walk(p, func(eq Equals) {
		leaves = append(leaves, eq)
	})
	return leaves
}
