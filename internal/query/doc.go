// Package query defines the typed predicate AST used to express account
// queries, and the walker that extracts literal parameters from it.
//
// A query is written as a predicate over a fixed set of recognized field
// names, for example:
//
//	query.And{Predicates: []query.Predicate{
//		query.Equals{Field: "Type", Value: query.String("Totals")},
//	}}
//
// The AST is deliberately small: only equality comparisons against literal
// values, optionally conjoined. It is not a general predicate evaluator -
// downstream code reads the recorded field/value pairs and ignores all other
// structure. This keeps the query surface declarative while the request
// processor decides what HTTP call the predicate translates to.
package query
