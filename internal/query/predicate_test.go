package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalk_SingleEquals(t *testing.T) {
	var seen []Equals
	n := Walk(Equals{Field: "Type", Value: String("Totals")}, func(eq Equals) {
		seen = append(seen, eq)
	})

	assert.Equal(t, 1, n)
	assert.Equal(t, []Equals{{Field: "Type", Value: String("Totals")}}, seen)
}

func TestWalk_PointerNodes(t *testing.T) {
	var seen []string
	n := Walk(&And{Predicates: []Predicate{
		&Equals{Field: "Type", Value: String("Settings")},
		&Equals{Field: "ScreenName", Value: String("JoeMayo")},
	}}, func(eq Equals) {
		seen = append(seen, eq.Field)
	})

	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"Type", "ScreenName"}, seen)
}

func TestWalk_NestedAnd(t *testing.T) {
	pred := And{Predicates: []Predicate{
		Equals{Field: "a", Value: Int(1)},
		And{Predicates: []Predicate{
			Equals{Field: "b", Value: Bool(true)},
			And{Predicates: []Predicate{
				Equals{Field: "c", Value: String("x")},
			}},
		}},
	}}

	var order []string
	n := Walk(pred, func(eq Equals) { order = append(order, eq.Field) })

	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestWalk_NilAndEmpty(t *testing.T) {
	assert.Equal(t, 0, Walk(nil, func(Equals) { t.Fatal("unexpected visit") }))
	assert.Equal(t, 0, Walk(And{}, func(Equals) { t.Fatal("unexpected visit") }))
}

func TestLiterals_DeclarationOrder(t *testing.T) {
	leaves := Literals(And{Predicates: []Predicate{
		Equals{Field: "Type", Value: String("RateLimitStatus")},
		Equals{Field: "Type", Value: String("Totals")},
	}})

	// Both leaves are reported; collapsing duplicates is the caller's call.
	assert.Len(t, leaves, 2)
	assert.Equal(t, String("RateLimitStatus"), leaves[0].Value)
	assert.Equal(t, String("Totals"), leaves[1].Value)
}

func TestValue_Encode(t *testing.T) {
	testCases := []struct {
		name string
		val  Value
		want string
	}{
		{name: "string", val: String("Settings"), want: "Settings"},
		{name: "empty string", val: String(""), want: ""},
		{name: "int", val: Int(42), want: "42"},
		{name: "negative int", val: Int(-7), want: "-7"},
		{name: "bool true", val: Bool(true), want: "true"},
		{name: "bool false", val: Bool(false), want: "false"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.val.Encode())
		})
	}
}
