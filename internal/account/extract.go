package account

import "github.com/ewassef/LinqToTwitter/internal/query"

// TypeField is the mandatory predicate field selecting the query type.
const TypeField = "Type"

// ParamExtractor reads literal equality comparisons against an allow-listed
// field set out of a query predicate. It is not a predicate evaluator: any
// structure other than recognized-field equality is ignored.
type ParamExtractor struct {
	allowed map[string]struct{}
}

// NewParamExtractor creates an extractor recognizing the given fields.
// TypeField is always recognized, whether listed or not, since the selector
// is non-optional.
func NewParamExtractor(fields ...string) *ParamExtractor {
	allowed := make(map[string]struct{}, len(fields)+1)
	allowed[TypeField] = struct{}{}
	for _, f := range fields {
		allowed[f] = struct{}{}
	}
	return &ParamExtractor{allowed: allowed}
}

// Extract walks the predicate and returns recognized field names mapped to
// their string-encoded literal values. On duplicate fields the last
// comparison wins.
//
// Returns a CONFIGURATION error if the predicate carries no TypeField
// comparison - extraction runs before any URL is built, so the error
// surfaces before anything else happens.
func (e *ParamExtractor) Extract(p query.Predicate) (map[string]string, error) {
	params := make(map[string]string)
	query.Walk(p, func(eq query.Equals) {
		if _, ok := e.allowed[eq.Field]; !ok {
			return
		}
		if eq.Value == nil {
			return
		}
		params[eq.Field] = eq.Value.Encode()
	})

	if _, ok := params[TypeField]; !ok {
		return nil, NewConfigurationError(TypeField)
	}

	return params, nil
}
