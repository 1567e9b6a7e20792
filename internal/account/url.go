package account

// urlSuffixes maps each QueryType to its fixed sub-resource path. The
// conformance tests verify the table is total over QueryTypes() and
// injective, so a new enum member without a suffix fails tests rather than
// surfacing as a runtime INVALID_OPERATION.
var urlSuffixes = map[QueryType]string{
	QueryVerifyCredentials: "account/verify_credentials.json",
	QueryRateLimitStatus:   "account/rate_limit_status.json",
	QueryTotals:            "account/totals.json",
	QuerySettings:          "account/settings.json",
}

// BuildURL returns the absolute URL for a query: baseURL concatenated with
// the variant's fixed suffix. Pure function; the mapping is total over
// QueryTypes() and injective.
//
// A QueryType outside the enumeration is an INVALID_OPERATION error. It
// indicates the enumeration and this table have drifted, not a runtime
// condition - ParseQueryType never produces such a value.
func BuildURL(baseURL string, qt QueryType) (string, error) {
	suffix, ok := urlSuffixes[qt]
	if !ok {
		return "", NewInvalidOperationError(qt.String())
	}
	return baseURL + suffix, nil
}

// BuildActionURL returns the absolute URL for a side-effecting action.
// Same contract as BuildURL, keyed by the separate Action enumeration.
func BuildActionURL(baseURL string, action Action) (string, error) {
	switch action {
	case ActionEndSession:
		return baseURL + "account/end_session.json", nil
	default:
		return "", NewInvalidOperationError(action.String())
	}
}
