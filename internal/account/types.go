package account

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

// QueryType is the enumerated selector choosing which account sub-resource
// and response shape a query targets. The zero value is not a member; a
// QueryType is only obtained from the constants below or ParseQueryType.
type QueryType int

const (
	// QueryVerifyCredentials checks the authenticating user's credentials
	// and returns their profile.
	QueryVerifyCredentials QueryType = iota + 1

	// QueryRateLimitStatus returns the caller's remaining API call quota.
	QueryRateLimitStatus

	// QueryTotals returns the account's aggregate activity counters.
	QueryTotals

	// QuerySettings returns the account's settings.
	QuerySettings
)

// queryTypeNames maps each QueryType to its canonical member name.
// ParseQueryType is the left-inverse of String over this table.
var queryTypeNames = map[QueryType]string{
	QueryVerifyCredentials: "VerifyCredentials",
	QueryRateLimitStatus:   "RateLimitStatus",
	QueryTotals:            "Totals",
	QuerySettings:          "Settings",
}

// String returns the canonical member name, or "" for a non-member value.
func (qt QueryType) String() string {
	return queryTypeNames[qt]
}

// QueryTypes returns all members in declaration order.
func QueryTypes() []QueryType {
	return []QueryType{QueryVerifyCredentials, QueryRateLimitStatus, QueryTotals, QuerySettings}
}

// ParseQueryType resolves a selector string to a QueryType.
// Matching is case-insensitive against the canonical member names.
// Returns an INVALID_QUERY_TYPE error if no member matches; this is the only
// validation gate before URL construction.
func ParseQueryType(raw string) (QueryType, error) {
	for qt, name := range queryTypeNames {
		if strings.EqualFold(raw, name) {
			return qt, nil
		}
	}
	return 0, NewInvalidQueryTypeError(raw)
}

// Action is the enumerated selector for side-effecting account calls. It is
// a separate namespace from QueryType: actions are dispatched through
// ProcessActionResult, never through ProcessResults.
type Action int

const (
	// ActionEndSession invalidates the authenticating user's session.
	ActionEndSession Action = iota + 1
)

// String returns the canonical member name, or "" for a non-member value.
func (a Action) String() string {
	if a == ActionEndSession {
		return "EndSession"
	}
	return ""
}

// Payload is a sealed interface over the variant-specific result shapes.
// Exactly the payload matching the Account's query type (or action) is
// carried; a nil Payload is the valid "no content" result for an empty
// response body.
type Payload interface {
	payloadNode() // Marker method - seals interface to this package
}

// Account is the unified result entity returned to callers: the active
// query type plus at most one payload. It is created fresh per call,
// populated once, and never mutated afterwards.
//
// For action results Type is zero; the Payload alone identifies the shape.
type Account struct {
	Type    QueryType
	Payload Payload
}

// Settings returns the settings payload, if that is what this Account
// carries.
func (a Account) Settings() (*Settings, bool) {
	p, ok := a.Payload.(*Settings)
	return p, ok
}

// RateLimit returns the rate-limit payload, if present.
func (a Account) RateLimit() (*RateLimit, bool) {
	p, ok := a.Payload.(*RateLimit)
	return p, ok
}

// Totals returns the totals payload, if present.
func (a Account) Totals() (*Totals, bool) {
	p, ok := a.Payload.(*Totals)
	return p, ok
}

// User returns the profile payload, if present.
func (a Account) User() (*User, bool) {
	p, ok := a.Payload.(*User)
	return p, ok
}

// EndSessionStatus returns the action-status payload, if present.
func (a Account) EndSessionStatus() (*EndSessionStatus, bool) {
	p, ok := a.Payload.(*EndSessionStatus)
	return p, ok
}

// Location identifies a trend location reference in account settings.
type Location struct {
	WOEID         int64
	Name          string
	Country       string
	CountryCode   string
	PlaceTypeCode int64
	PlaceTypeName string
	URL           string
}

// SleepTime is the account's notification sleep window, in whole hours.
type SleepTime struct {
	StartHour int64
	EndHour   int64
	Enabled   bool
}

// TimeZone describes the account's time zone.
type TimeZone struct {
	// Name is the display name (e.g., "Mountain Time (US & Canada)").
	Name string

	// TzInfoName is the IANA identifier (e.g., "America/Denver").
	TzInfoName string

	// UTCOffsetSeconds is the offset from UTC in seconds.
	UTCOffsetSeconds int64
}

// Settings is the account settings payload.
type Settings struct {
	// TrendLocation is the first configured trend location, or nil when the
	// account has none.
	TrendLocation *Location

	SleepTime SleepTime
	TimeZone  TimeZone

	// Language is the account's interface language code as returned by the
	// API (e.g., "en").
	Language string

	ScreenName          string
	AlwaysUseHTTPS      bool
	DiscoverableByEmail bool
	GeoEnabled          bool
	Protected           bool
}

func (*Settings) payloadNode() {}

// LanguageTag parses Language as a BCP 47 tag.
func (s *Settings) LanguageTag() (language.Tag, error) {
	return language.Parse(s.Language)
}

// MaxResetTime is the sentinel substituted when a rate-limit reset time
// cannot be parsed. Callers depend on the substitution; a malformed reset
// time is not an error.
var MaxResetTime = time.Date(9999, time.December, 31, 23, 59, 59, 999999999, time.UTC)

// RateLimit is the rate-limit status payload.
type RateLimit struct {
	HourlyLimit   int64
	RemainingHits int64

	// ResetTime is the parsed reset timestamp, or MaxResetTime when the
	// wire value could not be parsed.
	ResetTime time.Time

	// ResetTimeInSeconds is the reset time as a Unix timestamp, as sent by
	// the API alongside the formatted time.
	ResetTimeInSeconds int64
}

func (*RateLimit) payloadNode() {}

// Totals is the account activity counters payload.
type Totals struct {
	Favorites int64
	Followers int64
	Friends   int64
	Updates   int64
}

func (*Totals) payloadNode() {}

// User is the profile payload produced by credential verification.
type User struct {
	ID          int64
	ScreenName  string
	Name        string
	Description string
	URL         string
	Location    string

	CreatedAt time.Time

	FollowersCount int64
	FriendsCount   int64
	FavoritesCount int64
	StatusesCount  int64

	Language   string
	Protected  bool
	Verified   bool
	GeoEnabled bool
}

func (*User) payloadNode() {}

// EndSessionStatus echoes a completed end-session action.
type EndSessionStatus struct {
	// Request is the path of the submitted request.
	Request string

	// Error is the service's error message; empty when the action
	// succeeded.
	Error string
}

func (*EndSessionStatus) payloadNode() {}
