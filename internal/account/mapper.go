package account

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/ewassef/LinqToTwitter/internal/jsondoc"
)

// createdAtLayout is the timestamp format the v1.1 API uses in response
// bodies, e.g. "Mon Jul 16 15:13:52 +0000 2012".
const createdAtLayout = time.RubyDate

// ProcessResults maps a raw query response onto an Account, dispatching on
// the query type.
//
// Settings and RateLimitStatus responses are read through a dynamic document
// walk with per-field coercion; Totals and VerifyCredentials are bound to a
// wire-shape struct and then transformed into the public payload. Both paths
// are load-bearing: the upstream payloads are inconsistent in nesting and
// naming between endpoints, so neither strategy can cover all four.
//
// An empty or whitespace-only body is the valid "no content" result: the
// returned Account carries the query type and a nil payload. A body that
// does not match the variant's shape is a MALFORMED_RESPONSE error, and no
// partial Account is returned with it.
func ProcessResults(qt QueryType, responseJSON string) (Account, error) {
	if strings.TrimSpace(responseJSON) == "" {
		return Account{Type: qt}, nil
	}

	switch qt {
	case QuerySettings:
		return mapSettings(responseJSON)
	case QueryRateLimitStatus:
		return mapRateLimit(responseJSON)
	case QueryTotals:
		return mapTotals(responseJSON)
	case QueryVerifyCredentials:
		return mapVerifyCredentials(responseJSON)
	default:
		return Account{}, NewInvalidOperationError(qt.String())
	}
}

// mapSettings reads the settings document dynamically. The trend location
// arrives as a one-element array; only element 0 is read, and the payload
// carries a single Location, never the array.
func mapSettings(responseJSON string) (Account, error) {
	doc, err := jsondoc.Parse(responseJSON)
	if err != nil {
		return Account{}, NewMalformedResponseError(QuerySettings.String(), err)
	}

	settings := &Settings{
		SleepTime: SleepTime{
			StartHour: doc.Int("sleep_time", "start_time"),
			EndHour:   doc.Int("sleep_time", "end_time"),
			Enabled:   doc.Bool("sleep_time", "enabled"),
		},
		TimeZone: TimeZone{
			Name:             doc.String("time_zone", "name"),
			TzInfoName:       doc.String("time_zone", "tzinfo_name"),
			UTCOffsetSeconds: doc.Int("time_zone", "utc_offset"),
		},
		Language:            doc.String("language"),
		ScreenName:          doc.String("screen_name"),
		AlwaysUseHTTPS:      doc.Bool("always_use_https"),
		DiscoverableByEmail: doc.Bool("discoverable_by_email"),
		GeoEnabled:          doc.Bool("geo_enabled"),
		Protected:           doc.Bool("protected"),
	}

	if loc, ok := doc.Element(0, "trend_location"); ok {
		settings.TrendLocation = &Location{
			WOEID:         loc.Int("woeid"),
			Name:          loc.String("name"),
			Country:       loc.String("country"),
			CountryCode:   loc.String("countryCode"),
			PlaceTypeCode: loc.Int("placeType", "code"),
			PlaceTypeName: loc.String("placeType", "name"),
			URL:           loc.String("url"),
		}
	}

	return Account{Type: QuerySettings, Payload: settings}, nil
}

// mapRateLimit reads the rate-limit document dynamically.
//
// reset_time is parsed as a formatted timestamp; when malformed, the payload
// gets MaxResetTime instead and mapping continues. Callers depend on the
// substitution, so this is deliberately not an error.
func mapRateLimit(responseJSON string) (Account, error) {
	doc, err := jsondoc.Parse(responseJSON)
	if err != nil {
		return Account{}, NewMalformedResponseError(QueryRateLimitStatus.String(), err)
	}

	resetTime, err := time.Parse(createdAtLayout, doc.String("reset_time"))
	if err != nil {
		resetTime = MaxResetTime
	}

	limit := &RateLimit{
		HourlyLimit:        doc.Int("hourly_limit"),
		RemainingHits:      doc.Int("remaining_hits"),
		ResetTime:          resetTime,
		ResetTimeInSeconds: doc.Int("reset_time_in_seconds"),
	}

	return Account{Type: QueryRateLimitStatus, Payload: limit}, nil
}

// totalsWire is the schema-bound shape of the totals response. Wire field
// names correspond one-to-one to the payload fields; no renaming beyond the
// snake_case transliteration.
type totalsWire struct {
	Favorites int64 `json:"favorites"`
	Followers int64 `json:"followers"`
	Friends   int64 `json:"friends"`
	Updates   int64 `json:"updates"`
}

func mapTotals(responseJSON string) (Account, error) {
	var wire totalsWire
	if err := json.Unmarshal([]byte(responseJSON), &wire); err != nil {
		return Account{}, NewMalformedResponseError(QueryTotals.String(), err)
	}

	totals := &Totals{
		Favorites: wire.Favorites,
		Followers: wire.Followers,
		Friends:   wire.Friends,
		Updates:   wire.Updates,
	}

	return Account{Type: QueryTotals, Payload: totals}, nil
}

// userWire is the schema-bound shape of the verify-credentials response.
type userWire struct {
	ID             int64  `json:"id"`
	ScreenName     string `json:"screen_name"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	URL            string `json:"url"`
	Location       string `json:"location"`
	CreatedAt      string `json:"created_at"`
	FollowersCount int64  `json:"followers_count"`
	FriendsCount   int64  `json:"friends_count"`
	FavoritesCount int64  `json:"favourites_count"`
	StatusesCount  int64  `json:"statuses_count"`
	Language       string `json:"lang"`
	Protected      bool   `json:"protected"`
	Verified       bool   `json:"verified"`
	GeoEnabled     bool   `json:"geo_enabled"`
}

// mapVerifyCredentials binds the full profile shape and transforms it.
// This is a distinct deserialization path from the settings/rate-limit walk:
// the profile shape is stable and wide, so struct binding is the right tool.
func mapVerifyCredentials(responseJSON string) (Account, error) {
	var wire userWire
	if err := json.Unmarshal([]byte(responseJSON), &wire); err != nil {
		return Account{}, NewMalformedResponseError(QueryVerifyCredentials.String(), err)
	}

	// created_at example: Mon Jul 16 15:13:52 +0000 2012
	createdAt, _ := time.Parse(createdAtLayout, wire.CreatedAt)

	user := &User{
		ID:             wire.ID,
		ScreenName:     wire.ScreenName,
		Name:           wire.Name,
		Description:    wire.Description,
		URL:            wire.URL,
		Location:       wire.Location,
		CreatedAt:      createdAt,
		FollowersCount: wire.FollowersCount,
		FriendsCount:   wire.FriendsCount,
		FavoritesCount: wire.FavoritesCount,
		StatusesCount:  wire.StatusesCount,
		Language:       wire.Language,
		Protected:      wire.Protected,
		Verified:       wire.Verified,
		GeoEnabled:     wire.GeoEnabled,
	}

	return Account{Type: QueryVerifyCredentials, Payload: user}, nil
}
