package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestParseQueryType_LeftInverseOfString(t *testing.T) {
	for _, qt := range QueryTypes() {
		t.Run(qt.String(), func(t *testing.T) {
			parsed, err := ParseQueryType(qt.String())
			require.NoError(t, err)
			assert.Equal(t, qt, parsed)
		})
	}
}

func TestParseQueryType_CaseInsensitive(t *testing.T) {
	parsed, err := ParseQueryType("totals")
	require.NoError(t, err)
	assert.Equal(t, QueryTotals, parsed)

	parsed, err = ParseQueryType("VERIFYCREDENTIALS")
	require.NoError(t, err)
	assert.Equal(t, QueryVerifyCredentials, parsed)
}

func TestParseQueryType_Unknown(t *testing.T) {
	testCases := []string{"", "Trends", "EndSession", "Totals2"}

	for _, raw := range testCases {
		t.Run("raw="+raw, func(t *testing.T) {
			_, err := ParseQueryType(raw)
			require.Error(t, err)
			assert.True(t, IsInvalidQueryTypeError(err))
		})
	}
}

func TestQueryType_StringZeroValue(t *testing.T) {
	assert.Equal(t, "", QueryType(0).String())
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "EndSession", ActionEndSession.String())
	assert.Equal(t, "", Action(0).String())
}

func TestAccount_PayloadAccessors(t *testing.T) {
	acct := Account{Type: QueryTotals, Payload: &Totals{Favorites: 3}}

	totals, ok := acct.Totals()
	require.True(t, ok)
	assert.Equal(t, int64(3), totals.Favorites)

	_, ok = acct.Settings()
	assert.False(t, ok)
	_, ok = acct.RateLimit()
	assert.False(t, ok)
	_, ok = acct.User()
	assert.False(t, ok)
	_, ok = acct.EndSessionStatus()
	assert.False(t, ok)
}

func TestSettings_LanguageTag(t *testing.T) {
	s := &Settings{Language: "en"}
	tag, err := s.LanguageTag()
	require.NoError(t, err)
	assert.Equal(t, language.English.String(), tag.String())

	s = &Settings{Language: "not a tag"}
	_, err = s.LanguageTag()
	require.Error(t, err)
}
