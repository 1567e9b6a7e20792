package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildURL_EveryVariant(t *testing.T) {
	const base = "https://api.twitter.com/1/"

	want := map[QueryType]string{
		QueryVerifyCredentials: base + "account/verify_credentials.json",
		QueryRateLimitStatus:   base + "account/rate_limit_status.json",
		QueryTotals:            base + "account/totals.json",
		QuerySettings:          base + "account/settings.json",
	}

	for _, qt := range QueryTypes() {
		t.Run(qt.String(), func(t *testing.T) {
			url, err := BuildURL(base, qt)
			require.NoError(t, err)
			assert.Equal(t, want[qt], url)
		})
	}
}

func TestBuildURL_TotalAndInjective(t *testing.T) {
	// The suffix table must cover every enumeration member, and no two
	// members may share a suffix.
	seen := make(map[string]QueryType)
	for _, qt := range QueryTypes() {
		url, err := BuildURL("", qt)
		require.NoError(t, err, "table missing member %s", qt)

		prev, dup := seen[url]
		require.False(t, dup, "members %s and %s share suffix %q", prev, qt, url)
		seen[url] = qt
	}
	assert.Len(t, seen, len(QueryTypes()))
}

func TestBuildURL_UnknownVariant(t *testing.T) {
	_, err := BuildURL("https://api.twitter.com/1/", QueryType(0))
	require.Error(t, err)
	assert.True(t, IsInvalidOperationError(err))

	_, err = BuildURL("https://api.twitter.com/1/", QueryType(99))
	require.Error(t, err)
	assert.True(t, IsInvalidOperationError(err))
}

func TestBuildActionURL(t *testing.T) {
	url, err := BuildActionURL("https://api.twitter.com/1/", ActionEndSession)
	require.NoError(t, err)
	assert.Equal(t, "https://api.twitter.com/1/account/end_session.json", url)
}

func TestBuildActionURL_UnknownAction(t *testing.T) {
	_, err := BuildActionURL("https://api.twitter.com/1/", Action(42))
	require.Error(t, err)
	assert.True(t, IsInvalidOperationError(err))
}
