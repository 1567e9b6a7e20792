package account

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewassef/LinqToTwitter/internal/query"
)

// fakeTransport records the calls made through it and plays back canned
// responses keyed by URL.
type fakeTransport struct {
	responses map[string]string
	err       error

	gets  []string
	posts []string
}

func (f *fakeTransport) Get(_ context.Context, url string) (string, error) {
	f.gets = append(f.gets, url)
	if f.err != nil {
		return "", f.err
	}
	return f.responses[url], nil
}

func (f *fakeTransport) Post(_ context.Context, url string) (string, error) {
	f.posts = append(f.posts, url)
	if f.err != nil {
		return "", f.err
	}
	return f.responses[url], nil
}

func TestClient_Query(t *testing.T) {
	transport := &fakeTransport{responses: map[string]string{
		"https://api.twitter.com/1/account/totals.json": `{"favorites":3,"followers":10,"friends":7,"updates":42}`,
	}}
	client := NewClient("", transport)

	acct, err := client.Query(context.Background(), query.Equals{
		Field: "Type",
		Value: query.String("Totals"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"https://api.twitter.com/1/account/totals.json"}, transport.gets)
	totals, ok := acct.Totals()
	require.True(t, ok)
	assert.Equal(t, &Totals{Favorites: 3, Followers: 10, Friends: 7, Updates: 42}, totals)
}

func TestClient_QueryMissingType_NoURLBuilt(t *testing.T) {
	transport := &fakeTransport{}
	client := NewClient("", transport)

	_, err := client.Query(context.Background(), query.Equals{
		Field: "ScreenName",
		Value: query.String("JoeMayo"),
	})
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))

	// Extraction fails before any URL is built or fetched.
	assert.Empty(t, transport.gets)
	assert.Empty(t, transport.posts)
}

func TestClient_QueryUnknownType(t *testing.T) {
	transport := &fakeTransport{}
	client := NewClient("", transport)

	_, err := client.Query(context.Background(), query.Equals{
		Field: "Type",
		Value: query.String("Bogus"),
	})
	require.Error(t, err)
	assert.True(t, IsInvalidQueryTypeError(err))
	assert.Empty(t, transport.gets)
}

func TestClient_QueryTransportFailure(t *testing.T) {
	transportErr := errors.New("connection refused")
	client := NewClient("", &fakeTransport{err: transportErr})

	_, err := client.Query(context.Background(), query.Equals{
		Field: "Type",
		Value: query.String("Settings"),
	})
	require.ErrorIs(t, err, transportErr)
}

func TestClient_QueryCustomBaseURL(t *testing.T) {
	transport := &fakeTransport{responses: map[string]string{
		"http://localhost:8080/1/account/settings.json": `{"language":"en"}`,
	}}
	client := NewClient("http://localhost:8080/1/", transport)

	acct, err := client.Query(context.Background(), query.Equals{
		Field: "Type",
		Value: query.String("Settings"),
	})
	require.NoError(t, err)

	settings, ok := acct.Settings()
	require.True(t, ok)
	assert.Equal(t, "en", settings.Language)
}

func TestClient_EndSession(t *testing.T) {
	transport := &fakeTransport{responses: map[string]string{
		"https://api.twitter.com/1/account/end_session.json": `{"request":"/1/account/end_session.json","error":null}`,
	}}
	client := NewClient("", transport)

	acct, err := client.EndSession(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"https://api.twitter.com/1/account/end_session.json"}, transport.posts)
	assert.Empty(t, transport.gets, "end session is a POST, not a query")

	status, ok := acct.EndSessionStatus()
	require.True(t, ok)
	assert.Equal(t, "/1/account/end_session.json", status.Request)
}
