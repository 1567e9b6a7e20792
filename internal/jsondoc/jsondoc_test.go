package jsondoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
	"screen_name": "JoeMayo",
	"geo_enabled": true,
	"protected": "false",
	"time_zone": {
		"name": "Mountain Time (US & Canada)",
		"utc_offset": -25200
	},
	"hourly_limit": "350",
	"reset_time_in_seconds": 1206576600,
	"trend_location": [
		{"woeid": 2391279, "name": "Denver"}
	],
	"language": null
}`

func TestParse_Malformed(t *testing.T) {
	_, err := Parse(`{"unterminated":`)
	require.Error(t, err)
}

func TestDoc_String(t *testing.T) {
	doc, err := Parse(sampleJSON)
	require.NoError(t, err)

	assert.Equal(t, "JoeMayo", doc.String("screen_name"))
	assert.Equal(t, "Mountain Time (US & Canada)", doc.String("time_zone", "name"))

	// Coercions
	assert.Equal(t, "true", doc.String("geo_enabled"))
	assert.Equal(t, "-25200", doc.String("time_zone", "utc_offset"))

	// Absent and null both read as empty
	assert.Equal(t, "", doc.String("no_such_field"))
	assert.Equal(t, "", doc.String("language"))
}

func TestDoc_Int(t *testing.T) {
	doc, err := Parse(sampleJSON)
	require.NoError(t, err)

	assert.Equal(t, int64(1206576600), doc.Int("reset_time_in_seconds"))
	assert.Equal(t, int64(-25200), doc.Int("time_zone", "utc_offset"))

	// Numeric string coerces; absent is zero
	assert.Equal(t, int64(350), doc.Int("hourly_limit"))
	assert.Equal(t, int64(0), doc.Int("screen_name"))
	assert.Equal(t, int64(0), doc.Int("missing"))
}

func TestDoc_Bool(t *testing.T) {
	doc, err := Parse(sampleJSON)
	require.NoError(t, err)

	assert.True(t, doc.Bool("geo_enabled"))
	assert.False(t, doc.Bool("protected")) // string "false"
	assert.False(t, doc.Bool("missing"))
}

func TestDoc_Exists(t *testing.T) {
	doc, err := Parse(sampleJSON)
	require.NoError(t, err)

	assert.True(t, doc.Exists("language")) // null is still present
	assert.True(t, doc.Exists("time_zone", "name"))
	assert.False(t, doc.Exists("time_zone", "missing"))
	assert.False(t, doc.Exists("screen_name", "nested")) // scalar has no children
}

func TestDoc_Element(t *testing.T) {
	doc, err := Parse(sampleJSON)
	require.NoError(t, err)

	loc, ok := doc.Element(0, "trend_location")
	require.True(t, ok)
	assert.Equal(t, int64(2391279), loc.Int("woeid"))
	assert.Equal(t, "Denver", loc.String("name"))

	_, ok = doc.Element(1, "trend_location")
	assert.False(t, ok, "out of range index")

	_, ok = doc.Element(0, "time_zone")
	assert.False(t, ok, "object is not an array")
}

func TestDoc_Object(t *testing.T) {
	doc, err := Parse(sampleJSON)
	require.NoError(t, err)

	tz, ok := doc.Object("time_zone")
	require.True(t, ok)
	assert.Equal(t, int64(-25200), tz.Int("utc_offset"))

	_, ok = doc.Object("screen_name")
	assert.False(t, ok)
}
