package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewassef/LinqToTwitter/internal/query"
)

func TestExtract_TypeOnly(t *testing.T) {
	extractor := NewParamExtractor()

	params, err := extractor.Extract(query.Equals{
		Field: "Type",
		Value: query.String("Totals"),
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Type": "Totals"}, params)
}

func TestExtract_IgnoresUnrecognizedFields(t *testing.T) {
	extractor := NewParamExtractor()

	params, err := extractor.Extract(query.And{Predicates: []query.Predicate{
		query.Equals{Field: "Type", Value: query.String("Settings")},
		query.Equals{Field: "Count", Value: query.Int(200)},
		query.Equals{Field: "IncludeEntities", Value: query.Bool(true)},
	}})
	require.NoError(t, err)

	// Only allow-listed fields survive; other structure is ignored.
	assert.Equal(t, map[string]string{"Type": "Settings"}, params)
}

func TestExtract_AllowListedFields(t *testing.T) {
	extractor := NewParamExtractor("ScreenName")

	params, err := extractor.Extract(query.And{Predicates: []query.Predicate{
		query.Equals{Field: "Type", Value: query.String("VerifyCredentials")},
		query.Equals{Field: "ScreenName", Value: query.String("JoeMayo")},
	}})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"Type":       "VerifyCredentials",
		"ScreenName": "JoeMayo",
	}, params)
}

func TestExtract_MissingType(t *testing.T) {
	extractor := NewParamExtractor("ScreenName")

	testCases := []struct {
		name string
		pred query.Predicate
	}{
		{name: "nil predicate", pred: nil},
		{name: "empty conjunction", pred: query.And{}},
		{
			name: "other fields only",
			pred: query.Equals{Field: "ScreenName", Value: query.String("JoeMayo")},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := extractor.Extract(tc.pred)
			require.Error(t, err)
			assert.True(t, IsConfigurationError(err))
		})
	}
}

func TestExtract_LastComparisonWins(t *testing.T) {
	extractor := NewParamExtractor()

	params, err := extractor.Extract(query.And{Predicates: []query.Predicate{
		query.Equals{Field: "Type", Value: query.String("Totals")},
		query.Equals{Field: "Type", Value: query.String("Settings")},
	}})
	require.NoError(t, err)
	assert.Equal(t, "Settings", params["Type"])
}
