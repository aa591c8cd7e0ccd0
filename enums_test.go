package newsapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("Business")
	require.NoError(t, err)
	assert.Equal(t, CategoryBusiness, c)

	_, err = ParseCategory("finance")
	assert.Error(t, err)
}

func TestParseCountry(t *testing.T) {
	c, err := ParseCountry("US")
	require.NoError(t, err)
	assert.Equal(t, CountryUS, c)

	c, err = ParseCountry("gb")
	require.NoError(t, err)
	assert.Equal(t, CountryGB, c)

	_, err = ParseCountry("zz")
	assert.Error(t, err)

	_, err = ParseCountry("")
	assert.Error(t, err)
}

func TestParseLanguage(t *testing.T) {
	l, err := ParseLanguage("EN")
	require.NoError(t, err)
	assert.Equal(t, LanguageEN, l)

	_, err = ParseLanguage("xx")
	assert.Error(t, err)
}

func TestParseSortBy(t *testing.T) {
	tests := []struct {
		input    string
		expected SortBy
	}{
		{"publishedAt", SortByPublishedAt},
		{"publishedat", SortByPublishedAt},
		{"relevancy", SortByRelevancy},
		{"popularity", SortByPopularity},
	}

	for _, tt := range tests {
		s, err := ParseSortBy(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, s)
	}

	_, err := ParseSortBy("newest")
	assert.Error(t, err)
}

func TestParseSearchIn(t *testing.T) {
	s, err := ParseSearchIn("Title")
	require.NoError(t, err)
	assert.Equal(t, SearchInTitle, s)

	_, err = ParseSearchIn("body")
	assert.Error(t, err)
}

func TestEnumWireCodes(t *testing.T) {
	// Codes must match the upstream API exactly.
	assert.Equal(t, "business", string(CategoryBusiness))
	assert.Equal(t, "us", string(CountryUS))
	assert.Equal(t, "en", string(LanguageEN))
	assert.Equal(t, "publishedAt", string(SortByPublishedAt))
	assert.Equal(t, "description", string(SearchInDescription))
}
