package newsapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourcesBuilder_NoRequiredFields(t *testing.T) {
	req, err := NewSources().Build()
	require.NoError(t, err)
	assert.Empty(t, req.values())
}

func TestSourcesRequest_Values(t *testing.T) {
	req, err := NewSources().
		Category(CategoryTechnology).
		Language(LanguageEN).
		Country(CountryGB).
		Build()
	require.NoError(t, err)

	v := req.values()
	assert.Equal(t, "technology", v.Get("category"))
	assert.Equal(t, "en", v.Get("language"))
	assert.Equal(t, "gb", v.Get("country"))
}
