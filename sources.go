package newsapi

import "net/url"

// SourcesRequest is a query against the sources endpoint. All filters are
// optional; the zero value lists every source.
type SourcesRequest struct {
	category Category
	language Language
	country  Country
}

// SourcesBuilder accumulates source-listing filters.
type SourcesBuilder struct {
	req SourcesRequest
}

// NewSources returns a builder for the sources endpoint.
func NewSources() *SourcesBuilder {
	return &SourcesBuilder{}
}

// Category restricts sources to a topic.
func (b *SourcesBuilder) Category(category Category) *SourcesBuilder {
	b.req.category = category
	return b
}

// Language restricts sources to a language.
func (b *SourcesBuilder) Language(language Language) *SourcesBuilder {
	b.req.language = language
	return b
}

// Country restricts sources to a country.
func (b *SourcesBuilder) Country(country Country) *SourcesBuilder {
	b.req.country = country
	return b
}

// Build returns the request. The sources endpoint has no required fields,
// so validation never fails; the error return keeps the builder surface
// uniform across endpoints.
func (b *SourcesBuilder) Build() (*SourcesRequest, error) {
	r := b.req
	return &r, nil
}

// values serializes the request to query parameters.
func (r *SourcesRequest) values() url.Values {
	v := url.Values{}
	if r.category != "" {
		v.Set("category", string(r.category))
	}
	if r.language != "" {
		v.Set("language", string(r.language))
	}
	if r.country != "" {
		v.Set("country", string(r.country))
	}
	return v
}
