package newsapi

import (
	"net/url"
	"strconv"
	"strings"
)

// TopHeadlinesRequest is a validated query against the top-headlines
// endpoint. Build one with NewTopHeadlines; it is immutable once built.
type TopHeadlinesRequest struct {
	country  Country
	category Category
	sources  []string
	query    string
	pageSize int
	page     int
}

// TopHeadlinesBuilder accumulates top-headlines filters.
type TopHeadlinesBuilder struct {
	req TopHeadlinesRequest
}

// NewTopHeadlines returns a builder for the top-headlines endpoint.
func NewTopHeadlines() *TopHeadlinesBuilder {
	return &TopHeadlinesBuilder{}
}

// Country restricts headlines to a single country. Cannot be combined
// with Sources.
func (b *TopHeadlinesBuilder) Country(country Country) *TopHeadlinesBuilder {
	b.req.country = country
	return b
}

// Category restricts headlines to a topic. Cannot be combined with Sources.
func (b *TopHeadlinesBuilder) Category(category Category) *TopHeadlinesBuilder {
	b.req.category = category
	return b
}

// Sources restricts headlines to the given publisher identifiers.
func (b *TopHeadlinesBuilder) Sources(ids ...string) *TopHeadlinesBuilder {
	b.req.sources = ids
	return b
}

// Query restricts headlines to those matching a search term.
func (b *TopHeadlinesBuilder) Query(query string) *TopHeadlinesBuilder {
	b.req.query = query
	return b
}

// PageSize sets the number of results per page (1-100).
func (b *TopHeadlinesBuilder) PageSize(n int) *TopHeadlinesBuilder {
	b.req.pageSize = n
	return b
}

// Page selects the result page, starting at 1.
func (b *TopHeadlinesBuilder) Page(n int) *TopHeadlinesBuilder {
	b.req.page = n
	return b
}

// Build validates the accumulated filters and returns an immutable request.
func (b *TopHeadlinesBuilder) Build() (*TopHeadlinesRequest, error) {
	r := b.req

	if r.country == "" && r.category == "" && r.query == "" && len(r.sources) == 0 {
		return nil, &ValidationError{
			Field:   "filters",
			Message: "at least one of country, category, query or sources is required",
		}
	}
	if len(r.sources) > 0 && (r.country != "" || r.category != "") {
		return nil, &ValidationError{
			Field:   "sources",
			Message: "cannot be combined with country or category",
		}
	}
	if err := validatePaging(r.pageSize, r.page); err != nil {
		return nil, err
	}

	r.sources = append([]string(nil), r.sources...)
	return &r, nil
}

// values serializes the request to query parameters.
func (r *TopHeadlinesRequest) values() url.Values {
	v := url.Values{}
	if r.country != "" {
		v.Set("country", string(r.country))
	}
	if r.category != "" {
		v.Set("category", string(r.category))
	}
	if len(r.sources) > 0 {
		v.Set("sources", strings.Join(r.sources, ","))
	}
	if r.query != "" {
		v.Set("q", r.query)
	}
	if r.pageSize > 0 {
		v.Set("pageSize", strconv.Itoa(r.pageSize))
	}
	if r.page > 1 {
		v.Set("page", strconv.Itoa(r.page))
	}
	return v
}
