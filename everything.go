package newsapi

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// EverythingRequest is a validated query against the everything endpoint.
// Build one with NewEverything; it is immutable once built.
type EverythingRequest struct {
	query          string
	searchIn       []SearchIn
	sources        []string
	domains        []string
	excludeDomains []string
	from           time.Time
	to             time.Time
	language       Language
	sortBy         SortBy
	pageSize       int
	page           int
}

// EverythingBuilder accumulates everything-search filters.
type EverythingBuilder struct {
	req EverythingRequest
}

// NewEverything returns a builder for the everything endpoint.
func NewEverything() *EverythingBuilder {
	return &EverythingBuilder{}
}

// Query sets the full-text search term.
func (b *EverythingBuilder) Query(query string) *EverythingBuilder {
	b.req.query = query
	return b
}

// SearchIn restricts which article fields the query matches.
func (b *EverythingBuilder) SearchIn(fields ...SearchIn) *EverythingBuilder {
	b.req.searchIn = fields
	return b
}

// Sources restricts results to the given publisher identifiers.
func (b *EverythingBuilder) Sources(ids ...string) *EverythingBuilder {
	b.req.sources = ids
	return b
}

// Domains restricts results to the given domains.
func (b *EverythingBuilder) Domains(domains ...string) *EverythingBuilder {
	b.req.domains = domains
	return b
}

// ExcludeDomains removes results from the given domains.
func (b *EverythingBuilder) ExcludeDomains(domains ...string) *EverythingBuilder {
	b.req.excludeDomains = domains
	return b
}

// From sets the oldest publish date to include.
func (b *EverythingBuilder) From(t time.Time) *EverythingBuilder {
	b.req.from = t
	return b
}

// To sets the newest publish date to include.
func (b *EverythingBuilder) To(t time.Time) *EverythingBuilder {
	b.req.to = t
	return b
}

// Language restricts results to a single language.
func (b *EverythingBuilder) Language(language Language) *EverythingBuilder {
	b.req.language = language
	return b
}

// SortBy sets the result ordering.
func (b *EverythingBuilder) SortBy(order SortBy) *EverythingBuilder {
	b.req.sortBy = order
	return b
}

// PageSize sets the number of results per page (1-100).
func (b *EverythingBuilder) PageSize(n int) *EverythingBuilder {
	b.req.pageSize = n
	return b
}

// Page selects the result page, starting at 1.
func (b *EverythingBuilder) Page(n int) *EverythingBuilder {
	b.req.page = n
	return b
}

// Build validates the accumulated filters and returns an immutable request.
func (b *EverythingBuilder) Build() (*EverythingRequest, error) {
	r := b.req

	if r.query == "" && len(r.sources) == 0 && len(r.domains) == 0 {
		return nil, &ValidationError{
			Field:   "filters",
			Message: "at least one of query, sources or domains is required",
		}
	}
	if !r.from.IsZero() && !r.to.IsZero() && r.from.After(r.to) {
		return nil, &ValidationError{
			Field:   "from",
			Message: "must not be after to",
		}
	}
	if err := validatePaging(r.pageSize, r.page); err != nil {
		return nil, err
	}

	r.searchIn = append([]SearchIn(nil), r.searchIn...)
	r.sources = append([]string(nil), r.sources...)
	r.domains = append([]string(nil), r.domains...)
	r.excludeDomains = append([]string(nil), r.excludeDomains...)
	return &r, nil
}

// values serializes the request to query parameters.
func (r *EverythingRequest) values() url.Values {
	v := url.Values{}
	if r.query != "" {
		v.Set("q", r.query)
	}
	if len(r.searchIn) > 0 {
		fields := make([]string, len(r.searchIn))
		for i, f := range r.searchIn {
			fields[i] = string(f)
		}
		v.Set("searchIn", strings.Join(fields, ","))
	}
	if len(r.sources) > 0 {
		v.Set("sources", strings.Join(r.sources, ","))
	}
	if len(r.domains) > 0 {
		v.Set("domains", strings.Join(r.domains, ","))
	}
	if len(r.excludeDomains) > 0 {
		v.Set("excludeDomains", strings.Join(r.excludeDomains, ","))
	}
	if !r.from.IsZero() {
		v.Set("from", r.from.Format(time.RFC3339))
	}
	if !r.to.IsZero() {
		v.Set("to", r.to.Format(time.RFC3339))
	}
	if r.language != "" {
		v.Set("language", string(r.language))
	}
	if r.sortBy != "" {
		v.Set("sortBy", string(r.sortBy))
	}
	if r.pageSize > 0 {
		v.Set("pageSize", strconv.Itoa(r.pageSize))
	}
	if r.page > 1 {
		v.Set("page", strconv.Itoa(r.page))
	}
	return v
}
