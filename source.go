package newsapi

// Source describes a publisher available through the sources endpoint.
type Source struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Category    Category `json:"category"`
	Language    Language `json:"language"`
	Country     Country  `json:"country"`
}

// SourcesPage is the response envelope of the sources endpoint.
type SourcesPage struct {
	Status  string   `json:"status"`
	Sources []Source `json:"sources"`
}
