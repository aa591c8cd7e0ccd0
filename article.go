package newsapi

import "time"

// ArticleSource identifies the publisher an article came from. ID is empty
// for publishers without a source identifier.
type ArticleSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Article is a single story returned by the top-headlines and everything
// endpoints. Author, Description, URLToImage and Content may be empty when
// the upstream omits them.
type Article struct {
	Source      ArticleSource `json:"source"`
	Author      string        `json:"author"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	URLToImage  string        `json:"urlToImage"`
	PublishedAt time.Time     `json:"publishedAt"`
	Content     string        `json:"content"`
}

// ArticlesPage is the response envelope of the article endpoints.
type ArticlesPage struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
}
