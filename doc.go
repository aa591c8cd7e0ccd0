// Package newsapi provides a Go client for the NewsAPI news-aggregation
// service, covering the top-headlines, everything and sources endpoints.
//
// Requests are constructed through builders that validate filters before any
// network call, and transient failures are retried according to a
// configurable backoff strategy.
//
// Basic usage:
//
//	client, err := newsapi.New("your-api-key",
//	    newsapi.WithRetry(newsapi.RetryExponential(time.Second), 3),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	req, err := newsapi.NewTopHeadlines().
//	    Country(newsapi.CountryUS).
//	    Category(newsapi.CategoryBusiness).
//	    PageSize(5).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	page, err := client.TopHeadlines(ctx, req)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, article := range page.Articles {
//	    fmt.Println(article.Title)
//	}
//
// The API key can also be discovered from the NEWS_API_KEY environment
// variable via [FromEnv].
package newsapi
