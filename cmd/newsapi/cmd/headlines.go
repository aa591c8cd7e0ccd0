package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	newsapi "github.com/newsapi/client-go"
)

var headlinesCmd = &cobra.Command{
	Use:   "headlines",
	Short: "Fetch current top headlines",
	Long: `Fetch current breaking-news headlines filtered by country, category,
search term or source list.

Examples:
  newsapi headlines --country us
  newsapi headlines --category business --query "nvidia"
  newsapi headlines --sources bbc-news,reuters --json`,
	RunE: runHeadlines,
}

func init() {
	rootCmd.AddCommand(headlinesCmd)

	headlinesCmd.Flags().String("country", "", "two-letter country code")
	headlinesCmd.Flags().String("category", "", "news category")
	headlinesCmd.Flags().StringSlice("sources", nil, "source identifiers")
	headlinesCmd.Flags().StringP("query", "q", "", "search term")
	headlinesCmd.Flags().Int("page-size", 0, "results per page (1-100)")
	headlinesCmd.Flags().Int("page", 0, "result page, starting at 1")
	headlinesCmd.Flags().Bool("json", false, "output as JSON")
}

func runHeadlines(cmd *cobra.Command, args []string) error {
	builder := newsapi.NewTopHeadlines()

	if country, _ := cmd.Flags().GetString("country"); country != "" {
		c, err := newsapi.ParseCountry(country)
		if err != nil {
			return err
		}
		builder = builder.Country(c)
	}
	if category, _ := cmd.Flags().GetString("category"); category != "" {
		c, err := newsapi.ParseCategory(category)
		if err != nil {
			return err
		}
		builder = builder.Category(c)
	}
	if sources, _ := cmd.Flags().GetStringSlice("sources"); len(sources) > 0 {
		builder = builder.Sources(sources...)
	}
	if query, _ := cmd.Flags().GetString("query"); query != "" {
		builder = builder.Query(query)
	}
	if pageSize, _ := cmd.Flags().GetInt("page-size"); pageSize > 0 {
		builder = builder.PageSize(pageSize)
	}
	if page, _ := cmd.Flags().GetInt("page"); page > 0 {
		builder = builder.Page(page)
	}

	req, err := builder.Build()
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	page, err := client.TopHeadlines(cmd.Context(), req)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(page)
	}

	printArticles(page)
	return nil
}

func printArticles(page *newsapi.ArticlesPage) {
	fmt.Printf("%d result(s)\n\n", page.TotalResults)
	for _, article := range page.Articles {
		fmt.Printf("%s  %s\n", article.PublishedAt.Format(time.RFC3339), article.Title)
		fmt.Printf("    %s  %s\n", article.Source.Name, article.URL)
	}
}
