package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	newsapi "github.com/newsapi/client-go"
)

// dateLayout is accepted for --from and --to; full RFC 3339 works too.
const dateLayout = "2006-01-02"

var everythingCmd = &cobra.Command{
	Use:   "everything",
	Short: "Search the full article archive",
	Long: `Run a full-text search across the historical article set.

Examples:
  newsapi everything --query "nvidia stock" --language en
  newsapi everything --query fusion --from 2025-02-13 --to 2025-03-20
  newsapi everything --domains example.com --sort-by popularity --json`,
	RunE: runEverything,
}

func init() {
	rootCmd.AddCommand(everythingCmd)

	everythingCmd.Flags().StringP("query", "q", "", "search term")
	everythingCmd.Flags().StringSlice("search-in", nil, "fields to search (title, description, content)")
	everythingCmd.Flags().StringSlice("sources", nil, "source identifiers")
	everythingCmd.Flags().StringSlice("domains", nil, "domains to include")
	everythingCmd.Flags().StringSlice("exclude-domains", nil, "domains to exclude")
	everythingCmd.Flags().String("from", "", "oldest publish date (YYYY-MM-DD)")
	everythingCmd.Flags().String("to", "", "newest publish date (YYYY-MM-DD)")
	everythingCmd.Flags().String("language", "", "two-letter language code")
	everythingCmd.Flags().String("sort-by", "", "sort order (publishedAt, relevancy, popularity)")
	everythingCmd.Flags().Int("page-size", 0, "results per page (1-100)")
	everythingCmd.Flags().Int("page", 0, "result page, starting at 1")
	everythingCmd.Flags().Bool("json", false, "output as JSON")
}

func runEverything(cmd *cobra.Command, args []string) error {
	builder := newsapi.NewEverything()

	if query, _ := cmd.Flags().GetString("query"); query != "" {
		builder = builder.Query(query)
	}
	if fields, _ := cmd.Flags().GetStringSlice("search-in"); len(fields) > 0 {
		parsed := make([]newsapi.SearchIn, 0, len(fields))
		for _, f := range fields {
			s, err := newsapi.ParseSearchIn(f)
			if err != nil {
				return err
			}
			parsed = append(parsed, s)
		}
		builder = builder.SearchIn(parsed...)
	}
	if sources, _ := cmd.Flags().GetStringSlice("sources"); len(sources) > 0 {
		builder = builder.Sources(sources...)
	}
	if domains, _ := cmd.Flags().GetStringSlice("domains"); len(domains) > 0 {
		builder = builder.Domains(domains...)
	}
	if excluded, _ := cmd.Flags().GetStringSlice("exclude-domains"); len(excluded) > 0 {
		builder = builder.ExcludeDomains(excluded...)
	}
	if from, _ := cmd.Flags().GetString("from"); from != "" {
		t, err := parseDate(from)
		if err != nil {
			return err
		}
		builder = builder.From(t)
	}
	if to, _ := cmd.Flags().GetString("to"); to != "" {
		t, err := parseDate(to)
		if err != nil {
			return err
		}
		builder = builder.To(t)
	}
	if language, _ := cmd.Flags().GetString("language"); language != "" {
		l, err := newsapi.ParseLanguage(language)
		if err != nil {
			return err
		}
		builder = builder.Language(l)
	}
	if sortBy, _ := cmd.Flags().GetString("sort-by"); sortBy != "" {
		s, err := newsapi.ParseSortBy(sortBy)
		if err != nil {
			return err
		}
		builder = builder.SortBy(s)
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

	page, err := client.Everything(cmd.Context(), req)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(page)
	}

	printArticles(page)
	return nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD or RFC 3339", s)
	}
	return t, nil
}
