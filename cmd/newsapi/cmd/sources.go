package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	newsapi "github.com/newsapi/client-go"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List available publishers",
	Long: `List publisher identifiers and their metadata.

Examples:
  newsapi sources
  newsapi sources --category technology --language en
  newsapi sources --country gb --json`,
	RunE: runSources,
}

func init() {
	rootCmd.AddCommand(sourcesCmd)

	sourcesCmd.Flags().String("category", "", "news category")
	sourcesCmd.Flags().String("language", "", "two-letter language code")
	sourcesCmd.Flags().String("country", "", "two-letter country code")
	sourcesCmd.Flags().Bool("json", false, "output as JSON")
}

func runSources(cmd *cobra.Command, args []string) error {
	builder := newsapi.NewSources()

	if category, _ := cmd.Flags().GetString("category"); category != "" {
		c, err := newsapi.ParseCategory(category)
		if err != nil {
			return err
		}
		builder = builder.Category(c)
	}
	if language, _ := cmd.Flags().GetString("language"); language != "" {
		l, err := newsapi.ParseLanguage(language)
		if err != nil {
			return err
		}
		builder = builder.Language(l)
	}
	if country, _ := cmd.Flags().GetString("country"); country != "" {
		c, err := newsapi.ParseCountry(country)
		if err != nil {
			return err
		}
		builder = builder.Country(c)
	}

	req, err := builder.Build()
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	page, err := client.Sources(cmd.Context(), req)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(page)
	}

	fmt.Printf("%d source(s)\n\n", len(page.Sources))
	for _, source := range page.Sources {
		fmt.Printf("%-30s %s/%s/%s\n", source.ID, source.Category, source.Language, source.Country)
		fmt.Printf("    %s\n", source.URL)
	}
	return nil
}
