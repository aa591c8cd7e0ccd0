// Package cmd contains all CLI commands for the newsapi tool.
package cmd

import (
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	newsapi "github.com/newsapi/client-go"
)

var (
	verbose bool
	logger  *slog.Logger
	version = "dev"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "newsapi",
	Short: "Query the NewsAPI endpoints from the command line",
	Long: `newsapi queries the NewsAPI news-aggregation service.

The API key is taken from --api-key, the NEWS_API_KEY environment
variable, or a .env file in the working directory, in that order.

Example usage:
  newsapi headlines --country us --category business
  newsapi everything --query "nvidia stock" --language en --sort-by publishedAt
  newsapi sources --category technology --json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("api-key", "", "NewsAPI key (default: NEWS_API_KEY)")
	rootCmd.PersistentFlags().Int("retries", 2, "retries for transient failures")

	_ = viper.BindPFlag("api_key", rootCmd.PersistentFlags().Lookup("api-key"))
	_ = viper.BindPFlag("retries", rootCmd.PersistentFlags().Lookup("retries"))
	_ = viper.BindEnv("api_key", newsapi.EnvAPIKey)
}

// initConfig sets up logging and loads environment configuration.
func initConfig() error {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// Best effort; the key may come from the real environment or a flag.
	_ = godotenv.Load()

	return nil
}

// newClient builds a client from the resolved configuration.
func newClient() (*newsapi.Client, error) {
	opts := []newsapi.Option{
		newsapi.WithRetry(newsapi.RetryExponential(time.Second), viper.GetInt("retries")),
	}
	if verbose {
		opts = append(opts, newsapi.WithLogger(logger))
	}

	if key := viper.GetString("api_key"); key != "" {
		return newsapi.New(key, opts...)
	}
	return newsapi.FromEnv(opts...)
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
