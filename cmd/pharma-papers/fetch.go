package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pharma-papers/internal/pubmed"
	"github.com/pdiddy/pharma-papers/internal/report"
	"github.com/pdiddy/pharma-papers/internal/secrets"
	"github.com/pdiddy/pharma-papers/pkg/types"
)

const (
	defaultSearchTimeout = 15 * time.Second
	defaultFetchTimeout  = 30 * time.Second
	defaultMaxResults    = 100
	defaultUserAgent     = "pharma-papers/0.1"
	toolName             = "pharma-papers"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [query]",
	Short: "Search PubMed and report papers with non-academic authors",
	Long: `Fetch searches PubMed for papers matching a query, retrieves the full
records, and keeps only papers with at least one author affiliated with a
commercial organization. Results print as a table by default; use --file
to write a CSV report, or --json / --yaml for structured output.

NCBI asks E-utilities users to identify themselves with a contact email.
Pass one with --email, set PHARMA_PAPERS_EMAIL, or create .secrets/ncbi-email.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringP("email", "e", "", "contact email sent to NCBI with each request")
	fetchCmd.Flags().StringP("file", "f", "", "write results to this CSV file instead of printing a table")
	fetchCmd.Flags().Int("max-results", defaultMaxResults, "maximum number of PMIDs to request")
	fetchCmd.Flags().Bool("json", false, "output results as JSON")
	fetchCmd.Flags().Bool("yaml", false, "output results as YAML")
	fetchCmd.Flags().BoolP("debug", "d", false, "print the resolved configuration before running")
	fetchCmd.Flags().Duration("search-timeout", defaultSearchTimeout, "deadline for the esearch request")
	fetchCmd.Flags().Duration("fetch-timeout", defaultFetchTimeout, "deadline for the efetch request")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	query := args[0]

	email, _ := cmd.Flags().GetString("email")
	if email == "" {
		email = viper.GetString("email")
	}
	if email == "" {
		email = secrets.ContactEmail(loadedSecrets)
	}
	if email == "" {
		return fmt.Errorf("a contact email is required: pass --email, set PHARMA_PAPERS_EMAIL, or create .secrets/ncbi-email")
	}

	maxResults, _ := cmd.Flags().GetInt("max-results")
	searchTimeout, _ := cmd.Flags().GetDuration("search-timeout")
	fetchTimeout, _ := cmd.Flags().GetDuration("fetch-timeout")
	debug, _ := cmd.Flags().GetBool("debug")

	cfg := types.PubMedConfig{
		SearchTimeout: searchTimeout,
		FetchTimeout:  fetchTimeout,
		UserAgent:     defaultUserAgent,
		Tool:          toolName,
		Email:         email,
		MaxResults:    maxResults,
	}

	// Progress goes to stderr; stdout is reserved for the report.
	progress := cmd.ErrOrStderr()
	if debug {
		fmt.Fprintf(progress, "config: tool=%s email=%s max_results=%d search_timeout=%s fetch_timeout=%s\n",
			cfg.Tool, cfg.Email, cfg.MaxResults, cfg.SearchTimeout, cfg.FetchTimeout)
	}

	client := &http.Client{}
	searcher := &pubmed.ESearchClient{Client: client}
	fetcher := &pubmed.EFetchClient{Client: client}

	records, err := pubmed.FindQualifyingPapers(cmd.Context(), searcher, fetcher, query, cfg, progress)
	if err != nil {
		return err
	}

	file, _ := cmd.Flags().GetString("file")
	jsonOut, _ := cmd.Flags().GetBool("json")
	yamlOut, _ := cmd.Flags().GetBool("yaml")

	switch {
	case file != "":
		f, err := os.Create(file)
		if err != nil {
			return fmt.Errorf("creating %s: %w", file, err)
		}
		defer f.Close()
		if err := report.WriteCSV(records, f); err != nil {
			return fmt.Errorf("writing CSV: %w", err)
		}
		fmt.Fprintf(progress, "wrote %d record(s) to %s\n", len(records), file)
	case jsonOut:
		return report.FormatJSON(records, cmd.OutOrStdout())
	case yamlOut:
		return report.FormatYAML(records, cmd.OutOrStdout())
	default:
		report.FormatTable(records, cmd.OutOrStdout())
	}
	return nil
}
