package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/krakend/docs-search/internal/ranking"
	"github.com/krakend/docs-search/internal/render"
)

var (
	queryHTML bool
	queryJSON bool
)

var queryCmd = &cobra.Command{
	Use:   "query <terms...>",
	Short: "Rank the index against a query and print the results",
	Long: `Rank the index against a query and print at most 10 results.

Examples:
  docs-search query rate limit
  docs-search query --html "rate limit" > results.html
  docs-search query --json endpoint --index-file ./search-index.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if queryHTML && queryJSON {
			return fmt.Errorf("--html and --json cannot be combined")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store := openStore(cmd.Context(), cfg)

		query := strings.TrimSpace(strings.Join(args, " "))
		results := ranking.Rank(query, store.Records())
		out := cmd.OutOrStdout()

		switch {
		case queryJSON:
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(results)
		case queryHTML:
			_, err := fmt.Fprintln(out, render.HTML{}.Render(results, query))
			return err
		default:
			_, err := fmt.Fprint(out, terminalRenderer(out).Render(results, query))
			return err
		}
	},
}

func init() {
	queryCmd.Flags().BoolVar(&queryHTML, "html", false, "Print the HTML result fragment")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "Print results as JSON")
	rootCmd.AddCommand(queryCmd)
}
