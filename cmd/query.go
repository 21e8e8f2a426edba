package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akashgh003/gen-ai-asgn/internal/backend"
)

var queryCmd = &cobra.Command{
	Use:   "query [question]",
	Short: "Ask the advisor for product recommendations",
	Long:  `Sends a natural-language query to the backend and prints the answer, the recommended products and the rationale.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runQuery,
}

var searchCmd = &cobra.Command{
	Use:   "search [keywords]",
	Short: "Keyword search over the product catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	queryCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(searchCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	text := strings.TrimSpace(args[0])
	if text == "" {
		return fmt.Errorf("please enter a query")
	}
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	res, err := newBackendClient(cfg).Query(context.Background(), text)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	if jsonOutput {
		return printJSON(os.Stdout, res)
	}
	printQueryResult(os.Stdout, res, "Why these recommendations?")
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	text := strings.TrimSpace(args[0])
	if text == "" {
		return fmt.Errorf("please enter a search query")
	}
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	res, err := newBackendClient(cfg).Search(context.Background(), text)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if jsonOutput {
		return printJSON(os.Stdout, res)
	}
	if len(res.Products) == 0 {
		fmt.Fprintf(os.Stdout, "%s\n", res.Response)
		return nil
	}
	printQueryResult(os.Stdout, res, "Why these results?")
	return nil
}

func printQueryResult(w io.Writer, res *backend.QueryResult, rationaleTitle string) {
	fmt.Fprintf(w, "%s\n\n", res.Response)
	if len(res.Products) > 0 {
		fmt.Fprintf(w, "Found %d products:\n\n", len(res.Products))
		printProducts(w, res.Products)
	}
	printRationale(w, rationaleTitle, res.Rationale)
}
