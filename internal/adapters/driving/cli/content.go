package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var (
	contentName  string
	contentURL   string
	contentLimit int
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Manage the knowledge base",
}

var contentAddCmd = &cobra.Command{
	Use:   "add [file]",
	Short: "Add an article to the knowledge base",
	Long: `Ingests a markdown article, splitting it into sections on heading
boundaries. Use "-" to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runContentAdd,
}

var contentSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search knowledge base chunks",
	Args:  cobra.ExactArgs(1),
	RunE:  runContentSearch,
}

var contentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored chunks",
	Args:  cobra.NoArgs,
	RunE:  runContentList,
}

func init() {
	contentAddCmd.Flags().StringVar(&contentName, "name", "", "article name (default: file name)")
	contentAddCmd.Flags().StringVar(&contentURL, "url", "", "source URL of the article")
	contentSearchCmd.Flags().IntVarP(&contentLimit, "limit", "n", 10, "maximum number of results")

	contentCmd.AddCommand(contentAddCmd)
	contentCmd.AddCommand(contentSearchCmd)
	contentCmd.AddCommand(contentListCmd)
	rootCmd.AddCommand(contentCmd)
}

func runContentAdd(cmd *cobra.Command, args []string) error {
	if contentService == nil {
		return errors.New("content service not configured")
	}

	path := args[0]
	var data []byte
	var err error
	if path == "-" {
		data, err = os.ReadFile("/dev/stdin")
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read article: %w", err)
	}

	name := contentName
	if name == "" && path != "-" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if name == "" {
		return errors.New("--name is required when reading from stdin")
	}

	if err := contentService.AddArticle(cmd.Context(), string(data), name, contentURL); err != nil {
		return fmt.Errorf("add article: %w", err)
	}

	cmd.Printf("Added %q to the knowledge base.\n", name)
	return nil
}

func runContentSearch(cmd *cobra.Command, args []string) error {
	if contentService == nil {
		return errors.New("content service not configured")
	}

	results, err := contentService.Search(cmd.Context(), args[0], contentLimit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	for i := range results {
		cmd.Printf("  [%d] %s (%.2f)\n", i+1, results[i].Chunk.SectionTitle, results[i].Score)
		cmd.Printf("      Source: %s\n", results[i].Chunk.SourceName)
		if len(results[i].Chunk.Topics) > 0 {
			cmd.Printf("      Topics: %s\n", strings.Join(results[i].Chunk.Topics, ", "))
		}
		cmd.Println()
	}
	return nil
}

func runContentList(cmd *cobra.Command, _ []string) error {
	if contentService == nil {
		return errors.New("content service not configured")
	}

	chunks, err := contentService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	if len(chunks) == 0 {
		cmd.Println("Knowledge base is empty.")
		return nil
	}

	cmd.Printf("%d chunks:\n\n", len(chunks))
	for i := range chunks {
		cmd.Printf("  %s\n", chunks[i].ID)
		cmd.Printf("      %s / %s\n", chunks[i].SourceName, chunks[i].SectionTitle)
	}
	return nil
}
