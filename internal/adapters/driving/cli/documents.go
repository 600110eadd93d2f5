package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "Manage indexed documents",
	Long:  `List, refresh, or delete documents indexed by the remote service.`,
}

var documentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List indexed documents",
	RunE:  runDocumentsList,
}

var documentsRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Re-fetch the document list from the server",
	RunE:  runDocumentsRefresh,
}

var documentsDeleteCmd = &cobra.Command{
	Use:   "delete [path]",
	Short: "Delete an indexed document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsDelete,
}

// documentsPreviews shows content previews alongside each document.
var documentsPreviews bool

func init() {
	documentsListCmd.Flags().BoolVar(&documentsPreviews, "previews", false, "Show content previews")

	documentsCmd.AddCommand(documentsListCmd)
	documentsCmd.AddCommand(documentsRefreshCmd)
	documentsCmd.AddCommand(documentsDeleteCmd)
	rootCmd.AddCommand(documentsCmd)
}

func runDocumentsList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	docs, err := documentService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents indexed yet. Run 'intramate upload' first.")
		return nil
	}

	for i := range docs {
		cmd.Printf("  %s\n", docs[i].Name)
		cmd.Printf("    Path:   %s\n", docs[i].Path)
		cmd.Printf("    Chunks: %d\n", docs[i].ChunkCount)
		if documentsPreviews {
			for _, preview := range docs[i].Previews {
				cmd.Printf("    > %s\n", preview)
			}
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocumentsRefresh(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	docs, err := documentService.Refresh(context.Background())
	if err != nil {
		return fmt.Errorf("failed to refresh documents: %w", err)
	}

	cmd.Printf("Refreshed: %d documents indexed.\n", len(docs))
	return nil
}

func runDocumentsDelete(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	path := args[0]
	if err := documentService.Remove(context.Background(), path); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	cmd.Printf("Document %s deleted.\n", path)
	return nil
}
