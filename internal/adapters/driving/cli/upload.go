package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/intramate/intramate-cli/internal/core/domain"
	"github.com/intramate/intramate-cli/internal/core/ports/driving"
	"github.com/intramate/intramate-cli/internal/logger"
)

var uploadCmd = &cobra.Command{
	Use:   "upload [files...]",
	Short: "Upload documents for indexing",
	Long: `Upload one or more documents to the remote service for indexing.

Each file is validated on its own: rejected files are reported and
skipped while the rest of the selection uploads. Accepted files are
uploaded in order; the first upload failure stops the batch and the
remaining files are skipped. Supported types: pdf, docx, md, html, txt,
up to 50 MiB each.

With --watch, the command instead observes a directory and uploads
every supported file that appears in it.`,
	RunE: runUpload,
}

// uploadWatch switches to directory-watch mode.
var uploadWatch bool

func init() {
	uploadCmd.Flags().BoolVarP(&uploadWatch, "watch", "w", false, "Watch a directory and upload new files")
	rootCmd.AddCommand(uploadCmd)
}

// pendingFromPath stats a local file and applies the validation gate.
func pendingFromPath(path string) (domain.PendingFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.PendingFile{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if info.IsDir() {
		return domain.PendingFile{}, fmt.Errorf("%s is a directory", path)
	}
	return domain.NewPendingFile(filepath.Base(path), path, info.Size()), nil
}

// batchObserver prints each file's result as the batch progresses.
func batchObserver(cmd *cobra.Command) driving.BatchObserver {
	reported := make(map[int]bool)
	return func(state domain.BatchState) {
		for i, out := range state.Outcomes {
			if reported[i] {
				continue
			}
			if out.ChunkCount != nil {
				reported[i] = true
				cmd.Printf("  %s: indexed in %d chunks\n", out.FileName, *out.ChunkCount)
			} else if out.Failed {
				reported[i] = true
				cmd.Printf("  %s: failed\n", out.FileName)
			}
		}
	}
}

func runUpload(cmd *cobra.Command, args []string) error {
	if uploadService == nil {
		return errors.New("upload service not configured")
	}

	if uploadWatch {
		return runUploadWatch(cmd, args)
	}

	if len(args) == 0 {
		return errors.New("no files given; pass file paths or use --watch")
	}

	// Validation is per file: rejected files are reported and skipped
	// while the rest of the selection uploads.
	files := make([]domain.PendingFile, 0, len(args))
	for _, path := range args {
		file, err := pendingFromPath(path)
		if err != nil {
			return err
		}
		if !file.Validation.OK {
			cmd.Printf("  %s: rejected (%s)\n", file.Name, file.Validation.Reason)
			continue
		}
		files = append(files, file)
	}
	if len(files) == 0 {
		return errors.New("no valid files to upload")
	}

	state, err := uploadService.Run(cmd.Context(), files, batchObserver(cmd))
	if err != nil {
		if state != nil && state.Phase == domain.BatchAborted {
			skipped := len(state.Outcomes) - state.FailedIndex - 1
			if skipped > 0 {
				cmd.Printf("Batch aborted, %d files skipped.\n", skipped)
			}
		}
		return fmt.Errorf("upload failed: %w", err)
	}

	cmd.Printf("Uploaded %d files.\n", len(files))
	return nil
}

// runUploadWatch observes a directory and uploads every supported file
// created in it. The directory comes from the argument or the
// configured watch_dir.
func runUploadWatch(cmd *cobra.Command, args []string) error {
	dir := ""
	if len(args) > 0 {
		dir = args[0]
	} else if settingsStore != nil {
		settings, err := settingsStore.Load()
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}
		dir = settings.WatchDir
	}
	if dir == "" {
		return errors.New("no directory to watch; pass one or set watch_dir in config")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	cmd.Printf("Watching %s for new documents. Press Ctrl+C to stop.\n", dir)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			file, err := pendingFromPath(event.Name)
			if err != nil {
				logger.Debug("skipping %s: %v", event.Name, err)
				continue
			}
			if !file.Validation.OK {
				logger.Warn("skipping %s: %s", file.Name, file.Validation.Reason)
				continue
			}
			if _, err := uploadService.Run(ctx, []domain.PendingFile{file}, batchObserver(cmd)); err != nil {
				// Keep watching; a single failed upload should not end
				// the session.
				cmd.PrintErrf("upload of %s failed: %v\n", file.Name, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error: %v", err)
		}
	}
}
