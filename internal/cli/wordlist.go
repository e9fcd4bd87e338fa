package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/at-ishikawa/smorse/internal/dictionary"
)

// RunDownloadWordList stores the word list at url into path
func RunDownloadWordList(ctx context.Context, output io.Writer, downloader *dictionary.Downloader, url, path string, force bool) error {
	downloaded, err := downloader.Download(ctx, url, path, force)
	if err != nil {
		return fmt.Errorf("failed to download the word list: %w", err)
	}
	if !downloaded {
		fmt.Fprintf(output, "Word list already exists at %s. Use --force to download it again.\n", path)
		return nil
	}

	d, err := dictionary.Load(path, dictionary.WithSkipBlankLines(true))
	if err != nil {
		return fmt.Errorf("failed to read the downloaded word list: %w", err)
	}
	fmt.Fprintf(output, "Downloaded %d words from %s to %s\n", d.Len(), url, path)
	return nil
}
