package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
)

//go:generate mockgen -source=downloader.go -destination=../mocks/dictionary/mock_fetcher.go -package=mock_dictionary

// Fetcher retrieves the raw contents of a word list.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// StatusError is returned by HTTPFetcher for non-200 responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status code: %d, body: %s", e.StatusCode, e.Body)
}

// HTTPFetcher downloads word lists over HTTP.
type HTTPFetcher struct {
	client *resty.Client
}

func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	client := resty.New()
	client.SetTimeout(timeout)
	return &HTTPFetcher{
		client: client,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	res, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, &StatusError{
			StatusCode: res.StatusCode(),
			Body:       string(res.Body()),
		}
	}
	return res.Body(), nil
}

// Downloader stores a remote word list on the local filesystem.
type Downloader struct {
	fetcher       Fetcher
	retryAttempts uint
	retryDelay    time.Duration
}

func NewDownloader(fetcher Fetcher, retryAttempts uint) *Downloader {
	return &Downloader{
		fetcher:       fetcher,
		retryAttempts: retryAttempts,
		retryDelay:    time.Second,
	}
}

// Download fetches url into path. An existing file is kept unless force is set.
// It reports whether a new file was written.
func (d *Downloader) Download(ctx context.Context, url, path string, force bool) (bool, error) {
	if _, err := os.Stat(path); err == nil && !force {
		slog.Default().Debug("word list already exists", slog.String("path", path))
		return false, nil
	}

	var contents []byte
	if err := retry.Do(
		func() error {
			body, err := d.fetcher.Fetch(ctx, url)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			contents = body
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(d.retryAttempts+1),
		retry.Delay(d.retryDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Info("Retrying a word list download",
				"attempt", n+1,
				"url", url,
				"lastError", err)
		}),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return false, fmt.Errorf("fetcher.Fetch(%s) > %w", url, err)
	}

	if err := writeFileAtomically(path, contents); err != nil {
		return false, fmt.Errorf("writeFileAtomically(%s) > %w", path, err)
	}
	return true, nil
}

// isRetryableError reports whether a failed fetch is worth another attempt.
// Server errors, rate limiting and transport errors are retried; other HTTP statuses are not.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	statusErr, ok := err.(*StatusError)
	if !ok {
		return true
	}
	return statusErr.StatusCode >= http.StatusInternalServerError ||
		statusErr.StatusCode == http.StatusTooManyRequests
}

func writeFileAtomically(path string, contents []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}

	file, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("os.CreateTemp > %w", err)
	}
	tmpPath := file.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := file.Write(contents); err != nil {
		_ = file.Close()
		return fmt.Errorf("file.Write > %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("file.Close > %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("os.Rename > %w", err)
	}
	return nil
}
