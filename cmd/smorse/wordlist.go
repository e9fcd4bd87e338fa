package main

import (
	"time"

	"github.com/at-ishikawa/smorse/internal/cli"
	"github.com/at-ishikawa/smorse/internal/config"
	"github.com/at-ishikawa/smorse/internal/dictionary"
	"github.com/spf13/cobra"
)

func newWordListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordlist",
		Short: "Manage the word list",
	}
	cmd.AddCommand(newWordListDownloadCommand())
	return cmd
}

func newWordListDownloadCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download the word list to wordlist.path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags(), map[string]string{"url": "wordlist.url"}, config.DownloadFields)
			if err != nil {
				return err
			}

			fetcher := dictionary.NewHTTPFetcher(time.Duration(cfg.WordList.TimeoutSeconds) * time.Second)
			downloader := dictionary.NewDownloader(fetcher, cfg.WordList.RetryAttempts)
			return cli.RunDownloadWordList(cmd.Context(), cmd.OutOrStdout(), downloader, cfg.WordList.URL, cfg.WordList.Path, force)
		},
	}
	cmd.Flags().String("url", "", "URL of the word list (overrides wordlist.url)")
	cmd.Flags().BoolVar(&force, "force", false, "Download even if the word list already exists")

	return cmd
}
