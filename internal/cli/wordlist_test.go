package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/at-ishikawa/smorse/internal/dictionary"
	mock_dictionary "github.com/at-ishikawa/smorse/internal/mocks/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRunDownloadWordList(t *testing.T) {
	const url = "https://example.com/enable1.txt"

	tests := []struct {
		name      string
		existing  bool
		force     bool
		setupMock func(m *mock_dictionary.MockFetcher)

		wantOutput string
		wantErr    string
	}{
		{
			name: "downloads a word list",
			setupMock: func(m *mock_dictionary.MockFetcher) {
				m.EXPECT().Fetch(gomock.Any(), url).Return([]byte("sos\neta\nmet\n"), nil)
			},
			wantOutput: "Downloaded 3 words from " + url,
		},
		{
			name:     "keeps an existing word list",
			existing: true,
			setupMock: func(m *mock_dictionary.MockFetcher) {
				m.EXPECT().Fetch(gomock.Any(), gomock.Any()).Times(0)
			},
			wantOutput: "Use --force to download it again.",
		},
		{
			name: "fails to download",
			setupMock: func(m *mock_dictionary.MockFetcher) {
				m.EXPECT().Fetch(gomock.Any(), url).Return(nil, &dictionary.StatusError{StatusCode: 404, Body: "not found"})
			},
			wantErr: "failed to download the word list",
		},
		{
			name: "fails with a transport error",
			setupMock: func(m *mock_dictionary.MockFetcher) {
				m.EXPECT().Fetch(gomock.Any(), url).Return(nil, errors.New("connection refused"))
			},
			wantErr: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			fetcher := mock_dictionary.NewMockFetcher(ctrl)
			tt.setupMock(fetcher)

			path := filepath.Join(t.TempDir(), "enable1.txt")
			if tt.existing {
				require.NoError(t, os.WriteFile(path, []byte("sos\n"), 0644))
			}

			var buf bytes.Buffer
			err := RunDownloadWordList(context.Background(), &buf, dictionary.NewDownloader(fetcher, 0), url, path, tt.force)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Contains(t, buf.String(), tt.wantOutput)
		})
	}
}
