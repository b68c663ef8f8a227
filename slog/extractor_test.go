package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/mbazin/testcards"
	"github.com/mbazin/testcards/mock"
	tcslog "github.com/mbazin/testcards/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs tier, card and category counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(content string) (*testcards.Catalog, error) {
				c := testcards.NewCatalog()
				c.Add("Visa", testcards.Card{Number: "4111111111111111"})
				return c, nil
			},
		}

		extractor := tcslog.NewLoggingExtractor(inner, "table", logger)
		catalog, err := extractor.Extract("<html></html>")
		require.NoError(t, err)
		assert.Equal(t, 1, catalog.Total())

		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "tier=table")
		assert.Contains(t, output, "cards=1")
		assert.Contains(t, output, "categories=1")
	})

	t.Run("logs zero counts on error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(content string) (*testcards.Catalog, error) {
				return nil, testcards.Errorf(testcards.EINVALID, "bad content")
			},
		}

		extractor := tcslog.NewLoggingExtractor(inner, "text", logger)
		_, err := extractor.Extract("oops")

		assert.Equal(t, testcards.EINVALID, testcards.ErrorCode(err))
		assert.Contains(t, buf.String(), "cards=0")
	})
}
