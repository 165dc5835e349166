package wikisect_test

import (
	"testing"
	"time"

	"github.com/fwojciec/wikisect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := wikisect.DefaultConfig()

	assert.Equal(t, wikisect.Bounded(10), cfg.MaxWords)
	assert.False(t, cfg.MaxLinks.IsBounded())
	assert.Equal(t, wikisect.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, wikisect.DefaultSentinel, cfg.Sentinel)
	assert.Equal(t, wikisect.DefaultStopWordsPath, cfg.StopWordsPath)
	assert.Equal(t, wikisect.FormatText, cfg.Format)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*wikisect.Config)
		msg    string
	}{
		{"missing base URL", func(c *wikisect.Config) { c.BaseURL = "" }, "base URL required"},
		{"negative timeout", func(c *wikisect.Config) { c.Timeout = -time.Second }, "timeout must not be negative"},
		{"negative rate", func(c *wikisect.Config) { c.RequestsPerSecond = -1 }, "requests per second must not be negative"},
		{"unknown format", func(c *wikisect.Config) { c.Format = "xml" }, `unknown format "xml"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := wikisect.DefaultConfig()
			tt.modify(&cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.Equal(t, wikisect.EINVALID, wikisect.ErrorCode(err))
			assert.Equal(t, tt.msg, wikisect.ErrorMessage(err))
		})
	}

	t.Run("accepts every known format", func(t *testing.T) {
		t.Parallel()

		for _, f := range []string{wikisect.FormatText, wikisect.FormatMarkdown, wikisect.FormatJSON} {
			cfg := wikisect.DefaultConfig()
			cfg.Format = f
			assert.NoError(t, cfg.Validate())
		}
	})
}

func TestConfig_PageOptions(t *testing.T) {
	t.Parallel()

	cfg := wikisect.DefaultConfig()
	cfg.BaseURL = "https://de.wikipedia.org"
	cfg.Sentinel = "Navigationsmenü"
	cfg.StrictNormalization = true
	stop := wikisect.NewStopWordSet([]string{"der"})

	opts := cfg.PageOptions(stop)

	assert.Equal(t, "https://de.wikipedia.org", opts.BaseURL)
	assert.Equal(t, "Navigationsmenü", opts.Sentinel)
	assert.True(t, opts.Strict)
	assert.True(t, opts.StopWords.Contains("der"))
}
