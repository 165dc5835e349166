package wikisect

import "time"

// Output formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// DefaultStopWordsPath is the stop-word file looked up when none is configured.
const DefaultStopWordsPath = "stopWordsExtended.txt"

// DefaultTimeout is the default timeout for a page fetch.
const DefaultTimeout = 10 * time.Second

// Config holds program settings. Zero fields are filled from DefaultConfig
// by the loaders.
type Config struct {
	StopWordsPath       string        `yaml:"stop_words"`
	MaxWords            Limit         `yaml:"max_words"`
	MaxLinks            Limit         `yaml:"max_links"`
	BaseURL             string        `yaml:"base_url"`
	Sentinel            string        `yaml:"sentinel"`
	Timeout             time.Duration `yaml:"timeout"`
	UserAgent           string        `yaml:"user_agent"`
	RequestsPerSecond   float64       `yaml:"requests_per_second"`
	StrictNormalization bool          `yaml:"strict_normalization"`
	Format              string        `yaml:"format"`
}

// DefaultConfig returns the settings used when nothing is configured:
// top 10 words and every link per section.
func DefaultConfig() Config {
	return Config{
		StopWordsPath:     DefaultStopWordsPath,
		MaxWords:          Bounded(10),
		MaxLinks:          Unbounded(),
		BaseURL:           DefaultBaseURL,
		Sentinel:          DefaultSentinel,
		Timeout:           DefaultTimeout,
		UserAgent:         "wikisect/1.0 (+https://github.com/fwojciec/wikisect)",
		RequestsPerSecond: 1,
		Format:            FormatText,
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return Errorf(EINVALID, "base URL required")
	}
	if c.Timeout < 0 {
		return Errorf(EINVALID, "timeout must not be negative")
	}
	if c.RequestsPerSecond < 0 {
		return Errorf(EINVALID, "requests per second must not be negative")
	}
	switch c.Format {
	case FormatText, FormatMarkdown, FormatJSON:
	default:
		return Errorf(EINVALID, "unknown format %q", c.Format)
	}
	return nil
}

// PageOptions returns the page-building options implied by c.
func (c *Config) PageOptions(stopWords StopWordSet) PageOptions {
	return PageOptions{
		StopWords: stopWords,
		BaseURL:   c.BaseURL,
		Sentinel:  c.Sentinel,
		Strict:    c.StrictNormalization,
	}
}
