package google

import (
	"time"

	"github.com/candinya/translate-layer/modules/translate"
	"go.uber.org/zap"
)

const (
	DefaultTranslateURL = "https://www.googleapis.com/language/translate/v2"
	DefaultDetectURL    = "https://www.googleapis.com/language/translate/v2/detect"

	defaultTimeout = 10 * time.Second
)

var _ translate.Provider = (*Client)(nil)

// Client talks to the Google Translate v2 REST API. It is immutable once
// built and safe for concurrent use.
type Client struct {
	l *zap.Logger

	transport    Transport
	translateURL string
	detectURL    string
	unescapeHTML bool
}

// Config holds everything needed to build a Client.
type Config struct {
	APIKey       string
	TranslateURL string
	DetectURL    string

	// OmitKey keeps the base URLs as given, without the key query parameter.
	OmitKey bool

	Timeout         time.Duration
	UnescapeHTML    bool
	RandomUserAgent bool
}

type googleCfg struct {
	API struct {
		Key          string `yaml:"key"`
		TranslateURL string `yaml:"translate_url,omitempty"`
		DetectURL    string `yaml:"detect_url,omitempty"`
		AttachKey    *bool  `yaml:"attach_key,omitempty"`
	} `yaml:"api"`
	Timeout         time.Duration `yaml:"timeout,omitempty"`
	UnescapeHTML    bool          `yaml:"unescape_html"`
	RandomUserAgent bool          `yaml:"random_user_agent"`
}

func (c *googleCfg) config() Config {
	cfg := Config{
		APIKey:          c.API.Key,
		TranslateURL:    c.API.TranslateURL,
		DetectURL:       c.API.DetectURL,
		Timeout:         c.Timeout,
		UnescapeHTML:    c.UnescapeHTML,
		RandomUserAgent: c.RandomUserAgent,
	}
	if c.API.AttachKey != nil && !*c.API.AttachKey {
		cfg.OmitKey = true
	}
	return cfg
}

// Option configures a Client.
type Option func(*Client)

// WithTransport replaces the default HTTP transport.
func WithTransport(t Transport) Option {
	return func(c *Client) { c.transport = t }
}
