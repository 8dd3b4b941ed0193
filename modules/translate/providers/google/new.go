package google

import (
	"fmt"

	"github.com/candinya/translate-layer/modules/translate"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// New builds a Client from the provider settings block of the config file.
func New(settings string, l *zap.Logger) (translate.Provider, error) {
	var cfg googleCfg
	err := yaml.Unmarshal([]byte(settings), &cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: google config parse err: %v", translate.ErrConfiguration, err)
	}

	return NewClient(cfg.config(), l)
}

// NewClient validates cfg and returns a ready Client. No request is made.
func NewClient(cfg Config, l *zap.Logger, opts ...Option) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: no google api key was provided", translate.ErrConfiguration)
	}

	if cfg.TranslateURL == "" {
		cfg.TranslateURL = DefaultTranslateURL
	}
	if cfg.DetectURL == "" {
		cfg.DetectURL = DefaultDetectURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	c := &Client{
		l:            l,
		translateURL: cfg.TranslateURL,
		detectURL:    cfg.DetectURL,
		unescapeHTML: cfg.UnescapeHTML,
	}

	if !cfg.OmitKey {
		c.translateURL = attachKey(c.translateURL, cfg.APIKey)
		c.detectURL = attachKey(c.detectURL, cfg.APIKey)
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.transport == nil {
		c.transport = newHTTPTransport(cfg.Timeout, cfg.RandomUserAgent, l)
	}

	return c, nil
}
