package google

import (
	"context"

	"github.com/candinya/translate-layer/modules/translate"
	"go.uber.org/zap"
	"golang.org/x/net/html"
)

type translateResponseBody struct {
	Data struct {
		Translations []struct {
			TranslatedText         string `json:"translatedText"`
			DetectedSourceLanguage string `json:"detectedSourceLanguage,omitempty"`
		} `json:"translations"`
	} `json:"data"`
}

// Translate translates req.Text. When req.Source is empty and auto detection
// is allowed, the source language is detected first with an extra round trip.
// A response without translations yields a nil result and no error.
func (c *Client) Translate(ctx context.Context, req *translate.Request) (*string, error) {
	err := req.Validate()
	if err != nil {
		return nil, err
	}

	source := req.Source
	if req.NeedsDetection() {
		c.l.Debug("no source language, detect first")
		source, err = c.Detect(ctx, req.Text)
		if err != nil {
			return nil, err
		}
	}

	requestURL := buildRequestURL(c.translateURL,
		queryParam{"q", req.Text},
		queryParam{"source", source},
		queryParam{"target", req.Target},
	)

	c.l.Debug("translate request",
		zap.String("source", source),
		zap.String("target", req.Target),
		zap.Int("length", len(req.Text)),
	)

	var resBody translateResponseBody
	err = c.transport.Get(ctx, requestURL, &resBody)
	if err != nil {
		return nil, err
	}

	if len(resBody.Data.Translations) == 0 {
		c.l.Debug("translate response without translations")
		return nil, nil
	}

	translated := resBody.Data.Translations[0].TranslatedText
	if c.unescapeHTML {
		translated = html.UnescapeString(translated)
	}

	c.l.Debug("translate response", zap.String("translated", translated))

	return &translated, nil
}
