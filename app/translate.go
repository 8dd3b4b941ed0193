package app

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/candinya/translate-layer/modules/translate"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type translateResponse struct {
	TranslatedText *string `json:"translatedText"`
}

type detectResponse struct {
	Language string `json:"language"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (a *app) translate(c echo.Context) error {
	req := &translate.Request{
		Text:   c.QueryParam("q"),
		Source: c.QueryParam("source"),
		Target: c.QueryParam("target"),
	}

	if req.Text == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "q is required"})
	}

	if req.Target == "" {
		req.Target = a.cfg.Translate.DefaultLang
	}

	if autoDetect := c.QueryParam("autodetect"); autoDetect != "" {
		enabled, err := strconv.ParseBool(autoDetect)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid autodetect value"})
		}
		req.NoAutoDetect = !enabled
	}

	ctx, cancel := a.requestContext(c.Request().Context())
	defer cancel()

	translated, err := a.translateText(ctx, req)
	if err != nil {
		return a.errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, translateResponse{TranslatedText: translated})
}

func (a *app) detect(c echo.Context) error {
	text := c.QueryParam("q")
	if text == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "q is required"})
	}

	ctx, cancel := a.requestContext(c.Request().Context())
	defer cancel()

	lang, err := a.tp.Detect(ctx, text)
	if err != nil {
		return a.errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, detectResponse{Language: lang})
}

// translateText serves from cache when one is configured. Cache failures are
// logged and never fail the translation.
func (a *app) translateText(ctx context.Context, req *translate.Request) (*string, error) {
	if a.cache == nil {
		return a.tp.Translate(ctx, req)
	}

	// Reject bad requests before touching the cache
	err := req.Validate()
	if err != nil {
		return nil, err
	}

	cacheKey := a.cache.Key(req)

	// Try to get from cache
	a.l.Debug("try to get cache", zap.String("key", cacheKey))
	cachedResult, found, err := a.cache.Get(ctx, cacheKey)
	if err != nil {
		a.l.Error("failed to check translated result from cache", zap.String("key", cacheKey), zap.Error(err))
	} else if found && cachedResult != "" {
		a.l.Debug("valid translated result found", zap.String("key", cacheKey))
		return &cachedResult, nil
	}

	// Send to translate provider
	a.l.Debug("try to send with provider")
	translated, err := a.tp.Translate(ctx, req)
	if err != nil {
		return nil, err
	}

	if translated == nil {
		return nil, nil
	}

	// Save into cache
	err = a.cache.Set(ctx, cacheKey, *translated)
	if err != nil {
		a.l.Warn("failed to save translated result into cache", zap.String("key", cacheKey), zap.Error(err))
	}

	return translated, nil
}

func (a *app) requestContext(parent context.Context) (context.Context, context.CancelFunc) {
	if a.cfg.System.RequestTimeout > 0 {
		return context.WithTimeout(parent, a.cfg.System.RequestTimeout)
	}
	return context.WithCancel(parent)
}

func (a *app) errorJSON(c echo.Context, err error) error {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		a.l.Error("failed to process request", zap.Error(err))
	} else {
		a.l.Debug("rejected request", zap.Error(err))
	}
	return c.JSON(status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, translate.ErrConfiguration):
		return http.StatusBadRequest
	case errors.Is(err, translate.ErrDetection):
		return http.StatusUnprocessableEntity
	case errors.Is(err, translate.ErrTransport), errors.Is(err, translate.ErrDecode):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
