package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/candinya/translate-layer/modules/translate"
	"github.com/candinya/translate-layer/modules/translate/providers"
	"github.com/candinya/translate-layer/types"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type app struct {
	cfg *types.Config

	l     *zap.Logger
	cache cache

	tp translate.Provider
}

func newApp(cfg *types.Config) (*app, error) {
	a := app{
		cfg: cfg,
	}

	var err error

	// Initialize logger
	if cfg.System.Debug {
		a.l, err = zap.NewDevelopment()
	} else {
		a.l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Initialize redis cache
	if cfg.System.Redis != nil && cfg.System.Redis.URL != "" {
		redisOpts, err := redis.ParseURL(cfg.System.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse redis url: %w", err)
		}
		a.cache = newRedisCache(redis.NewClient(redisOpts), cfg.System.Redis, providers.Name(&cfg.Translate))
	}

	// Initialize translator
	a.tp, err = providers.NewTranslator(&cfg.Translate, a.l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize translator: %w", err)
	}

	return &a, nil
}

func Start(cfg *types.Config) error {
	a, err := newApp(cfg)
	if err != nil {
		return err
	}

	defer a.l.Sync() // Ignore errors

	return a.newEcho().Start(cfg.System.Listen)
}

// NewLambdaHandler builds the same translator stack as Start, for use with lambda.Start.
func NewLambdaHandler(cfg *types.Config) (func(context.Context, LambdaRequest) (*LambdaResponse, error), error) {
	a, err := newApp(cfg)
	if err != nil {
		return nil, err
	}

	return a.handleLambda, nil
}

func (a *app) newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Set logger
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			a.l.Info("request",
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)

			return nil
		},
	}))

	// Add panic recover
	e.Use(middleware.Recover())

	// Apply health check route (root)
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Translate Layer is running")
	})

	e.GET("/translate", a.translate)
	e.GET("/detect", a.detect)

	return e
}
