package providers

import (
	"fmt"

	"github.com/candinya/translate-layer/modules/translate"
	"github.com/candinya/translate-layer/modules/translate/providers/google"
	"github.com/candinya/translate-layer/modules/translate/providers/libretranslate"
	"github.com/candinya/translate-layer/types"
	"go.uber.org/zap"
)

// Default is used when the config leaves the provider name empty.
const Default = "google"

// Name returns the effective provider name of cfg.
func Name(cfg *types.ConfigTranslate) string {
	if cfg.Provider == "" {
		return Default
	}
	return cfg.Provider
}

func NewTranslator(cfg *types.ConfigTranslate, l *zap.Logger) (translate.Provider, error) {
	switch Name(cfg) {
	case "google":
		return google.New(cfg.Settings, l)
	case "libretranslate":
		return libretranslate.New(cfg.Settings, l)
	default:
		return nil, fmt.Errorf("%w: unsupported provider: %s", translate.ErrConfiguration, cfg.Provider)
	}
}
