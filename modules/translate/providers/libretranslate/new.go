package libretranslate

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/candinya/translate-layer/modules/translate"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const defaultTimeout = 30 * time.Second

func New(settings string, l *zap.Logger) (translate.Provider, error) {
	var cfg ltCfg
	err := yaml.Unmarshal([]byte(settings), &cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: libretranslate config parse err: %v", translate.ErrConfiguration, err)
	}

	if cfg.API.URL == "" {
		return nil, fmt.Errorf("%w: no libretranslate url was provided", translate.ErrConfiguration)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &lt{
		l:      l,
		client: &http.Client{Timeout: timeout},
		url:    strings.TrimRight(cfg.API.URL, "/"),
		key:    cfg.API.Key,
	}, nil
}
