package libretranslate

import (
	"net/http"
	"time"

	"github.com/candinya/translate-layer/modules/translate"
	"go.uber.org/zap"
)

var _ translate.Provider = (*lt)(nil)

type lt struct {
	l *zap.Logger

	client *http.Client
	url    string
	key    *string
}

type ltCfg struct {
	API struct {
		URL string  `yaml:"url"`
		Key *string `yaml:"key,omitempty"`
	} `yaml:"api"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
}
