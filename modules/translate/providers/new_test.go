package providers

import (
	"testing"

	"github.com/candinya/translate-layer/modules/translate"
	"github.com/candinya/translate-layer/types"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func TestNewTranslator(t *testing.T) {
	l := zaptest.NewLogger(t)

	p, err := NewTranslator(&types.ConfigTranslate{Provider: "google", Settings: "api:\n  key: k\n"}, l)
	assert.NoError(t, err)
	assert.Implements(t, (*translate.Provider)(nil), p)

	_, err = NewTranslator(&types.ConfigTranslate{Settings: "api:\n  key: k\n"}, l)
	assert.NoError(t, err, "google is the default provider")

	_, err = NewTranslator(&types.ConfigTranslate{Provider: "google"}, l)
	assert.ErrorIs(t, err, translate.ErrConfiguration)

	_, err = NewTranslator(&types.ConfigTranslate{Provider: "libretranslate", Settings: "api:\n  url: http://localhost:5000\n"}, l)
	assert.NoError(t, err)

	_, err = NewTranslator(&types.ConfigTranslate{Provider: "deepl"}, l)
	assert.ErrorIs(t, err, translate.ErrConfiguration)
	assert.EqualError(t, err, "configuration error: unsupported provider: deepl")

	_, err = NewTranslator(&types.ConfigTranslate{Provider: "libretranslate", Settings: "api: ["}, l)
	assert.ErrorIs(t, err, translate.ErrConfiguration)
}

func TestName(t *testing.T) {
	assert.Equal(t, "google", Name(&types.ConfigTranslate{}))
	assert.Equal(t, "libretranslate", Name(&types.ConfigTranslate{Provider: "libretranslate"}))
}
