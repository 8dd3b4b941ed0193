package types

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sampleConfig = `
system:
  debug: true
  listen: ":1323"
  request_timeout: 15s
  redis:
    url: redis://localhost:6379/0
    prefix: "tl:"
    cache_expire: 24h
translate:
  provider: google
  default_lang: en
  settings: |
    api:
      key: ${TEST_TRANSLATE_KEY}
    unescape_html: true
`

func TestParseConfig(t *testing.T) {
	t.Setenv("TEST_TRANSLATE_KEY", "from-env")

	cfg, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	assert.True(t, cfg.System.Debug)
	assert.Equal(t, ":1323", cfg.System.Listen)
	assert.Equal(t, 15*time.Second, cfg.System.RequestTimeout)
	require.NotNil(t, cfg.System.Redis)
	assert.Equal(t, "tl:", cfg.System.Redis.Prefix)
	assert.Equal(t, 24*time.Hour, cfg.System.Redis.CacheExpire)
	assert.Equal(t, "google", cfg.Translate.Provider)
	assert.Equal(t, "en", cfg.Translate.DefaultLang)

	var settings struct {
		API struct {
			Key string `yaml:"key"`
		} `yaml:"api"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(cfg.Translate.Settings), &settings))
	assert.Equal(t, "from-env", settings.API.Key)
}

func TestParseConfigKeepsBareDollar(t *testing.T) {
	t.Setenv("sword", "oops")

	cfg, err := ParseConfig([]byte("system:\n  redis:\n    url: redis://:pa$sword@localhost:6379/0\n"))
	require.NoError(t, err)
	require.NotNil(t, cfg.System.Redis)
	assert.Equal(t, "redis://:pa$sword@localhost:6379/0", cfg.System.Redis.URL)
}

func TestParseConfigUnsetVariable(t *testing.T) {
	cfg, err := ParseConfig([]byte("translate:\n  default_lang: \"${TEST_TRANSLATE_UNSET_LANG}\"\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Translate.DefaultLang)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("translate:\n  provider: libretranslate\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Nil(t, cfg.System.Redis)
	assert.Equal(t, "libretranslate", cfg.Translate.Provider)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("translate: ["), 0o600))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}
