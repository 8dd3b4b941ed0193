package types

import "time"

type Config struct {
	System    ConfigSystem    `yaml:"system"`
	Translate ConfigTranslate `yaml:"translate"`
}

type ConfigSystem struct {
	Debug          bool          `yaml:"debug"`
	Redis          *ConfigRedis  `yaml:"redis,omitempty"`
	Listen         string        `yaml:"listen"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

type ConfigRedis struct {
	URL         string        `yaml:"url"`
	Prefix      string        `yaml:"prefix"`
	CacheExpire time.Duration `yaml:"cache_expire"`
}

type ConfigTranslate struct {
	Provider    string `yaml:"provider"`
	DefaultLang string `yaml:"default_lang"`
	Settings    string `yaml:"settings"`
}
