package htserver

import (
	"fmt"

	"github.com/function61/gokit/fileexists"
	"github.com/function61/gokit/jsonfile"
)

type Config struct {
	ListenAddr     string `json:"listen_addr"`
	DefaultPrecise bool   `json:"default_precise"` // when request doesn't specify "precise"
	CronCacheSize  int    `json:"cron_cache_size"` // parsed cron schedules to keep around
}

func defaultConfig() Config {
	return Config{
		ListenAddr:     ":8080",
		DefaultPrecise: false,
		CronCacheSize:  128,
	}
}

// config file is optional. fields missing from the file keep their defaults.
func readConfig(path string) (*Config, error) {
	conf := defaultConfig()

	exists, err := fileexists.Exists(path)
	if err != nil {
		return nil, err
	}

	if !exists {
		return &conf, nil
	}

	if err := jsonfile.Read(path, &conf, true); err != nil {
		return nil, fmt.Errorf("readConfig: %w", err)
	}

	if conf.CronCacheSize < 1 {
		return nil, fmt.Errorf("readConfig: cron_cache_size must be positive; got %d", conf.CronCacheSize)
	}

	return &conf, nil
}
