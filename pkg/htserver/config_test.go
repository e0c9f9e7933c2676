package htserver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/function61/gokit/assert"
)

func TestReadConfigMissingFileGivesDefaults(t *testing.T) {
	conf, err := readConfig(filepath.Join(t.TempDir(), "config.json"))
	assert.Assert(t, err == nil)

	assert.EqualString(t, conf.ListenAddr, ":8080")
	assert.Assert(t, !conf.DefaultPrecise)
	assert.Assert(t, conf.CronCacheSize == 128)
}

func TestReadConfig(t *testing.T) {
	path := writeConfig(t, `{"listen_addr": ":9090", "default_precise": true}`)

	conf, err := readConfig(path)
	assert.Assert(t, err == nil)

	assert.EqualString(t, conf.ListenAddr, ":9090")
	assert.Assert(t, conf.DefaultPrecise)
	assert.Assert(t, conf.CronCacheSize == 128)
}

func TestReadConfigErrors(t *testing.T) {
	_, err := readConfig(writeConfig(t, `{"cron_cache_size": 0}`))
	assert.EqualString(t, err.Error(), "readConfig: cron_cache_size must be positive; got 0")

	_, err = readConfig(writeConfig(t, `{"listen_adr": ":9090"}`))
	assert.Assert(t, err != nil)
}

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.json")
	assert.Assert(t, os.WriteFile(path, []byte(content), 0600) == nil)
	return path
}
