package project

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the parsed pubsweep.toml.
type Config struct {
	Rewrite RewriteConfig `toml:"rewrite"`
	Output  OutputConfig  `toml:"output"`
	Cache   CacheConfig   `toml:"cache"`
}

// RewriteConfig controls what gets rewritten and how deep.
type RewriteConfig struct {
	// Recursive descends into inline modules.
	Recursive bool `toml:"recursive"`
	// Extensions lists the file suffixes picked up in directory runs.
	Extensions []string `toml:"extensions"`
	// Exclude lists path globs skipped in directory runs.
	Exclude []string `toml:"exclude"`
}

// OutputConfig controls how results are written back.
type OutputConfig struct {
	// Write rewrites files in place; false prints to stdout.
	Write bool `toml:"write"`
	// BackupSuffix, when set, keeps the original next to the rewrite.
	BackupSuffix string `toml:"backup_suffix"`
}

// CacheConfig controls the on-disk result cache.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// Default returns the configuration used when no manifest exists.
func Default() Config {
	return Config{
		Rewrite: RewriteConfig{
			Extensions: []string{".rs"},
		},
		Output: OutputConfig{Write: true},
		Cache:  CacheConfig{Enabled: true},
	}
}

// Load parses a manifest file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if len(cfg.Rewrite.Extensions) == 0 {
		cfg.Rewrite.Extensions = []string{".rs"}
	}
	return cfg, nil
}

// Discover finds and loads the nearest manifest above startDir. When
// none exists the defaults are returned with ok=false.
func Discover(startDir string) (Config, bool, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil {
		return Config{}, false, err
	}
	if !ok {
		return Default(), false, nil
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, true, err
	}
	return cfg, true, nil
}
