package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	ferrors "github.com/matzehuels/figscope/pkg/errors"
)

const (
	// AppName names the config directory and file.
	AppName = "figscope"

	// FileName is the config file looked up in the working directory and
	// the config directory.
	FileName = AppName + ".toml"

	// EnvPrefix prefixes every figscope environment variable
	// (FIGSCOPE_CACHE_DIR sets cache-dir).
	EnvPrefix = "FIGSCOPE_"

	// DefaultDepth is how many levels below the root the structure view keeps.
	DefaultDepth = 3
)

// Keys shared by the config file, the environment and the CLI flags.
const (
	KeyToken    = "token"
	KeyPassword = "password"
	KeyBaseURL  = "base-url"
	KeyWebURL   = "web-url"
	KeyTimeout  = "timeout"
	KeyDepth    = "depth"
	KeyCacheDir = "cache-dir"
	KeyCacheTTL = "cache-ttl"
	KeyRedisURL = "redis-url"
	KeyNoCache  = "no-cache"
	KeyRefresh  = "refresh"
)

// Config holds all configuration for the application.
type Config struct {
	Token    string        `koanf:"token"`
	Password string        `koanf:"password"`
	BaseURL  string        `koanf:"base-url"`
	WebURL   string        `koanf:"web-url"`
	Timeout  time.Duration `koanf:"timeout"`
	Depth    int           `koanf:"depth"`
	CacheDir string        `koanf:"cache-dir"`
	CacheTTL time.Duration `koanf:"cache-ttl"`
	RedisURL string        `koanf:"redis-url"`
	NoCache  bool          `koanf:"no-cache"`
	Refresh  bool          `koanf:"refresh"`

	// Source lists the config and .env files that were read, in load order.
	Source []string `koanf:"-"`

	k *koanf.Koanf
}

// Options controls where Load looks for configuration.
type Options struct {
	// Flags are applied last. Flags the user did not set only fill keys
	// that no other layer provided.
	Flags *pflag.FlagSet

	// File is an explicit config file. It must exist. When empty, FileName
	// is looked up in the working directory and then in Dir.
	File string

	// Dir overrides the config directory; defaults to [Dir].
	Dir string

	// WorkDir overrides the working directory used for lookups.
	WorkDir string

	// SkipDotEnv disables .env loading.
	SkipDotEnv bool
}

// Load loads configuration from defaults, config file, environment
// variables, and flags.
// Priority: Flags > Env > Config File > Defaults
func Load(opts Options) (*Config, error) {
	if opts.Dir == "" {
		opts.Dir = Dir()
	}
	if opts.WorkDir == "" {
		opts.WorkDir, _ = os.Getwd()
	}

	k := koanf.New(".")
	cfg := &Config{k: k}

	// 1. Defaults
	if err := k.Load(mapProvider(defaults()), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	path, err := findFile(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), Parser()); err != nil {
			return nil, ferrors.Wrap(ferrors.ErrCodeInvalidConfig, err, "read %s", path)
		}
		cfg.Source = append(cfg.Source, path)
	}

	// 3. .env files, then the environment. FIGSCOPE_* wins over FIGMA_*.
	if !opts.SkipDotEnv {
		loaded, err := loadDotEnv(opts.WorkDir, opts.Dir)
		if err != nil {
			return nil, err
		}
		cfg.Source = append(cfg.Source, loaded...)
	}
	if err := k.Load(env.Provider("FIGMA_", ".", figmaEnvKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if opts.Flags != nil {
		if err := k.Load(posflag.Provider(opts.Flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeInvalidConfig, err, "decode configuration")
	}
	cfg.Token = strings.TrimSpace(cfg.Token)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() map[string]any {
	return map[string]any{
		KeyToken:    "",
		KeyPassword: "",
		KeyBaseURL:  "https://api.figma.com/v1",
		KeyWebURL:   "https://www.figma.com",
		KeyTimeout:  "60s",
		KeyDepth:    DefaultDepth,
		KeyCacheDir: "",
		KeyCacheTTL: "1h",
		KeyRedisURL: "",
		KeyNoCache:  false,
		KeyRefresh:  false,
	}
}

// Validate checks value ranges. A missing token is not an error here;
// commands that talk to Figma report it when they build a client.
func (c *Config) Validate() error {
	if err := ferrors.ValidateDepth(c.Depth); err != nil {
		return err
	}
	if err := ferrors.ValidateURL(c.BaseURL); err != nil {
		return ferrors.Wrap(ferrors.ErrCodeInvalidConfig, err, "%s", KeyBaseURL)
	}
	if err := ferrors.ValidateURL(c.WebURL); err != nil {
		return ferrors.Wrap(ferrors.ErrCodeInvalidConfig, err, "%s", KeyWebURL)
	}
	if c.Timeout <= 0 {
		return ferrors.New(ferrors.ErrCodeInvalidConfig, "%s must be positive, got %s", KeyTimeout, c.Timeout)
	}
	if c.CacheTTL < 0 {
		return ferrors.New(ferrors.ErrCodeInvalidConfig, "%s must not be negative, got %s", KeyCacheTTL, c.CacheTTL)
	}
	return nil
}

// Redacted returns the effective configuration as TOML with secrets masked.
func (c *Config) Redacted() ([]byte, error) {
	if c.k == nil {
		return nil, fmt.Errorf("config was not loaded")
	}
	out := c.k.Copy()
	for _, key := range []string{KeyToken, KeyPassword} {
		if out.String(key) != "" {
			_ = out.Set(key, "********")
		}
	}
	if u, err := url.Parse(out.String(KeyRedisURL)); err == nil && u.User != nil {
		_ = out.Set(KeyRedisURL, u.Redacted())
	}
	for _, key := range out.Keys() {
		if _, known := defaults()[key]; !known {
			out.Delete(key)
		}
	}
	return out.Marshal(Parser())
}

// Dir returns the config directory ($XDG_CONFIG_HOME/figscope, falling back
// to the OS user config dir).
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, AppName)
	}
	return ""
}

func findFile(opts Options) (string, error) {
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return "", ferrors.Wrap(ferrors.ErrCodeInvalidConfig, err, "config file %s", opts.File)
		}
		return opts.File, nil
	}
	for _, dir := range []string{opts.WorkDir, opts.Dir} {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, FileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", nil
}

// envKey maps FIGSCOPE_CACHE_DIR to cache-dir.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", "-")
}

// figmaEnvKey accepts FIGMA_TOKEN and FIGMA_PASSWORD and ignores every
// other FIGMA_ variable.
func figmaEnvKey(s string) string {
	switch s {
	case "FIGMA_TOKEN":
		return KeyToken
	case "FIGMA_PASSWORD":
		return KeyPassword
	}
	return ""
}

// Helper to use map as a provider
type mapProvider map[string]any

func (p mapProvider) Read() (map[string]any, error) {
	return p, nil
}

func (p mapProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}
