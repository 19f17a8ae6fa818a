// Package config loads launchdeck settings from defaults, an optional
// launchdeck.yaml, LAUNCHDECK_* environment variables and command flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config keys.
const (
	KeyServerAddr     = "server.addr"
	KeyDataDir        = "data.dir"
	KeyStorageBackend = "storage.backend"
	KeyStorageStrict  = "storage.strict"
	KeyReadOnly       = "storage.read_only"
	KeyCORSOrigins    = "cors.origins"
	KeyLauncherAllow  = "launcher.allow"
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
	KeyLogFile        = "log.file"
	KeyWatchEnabled   = "watch.enabled"
	KeyDevSafety      = "dev_safety"
)

// EnvPrefix namespaces environment overrides, e.g. LAUNCHDECK_SERVER_ADDR.
const EnvPrefix = "LAUNCHDECK"

// Config is the resolved process configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Data     DataConfig     `mapstructure:"data"`
	Storage  StorageConfig  `mapstructure:"storage"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Launcher LauncherConfig `mapstructure:"launcher"`
	Log      LogConfig      `mapstructure:"log"`
	Watch    WatchConfig    `mapstructure:"watch"`

	DevSafety bool `mapstructure:"dev_safety"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type DataConfig struct {
	Dir string `mapstructure:"dir"`
}

type StorageConfig struct {
	Backend  string `mapstructure:"backend"`
	Strict   bool   `mapstructure:"strict"`
	ReadOnly bool   `mapstructure:"read_only"`
}

type CORSConfig struct {
	Origins []string `mapstructure:"origins"`
}

type LauncherConfig struct {
	Allow []string `mapstructure:"allow"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

type WatchConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyServerAddr, "127.0.0.1:3001")
	v.SetDefault(KeyDataDir, "./data")
	v.SetDefault(KeyStorageBackend, "json")
	v.SetDefault(KeyStorageStrict, false)
	v.SetDefault(KeyReadOnly, false)
	v.SetDefault(KeyCORSOrigins, []string{"http://localhost:5173", "http://127.0.0.1:5173"})
	v.SetDefault(KeyLauncherAllow, []string{})
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyWatchEnabled, true)
	v.SetDefault(KeyDevSafety, true)
}

// Load resolves the configuration. configFile may be empty, in which case a
// missing launchdeck.yaml is not an error. flags may be nil.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("launchdeck")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// flagKeys maps command-line flag names onto config keys.
var flagKeys = map[string]string{
	"addr":      KeyServerAddr,
	"data-dir":  KeyDataDir,
	"backend":   KeyStorageBackend,
	"read-only": KeyReadOnly,
	"log-level": KeyLogLevel,
	"log-file":  KeyLogFile,
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	// --no-watch inverts watch.enabled.
	if f := flags.Lookup("no-watch"); f != nil && f.Changed && f.Value.String() == "true" {
		v.Set(KeyWatchEnabled, false)
	}
	return nil
}

// Validate rejects settings that cannot be served.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "json", "yaml", "sqlite":
	default:
		return fmt.Errorf("invalid %s %q: want json, yaml or sqlite", KeyStorageBackend, c.Storage.Backend)
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("%s is required", KeyServerAddr)
	}
	if strings.TrimSpace(c.Data.Dir) == "" {
		return fmt.Errorf("%s is required", KeyDataDir)
	}
	return nil
}
