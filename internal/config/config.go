// Package config loads rucalc settings from rucalc.toml, RUCALC_* environment
// variables and command-line flags, in increasing order of precedence.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/cours-de-latin/rucalc/internal/logger"
)

// EnvPrefix prefixes every environment override, e.g. RUCALC_SERVER_ADDR.
const EnvPrefix = "RUCALC"

// FileName is the config file searched for without its extension.
const FileName = "rucalc"

// Config is the full rucalc configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Lexicon LexiconConfig `mapstructure:"lexicon"`
	Log     logger.Config `mapstructure:"log"`
}

// ServerConfig configures cmd/server.
type ServerConfig struct {
	Addr           string   `mapstructure:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LexiconConfig selects the vocabulary. An empty path means the embedded one.
type LexiconConfig struct {
	Path string `mapstructure:"path"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("lexicon.path", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stderr")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
}

// New returns a viper instance with defaults, environment binding and the
// config search path set up. Flags can be bound to it before Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	v.SetConfigName(FileName)
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", FileName))
	}
	return v
}

// Load reads the config file if one is found and decodes v. Finding no file
// on the search path is not an error; a file named with SetConfigFile must
// exist.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	return &cfg, nil
}
