package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/etnz/finance"
	"github.com/spf13/viper"
)

// Environment variables read by fin, and passed to extensions.
const (
	EnvLedgerPath     = "FIN_LEDGER_PATH"
	EnvLedgerCurrency = "FIN_LEDGER_CURRENCY"
	EnvVerbose        = "FIN_VERBOSE"
)

// fileConfig is the layout of the configuration file.
type fileConfig struct {
	Ledger finance.Config `mapstructure:"ledger"`
}

// DefaultConfigFile returns the path of the configuration file used when none
// is given.
func DefaultConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "fin", "config.toml")
}

// LoadConfig reads the configuration from the file at path (the default
// configuration file when path is empty) and the FIN_ environment variables.
// Non zero fields of flags take precedence.
//
// A missing default configuration file is not an error, a missing explicit
// one is.
func LoadConfig(path string, flags finance.Config) (finance.Config, error) {
	v := viper.New()

	def := finance.DefaultConfig()
	v.SetDefault("ledger.path", def.Path)
	v.SetDefault("ledger.currency", def.Currency)

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultConfigFile()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FIN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return finance.Config{}, fmt.Errorf("cannot read configuration: %w", err)
		}
	} else {
		logf("using configuration file %q", v.ConfigFileUsed())
	}

	var c fileConfig
	if err := v.Unmarshal(&c); err != nil {
		return finance.Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Ledger.Currency = strings.ToUpper(c.Ledger.Currency)

	cfg := flags
	if err := mergo.Merge(&cfg, c.Ledger); err != nil {
		return finance.Config{}, fmt.Errorf("cannot merge configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return finance.Config{}, err
	}
	return cfg, nil
}
