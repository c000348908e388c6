// Package models holds the plain config structs cmd/rulekit unmarshals
// viper configuration into.
package models

import "time"

// Config is rulekit CLI's top-level viper-unmarshaled configuration.
type Config struct {
	HTTP HTTPConfig `mapstructure:"http"`
}

// HTTPConfig contains HTTP client settings used when a rule source is
// fetched via --url instead of read from a local file.
type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
	Retries int           `mapstructure:"retries"`
}
