// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package environment contains the types and methods for fetching configuration from the local environment.
package environment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileName = "azwebapp" // configFileName is the config file name without extension, e.g. azwebapp.yaml.
	envPrefix      = "AZWEBAPP" // envPrefix prefixes the environment variables, e.g. AZWEBAPP_LOG_LEVEL.

	KeySubscriptionID = "subscription-id"
	KeyEnvironment    = "environment"
	KeyLogLevel       = "log-level"
	KeyPollFrequency  = "poll-frequency"

	defaultLogLevel      = "info"
	defaultPollFrequency = 5 * time.Second
)

// Settings are the values read from flags, environment variables and the config file, in that order of precedence.
type Settings struct {
	SubscriptionID string        `mapstructure:"subscription-id"`
	Environment    string        `mapstructure:"environment"`
	LogLevel       string        `mapstructure:"log-level"`
	PollFrequency  time.Duration `mapstructure:"poll-frequency"`
}

// Load reads settings from an `azwebapp` config file in configPath (if present), `AZWEBAPP_*` environment
// variables and the supplied flags. Flags that were not set on the command line do not override other sources.
func Load(flags *pflag.FlagSet, configPath string) (*Settings, error) {
	v := viper.New()
	v.SetConfigName(configFileName)
	if configPath == "" {
		configPath = "."
	}
	v.AddConfigPath(configPath)

	v.SetDefault(KeySubscriptionID, "")
	v.SetDefault(KeyEnvironment, "")
	v.SetDefault(KeyLogLevel, defaultLogLevel)
	v.SetDefault(KeyPollFrequency, defaultPollFrequency)

	// It's okay if there isn't a config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("environment.Load: reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("environment.Load: binding flags: %w", err)
		}
	}

	s := new(Settings)
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("environment.Load: %w", err)
	}
	return s, nil
}
