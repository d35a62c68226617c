package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const EnvPrefix = "AUVIEWER_CLIENT"

// Load reads the app config from the environment and from a config file.
// An empty file looks for "config" in ./ and ./config; a missing default
// file is not an error.
func Load(file string) (*AppConfig, error) {
	v := viper.New()

	// From the environment
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultAppConfig()
	v.SetDefault("baseURL", "")
	v.SetDefault("verbose", false)
	v.SetDefault("performance", false)
	v.SetDefault("performanceReportingThresholdGeneral", defaults.PerformanceReportingThresholdGeneral)
	v.SetDefault("requestTimeout", 0)
	v.SetDefault("compress", false)

	// From config file
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", file)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./")
		v.AddConfigPath("./config")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, errors.Wrap(err, "read config")
			}
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *AppConfig {
	c := DefaultAppConfig()

	c.BaseURL = v.GetString("baseURL")
	c.Verbose = v.GetBool("verbose")
	c.Performance = v.GetBool("performance")
	c.PerformanceReportingThresholdGeneral = milliseconds(v, "performanceReportingThresholdGeneral")
	c.RequestTimeout = v.GetDuration("requestTimeout")
	c.Compress = v.GetBool("compress")

	for _, key := range EndpointURLKeys {
		if uri := v.GetString("endpoints." + key); uri != "" {
			c.SetEndpoint(key, uri)
		}
	}

	return c
}

// Bare numbers are milliseconds; duration strings such as "250ms" also work.
func milliseconds(v *viper.Viper, key string) time.Duration {
	switch raw := v.Get(key).(type) {
	case int:
		return time.Duration(raw) * time.Millisecond
	case int64:
		return time.Duration(raw) * time.Millisecond
	case float64:
		return time.Duration(raw * float64(time.Millisecond))
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			return time.Duration(f * float64(time.Millisecond))
		}
	}
	return v.GetDuration(key)
}
