// internal/config/config.go
package config

import (
	"strings"

	"github.com/hyp3rd/ewrap"
	"github.com/spf13/viper"

	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/sentinel"
)

// EnvPrefix is prepended to environment variables read as configuration,
// e.g. PRUEBAS_STATISTICS_OUTPUT.
const EnvPrefix = "PRUEBAS"

// Configuration keys.
const (
	KeyConfigFile       = "config"
	KeyLogLevel         = "log-level"
	KeyDebug            = "debug"
	KeyStatisticsOutput = "statistics.output"
	KeySalesOutput      = "sales.output"
	KeyConvertOutput    = "convert.output"
	KeyWordCountOutput  = "wordcount.output"
)

// Default result file names, written to the working directory.
const (
	DefaultStatisticsOutput = "StatisticsResults.txt"
	DefaultSalesOutput      = "SalesResults.txt"
	DefaultConvertOutput    = "ConversionResults.txt"
	DefaultWordCountOutput  = "WordCountResults.txt"
	DefaultLogLevel         = "info"
)

// Outputs holds the result file name of each command.
type Outputs struct {
	Statistics string
	Sales      string
	Convert    string
	WordCount  string
}

// Config is the effective configuration of one invocation.
type Config struct {
	LogLevel string
	Debug    bool
	Outputs  Outputs
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyStatisticsOutput, DefaultStatisticsOutput)
	v.SetDefault(KeySalesOutput, DefaultSalesOutput)
	v.SetDefault(KeyConvertOutput, DefaultConvertOutput)
	v.SetDefault(KeyWordCountOutput, DefaultWordCountOutput)
}

// Load resolves the configuration from v: defaults, then the optional config
// file named by the "config" key, then PRUEBAS_* environment variables, then
// any flags already bound to v.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(KeyConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, ewrap.Wrap(sentinel.ErrInvalidConfig, err.Error())
		}
	}

	return Config{
		LogLevel: v.GetString(KeyLogLevel),
		Debug:    v.GetBool(KeyDebug),
		Outputs: Outputs{
			Statistics: v.GetString(KeyStatisticsOutput),
			Sales:      v.GetString(KeySalesOutput),
			Convert:    v.GetString(KeyConvertOutput),
			WordCount:  v.GetString(KeyWordCountOutput),
		},
	}, nil
}
