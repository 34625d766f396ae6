package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/sentinel"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.LogLevel != DefaultLogLevel || cfg.Debug {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	want := Outputs{
		Statistics: DefaultStatisticsOutput,
		Sales:      DefaultSalesOutput,
		Convert:    DefaultConvertOutput,
		WordCount:  DefaultWordCountOutput,
	}
	if cfg.Outputs != want {
		t.Fatalf("unexpected outputs: %+v", cfg.Outputs)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PRUEBAS_STATISTICS_OUTPUT", "stats.txt")
	t.Setenv("PRUEBAS_LOG_LEVEL", "debug")

	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Outputs.Statistics != "stats.txt" {
		t.Fatalf("expected env override, got %q", cfg.Outputs.Statistics)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected debug level, got %q", cfg.LogLevel)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pruebas.yaml")
	content := "log-level: warning\nsales:\n  output: totals.txt\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	v := viper.New()
	v.Set(KeyConfigFile, path)
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.LogLevel != "warning" || cfg.Outputs.Sales != "totals.txt" {
		t.Fatalf("config file not applied: %+v", cfg)
	}
	if cfg.Outputs.Statistics != DefaultStatisticsOutput {
		t.Fatalf("unset key should keep its default, got %q", cfg.Outputs.Statistics)
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	v := viper.New()
	v.Set(KeyConfigFile, filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := Load(v); !errors.Is(err, sentinel.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
