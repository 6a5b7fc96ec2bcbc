package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Input.Path != "input/eldamo-data.xml" {
		t.Fatalf("unexpected input path %q", cfg.Input.Path)
	}
	if cfg.Output.Dir != "output" || cfg.Output.Format != "text" {
		t.Fatalf("unexpected output %+v", cfg.Output)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" || cfg.Log.Verbose {
		t.Fatalf("unexpected log %+v", cfg.Log)
	}
	if cfg.Generate != (GenerateConfig{}) {
		t.Fatalf("unexpected generate defaults %+v", cfg.Generate)
	}
}

func TestLoad_Environment(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Chdir(t.TempDir())

	t.Setenv("OUTPUT_FORMAT", "sqlite")
	t.Setenv("GENERATE_LANGUAGE", "Sindarin")
	t.Setenv("GENERATE_NEO", "true")
	t.Setenv("GENERATE_FILTER", "speech == 'n'")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Output.Format != "sqlite" {
		t.Fatalf("expected sqlite format, got %q", cfg.Output.Format)
	}
	if cfg.Generate.Language != "Sindarin" || !cfg.Generate.Neo || cfg.Generate.Filter != "speech == 'n'" {
		t.Fatalf("unexpected generate config %+v", cfg.Generate)
	}
}
