package config

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestMergeConfig(t *testing.T) {
	tests := []struct {
		name   string
		global *Config
		local  *Config
		want   Config
	}{
		{
			name:   "local format wins",
			global: &Config{DefaultFormat: "table", DefaultZone: "UTC"},
			local:  &Config{DefaultFormat: "json"},
			want:   Config{DefaultFormat: "json", DefaultZone: "UTC"},
		},
		{
			name:   "unset local preserves global",
			global: &Config{DefaultFormat: "unix", DefaultZone: "UTC", Layout: "2006-01-02"},
			local:  &Config{},
			want:   Config{DefaultFormat: "unix", DefaultZone: "UTC", Layout: "2006-01-02"},
		},
		{
			name:   "local zone and layout win",
			global: &Config{DefaultZone: "UTC"},
			local:  &Config{DefaultZone: "Europe/Berlin", Layout: "Mon Jan 2 15:04"},
			want:   Config{DefaultZone: "Europe/Berlin", Layout: "Mon Jan 2 15:04"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mergeConfig(tt.global, tt.local)
			if *got != tt.want {
				t.Errorf("mergeConfig() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestToYAMLRoundTrip(t *testing.T) {
	cfg := &Config{
		DefaultFormat: "json",
		DefaultZone:   "America/New_York",
		Layout:        "2006-01-02 15:04:05",
	}

	s, err := cfg.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML: %v", err)
	}

	var got Config
	if err := yaml.Unmarshal([]byte(s), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != *cfg {
		t.Errorf("round trip = %+v, want %+v", got, *cfg)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DefaultFormat != "table" {
		t.Errorf("DefaultFormat = %q, want table", cfg.DefaultFormat)
	}
	if cfg.DefaultZone != "" {
		t.Errorf("DefaultZone = %q, want empty (system zone)", cfg.DefaultZone)
	}
}

func TestMinimalConfigParses(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(MinimalConfig()), &cfg); err != nil {
		t.Fatalf("MinimalConfig does not parse as YAML: %v", err)
	}
	if cfg.DefaultFormat != "table" {
		t.Errorf("DefaultFormat = %q, want table", cfg.DefaultFormat)
	}
}

func TestConfigPath(t *testing.T) {
	if !strings.HasSuffix(ConfigPath(), "config.yaml") {
		t.Errorf("ConfigPath() = %q", ConfigPath())
	}
	if LocalConfigPath() != ".tstamp.yaml" {
		t.Errorf("LocalConfigPath() = %q", LocalConfigPath())
	}
}
