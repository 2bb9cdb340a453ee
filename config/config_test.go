package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWithEnv_ReadsYAMLAndAppliesEnvOverrides(t *testing.T) {
	dir := t.TempDir()

	yamlContent := []byte(`
env:
  env: test
  serviceName: mercado
  log:
    pretty: true
    level: debug

http:
  port: 8080

secretKey:
  access: yaml-secret

schedule:
  defaultTimezone: America/Sao_Paulo
`)
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), yamlContent, 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("SECRETKEY_ACCESS", "env-secret")
	t.Chdir(dir)

	cfg, err := LoadWithEnv[Config]("config")
	if err != nil {
		t.Fatalf("LoadWithEnv() error = %v", err)
	}

	if cfg.Env.ServiceName != "mercado" {
		t.Errorf("Env.ServiceName = %q, want %q", cfg.Env.ServiceName, "mercado")
	}
	if !cfg.Env.Log.Pretty {
		t.Error("Env.Log.Pretty = false, want true")
	}
	if cfg.HTTP.Port != 9999 {
		t.Errorf("HTTP.Port = %d, want env override 9999", cfg.HTTP.Port)
	}
	if cfg.SecretKey.Access != "env-secret" {
		t.Errorf("SecretKey.Access = %q, want env override %q", cfg.SecretKey.Access, "env-secret")
	}
	if cfg.Schedule == nil || cfg.Schedule.DefaultTimezone != "America/Sao_Paulo" {
		t.Errorf("Schedule.DefaultTimezone not loaded, got %+v", cfg.Schedule)
	}
}

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"secretKey": map[string]any{
			"access": "",
		},
		"schedule": map[string]any{
			"defaultTimezone": "",
		},
		"http": map[string]any{
			"port": 0,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "SCHEDULE_DEFAULTTIMEZONE", want: "schedule.defaultTimezone"},
		{envKey: "HTTP_PORT", want: "http.port"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := LoadWithEnv[Config]("nonexistent"); err == nil {
		t.Fatal("LoadWithEnv() expected error for missing config file")
	}
}
