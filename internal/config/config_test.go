package config

import "testing"

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if cfg.HTTPPort != 8080 || cfg.GinMode != "release" || cfg.LogFormat != "json" || cfg.QuantityRule != "any" {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
		if cfg.SnowflakeNode != 1 || !cfg.SwaggerEnabled || cfg.Addr() != ":8080" {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("GIN_MODE", "Debug")
		t.Setenv("LOG_FORMAT", "console")
		t.Setenv("QUANTITY_RULE", "all")
		t.Setenv("SWAGGER_ENABLED", "false")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if cfg.HTTPPort != 9090 || cfg.GinMode != "debug" || cfg.LogFormat != "console" || cfg.QuantityRule != "all" || cfg.SwaggerEnabled {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})

	cases := map[string][2]string{
		"bad port":       {"HTTP_PORT", "0"},
		"unparsable":     {"HTTP_PORT", "abc"},
		"bad gin mode":   {"GIN_MODE", "prod"},
		"bad log format": {"LOG_FORMAT", "xml"},
		"bad node":       {"SNOWFLAKE_NODE", "2048"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", kv[0], kv[1])
			}
		})
	}
}
