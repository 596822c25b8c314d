package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.HTTP.Addr != "127.0.0.1:8080" || c.Store.Driver != DriverSQLite || c.Store.Path != "arclean.db" {
			t.Fatalf("unexpected defaults: %+v", c)
		}
		if !c.Metrics.Enabled || c.Log.Level != "" || c.Store.TablePrefix != "arclean_" {
			t.Fatalf("unexpected defaults: %+v", c)
		}
	})

	t.Run("file and env overrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		yaml := "store:\n  driver: memory\n  path: other.db\nmetrics:\n  enabled: false\n"
		if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}
		t.Setenv("APP_HTTP_ADDR", "127.0.0.1:9999")
		t.Setenv("APP_STORE_PATH", "env.db")
		t.Setenv("APP_LOG_LEVEL", "warn")

		c, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Store.Driver != DriverMemory || c.Metrics.Enabled {
			t.Fatalf("file values not applied: %+v", c)
		}
		if c.HTTP.Addr != "127.0.0.1:9999" || c.Store.Path != "env.db" || c.Log.Level != "warn" {
			t.Fatalf("env overrides not applied: %+v", c)
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("APP_STORE_DRIVER", "postgres")
		if _, err := Load(""); err == nil {
			t.Fatalf("expected error for unknown driver")
		}
	})
}
