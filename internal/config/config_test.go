package config

import (
	"reflect"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("PORT", "")
	t.Setenv("APP_TIMEZONE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("expected postgres driver, got %q", cfg.Database.Driver)
	}
	if cfg.Location().String() != "Asia/Seoul" {
		t.Errorf("expected Asia/Seoul, got %s", cfg.Location())
	}
	if cfg.AppVersion != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %s", cfg.AppVersion)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/campus.db")
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("expected sqlite, got %q", cfg.Database.Driver)
	}
	if cfg.Database.DSN() != "/tmp/campus.db" {
		t.Errorf("unexpected sqlite DSN %q", cfg.Database.DSN())
	}
	if cfg.Addr() != ":9090" {
		t.Errorf("expected :9090, got %s", cfg.Addr())
	}
	want := []string{"http://a.test", "http://b.test"}
	if !reflect.DeepEqual(cfg.AllowedOrigins, want) {
		t.Errorf("expected %v, got %v", want, cfg.AllowedOrigins)
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]*Config{
		"unknown driver": {Port: 8080, Timezone: "UTC", Database: DatabaseConfig{Driver: "mysql"}},
		"bad port":       {Port: 70000, Timezone: "UTC", Database: DatabaseConfig{Driver: "sqlite"}},
		"bad timezone":   {Port: 8080, Timezone: "Mars/Olympus", Database: DatabaseConfig{Driver: "sqlite"}},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestDatabaseConfig_PostgresDSN(t *testing.T) {
	c := DatabaseConfig{Driver: "postgres", Host: "db", Port: 5432, User: "u", Password: "p", Name: "smat", SSLMode: "disable"}
	want := "host=db port=5432 user=u password=p dbname=smat sslmode=disable"
	if got := c.DSN(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
