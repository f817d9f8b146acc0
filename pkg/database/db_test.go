package database

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"smat.com/campusapi/internal/config"
)

func TestOpen_SQLiteInMemory(t *testing.T) {
	cfg := &config.DatabaseConfig{Driver: "sqlite", SQLitePath: "file:dbtest?mode=memory&cache=shared"}

	db, err := Open(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := Ping(context.Background(), db); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	if _, err := Open(&config.DatabaseConfig{Driver: "oracle"}, zap.NewNop()); err == nil {
		t.Error("expected error for unsupported driver")
	}
}
