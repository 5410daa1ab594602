package logger

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ocobiz/fnbcalc/internal/config"
)

func TestNew_FallsBackToInfoOnUnknownLevel(t *testing.T) {
	l, err := New(config.Config{Env: "development", LogLevel: "chatty"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if l.Core().Enabled(zap.DebugLevel) {
		t.Fatalf("expected debug to be disabled")
	}
	if !l.Core().Enabled(zap.InfoLevel) {
		t.Fatalf("expected info to be enabled")
	}
}

func TestNew_ProductionHonoursLevel(t *testing.T) {
	l, err := New(config.Config{Env: "production", LogLevel: "warn"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if l.Core().Enabled(zap.InfoLevel) {
		t.Fatalf("expected info to be disabled")
	}
	if !l.Core().Enabled(zap.WarnLevel) {
		t.Fatalf("expected warn to be enabled")
	}
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := WithLogger(context.Background(), zap.New(core))

	FromContext(ctx).Info("hello")

	if logs.Len() != 1 {
		t.Fatalf("expected 1 log entry, got %d", logs.Len())
	}
}

func TestFromContext_DefaultsToGlobal(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatalf("expected a logger")
	}
}
