package logging

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_WritesKeyValueFields(t *testing.T) {
	core, logs := observer.New(LevelDebug)
	logger := FromZap(zap.New(core)).With("match_id", "m-1")

	logger.Info("innings finalized", "innings_number", 2, "error", errors.New("boom"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["match_id"] != "m-1" {
		t.Fatalf("unexpected match_id field: %v", fields["match_id"])
	}
	if fields["innings_number"] != int64(2) {
		t.Fatalf("unexpected innings_number field: %v (%T)", fields["innings_number"], fields["innings_number"])
	}
	if fields["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", fields["error"])
	}
}

func TestLogger_OddArgsAndNilReceiver(t *testing.T) {
	core, logs := observer.New(LevelDebug)
	logger := FromZap(zap.New(core))

	logger.Warn("dangling", "orphan")
	if got := logs.All()[0].ContextMap(); len(got) != 1 {
		t.Fatalf("expected dangling key to be kept, got %v", got)
	}

	var nilLogger *Logger
	nilLogger.Info("must not panic")
	if nilLogger.With("k", "v") == nil {
		t.Fatalf("expected nop logger from nil receiver")
	}
}
