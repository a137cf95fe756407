package tournament

import (
	"testing"
	"time"
)

func TestEffectiveFieldSize(t *testing.T) {
	if got := (Tournament{FieldSize: 80}).EffectiveFieldSize(); got != 80 {
		t.Fatalf("expected reported field size, got %d", got)
	}
	if got := (Tournament{}).EffectiveFieldSize(); got != DefaultFieldSize {
		t.Fatalf("expected default field size %d, got %d", DefaultFieldSize, got)
	}
}

func TestHasStarted(t *testing.T) {
	start := time.Date(2026, 4, 9, 12, 0, 0, 0, time.UTC)
	item := Tournament{StartAt: start}

	if item.HasStarted(start.Add(-time.Minute)) {
		t.Fatal("tournament must not count as started before tee time")
	}
	if !item.HasStarted(start) {
		t.Fatal("tournament starts exactly at tee time")
	}
	if (Tournament{}).HasStarted(time.Now()) {
		t.Fatal("zero start time never counts as started")
	}
}
