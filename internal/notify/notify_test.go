package notify

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestHub_StacksInOrder(t *testing.T) {
	hub := NewHub(time.Minute, zap.NewNop())
	hub.Success("added to cart")
	hub.Info("already in wishlist")
	hub.Error("failed to save")

	active := hub.Active()
	if len(active) != 3 {
		t.Fatalf("expected 3 active, got %d", len(active))
	}
	if active[0].Message != "added to cart" || active[0].Level != LevelSuccess {
		t.Fatalf("unexpected first entry %+v", active[0])
	}
	if active[2].Level != LevelError {
		t.Fatalf("unexpected last entry %+v", active[2])
	}
	if active[0].ID == active[1].ID {
		t.Fatalf("entries share an id")
	}
}

func TestHub_AutoDismiss(t *testing.T) {
	hub := NewHub(20*time.Millisecond, zap.NewNop())
	hub.Success("short lived")

	if len(hub.Active()) != 1 {
		t.Fatalf("expected entry before TTL")
	}

	deadline := time.Now().Add(time.Second)
	for len(hub.Active()) != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("entry never expired")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHub_Dismiss(t *testing.T) {
	hub := NewHub(time.Minute, zap.NewNop())
	hub.Success("one")
	hub.Success("two")

	active := hub.Active()
	hub.Dismiss(active[0].ID)

	rest := hub.Active()
	if len(rest) != 1 || rest[0].Message != "two" {
		t.Fatalf("unexpected remaining entries %+v", rest)
	}

	hub.Dismiss("unknown")
	if len(hub.Active()) != 1 {
		t.Fatalf("dismissing unknown id changed state")
	}
}
