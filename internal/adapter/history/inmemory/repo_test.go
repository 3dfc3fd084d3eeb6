package inmemory

import (
	"context"
	"errors"
	"testing"
	"time"

	"retailsim/internal/app/ports"
)

func record(agent, action string, minute int) ports.ActivityRecord {
	return ports.ActivityRecord{
		AgentName:  agent,
		Action:     action,
		OccurredAt: time.Date(2025, 3, 1, 12, minute, 0, 0, time.UTC),
	}
}

func TestListRecent_NewestFirst(t *testing.T) {
	repo := NewRepo(10)
	ctx := context.Background()

	err := repo.Append(ctx, []ports.ActivityRecord{
		record("Forecast Agent", "first", 0),
		record("Store Agent (Store-001)", "second", 1),
		record("Pricing Agent", "third", 2),
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := repo.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Action != "third" || got[1].Action != "second" {
		t.Fatalf("order = %q, %q", got[0].Action, got[1].Action)
	}
}

func TestListRecent_EmptyIsNotFound(t *testing.T) {
	repo := NewRepo(10)

	if _, err := repo.ListRecent(context.Background(), 5); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListRecent_NonPositiveLimitReturnsAll(t *testing.T) {
	repo := NewRepo(10)
	ctx := context.Background()

	_ = repo.Append(ctx, []ports.ActivityRecord{
		record("A", "one", 0),
		record("B", "two", 1),
	})

	got, err := repo.ListRecent(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}

func TestAppend_EvictsOldest(t *testing.T) {
	repo := NewRepo(3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_ = repo.Append(ctx, []ports.ActivityRecord{record("A", string(rune('a'+i)), i)})
	}

	got, err := repo.ListRecent(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Action != "e" || got[2].Action != "c" {
		t.Fatalf("retained window = %q..%q", got[0].Action, got[2].Action)
	}
}
