package memory

import (
	"context"
	"testing"
	"time"
)

func TestSessionStoreRoundtrip(t *testing.T) {
	store := NewSessionStore(30 * time.Minute)
	ctx := context.Background()

	session, err := store.GetOrCreate(ctx, "session-mem-0001")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if session.Id != "session-mem-0001" {
		t.Errorf("id = %q", session.Id)
	}

	session.PutData("name", "Ali")
	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := store.Get(ctx, "session-mem-0001")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if reloaded == nil || reloaded.Data("name") != "Ali" {
		t.Errorf("reloaded session lost data: %+v", reloaded)
	}

	exists, err := store.Exists(ctx, "session-mem-0001")
	if err != nil || !exists {
		t.Errorf("Exists = %v, %v", exists, err)
	}

	count, err := store.Count(ctx)
	if err != nil || count != 1 {
		t.Errorf("Count = %d, %v", count, err)
	}

	if err := store.Delete(ctx, "session-mem-0001"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	gone, err := store.Get(ctx, "session-mem-0001")
	if err != nil {
		t.Fatalf("Get after delete: %v", err)
	}
	if gone != nil {
		t.Errorf("session survived delete")
	}
}

func TestSessionStoreUnknownId(t *testing.T) {
	store := NewSessionStore(30 * time.Minute)

	session, err := store.Get(context.Background(), "session-missing-01")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if session != nil {
		t.Errorf("Get on unknown id = %+v, want nil", session)
	}
}

func TestSessionStoreExpiry(t *testing.T) {
	store := NewSessionStore(10 * time.Millisecond)
	ctx := context.Background()

	if _, err := store.GetOrCreate(ctx, "session-exp-0001"); err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	session, err := store.Get(ctx, "session-exp-0001")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if session != nil {
		t.Errorf("expired session still returned")
	}
}
