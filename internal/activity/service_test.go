package activity

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"jobassist-backend/internal/users"
)

func newTestService(t *testing.T) (*Service, users.User) {
	t.Helper()
	userSvc := users.NewService(users.NewMemoryRepo())
	user, err := userSvc.Register(context.Background(), "jordan", "jordan@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return NewService(NewMemoryRepo(), userSvc), user
}

func TestAppendStampsRecord(t *testing.T) {
	svc, user := newTestService(t)

	record, err := svc.Append(context.Background(), user.ID, "Backend Engineer", ModeResume, "Resume for jordan. Summary: ships Go.")
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if record.ID == "" {
		t.Fatal("Append returned empty ID")
	}
	if record.CreatedAt.IsZero() {
		t.Fatal("Append returned zero CreatedAt")
	}
	if record.UserID != user.ID {
		t.Fatalf("UserID = %q, want %q", record.UserID, user.ID)
	}
}

func TestRepeatedAppendsCreateDistinctRecords(t *testing.T) {
	svc, user := newTestService(t)
	ctx := context.Background()

	first, err := svc.Append(ctx, user.ID, "Backend Engineer", ModeResume, "same content")
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	second, err := svc.Append(ctx, user.ID, "Backend Engineer", ModeResume, "same content")
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if first.ID == second.ID {
		t.Fatal("identical appends share an ID")
	}

	records, err := svc.ListForUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
}

func TestAppendRejectsUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Append(context.Background(), "no-such-user", "label", ModeEmail, "content"); !errors.Is(err, ErrUnknownUser) {
		t.Fatalf("Append err = %v, want ErrUnknownUser", err)
	}
	if _, err := svc.ListForUser(context.Background(), "no-such-user"); !errors.Is(err, ErrUnknownUser) {
		t.Fatalf("ListForUser err = %v, want ErrUnknownUser", err)
	}
}

func TestAppendPersistsLabelsAndModesAsSupplied(t *testing.T) {
	svc, user := newTestService(t)
	ctx := context.Background()

	record, err := svc.Append(ctx, user.ID, "", Mode("LEGACY"), "imported entry")
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if record.Label != "" {
		t.Fatalf("Label = %q, want empty label stored as supplied", record.Label)
	}
	if record.Mode != Mode("LEGACY") {
		t.Fatalf("Mode = %q, want unrecognized tag stored unchanged", record.Mode)
	}

	records, err := svc.ListForUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(records) != 1 || records[0].Mode != Mode("LEGACY") {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestConcurrentAppendsAllLand(t *testing.T) {
	userSvc := users.NewService(users.NewMemoryRepo())
	ctx := context.Background()
	alice, err := userSvc.Register(ctx, "alice", "alice@example.com", "pass-alice")
	if err != nil {
		t.Fatalf("Register alice: %v", err)
	}
	bob, err := userSvc.Register(ctx, "bob", "bob@example.com", "pass-bob")
	if err != nil {
		t.Fatalf("Register bob: %v", err)
	}

	svc := NewService(NewMemoryRepo(), userSvc)
	const perUser = 25

	var wg sync.WaitGroup
	errCh := make(chan error, perUser*2)
	for _, userID := range []string{alice.ID, bob.ID} {
		for i := 0; i < perUser; i++ {
			wg.Add(1)
			go func(id string, n int) {
				defer wg.Done()
				_, err := svc.Append(ctx, id, fmt.Sprintf("label-%d", n), ModeResume, "content")
				errCh <- err
			}(userID, i)
		}
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	for _, userID := range []string{alice.ID, bob.ID} {
		records, err := svc.ListForUser(ctx, userID)
		if err != nil {
			t.Fatalf("ListForUser: %v", err)
		}
		if len(records) != perUser {
			t.Fatalf("len(records) = %d, want %d", len(records), perUser)
		}
		seen := make(map[string]bool, len(records))
		for _, record := range records {
			if seen[record.ID] {
				t.Fatalf("duplicate record ID %q", record.ID)
			}
			seen[record.ID] = true
		}
	}
}

func TestListForUserNewestFirst(t *testing.T) {
	svc, user := newTestService(t)
	ctx := context.Background()

	labels := []string{"first", "second", "third"}
	for _, label := range labels {
		if _, err := svc.Append(ctx, user.ID, label, ModeResume, "content"); err != nil {
			t.Fatalf("Append(%s): %v", label, err)
		}
	}

	records, err := svc.ListForUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(records) != len(labels) {
		t.Fatalf("len(records) = %d, want %d", len(records), len(labels))
	}
	for i, want := range []string{"third", "second", "first"} {
		if records[i].Label != want {
			t.Fatalf("records[%d].Label = %q, want %q", i, records[i].Label, want)
		}
	}
	for i := 1; i < len(records); i++ {
		if records[i].CreatedAt.After(records[i-1].CreatedAt) {
			t.Fatalf("records not ordered newest first at index %d", i)
		}
	}
}

func TestListForUserIsolatesUsers(t *testing.T) {
	userSvc := users.NewService(users.NewMemoryRepo())
	ctx := context.Background()
	alice, err := userSvc.Register(ctx, "alice", "alice@example.com", "pass-alice")
	if err != nil {
		t.Fatalf("Register alice: %v", err)
	}
	bob, err := userSvc.Register(ctx, "bob", "bob@example.com", "pass-bob")
	if err != nil {
		t.Fatalf("Register bob: %v", err)
	}

	svc := NewService(NewMemoryRepo(), userSvc)
	if _, err := svc.Append(ctx, alice.ID, "alice record", ModeResume, "content"); err != nil {
		t.Fatalf("Append: %v", err)
	}

	records, err := svc.ListForUser(ctx, bob.ID)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("bob sees %d records, want 0", len(records))
	}
}

func TestMemoryRepoTiesBreakByInsertionOrder(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	at := time.Now().UTC()

	for _, id := range []string{"a", "b", "c"} {
		if err := repo.Append(ctx, Record{ID: id, UserID: "u", CreatedAt: at}); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	records, err := repo.ListByUser(ctx, "u")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	for i, want := range []string{"c", "b", "a"} {
		if records[i].ID != want {
			t.Fatalf("records[%d].ID = %q, want %q", i, records[i].ID, want)
		}
	}
}
