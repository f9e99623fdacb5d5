package registrations_test

import (
	"errors"
	"testing"
	"time"

	"github.com/hknair/leadgate/internal/app/store/registrations"
	"github.com/hknair/leadgate/internal/domain/models"
	"github.com/hknair/leadgate/internal/testutil"
)

// runStoreContract exercises the Store behaviors every backend must share.
// Each subtest gets a fresh store from mk.
func runStoreContract(t *testing.T, mk func(t *testing.T) registrations.Store) {
	t.Helper()

	t.Run("InsertAssignsID", func(t *testing.T) {
		store := mk(t)
		ctx, cancel := testutil.TestContext()
		defer cancel()

		reg, err := store.Insert(ctx, models.Registration{
			Name:        "Asha Rao",
			Phone:       "9876543210",
			Email:       "asha@example.com",
			State:       "Karnataka",
			City:        "Bengaluru",
			InquiryType: models.InquiryRegister,
			Status:      models.StatusNew,
		})
		if err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
		if reg.ID == "" {
			t.Error("expected ID to be assigned")
		}
		if reg.CreatedAt.IsZero() {
			t.Error("expected CreatedAt to be set")
		}

		got, err := store.GetByID(ctx, reg.ID)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if got.Name != "Asha Rao" || got.Email != "asha@example.com" || got.Status != models.StatusNew {
			t.Errorf("round-trip mismatch: %+v", got)
		}
	})

	t.Run("ExistsSince", func(t *testing.T) {
		store := mk(t)
		ctx, cancel := testutil.TestContext()
		defer cancel()

		fx := testutil.NewFixtures(t, store)
		fx.CreateRegistrationAt(ctx, "Asha Rao", "9876543210", "asha@example.com",
			time.Now().UTC().Add(-2*time.Hour))

		windowStart := time.Now().UTC().Add(-24 * time.Hour)

		for _, tc := range []struct {
			field registrations.Field
			value string
			want  bool
		}{
			{registrations.FieldPhone, "9876543210", true},
			{registrations.FieldEmail, "asha@example.com", true},
			{registrations.FieldPhone, "9000000000", false},
			{registrations.FieldEmail, "other@example.com", false},
		} {
			got, err := store.ExistsSince(ctx, tc.field, tc.value, windowStart)
			if err != nil {
				t.Fatalf("ExistsSince(%s=%q) failed: %v", tc.field, tc.value, err)
			}
			if got != tc.want {
				t.Errorf("ExistsSince(%s=%q) = %v, want %v", tc.field, tc.value, got, tc.want)
			}
		}

		// A record older than the window must not count.
		got, err := store.ExistsSince(ctx, registrations.FieldPhone, "9876543210",
			time.Now().UTC().Add(-time.Hour))
		if err != nil {
			t.Fatalf("ExistsSince failed: %v", err)
		}
		if got {
			t.Error("record outside the window should not match")
		}
	})

	t.Run("GetByID_Missing", func(t *testing.T) {
		store := mk(t)
		ctx, cancel := testutil.TestContext()
		defer cancel()

		_, err := store.GetByID(ctx, "65f000000000000000000000")
		if !errors.Is(err, registrations.ErrNoDocument) {
			t.Errorf("expected ErrNoDocument, got %v", err)
		}
	})

	t.Run("Update_Partial", func(t *testing.T) {
		store := mk(t)
		ctx, cancel := testutil.TestContext()
		defer cancel()

		fx := testutil.NewFixtures(t, store)
		reg := fx.CreateRegistration(ctx, "Asha Rao", "9876543210", "asha@example.com")

		contacted := models.StatusContacted
		updated, err := store.Update(ctx, reg.ID, registrations.Patch{Status: &contacted})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.Status != models.StatusContacted {
			t.Errorf("status = %q, want contacted", updated.Status)
		}
		if updated.Notes != "" {
			t.Errorf("notes should be untouched, got %q", updated.Notes)
		}

		// Notes set to an explicit empty string after having a value.
		note := "called, no answer"
		if _, err := store.Update(ctx, reg.ID, registrations.Patch{Notes: &note}); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		empty := ""
		updated, err = store.Update(ctx, reg.ID, registrations.Patch{Notes: &empty})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.Notes != "" {
			t.Errorf("notes = %q, want empty", updated.Notes)
		}
		if updated.Status != models.StatusContacted {
			t.Errorf("status should persist across notes-only update, got %q", updated.Status)
		}
	})

	t.Run("Update_Missing", func(t *testing.T) {
		store := mk(t)
		ctx, cancel := testutil.TestContext()
		defer cancel()

		closed := models.StatusClosed
		_, err := store.Update(ctx, "65f000000000000000000000", registrations.Patch{Status: &closed})
		if !errors.Is(err, registrations.ErrNoDocument) {
			t.Errorf("expected ErrNoDocument, got %v", err)
		}
	})

	t.Run("List_OrderAndPaging", func(t *testing.T) {
		store := mk(t)
		ctx, cancel := testutil.TestContext()
		defer cancel()

		fx := testutil.NewFixtures(t, store)
		base := time.Now().UTC().Add(-time.Hour)
		fx.CreateRegistrationAt(ctx, "Oldest", "9000000001", "one@example.com", base)
		fx.CreateRegistrationAt(ctx, "Middle", "9000000002", "two@example.com", base.Add(time.Minute))
		fx.CreateRegistrationAt(ctx, "Newest", "9000000003", "three@example.com", base.Add(2*time.Minute))

		regs, total, err := store.List(ctx, registrations.Filter{}, 1, 1)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if total != 3 {
			t.Errorf("total = %d, want 3", total)
		}
		if len(regs) != 1 || regs[0].Name != "Middle" {
			t.Errorf("page 2 of size 1 should hold the middle record, got %+v", regs)
		}
	})

	t.Run("List_Filtered", func(t *testing.T) {
		store := mk(t)
		ctx, cancel := testutil.TestContext()
		defer cancel()

		fx := testutil.NewFixtures(t, store)
		reg := fx.CreateRegistration(ctx, "Asha Rao", "9000000004", "four@example.com")
		fx.CreateRegistration(ctx, "Vikram Shetty", "9000000005", "five@example.com")

		contacted := models.StatusContacted
		if _, err := store.Update(ctx, reg.ID, registrations.Patch{Status: &contacted}); err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		regs, total, err := store.List(ctx, registrations.Filter{Status: models.StatusContacted}, 0, 10)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if total != 1 || len(regs) != 1 || regs[0].ID != reg.ID {
			t.Errorf("filtered list mismatch: total=%d regs=%+v", total, regs)
		}
	})

	t.Run("Ping", func(t *testing.T) {
		store := mk(t)
		ctx, cancel := testutil.TestContext()
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			t.Errorf("Ping failed: %v", err)
		}
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreContract(t, func(t *testing.T) registrations.Store {
		return registrations.NewMemory()
	})
}

func TestMongoStore(t *testing.T) {
	runStoreContract(t, func(t *testing.T) registrations.Store {
		return registrations.NewMongo(testutil.SetupTestDB(t))
	})
}
