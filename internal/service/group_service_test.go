package service

import (
	"context"
	"slices"
	"testing"

	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/apperr"
)

func TestGroupServiceCreate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	alice := seedUser(t, store, "Alice", "Smith")
	bob := seedUser(t, store, "Bob", "Jones")
	svc := NewGroupService(store)

	t.Run("owner is added to membership automatically", func(t *testing.T) {
		g, err := svc.Create(ctx, alice.ID, GroupInput{
			Title:       "Roommates",
			Description: "Rent and utilities",
			MemberIDs:   []int64{bob.ID},
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if !slices.Contains(g.MemberIDs, alice.ID) {
			t.Errorf("owner missing from members: %v", g.MemberIDs)
		}
		if !slices.Contains(g.MemberIDs, bob.ID) {
			t.Errorf("bob missing from members: %v", g.MemberIDs)
		}
	})

	t.Run("title and description lengths validated", func(t *testing.T) {
		tests := []struct {
			name  string
			in    GroupInput
			field string
		}{
			{"short title", GroupInput{Title: "ab", Description: "long enough"}, "title"},
			{"missing title", GroupInput{Title: "", Description: "long enough"}, "title"},
			{"short description", GroupInput{Title: "Roommates", Description: "ab"}, "description"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.Create(ctx, alice.ID, tt.in)
				if !isValidation(err, tt.field) {
					t.Errorf("expected validation error on %q, got %v", tt.field, err)
				}
			})
		}
	})

	t.Run("unknown member rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, alice.ID, GroupInput{
			Title:       "Roommates",
			Description: "Rent and utilities",
			MemberIDs:   []int64{99999},
		})
		if !apperr.IsNotFound(err) {
			t.Errorf("expected NotFoundError, got %v", err)
		}
	})
}

func TestGroupServiceUpdate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	alice := seedUser(t, store, "Alice", "Smith")
	bob := seedUser(t, store, "Bob", "Jones")
	carol := seedUser(t, store, "Carol", "White")
	svc := NewGroupService(store)

	newGroup := func() int64 {
		t.Helper()
		g, err := svc.Create(ctx, alice.ID, GroupInput{
			Title:       "Trip",
			Description: "Weekend trip",
			MemberIDs:   []int64{bob.ID, carol.ID},
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		return g.ID
	}

	t.Run("only the owner can update", func(t *testing.T) {
		id := newGroup()
		_, err := svc.Update(ctx, bob.ID, id, GroupInput{Title: "Hijacked", Description: "not yours"})
		if !isConflict(err) {
			t.Errorf("expected ConflictError, got %v", err)
		}
	})

	t.Run("owner is retained even when omitted", func(t *testing.T) {
		id := newGroup()
		g, err := svc.Update(ctx, alice.ID, id, GroupInput{
			Title:       "Trip 2.0",
			Description: "Weekend trip, revised",
			MemberIDs:   []int64{bob.ID},
		})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if !slices.Contains(g.MemberIDs, alice.ID) {
			t.Errorf("owner removed from members: %v", g.MemberIDs)
		}
		if slices.Contains(g.MemberIDs, carol.ID) {
			t.Errorf("carol should have been removed: %v", g.MemberIDs)
		}
	})

	t.Run("member with split activity cannot be removed", func(t *testing.T) {
		id := newGroup()
		category := seedCategory(t, store, alice.ID)
		splits := NewSplitService(store)
		if _, err := splits.Create(ctx, CreateSplitExpenseInput{
			GroupID:        id,
			CategoryID:     category.ID,
			Date:           "2026-06-01",
			Amount:         "30.00",
			Notes:          "gas",
			PayerID:        alice.ID,
			BeneficiaryIDs: []int64{bob.ID},
		}); err != nil {
			t.Fatalf("split Create failed: %v", err)
		}

		_, err := svc.Update(ctx, alice.ID, id, GroupInput{
			Title:       "Trip",
			Description: "Weekend trip",
			MemberIDs:   []int64{carol.ID}, // drops bob, who has activity
		})
		if !isConflict(err) {
			t.Errorf("expected ConflictError, got %v", err)
		}

		// Bob must still be a member.
		g, err := svc.Get(ctx, id)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !slices.Contains(g.MemberIDs, bob.ID) {
			t.Errorf("bob removed despite rejection: %v", g.MemberIDs)
		}
	})

	t.Run("member without activity can be removed", func(t *testing.T) {
		id := newGroup()
		g, err := svc.Update(ctx, alice.ID, id, GroupInput{
			Title:       "Trip",
			Description: "Weekend trip",
			MemberIDs:   []int64{bob.ID}, // drops carol, no activity
		})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if slices.Contains(g.MemberIDs, carol.ID) {
			t.Errorf("carol still a member: %v", g.MemberIDs)
		}
	})
}

func TestGroupServiceDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	alice := seedUser(t, store, "Alice", "Smith")
	bob := seedUser(t, store, "Bob", "Jones")
	svc := NewGroupService(store)

	newGroup := func() int64 {
		t.Helper()
		g, err := svc.Create(ctx, alice.ID, GroupInput{
			Title:       "Trip",
			Description: "Weekend trip",
			MemberIDs:   []int64{bob.ID},
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		return g.ID
	}

	t.Run("only the owner can delete", func(t *testing.T) {
		id := newGroup()
		if err := svc.Delete(ctx, bob.ID, id); !isConflict(err) {
			t.Errorf("expected ConflictError, got %v", err)
		}
	})

	t.Run("group with split records cannot be deleted", func(t *testing.T) {
		id := newGroup()
		category := seedCategory(t, store, alice.ID)
		splits := NewSplitService(store)
		if _, err := splits.Create(ctx, CreateSplitExpenseInput{
			GroupID:        id,
			CategoryID:     category.ID,
			Date:           "2026-06-01",
			Amount:         "12.00",
			Notes:          "snacks",
			PayerID:        alice.ID,
			BeneficiaryIDs: []int64{bob.ID},
		}); err != nil {
			t.Fatalf("split Create failed: %v", err)
		}

		if err := svc.Delete(ctx, alice.ID, id); !isConflict(err) {
			t.Errorf("expected ConflictError, got %v", err)
		}
	})

	t.Run("empty group deletes cleanly", func(t *testing.T) {
		id := newGroup()
		if err := svc.Delete(ctx, alice.ID, id); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := svc.Get(ctx, id); !apperr.IsNotFound(err) {
			t.Errorf("expected NotFoundError after delete, got %v", err)
		}
	})
}
