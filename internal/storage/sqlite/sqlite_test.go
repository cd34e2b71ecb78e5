package sqlite

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/apperr"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/models"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/money"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

var userSeq int

func createUser(t *testing.T, store *SQLiteStore, firstName, lastName string) *models.User {
	t.Helper()
	userSeq++
	user := &models.User{
		Email:        fmt.Sprintf("%s.%s.%d@example.com", firstName, lastName, userSeq),
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: "x",
	}
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func createCategory(t *testing.T, store *SQLiteStore, ownerID int64) *models.Category {
	t.Helper()
	c := &models.Category{OwnerID: ownerID, Title: "Groceries", Description: "Food and household"}
	if err := store.CreateCategory(context.Background(), c); err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}
	return c
}

func createGroup(t *testing.T, store *SQLiteStore, ownerID int64, memberIDs ...int64) *models.Group {
	t.Helper()
	g := &models.Group{
		OwnerID:     ownerID,
		Title:       "Apartment",
		Description: "Shared apartment costs",
		MemberIDs:   append([]int64{ownerID}, memberIDs...),
	}
	if err := store.CreateGroup(context.Background(), g); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	return g
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateUser populates ID and timestamp", func(t *testing.T) {
		user := createUser(t, store, "Alice", "Smith")
		if user.ID == 0 {
			t.Error("Expected user ID to be generated")
		}
		if user.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("GetUserByEmail round trip", func(t *testing.T) {
		created := createUser(t, store, "Bob", "Jones")
		got, err := store.GetUserByEmail(ctx, created.Email)
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got == nil || got.ID != created.ID {
			t.Fatalf("GetUserByEmail = %+v, want id %d", got, created.ID)
		}
		if got.FullName() != "Bob Jones" {
			t.Errorf("FullName = %q, want Bob Jones", got.FullName())
		}
	})

	t.Run("GetUserByEmail unknown returns nil, nil", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "nobody@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil user, got %+v", got)
		}
	})

	t.Run("GetUserByID unknown returns NotFound", func(t *testing.T) {
		_, err := store.GetUserByID(ctx, 99999)
		if !apperr.IsNotFound(err) {
			t.Errorf("expected NotFoundError, got %v", err)
		}
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		first := createUser(t, store, "Carol", "White")
		dup := &models.User{Email: first.Email, FirstName: "Other", LastName: "Person", PasswordHash: "x"}
		if err := store.CreateUser(ctx, dup); err == nil {
			t.Error("expected error for duplicate email")
		}
	})
}

func TestCategories(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	owner := createUser(t, store, "Alice", "Smith")

	t.Run("create get update delete", func(t *testing.T) {
		c := createCategory(t, store, owner.ID)
		if c.ID == 0 {
			t.Fatal("Expected category ID to be generated")
		}

		got, err := store.GetCategory(ctx, c.ID)
		if err != nil {
			t.Fatalf("GetCategory failed: %v", err)
		}
		if got.Title != c.Title || got.OwnerID != owner.ID {
			t.Errorf("GetCategory = %+v", got)
		}

		c.Title = "Food"
		c.Description = "Groceries and dining"
		if err := store.UpdateCategory(ctx, c); err != nil {
			t.Fatalf("UpdateCategory failed: %v", err)
		}
		got, _ = store.GetCategory(ctx, c.ID)
		if got.Title != "Food" {
			t.Errorf("Title after update = %q", got.Title)
		}

		if err := store.DeleteCategory(ctx, c.ID); err != nil {
			t.Fatalf("DeleteCategory failed: %v", err)
		}
		if _, err := store.GetCategory(ctx, c.ID); !apperr.IsNotFound(err) {
			t.Errorf("expected NotFoundError after delete, got %v", err)
		}
	})

	t.Run("CategoryInUse reflects references", func(t *testing.T) {
		c := createCategory(t, store, owner.ID)

		inUse, err := store.CategoryInUse(ctx, c.ID)
		if err != nil {
			t.Fatalf("CategoryInUse failed: %v", err)
		}
		if inUse {
			t.Error("fresh category should not be in use")
		}

		tx := &models.Transaction{CategoryID: c.ID, Type: models.TypeExpense, Date: "2026-01-15", Amount: 1000, Notes: "lunch"}
		if err := store.CreateTransaction(ctx, tx); err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}
		inUse, _ = store.CategoryInUse(ctx, c.ID)
		if !inUse {
			t.Error("category with a transaction should be in use")
		}
	})

	t.Run("ListCategoriesByOwner scoped to owner", func(t *testing.T) {
		other := createUser(t, store, "Bob", "Jones")
		createCategory(t, store, other.ID)

		list, err := store.ListCategoriesByOwner(ctx, other.ID)
		if err != nil {
			t.Fatalf("ListCategoriesByOwner failed: %v", err)
		}
		if len(list) != 1 {
			t.Errorf("got %d categories, want 1", len(list))
		}
	})
}

func TestBudgets(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	owner := createUser(t, store, "Alice", "Smith")
	category := createCategory(t, store, owner.ID)

	b := &models.Budget{OwnerID: owner.ID, CategoryID: category.ID, Month: "2026-08", Amount: 50000}
	if err := store.CreateBudget(ctx, b); err != nil {
		t.Fatalf("CreateBudget failed: %v", err)
	}
	if b.ID == 0 {
		t.Fatal("Expected budget ID to be generated")
	}

	t.Run("duplicate month rejected", func(t *testing.T) {
		dup := &models.Budget{OwnerID: owner.ID, CategoryID: category.ID, Month: "2026-08", Amount: 100}
		if err := store.CreateBudget(ctx, dup); err == nil {
			t.Error("expected error for duplicate (owner, category, month)")
		}
	})

	t.Run("update and list", func(t *testing.T) {
		b.Amount = 60000
		if err := store.UpdateBudget(ctx, b); err != nil {
			t.Fatalf("UpdateBudget failed: %v", err)
		}

		list, err := store.ListBudgetsByOwner(ctx, owner.ID)
		if err != nil {
			t.Fatalf("ListBudgetsByOwner failed: %v", err)
		}
		if len(list) != 1 || list[0].Amount != 60000 {
			t.Errorf("ListBudgetsByOwner = %+v", list)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := store.DeleteBudget(ctx, b.ID); err != nil {
			t.Fatalf("DeleteBudget failed: %v", err)
		}
		if _, err := store.GetBudget(ctx, b.ID); !apperr.IsNotFound(err) {
			t.Errorf("expected NotFoundError after delete, got %v", err)
		}
	})
}

func TestTransactions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	owner := createUser(t, store, "Alice", "Smith")
	category := createCategory(t, store, owner.ID)

	t.Run("create get update delete", func(t *testing.T) {
		tx := &models.Transaction{CategoryID: category.ID, Type: models.TypeExpense, Date: "2026-03-10", Amount: 2599, Notes: "groceries"}
		if err := store.CreateTransaction(ctx, tx); err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}
		if tx.ID == 0 {
			t.Fatal("Expected transaction ID to be generated")
		}

		got, err := store.GetTransaction(ctx, tx.ID)
		if err != nil {
			t.Fatalf("GetTransaction failed: %v", err)
		}
		if got.Amount != 2599 || got.Type != models.TypeExpense || got.Date != "2026-03-10" {
			t.Errorf("GetTransaction = %+v", got)
		}

		tx.Amount = 3000
		tx.Notes = "groceries and snacks"
		if err := store.UpdateTransaction(ctx, tx); err != nil {
			t.Fatalf("UpdateTransaction failed: %v", err)
		}
		got, _ = store.GetTransaction(ctx, tx.ID)
		if got.Amount != 3000 {
			t.Errorf("Amount after update = %d", got.Amount)
		}

		if err := store.DeleteTransaction(ctx, tx.ID); err != nil {
			t.Fatalf("DeleteTransaction failed: %v", err)
		}
		if _, err := store.GetTransaction(ctx, tx.ID); !apperr.IsNotFound(err) {
			t.Errorf("expected NotFoundError after delete, got %v", err)
		}
	})

	t.Run("MonthlySummary groups by month and type", func(t *testing.T) {
		for _, tc := range []struct {
			typ    models.TransactionType
			date   string
			amount money.Cents
		}{
			{models.TypeIncome, "2026-01-01", 500000},
			{models.TypeExpense, "2026-01-10", 120050},
			{models.TypeExpense, "2026-01-20", 80000},
			{models.TypeExpense, "2026-02-05", 99},
			{models.TypeIncome, "2025-12-31", 77777}, // outside the queried year
		} {
			tx := &models.Transaction{CategoryID: category.ID, Type: tc.typ, Date: tc.date, Amount: tc.amount, Notes: "n"}
			if err := store.CreateTransaction(ctx, tx); err != nil {
				t.Fatalf("CreateTransaction failed: %v", err)
			}
		}

		summary, err := store.MonthlySummary(ctx, owner.ID, 2026)
		if err != nil {
			t.Fatalf("MonthlySummary failed: %v", err)
		}
		if len(summary) != 2 {
			t.Fatalf("got %d months, want 2: %+v", len(summary), summary)
		}
		jan, feb := summary[0], summary[1]
		if jan.Month != "2026-01" || jan.Income != 500000 || jan.Expense != 200050 {
			t.Errorf("January = %+v", jan)
		}
		if feb.Month != "2026-02" || feb.Income != 0 || feb.Expense != 99 {
			t.Errorf("February = %+v", feb)
		}
	})
}

func TestGroups(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	alice := createUser(t, store, "Alice", "Smith")
	bob := createUser(t, store, "Bob", "Jones")
	carol := createUser(t, store, "Carol", "White")

	t.Run("CreateGroup persists membership atomically", func(t *testing.T) {
		g := createGroup(t, store, alice.ID, bob.ID)
		if g.ID == 0 {
			t.Fatal("Expected group ID to be generated")
		}

		got, err := store.GetGroup(ctx, g.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if len(got.MemberIDs) != 2 {
			t.Errorf("got %d members, want 2", len(got.MemberIDs))
		}
	})

	t.Run("CreateGroup with unknown member rolls back the group row", func(t *testing.T) {
		g := &models.Group{OwnerID: alice.ID, Title: "Bad", Description: "unknown member", MemberIDs: []int64{alice.ID, 99999}}
		if err := store.CreateGroup(ctx, g); err == nil {
			t.Fatal("expected error for unknown member")
		}
		groups, err := store.ListGroupsByMember(ctx, alice.ID)
		if err != nil {
			t.Fatalf("ListGroupsByMember failed: %v", err)
		}
		for _, got := range groups {
			if got.Title == "Bad" {
				t.Error("group row persisted despite member insert failure")
			}
		}
	})

	t.Run("UpdateGroup reconciles membership as a set difference", func(t *testing.T) {
		g := createGroup(t, store, alice.ID, bob.ID)

		g.Title = "Apartment 2.0"
		g.MemberIDs = []int64{alice.ID, carol.ID} // drop bob, add carol
		if err := store.UpdateGroup(ctx, g); err != nil {
			t.Fatalf("UpdateGroup failed: %v", err)
		}

		got, err := store.GetGroup(ctx, g.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if got.Title != "Apartment 2.0" {
			t.Errorf("Title = %q", got.Title)
		}
		want := map[int64]bool{alice.ID: true, carol.ID: true}
		if len(got.MemberIDs) != 2 {
			t.Fatalf("got members %v, want %v", got.MemberIDs, want)
		}
		for _, id := range got.MemberIDs {
			if !want[id] {
				t.Errorf("unexpected member %d", id)
			}
		}
	})

	t.Run("GetGroupMembers returns display names", func(t *testing.T) {
		g := createGroup(t, store, alice.ID, bob.ID)
		members, err := store.GetGroupMembers(ctx, g.ID)
		if err != nil {
			t.Fatalf("GetGroupMembers failed: %v", err)
		}
		if len(members) != 2 {
			t.Fatalf("got %d members, want 2", len(members))
		}
		names := map[int64]string{alice.ID: "Alice Smith", bob.ID: "Bob Jones"}
		for _, m := range members {
			if names[m.UserID] != m.FullName {
				t.Errorf("member %d name = %q, want %q", m.UserID, m.FullName, names[m.UserID])
			}
		}
	})

	t.Run("GetGroupMembers unknown group yields empty list", func(t *testing.T) {
		members, err := store.GetGroupMembers(ctx, 99999)
		if err != nil {
			t.Fatalf("GetGroupMembers failed: %v", err)
		}
		if len(members) != 0 {
			t.Errorf("got %d members, want 0", len(members))
		}
	})

	t.Run("DeleteGroup cascades membership rows", func(t *testing.T) {
		g := createGroup(t, store, alice.ID, bob.ID)
		if err := store.DeleteGroup(ctx, g.ID); err != nil {
			t.Fatalf("DeleteGroup failed: %v", err)
		}
		if _, err := store.GetGroup(ctx, g.ID); !apperr.IsNotFound(err) {
			t.Errorf("expected NotFoundError after delete, got %v", err)
		}
		members, _ := store.GetGroupMembers(ctx, g.ID)
		if len(members) != 0 {
			t.Errorf("membership rows survived the delete: %v", members)
		}
	})
}

func TestSplitExpenses(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	alice := createUser(t, store, "Alice", "Smith")
	bob := createUser(t, store, "Bob", "Jones")
	carol := createUser(t, store, "Carol", "White")
	outsider := createUser(t, store, "Oscar", "Gray")
	category := createCategory(t, store, alice.ID)
	group := createGroup(t, store, alice.ID, bob.ID, carol.ID)

	parentFor := func(amount money.Cents) *models.Transaction {
		return &models.Transaction{
			CategoryID: category.ID,
			Type:       models.TypeExpense,
			Date:       "2026-04-01",
			Amount:     amount,
			Notes:      "dinner",
		}
	}

	t.Run("creates parent and split rows atomically", func(t *testing.T) {
		parent := parentFor(10000)
		shares := []storage.SplitShare{
			{BeneficiaryID: bob.ID, Amount: 5000},
			{BeneficiaryID: carol.ID, Amount: 5000},
		}
		splitIDs, err := store.CreateSplitExpense(ctx, group.ID, parent, alice.ID, shares)
		if err != nil {
			t.Fatalf("CreateSplitExpense failed: %v", err)
		}
		if parent.ID == 0 {
			t.Error("Expected parent transaction ID to be populated")
		}
		if len(splitIDs) != 2 {
			t.Fatalf("got %d split ids, want 2", len(splitIDs))
		}

		if _, err := store.GetTransaction(ctx, parent.ID); err != nil {
			t.Errorf("parent transaction not persisted: %v", err)
		}
		splits, err := store.ListSplitsByGroup(ctx, group.ID)
		if err != nil {
			t.Fatalf("ListSplitsByGroup failed: %v", err)
		}
		if len(splits) != 2 {
			t.Fatalf("got %d split rows, want 2", len(splits))
		}
		for _, sp := range splits {
			if sp.TransactionID != parent.ID || sp.PayerID != alice.ID || sp.Date != "2026-04-01" {
				t.Errorf("split row = %+v", sp)
			}
		}
	})

	t.Run("non-member payer rejected before any write", func(t *testing.T) {
		parent := parentFor(1000)
		_, err := store.CreateSplitExpense(ctx, group.ID, parent, outsider.ID,
			[]storage.SplitShare{{BeneficiaryID: bob.ID, Amount: 1000}})
		var conflict *apperr.ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("expected ConflictError, got %v", err)
		}
		if parent.ID != 0 {
			t.Error("parent ID populated despite rejection")
		}
	})

	t.Run("non-member beneficiary rolls back the parent transaction", func(t *testing.T) {
		before, err := store.ListTransactionsByCategory(ctx, category.ID)
		if err != nil {
			t.Fatalf("ListTransactionsByCategory failed: %v", err)
		}

		parent := parentFor(4200)
		_, err = store.CreateSplitExpense(ctx, group.ID, parent, alice.ID,
			[]storage.SplitShare{
				{BeneficiaryID: bob.ID, Amount: 2100},
				{BeneficiaryID: outsider.ID, Amount: 2100},
			})
		var conflict *apperr.ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("expected ConflictError, got %v", err)
		}

		after, err := store.ListTransactionsByCategory(ctx, category.ID)
		if err != nil {
			t.Fatalf("ListTransactionsByCategory failed: %v", err)
		}
		if len(after) != len(before) {
			t.Errorf("parent transaction persisted despite rollback: before=%d after=%d", len(before), len(after))
		}
	})

	t.Run("sums by payer and beneficiary", func(t *testing.T) {
		// One more split on top of the first subtest's 100.00: bob pays 30.00
		// back to alice.
		parent := parentFor(3000)
		if _, err := store.CreateSplitExpense(ctx, group.ID, parent, bob.ID,
			[]storage.SplitShare{{BeneficiaryID: alice.ID, Amount: 3000}}); err != nil {
			t.Fatalf("CreateSplitExpense failed: %v", err)
		}

		paid, err := store.SumSplitAmountsByPayer(ctx, group.ID)
		if err != nil {
			t.Fatalf("SumSplitAmountsByPayer failed: %v", err)
		}
		if paid[alice.ID] != 10000 || paid[bob.ID] != 3000 {
			t.Errorf("paid = %v", paid)
		}

		received, err := store.SumSplitAmountsByBeneficiary(ctx, group.ID)
		if err != nil {
			t.Fatalf("SumSplitAmountsByBeneficiary failed: %v", err)
		}
		if received[alice.ID] != 3000 || received[bob.ID] != 5000 || received[carol.ID] != 5000 {
			t.Errorf("received = %v", received)
		}
	})

	t.Run("HasSplitActivity and GroupHasSplits", func(t *testing.T) {
		for _, tc := range []struct {
			userID int64
			want   bool
		}{
			{alice.ID, true},
			{bob.ID, true},
			{carol.ID, true},
			{outsider.ID, false},
		} {
			got, err := store.HasSplitActivity(ctx, group.ID, tc.userID)
			if err != nil {
				t.Fatalf("HasSplitActivity failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("HasSplitActivity(%d) = %v, want %v", tc.userID, got, tc.want)
			}
		}

		has, err := store.GroupHasSplits(ctx, group.ID)
		if err != nil {
			t.Fatalf("GroupHasSplits failed: %v", err)
		}
		if !has {
			t.Error("GroupHasSplits = false for group with splits")
		}

		empty := createGroup(t, store, alice.ID)
		has, _ = store.GroupHasSplits(ctx, empty.ID)
		if has {
			t.Error("GroupHasSplits = true for fresh group")
		}
	})
}
