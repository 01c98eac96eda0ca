package ledger

import (
	"context"
	"testing"
	"time"

	"raijai/internal/blob/memory"
	"raijai/internal/core"
)

func newTestLedger(t *testing.T) (*Ledger, *memory.Store) {
	t.Helper()
	store := memory.New()
	clock := time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)
	l := New(store, WithClock(func() time.Time {
		clock = clock.Add(time.Millisecond)
		return clock
	}))
	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return l, store
}

func loggedIn(t *testing.T) (*Ledger, *memory.Store) {
	t.Helper()
	l, store := newTestLedger(t)
	if !l.Login(context.Background(), "user@example.com", "1234") {
		t.Fatalf("default login failed")
	}
	return l, store
}

func fields(typ core.TransactionType, category, name string, cents int64, d core.Date) core.Transaction {
	return core.Transaction{
		Type:     typ,
		Category: category,
		Name:     name,
		Amount:   core.Money{Cents: cents},
		Date:     d,
	}
}

func TestLoadMaterializesDefaults(t *testing.T) {
	l, _ := newTestLedger(t)
	if l.Active() {
		t.Fatalf("load must not open a session")
	}
	if got := l.Transactions(); len(got) != 0 {
		t.Fatalf("expected empty list, got %d", len(got))
	}
	if !l.Login(context.Background(), "user@example.com", "1234") {
		t.Fatalf("expected default profile to accept demo credentials")
	}
	u := l.CurrentUser()
	if u == nil || u.Name != "Somsak" {
		t.Fatalf("expected default profile, got %+v", u)
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		email, secret string
		ok            bool
	}{
		{"user@example.com", "1234", true},
		{"user@example.com", "wrong", false},
		{"other@example.com", "1234", false},
		{"user@example.com", "", false},
	}
	for i, tc := range cases {
		l, _ := newTestLedger(t)
		got := l.Login(ctx, tc.email, tc.secret)
		if got != tc.ok {
			t.Fatalf("case %d expected %v, got %v", i, tc.ok, got)
		}
		if !tc.ok && l.CurrentUser() != nil {
			t.Fatalf("case %d failed login must leave no profile loaded", i)
		}
	}
}

func TestLogoutClearsMemoryOnly(t *testing.T) {
	ctx := context.Background()
	l, store := loggedIn(t)
	if _, err := l.AddTransaction(ctx, fields(core.Expense, "Food", "lunch", 12000, core.NewDate(2025, 8, 15))); err != nil {
		t.Fatalf("add: %v", err)
	}
	l.Logout(ctx)
	if l.CurrentUser() != nil {
		t.Fatalf("expected no current user after logout")
	}
	// The persisted blobs survive.
	if _, ok, _ := store.Get(ctx, KeyUser); !ok {
		t.Fatalf("expected profile blob to survive logout")
	}
	if _, ok, _ := store.Get(ctx, KeyTransactions); !ok {
		t.Fatalf("expected transactions blob to survive logout")
	}
}

func TestAddKeepsDescendingDateOrder(t *testing.T) {
	ctx := context.Background()
	l, _ := loggedIn(t)

	dates := []core.Date{
		core.NewDate(2025, 8, 13),
		core.NewDate(2025, 8, 15),
		core.NewDate(2025, 8, 14),
		core.NewDate(2025, 8, 15),
		core.NewDate(2025, 8, 1),
	}
	for i, d := range dates {
		if _, err := l.AddTransaction(ctx, fields(core.Expense, "Food", "x", int64(100+i), d)); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
		txs := l.Transactions()
		for j := 1; j < len(txs); j++ {
			if txs[j].Date.After(txs[j-1].Date.Time) {
				t.Fatalf("after add %d list not descending at %d", i, j)
			}
		}
	}
}

func TestAddAssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	l, _ := loggedIn(t)
	seen := make(map[int64]bool)
	for i := 0; i < 20; i++ {
		tx, err := l.AddTransaction(ctx, fields(core.Expense, "Food", "x", 100, core.NewDate(2025, 8, 15)))
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if seen[tx.ID] {
			t.Fatalf("duplicate id %d", tx.ID)
		}
		seen[tx.ID] = true
	}
}

func TestUpdateTransaction(t *testing.T) {
	ctx := context.Background()
	l, _ := loggedIn(t)
	added, _ := l.AddTransaction(ctx, fields(core.Expense, "Food", "lunch", 12000, core.NewDate(2025, 8, 15)))
	l.AddTransaction(ctx, fields(core.Expense, "Transport", "train", 5900, core.NewDate(2025, 8, 14)))

	updated := fields(core.Expense, "บันเทิง", "movie", 25000, core.NewDate(2025, 8, 10))
	if err := l.UpdateTransaction(ctx, added.ID, updated); err != nil {
		t.Fatalf("update: %v", err)
	}

	txs := l.Transactions()
	if len(txs) != 2 {
		t.Fatalf("expected length unchanged, got %d", len(txs))
	}
	var found int
	for _, tx := range txs {
		if tx.ID != added.ID {
			continue
		}
		found++
		if tx.Name != "movie" || tx.Amount.Cents != 25000 || tx.Category != "บันเทิง" {
			t.Fatalf("fields not replaced: %+v", tx)
		}
		if tx.Icon != core.IconFilm {
			t.Fatalf("expected icon reassigned from category, got %q", tx.Icon)
		}
	}
	if found != 1 {
		t.Fatalf("expected exactly one transaction with id, got %d", found)
	}

	// Absent id is a no-op.
	if err := l.UpdateTransaction(ctx, 999999, updated); err != nil {
		t.Fatalf("update absent: %v", err)
	}
	if len(l.Transactions()) != 2 {
		t.Fatalf("absent update must not change length")
	}
}

func TestDeleteTransaction(t *testing.T) {
	ctx := context.Background()
	l, _ := loggedIn(t)
	added, _ := l.AddTransaction(ctx, fields(core.Expense, "Food", "lunch", 100, core.NewDate(2025, 8, 15)))
	l.AddTransaction(ctx, fields(core.Expense, "Food", "coffee", 200, core.NewDate(2025, 8, 14)))

	if err := l.DeleteTransaction(ctx, added.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := len(l.Transactions()); got != 1 {
		t.Fatalf("expected length 1 after delete, got %d", got)
	}
	// Absent id decreases nothing.
	if err := l.DeleteTransaction(ctx, added.ID); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
	if got := len(l.Transactions()); got != 1 {
		t.Fatalf("expected length unchanged, got %d", got)
	}
}

func TestClearAllDataLeavesProfile(t *testing.T) {
	ctx := context.Background()
	l, _ := loggedIn(t)
	l.AddTransaction(ctx, fields(core.Expense, "Food", "lunch", 100, core.NewDate(2025, 8, 15)))
	if err := l.UpdateProfile(ctx, "สมศักดิ์", "avatar.png"); err != nil {
		t.Fatalf("update profile: %v", err)
	}

	if err := l.ClearAllData(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := len(l.Transactions()); got != 0 {
		t.Fatalf("expected empty list, got %d", got)
	}
	u := l.CurrentUser()
	if u == nil || u.Name != "สมศักดิ์" || u.AvatarURL != "avatar.png" {
		t.Fatalf("profile fields must be unchanged, got %+v", u)
	}
}

func TestMutationsWithoutSessionAreNoOps(t *testing.T) {
	ctx := context.Background()
	l, store := newTestLedger(t)

	if tx, err := l.AddTransaction(ctx, fields(core.Expense, "Food", "lunch", 100, core.NewDate(2025, 8, 15))); err != nil || tx.ID != 0 {
		t.Fatalf("expected silent no-op, got tx=%+v err=%v", tx, err)
	}
	if err := l.UpdateProfile(ctx, "x", "y"); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if l.ChangePassword(ctx, "1234", "5678") {
		t.Fatalf("expected password change to fail without session")
	}
	if err := l.ClearAllData(ctx); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("nothing may be persisted without a session, got %d keys", store.Len())
	}
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	l, _ := loggedIn(t)

	if l.ChangePassword(ctx, "wrong", "5678") {
		t.Fatalf("expected failure with wrong current secret")
	}
	if !l.ChangePassword(ctx, "1234", "5678") {
		t.Fatalf("expected success with correct current secret")
	}

	// Old secret is gone, new one works.
	l.Logout(ctx)
	if l.Login(ctx, "user@example.com", "1234") {
		t.Fatalf("old secret must no longer work")
	}
	if !l.Login(ctx, "user@example.com", "5678") {
		t.Fatalf("new secret must work")
	}
}

func TestPersistedRoundTrip(t *testing.T) {
	ctx := context.Background()
	l, store := loggedIn(t)
	l.AddTransaction(ctx, fields(core.Income, "เงินเดือน", "เงินเดือนเข้า", 2500000, core.NewDate(2025, 8, 15)))
	l.AddTransaction(ctx, fields(core.Expense, "อาหาร", "มื้อกลางวัน", 12000, core.NewDate(2025, 8, 15)))
	l.AddTransaction(ctx, fields(core.Expense, "เดินทาง", "ค่ารถไฟฟ้า", 5900, core.NewDate(2025, 8, 13)))
	l.UpdateProfile(ctx, "Somsak J.", "new-avatar.png")
	want := l.Transactions()

	// Load a fresh ledger from the same store.
	reloaded := New(store)
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	got := reloaded.Transactions()
	if len(got) != len(want) {
		t.Fatalf("expected %d transactions, got %d", len(want), len(got))
	}
	for i := range want {
		w, g := want[i], got[i]
		if g.ID != w.ID || g.Type != w.Type || g.Category != w.Category ||
			g.Icon != w.Icon || g.Name != w.Name || g.Amount != w.Amount ||
			g.Note != w.Note || !g.Date.Equal(w.Date.Time) {
			t.Fatalf("transaction %d mismatch:\nwant %+v\ngot  %+v", i, w, g)
		}
	}
	if !reloaded.Login(ctx, "user@example.com", "1234") {
		t.Fatalf("reloaded profile must accept the same secret")
	}
	u := reloaded.CurrentUser()
	if u.Name != "Somsak J." || u.AvatarURL != "new-avatar.png" {
		t.Fatalf("profile mismatch: %+v", u)
	}
}

func TestResumeSession(t *testing.T) {
	ctx := context.Background()
	l, store := loggedIn(t)
	l.AddTransaction(ctx, fields(core.Expense, "Food", "lunch", 100, core.NewDate(2025, 8, 15)))

	fresh := New(store)
	if err := fresh.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if !fresh.ResumeSession(ctx) {
		t.Fatalf("expected session resume after login")
	}
	if fresh.CurrentUser() == nil {
		t.Fatalf("expected current user after resume")
	}

	l.Logout(ctx)
	another := New(store)
	another.Load(ctx)
	if another.ResumeSession(ctx) {
		t.Fatalf("expected no resume after logout")
	}
}
