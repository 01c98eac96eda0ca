// Package ledger holds the single source of truth for the user profile
// and the transaction list. Every mutation runs a read-modify-persist
// cycle: the in-memory state changes first, then the full snapshot is
// written through the blob store. Mutations require an active session;
// without one they are silent no-ops.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"raijai/internal/blob"
	"raijai/internal/core"
)

type Ledger struct {
	store blob.Store
	now   func() time.Time

	profile core.UserProfile
	loaded  bool
	active  bool
	txs     []core.Transaction
}

type Option func(*Ledger)

// WithClock overrides the time source used for identifier generation.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

func New(store blob.Store, opts ...Option) *Ledger {
	l := &Ledger{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches the persisted snapshot and installs it in memory. A
// missing snapshot materializes the fixed default profile and an empty
// list; malformed blobs fall back the same way without surfacing an
// error. The loaded list is sorted descending by date. Load does not
// open a session.
func (l *Ledger) Load(ctx context.Context) error {
	var userBlob, txBlob []byte
	var userOK, txOK bool

	// The two snapshot keys are independent; fetch them together.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		userBlob, userOK, err = l.store.Get(gctx, KeyUser)
		return err
	})
	g.Go(func() error {
		var err error
		txBlob, txOK, err = l.store.Get(gctx, KeyTransactions)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	if userOK {
		profile, clean := decodeUser(userBlob)
		if !clean {
			slog.WarnContext(ctx, "Stored profile malformed, using default", "key", KeyUser)
		}
		l.profile = profile
	} else {
		l.profile = defaultProfile()
	}

	l.txs = nil
	if txOK {
		txs, clean := decodeTransactions(txBlob)
		if !clean {
			slog.WarnContext(ctx, "Stored transactions partially malformed", "key", KeyTransactions, "kept", len(txs))
		}
		l.txs = txs
	}
	core.SortByDateDesc(l.txs)

	l.loaded = true
	slog.InfoContext(ctx, "Snapshot loaded", "transactions", len(l.txs), "email", l.profile.Email)
	return nil
}

// Login opens a session iff the stored profile's email matches and the
// decoded password surrogate matches the supplied secret. On any
// mismatch it returns false and changes nothing. This is not a
// security boundary.
func (l *Ledger) Login(ctx context.Context, email, secret string) bool {
	if !l.loaded || email != l.profile.Email || secret == "" {
		return false
	}
	if DecodeSecret(l.profile.Surrogate) != secret {
		return false
	}
	l.active = true
	if err := l.store.Set(ctx, KeySession, []byte(email)); err != nil {
		slog.WarnContext(ctx, "Failed to persist session", "error", err)
	}
	slog.InfoContext(ctx, "Session opened", "email", email)
	return true
}

// ResumeSession reopens the session recorded by a previous Login, if
// it matches the stored profile.
func (l *Ledger) ResumeSession(ctx context.Context) bool {
	if !l.loaded {
		return false
	}
	value, ok, err := l.store.Get(ctx, KeySession)
	if err != nil || !ok {
		return false
	}
	if string(value) != l.profile.Email {
		return false
	}
	l.active = true
	return true
}

// Logout clears the in-memory session. The persisted snapshot is left
// untouched.
func (l *Ledger) Logout(ctx context.Context) {
	l.active = false
	if err := l.store.Delete(ctx, KeySession); err != nil {
		slog.WarnContext(ctx, "Failed to clear session", "error", err)
	}
}

// Active reports whether a session is open.
func (l *Ledger) Active() bool { return l.active }

// CurrentUser returns the profile of the active session, or nil when
// no session is open.
func (l *Ledger) CurrentUser() *core.UserProfile {
	if !l.active {
		return nil
	}
	u := l.profile
	return &u
}

// Transactions returns a copy of the current list, sorted descending
// by date.
func (l *Ledger) Transactions() []core.Transaction {
	return append([]core.Transaction(nil), l.txs...)
}

// UpdateProfile replaces the display name and avatar on the current
// profile and persists the snapshot. No-op without a session.
func (l *Ledger) UpdateProfile(ctx context.Context, name, avatarURL string) error {
	if !l.active {
		return nil
	}
	l.profile.Name = name
	l.profile.AvatarURL = avatarURL
	return l.persist(ctx)
}

// ChangePassword succeeds iff the decoded current surrogate matches
// currentSecret; on success it stores the re-encoded new secret and
// persists. Otherwise state is unchanged and it returns false.
func (l *Ledger) ChangePassword(ctx context.Context, currentSecret, newSecret string) bool {
	if !l.active || newSecret == "" {
		return false
	}
	if DecodeSecret(l.profile.Surrogate) != currentSecret {
		return false
	}
	l.profile.Surrogate = EncodeSecret(newSecret)
	if err := l.persist(ctx); err != nil {
		slog.ErrorContext(ctx, "Failed to persist password change", "error", err)
	}
	return true
}

// AddTransaction assigns a fresh identifier, inserts, re-sorts and
// persists. The created transaction is returned; without a session
// nothing happens and the zero Transaction comes back.
func (l *Ledger) AddTransaction(ctx context.Context, fields core.Transaction) (core.Transaction, error) {
	if !l.active {
		return core.Transaction{}, nil
	}
	fields.ID = l.nextID()
	if !fields.Icon.Valid() {
		fields.Icon = core.IconForCategory(fields.Category)
	}
	l.txs = append(l.txs, fields)
	core.SortByDateDesc(l.txs)
	if err := l.persist(ctx); err != nil {
		return fields, err
	}
	slog.InfoContext(ctx, "Transaction added",
		"id", fields.ID, "type", string(fields.Type), "amount_cents", fields.Amount.Cents)
	return fields, nil
}

// UpdateTransaction replaces the transaction matching id with fields
// under the same identifier, re-sorts and persists. Absent ids and
// missing sessions are no-ops.
func (l *Ledger) UpdateTransaction(ctx context.Context, id int64, fields core.Transaction) error {
	if !l.active {
		return nil
	}
	for i := range l.txs {
		if l.txs[i].ID != id {
			continue
		}
		fields.ID = id
		if !fields.Icon.Valid() {
			fields.Icon = core.IconForCategory(fields.Category)
		}
		l.txs[i] = fields
		core.SortByDateDesc(l.txs)
		return l.persist(ctx)
	}
	return nil
}

// DeleteTransaction removes the matching transaction and persists.
// Absent ids and missing sessions are no-ops.
func (l *Ledger) DeleteTransaction(ctx context.Context, id int64) error {
	if !l.active {
		return nil
	}
	for i := range l.txs {
		if l.txs[i].ID == id {
			l.txs = append(l.txs[:i], l.txs[i+1:]...)
			return l.persist(ctx)
		}
	}
	return nil
}

// ClearAllData empties the transaction list and persists, leaving the
// profile untouched.
func (l *Ledger) ClearAllData(ctx context.Context) error {
	if !l.active {
		return nil
	}
	l.txs = nil
	return l.persist(ctx)
}

// Export serializes the full snapshot for inspection or backup.
func (l *Ledger) Export() ([]byte, error) {
	snap := Snapshot{
		User:         toStoredUser(l.profile),
		Transactions: make([]storedTransaction, len(l.txs)),
	}
	for i, tx := range l.txs {
		snap.Transactions[i] = toStoredTransaction(tx)
	}
	return marshalSnapshot(snap)
}

// Import replaces the in-memory state with the given snapshot and
// persists it. Entries that do not decode are dropped. No-op without a
// session.
func (l *Ledger) Import(ctx context.Context, data []byte) error {
	if !l.active {
		return nil
	}
	snap, err := unmarshalSnapshot(data)
	if err != nil {
		return fmt.Errorf("import snapshot: %w", err)
	}
	profile := fromStoredUser(snap.User)
	if profile.Email == "" {
		return fmt.Errorf("import snapshot: profile missing email")
	}
	txs := make([]core.Transaction, 0, len(snap.Transactions))
	for _, st := range snap.Transactions {
		tx, err := fromStoredTransaction(st)
		if err != nil {
			slog.WarnContext(ctx, "Dropping malformed imported transaction", "error", err)
			continue
		}
		txs = append(txs, tx)
	}
	l.profile = profile
	l.txs = txs
	core.SortByDateDesc(l.txs)
	return l.persist(ctx)
}

// nextID derives a fresh identifier from the clock, bumping past any
// identifier already in the list so ids stay unique and monotonic.
func (l *Ledger) nextID() int64 {
	id := l.now().UnixMilli()
	for {
		collision := false
		for _, tx := range l.txs {
			if tx.ID >= id {
				id = tx.ID + 1
				collision = true
			}
		}
		if !collision {
			return id
		}
	}
}

// persist writes the full snapshot through the blob store. The two
// keys are written one after the other; atomicity across them is not
// assumed.
func (l *Ledger) persist(ctx context.Context) error {
	txBlob, err := encodeTransactions(l.txs)
	if err != nil {
		return fmt.Errorf("encode transactions: %w", err)
	}
	if err := l.store.Set(ctx, KeyTransactions, txBlob); err != nil {
		return fmt.Errorf("persist transactions: %w", err)
	}

	userBlob, err := encodeUser(l.profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := l.store.Set(ctx, KeyUser, userBlob); err != nil {
		return fmt.Errorf("persist profile: %w", err)
	}
	return nil
}
