package ledger

import (
	"encoding/json"
	"fmt"

	"raijai/internal/core"
)

// Blob store keys. The _v5 suffix matches the snapshot schema version
// the stored data was written with.
const (
	KeyUser         = "user_v5"
	KeyTransactions = "transactions_v5"
	KeySession      = "session_v1"
)

// Stored wire forms for the persisted snapshot. Amounts are plain
// decimals and dates are ISO "2006-01-02" strings, matching the blobs
// earlier versions of the app wrote.
type (
	storedUser struct {
		ID       int64  `json:"id"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		Avatar   string `json:"avatar,omitempty"`
		Password string `json:"password"`
	}

	storedTransaction struct {
		ID       int64   `json:"id"`
		Type     string  `json:"type"`
		Category string  `json:"category"`
		Icon     string  `json:"icon,omitempty"`
		Name     string  `json:"name"`
		Amount   float64 `json:"amount"`
		Date     string  `json:"date"`
		Note     string  `json:"note,omitempty"`
	}

	// Snapshot is the full persisted state as one unit, used by
	// export and import.
	Snapshot struct {
		User         storedUser          `json:"user"`
		Transactions []storedTransaction `json:"transactions"`
	}
)

func defaultProfile() core.UserProfile {
	return core.UserProfile{
		ID:        1,
		Name:      "Somsak",
		Email:     "user@example.com",
		AvatarURL: "https://i.pravatar.cc/150?u=a042581f4e29026704d",
		Surrogate: EncodeSecret("1234"),
	}
}

func toStoredUser(u core.UserProfile) storedUser {
	return storedUser{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Avatar:   u.AvatarURL,
		Password: u.Surrogate,
	}
}

func fromStoredUser(su storedUser) core.UserProfile {
	return core.UserProfile{
		ID:        su.ID,
		Name:      su.Name,
		Email:     su.Email,
		AvatarURL: su.Avatar,
		Surrogate: su.Password,
	}
}

func toStoredTransaction(tx core.Transaction) storedTransaction {
	return storedTransaction{
		ID:       tx.ID,
		Type:     string(tx.Type),
		Category: tx.Category,
		Icon:     string(tx.Icon),
		Name:     tx.Name,
		Amount:   tx.Amount.Float(),
		Date:     tx.Date.String(),
		Note:     tx.Note,
	}
}

// fromStoredTransaction decodes one stored transaction, applying the
// one-way icon migration: records written before icons were persisted
// get a key assigned from the category lookup table.
func fromStoredTransaction(st storedTransaction) (core.Transaction, error) {
	date, err := core.ParseDate(st.Date)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("transaction %d: %w", st.ID, err)
	}
	typ := core.TransactionType(st.Type)
	if !typ.Valid() {
		return core.Transaction{}, fmt.Errorf("transaction %d: %w", st.ID, core.ErrInvalidType)
	}
	icon := core.IconKey(st.Icon)
	if !icon.Valid() {
		icon = core.IconForCategory(st.Category)
	}
	return core.Transaction{
		ID:       st.ID,
		Type:     typ,
		Category: st.Category,
		Icon:     icon,
		Name:     st.Name,
		Amount:   core.Money{Cents: core.CentsFromFloat(st.Amount)},
		Date:     date,
		Note:     st.Note,
	}, nil
}

func marshalSnapshot(s Snapshot) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

func unmarshalSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

func encodeUser(u core.UserProfile) ([]byte, error) {
	return json.Marshal(toStoredUser(u))
}

// decodeUser falls back to the default profile on malformed data;
// ok reports whether the stored blob was usable.
func decodeUser(data []byte) (core.UserProfile, bool) {
	var su storedUser
	if err := json.Unmarshal(data, &su); err != nil || su.Email == "" {
		return defaultProfile(), false
	}
	return fromStoredUser(su), true
}

func encodeTransactions(txs []core.Transaction) ([]byte, error) {
	stored := make([]storedTransaction, len(txs))
	for i, tx := range txs {
		stored[i] = toStoredTransaction(tx)
	}
	return json.Marshal(stored)
}

// decodeTransactions drops entries it cannot make sense of and returns
// the survivors; a blob that is not a JSON array at all yields an empty
// list. ok reports whether everything decoded cleanly.
func decodeTransactions(data []byte) ([]core.Transaction, bool) {
	var stored []storedTransaction
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, false
	}
	clean := true
	txs := make([]core.Transaction, 0, len(stored))
	for _, st := range stored {
		tx, err := fromStoredTransaction(st)
		if err != nil {
			clean = false
			continue
		}
		txs = append(txs, tx)
	}
	return txs, clean
}
