package ledger

import (
	"errors"
	"sync"

	"github.com/solanadevsnest/auctionPal/crypto"
)

var (
	// ErrAccountExists is returned when creating an account that already exists.
	ErrAccountExists = errors.New("account already exists")

	// ErrNoAccount is returned when the referenced account does not exist.
	ErrNoAccount = errors.New("account does not exist")

	// ErrBalanceOverflow is returned when a credit would overflow a balance.
	ErrBalanceOverflow = errors.New("balance overflow")

	// ErrInsufficientBalance is returned when a debit exceeds the balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Account is one storage slot on the host ledger: a native balance that pays
// for the slot's liveness, an opaque data region, and the identity of the
// program that owns the data.
type Account struct {
	Balance uint64
	Data    []byte
	Owner   crypto.Identity
}

func (a *Account) clone() *Account {
	return &Account{
		Balance: a.Balance,
		Data:    append([]byte(nil), a.Data...),
		Owner:   a.Owner,
	}
}

// Host is an in-memory model of the ledger's account storage. The real host
// serializes all operations against a record and guarantees all-or-nothing
// transaction semantics; Host reproduces the latter through Checkpoint.
type Host struct {
	mu       sync.RWMutex
	accounts map[crypto.Identity]*Account
}

// NewHost creates an empty ledger host.
func NewHost() *Host {
	return &Host{accounts: make(map[crypto.Identity]*Account)}
}

// CreateAccount allocates a storage slot with the given balance and data size.
func (h *Host) CreateAccount(id, owner crypto.Identity, balance uint64, dataLen int) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, exists := h.accounts[id]; exists {
		return ErrAccountExists
	}
	h.accounts[id] = &Account{
		Balance: balance,
		Data:    make([]byte, dataLen),
		Owner:   owner,
	}
	return nil
}

// Exists reports whether the account is present on the ledger.
func (h *Host) Exists(id crypto.Identity) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, exists := h.accounts[id]
	return exists
}

// Balance returns the native balance of an account.
func (h *Host) Balance(id crypto.Identity) (uint64, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	acct, exists := h.accounts[id]
	if !exists {
		return 0, ErrNoAccount
	}
	return acct.Balance, nil
}

// Data returns a copy of the account's data region.
func (h *Host) Data(id crypto.Identity) ([]byte, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	acct, exists := h.accounts[id]
	if !exists {
		return nil, ErrNoAccount
	}
	return append([]byte(nil), acct.Data...), nil
}

// DataLen returns the size of the account's data region.
func (h *Host) DataLen(id crypto.Identity) (int, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	acct, exists := h.accounts[id]
	if !exists {
		return 0, ErrNoAccount
	}
	return len(acct.Data), nil
}

// SetData replaces the account's data region.
func (h *Host) SetData(id crypto.Identity, data []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	acct, exists := h.accounts[id]
	if !exists {
		return ErrNoAccount
	}
	acct.Data = append([]byte(nil), data...)
	return nil
}

// Credit adds to an account's native balance, failing on overflow.
func (h *Host) Credit(id crypto.Identity, amount uint64) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	acct, exists := h.accounts[id]
	if !exists {
		return ErrNoAccount
	}
	if acct.Balance+amount < acct.Balance {
		return ErrBalanceOverflow
	}
	acct.Balance += amount
	return nil
}

// Debit removes from an account's native balance.
func (h *Host) Debit(id crypto.Identity, amount uint64) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	acct, exists := h.accounts[id]
	if !exists {
		return ErrNoAccount
	}
	if acct.Balance < amount {
		return ErrInsufficientBalance
	}
	acct.Balance -= amount
	return nil
}

// CloseAccount drains the account's balance into dest, clears its data and
// removes it from the ledger. The reclaimed balance credit is overflow-checked.
func (h *Host) CloseAccount(id, dest crypto.Identity) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	acct, exists := h.accounts[id]
	if !exists {
		return ErrNoAccount
	}
	destAcct, exists := h.accounts[dest]
	if !exists {
		return ErrNoAccount
	}
	if destAcct.Balance+acct.Balance < destAcct.Balance {
		return ErrBalanceOverflow
	}
	destAcct.Balance += acct.Balance
	acct.Balance = 0
	acct.Data = nil
	delete(h.accounts, id)
	return nil
}

// Checkpoint snapshots the full account state and returns a restore function.
// A transition that fails partway calls restore to discard every mutation made
// since the checkpoint, reproducing the host's all-or-nothing guarantee.
func (h *Host) Checkpoint() (restore func()) {
	h.mu.RLock()
	snapshot := make(map[crypto.Identity]*Account, len(h.accounts))
	for id, acct := range h.accounts {
		snapshot[id] = acct.clone()
	}
	h.mu.RUnlock()

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.accounts = snapshot
	}
}
