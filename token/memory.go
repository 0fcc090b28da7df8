package token

import (
	"sync"

	"github.com/solanadevsnest/auctionPal/crypto"
	"github.com/solanadevsnest/auctionPal/ledger"
)

type custodyAccount struct {
	asset     crypto.Identity
	authority crypto.Identity
	amount    uint64
	deposit   uint64
}

func (a *custodyAccount) clone() *custodyAccount {
	copied := *a
	return &copied
}

// MemoryService implements Service against an in-memory ledger host. Native
// deposits reclaimed by Close are credited to ledger accounts on the host.
type MemoryService struct {
	programID crypto.Identity
	host      *ledger.Host

	mu       sync.Mutex
	accounts map[crypto.Identity]*custodyAccount
}

// NewMemoryService creates a custody service that validates derived-authority
// proofs against the given protocol identity.
func NewMemoryService(programID crypto.Identity, host *ledger.Host) *MemoryService {
	return &MemoryService{
		programID: programID,
		host:      host,
		accounts:  make(map[crypto.Identity]*custodyAccount),
	}
}

// CreateAccount allocates a custody account holding zero units of the asset.
func (s *MemoryService) CreateAccount(account, asset, authority crypto.Identity, deposit uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[account]; exists {
		return ErrAccountExists
	}
	s.accounts[account] = &custodyAccount{
		asset:     asset,
		authority: authority,
		deposit:   deposit,
	}
	return nil
}

// Deposit places amount units of the account's asset directly into custody.
// This stands in for the funding flows (minting, external transfers) that are
// outside the auction protocol.
func (s *MemoryService) Deposit(account crypto.Identity, amount uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, exists := s.accounts[account]
	if !exists {
		return ErrNoAccount
	}
	if acct.amount+amount < acct.amount {
		return ErrAmountOverflow
	}
	acct.amount += amount
	return nil
}

// Transfer moves amount units from source to dest under the given authority.
func (s *MemoryService) Transfer(source, dest crypto.Identity, auth Authority, amount uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	src, exists := s.accounts[source]
	if !exists {
		return ErrNoAccount
	}
	dst, exists := s.accounts[dest]
	if !exists {
		return ErrNoAccount
	}
	if src.asset != dst.asset {
		return ErrAssetMismatch
	}
	if err := s.authorize(src, auth); err != nil {
		return err
	}
	if src.amount < amount {
		return ErrInsufficientFunds
	}
	if dst.amount+amount < dst.amount {
		return ErrAmountOverflow
	}
	src.amount -= amount
	dst.amount += amount
	return nil
}

// SetAuthority hands control of the account to newAuthority.
func (s *MemoryService) SetAuthority(account crypto.Identity, newAuthority crypto.Identity, auth Authority) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, exists := s.accounts[account]
	if !exists {
		return ErrNoAccount
	}
	if err := s.authorize(acct, auth); err != nil {
		return err
	}
	acct.authority = newAuthority
	return nil
}

// Close removes an emptied custody account and credits its native deposit to
// the dest ledger account.
func (s *MemoryService) Close(account, dest crypto.Identity, auth Authority) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, exists := s.accounts[account]
	if !exists {
		return ErrNoAccount
	}
	if err := s.authorize(acct, auth); err != nil {
		return err
	}
	if acct.amount != 0 {
		return ErrAccountNotEmpty
	}
	if err := s.host.Credit(dest, acct.deposit); err != nil {
		return err
	}
	delete(s.accounts, account)
	return nil
}

// Balance returns the amount held in custody.
func (s *MemoryService) Balance(account crypto.Identity) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, exists := s.accounts[account]
	if !exists {
		return 0, ErrNoAccount
	}
	return acct.amount, nil
}

// Authority returns the identity currently controlling the account.
func (s *MemoryService) Authority(account crypto.Identity) (crypto.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, exists := s.accounts[account]
	if !exists {
		return crypto.Identity{}, ErrNoAccount
	}
	return acct.authority, nil
}

// Exists reports whether the custody account is present.
func (s *MemoryService) Exists(account crypto.Identity) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, exists := s.accounts[account]
	return exists
}

// Checkpoint snapshots custody state and returns a restore function.
func (s *MemoryService) Checkpoint() (restore func()) {
	s.mu.Lock()
	snapshot := make(map[crypto.Identity]*custodyAccount, len(s.accounts))
	for id, acct := range s.accounts {
		snapshot[id] = acct.clone()
	}
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.accounts = snapshot
	}
}

func (s *MemoryService) authorize(acct *custodyAccount, auth Authority) error {
	if auth.proof != nil {
		if !auth.proof.Valid(s.programID) {
			return ErrUnauthorized
		}
		if auth.proof.Authority() != acct.authority {
			return ErrUnauthorized
		}
		return nil
	}
	if !auth.signed || auth.id != acct.authority {
		return ErrUnauthorized
	}
	return nil
}
