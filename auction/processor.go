package auction

import (
	"fmt"
	"math"
	"sync"

	"github.com/solanadevsnest/auctionPal/crypto"
	"github.com/solanadevsnest/auctionPal/ledger"
	"github.com/solanadevsnest/auctionPal/token"
)

// authorityLabel is the fixed prefix of every derivation. The record identity
// is appended so independent auctions never share an authority.
var authorityLabel = []byte("escrow")

// AccountMeta is one entry of the ordered account reference list accompanying
// a transition request. IsSigner carries the dispatcher's verdict on whether
// the referenced party signed the request.
type AccountMeta struct {
	ID       crypto.Identity
	IsSigner bool
}

// Expected account reference counts per operation.
const (
	exhibitAccounts = 5
	bidAccounts     = 7
	cancelAccounts  = 4
	closeAccounts   = 7
)

// Processor validates and applies the four auction transitions against
// records stored on the ledger host, issuing custody operations in the strict
// order the protocol requires.
//
// Every transition runs inside a checkpoint of both ledger and custody state;
// the first failing guard or custody call aborts the transition and restores
// the checkpoint, so no partial effect is ever observable. Transitions are
// serialized: the checkpoint snapshots the whole world, so a rollback while
// another transition is in flight would erase its committed effects.
type Processor struct {
	programID crypto.Identity
	host      *ledger.Host
	tokens    token.Service
	clock     ledger.Clock
	rent      ledger.Rent

	mu sync.Mutex
}

// NewProcessor creates a processor bound to its collaborators.
func NewProcessor(programID crypto.Identity, host *ledger.Host, tokens token.Service,
	clock ledger.Clock, rent ledger.Rent) (*Processor, error) {

	if host == nil {
		return nil, fmt.Errorf("ledger host cannot be nil")
	}
	if tokens == nil {
		return nil, fmt.Errorf("custody service cannot be nil")
	}
	if clock == nil {
		return nil, fmt.Errorf("clock cannot be nil")
	}
	if rent == nil {
		return nil, fmt.Errorf("rent oracle cannot be nil")
	}
	return &Processor{
		programID: programID,
		host:      host,
		tokens:    tokens,
		clock:     clock,
		rent:      rent,
	}, nil
}

// ProgramID returns the protocol identity transitions derive authorities from.
func (p *Processor) ProgramID() crypto.Identity {
	return p.programID
}

// Record loads and decodes the auction record stored in the given account.
func (p *Processor) Record(recordID crypto.Identity) (*Record, error) {
	data, err := p.host.Data(recordID)
	if err != nil {
		return nil, err
	}
	return UnpackRecord(data)
}

// Process decodes a transition intent and applies it against the ordered
// account reference list. On any failure the transition is rolled back whole.
// Concurrent callers are admitted one at a time.
func (p *Processor) Process(data []byte, accounts []AccountMeta) error {
	instruction, err := DecodeInstruction(data)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	restore := p.checkpoint()
	switch instruction.Kind {
	case KindExhibit:
		err = p.processExhibit(accounts, instruction.InitialPrice, instruction.Duration)
	case KindBid:
		err = p.processBid(accounts, instruction.Amount)
	case KindCancel:
		err = p.processCancel(accounts)
	case KindClose:
		err = p.processClose(accounts)
	}
	if err != nil {
		restore()
		return err
	}
	return nil
}

// checkpoint snapshots ledger and custody state together. The returned restore
// undoes custody mutations first, then ledger mutations, the reverse of the
// order transitions touch them in.
func (p *Processor) checkpoint() (restore func()) {
	restoreHost := p.host.Checkpoint()
	restoreTokens := p.tokens.Checkpoint()
	return func() {
		restoreTokens()
		restoreHost()
	}
}

func authoritySeeds(recordID crypto.Identity) [][]byte {
	return [][]byte{authorityLabel, recordID.Bytes()}
}

// processExhibit is the Create transition.
//
// Accounts: 0 exhibitor (signer), 1 item source, 2 item temp custody,
// 3 proceeds receiving, 4 record.
func (p *Processor) processExhibit(accounts []AccountMeta, initialPrice, durationSeconds uint64) error {
	if err := guardAccountCount(accounts, exhibitAccounts); err != nil {
		return err
	}
	exhibitor := accounts[0]
	itemSource := accounts[1].ID
	itemCustody := accounts[2].ID
	proceedsAccount := accounts[3].ID
	recordID := accounts[4].ID

	if err := guardSigner(exhibitor); err != nil {
		return err
	}

	balance, err := p.host.Balance(recordID)
	if err != nil {
		return err
	}
	dataLen, err := p.host.DataLen(recordID)
	if err != nil {
		return err
	}
	if !p.rent.IsPersistentlyFunded(balance, dataLen) {
		return ErrNotPersistentlyFunded
	}

	record, err := p.Record(recordID)
	if err != nil {
		return err
	}
	if err := guardUninitialized(record); err != nil {
		return err
	}

	nowUnix := p.clock.Now().Unix()
	if durationSeconds > math.MaxInt64 || nowUnix > math.MaxInt64-int64(durationSeconds) {
		return ErrAmountOverflow
	}

	record.Initialized = true
	record.Exhibitor = exhibitor.ID
	record.ItemCustody = itemCustody
	record.ProceedsAccount = proceedsAccount
	record.Price = initialPrice
	record.EndAt = nowUnix + int64(durationSeconds)
	packed := record.Pack()
	if err := p.host.SetData(recordID, packed[:]); err != nil {
		return err
	}

	authority, _, err := crypto.DeriveAuthority(p.programID, authoritySeeds(recordID)...)
	if err != nil {
		return err
	}

	// The item must be inside custody before the custody account's authority
	// is handed to the derived authority.
	signer := token.SignerAuthority(exhibitor.ID, exhibitor.IsSigner)
	if err := p.tokens.Transfer(itemSource, itemCustody, signer, 1); err != nil {
		return fmt.Errorf("transferring item into custody: %w", err)
	}
	if err := p.tokens.SetAuthority(itemCustody, authority, signer); err != nil {
		return fmt.Errorf("handing item custody to derived authority: %w", err)
	}
	return nil
}

// processBid is the Bid transition.
//
// Accounts: 0 bidder (signer), 1 current leader, 2 leader temp custody,
// 3 leader refund, 4 bidder temp custody, 5 bidder funding source, 6 record.
func (p *Processor) processBid(accounts []AccountMeta, amount uint64) error {
	if err := guardAccountCount(accounts, bidAccounts); err != nil {
		return err
	}
	bidder := accounts[0]
	leader := accounts[1].ID
	leaderCustody := accounts[2].ID
	leaderRefund := accounts[3].ID
	bidderCustody := accounts[4].ID
	bidderSource := accounts[5].ID
	recordID := accounts[6].ID

	if err := guardSigner(bidder); err != nil {
		return err
	}

	record, err := p.Record(recordID)
	if err != nil {
		return err
	}
	if err := guardInitialized(record); err != nil {
		return err
	}
	if err := guardBeforeEnd(record, p.clock.Now().Unix()); err != nil {
		return err
	}
	if amount <= record.Price {
		return ErrBidTooLow
	}

	// The supplied leader references must match the record exactly, so a
	// stale or attacker-supplied account can never receive the refund.
	if err := guardSameIdentity(leaderCustody, record.BidderCustody); err != nil {
		return err
	}
	if err := guardSameIdentity(leaderRefund, record.BidderRefund); err != nil {
		return err
	}
	if err := guardSameIdentity(leader, record.Bidder); err != nil {
		return err
	}
	if record.Bidder == bidder.ID {
		return ErrAlreadyLeading
	}

	// The new bidder's funds must be safely in custody before the previous
	// leader is refunded, so a failure never leaves the auction with no funds
	// in escrow for the current leader.
	signer := token.SignerAuthority(bidder.ID, bidder.IsSigner)
	if err := p.tokens.Transfer(bidderSource, bidderCustody, signer, amount); err != nil {
		return fmt.Errorf("transferring bid into custody: %w", err)
	}

	derivedAuthority, err := crypto.MintAuthorityProof(p.programID, authoritySeeds(recordID)...)
	if err != nil {
		return err
	}
	if err := p.tokens.SetAuthority(bidderCustody, derivedAuthority.Authority(), signer); err != nil {
		return fmt.Errorf("handing bid custody to derived authority: %w", err)
	}

	if record.HasBidder() {
		derived := token.DerivedAuthority(derivedAuthority)
		if err := p.tokens.Transfer(leaderCustody, leaderRefund, derived, record.Price); err != nil {
			return fmt.Errorf("refunding previous leader: %w", err)
		}
		if err := p.tokens.Close(leaderCustody, leader, derived); err != nil {
			return fmt.Errorf("closing previous leader custody: %w", err)
		}
	}

	record.Price = amount
	record.Bidder = bidder.ID
	record.BidderCustody = bidderCustody
	record.BidderRefund = bidderSource
	packed := record.Pack()
	return p.host.SetData(recordID, packed[:])
}

// processCancel is the Cancel transition. It is valid only while no bid has
// ever been placed.
//
// Accounts: 0 exhibitor (signer), 1 item temp custody, 2 item returning,
// 3 record.
func (p *Processor) processCancel(accounts []AccountMeta) error {
	if err := guardAccountCount(accounts, cancelAccounts); err != nil {
		return err
	}
	exhibitor := accounts[0]
	itemCustody := accounts[1].ID
	itemReturning := accounts[2].ID
	recordID := accounts[3].ID

	if err := guardSigner(exhibitor); err != nil {
		return err
	}

	record, err := p.Record(recordID)
	if err != nil {
		return err
	}
	if err := guardInitialized(record); err != nil {
		return err
	}
	if err := guardSameIdentity(exhibitor.ID, record.Exhibitor); err != nil {
		return err
	}
	if err := guardSameIdentity(itemCustody, record.ItemCustody); err != nil {
		return err
	}
	if record.HasBidder() {
		return ErrAuctionHasBid
	}

	derivedAuthority, err := crypto.MintAuthorityProof(p.programID, authoritySeeds(recordID)...)
	if err != nil {
		return err
	}
	derived := token.DerivedAuthority(derivedAuthority)

	// The quantity returned is read from the live custody account rather than
	// assumed, so the transition is robust to external top-ups.
	held, err := p.tokens.Balance(itemCustody)
	if err != nil {
		return err
	}
	if err := p.tokens.Transfer(itemCustody, itemReturning, derived, held); err != nil {
		return fmt.Errorf("returning item to exhibitor: %w", err)
	}
	if err := p.tokens.Close(itemCustody, exhibitor.ID, derived); err != nil {
		return fmt.Errorf("closing item custody: %w", err)
	}
	return p.destroyRecord(recordID, exhibitor.ID)
}

// processClose is the Close transition: the atomic settlement that swaps the
// item and the winning funds between exhibitor and winner.
//
// Accounts: 0 winner (signer), 1 exhibitor, 2 item temp custody, 3 proceeds
// receiving, 4 winner temp custody, 5 winner item receiving, 6 record.
func (p *Processor) processClose(accounts []AccountMeta) error {
	if err := guardAccountCount(accounts, closeAccounts); err != nil {
		return err
	}
	winner := accounts[0]
	exhibitor := accounts[1].ID
	itemCustody := accounts[2].ID
	proceedsAccount := accounts[3].ID
	winnerCustody := accounts[4].ID
	itemReceiving := accounts[5].ID
	recordID := accounts[6].ID

	if err := guardSigner(winner); err != nil {
		return err
	}

	record, err := p.Record(recordID)
	if err != nil {
		return err
	}
	if err := guardInitialized(record); err != nil {
		return err
	}
	if err := guardAfterEnd(record, p.clock.Now().Unix()); err != nil {
		return err
	}
	if !record.HasBidder() {
		return ErrNoBidder
	}
	if err := guardSameIdentity(exhibitor, record.Exhibitor); err != nil {
		return err
	}
	if err := guardSameIdentity(itemCustody, record.ItemCustody); err != nil {
		return err
	}
	if err := guardSameIdentity(proceedsAccount, record.ProceedsAccount); err != nil {
		return err
	}
	if err := guardSameIdentity(winnerCustody, record.BidderCustody); err != nil {
		return err
	}
	if err := guardSameIdentity(winner.ID, record.Bidder); err != nil {
		return err
	}

	derivedAuthority, err := crypto.MintAuthorityProof(p.programID, authoritySeeds(recordID)...)
	if err != nil {
		return err
	}
	derived := token.DerivedAuthority(derivedAuthority)

	// Amounts are read from the live custody accounts rather than re-derived
	// arithmetically; the custody balances are the ground truth at settlement.
	itemHeld, err := p.tokens.Balance(itemCustody)
	if err != nil {
		return err
	}
	if err := p.tokens.Transfer(itemCustody, itemReceiving, derived, itemHeld); err != nil {
		return fmt.Errorf("transferring item to winner: %w", err)
	}

	fundsHeld, err := p.tokens.Balance(winnerCustody)
	if err != nil {
		return err
	}
	if err := p.tokens.Transfer(winnerCustody, proceedsAccount, derived, fundsHeld); err != nil {
		return fmt.Errorf("transferring proceeds to exhibitor: %w", err)
	}

	if err := p.tokens.Close(winnerCustody, winner.ID, derived); err != nil {
		return fmt.Errorf("closing winner custody: %w", err)
	}
	if err := p.tokens.Close(itemCustody, exhibitor, derived); err != nil {
		return fmt.Errorf("closing item custody: %w", err)
	}
	return p.destroyRecord(recordID, exhibitor)
}

// destroyRecord reclaims the record account's storage balance to dest and
// removes the record from the ledger. Termination is irreversible.
func (p *Processor) destroyRecord(recordID, dest crypto.Identity) error {
	if err := p.host.CloseAccount(recordID, dest); err != nil {
		if err == ledger.ErrBalanceOverflow {
			return ErrAmountOverflow
		}
		return err
	}
	return nil
}
