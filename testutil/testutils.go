package testutil

import (
	"crypto/rand"
	"time"

	"github.com/solanadevsnest/auctionPal/auction"
	"github.com/solanadevsnest/auctionPal/crypto"
	"github.com/solanadevsnest/auctionPal/ledger"
	"github.com/solanadevsnest/auctionPal/token"
)

// Participant is a test actor holding a signing key.
type Participant struct {
	ID  crypto.Identity
	Key crypto.PrivateKey
}

// NewParticipant generates a test actor with a fresh key pair.
func NewParticipant() (*Participant, error) {
	id, key, err := crypto.GenerateKeyPair()
	if err != nil {
		return nil, err
	}
	return &Participant{ID: id, Key: key}, nil
}

// RandomIdentity generates a random identity for accounts that never sign.
func RandomIdentity() (crypto.Identity, error) {
	var buf [crypto.IdentitySize]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return crypto.Identity{}, err
	}
	return crypto.NewIdentityFromBytes(buf[:])
}

// Fixture wires a processor against in-memory collaborators.
type Fixture struct {
	ProgramID crypto.Identity
	Host      *ledger.Host
	Tokens    *token.MemoryService
	Clock     *ledger.ManualClock
	Rent      ledger.StandardRent
	Processor *auction.Processor
}

type fixtureConfig struct {
	now  time.Time
	rent ledger.StandardRent
}

// Option customizes a test fixture.
type Option func(*fixtureConfig)

// WithNow sets the fixture clock's starting instant.
func WithNow(now time.Time) Option {
	return func(c *fixtureConfig) {
		c.now = now
	}
}

// WithRent overrides the fixture's rent parameters.
func WithRent(rent ledger.StandardRent) Option {
	return func(c *fixtureConfig) {
		c.rent = rent
	}
}

// NewFixture creates a processor with an in-memory host, custody service,
// manual clock and standard rent.
func NewFixture(opts ...Option) (*Fixture, error) {
	cfg := &fixtureConfig{
		now:  time.Unix(1_700_000_000, 0),
		rent: ledger.DefaultRent(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	programID, err := RandomIdentity()
	if err != nil {
		return nil, err
	}

	host := ledger.NewHost()
	tokens := token.NewMemoryService(programID, host)
	clock := ledger.NewManualClock(cfg.now)

	processor, err := auction.NewProcessor(programID, host, tokens, clock, cfg.rent)
	if err != nil {
		return nil, err
	}

	return &Fixture{
		ProgramID: programID,
		Host:      host,
		Tokens:    tokens,
		Clock:     clock,
		Rent:      cfg.rent,
		Processor: processor,
	}, nil
}

// RecordRent returns the balance a record account needs to be persistently
// funded under the fixture's rent parameters.
func (f *Fixture) RecordRent() uint64 {
	return f.Rent.BaseReserve + f.Rent.PricePerByte*uint64(auction.RecordSize)
}

// CreateRecordAccount allocates a record-sized storage account with the given
// balance, plus ledger accounts for any parties that receive reclaimed
// storage balances.
func (f *Fixture) CreateRecordAccount(id crypto.Identity, balance uint64) error {
	return f.Host.CreateAccount(id, f.ProgramID, balance, auction.RecordSize)
}

// CreateLedgerAccount allocates a plain balance-carrying account.
func (f *Fixture) CreateLedgerAccount(id crypto.Identity, balance uint64) error {
	return f.Host.CreateAccount(id, crypto.Identity{}, balance, 0)
}

// CreateCustody allocates a custody account under the given authority and
// deposits amount units of the asset into it.
func (f *Fixture) CreateCustody(account, asset, authority crypto.Identity, amount, deposit uint64) error {
	if err := f.Tokens.CreateAccount(account, asset, authority, deposit); err != nil {
		return err
	}
	if amount == 0 {
		return nil
	}
	return f.Tokens.Deposit(account, amount)
}
