package auction

import (
	"errors"

	"github.com/solanadevsnest/auctionPal/ledger"
	"github.com/solanadevsnest/auctionPal/token"
)

var (
	// ErrMissingSignature is returned when the acting party did not sign.
	ErrMissingSignature = errors.New("missing required signature")

	// ErrIdentityMismatch is returned when a supplied account reference does
	// not match the identity stored in the record.
	ErrIdentityMismatch = errors.New("account does not match record")

	// ErrAccountList is returned when an operation is invoked with the wrong
	// number of account references.
	ErrAccountList = errors.New("wrong number of account references")

	// ErrAlreadyInitialized is returned when creating over a live record.
	ErrAlreadyInitialized = errors.New("auction record already initialized")

	// ErrNotInitialized is returned when operating on a non-existent auction.
	ErrNotInitialized = errors.New("auction record not initialized")

	// ErrNoBidder is returned when settling an auction nobody ever bid on.
	ErrNoBidder = errors.New("auction has no designated winner")

	// ErrAuctionExpired is returned when bidding after the end instant.
	ErrAuctionExpired = errors.New("auction has expired")

	// ErrAuctionActive is returned when settling before the end instant.
	ErrAuctionActive = errors.New("auction is still active")

	// ErrBidTooLow is returned when a bid is not strictly above the price.
	ErrBidTooLow = errors.New("bid not above current price")

	// ErrAlreadyLeading is returned when the current leader re-bids.
	ErrAlreadyLeading = errors.New("bidder already holds the highest bid")

	// ErrAuctionHasBid is returned when cancelling after a bid was placed.
	ErrAuctionHasBid = errors.New("auction already has a bid")

	// ErrNotPersistentlyFunded is returned when the record's storage account
	// does not satisfy the liveness requirement.
	ErrNotPersistentlyFunded = errors.New("record account not persistently funded")

	// ErrAmountOverflow is returned when combining balances would overflow.
	ErrAmountOverflow = errors.New("amount overflow")
)

// Category classifies a transition failure per the protocol's error taxonomy.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryAuthorization
	CategoryState
	CategoryTemporal
	CategoryEconomic
	CategoryResource
	CategoryCustody
	CategoryArithmetic
)

// String returns the taxonomy name of the category.
func (c Category) String() string {
	switch c {
	case CategoryAuthorization:
		return "authorization"
	case CategoryState:
		return "state"
	case CategoryTemporal:
		return "temporal"
	case CategoryEconomic:
		return "economic"
	case CategoryResource:
		return "resource"
	case CategoryCustody:
		return "custody"
	case CategoryArithmetic:
		return "arithmetic"
	default:
		return "unknown"
	}
}

// Classify maps a transition error onto its taxonomy category. Failures from
// the custody service and the ledger host classify as custody failures, except
// balance overflow which is arithmetic.
func Classify(err error) Category {
	switch {
	case err == nil:
		return CategoryUnknown
	case errors.Is(err, ErrMissingSignature), errors.Is(err, ErrIdentityMismatch):
		return CategoryAuthorization
	case errors.Is(err, ErrAlreadyInitialized), errors.Is(err, ErrNotInitialized),
		errors.Is(err, ErrNoBidder), errors.Is(err, ErrAccountList),
		errors.Is(err, ErrRecordSize), errors.Is(err, ErrTruncatedInstruction),
		errors.Is(err, ErrUnknownInstruction):
		return CategoryState
	case errors.Is(err, ErrAuctionExpired), errors.Is(err, ErrAuctionActive):
		return CategoryTemporal
	case errors.Is(err, ErrBidTooLow), errors.Is(err, ErrAlreadyLeading),
		errors.Is(err, ErrAuctionHasBid):
		return CategoryEconomic
	case errors.Is(err, ErrNotPersistentlyFunded):
		return CategoryResource
	case errors.Is(err, ErrAmountOverflow), errors.Is(err, ledger.ErrBalanceOverflow),
		errors.Is(err, token.ErrAmountOverflow):
		return CategoryArithmetic
	case errors.Is(err, token.ErrUnauthorized), errors.Is(err, token.ErrNoAccount),
		errors.Is(err, token.ErrAssetMismatch), errors.Is(err, token.ErrInsufficientFunds),
		errors.Is(err, token.ErrAccountNotEmpty), errors.Is(err, token.ErrAccountExists),
		errors.Is(err, ledger.ErrNoAccount), errors.Is(err, ledger.ErrAccountExists),
		errors.Is(err, ledger.ErrInsufficientBalance):
		return CategoryCustody
	default:
		return CategoryUnknown
	}
}
