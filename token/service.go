package token

import (
	"errors"

	"github.com/solanadevsnest/auctionPal/crypto"
)

var (
	// ErrAccountExists is returned when creating a custody account that exists.
	ErrAccountExists = errors.New("custody account already exists")

	// ErrNoAccount is returned when the referenced custody account does not exist.
	ErrNoAccount = errors.New("custody account does not exist")

	// ErrAssetMismatch is returned when a transfer crosses asset classes.
	ErrAssetMismatch = errors.New("custody accounts hold different assets")

	// ErrInsufficientFunds is returned when a transfer exceeds the held amount.
	ErrInsufficientFunds = errors.New("insufficient custody funds")

	// ErrUnauthorized is returned when the presented authority does not
	// control the account, the signature is missing, or a derived-authority
	// proof fails re-derivation.
	ErrUnauthorized = errors.New("custody authority check failed")

	// ErrAccountNotEmpty is returned when closing an account still holding funds.
	ErrAccountNotEmpty = errors.New("custody account still holds funds")

	// ErrAmountOverflow is returned when a deposit or transfer would overflow
	// the destination's held amount.
	ErrAmountOverflow = errors.New("custody amount overflow")
)

// Authority identifies who authorizes a custody operation. Exactly one of the
// two forms is used: a participant who signed the enclosing request, or the
// protocol's derived authority backed by a proof of honest derivation.
type Authority struct {
	id     crypto.Identity
	signed bool
	proof  *crypto.AuthorityProof
}

// SignerAuthority authorizes as a participant. The signed flag carries the
// host's verdict on whether the participant signed the enclosing request;
// the custody service rejects unsigned authorities.
func SignerAuthority(id crypto.Identity, signed bool) Authority {
	return Authority{id: id, signed: signed}
}

// DerivedAuthority authorizes as the protocol's keyless authority.
func DerivedAuthority(proof *crypto.AuthorityProof) Authority {
	return Authority{id: proof.Authority(), proof: proof}
}

// Identity returns the identity this authority claims to act as.
func (a Authority) Identity() crypto.Identity {
	return a.id
}

// Service moves fixed quantities of an asset between custody accounts and
// changes account-controlling authorities. Every operation either fully
// applies or fully fails.
type Service interface {
	// CreateAccount allocates a custody account for one asset under the given
	// authority, with a native deposit reclaimed when the account is closed.
	CreateAccount(account, asset, authority crypto.Identity, deposit uint64) error

	// Transfer moves amount units from source to dest. Both accounts must hold
	// the same asset and the authority must control source.
	Transfer(source, dest crypto.Identity, auth Authority, amount uint64) error

	// SetAuthority hands control of the account to newAuthority.
	SetAuthority(account crypto.Identity, newAuthority crypto.Identity, auth Authority) error

	// Close removes an emptied custody account and reclaims its native
	// deposit to dest.
	Close(account, dest crypto.Identity, auth Authority) error

	// Balance returns the amount of the asset currently held in custody.
	Balance(account crypto.Identity) (uint64, error)

	// Authority returns the identity currently controlling the account.
	Authority(account crypto.Identity) (crypto.Identity, error)

	// Checkpoint snapshots custody state and returns a restore function, so a
	// failed transition can discard every custody mutation it issued.
	Checkpoint() (restore func())
}
