package auction

import "github.com/solanadevsnest/auctionPal/crypto"

// Guard predicates shared by the four transitions. Evaluation is pure: a guard
// inspects its inputs and resolves to allow (nil) or deny (a taxonomy error),
// touching no state.

func guardSigner(meta AccountMeta) error {
	if !meta.IsSigner {
		return ErrMissingSignature
	}
	return nil
}

func guardSameIdentity(got, want crypto.Identity) error {
	if got != want {
		return ErrIdentityMismatch
	}
	return nil
}

func guardUninitialized(r *Record) error {
	if r.Initialized {
		return ErrAlreadyInitialized
	}
	return nil
}

func guardInitialized(r *Record) error {
	if !r.Initialized {
		return ErrNotInitialized
	}
	return nil
}

// guardBeforeEnd admits bids strictly before the end instant.
func guardBeforeEnd(r *Record, nowUnix int64) error {
	if r.Expired(nowUnix) {
		return ErrAuctionExpired
	}
	return nil
}

// guardAfterEnd admits settlement once the end instant has passed.
func guardAfterEnd(r *Record, nowUnix int64) error {
	if !r.Expired(nowUnix) {
		return ErrAuctionActive
	}
	return nil
}

func guardAccountCount(accounts []AccountMeta, want int) error {
	if len(accounts) != want {
		return ErrAccountList
	}
	return nil
}
