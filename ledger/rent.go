package ledger

// Rent is the storage liveness oracle consulted when an auction record is
// created. An account that is not persistently funded could be reclaimed by
// the host partway through the auction, so record creation refuses it.
type Rent interface {
	// IsPersistentlyFunded reports whether an account with the given balance
	// and data size is funded for the lifetime of the ledger.
	IsPersistentlyFunded(balance uint64, dataLen int) bool
}

// StandardRent charges a flat reserve plus a per-byte price for permanence.
type StandardRent struct {
	// BaseReserve is the minimum balance for any persistent account.
	BaseReserve uint64

	// PricePerByte is the additional balance required per data byte.
	PricePerByte uint64
}

// DefaultRent mirrors typical mainnet parameters closely enough for tests
// and local deployments.
func DefaultRent() StandardRent {
	return StandardRent{BaseReserve: 890_880, PricePerByte: 6_960}
}

// IsPersistentlyFunded reports whether the balance covers the reserve. A
// required amount that overflows uint64 is unsatisfiable by any balance.
func (r StandardRent) IsPersistentlyFunded(balance uint64, dataLen int) bool {
	byteCost := r.PricePerByte * uint64(dataLen)
	if r.PricePerByte != 0 && byteCost/r.PricePerByte != uint64(dataLen) {
		return false
	}
	required := r.BaseReserve + byteCost
	if required < r.BaseReserve {
		return false
	}
	return balance >= required
}
