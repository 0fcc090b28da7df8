// Package auction implements the escrow-mediated open-ascending auction: the
// state machine validating the four transitions and the custody-transfer
// choreography that swaps the exhibited item and the winning funds.
//
// # Protocol
//
// An exhibitor deposits a non-fungible item into a custody account whose
// controlling authority is handed to a keyless derived authority; bidders
// escrow their bid in the same way. When the auction expires, Close swaps the
// item and the winning funds atomically; until the first bid, Cancel returns
// the item instead. The auction record lives in the data region of a
// program-owned ledger account and is destroyed by either terminal
// transition, reclaiming its storage balance to the exhibitor.
//
// States: NonExistent -> Open -> {Cancelled, Settled}.
//
// # Account reference lists
//
// Each operation takes an ordered list of account references; entries the
// record already names are validated against it, so stale or attacker-supplied
// accounts are rejected:
//
//	Exhibit: exhibitor (signer), item source, item temp custody,
//	         proceeds receiving, record
//	Bid:     bidder (signer), current leader, leader temp custody,
//	         leader refund, bidder temp custody, bidder funding source, record
//	Cancel:  exhibitor (signer), item temp custody, item returning, record
//	Close:   winner (signer), exhibitor, item temp custody,
//	         proceeds receiving, winner temp custody, item receiving, record
//
// Temporary custody accounts are created by the requesting party before the
// transition is invoked, as is the record's storage account; the transition
// takes over their authority and later closes them.
//
// # Failure semantics
//
// Guards run before any state is touched and custody-service failures are
// uniformly fatal. A transition that fails at any point restores a checkpoint
// taken at entry, so either every custody operation and record mutation
// commits, or none do.
package auction
