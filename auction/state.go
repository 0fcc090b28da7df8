package auction

import (
	"encoding/binary"
	"errors"

	"github.com/solanadevsnest/auctionPal/crypto"
)

// RecordSize is the fixed width of a packed auction record. The layout is
// stable for a given deployment; there is no schema versioning.
const RecordSize = 1 + 4*crypto.IdentitySize + 8 + 3*crypto.IdentitySize + 8

// ErrRecordSize is returned when unpacking data of the wrong width.
var ErrRecordSize = errors.New("auction record has wrong size")

// Record is the persisted state of one auction, stored in the data region of
// a program-owned ledger account.
//
// Invariants held after every successful transition: Price never decreases;
// Bidder is either zero ("no bidder yet") or names the current leader; when a
// leader exists, BidderCustody holds exactly Price units of currency under the
// derived authority; ItemCustody is controlled by the derived authority from
// Create until the record is destroyed.
type Record struct {
	Initialized     bool
	Exhibitor       crypto.Identity
	ItemCustody     crypto.Identity
	ProceedsAccount crypto.Identity
	Price           uint64
	Bidder          crypto.Identity
	BidderCustody   crypto.Identity
	BidderRefund    crypto.Identity
	EndAt           int64
}

// HasBidder reports whether any bid has ever been placed.
func (r *Record) HasBidder() bool {
	return !r.Bidder.IsZero()
}

// Expired reports whether the auction's end instant has passed at the given
// unix timestamp.
func (r *Record) Expired(nowUnix int64) bool {
	return r.EndAt <= nowUnix
}

// Pack encodes the record into its fixed-width binary layout.
func (r *Record) Pack() [RecordSize]byte {
	var buf [RecordSize]byte
	if r.Initialized {
		buf[0] = 1
	}
	off := 1
	off += copy(buf[off:], r.Exhibitor[:])
	off += copy(buf[off:], r.ItemCustody[:])
	off += copy(buf[off:], r.ProceedsAccount[:])
	binary.BigEndian.PutUint64(buf[off:], r.Price)
	off += 8
	off += copy(buf[off:], r.Bidder[:])
	off += copy(buf[off:], r.BidderCustody[:])
	off += copy(buf[off:], r.BidderRefund[:])
	binary.BigEndian.PutUint64(buf[off:], uint64(r.EndAt))
	return buf
}

// UnpackRecord decodes a record from its fixed-width binary layout. An
// all-zero slot decodes to an uninitialized record; callers gate on the
// Initialized flag.
func UnpackRecord(data []byte) (*Record, error) {
	if len(data) != RecordSize {
		return nil, ErrRecordSize
	}
	var r Record
	r.Initialized = data[0] == 1
	off := 1
	off += copy(r.Exhibitor[:], data[off:])
	off += copy(r.ItemCustody[:], data[off:])
	off += copy(r.ProceedsAccount[:], data[off:])
	r.Price = binary.BigEndian.Uint64(data[off:])
	off += 8
	off += copy(r.Bidder[:], data[off:])
	off += copy(r.BidderCustody[:], data[off:])
	off += copy(r.BidderRefund[:], data[off:])
	r.EndAt = int64(binary.BigEndian.Uint64(data[off:]))
	return &r, nil
}
