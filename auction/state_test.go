package auction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solanadevsnest/auctionPal/crypto"
)

func testIdentity(fill byte) crypto.Identity {
	var id crypto.Identity
	for i := range id {
		id[i] = fill
	}
	return id
}

func TestRecord_PackUnpack(t *testing.T) {
	record := &Record{
		Initialized:     true,
		Exhibitor:       testIdentity(1),
		ItemCustody:     testIdentity(2),
		ProceedsAccount: testIdentity(3),
		Price:           150,
		Bidder:          testIdentity(4),
		BidderCustody:   testIdentity(5),
		BidderRefund:    testIdentity(6),
		EndAt:           1_700_000_060,
	}

	packed := record.Pack()
	decoded, err := UnpackRecord(packed[:])
	require.NoError(t, err)
	assert.Equal(t, record, decoded)
}

func TestRecord_ZeroSlotIsUninitialized(t *testing.T) {
	decoded, err := UnpackRecord(make([]byte, RecordSize))
	require.NoError(t, err)
	assert.False(t, decoded.Initialized)
	assert.False(t, decoded.HasBidder())
	assert.Zero(t, decoded.Price)
}

func TestUnpackRecord_WrongSize(t *testing.T) {
	_, err := UnpackRecord(make([]byte, RecordSize-1))
	assert.ErrorIs(t, err, ErrRecordSize)

	_, err = UnpackRecord(make([]byte, RecordSize+1))
	assert.ErrorIs(t, err, ErrRecordSize)
}

func TestRecord_Expired(t *testing.T) {
	record := &Record{EndAt: 100}
	assert.False(t, record.Expired(99))
	assert.True(t, record.Expired(100))
	assert.True(t, record.Expired(101))
}
