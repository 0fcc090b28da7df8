package auction_test

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solanadevsnest/auctionPal/auction"
	"github.com/solanadevsnest/auctionPal/crypto"
	"github.com/solanadevsnest/auctionPal/testutil"
)

const custodyDeposit = 2_039_280

// scenario wires one auction with an exhibitor and two bidders against the
// in-memory collaborators.
type scenario struct {
	t *testing.T
	f *testutil.Fixture

	exhibitor *testutil.Participant
	bidderA   *testutil.Participant
	bidderB   *testutil.Participant

	itemAsset     crypto.Identity
	currencyAsset crypto.Identity

	record      crypto.Identity
	itemSource  crypto.Identity
	itemCustody crypto.Identity
	proceeds    crypto.Identity

	aSource  crypto.Identity
	aCustody crypto.Identity

	bSource   crypto.Identity
	bCustody  crypto.Identity
	bItemRecv crypto.Identity
}

type scenarioConfig struct {
	withExhibitorLedger bool
	withBidderALedger   bool
}

func newScenario(t *testing.T) *scenario {
	return buildScenario(t, scenarioConfig{withExhibitorLedger: true, withBidderALedger: true})
}

func buildScenario(t *testing.T, cfg scenarioConfig) *scenario {
	t.Helper()

	f, err := testutil.NewFixture()
	require.NoError(t, err)

	s := &scenario{t: t, f: f}

	s.exhibitor, err = testutil.NewParticipant()
	require.NoError(t, err)
	s.bidderA, err = testutil.NewParticipant()
	require.NoError(t, err)
	s.bidderB, err = testutil.NewParticipant()
	require.NoError(t, err)

	for _, id := range []*crypto.Identity{
		&s.itemAsset, &s.currencyAsset, &s.record, &s.itemSource, &s.itemCustody,
		&s.proceeds, &s.aSource, &s.aCustody, &s.bSource, &s.bCustody, &s.bItemRecv,
	} {
		*id, err = testutil.RandomIdentity()
		require.NoError(t, err)
	}

	if cfg.withExhibitorLedger {
		require.NoError(t, f.CreateLedgerAccount(s.exhibitor.ID, 0))
	}
	if cfg.withBidderALedger {
		require.NoError(t, f.CreateLedgerAccount(s.bidderA.ID, 0))
	}
	require.NoError(t, f.CreateLedgerAccount(s.bidderB.ID, 0))

	require.NoError(t, f.CreateRecordAccount(s.record, f.RecordRent()))

	require.NoError(t, f.CreateCustody(s.itemSource, s.itemAsset, s.exhibitor.ID, 1, custodyDeposit))
	require.NoError(t, f.CreateCustody(s.itemCustody, s.itemAsset, s.exhibitor.ID, 0, custodyDeposit))
	require.NoError(t, f.CreateCustody(s.proceeds, s.currencyAsset, s.exhibitor.ID, 0, custodyDeposit))

	require.NoError(t, f.CreateCustody(s.aSource, s.currencyAsset, s.bidderA.ID, 1000, custodyDeposit))
	require.NoError(t, f.CreateCustody(s.aCustody, s.currencyAsset, s.bidderA.ID, 0, custodyDeposit))

	require.NoError(t, f.CreateCustody(s.bSource, s.currencyAsset, s.bidderB.ID, 1000, custodyDeposit))
	require.NoError(t, f.CreateCustody(s.bCustody, s.currencyAsset, s.bidderB.ID, 0, custodyDeposit))
	require.NoError(t, f.CreateCustody(s.bItemRecv, s.itemAsset, s.bidderB.ID, 0, custodyDeposit))

	return s
}

func (s *scenario) exhibit(initialPrice, durationSeconds uint64) error {
	return s.f.Processor.Process(auction.EncodeExhibit(initialPrice, durationSeconds), []auction.AccountMeta{
		{ID: s.exhibitor.ID, IsSigner: true},
		{ID: s.itemSource},
		{ID: s.itemCustody},
		{ID: s.proceeds},
		{ID: s.record},
	})
}

// bid places a bid reading the current leader references from the record.
func (s *scenario) bid(bidder *testutil.Participant, source, custody crypto.Identity, amount uint64) error {
	record, err := s.f.Processor.Record(s.record)
	require.NoError(s.t, err)

	return s.f.Processor.Process(auction.EncodeBid(amount), []auction.AccountMeta{
		{ID: bidder.ID, IsSigner: true},
		{ID: record.Bidder},
		{ID: record.BidderCustody},
		{ID: record.BidderRefund},
		{ID: custody},
		{ID: source},
		{ID: s.record},
	})
}

func (s *scenario) cancel(caller *testutil.Participant) error {
	return s.f.Processor.Process(auction.EncodeCancel(), []auction.AccountMeta{
		{ID: caller.ID, IsSigner: true},
		{ID: s.itemCustody},
		{ID: s.itemSource},
		{ID: s.record},
	})
}

func (s *scenario) close(caller *testutil.Participant, winnerCustody crypto.Identity) error {
	return s.f.Processor.Process(auction.EncodeClose(), []auction.AccountMeta{
		{ID: caller.ID, IsSigner: true},
		{ID: s.exhibitor.ID},
		{ID: s.itemCustody},
		{ID: s.proceeds},
		{ID: winnerCustody},
		{ID: s.bItemRecv},
		{ID: s.record},
	})
}

func (s *scenario) custodyBalance(account crypto.Identity) uint64 {
	balance, err := s.f.Tokens.Balance(account)
	require.NoError(s.t, err)
	return balance
}

func (s *scenario) ledgerBalance(account crypto.Identity) uint64 {
	balance, err := s.f.Host.Balance(account)
	require.NoError(s.t, err)
	return balance
}

func (s *scenario) recordState() *auction.Record {
	record, err := s.f.Processor.Record(s.record)
	require.NoError(s.t, err)
	return record
}

func TestExhibit_Succeeds(t *testing.T) {
	s := newScenario(t)
	require.NoError(t, s.exhibit(100, 60))

	record := s.recordState()
	assert.True(t, record.Initialized)
	assert.Equal(t, s.exhibitor.ID, record.Exhibitor)
	assert.Equal(t, s.itemCustody, record.ItemCustody)
	assert.Equal(t, s.proceeds, record.ProceedsAccount)
	assert.Equal(t, uint64(100), record.Price)
	assert.False(t, record.HasBidder())
	assert.Equal(t, s.f.Clock.Now().Unix()+60, record.EndAt)

	// The item sits in custody under the derived authority.
	assert.Equal(t, uint64(1), s.custodyBalance(s.itemCustody))
	assert.Equal(t, uint64(0), s.custodyBalance(s.itemSource))

	authority, err := s.f.Tokens.Authority(s.itemCustody)
	require.NoError(t, err)
	derived, _, err := crypto.DeriveAuthority(s.f.ProgramID, []byte("escrow"), s.record.Bytes())
	require.NoError(t, err)
	assert.Equal(t, derived, authority)
}

func TestExhibit_RequiresSignature(t *testing.T) {
	s := newScenario(t)

	err := s.f.Processor.Process(auction.EncodeExhibit(100, 60), []auction.AccountMeta{
		{ID: s.exhibitor.ID}, // not a signer
		{ID: s.itemSource},
		{ID: s.itemCustody},
		{ID: s.proceeds},
		{ID: s.record},
	})
	assert.ErrorIs(t, err, auction.ErrMissingSignature)
	assert.Equal(t, auction.CategoryAuthorization, auction.Classify(err))
	assert.Equal(t, uint64(1), s.custodyBalance(s.itemSource))
}

func TestExhibit_RequiresPersistentFunding(t *testing.T) {
	s := newScenario(t)

	underfunded, err := testutil.RandomIdentity()
	require.NoError(t, err)
	require.NoError(t, s.f.CreateRecordAccount(underfunded, s.f.RecordRent()-1))

	err = s.f.Processor.Process(auction.EncodeExhibit(100, 60), []auction.AccountMeta{
		{ID: s.exhibitor.ID, IsSigner: true},
		{ID: s.itemSource},
		{ID: s.itemCustody},
		{ID: s.proceeds},
		{ID: underfunded},
	})
	assert.ErrorIs(t, err, auction.ErrNotPersistentlyFunded)
	assert.Equal(t, auction.CategoryResource, auction.Classify(err))
}

func TestExhibit_RejectsReinitialization(t *testing.T) {
	s := newScenario(t)
	require.NoError(t, s.exhibit(100, 60))

	err := s.exhibit(500, 60)
	assert.ErrorIs(t, err, auction.ErrAlreadyInitialized)

	// The live record is untouched.
	assert.Equal(t, uint64(100), s.recordState().Price)
}

func TestBid_FirstBid(t *testing.T) {
	s := newScenario(t)
	require.NoError(t, s.exhibit(100, 60))
	require.NoError(t, s.bid(s.bidderA, s.aSource, s.aCustody, 150))

	record := s.recordState()
	assert.Equal(t, uint64(150), record.Price)
	assert.Equal(t, s.bidderA.ID, record.Bidder)
	assert.Equal(t, s.aCustody, record.BidderCustody)
	assert.Equal(t, s.aSource, record.BidderRefund)

	assert.Equal(t, uint64(850), s.custodyBalance(s.aSource))
	assert.Equal(t, uint64(150), s.custodyBalance(s.aCustody))

	authority, err := s.f.Tokens.Authority(s.aCustody)
	require.NoError(t, err)
	derived, _, err := crypto.DeriveAuthority(s.f.ProgramID, []byte("escrow"), s.record.Bytes())
	require.NoError(t, err)
	assert.Equal(t, derived, authority)
}

func TestBid_OutbidRefundsPreviousLeader(t *testing.T) {
	s := newScenario(t)
	require.NoError(t, s.exhibit(100, 60))
	require.NoError(t, s.bid(s.bidderA, s.aSource, s.aCustody, 150))
	require.NoError(t, s.bid(s.bidderB, s.bSource, s.bCustody, 200))

	record := s.recordState()
	assert.Equal(t, uint64(200), record.Price)
	assert.Equal(t, s.bidderB.ID, record.Bidder)
	assert.Equal(t, s.bCustody, record.BidderCustody)

	// A got the full previous price back and their emptied custody account
	// no longer exists; its storage deposit was reclaimed to A.
	assert.Equal(t, uint64(1000), s.custodyBalance(s.aSource))
	assert.False(t, s.f.Tokens.Exists(s.aCustody))
	assert.Equal(t, uint64(custodyDeposit), s.ledgerBalance(s.bidderA.ID))

	assert.Equal(t, uint64(800), s.custodyBalance(s.bSource))
	assert.Equal(t, uint64(200), s.custodyBalance(s.bCustody))
}

func TestBid_PriceStrictlyIncreasing(t *testing.T) {
	s := newScenario(t)
	require.NoError(t, s.exhibit(100, 600))

	require.NoError(t, s.bid(s.bidderA, s.aSource, s.aCustody, 150))
	assert.Equal(t, uint64(150), s.recordState().Price)

	require.NoError(t, s.bid(s.bidderB, s.bSource, s.bCustody, 200))
	assert.Equal(t, uint64(200), s.recordState().Price)

	// A re-enters with a fresh temporary custody account; the old one was
	// closed when A was outbid.
	aCustody2, err := testutil.RandomIdentity()
	require.NoError(t, err)
	require.NoError(t, s.f.CreateCustody(aCustody2, s.currencyAsset, s.bidderA.ID, 0, custodyDeposit))

	require.NoError(t, s.bid(s.bidderA, s.aSource, aCustody2, 250))
	assert.Equal(t, uint64(250), s.recordState().Price)

	// An equal bid is rejected.
	bCustody2, err := testutil.RandomIdentity()
	require.NoError(t, err)
	require.NoError(t, s.f.CreateCustody(bCustody2, s.currencyAsset, s.bidderB.ID, 0, custodyDeposit))
	assert.ErrorIs(t, s.bid(s.bidderB, s.bSource, bCustody2, 250), auction.ErrBidTooLow)
}

func TestBid_TooLow(t *testing.T) {
	s := newScenario(t)
	require.NoError(t, s.exhibit(100, 60))

	err := s.bid(s.bidderA, s.aSource, s.aCustody, 90)
	assert.ErrorIs(t, err, auction.ErrBidTooLow)
	assert.Equal(t, auction.CategoryEconomic, auction.Classify(err))

	// No state change.
	assert.Equal(t, uint64(1000), s.custodyBalance(s.aSource))
	assert.Equal(t, uint64(0), s.custodyBalance(s.aCustody))
	record := s.recordState()
	assert.Equal(t, uint64(100), record.Price)
	assert.False(t, record.HasBidder())
}

func TestBid_LeaderCannotRebid(t *testing.T) {
	s := newScenario(t)
	require.NoError(t, s.exhibit(100, 60))
	require.NoError(t, s.bid(s.bidderA, s.aSource, s.aCustody, 150))

	aCustody2, err := testutil.RandomIdentity()
	require.NoError(t, err)
	require.NoError(t, s.f.CreateCustody(aCustody2, s.currencyAsset, s.bidderA.ID, 0, custodyDeposit))

	assert.ErrorIs(t, s.bid(s.bidderA, s.aSource, aCustody2, 200), auction.ErrAlreadyLeading)
	assert.Equal(t, uint64(150), s.recordState().Price)
}

func TestBid_AfterExpiry(t *testing.T) {
	s := newScenario(t)
	require.NoError(t, s.exhibit(100, 60))
	s.f.Clock.Advance(61 * time.Second)

	err := s.bid(s.bidderA, s.aSource, s.aCustody, 150)
	assert.ErrorIs(t, err, auction.ErrAuctionExpired)
	assert.Equal(t, auction.CategoryTemporal, auction.Classify(err))
}

func TestBid_StaleLeaderReferences(t *testing.T) {
	s := newScenario(t)
	require.NoError(t, s.exhibit(100, 60))
	require.NoError(t, s.bid(s.bidderA, s.aSource, s.aCustody, 150))

	// B supplies its own accounts in place of the stored leader references,
	// trying to redirect A's refund.
	err := s.f.Processor.Process(auction.EncodeBid(200), []auction.AccountMeta{
		{ID: s.bidderB.ID, IsSigner: true},
		{ID: s.bidderA.ID},
		{ID: s.aCustody},
		{ID: s.bSource}, // stored refund account is aSource
		{ID: s.bCustody},
		{ID: s.bSource},
		{ID: s.record},
	})
	assert.ErrorIs(t, err, auction.ErrIdentityMismatch)
	assert.Equal(t, uint64(150), s.custodyBalance(s.aCustody))
}

func TestBid_UninitializedRecord(t *testing.T) {
	s := newScenario(t)
	err := s.bid(s.bidderA, s.aSource, s.aCustody, 150)
	assert.ErrorIs(t, err, auction.ErrNotInitialized)
}

func TestBid_RollbackOnRefundFailure(t *testing.T) {
	// Bidder A has no ledger account, so closing A's emptied custody account
	// during B's outbid cannot reclaim the deposit and the whole bid fails.
	s := buildScenario(t, scenarioConfig{withExhibitorLedger: true})
	require.NoError(t, s.exhibit(100, 60))
	require.NoError(t, s.bid(s.bidderA, s.aSource, s.aCustody, 150))

	err := s.bid(s.bidderB, s.bSource, s.bCustody, 200)
	require.Error(t, err)
	assert.Equal(t, auction.CategoryCustody, auction.Classify(err))

	// Every custody mutation B's bid issued before the failure is undone.
	assert.Equal(t, uint64(1000), s.custodyBalance(s.bSource))
	assert.Equal(t, uint64(0), s.custodyBalance(s.bCustody))
	authority, err := s.f.Tokens.Authority(s.bCustody)
	require.NoError(t, err)
	assert.Equal(t, s.bidderB.ID, authority)

	// A still leads with funds in escrow.
	record := s.recordState()
	assert.Equal(t, uint64(150), record.Price)
	assert.Equal(t, s.bidderA.ID, record.Bidder)
	assert.Equal(t, uint64(150), s.custodyBalance(s.aCustody))
}

func TestCancel_Succeeds(t *testing.T) {
	s := newScenario(t)
	require.NoError(t, s.exhibit(100, 60))
	require.NoError(t, s.cancel(s.exhibitor))

	// The item is back, both the custody account and the record are gone,
	// and their storage balances were reclaimed to the exhibitor.
	assert.Equal(t, uint64(1), s.custodyBalance(s.itemSource))
	assert.False(t, s.f.Tokens.Exists(s.itemCustody))
	assert.False(t, s.f.Host.Exists(s.record))
	assert.Equal(t, uint64(custodyDeposit)+s.f.RecordRent(), s.ledgerBalance(s.exhibitor.ID))
}

func TestCancel_AfterBidRejected(t *testing.T) {
	s := newScenario(t)
	require.NoError(t, s.exhibit(100, 60))
	require.NoError(t, s.bid(s.bidderA, s.aSource, s.aCustody, 150))

	err := s.cancel(s.exhibitor)
	assert.ErrorIs(t, err, auction.ErrAuctionHasBid)
	assert.Equal(t, auction.CategoryEconomic, auction.Classify(err))
	assert.True(t, s.recordState().Initialized)
	assert.Equal(t, uint64(1), s.custodyBalance(s.itemCustody))
}

func TestCancel_OnlyExhibitor(t *testing.T) {
	s := newScenario(t)
	require.NoError(t, s.exhibit(100, 60))

	err := s.cancel(s.bidderA)
	assert.ErrorIs(t, err, auction.ErrIdentityMismatch)
	assert.True(t, s.recordState().Initialized)
}

func TestClose_BeforeExpiry(t *testing.T) {
	s := newScenario(t)
	require.NoError(t, s.exhibit(100, 3600))
	require.NoError(t, s.bid(s.bidderB, s.bSource, s.bCustody, 150))

	err := s.close(s.bidderB, s.bCustody)
	assert.ErrorIs(t, err, auction.ErrAuctionActive)
	assert.Equal(t, auction.CategoryTemporal, auction.Classify(err))
}

func TestClose_NoBidder(t *testing.T) {
	s := newScenario(t)
	require.NoError(t, s.exhibit(100, 0))
	s.f.Clock.Advance(time.Second)

	// Nobody ever bid; settlement has no designated winner and must be
	// rejected rather than silently succeeding.
	err := s.close(s.bidderB, s.bCustody)
	assert.ErrorIs(t, err, auction.ErrNoBidder)
	assert.True(t, s.recordState().Initialized)
}

func TestClose_OnlyWinnerMayTrigger(t *testing.T) {
	s := newScenario(t)
	require.NoError(t, s.exhibit(100, 60))
	require.NoError(t, s.bid(s.bidderB, s.bSource, s.bCustody, 150))
	s.f.Clock.Advance(61 * time.Second)

	err := s.close(s.exhibitor, s.bCustody)
	assert.ErrorIs(t, err, auction.ErrIdentityMismatch)
	assert.True(t, s.recordState().Initialized)
}

func TestClose_Settles(t *testing.T) {
	s := newScenario(t)
	require.NoError(t, s.exhibit(100, 60))
	require.NoError(t, s.bid(s.bidderA, s.aSource, s.aCustody, 150))
	require.NoError(t, s.bid(s.bidderB, s.bSource, s.bCustody, 200))
	s.f.Clock.Advance(61 * time.Second)

	require.NoError(t, s.close(s.bidderB, s.bCustody))

	// Item to the winner, proceeds to the exhibitor.
	assert.Equal(t, uint64(1), s.custodyBalance(s.bItemRecv))
	assert.Equal(t, uint64(200), s.custodyBalance(s.proceeds))

	// Both temporary custody accounts and the record are gone, with storage
	// balances reclaimed to winner and exhibitor respectively.
	assert.False(t, s.f.Tokens.Exists(s.bCustody))
	assert.False(t, s.f.Tokens.Exists(s.itemCustody))
	assert.False(t, s.f.Host.Exists(s.record))
	assert.Equal(t, uint64(custodyDeposit), s.ledgerBalance(s.bidderB.ID))
	assert.Equal(t, uint64(custodyDeposit)+s.f.RecordRent(), s.ledgerBalance(s.exhibitor.ID))

	// A was made whole when outbid.
	assert.Equal(t, uint64(1000), s.custodyBalance(s.aSource))
}

func TestClose_RollbackOnFailure(t *testing.T) {
	// The exhibitor has no ledger account, so the final custody close cannot
	// reclaim the item custody deposit; everything moved earlier in the
	// transition must be restored.
	s := buildScenario(t, scenarioConfig{withBidderALedger: true})
	require.NoError(t, s.exhibit(100, 60))
	require.NoError(t, s.bid(s.bidderB, s.bSource, s.bCustody, 150))
	s.f.Clock.Advance(61 * time.Second)

	err := s.close(s.bidderB, s.bCustody)
	require.Error(t, err)
	assert.Equal(t, auction.CategoryCustody, auction.Classify(err))

	assert.Equal(t, uint64(0), s.custodyBalance(s.bItemRecv))
	assert.Equal(t, uint64(0), s.custodyBalance(s.proceeds))
	assert.Equal(t, uint64(1), s.custodyBalance(s.itemCustody))
	assert.Equal(t, uint64(150), s.custodyBalance(s.bCustody))
	assert.True(t, s.f.Host.Exists(s.record))
	assert.True(t, s.recordState().Initialized)
}

func TestClose_ImmediateAfterCreateFails(t *testing.T) {
	s := newScenario(t)
	require.NoError(t, s.exhibit(100, 3600))

	err := s.close(s.bidderB, s.bCustody)
	assert.ErrorIs(t, err, auction.ErrAuctionActive)
}

func TestProcess_ConcurrentBidsSerialized(t *testing.T) {
	// Two first bids race from a start barrier. Transitions must be admitted
	// one at a time: without serialization the loser's rollback restores a
	// whole-world snapshot and erases the winner's committed, success-reported
	// bid.
	for round := 0; round < 25; round++ {
		s := newScenario(t)
		require.NoError(t, s.exhibit(100, 60))

		firstBid := func(bidder *testutil.Participant, source, custody crypto.Identity) error {
			return s.f.Processor.Process(auction.EncodeBid(150), []auction.AccountMeta{
				{ID: bidder.ID, IsSigner: true},
				{ID: crypto.Identity{}},
				{ID: crypto.Identity{}},
				{ID: crypto.Identity{}},
				{ID: custody},
				{ID: source},
				{ID: s.record},
			})
		}

		var (
			wg         sync.WaitGroup
			errA, errB error
		)
		start := make(chan struct{})
		wg.Add(2)
		go func() {
			defer wg.Done()
			<-start
			errA = firstBid(s.bidderA, s.aSource, s.aCustody)
		}()
		go func() {
			defer wg.Done()
			<-start
			errB = firstBid(s.bidderB, s.bSource, s.bCustody)
		}()
		close(start)
		wg.Wait()

		// With equal amounts exactly one bid can win; the record must name
		// that winner with its funds in escrow, and the loser's source must
		// be untouched.
		require.NotEqual(t, errA == nil, errB == nil)
		record := s.recordState()
		require.Equal(t, uint64(150), record.Price)
		if errA == nil {
			assert.Equal(t, s.bidderA.ID, record.Bidder)
			assert.Equal(t, uint64(150), s.custodyBalance(s.aCustody))
			assert.Equal(t, uint64(1000), s.custodyBalance(s.bSource))
		} else {
			assert.Equal(t, s.bidderB.ID, record.Bidder)
			assert.Equal(t, uint64(150), s.custodyBalance(s.bCustody))
			assert.Equal(t, uint64(1000), s.custodyBalance(s.aSource))
		}
	}
}

func TestExhibit_DurationOverflowWithEarlyClock(t *testing.T) {
	// A clock before 1970 must not defeat the end-instant overflow guard.
	f, err := testutil.NewFixture(testutil.WithNow(time.Unix(-10, 0)))
	require.NoError(t, err)

	exhibitor, err := testutil.NewParticipant()
	require.NoError(t, err)
	record, err := testutil.RandomIdentity()
	require.NoError(t, err)
	require.NoError(t, f.CreateRecordAccount(record, f.RecordRent()))

	filler := func() crypto.Identity {
		id, err := testutil.RandomIdentity()
		require.NoError(t, err)
		return id
	}

	err = f.Processor.Process(auction.EncodeExhibit(100, uint64(math.MaxInt64)+5), []auction.AccountMeta{
		{ID: exhibitor.ID, IsSigner: true},
		{ID: filler()},
		{ID: filler()},
		{ID: filler()},
		{ID: record},
	})
	assert.ErrorIs(t, err, auction.ErrAmountOverflow)
}

func TestProcess_MalformedInstruction(t *testing.T) {
	s := newScenario(t)

	err := s.f.Processor.Process([]byte{0x9c}, nil)
	assert.ErrorIs(t, err, auction.ErrUnknownInstruction)

	err = s.f.Processor.Process(nil, nil)
	assert.ErrorIs(t, err, auction.ErrTruncatedInstruction)
}

func TestProcess_WrongAccountCount(t *testing.T) {
	s := newScenario(t)
	err := s.f.Processor.Process(auction.EncodeCancel(), []auction.AccountMeta{
		{ID: s.exhibitor.ID, IsSigner: true},
	})
	assert.ErrorIs(t, err, auction.ErrAccountList)
}
