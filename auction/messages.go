package auction

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/solanadevsnest/auctionPal/crypto"
)

// Signed wraps a transition request with an Ed25519 signature.
// The signature covers the serialized object plus the signer identity to
// prevent substitution of either.
type Signed[T any] struct {
	Signer    crypto.Identity  `json:"signer"`
	Signature crypto.Signature `json:"signature"`
	Object    *T               `json:"object"`
}

// NewSigned creates an authenticated request envelope.
func NewSigned[T any](privkey crypto.PrivateKey, obj *T) (*Signed[T], error) {
	signer, err := privkey.Identity()
	if err != nil {
		return nil, err
	}

	serializedData, err := SerializeMessage(obj)
	if err != nil {
		return nil, err
	}

	signature, err := crypto.Sign(privkey, append(serializedData, signer[:]...))
	if err != nil {
		return nil, err
	}

	return &Signed[T]{
		Signer:    signer,
		Signature: signature,
		Object:    obj,
	}, nil
}

// UnsafeObject returns the wrapped object without verifying the signature.
func (s *Signed[T]) UnsafeObject() *T {
	return s.Object
}

// Recover verifies the signature and returns the authenticated object with
// the signer's identity.
func (s *Signed[T]) Recover() (*T, crypto.Identity, error) {
	serializedData, err := SerializeMessage(s.Object)
	if err != nil {
		return nil, crypto.Identity{}, err
	}

	ok := s.Signature.Verify(s.Signer, append(serializedData, s.Signer[:]...))
	if !ok {
		return nil, crypto.Identity{}, errors.New("signature not valid")
	}

	return s.Object, s.Signer, nil
}

// SerializeMessage serializes a message to JSON.
func SerializeMessage[T any](obj *T) ([]byte, error) {
	return json.Marshal(obj)
}

// UnmarshalMessage deserializes a message from JSON.
func UnmarshalMessage[T any](data []byte) (*T, error) {
	var obj T
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return &obj, nil
}

// DecodeMessage deserializes a message from a JSON stream.
func DecodeMessage[T any](r io.Reader) (*T, error) {
	var obj T
	if err := json.NewDecoder(r).Decode(&obj); err != nil {
		return nil, err
	}
	return &obj, nil
}

// ExhibitRequest asks to create an auction: deposit the item into custody and
// open bidding at InitialPrice for DurationSeconds.
type ExhibitRequest struct {
	Exhibitor       crypto.Identity `json:"exhibitor"`
	ItemSource      crypto.Identity `json:"item_source"`
	ItemCustody     crypto.Identity `json:"item_custody"`
	ProceedsAccount crypto.Identity `json:"proceeds_account"`
	Record          crypto.Identity `json:"record"`
	InitialPrice    uint64          `json:"initial_price"`
	DurationSeconds uint64          `json:"duration_seconds"`
}

// Instruction returns the byte encoding of the request's transition intent.
func (r *ExhibitRequest) Instruction() []byte {
	return EncodeExhibit(r.InitialPrice, r.DurationSeconds)
}

// Accounts returns the ordered account reference list, marking the entries
// that match the recovered signer.
func (r *ExhibitRequest) Accounts(signer crypto.Identity) []AccountMeta {
	return markSigner(signer,
		r.Exhibitor, r.ItemSource, r.ItemCustody, r.ProceedsAccount, r.Record)
}

// BidRequest asks to raise the auction's price to Amount, naming the current
// leader's accounts for the refund path.
type BidRequest struct {
	Bidder        crypto.Identity `json:"bidder"`
	Leader        crypto.Identity `json:"leader"`
	LeaderCustody crypto.Identity `json:"leader_custody"`
	LeaderRefund  crypto.Identity `json:"leader_refund"`
	BidderCustody crypto.Identity `json:"bidder_custody"`
	BidderSource  crypto.Identity `json:"bidder_source"`
	Record        crypto.Identity `json:"record"`
	Amount        uint64          `json:"amount"`
}

// Instruction returns the byte encoding of the request's transition intent.
func (r *BidRequest) Instruction() []byte {
	return EncodeBid(r.Amount)
}

// Accounts returns the ordered account reference list, marking the entries
// that match the recovered signer.
func (r *BidRequest) Accounts(signer crypto.Identity) []AccountMeta {
	return markSigner(signer,
		r.Bidder, r.Leader, r.LeaderCustody, r.LeaderRefund,
		r.BidderCustody, r.BidderSource, r.Record)
}

// CancelRequest asks to return the item and destroy the record. Valid only
// while no bid has ever been placed.
type CancelRequest struct {
	Exhibitor     crypto.Identity `json:"exhibitor"`
	ItemCustody   crypto.Identity `json:"item_custody"`
	ItemReturning crypto.Identity `json:"item_returning"`
	Record        crypto.Identity `json:"record"`
}

// Instruction returns the byte encoding of the request's transition intent.
func (r *CancelRequest) Instruction() []byte {
	return EncodeCancel()
}

// Accounts returns the ordered account reference list, marking the entries
// that match the recovered signer.
func (r *CancelRequest) Accounts(signer crypto.Identity) []AccountMeta {
	return markSigner(signer,
		r.Exhibitor, r.ItemCustody, r.ItemReturning, r.Record)
}

// CloseRequest asks to settle an expired auction: item to the winner,
// winning funds to the exhibitor.
type CloseRequest struct {
	Winner          crypto.Identity `json:"winner"`
	Exhibitor       crypto.Identity `json:"exhibitor"`
	ItemCustody     crypto.Identity `json:"item_custody"`
	ProceedsAccount crypto.Identity `json:"proceeds_account"`
	WinnerCustody   crypto.Identity `json:"winner_custody"`
	ItemReceiving   crypto.Identity `json:"item_receiving"`
	Record          crypto.Identity `json:"record"`
}

// Instruction returns the byte encoding of the request's transition intent.
func (r *CloseRequest) Instruction() []byte {
	return EncodeClose()
}

// Accounts returns the ordered account reference list, marking the entries
// that match the recovered signer.
func (r *CloseRequest) Accounts(signer crypto.Identity) []AccountMeta {
	return markSigner(signer,
		r.Winner, r.Exhibitor, r.ItemCustody, r.ProceedsAccount,
		r.WinnerCustody, r.ItemReceiving, r.Record)
}

func markSigner(signer crypto.Identity, ids ...crypto.Identity) []AccountMeta {
	metas := make([]AccountMeta, len(ids))
	for i, id := range ids {
		metas[i] = AccountMeta{ID: id, IsSigner: id == signer}
	}
	return metas
}
