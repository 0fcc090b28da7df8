package auction

import (
	"encoding/binary"
	"errors"
)

// Kind discriminates the four transition intents on the wire.
type Kind uint8

const (
	KindExhibit Kind = iota
	KindBid
	KindCancel
	KindClose
)

// String returns the transition name.
func (k Kind) String() string {
	switch k {
	case KindExhibit:
		return "exhibit"
	case KindBid:
		return "bid"
	case KindCancel:
		return "cancel"
	case KindClose:
		return "close"
	default:
		return "invalid"
	}
}

var (
	// ErrTruncatedInstruction is returned when operand bytes are missing.
	ErrTruncatedInstruction = errors.New("truncated instruction")

	// ErrUnknownInstruction is returned for an unrecognized tag byte.
	ErrUnknownInstruction = errors.New("unknown instruction tag")
)

// Instruction is a decoded transition intent. Operand fields are meaningful
// only for the kinds that carry them.
type Instruction struct {
	Kind         Kind
	InitialPrice uint64 // Exhibit
	Duration     uint64 // Exhibit, in seconds
	Amount       uint64 // Bid
}

// DecodeInstruction parses a transition intent from its byte encoding: a tag
// byte followed by fixed-width big-endian operands.
func DecodeInstruction(data []byte) (*Instruction, error) {
	if len(data) == 0 {
		return nil, ErrTruncatedInstruction
	}
	tag, rest := data[0], data[1:]
	switch Kind(tag) {
	case KindExhibit:
		if len(rest) != 16 {
			return nil, ErrTruncatedInstruction
		}
		return &Instruction{
			Kind:         KindExhibit,
			InitialPrice: binary.BigEndian.Uint64(rest[0:8]),
			Duration:     binary.BigEndian.Uint64(rest[8:16]),
		}, nil
	case KindBid:
		if len(rest) != 8 {
			return nil, ErrTruncatedInstruction
		}
		return &Instruction{
			Kind:   KindBid,
			Amount: binary.BigEndian.Uint64(rest[0:8]),
		}, nil
	case KindCancel:
		if len(rest) != 0 {
			return nil, ErrTruncatedInstruction
		}
		return &Instruction{Kind: KindCancel}, nil
	case KindClose:
		if len(rest) != 0 {
			return nil, ErrTruncatedInstruction
		}
		return &Instruction{Kind: KindClose}, nil
	default:
		return nil, ErrUnknownInstruction
	}
}

// EncodeExhibit encodes a Create intent.
func EncodeExhibit(initialPrice, durationSeconds uint64) []byte {
	buf := make([]byte, 17)
	buf[0] = byte(KindExhibit)
	binary.BigEndian.PutUint64(buf[1:9], initialPrice)
	binary.BigEndian.PutUint64(buf[9:17], durationSeconds)
	return buf
}

// EncodeBid encodes a Bid intent.
func EncodeBid(amount uint64) []byte {
	buf := make([]byte, 9)
	buf[0] = byte(KindBid)
	binary.BigEndian.PutUint64(buf[1:9], amount)
	return buf
}

// EncodeCancel encodes a Cancel intent.
func EncodeCancel() []byte {
	return []byte{byte(KindCancel)}
}

// EncodeClose encodes a Close intent.
func EncodeClose() []byte {
	return []byte{byte(KindClose)}
}
