package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"errors"
)

// IdentitySize is the length in bytes of every on-ledger identity.
const IdentitySize = 32

// Identity names a participant or account on the ledger. Identities double as
// Ed25519 public keys for parties that hold a signing key; derived authorities
// are identities with no corresponding private key.
type Identity [IdentitySize]byte

// NewIdentityFromBytes creates an Identity from a byte slice.
func NewIdentityFromBytes(data []byte) (Identity, error) {
	var id Identity
	if len(data) != IdentitySize {
		return id, errors.New("invalid identity size")
	}
	copy(id[:], data)
	return id, nil
}

// NewIdentityFromString creates an Identity from a hex-encoded string.
func NewIdentityFromString(data string) (Identity, error) {
	rawBytes, err := hex.DecodeString(data)
	if err != nil {
		return Identity{}, err
	}
	return NewIdentityFromBytes(rawBytes)
}

// Bytes returns the identity as a byte slice.
func (id Identity) Bytes() []byte {
	return id[:]
}

// Equal compares two identities for equality.
func (id Identity) Equal(other Identity) bool {
	return id == other
}

// IsZero reports whether the identity is the all-zero default value.
// The auction record uses the zero identity to mean "no bidder yet".
func (id Identity) IsZero() bool {
	return id == Identity{}
}

// String returns a hex-encoded string representation of the identity.
// This is useful for logging, displaying to users, and using as a map key.
func (id Identity) String() string {
	return hex.EncodeToString(id[:])
}

// MarshalText encodes the identity as hex for JSON and text formats.
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText decodes a hex-encoded identity.
func (id *Identity) UnmarshalText(text []byte) error {
	decoded, err := NewIdentityFromString(string(text))
	if err != nil {
		return err
	}
	*id = decoded
	return nil
}

// PrivateKey represents an Ed25519 private key used for signing requests.
// Private keys should be kept secure and are only used by their owners.
type PrivateKey []byte

// NewPrivateKeyFromBytes creates a PrivateKey from a byte slice.
// This function makes a copy of the input data to ensure immutability.
func NewPrivateKeyFromBytes(data []byte) PrivateKey {
	sk := make([]byte, len(data))
	copy(sk, data)
	return PrivateKey(sk)
}

// Bytes returns the private key as a byte slice.
// This method should be used carefully as it exposes sensitive key material.
func (sk PrivateKey) Bytes() []byte {
	return sk
}

// Identity derives the on-ledger identity corresponding to this private key.
// For Ed25519, the public key is contained within the private key structure.
func (sk PrivateKey) Identity() (Identity, error) {
	if len(sk) != ed25519.PrivateKeySize {
		return Identity{}, errors.New("invalid private key size")
	}
	return NewIdentityFromBytes(sk[32:])
}

// GenerateKeyPair generates a new Ed25519 key pair and returns the holder's
// identity together with the signing key.
func GenerateKeyPair() (Identity, PrivateKey, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return Identity{}, nil, err
	}
	id, err := NewIdentityFromBytes(publicKey)
	if err != nil {
		return Identity{}, nil, err
	}
	return id, PrivateKey(privateKey), nil
}

// Signature represents a digital signature produced with a private key.
// Signatures authenticate transition requests from exhibitors and bidders.
type Signature []byte

// NewSignature creates a Signature from a byte slice.
// This function makes a copy of the input data to ensure immutability.
func NewSignature(data []byte) Signature {
	sig := make([]byte, len(data))
	copy(sig, data)
	return Signature(sig)
}

// Bytes returns the signature as a byte slice.
func (s Signature) Bytes() []byte {
	return []byte(s)
}

// Verify checks if this signature is valid for the given data and identity.
func (s Signature) Verify(signer Identity, data []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(signer[:]), data, s)
}

// String returns a hex-encoded string representation of the signature.
func (s Signature) String() string {
	return hex.EncodeToString(s.Bytes())
}

// Sign signs data with the given private key using Ed25519.
func Sign(privateKey PrivateKey, data []byte) (Signature, error) {
	if len(privateKey) != ed25519.PrivateKeySize {
		return nil, errors.New("invalid private key size")
	}
	signature := ed25519.Sign(ed25519.PrivateKey(privateKey), data)
	return Signature(signature), nil
}
