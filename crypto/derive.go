package crypto

import (
	"errors"

	"golang.org/x/crypto/sha3"
)

// derivedAuthorityMarker is appended to every derivation preimage so derived
// identities occupy a namespace disjoint from hand-built hashes.
var derivedAuthorityMarker = []byte("DerivedAuthority")

// ErrNoViableBump is returned when no bump value yields a usable derived
// identity for the given seeds. With 256 candidate bumps this is not expected
// to occur in practice.
var ErrNoViableBump = errors.New("no viable bump for derived authority")

// DeriveAuthority computes the keyless authority identity for the given
// protocol identity and seed labels. The search starts at bump 255 and walks
// down until a candidate is usable, so the (identity, bump) pair is
// deterministic for a given (programID, seeds) input.
//
// A candidate is rejected when its final byte is zero; rejected candidates are
// skipped rather than used, which forces callers that later re-derive the
// identity to know the exact bump the original derivation settled on.
func DeriveAuthority(programID Identity, seeds ...[]byte) (Identity, uint8, error) {
	for bump := 255; bump >= 0; bump-- {
		candidate := deriveCandidate(programID, seeds, uint8(bump))
		if usableAuthority(candidate) {
			return candidate, uint8(bump), nil
		}
	}
	return Identity{}, 0, ErrNoViableBump
}

func deriveCandidate(programID Identity, seeds [][]byte, bump uint8) Identity {
	h := sha3.New256()
	for _, seed := range seeds {
		h.Write(seed)
	}
	h.Write([]byte{bump})
	h.Write(programID[:])
	h.Write(derivedAuthorityMarker)

	var id Identity
	copy(id[:], h.Sum(nil))
	return id
}

func usableAuthority(id Identity) bool {
	return id[IdentitySize-1] != 0
}

// AuthorityProof is the capability that authorizes custody operations on
// accounts controlled by a derived authority. It is minted only inside the
// transition logic, which knows the seeds and bump; the custody service
// accepts it after re-deriving the identity and comparing.
type AuthorityProof struct {
	authority Identity
	seeds     [][]byte
	bump      uint8
}

// MintAuthorityProof derives the authority for the given seeds and returns a
// proof that the caller performed the derivation honestly.
func MintAuthorityProof(programID Identity, seeds ...[]byte) (*AuthorityProof, error) {
	authority, bump, err := DeriveAuthority(programID, seeds...)
	if err != nil {
		return nil, err
	}
	copied := make([][]byte, len(seeds))
	for i, seed := range seeds {
		copied[i] = append([]byte(nil), seed...)
	}
	return &AuthorityProof{authority: authority, seeds: copied, bump: bump}, nil
}

// Authority returns the derived identity this proof vouches for.
func (p *AuthorityProof) Authority() Identity {
	return p.authority
}

// Bump returns the adjustment value the derivation settled on.
func (p *AuthorityProof) Bump() uint8 {
	return p.bump
}

// Valid re-derives the identity from the proof's seeds and bump and reports
// whether it matches the claimed authority.
func (p *AuthorityProof) Valid(programID Identity) bool {
	candidate := deriveCandidate(programID, p.seeds, p.bump)
	return usableAuthority(candidate) && candidate == p.authority
}
