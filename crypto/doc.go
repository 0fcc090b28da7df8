// Package crypto provides the identity and authorization primitives for the
// auction protocol: Ed25519 identities and signatures for participants, and
// keyless derived authorities for custody accounts the protocol controls.
//
// A derived authority is computed deterministically from the protocol's own
// identity plus seed labels. It has no private key; the protocol proves the
// right to act as the authority by re-deriving it at call time and presenting
// an AuthorityProof to the custody service.
package crypto
