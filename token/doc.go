// Package token is the custody transfer service: it moves fixed quantities of
// an asset between custody accounts, changes the authority controlling an
// account, and closes emptied accounts reclaiming their native deposit.
//
// Operations are authorized either by a participant who signed the enclosing
// request or by the protocol's derived authority, proven by an AuthorityProof
// the service verifies through re-derivation. Each call either fully applies
// or fully fails.
package token
