// Package httpserver exposes the auction dispatcher over HTTP: one route per
// transition taking a signature-authenticated request envelope, plus read
// endpoints for the record and its audit trail.
//
// Signature recovery on the envelope supplies the "caller signs" fact the
// state machine's guards check; the handler never marks an account as signer
// unless it matches the recovered signer.
package httpserver
