// Package ledger models the hosting execution environment at its interface:
// balance-carrying storage accounts, the time source, and the storage rent
// oracle.
//
// The real host serializes transitions against a record and commits them
// all-or-nothing. Host reproduces the atomicity half of that contract through
// Checkpoint, which snapshots account state and hands back a restore function;
// a transition that fails partway restores the checkpoint so no partial effect
// survives.
package ledger
