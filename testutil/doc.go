// Package testutil provides test fixtures for the auction protocol: key and
// identity generators, and a processor wired against in-memory collaborators
// with a manually advanced clock.
package testutil
