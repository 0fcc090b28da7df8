// Package services provides supporting infrastructure around the auction
// core: the transition audit store with PostgreSQL persistence and an
// in-memory twin for tests.
package services
