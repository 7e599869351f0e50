// Package store implements the persistence layer: item catalog, swap
// lifecycle, donation ledger, the points ledger behind user balances,
// and the AI suggestion cache. All functions take a context and a
// database handle; mutations that award points run inside a single
// transaction with the triggering write.
package store

import "errors"

var (
	// ErrNotFound is returned by updates against a missing row.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition is returned when a swap status change is not
	// one of the legal lifecycle edges.
	ErrInvalidTransition = errors.New("invalid status transition")
)
