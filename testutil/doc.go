// Package testutil provides shared helpers for pairheap tests and
// benchmarks.
package testutil
