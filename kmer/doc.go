// Package kmer converts integer-encoded sequences into k-mer indices and
// frequency vectors.
//
// A k-mer over an alphabet of n states is a k-tuple of symbol indices. The
// codec maps each tuple to a single mixed-radix integer in [0, n^k) using
// positional weights n^(k-1), ..., n^0, and back. The counting engine
// slides a window across a sequence, excluding any window that touches a
// non-canonical position (negative or >= n), and counts the encodings of
// the remaining windows.
//
// All functions are pure and stateless; counting many sequences is an
// embarrassingly parallel map with no shared state.
package kmer
