// Package hamt implements a persistent, generic associative map backed by
// a hash array mapped trie (HAMT), with an owner-token transient mode for
// batched in-place mutation.
//
// A Map[K, V] is immutable by default: Set, Delete and Update each return
// a new Map sharing most of its structure with the receiver. AsMutable
// opens a transient view stamped with a private owner token; operations
// performed through that view mutate trie nodes in place wherever the
// owner token proves exclusive ownership, and AsImmutable seals it back
// into an ordinary persistent Map. WithMutations wraps that pattern for a
// single batch of edits.
package hamt
