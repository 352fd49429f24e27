// Package compare implements the reconciliation engine at the heart of the
// drift detector. Given two independently fetched catalog snapshots of the
// same object category, it correlates records by a composite identity and
// classifies every identity into exactly one of four buckets: match,
// difference, source-only, or target-only.
//
// # Architecture
//
// The engine has four pieces, leaf first:
//
//  1. Normalize: collapses whatever shape a catalog query produced
//     (row-set, single object, nothing) into one uniform Dataset.
//
//  2. Categories: the static descriptor table mapping each object category
//     to its key columns and ignore columns. Pure configuration; adding a
//     category is one table entry, not new branching logic.
//
//  3. Compare: the per-category comparator. Builds an identity index per
//     side, classifies, and computes field-level deltas for pairs that
//     differ on any non-ignored column.
//
//  4. RunAll: drives Compare across the descriptor table and assembles
//     the per-category result map plus summary counts.
//
// # Equality policy
//
// Values are reduced to canonical strings (utils.Canonical) before
// comparison, with nil mapping to "". This tolerates driver-level type
// differences between the two endpoints ([]byte vs string, int64 vs
// uint64) without promising byte-for-byte numeric equivalence.
//
// # Identity keys
//
// Key-column values are joined with the ASCII unit separator (\x1f) to
// form the index key. A key value containing that byte can collide with a
// neighboring identity; nil key values join as "" and participate like any
// other value. Both are known fragile points, kept deliberately simple.
//
// # Failure model
//
// The engine performs no I/O. Its only error is ConfigurationError (key
// column missing from a non-empty dataset's schema), which aborts that one
// category and leaves the rest of the run untouched. Fetch failures never
// reach this package; collaborators degrade them to empty datasets first.
package compare
