// SPDX-License-Identifier: MIT

// Package memory predicts the peak footprint of an analytics run before any
// worker allocates, so an over-budget run can be rejected up front.
//
// An Estimate is a tree: each node carries a byte range [Min, Max] and a
// description; parents sum their children. Engines build the tree from the
// Size* helpers, which model Go slice headers and element sizes on a 64-bit
// platform. Render prints the tree with human-readable byte counts.
//
// A Budget compares the estimate's Max (the predicted peak) against a caller
// limit after rounding up to the allocation grab size. Exceeding it yields an
// errkind ResourceExceeded error; a zero Limit disables the check.
//
// Estimation is single-threaded and allocation-free apart from the tree.
package memory
