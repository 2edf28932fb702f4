// SPDX-License-Identifier: MIT

// Package graphio moves graphs and results between files and the engines.
// The engines themselves perform no I/O; this package is the caller side
// used by the command-line tool.
//
// Edge-list format, one relationship or isolated node per line:
//
//	# comment
//	from to [weight]
//	node
//
// Fields are separated by blanks or commas. A line holding a single token
// declares a node without relationships. Node labels are arbitrary tokens
// mapped to dense ids in first-seen order. If any line carries a weight the
// graph is weighted and lines without one weigh 1.
//
// Results are written as CSV with a header row, one row per node, labelled
// with the original node tokens.
package graphio
