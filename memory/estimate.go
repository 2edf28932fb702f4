// SPDX-License-Identifier: MIT

package memory

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Element and header sizes on a 64-bit platform.
const (
	SliceHeader = 24
	Float64Size = 8
	IntSize     = 8
)

// SizeOfFloat64Array is the footprint of a []float64 of length n.
func SizeOfFloat64Array(n int) uint64 {
	return SliceHeader + Float64Size*nonNeg(n)
}

// SizeOfIntArray is the footprint of a []int of length n.
func SizeOfIntArray(n int) uint64 {
	return SliceHeader + IntSize*nonNeg(n)
}

// SizeOfBoolArray is the footprint of a []bool of length n.
func SizeOfBoolArray(n int) uint64 {
	return SliceHeader + nonNeg(n)
}

// SizeOfObjectArray is the footprint of a slice of n slice headers, excluding
// whatever the inner slices point to.
func SizeOfObjectArray(n int) uint64 {
	return SliceHeader + SliceHeader*nonNeg(n)
}

func nonNeg(n int) uint64 {
	if n < 0 {
		return 0
	}

	return uint64(n)
}

// Estimate is one node of a memory estimation tree.
type Estimate struct {
	Description string
	Min, Max    uint64
	Children    []Estimate
}

// Fixed is a leaf with an exact size.
func Fixed(desc string, bytes uint64) Estimate {
	return Estimate{Description: desc, Min: bytes, Max: bytes}
}

// Between is a leaf whose size lies in [lo, hi].
func Between(desc string, lo, hi uint64) Estimate {
	if hi < lo {
		lo, hi = hi, lo
	}

	return Estimate{Description: desc, Min: lo, Max: hi}
}

// Sum is a parent whose range is the sum of its children's.
func Sum(desc string, children ...Estimate) Estimate {
	e := Estimate{Description: desc, Children: children}
	for _, c := range children {
		e.Min += c.Min
		e.Max += c.Max
	}

	return e
}

// Times replicates e k times (per-worker or per-batch state) under a new parent.
func Times(desc string, k int, e Estimate) Estimate {
	m := nonNeg(k)

	return Estimate{
		Description: fmt.Sprintf("%s (x%d)", desc, m),
		Min:         e.Min * m,
		Max:         e.Max * m,
		Children:    []Estimate{e},
	}
}

// Render prints e as an indented tree, one node per line.
func (e Estimate) Render() string {
	var sb strings.Builder
	sb.WriteString(e.line())
	sb.WriteByte('\n')
	renderChildren(&sb, e.Children, "")

	return sb.String()
}

// String returns the root line only.
func (e Estimate) String() string {
	return e.line()
}

func (e Estimate) line() string {
	if e.Min == e.Max {
		return e.Description + ": " + humanize.IBytes(e.Max)
	}

	return fmt.Sprintf("%s: [%s ... %s]", e.Description, humanize.IBytes(e.Min), humanize.IBytes(e.Max))
}

func renderChildren(sb *strings.Builder, children []Estimate, prefix string) {
	for i, c := range children {
		branch, next := "├── ", "│   "
		if i == len(children)-1 {
			branch, next = "└── ", "    "
		}
		sb.WriteString(prefix + branch + c.line() + "\n")
		renderChildren(sb, c.Children, prefix+next)
	}
}
