// SPDX-License-Identifier: MIT

package memory

import (
	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/gdsgo/errkind"
)

// Budget is the caller's memory contract: a byte limit and the allocator's
// grab size. Zero values disable the limit and the rounding respectively.
type Budget struct {
	Limit    uint64
	GrabSize uint64
}

// ParseBudget builds a Budget from human strings such as "2GiB" or "512 MB".
// Empty strings mean zero.
func ParseBudget(limit, grab string) (Budget, error) {
	var b Budget
	var err error
	if limit != "" {
		if b.Limit, err = humanize.ParseBytes(limit); err != nil {
			return Budget{}, errkind.ConfigWrap("memory.budget", err)
		}
	}
	if grab != "" {
		if b.GrabSize, err = humanize.ParseBytes(grab); err != nil {
			return Budget{}, errkind.ConfigWrap("memory.budget", err)
		}
	}

	return b, nil
}

// Round rounds bytes up to the next multiple of GrabSize.
func (b Budget) Round(bytes uint64) uint64 {
	if b.GrabSize == 0 || bytes%b.GrabSize == 0 {
		return bytes
	}

	return (bytes/b.GrabSize + 1) * b.GrabSize
}

// Check rejects e when its rounded peak (Max) exceeds Limit. op names the run
// in the returned ResourceExceeded error.
func (b Budget) Check(op string, e Estimate) error {
	if b.Limit == 0 {
		return nil
	}
	peak := b.Round(e.Max)
	if peak > b.Limit {
		return errkind.ResourceExceededf(op,
			"estimated peak %s exceeds the memory limit of %s (%s)",
			humanize.IBytes(peak), humanize.IBytes(b.Limit), e.Description)
	}

	return nil
}
