package memory_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gdsgo/errkind"
	"github.com/katalvlaran/gdsgo/memory"
)

func TestSizes(t *testing.T) {
	assert.Equal(t, uint64(24+80), memory.SizeOfFloat64Array(10))
	assert.Equal(t, uint64(24+80), memory.SizeOfIntArray(10))
	assert.Equal(t, uint64(24+10), memory.SizeOfBoolArray(10))
	assert.Equal(t, uint64(24+240), memory.SizeOfObjectArray(10))
	assert.Equal(t, uint64(24), memory.SizeOfIntArray(-3))
}

func TestTree(t *testing.T) {
	worker := memory.Sum("worker", memory.Fixed("a", 100), memory.Between("b", 50, 10))
	assert.Equal(t, uint64(110), worker.Min)
	assert.Equal(t, uint64(150), worker.Max)

	root := memory.Sum("run", memory.Fixed("result", 1000), memory.Times("workers", 4, worker))
	assert.Equal(t, uint64(1000+440), root.Min)
	assert.Equal(t, uint64(1000+600), root.Max)

	out := root.Render()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "run: [1.4 KiB ... 1.6 KiB]", lines[0])
	assert.Equal(t, "├── result: 1000 B", lines[1])
	assert.Equal(t, "└── workers (x4): [440 B ... 600 B]", lines[2])
	assert.Equal(t, "    └── worker: [110 B ... 150 B]", lines[3])
	assert.Equal(t, "        ├── a: 100 B", lines[4])
}

func TestBudget(t *testing.T) {
	est := memory.Fixed("run", 1500)

	assert.NoError(t, memory.Budget{}.Check("op", est), "zero limit disables")
	assert.NoError(t, memory.Budget{Limit: 1500}.Check("op", est))

	b := memory.Budget{Limit: 1500, GrabSize: 1024}
	assert.Equal(t, uint64(2048), b.Round(1500))
	assert.Equal(t, uint64(1024), b.Round(1024))
	err := b.Check("betweenness", est)
	require.Error(t, err)
	assert.ErrorIs(t, err, errkind.ErrResourceExceeded)
	assert.Contains(t, err.Error(), "2.0 KiB")
}

func TestParseBudget(t *testing.T) {
	b, err := memory.ParseBudget("2GiB", "1MiB")
	require.NoError(t, err)
	assert.Equal(t, uint64(2<<30), b.Limit)
	assert.Equal(t, uint64(1<<20), b.GrabSize)

	b, err = memory.ParseBudget("", "")
	require.NoError(t, err)
	assert.Zero(t, b)

	_, err = memory.ParseBudget("lots", "")
	assert.ErrorIs(t, err, errkind.ErrConfiguration)
}
