package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gdsgo/config"
	"github.com/katalvlaran/gdsgo/errkind"
)

// execute runs the root command with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand(&stdout, &stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

const pathGraph = "# five-node path\na b\nb c\nc d\nd e\n"

func TestBetweennessCommand(t *testing.T) {
	graph := writeFile(t, "path.txt", pathGraph)

	stdout, stderr, err := execute(t, "betweenness", "--graph", graph)
	require.NoError(t, err)
	assert.Equal(t, "node,betweenness\na,0\nb,3\nc,4\nd,3\ne,0\n", stdout)
	assert.Contains(t, stderr, "Loaded graph")
	assert.Contains(t, stderr, "from 5 pivots")
}

func TestBetweennessFlagsOverrideConfig(t *testing.T) {
	graph := writeFile(t, "path.txt", pathGraph)
	cfg := writeFile(t, "gds.yaml", "centrality:\n  strategy: all\n  seed: 3\n")

	_, stderr, err := execute(t, "--config", cfg, "betweenness", "--graph", graph,
		"--strategy", "degree", "--probability", "0.2", "--concurrency", "2")
	require.NoError(t, err)
	assert.Contains(t, stderr, "from 1 pivots")
}

func TestBetweennessErrors(t *testing.T) {
	graph := writeFile(t, "path.txt", pathGraph)

	_, _, err := execute(t, "betweenness", "--graph", graph, "--strategy", "bogus")
	require.Error(t, err)
	assert.Equal(t, errkind.Configuration, errkind.KindOf(err))
	assert.Contains(t, err.Error(), "unknown selection strategy")

	_, _, err = execute(t, "betweenness", "--graph", graph, "--probability", "1.5", "--strategy", "random")
	assert.Equal(t, errkind.Configuration, errkind.KindOf(err))

	_, _, err = execute(t, "betweenness", "--graph", graph, "--memory-limit", "1B")
	assert.Equal(t, errkind.ResourceExceeded, errkind.KindOf(err))

	_, _, err = execute(t, "betweenness", "--graph", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, _, err = execute(t, "betweenness")
	assert.ErrorContains(t, err, "graph")
}

func TestConfigFileErrors(t *testing.T) {
	graph := writeFile(t, "path.txt", pathGraph)

	unknown := writeFile(t, "gds.yaml", "centrality:\n  colour: red\n")
	_, _, err := execute(t, "--config", unknown, "betweenness", "--graph", graph)
	assert.Equal(t, errkind.Configuration, errkind.KindOf(err))

	toml := writeFile(t, "gds.toml", "[centrality]\nstrategy = \"all\"\n[log]\nlevel = \"debug\"\n")
	_, stderr, err := execute(t, "--config", toml, "betweenness", "--graph", graph)
	require.NoError(t, err)
	assert.Contains(t, stderr, "state")
}

func TestBetweennessOutputFiles(t *testing.T) {
	dir := t.TempDir()
	graph := writeFile(t, "path.txt", pathGraph)
	out := filepath.Join(dir, "scores.csv")
	prom := filepath.Join(dir, "gds.prom")

	stdout, _, err := execute(t, "betweenness", "--graph", graph, "--out", out, "--metrics-out", prom)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	scores, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(scores), "node,betweenness\n"))

	metrics, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "gds_runs_total")
}

func TestEmbedCommand(t *testing.T) {
	graph := writeFile(t, "path.txt", pathGraph)

	stdout, _, err := execute(t, "embed", "--graph", graph,
		"--layers", "2,2", "--dims", "3,3", "--feature-dim", "4", "--batch", "2", "--normalize", "--cache-size", "16")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "node,e0,e1,e2", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "a,"))

	again, _, err := execute(t, "embed", "--graph", graph,
		"--layers", "2,2", "--dims", "3,3", "--feature-dim", "4", "--batch", "2", "--normalize", "--concurrency", "1")
	require.NoError(t, err)
	assert.Equal(t, stdout, again, "batching and caching do not change the result")
}

func TestEmbedErrors(t *testing.T) {
	graph := writeFile(t, "path.txt", pathGraph)

	_, _, err := execute(t, "embed", "--graph", graph, "--layers", "2,2", "--dims", "3")
	assert.Equal(t, errkind.Configuration, errkind.KindOf(err))

	_, _, err = execute(t, "embed", "--graph", graph, "--aggregator", "lstm")
	assert.Equal(t, errkind.Configuration, errkind.KindOf(err))
	assert.ErrorContains(t, err, "unknown aggregator")

	_, _, err = execute(t, "embed", "--graph", graph, "--memory-limit", "1B")
	assert.Equal(t, errkind.ResourceExceeded, errkind.KindOf(err))
}

func TestOverrideLayers(t *testing.T) {
	base := []config.LayerConfig{
		{SampleSize: 25, OutputDim: 64, Aggregator: "mean", Activation: "sigmoid"},
		{SampleSize: 10, OutputDim: 32, Aggregator: "pool", Activation: "relu"},
	}

	got, err := overrideLayers(base, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, base, got)
	got[0].SampleSize = 1
	assert.Equal(t, 25, base[0].SampleSize, "result does not alias base")

	got, err = overrideLayers(base, []int{5, 4, 3}, nil)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, config.LayerConfig{SampleSize: 3, OutputDim: 32, Aggregator: "pool", Activation: "relu"}, got[2])

	got, err = overrideLayers(nil, nil, []int{8})
	require.NoError(t, err)
	assert.Equal(t, []config.LayerConfig{{OutputDim: 8, Aggregator: "mean", Activation: "sigmoid"}}, got)

	_, err = overrideLayers(base, []int{1}, []int{1, 2})
	assert.Error(t, err)
}

func TestEstimateCommand(t *testing.T) {
	stdout, _, err := execute(t, "estimate", "--nodes", "1000", "--rels", "4000", "--concurrency", "2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "betweenness: ")
	assert.Contains(t, stdout, "graphsage: ")
	assert.Contains(t, stdout, "workers (x2)")
	assert.NotContains(t, stdout, "fits within")

	stdout, _, err = execute(t, "estimate", "--nodes", "1000", "--rels", "4000", "--algorithm", "betweenness", "--memory-limit", "1KiB")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "graphsage")
	assert.Contains(t, stdout, "exceeds the memory limit")

	stdout, _, err = execute(t, "estimate", "--nodes", "10", "--algorithm", "betweenness", "--memory-limit", "1GiB")
	require.NoError(t, err)
	assert.Contains(t, stdout, "fits within 1.0 GiB")

	_, _, err = execute(t, "estimate", "--nodes", "10", "--algorithm", "pagerank")
	assert.Equal(t, errkind.Configuration, errkind.KindOf(err))

	_, _, err = execute(t, "estimate", "--nodes=-1")
	assert.Equal(t, errkind.Configuration, errkind.KindOf(err))
}

func TestGenerateCommand(t *testing.T) {
	stdout, _, err := execute(t, "generate", "--kind", "path", "--n", "3")
	require.NoError(t, err)
	assert.Equal(t, "0 1\n1 2\n", stdout)

	stdout, _, err = execute(t, "generate", "--kind", "grid", "--n", "2")
	require.NoError(t, err)
	assert.Equal(t, "0 1\n0 2\n1 3\n2 3\n", stdout)

	first, _, err := execute(t, "generate", "--kind", "random", "--n", "30", "--p", "0.2", "--seed", "7", "--max-weight", "5")
	require.NoError(t, err)
	second, _, err := execute(t, "generate", "--kind", "random", "--n", "30", "--p", "0.2", "--seed", "7", "--max-weight", "5")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, strings.Fields(strings.SplitN(first, "\n", 2)[0]), 3, "weighted lines carry a weight")

	_, _, err = execute(t, "generate", "--kind", "torus", "--n", "3")
	assert.Equal(t, errkind.Configuration, errkind.KindOf(err))

	_, _, err = execute(t, "generate", "--kind", "cycle", "--n", "2")
	assert.Equal(t, errkind.Configuration, errkind.KindOf(err))
}

func TestGenerateThenBetweenness(t *testing.T) {
	dir := t.TempDir()
	graph := filepath.Join(dir, "star.txt")

	_, _, err := execute(t, "generate", "--kind", "star", "--n", "4", "--out", graph)
	require.NoError(t, err)

	stdout, _, err := execute(t, "betweenness", "--graph", graph)
	require.NoError(t, err)
	assert.Equal(t, "node,betweenness\n0,3\n1,0\n2,0\n3,0\n", stdout)
}

func TestGenerateKeepsIsolatedNodes(t *testing.T) {
	dir := t.TempDir()
	graph := filepath.Join(dir, "sparse.txt")

	_, _, err := execute(t, "generate", "--kind", "random", "--n", "4", "--p", "0", "--out", graph)
	require.NoError(t, err)
	raw, err := os.ReadFile(graph)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n3\n", string(raw))

	stdout, _, err := execute(t, "betweenness", "--graph", graph)
	require.NoError(t, err)
	assert.Equal(t, "node,betweenness\n0,0\n1,0\n2,0\n3,0\n", stdout)
}

func TestSetVersion(t *testing.T) {
	SetVersion("v1.2.3", "abc123", "2026-01-01")
	t.Cleanup(func() { SetVersion("", "", "") })

	stdout, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "gds v1.2.3\ncommit: abc123\nbuilt: 2026-01-01\n", stdout)
}
