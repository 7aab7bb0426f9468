package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrank/config"
)

// execute runs the root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	err := rootCmd.Execute()

	return out.String(), err
}

func TestGenerate_Cycle(t *testing.T) {
	out, err := execute(t, "", "generate", "--kind", "cycle", "--nodes", "4", "--seed", "1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "# kind=cycle nodes=4 edges=4"))
	assert.Equal(t, []string{"1 2", "2 3", "3 4", "4 1"}, lines[1:])
}

func TestGenerate_UnknownKind(t *testing.T) {
	_, err := execute(t, "", "generate", "--kind", "lattice", "--nodes", "4")
	assert.Error(t, err)
}

func TestRun_JSON(t *testing.T) {
	out, err := execute(t, "1 2\n2 1\n", "run", "-",
		"--nodes", "2", "--walks", "1,3", "--top-k", "1,2", "--seed", "5", "--format", "json")
	require.NoError(t, err)

	var events []map[string]any
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m))
		events = append(events, m)
	}
	require.Len(t, events, 3)
	assert.Equal(t, "exact", events[0]["event"])
	rank, ok := events[0]["rank"].([]any)
	require.True(t, ok)
	assert.InDelta(t, 0.5, rank[0].(float64), 1e-9)
	assert.EqualValues(t, 1, events[1]["walks"])
	assert.EqualValues(t, 3, events[2]["walks"])
}

func TestRank_Power(t *testing.T) {
	out, err := execute(t, "1 2\n1 3\n2 3\n3 1\n", "rank", "-", "--method", "power", "--nodes", "3", "--top", "1")
	require.NoError(t, err)

	fields := strings.Fields(out)
	require.Len(t, fields, 3)
	assert.Equal(t, "1", fields[0])
	assert.Equal(t, "3", fields[1])
}

func TestRank_MonteCarlo(t *testing.T) {
	out, err := execute(t, "1 2\n2 1\n", "rank", "--method", "montecarlo", "--walks", "50", "--nodes", "2", "--seed", "3", "--top", "0")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)
}

func TestRank_Errors(t *testing.T) {
	_, err := execute(t, "1 2\n", "rank", "--method", "eigen", "--nodes", "2")
	assert.ErrorIs(t, err, errUnknownMethod)

	_, err = execute(t, "1 x\n", "rank", "--method", "power", "--nodes", "2")
	assert.Error(t, err)

	_, err = execute(t, "", "rank", "--method", "power", "--nodes", "0")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
