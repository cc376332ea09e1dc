package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dynsolve version dev\n", out)
}

func TestShutTheBoxCommand(t *testing.T) {
	out, err := run(t, "shut-the-box", "--dice", "4", "--tiles", "000100001")
	require.NoError(t, err)
	assert.Contains(t, out, "[4]")
	assert.Contains(t, out, "8.0000")
}

func TestShutTheBoxCommandRejectsDice(t *testing.T) {
	_, err := run(t, "shut-the-box", "--dice", "13", "--tiles", "111111111")
	assert.Error(t, err)
}

func TestPegCommand(t *testing.T) {
	out, err := run(t, "peg", "--board", "triangle", "--hole", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "3-7-12")
	assert.Contains(t, out, "in 13 moves")
}

func TestPegCommandUnknownBoard(t *testing.T) {
	_, err := run(t, "peg", "--board", "hexagon")
	assert.Error(t, err)
}

func TestWordsCommand(t *testing.T) {
	out, err := run(t, "words", "--grid", "APPLZGGEEZZTDITE", "--words", "apple,tide,xyz")
	require.NoError(t, err)
	assert.Contains(t, out, "apple")
	assert.Contains(t, out, "tide")
	assert.Contains(t, out, "2 distinct words")
}

func TestMatchCommand(t *testing.T) {
	out, err := run(t, "match", "--words", "SHAFT,SHALT,SLANT,SWATH,STAPH",
		"--fixed", "s1,a3,t5", "--either", "h2,h4")
	require.NoError(t, err)
	assert.Contains(t, out, "and(and(and(s1, a3), t5), or(h2, h4))")
	assert.Contains(t, out, "shaft")
	assert.NotContains(t, out, "slant")
	assert.Contains(t, out, "2 of 5 words")
}

func TestWordsCommandCapitalisedDictionary(t *testing.T) {
	out, err := run(t, "words", "--grid", "APPLZGGEEZZTDITE", "--words", "Apple,Tide")
	require.NoError(t, err)
	assert.Contains(t, out, "2 distinct words")
}
