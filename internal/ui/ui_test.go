package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░ page 1/2", PageBar(0, 2, 10))
	assert.Equal(t, "██████████ page 2/2", PageBar(1, 2, 10))
	assert.Equal(t, "█████ page 1/1", PageBar(0, 0, 1))
	assert.Equal(t, "██████████ page 3/3", PageBar(7, 3, 10), "page clamps")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "sunt aut...", Truncate("sunt aut facere", 11))
	assert.Equal(t, "abc", Truncate("abc", 2))
}

func TestStatusLines(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	defer SetOutput(nil, nil)

	OK("loaded")
	Fail("Network Error")
	assert.Equal(t, "ok loaded\n", out.String())
	assert.Equal(t, "error: Network Error\n", errOut.String())
}

func TestPanelAndTable(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	grid := Table([]string{"ID", "Title"}, [][]string{{"1", "Hello there"}, {"2", "Foo"}}, []int{0, 8})
	lines := strings.Split(grid, "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "ID")
	assert.Contains(t, lines[2], "Hello...")
	assert.Contains(t, lines[3], "Foo")

	framed := Panel([]string{"Posts", grid})
	assert.True(t, strings.HasPrefix(framed, "+"))
	assert.Contains(t, framed, "Posts")
}

func TestSetThemeFallsBack(t *testing.T) {
	SetTheme("unknown")
	assert.Equal(t, "classic", Current().Name)
	SetTheme("NEON")
	assert.Equal(t, "neon", Current().Name)
	SetTheme("classic")
}
