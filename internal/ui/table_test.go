package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_render(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "PHASE", "STATUS", "DETAIL")
	tbl.Row("gate", "ok", "2 watched path(s) changed")
	tbl.Row("publish", "skipped", "")
	require.NoError(t, tbl.Flush())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "PHASE")
	assert.Contains(t, lines[1], "gate")
	assert.True(t, strings.HasSuffix(lines[2], "-"), "empty cell renders as dash: %q", lines[2])
	assert.Equal(t, 2, tbl.Len())
}

func TestTable_emptyTable(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "A", "B")
	require.NoError(t, tbl.Flush())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1)
	assert.Zero(t, tbl.Len())
}

func TestStatusCell_plain(t *testing.T) {
	assert.Equal(t, "ok     ", StatusCell("ok", false))
	assert.Equal(t, "warning", StatusCell("warning", false))
	assert.Equal(t, "other  ", StatusCell("other", true))
}

func TestStatusCell_colorKeepsText(t *testing.T) {
	for _, s := range []string{"ok", "skipped", "warning"} {
		assert.Contains(t, StatusCell(s, true), s)
	}
}
