package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainConsoleHasNoEscapes(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	c.Info("loading")
	c.Success("done")
	c.Warn("careful")
	c.Error("boom")

	assert.Equal(t, "[INFO] loading\n[OK] done\n[WARN] careful\n[ERROR] boom\n", buf.String())
}

func TestTitleRule(t *testing.T) {
	var buf bytes.Buffer
	Plain(&buf).Title("步骤 1：股票代码")

	out := buf.String()
	assert.Contains(t, out, "步骤 1：股票代码\n")
	assert.Contains(t, out, "────────────────────\n")
}
