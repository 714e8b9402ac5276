package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Version(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run([]string{"version"}, &buf))
	assert.Equal(t, "scalargrad "+version+"\n", buf.String())
}

func TestRun_Usage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(nil, &buf))
	assert.Contains(t, buf.String(), "Commands:")

	buf.Reset()
	err := run([]string{"train"}, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "train"`)
}

func TestRun_DOT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run([]string{"dot", "-seed", "3"}, &buf))

	out := buf.String()
	assert.Contains(t, out, "digraph autodiff {")
	assert.Contains(t, out, "l0.n0.w0")
	assert.Contains(t, out, "l2.n0.b")
	// The output node is seeded with gradient 1.
	assert.Contains(t, out, `y\n+\ndata`)
	assert.Contains(t, out, "grad 1.0000")
}

func TestRun_DOTBadActivation(t *testing.T) {
	var buf bytes.Buffer
	err := run([]string{"dot", "-activation", "tanh"}, &buf)
	assert.Error(t, err)
}

func TestRun_Check(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run([]string{"check"}, &buf))

	out := buf.String()
	assert.NotContains(t, out, "FAIL")
	assert.Equal(t, len(checkSuite()), strings.Count(out, "ok "))
}

func TestRun_CheckFails(t *testing.T) {
	// A huge step makes central differences wrong for everything curved.
	var buf bytes.Buffer
	err := run([]string{"check", "-step", "0.5", "-tol", "1e-9"}, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gradient checks failed")

	// div at b=-0.5 is evaluated at b=0: reported, not fatal.
	out := buf.String()
	assert.Contains(t, out, "FAIL  div")
	assert.Contains(t, out, "division by zero")
	assert.Equal(t, len(checkSuite()), strings.Count(out, "ok ")+strings.Count(out, "FAIL "))
}
