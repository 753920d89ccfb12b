package main

import (
	"bytes"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"version"}, &out, &out))
	assert.Equal(t, "mynet "+version+"\n", out.String())
}

func TestRun_Usage(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(nil, &out, &out))
	assert.Contains(t, out.String(), "Commands:")
}

func TestRun_UnknownCommand(t *testing.T) {
	var out bytes.Buffer
	assert.EqualError(t, run([]string{"serve"}, &out, &out), `unknown command "serve"`)
}

func TestRun_Fit(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"fit", "-steps", "15"}, &out, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 15)
	assert.Contains(t, lines[len(lines)-1], "w 0.500000")

	err := run([]string{"fit", "-steps", "0"}, &out, &out)
	assert.ErrorContains(t, err, "steps must be positive")
}

func TestRun_XOR(t *testing.T) {
	var out, logs bytes.Buffer
	require.NoError(t, run([]string{"xor", "-epochs", "20", "-v"}, &out, &logs))

	assert.Contains(t, out.String(), "after 20 epochs")
	assert.Contains(t, logs.String(), "epoch complete")

	err := run([]string{"xor", "-optim", "rmsprop"}, &out, &logs)
	assert.EqualError(t, err, `xor: unknown optimizer "rmsprop"`)
}

func TestRun_SaveAndPredict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xor.mynet")

	var out bytes.Buffer
	require.NoError(t, run([]string{"xor", "-save", path}, &out, &out))
	assert.Contains(t, out.String(), "saved 33 parameters")

	for _, tc := range []struct {
		a, b string
		want float64
	}{{"0", "0", 0}, {"0", "1", 1}, {"1", "0", 1}, {"1", "1", 0}} {
		out.Reset()
		require.NoError(t, run([]string{"predict", "-model", path, tc.a, tc.b}, &out, &out))

		got, err := strconv.ParseFloat(strings.TrimSpace(out.String()), 64)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 0.5, "%s xor %s", tc.a, tc.b)
	}

	err := run([]string{"predict", "-model", path, "1"}, &out, &out)
	assert.EqualError(t, err, "predict: model takes 2 inputs, got 1")

	err = run([]string{"predict"}, &out, &out)
	assert.EqualError(t, err, "predict: -model is required")
}

func TestRun_Gradcheck(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"gradcheck"}, &out, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, len(gradchecks))
	for _, line := range lines {
		assert.True(t, strings.HasSuffix(line, "ok"), line)
	}

	err := run([]string{"gradcheck", "-tol", "0"}, &out, &out)
	assert.ErrorContains(t, err, "operators failed")
}
