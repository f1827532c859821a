package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_PrintsReports(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(context.Background(), []string{
		"-config", filepath.Join("testdata", "accept.yaml"),
		"-input", filepath.Join("testdata", "scenario.txt"),
	}, &out, &errOut)
	require.NoError(t, err)

	assert.Equal(t, "client D\ncompany qnq\ntaxi A\nA B C D\nshop A\nD A\namount due for this client is R17.10\n", out.String())
}

func TestRun_MetricsTextfile(t *testing.T) {
	dir := t.TempDir()
	prom := filepath.Join(dir, "taxisim.prom")
	cfgPath := filepath.Join(dir, "taxisim.yaml")
	cfg, err := os.ReadFile(filepath.Join("testdata", "accept.yaml"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(cfgPath, append(cfg, []byte("metrics:\n  textfile: "+prom+"\n")...), 0o644))

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{
		"-config", cfgPath,
		"-input", filepath.Join("testdata", "scenario.txt"),
	}, &out, &out))

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), "taxisim_calls_total")
	assert.Contains(t, string(data), "taxisim_engine_runs_total")
}

func TestRun_BadInput(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"-input", filepath.Join(t.TempDir(), "missing.txt")}, &out, &out)
	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func TestParseFlags(t *testing.T) {
	var stderr bytes.Buffer
	f, err := parseFlags([]string{"-input", "x.txt", "-seed", "9"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, flags{input: "x.txt", seed: 9}, f)

	_, err = parseFlags([]string{"-watch"}, &stderr)
	assert.Error(t, err)

	_, err = parseFlags([]string{"-nope"}, &stderr)
	assert.Error(t, err)
}
