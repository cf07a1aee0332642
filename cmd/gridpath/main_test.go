package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/logging"
)

// writeTemp writes content to name inside a per-test directory.
func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func mustParse(t *testing.T, args ...string) cliFlags {
	t.Helper()
	f, err := parseFlags(args, &bytes.Buffer{})
	require.NoError(t, err)
	return f
}

// --- parseFlags ---

func TestParseFlags_Defaults(t *testing.T) {
	f := mustParse(t)
	assert.Equal(t, 30, f.rows)
	assert.Equal(t, 40, f.cols)
	assert.Equal(t, 5, f.speed)
	assert.False(t, f.batch)
	assert.Empty(t, f.set)
}

func TestParseFlags_RecordsExplicitFlags(t *testing.T) {
	f := mustParse(t, "-batch", "-map", "m.txt", "-speed", "9")
	assert.True(t, f.batch)
	assert.Equal(t, "m.txt", f.mapPath)
	assert.True(t, f.set["speed"])
	assert.False(t, f.set["rows"])
}

func TestParseFlags_Errors(t *testing.T) {
	var stderr bytes.Buffer
	_, err := parseFlags([]string{"-nope"}, &stderr)
	assert.Error(t, err)

	_, err = parseFlags([]string{"extra"}, &stderr)
	assert.Error(t, err)
	assert.Contains(t, stderr.String(), `unexpected argument "extra"`)
}

// --- resolveConfig ---

func TestResolveConfig_FlagsOverrideFile(t *testing.T) {
	path := writeTemp(t, "gridpath.yaml", "version: 1\ngrid:\n  rows: 12\n  cols: 14\nspeed: 3\n")

	f := mustParse(t, "-config", path, "-cols", "20")
	cfg, err := resolveConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Grid.Rows)
	assert.Equal(t, 20, cfg.Grid.Cols)
	assert.Equal(t, 3, cfg.Speed)
}

func TestResolveConfig_Invalid(t *testing.T) {
	_, err := resolveConfig(mustParse(t, "-speed", "11"))
	assert.Error(t, err)

	_, err = resolveConfig(mustParse(t, "-config", filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)
}

// --- batch mode ---

func TestRun_BatchFound(t *testing.T) {
	path := writeTemp(t, "map.txt", "S..\n.#.\n..E\n")
	var stdout, stderr bytes.Buffer

	code := run(mustParse(t, "-batch", "-map", path, "-log-level", "error"), &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "status:       path found")
	assert.Contains(t, out, "path length:  4")
	assert.NotContains(t, out, "reachable:")

	// The rendered grid is the tail of the output and parses back.
	g, err := gridgraph.ParseString(out[bytes.LastIndex(stdout.Bytes(), []byte("\n\n"))+2:])
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.True(t, g.Node(1, 1).IsBarrier())
}

func TestRun_BatchNoPath(t *testing.T) {
	path := writeTemp(t, "map.txt", "S#.\n##.\n..E\n")
	var stdout, stderr bytes.Buffer

	code := run(mustParse(t, "-batch", "-map", path, "-log-level", "error"), &stdout, &stderr)
	assert.Equal(t, exitNoPath, code)
	assert.Contains(t, stdout.String(), "status:       no path")
	assert.Contains(t, stdout.String(), "visited:      1")
	assert.Contains(t, stdout.String(), "reachable:    1")
}

func TestRun_BatchErrors(t *testing.T) {
	tests := []struct {
		name string
		args func(t *testing.T) []string
	}{
		{"NoEnd", func(t *testing.T) []string {
			return []string{"-batch", "-map", writeTemp(t, "map.txt", "S..\n")}
		}},
		{"BadGlyph", func(t *testing.T) []string {
			return []string{"-batch", "-map", writeTemp(t, "map.txt", "S?E\n")}
		}},
		{"MissingMap", func(t *testing.T) []string {
			return []string{"-batch", "-map", filepath.Join(t.TempDir(), "none.txt")}
		}},
		{"BlankGrid", func(t *testing.T) []string {
			return []string{"-batch", "-rows", "3", "-cols", "3"}
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(mustParse(t, tc.args(t)...), &stdout, &stderr)
			assert.Equal(t, exitError, code)
			assert.Contains(t, stderr.String(), "error:")
		})
	}
}

func TestRunBatch_Cancelled(t *testing.T) {
	g, err := gridgraph.ParseString("S...\n....\n...E\n")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	code := runBatch(ctx, g, logging.Discard(), &stdout, &stderr)
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr.String(), context.Canceled.Error())
}

func TestRun_LogFile(t *testing.T) {
	mapPath := writeTemp(t, "map.txt", "SE\n")
	logPath := filepath.Join(t.TempDir(), "gridpath.log")
	var stdout, stderr bytes.Buffer

	code := run(mustParse(t, "-batch", "-map", mapPath, "-log-file", logPath, "-log-format", "json"), &stdout, &stderr)
	require.Equal(t, exitOK, code)

	b, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"batch run finished"`)
	assert.Empty(t, stderr.String())
}
