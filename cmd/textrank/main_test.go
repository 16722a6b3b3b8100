package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/textrank/evaluate"
	"github.com/az-ai-labs/textrank/internal/config"
	"github.com/az-ai-labs/textrank/textrank"
)

const sample = "linear systems are linear systems, important"

// run executes the CLI with stdin and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// ---------------------------------------------------------------------------
// extraction commands
// ---------------------------------------------------------------------------

func TestKeywordsFromStdin(t *testing.T) {
	out, _, err := run(t, sample, "keywords", "-n", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "\tlinear"), lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "\tsystems"), lines[1])
}

func TestKeywordsFromFileJSON(t *testing.T) {
	path := writeTemp(t, "doc.txt", sample)
	out, _, err := run(t, "", "keywords", "-o", "json", path)
	require.NoError(t, err)

	var kws []textrank.RankedKeyword
	require.NoError(t, json.Unmarshal([]byte(out), &kws))
	require.Len(t, kws, 1)
	assert.Equal(t, "linear", kws[0].Text)
}

func TestRankListsAllVertices(t *testing.T) {
	out, _, err := run(t, sample, "rank", "-o", "json")
	require.NoError(t, err)

	var kws []textrank.RankedKeyword
	require.NoError(t, json.Unmarshal([]byte(out), &kws))
	assert.Len(t, kws, 3)
}

func TestPhrases(t *testing.T) {
	out, _, err := run(t, sample, "phrases", "--top", "2")
	require.NoError(t, err)

	fields := strings.Split(strings.TrimSpace(out), "\t")
	require.Len(t, fields, 3)
	assert.Equal(t, "2", fields[1])
	assert.Equal(t, "linear systems", fields[2])
}

func TestPhrasesWindowFlag(t *testing.T) {
	out, _, err := run(t, "alpha beta gamma", "keywords", "-w", "1", "-n", "1", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "\tbeta"), out)
}

func TestGraphFormats(t *testing.T) {
	out, _, err := run(t, sample, "graph")
	require.NoError(t, err)
	var x textrank.GraphExport
	require.NoError(t, json.Unmarshal([]byte(out), &x))
	assert.Equal(t, []string{"linear", "systems", "important"}, x.Vertices)

	out, _, err = run(t, sample, "graph", "--format", "dot", "--name", "paper")
	require.NoError(t, err)
	assert.Contains(t, out, "graph paper {")

	_, _, err = run(t, sample, "graph", "--format", "svg")
	assert.Error(t, err)
}

func TestExtractionErrors(t *testing.T) {
	_, _, err := run(t, "   ", "keywords")
	assert.ErrorIs(t, err, textrank.ErrInvalidInput)

	_, _, err = run(t, sample, "keywords", "--damping", "1")
	assert.ErrorIs(t, err, textrank.ErrConfiguration)

	_, _, err = run(t, "", "keywords", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadInputStopsPastLimit(t *testing.T) {
	t.Parallel()

	text, err := readInput(strings.NewReader(strings.Repeat("a", 100)), nil, 10)
	require.NoError(t, err)
	assert.Len(t, text, 11)

	path := writeTemp(t, "doc.txt", strings.Repeat("b", 100))
	text, err = readInput(nil, []string{path}, 10)
	require.NoError(t, err)
	assert.Len(t, text, 11)

	text, err = readInput(strings.NewReader(sample), []string{"-"}, 1<<20)
	require.NoError(t, err)
	assert.Equal(t, sample, text)
}

func TestOversizedInputRejected(t *testing.T) {
	path := writeTemp(t, "textrank.yaml", "extraction:\n  max_input_bytes: 8\n")
	_, _, err := run(t, strings.Repeat("linear systems ", 10000), "--config", path, "keywords")
	require.ErrorIs(t, err, textrank.ErrInvalidInput)
	assert.Contains(t, err.Error(), "text is 9 bytes, limit is 8")
}

// ---------------------------------------------------------------------------
// configuration and logging
// ---------------------------------------------------------------------------

func TestConfigFile(t *testing.T) {
	path := writeTemp(t, "textrank.yaml", "extraction:\n  window: 1\n")
	out, _, err := run(t, "alpha beta gamma", "--config", path, "keywords", "-n", "1")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "\tbeta"), out)
}

func TestLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "textrank.log")
	_, _, err := run(t, sample, "--log-level", "debug", "--log-file", logPath, "keywords")
	require.NoError(t, err)

	b, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"logger":"textrank"`)
	assert.Contains(t, string(b), "textrank: converged")
}

func TestBadLogLevel(t *testing.T) {
	_, _, err := run(t, sample, "--log-level", "loud", "keywords")
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := newLogger(config.Log{Level: "warn"}, &buf)
	require.NoError(t, err)
	log.Info("hidden")
	log.Warn("shown")
	require.NoError(t, log.Sync())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	log, err = newLogger(config.Log{Level: "debug", Development: true}, &buf)
	require.NoError(t, err)
	log.Debug("console")
	assert.Contains(t, buf.String(), "DEBUG")
}

// ---------------------------------------------------------------------------
// eval
// ---------------------------------------------------------------------------

func TestEval(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1.txt"), []byte(sample), 0o600))
	gold := writeTemp(t, "gold.json", `{"1": [["linear"], ["stability"]]}`)

	out, _, err := run(t, "", "eval", "--docs", dir, "--gold", gold, "--windows", "1,2", "-o", "json")
	require.NoError(t, err)

	var reports []evaluate.Report
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, 1, reports[0].Window)
	assert.Equal(t, 2, reports[1].Window)
	assert.Nil(t, reports[0].Documents)
	assert.InDelta(t, 0.5, reports[1].Recall, 1e-12)

	out, _, err = run(t, "", "eval", "--docs", dir, "--gold", gold)
	require.NoError(t, err)
	assert.Contains(t, out, "PRECISION")
}

func TestEvalRequiresFlags(t *testing.T) {
	_, _, err := run(t, "", "eval", "--docs", t.TempDir())
	assert.Error(t, err)
}
