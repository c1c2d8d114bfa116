package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathanmweiss/go-groebner/bench"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return buf.String(), err
}

func TestBasisCommand(t *testing.T) {
	a := assert.New(t)

	out, err := execute(t, "basis", "--vars", "2", "--strategy", "degree", "--seed", "3", "--monic",
		"x1^2 - x2", "x1*x2 - 1")
	require.NoError(t, err)

	a.Contains(out, "# strategy=degree basis=3 iterations=3")
	a.Contains(out, "x2^2 + 22*x1")

	_, err = execute(t, "basis", "--vars", "2", "--strategy", "sugar", "x1")
	a.Error(err)

	_, err = execute(t, "basis", "--vars", "2", "--prime", "21", "--strategy", "first", "x1")
	a.Error(err)

	_, err = execute(t, "basis", "--prime", "23", "--vars", "2", "x1 +")
	a.Error(err)
}

func TestBenchCommand(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()

	cfgPath := filepath.Join(dir, "bench.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("nvar: 2\nmax_degree: 2\nideals: 10\n"), 0o644))

	jsonPath := filepath.Join(dir, "report.json")
	htmlPath := filepath.Join(dir, "report.html")

	out, err := execute(t, "bench", "--config", cfgPath, "--ideals", "4", "--workers", "2",
		"--out", jsonPath, "--chart", htmlPath, "--log-level", "error")
	require.NoError(t, err)

	for _, s := range []string{"random", "first", "degree"} {
		a.Contains(out, s)
	}

	fd, err := os.Open(jsonPath)
	require.NoError(t, err)
	defer fd.Close()

	rep, err := bench.ReadJSON(fd)
	require.NoError(t, err)
	a.Len(rep.Trials, 4)
	a.Equal(2, rep.Config.NVar)

	html, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	a.True(strings.Contains(string(html), "<html"))
}

func TestBadLogLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "loud", "basis", "x1")
	assert.Error(t, err)
}
