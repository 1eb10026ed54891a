package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccalmels/volcano/config"
	"github.com/ccalmels/volcano/parser"
	"github.com/ccalmels/volcano/solver"
)

const sampleInput = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`

// newTestRoot creates a fresh cobra root command wired to all subcommands.
// Each test gets an isolated command tree to avoid shared state.
func newTestRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "volcano",
		SilenceUsage: true,
	}
	root.PersistentFlags().Bool("verbose", false, "")
	root.PersistentFlags().Bool("quiet", false, "")
	root.AddCommand(NewSolveCmd())
	root.AddCommand(NewDistancesCmd())
	return root
}

// executeCommand runs a cobra command with the given args and captures stdout/stderr.
func executeCommand(root *cobra.Command, args ...string) (stdout, stderr string, err error) {
	var outBuf, errBuf bytes.Buffer
	root.SetOut(&outBuf)
	root.SetErr(&errBuf)
	root.SetArgs(args)
	err = root.Execute()
	return outBuf.String(), errBuf.String(), err
}

// writeTestFile creates a temporary file with the given content and returns its path.
func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "expected ExitError, got %v", err)
	assert.Equal(t, code, exitErr.Code)
}

func TestSolve_Text(t *testing.T) {
	path := writeTestFile(t, "valves.txt", sampleInput)

	stdout, _, err := executeCommand(newTestRoot(), "solve", path)
	require.NoError(t, err)
	assert.Equal(t, "solo (30 min): 1651\nteam (26 min): 1707\n", stdout)
}

func TestSolve_ExplainAndWorkers(t *testing.T) {
	path := writeTestFile(t, "valves.txt", sampleInput)

	stdout, _, err := executeCommand(newTestRoot(), "solve", path, "--explain", "--workers", "3")
	require.NoError(t, err)
	assert.Contains(t, stdout, "team (26 min): 1707")
	assert.Contains(t, stdout, "solo: DD → BB → JJ → HH → EE → CC")
	assert.Contains(t, stdout, "agent 1 (")
	assert.Contains(t, stdout, "agent 2 (")
}

func TestSolve_JSON(t *testing.T) {
	path := writeTestFile(t, "valves.txt", sampleInput)

	stdout, _, err := executeCommand(newTestRoot(), "solve", path, "--format", "json")
	require.NoError(t, err)

	var rep solver.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &rep))
	assert.Equal(t, 1651, rep.Solo.Flow)
	assert.Equal(t, 1707, rep.TeamFlow)
	assert.NotEmpty(t, rep.RunID)
}

func TestSolve_Stdin(t *testing.T) {
	root := newTestRoot()
	root.SetIn(strings.NewReader(sampleInput))

	stdout, _, err := executeCommand(root, "solve", "-", "--budget", "20", "--team-budget", "20")
	require.NoError(t, err)
	assert.Contains(t, stdout, "solo (20 min):")
	assert.Contains(t, stdout, "team (20 min):")
}

func TestSolve_ConfigFileAndOverride(t *testing.T) {
	path := writeTestFile(t, "valves.txt", sampleInput)
	cfgPath := writeTestFile(t, "volcano.yaml", "budget: 26\nteam_budget: 30\n")

	stdout, _, err := executeCommand(newTestRoot(), "solve", path, "--config", cfgPath, "--team-budget", "26")
	require.NoError(t, err)
	assert.Contains(t, stdout, "solo (26 min):")
	assert.Contains(t, stdout, "team (26 min): 1707")
}

func TestSolve_Errors(t *testing.T) {
	path := writeTestFile(t, "valves.txt", sampleInput)
	bad := writeTestFile(t, "bad.txt", "Valve AA is broken\n")
	badCfg := writeTestFile(t, "bad.yaml", "workers: 0\n")

	_, _, err := executeCommand(newTestRoot(), "solve", filepath.Join(t.TempDir(), "missing.txt"))
	requireExitCode(t, err, exitFileNotFound)

	_, _, err = executeCommand(newTestRoot(), "solve", bad)
	requireExitCode(t, err, exitInputParse)
	assert.ErrorIs(t, err, parser.ErrMalformedLine)

	_, _, err = executeCommand(newTestRoot(), "solve", path, "--format", "xml")
	requireExitCode(t, err, exitInvalid)

	_, _, err = executeCommand(newTestRoot(), "solve", path, "--config", badCfg)
	requireExitCode(t, err, exitInvalid)
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = executeCommand(newTestRoot(), "solve", path, "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	requireExitCode(t, err, exitFileNotFound)

	_, _, err = executeCommand(newTestRoot(), "solve", path, "--start", "ZZ")
	requireExitCode(t, err, exitRuntime)

	_, _, err = executeCommand(newTestRoot(), "solve", path, "--budget", "-4")
	requireExitCode(t, err, exitInvalid)
}

// brokenWriter fails every write.
type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSolve_JSONWriteFailureIsRuntime(t *testing.T) {
	path := writeTestFile(t, "valves.txt", sampleInput)

	root := newTestRoot()
	root.SetOut(brokenWriter{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"solve", path, "--format", "json"})
	err := root.Execute()
	requireExitCode(t, err, exitRuntime)
	assert.ErrorContains(t, err, "disk full")
}

func TestSolve_VerboseLogsToStderr(t *testing.T) {
	path := writeTestFile(t, "valves.txt", sampleInput)

	_, stderr, err := executeCommand(newTestRoot(), "solve", path, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "msg=solved")
	assert.Contains(t, stderr, "run_id=")

	_, stderr, err = executeCommand(newTestRoot(), "solve", path)
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestDistances(t *testing.T) {
	path := writeTestFile(t, "valves.txt", sampleInput)

	stdout, _, err := executeCommand(newTestRoot(), "distances", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 8, "header + start + six useful valves")
	assert.Equal(t, []string{"AA", "BB", "CC", "DD", "EE", "HH", "JJ"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"AA(0)", "0", "1", "2", "1", "2", "5", "2"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"HH(22)", "5", "6", "5", "4", "3", "0", "7"}, strings.Fields(lines[6]))

	_, _, err = executeCommand(newTestRoot(), "distances", path, "--start", "QQ")
	requireExitCode(t, err, exitInvalid)
}
