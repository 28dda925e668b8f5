package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// execute runs the root command with args in an empty home directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestFoodsCommand(t *testing.T) {
	out, err := execute(t, "foods")
	require.NoError(t, err)

	for _, want := range []string{"apple", "golden apple", "green food", "grow +1", "grow +5", "speed 50ms for 6s"} {
		assert.Contains(t, out, want)
	}
}

func TestSimYAMLIsReproducible(t *testing.T) {
	args := []string{"sim", "--seed", "7", "--ticks", "80", "--format", "yaml", "--log-level", "error"}

	first, err := execute(t, args...)
	require.NoError(t, err)
	second, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var snap struct {
		Tick  uint64 `yaml:"tick"`
		Score int    `yaml:"score"`
		State string `yaml:"state"`
		Dir   string `yaml:"dir"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(first), &snap))
	assert.LessOrEqual(t, snap.Tick, uint64(80))
	assert.NotZero(t, snap.Tick)
	assert.Contains(t, []string{"playing", "game_over"}, snap.State)
	assert.Contains(t, []string{"up", "down", "left", "right"}, snap.Dir)
}

func TestSimTextPrintsBoard(t *testing.T) {
	out, err := execute(t, "sim", "--seed", "3", "--ticks", "10", "--format", "text", "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "Score:")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "@")
}

func TestSimRejectsBadFlags(t *testing.T) {
	_, err := execute(t, "sim", "--ticks", "10", "--format", "xml", "--log-level", "error")
	assert.ErrorContains(t, err, "--format")

	_, err = execute(t, "sim", "--ticks=-1", "--format", "text", "--log-level", "error")
	assert.ErrorContains(t, err, "--ticks")
}

func TestBadLogLevel(t *testing.T) {
	_, err := execute(t, "sim", "--ticks", "1", "--format", "text", "--log-level", "loud")
	assert.ErrorContains(t, err, "--log-level")
}

func TestPlayUnknownGame(t *testing.T) {
	_, err := execute(t, "play", "tetris", "--log-level", "error")
	assert.ErrorContains(t, err, `unknown game "tetris"`)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
