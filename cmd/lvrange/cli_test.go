package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrange/steprange"
)

// runCLI executes run and returns stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestRun_Domains(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"int forward", []string{"int", "1", "5"}, "1 2 3 4 5\n"},
		{"int backward", []string{"int", "10", "5"}, "10 9 8 7 6 5\n"},
		{"int corrected step", []string{"int", "2", "5", "--step=-2"}, "2 4\n"},
		{"int equal", []string{"int", "3", "3", "-s", "7"}, "3\n"},
		{"int unbounded default take", []string{"int", "0", "-s", "5"}, "0 5 10 15 20 25 30 35 40 45\n"},
		{"int unbounded take", []string{"--take", "3", "int", "0", "-s", "5"}, "0 5 10\n"},
		{"int zero step", []string{"int", "4", "-s", "0"}, "4\n"},
		{"float", []string{"float", "0", "1", "-s", "0.25"}, "0 0.25 0.5 0.75 1\n"},
		{"int negative start", []string{"int", "-5", "5", "-s", "5"}, "-5 0 5\n"},
		{"int negative endpoints and step", []string{"int", "-1", "-3", "-s", "-1"}, "-1 -2 -3\n"},
		{"int negative unbounded", []string{"--take", "3", "int", "-10", "--step", "-10"}, "-10 -20 -30\n"},
		{"int explicit separator", []string{"int", "--", "-2", "0"}, "-2 -1 0\n"},
		{"float negative", []string{"float", "-1", "1", "-s", "0.5"}, "-1 -0.5 0 0.5 1\n"},
		{"time negative step", []string{"--take", "2", "time", "2024-01-01T00:00:00Z", "-s", "-6h"},
			"2024-01-01T00:00:00Z 2023-12-31T18:00:00Z\n"},
		{"char", []string{"--sep", ",", "char", "a", "e", "-s", "2"}, "a,c,e\n"},
		{"time", []string{"--take", "3", "time", "2024-01-01T00:00:00Z", "-s", "6h"},
			"2024-01-01T00:00:00Z 2024-01-01T06:00:00Z 2024-01-01T12:00:00Z\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := runCLI(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestNormalizeArgs(t *testing.T) {
	assert.Equal(t,
		[]string{"int", "--step=-2", "--", "-5", "5"},
		normalizeArgs([]string{"int", "-5", "5", "-s", "-2"}))
	assert.Equal(t,
		[]string{"float", "--take=3", "-v", "--", "-1.5"},
		normalizeArgs([]string{"--take", "3", "-v", "float", "-1.5"}))
	assert.Equal(t,
		[]string{"int", "--", "-1", "1"},
		normalizeArgs([]string{"int", "--", "-1", "1"}), "explicit -- is kept")
	assert.Equal(t, []string{"--help"}, normalizeArgs([]string{"--help"}))
	assert.Empty(t, normalizeArgs(nil))
}

func TestRun_Errors(t *testing.T) {
	_, _, err := runCLI(t, "char", "ab", "z")
	assert.ErrorIs(t, err, steprange.ErrInvalidEndpoint)

	_, _, err = runCLI(t, "float", "0", "NaN")
	assert.ErrorIs(t, err, steprange.ErrInvalidEndpoint)

	_, _, err = runCLI(t, "int", "one", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `int: start "one"`)

	_, _, err = runCLI(t, "time", "2024-01-01T00:00:00Z", "tomorrow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `time: end "tomorrow"`)

	_, _, err = runCLI(t, "--take", "-1", "int", "1", "2")
	assert.Error(t, err)

	_, _, err = runCLI(t, "bogus")
	assert.Error(t, err)
}

func TestRun_EnvConfig(t *testing.T) {
	t.Setenv("LVRANGE_SEP", "|")
	t.Setenv("LVRANGE_TAKE", "2")

	out, _, err := runCLI(t, "int", "1", "9")
	require.NoError(t, err)
	assert.Equal(t, "1|2\n", out)
}

func TestRun_VerboseLogs(t *testing.T) {
	_, logs, err := runCLI(t, "-v", "int", "5", "1")
	require.NoError(t, err)
	assert.Contains(t, logs, "Range built")
	assert.Contains(t, logs, "direction=Backward")
	assert.Contains(t, logs, "bounded=true")

	_, logs, err = runCLI(t, "int", "5", "1")
	require.NoError(t, err)
	assert.Empty(t, logs)
}
