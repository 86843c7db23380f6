package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/axisgrid/calendar"
	"github.com/katalvlaran/axisgrid/clip"
	"github.com/katalvlaran/axisgrid/label"
	"github.com/katalvlaran/axisgrid/ticks"
)

// run executes the root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestTicksCmd(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"max count", []string{"ticks", "0", "10", "--max-count", "5"}, "0\n5\n10\n"},
		{"si labels", []string{"ticks", "0.1", "0.3", "--max-count", "4", "--labels", "si"},
			"100m\n150m\n200m\n250m\n300m\n"},
		{"negative start", []string{"ticks", "--max-count", "5", "--", "-7", "23"}, "0\n10\n20\n"},
		{"expand", []string{"ticks", "1.5", "8.7", "--max-count", "5", "--expand"}, "0\n2\n4\n6\n8\n10\n"},
		{"radix", []string{"ticks", "0", "60", "--max-count", "4", "--radix", "60"}, "0\n15\n30\n45\n60\n"},
		{"min interval", []string{"ticks", "0", "10", "--min-interval", "2.5"}, "0\n5\n10\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTicksCmd_Errors(t *testing.T) {
	_, err := run(t, "ticks", "5", "1", "--max-count", "3")
	assert.ErrorIs(t, err, ticks.ErrInvalidInterval)

	_, err = run(t, "ticks", "0", "10")
	assert.ErrorIs(t, err, ticks.ErrNoConstraint)

	_, err = run(t, "ticks", "0", "10", "--max-count", "5", "--radix", "1")
	assert.ErrorIs(t, err, ticks.ErrInvalidRadix)

	_, err = run(t, "ticks", "zero", "10", "--max-count", "5")
	assert.Error(t, err)

	_, err = run(t, "ticks", "0", "10", "--labels", "roman")
	assert.Error(t, err)
}

// TestTicksCmd_Env checks that AXISGRID_* variables fill unset flags and
// that flags still win.
func TestTicksCmd_Env(t *testing.T) {
	t.Setenv("AXISGRID_TICKS_MAX_COUNT", "5")
	t.Setenv("AXISGRID_TICKS_LABELS", "grouped")

	got, err := run(t, "ticks", "0", "10000")
	require.NoError(t, err)
	assert.Contains(t, got, "10,000\n")

	got, err = run(t, "ticks", "0", "10", "--max-count", "1")
	require.NoError(t, err)
	assert.Equal(t, "0\n10\n", got)

	t.Setenv("AXISGRID_TICKS_LABELS", "roman")
	_, err = run(t, "ticks", "0", "10")
	assert.ErrorIs(t, err, label.ErrUnknownUnitSystem)
}

func TestTicksCmd_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "axisgrid.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ticks]\nmax-count = 4\nradix = 60\n"), 0o600))

	got, err := run(t, "--config", path, "ticks", "0", "60")
	require.NoError(t, err)
	assert.Equal(t, "0\n15\n30\n45\n60\n", got)

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "ticks", "0", "60")
	assert.Error(t, err)
}

func TestFactorsCmd(t *testing.T) {
	got, err := run(t, "factors", "12")
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n4\n6\n12\n", got)

	got, err = run(t, "factors", "--", "-10")
	require.NoError(t, err)
	assert.Equal(t, "-10\n-5\n-2\n-1\n", got)

	got, err = run(t, "factors", "common", "12", "18")
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n6\n", got)

	got, err = run(t, "factors", "0")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDateCmd(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"floor", []string{"date", "floor", "2020-01-16T11:59:00+02:00", "--amount", "15", "--unit", "minutes"},
			"2020-01-16T11:45:00+02:00\n"},
		{"ceil", []string{"date", "ceil", "2020-01-16T11:59:00+02:00", "--amount", "15", "--unit", "minute"},
			"2020-01-16T12:00:00+02:00\n"},
		{"round months", []string{"date", "round", "2020-01-31T23:59:00Z", "--amount", "2", "--unit", "months"},
			"2020-01-01T00:00:00Z\n"},
		{"default day", []string{"date", "floor", "2020-01-16T11:59:00-05:00"},
			"2020-01-16T00:00:00-05:00\n"},
		{"series", []string{"date", "series", "2021-01-10T00:00:00+05:00", "2021-04-10T00:00:00+05:00",
			"--unit", "month", "--format", "%b %Y"}, "Feb 2021\nMar 2021\nApr 2021\n"},
		{"step", []string{"date", "step", "90m"}, "10 minutes\n"},
		{"step max count", []string{"date", "step", "48h", "--max-count", "2"}, "1 day\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDateCmd_Errors(t *testing.T) {
	_, err := run(t, "date", "floor", "2020-01-16T11:59:00Z", "--unit", "weeks")
	assert.ErrorContains(t, err, "unknown calendar unit")

	_, err = run(t, "date", "floor", "2020-01-16T11:59:00Z", "--amount", "0")
	assert.ErrorIs(t, err, calendar.ErrInvalidAmount)

	_, err = run(t, "date", "series", "2021-04-10T00:00:00Z", "2021-01-10T00:00:00Z")
	assert.ErrorIs(t, err, calendar.ErrInvalidRange)

	_, err = run(t, "date", "series", "2021-01-10T00:00:00Z", "2021-04-10T00:00:00Z", "--format", "%Q")
	assert.ErrorIs(t, err, label.ErrBadLayout)

	_, err = run(t, "date", "floor", "yesterday")
	assert.Error(t, err)

	t.Setenv("AXISGRID_DATE_UNIT", "fortnights")
	_, err = run(t, "date", "floor", "2020-01-16T11:59:00Z")
	assert.ErrorIs(t, err, calendar.ErrUnknownUnit)
}

func TestClipCmd(t *testing.T) {
	got, err := run(t, "clip", "1", "1", "3", "5", "--rect", "2,2,4,4")
	require.NoError(t, err)
	assert.Equal(t, "2 3 2.5 4\n", got)

	got, err = run(t, "clip", "1", "1", "3", "5", "--rect", "4,3,3,2")
	require.NoError(t, err)
	assert.Equal(t, "outside\n", got)

	_, err = run(t, "clip", "1", "1", "3", "5")
	assert.Error(t, err)

	_, err = run(t, "clip", "1", "1", "3", "5", "--rect", "2,2,4")
	assert.Error(t, err)
}

func TestFlagValues(t *testing.T) {
	u := unitValue(calendar.Days)
	require.NoError(t, u.Set("Hour"))
	assert.Equal(t, "hours", u.String())
	assert.Equal(t, "unit", u.Type())
	assert.ErrorIs(t, u.Set("weeks"), calendar.ErrUnknownUnit)

	s := systemValue(label.Plain)
	require.NoError(t, s.Set("SI"))
	assert.Equal(t, "si", s.String())

	var r rectValue
	assert.Equal(t, "", r.String())
	require.NoError(t, r.Set("4, 4, 2, 2.5"))
	assert.Equal(t, clip.NewRect(2, 2.5, 4, 4), r.r)
	assert.Equal(t, "2,2.5,4,4", r.String())
	assert.Error(t, r.Set("a,b,c,d"))
}

func TestVersionCmd(t *testing.T) {
	got, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "axisgrid dev\n", got)
}
