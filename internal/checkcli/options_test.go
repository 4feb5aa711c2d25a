// internal/checkcli/options_test.go
package checkcli

import (
	"bytes"
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("daedalus-check")
	fs.SetOutput(&bytes.Buffer{})
	return ParseArgs(fs, argv)
}

func TestParseArgsDefaults(t *testing.T) {
	opt, err := parse(t, "--project", "tetra", "--geometry", "tetra.ply")
	require.NoError(t, err)
	assert.Equal(t, "tetra", opt.Project)
	assert.Equal(t, "tetra.ply", opt.Geometry)
	assert.Equal(t, "Bform", opt.Form)
	assert.Equal(t, 4, opt.Turns)
	assert.Equal(t, "", opt.Scaffold)
	assert.Equal(t, "text", opt.Output)
	assert.False(t, opt.NoProbe)
	assert.False(t, opt.Quiet)
}

func TestParseArgsAliases(t *testing.T) {
	opt, err := parse(t, "-n", "tetra", "-g", "tetra.ply", "-o", "json", "-q")
	require.NoError(t, err)
	assert.Equal(t, "tetra", opt.Project)
	assert.Equal(t, "tetra.ply", opt.Geometry)
	assert.Equal(t, "json", opt.Output)
	assert.True(t, opt.Quiet)
}

func TestParseArgsManifestMode(t *testing.T) {
	opt, err := parse(t, "--manifest", "designs.yaml")
	require.NoError(t, err)
	assert.Equal(t, "designs.yaml", opt.Manifest)
}

func TestParseArgsManifestConflict(t *testing.T) {
	_, err := parse(t, "--manifest", "designs.yaml", "--project", "tetra")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conflicts")
}

func TestParseArgsMissingRequired(t *testing.T) {
	_, err := parse(t)
	require.Error(t, err)

	_, err = parse(t, "--project", "tetra")
	require.Error(t, err)
}

func TestParseArgsBadValues(t *testing.T) {
	_, err := parse(t, "--project", "p", "--geometry", "p.ply", "--turns", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--turns must be >= 1")

	_, err = parse(t, "--project", "p", "--geometry", "p.ply", "--output", "xml")
	require.Error(t, err)
}

func TestParseArgsHelp(t *testing.T) {
	_, err := parse(t, "-h")
	assert.True(t, errors.Is(err, flag.ErrHelp))
}

func TestParseArgsVersionSkipsValidation(t *testing.T) {
	opt, err := parse(t, "--version")
	require.NoError(t, err)
	assert.True(t, opt.Version)
}

func TestUsageListsGroups(t *testing.T) {
	var buf bytes.Buffer
	fs := NewFlagSet("daedalus-check")
	fs.SetOutput(&buf)
	fs.Usage()

	out := buf.String()
	assert.Contains(t, out, "Request:")
	assert.Contains(t, out, "Batch:")
	assert.Contains(t, out, "Output:")
	assert.Contains(t, out, "--form")
	assert.Contains(t, out, "--manifest")
}
