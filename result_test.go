// result_test.go
package daedalus_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"daedalus"
)

func TestResultArtifactPaths(t *testing.T) {
	r := &daedalus.Result{
		Project:   "tetra",
		OutputDir: filepath.Join("out", "tetra"),
		Stem:      "42_tetrahedron",
	}

	assert.Equal(t, filepath.Join("out", "tetra", "staples_42_tetrahedron.csv"), r.CSVFile())
	assert.Equal(t, filepath.Join("out", "tetra", "42_tetrahedron.cndo"), r.CanDoFile())
	assert.Equal(t, filepath.Join("out", "tetra", "42_tetrahedron.pdb"), r.PDBFile())
	assert.Equal(t, filepath.Join("out", "tetra", "42_tetrahedron.png"), r.PlotFile())
}

func TestRequestWithDefaults(t *testing.T) {
	req := daedalus.Request{Project: "p", GeometryFile: "p.ply"}.WithDefaults()
	assert.Equal(t, "Bform", string(req.Form))
	assert.Equal(t, 4, req.Turns)

	// Explicit values survive.
	req = daedalus.Request{Form: "Aform", Turns: 7}.WithDefaults()
	assert.Equal(t, "Aform", string(req.Form))
	assert.Equal(t, 7, req.Turns)
}
