// result.go
package daedalus

import "path/filepath"

// Result locates the artifacts of a completed design. Artifact paths are
// derived from the engine-assigned stem on demand, never stored, so they
// cannot drift from what the engine actually wrote. No existence checks are
// made; the PDB in particular is best-effort.
type Result struct {
	Project   string
	OutputDir string // resolved <output>/<project> directory
	Stem      string // engine-assigned file-name stem
}

// CSVFile returns the staple sequence table path.
func (r *Result) CSVFile() string {
	return filepath.Join(r.OutputDir, "staples_"+r.Stem+".csv")
}

// CanDoFile returns the CanDo structural description path.
func (r *Result) CanDoFile() string {
	return filepath.Join(r.OutputDir, r.Stem+".cndo")
}

// PDBFile returns the atomic-model path.
func (r *Result) PDBFile() string {
	return filepath.Join(r.OutputDir, r.Stem+".pdb")
}

// PlotFile returns the visualization path.
func (r *Result) PlotFile() string {
	return filepath.Join(r.OutputDir, r.Stem+".png")
}
