// core/engine/engine.go

// Package engine defines the contract between the orchestration layer and
// the geometric design engine. The engine is a black box: PLY parsing,
// scaffold routing, staple assignment and atomic-model generation happen
// behind this interface and are assumed correct.
package engine

import (
	"context"
	"fmt"
)

// Geometry is the engine's decomposition of a polyhedral mesh into design
// inputs. FileName is the artifact stem the engine assigned; callers treat
// it as opaque beyond path interpolation.
type Geometry struct {
	Coordinates [][3]float64
	Edges       [][2]int
	Faces       [][]int
	EdgeLengths []int // nucleotides per edge
	FileName    string
	StapleName  string
	SingleXOs   bool
}

// CageParams carries everything DesignCage needs for scaffold routing and
// staple assignment. An empty ScaffoldSeq lets the engine choose (M13 for
// short designs, random otherwise).
type CageParams struct {
	Geometry     Geometry
	ScaffoldSeq  string
	ScaffoldName string
	SingleXOs    bool
	AForm        bool
	Twist        int
	OutputDir    string
	Verbose      bool
}

// Engine is the design-engine collaborator. Calls are synchronous and run
// to completion or failure; the orchestration layer adds no timeouts.
type Engine interface {
	// GeometryToInput parses the geometry file and derives design inputs,
	// writing intermediate artifacts under outputDir. Malformed input is
	// reported as a *FormatError.
	GeometryToInput(ctx context.Context, file, outputDir string, minEdgeLen int, aForm bool) (Geometry, error)

	// DesignCage routes the scaffold through the geometry and assigns
	// staples, returning the file-name stem of the artifacts it wrote.
	DesignCage(ctx context.Context, p CageParams) (string, error)

	// GenerateAtomicModel writes the PDB atomic model for a completed
	// design. Callers treat failure here as non-fatal.
	GenerateAtomicModel(ctx context.Context, fileName string, aForm bool, outputDir string) error
}

// FormatError reports that the geometry input violated the engine's format
// expectations, as opposed to an internal engine failure.
type FormatError struct {
	File   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("geometry format: %s: %s", e.File, e.Reason)
}
