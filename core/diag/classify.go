// core/diag/classify.go
package diag

import (
	"fmt"
	"strings"
)

// Raw engine failures carry no taxonomy. The classifiers below map them into
// one, by structure where the engine offers it and by keyword inspection
// where it does not. The keyword rules are deliberately confined to this
// file so they can be replaced wholesale if the engine ever grows a typed
// error contract; anything unmatched falls back to a generic
// design-constraint error rather than guessing further.

// ClassifyGeometryError maps a geometry-conversion failure onto the
// taxonomy. isFormat marks failures the engine reported as format
// violations of the input file.
func ClassifyGeometryError(err error, geometryFile string, isFormat bool) *Error {
	if isFormat {
		return GeometryFile(geometryFile, "PLY format validation failed",
			"the engine rejected the file as corrupted or malformed: "+err.Error())
	}
	s := err.Error()
	if strings.Contains(s, "map") && strings.Contains(s, "subscriptable") {
		// Legacy engine wording for meshes whose edges fall below the
		// minimum edge length; surface the likely cause, not the raw text.
		return DesignConstraint("geometry processing failed", "file: "+geometryFile,
			"the geometry likely has edges shorter than the minimum edge length for the chosen helical form")
	}
	return DesignConstraint("geometry processing failed", "file: "+geometryFile,
		"unexpected error during PLY processing: "+s)
}

// CageInfo summarizes the design context for cage-failure messages.
type CageInfo struct {
	Project     string
	Form        string
	Turns       int
	NumEdges    int
	ScaffoldLen int // 0 = engine-chosen default
}

// ClassifyCageError maps a cage-design failure onto the taxonomy by keyword
// inspection of the raw error text.
func ClassifyCageError(err error, info CageInfo) *Error {
	s := strings.ToLower(err.Error())
	switch {
	case strings.Contains(s, "scaffold") && (strings.Contains(s, "short") || strings.Contains(s, "length")):
		cur := "default"
		if info.ScaffoldLen > 0 {
			cur = fmt.Sprintf("%d nt", info.ScaffoldLen)
		}
		return ScaffoldSequence("scaffold too short during design",
			"current scaffold: "+cur,
			"design algorithm error: "+err.Error())
	case strings.Contains(s, "staple"):
		return StapleGeneration("staple sequence assignment",
			"error during staple generation: "+err.Error())
	case strings.Contains(s, "routing") || strings.Contains(s, "path"):
		return DesignConstraint("scaffold routing failed",
			fmt.Sprintf("edges: %d, form: %s", info.NumEdges, info.Form),
			"cannot find a valid scaffold path through the geometry: "+err.Error())
	default:
		return DesignConstraint("design algorithm failed",
			fmt.Sprintf("project: %s, form: %s, turns: %d", info.Project, info.Form, info.Turns),
			"unexpected engine error: "+err.Error())
	}
}
