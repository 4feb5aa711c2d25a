// core/diag/diag.go
package diag

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies one member of the closed error taxonomy.
type Kind int

const (
	KindGeneral Kind = iota
	KindGeometryFile
	KindScaffoldSequence
	KindHelicalParameter
	KindDesignConstraint
	KindStapleGeneration
	KindOutputDirectory
)

func (k Kind) String() string {
	switch k {
	case KindGeometryFile:
		return "geometry-file"
	case KindScaffoldSequence:
		return "scaffold-sequence"
	case KindHelicalParameter:
		return "helical-parameter"
	case KindDesignConstraint:
		return "design-constraint"
	case KindStapleGeneration:
		return "staple-generation"
	case KindOutputDirectory:
		return "output-directory"
	default:
		return "general"
	}
}

// Error is a diagnosable domain error: a human message, technical detail,
// and ordered remediation suggestions. Values are never mutated after
// construction.
type Error struct {
	Kind        Kind
	Message     string
	Details     string
	Suggestions []string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Details != "" {
		b.WriteString("\n\nTechnical details:\n")
		b.WriteString(e.Details)
	}
	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions to fix this:")
		for i, s := range e.Suggestions {
			fmt.Fprintf(&b, "\n  %d. %s", i+1, s)
		}
	}
	return b.String()
}

// KindOf extracts the taxonomy kind from err, unwrapping as needed.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return KindGeneral, false
}

// General builds an error outside the six specific kinds.
func General(message, details string, suggestions ...string) *Error {
	return &Error{Kind: KindGeneral, Message: message, Details: details, Suggestions: suggestions}
}

// GeometryFile reports a problem with the PLY geometry input.
func GeometryFile(filename, issue, details string) *Error {
	return &Error{
		Kind:    KindGeometryFile,
		Message: fmt.Sprintf("problem with geometry file %q: %s", filename, issue),
		Details: details,
		Suggestions: []string{
			fmt.Sprintf("check that %q exists and is readable", filename),
			"verify the file is in PLY format",
			"open the file in a 3D viewer (e.g. MeshLab) to confirm the mesh is valid",
		},
	}
}

// ScaffoldSequence reports a problem with the scaffold input, at validation
// time or at the post-geometry length check.
func ScaffoldSequence(issue, seqInfo, details string) *Error {
	msg := "scaffold sequence problem: " + issue
	if seqInfo != "" {
		msg += " (" + seqInfo + ")"
	}
	return &Error{
		Kind:    KindScaffoldSequence,
		Message: msg,
		Details: details,
		Suggestions: []string{
			"use nucleotides A, T, G, C, U only",
			"verify the sequence length is at least 2x the total edge length",
			"leave the scaffold unset (or use M13.txt) to let the engine pick a default",
			"large designs get an engine-generated random scaffold automatically",
		},
	}
}

// HelicalParameter reports a turn count below the form's minimum.
func HelicalParameter(form string, turns, min int) *Error {
	return &Error{
		Kind:    KindHelicalParameter,
		Message: fmt.Sprintf("invalid helical parameters: %s with %d turns (minimum %d required)", form, turns, min),
		Details: fmt.Sprintf("helical form %s needs at least %d turns per edge so crossovers form with stable spacing", form, min),
		Suggestions: []string{
			fmt.Sprintf("use at least %d helical turns for %s", min, form),
			"B-form (DNA): minimum 3 turns at 10.5 bp/turn",
			"A-form (RNA): minimum 4 turns at 11 bp/turn",
			"use longer edges or switch the helical form",
		},
	}
}

// DesignConstraint reports a structurally infeasible geometry or an
// unclassified engine failure.
func DesignConstraint(constraint, geomInfo, details string) *Error {
	msg := "design constraint violation: " + constraint
	if geomInfo != "" {
		msg += "\ngeometry: " + geomInfo
	}
	return &Error{
		Kind:    KindDesignConstraint,
		Message: msg,
		Details: details,
		Suggestions: []string{
			"increase the number of helical turns per edge",
			"use a simpler geometry with fewer faces or shorter edges",
			"verify the PLY file defines a closed, manifold polyhedron",
			"B-form allows shorter edges than A-form",
		},
	}
}

// StapleGeneration reports a failure inside staple/sequence assignment.
func StapleGeneration(stage, details string) *Error {
	return &Error{
		Kind:    KindStapleGeneration,
		Message: "staple generation failed at stage: " + stage,
		Details: details,
		Suggestions: []string{
			"check the scaffold sequence is long enough for the design",
			"try double-crossover vertex staples instead of single",
			"let the engine choose the scaffold sequence",
		},
	}
}

// OutputDirectory reports that the output location cannot be created or
// written.
func OutputDirectory(dir, issue string) *Error {
	return &Error{
		Kind:    KindOutputDirectory,
		Message: "output directory problem: " + issue,
		Details: "cannot access or create directory: " + dir,
		Suggestions: []string{
			fmt.Sprintf("check write permissions for %q", dir),
			"verify the parent directory exists",
			"check available disk space",
			"try a different output directory",
		},
	}
}
