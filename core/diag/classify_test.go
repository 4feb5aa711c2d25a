// core/diag/classify_test.go
package diag

import (
	"errors"
	"strings"
	"testing"
)

func TestClassifyGeometryError(t *testing.T) {
	e := ClassifyGeometryError(errors.New("bad vertex count"), "cube.ply", true)
	if e.Kind != KindGeometryFile {
		t.Errorf("format failure: kind = %v, want geometry-file", e.Kind)
	}
	if !strings.Contains(e.Message, "PLY format validation failed") {
		t.Errorf("unexpected message: %q", e.Message)
	}

	e = ClassifyGeometryError(errors.New("'map' object is not subscriptable"), "cube.ply", false)
	if e.Kind != KindDesignConstraint {
		t.Errorf("subscriptable failure: kind = %v, want design-constraint", e.Kind)
	}
	if !strings.Contains(e.Details, "shorter than the minimum edge length") {
		t.Errorf("short-edge hint missing: %q", e.Details)
	}

	e = ClassifyGeometryError(errors.New("boom"), "cube.ply", false)
	if e.Kind != KindDesignConstraint || !strings.Contains(e.Details, "boom") {
		t.Errorf("fallback should keep raw text in details: %+v", e)
	}
}

func TestClassifyCageError(t *testing.T) {
	info := CageInfo{Project: "p", Form: "Bform", Turns: 4, NumEdges: 6, ScaffoldLen: 120}

	cases := []struct {
		raw  string
		kind Kind
		want string // substring of the message
	}{
		{"scaffold is too short for routing", KindScaffoldSequence, "scaffold too short during design"},
		{"Scaffold LENGTH mismatch", KindScaffoldSequence, "scaffold too short during design"},
		{"staple overlap at vertex 3", KindStapleGeneration, "staple generation failed"},
		{"no valid routing through mesh", KindDesignConstraint, "scaffold routing failed"},
		{"could not extend path", KindDesignConstraint, "scaffold routing failed"},
		{"numerical blowup in solver", KindDesignConstraint, "design algorithm failed"},
	}
	for _, c := range cases {
		e := ClassifyCageError(errors.New(c.raw), info)
		if e.Kind != c.kind {
			t.Errorf("%q: kind = %v, want %v", c.raw, e.Kind, c.kind)
		}
		if !strings.Contains(e.Message, c.want) {
			t.Errorf("%q: message %q should contain %q", c.raw, e.Message, c.want)
		}
		if !strings.Contains(e.Details, c.raw) && !strings.Contains(e.Details, strings.ToLower(c.raw)) {
			t.Errorf("%q: raw text should survive in details: %q", c.raw, e.Details)
		}
	}

	// Default scaffold reported as such, not as 0 nt.
	e := ClassifyCageError(errors.New("scaffold too short"), CageInfo{})
	if !strings.Contains(e.Message, "default") {
		t.Errorf("expected default-scaffold wording: %q", e.Message)
	}
}
