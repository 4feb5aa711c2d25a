// core/scaffold/scaffold_test.go
package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"daedalus-core/diag"
)

func TestParseClassification(t *testing.T) {
	if !Parse("").IsDefault() {
		t.Error("empty input should be the engine default")
	}
	if !Parse("M13.txt").IsDefault() {
		t.Error("M13 keyword should be the engine default")
	}
	if s := Parse("ACGTACGT"); s.IsDefault() || s.kind != kindInline {
		t.Errorf("bare sequence should parse as inline, got %v", s)
	}
	if s := Parse("seqs/missing.txt"); s.kind != kindFile {
		t.Errorf("path-like value should parse as file, got %v", s)
	}

	dir := t.TempDir()
	p := filepath.Join(dir, "scaf.txt")
	if err := os.WriteFile(p, []byte("ACGT"), 0o644); err != nil {
		t.Fatal(err)
	}
	if s := Parse(p); s.kind != kindFile {
		t.Errorf("existing file should parse as file, got %v", s)
	}
}

func TestValidateInline(t *testing.T) {
	if err := Validate(Inline("acgtuACGTU")); err != nil {
		t.Fatalf("valid inline sequence rejected: %v", err)
	}

	err := Validate(Inline("acgxt"))
	if err == nil {
		t.Fatal("expected error for invalid base")
	}
	if k, _ := diag.KindOf(err); k != diag.KindScaffoldSequence {
		t.Errorf("kind = %v, want scaffold-sequence", k)
	}
	var de *diag.Error
	if !asDiag(err, &de) {
		t.Fatal("expected *diag.Error")
	}
	// The offender list lives in the technical details, uppercased.
	if !strings.Contains(de.Details, "found: X") {
		t.Errorf("details should list X, got %q", de.Details)
	}
	if !strings.Contains(de.Details, "sequence length 5") {
		t.Errorf("details should carry the sequence length, got %q", de.Details)
	}
}

func TestValidateInlineReportsSorted(t *testing.T) {
	err := Validate(Inline("AzCqG"))
	if err == nil {
		t.Fatal("expected error")
	}
	var de *diag.Error
	if !asDiag(err, &de) {
		t.Fatal("expected *diag.Error")
	}
	if !strings.Contains(de.Details, "Q, Z") {
		t.Errorf("offenders not sorted: %q", de.Details)
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()

	err := Validate(File(filepath.Join(dir, "missing.txt")))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("missing file: got %v", err)
	}

	empty := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(empty, []byte("  \n\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	err = Validate(File(empty))
	if err == nil || !strings.Contains(err.Error(), "empty") {
		t.Errorf("empty file: got %v", err)
	}

	multi := filepath.Join(dir, "multi.txt")
	if err := os.WriteFile(multi, []byte("acgt\nACGU\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Validate(File(multi)); err != nil {
		t.Errorf("multi-line sequence file rejected: %v", err)
	}

	bad := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(bad, []byte("ACGZ"), 0o644); err != nil {
		t.Fatal(err)
	}
	err = Validate(File(bad))
	if err == nil || !strings.Contains(err.Error(), "Z") {
		t.Errorf("invalid base in file: got %v", err)
	}
}

func TestResolve(t *testing.T) {
	r, err := Resolve(Default(), "proj")
	if err != nil || r.Seq != "" || r.Name != "" {
		t.Errorf("default resolve = %+v, %v; want empty", r, err)
	}

	r, err = Resolve(Inline("acgt"), "proj")
	if err != nil || r.Seq != "ACGT" || r.Name != "proj" {
		t.Errorf("inline resolve = %+v, %v", r, err)
	}

	dir := t.TempDir()
	p := filepath.Join(dir, "scaf.txt")
	if err := os.WriteFile(p, []byte("acg\n tga\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err = Resolve(File(p), "proj")
	if err != nil || r.Seq != "ACGTGA" || r.Name != "proj" {
		t.Errorf("file resolve = %+v, %v; want ACGTGA/proj", r, err)
	}
}

func TestCheckLength(t *testing.T) {
	// Empty sequence defers to the engine; never too short.
	if err := CheckLength(Resolved{}, []int{100, 100}); err != nil {
		t.Errorf("empty sequence: %v", err)
	}

	seq := strings.Repeat("A", 12)
	if err := CheckLength(Resolved{Seq: seq, Name: "p"}, []int{3, 3}); err != nil {
		t.Errorf("exactly 2x total length should pass: %v", err)
	}

	err := CheckLength(Resolved{Seq: strings.Repeat("A", 10), Name: "p"}, []int{3, 3})
	if err == nil {
		t.Fatal("expected too-short error")
	}
	if k, _ := diag.KindOf(err); k != diag.KindScaffoldSequence {
		t.Errorf("kind = %v, want scaffold-sequence", k)
	}
	for _, want := range []string{"10", "12", "2 edges", "total length 6"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %q:\n%s", want, err)
		}
	}
}

func asDiag(err error, target **diag.Error) bool {
	e, ok := err.(*diag.Error)
	if ok {
		*target = e
	}
	return ok
}
