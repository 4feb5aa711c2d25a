// core/scaffold/scaffold.go
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"daedalus-core/diag"
)

// DefaultKeyword is the historical selector for the stock M13 scaffold.
const DefaultKeyword = "M13.txt"

// alphabet is the nucleotide alphabet accepted in scaffold sequences.
const alphabet = "ATGCU"

type kind int

const (
	kindDefault kind = iota
	kindInline
	kindFile
)

// Source is a tagged scaffold input: engine default, inline sequence, or
// sequence file. The zero value is the engine default.
type Source struct {
	kind  kind
	value string
}

// Default defers the scaffold choice to the engine: short designs get the
// stock M13 sequence, long designs an engine-generated random one.
func Default() Source { return Source{} }

// Inline wraps a literal sequence string.
func Inline(seq string) Source { return Source{kind: kindInline, value: seq} }

// File references a text file holding the sequence.
func File(path string) Source { return Source{kind: kindFile, value: path} }

// IsDefault reports whether the engine should choose the scaffold.
func (s Source) IsDefault() bool { return s.kind == kindDefault }

func (s Source) String() string {
	switch s.kind {
	case kindInline:
		return fmt.Sprintf("inline sequence (%d nt)", len(s.value))
	case kindFile:
		return "file " + s.value
	default:
		return "engine default"
	}
}

// Parse classifies a raw scaffold argument the way callers historically
// passed it: empty or the M13 keyword selects the engine default; anything
// that exists on disk or looks like a path is a file; the rest is an inline
// sequence. A path-like value that does not exist still parses as a file so
// that Validate can report the missing file instead of choking on it as a
// malformed sequence.
func Parse(raw string) Source {
	if raw == "" || raw == DefaultKeyword {
		return Default()
	}
	if _, err := os.Stat(raw); err == nil {
		return File(raw)
	}
	if strings.ContainsAny(raw, `/\`) || filepath.Ext(raw) != "" {
		return File(raw)
	}
	return Inline(raw)
}

// Resolved is a concrete scaffold choice. An empty Seq means "let the
// engine decide".
type Resolved struct {
	Seq  string
	Name string
}

// Validate checks a Source before any engine work happens. Default sources
// are always valid; inline sequences get the alphabet check
// case-insensitively; file sources must exist, be readable and non-empty,
// and pass the alphabet check after whitespace stripping.
func Validate(s Source) error {
	switch s.kind {
	case kindDefault:
		return nil
	case kindInline:
		return checkAlphabet(strings.ToUpper(s.value), "scaffold sequence string")
	default:
		raw, err := os.ReadFile(s.value)
		if err != nil {
			if os.IsNotExist(err) {
				return diag.ScaffoldSequence("scaffold sequence file not found", "file: "+s.value, "")
			}
			if os.IsPermission(err) {
				return diag.ScaffoldSequence("cannot read scaffold sequence file", "permission denied: "+s.value, "")
			}
			return diag.ScaffoldSequence("cannot read scaffold sequence file", "file: "+s.value, err.Error())
		}
		seq := normalize(string(raw))
		if seq == "" {
			return diag.ScaffoldSequence("scaffold sequence file is empty", "file: "+s.value, "")
		}
		return checkAlphabet(seq, "scaffold sequence file "+s.value)
	}
}

// Resolve produces the concrete sequence for a validated Source.
func Resolve(s Source, project string) (Resolved, error) {
	switch s.kind {
	case kindDefault:
		return Resolved{}, nil
	case kindInline:
		return Resolved{Seq: strings.ToUpper(s.value), Name: project}, nil
	default:
		raw, err := os.ReadFile(s.value)
		if err != nil {
			return Resolved{}, diag.ScaffoldSequence("cannot read scaffold sequence file", "file: "+s.value, err.Error())
		}
		return Resolved{Seq: normalize(string(raw)), Name: project}, nil
	}
}

// CheckLength enforces the post-geometry lower bound: a concrete scaffold
// must span at least twice the total edge length. It can only run once the
// engine's geometry conversion has produced edge lengths, which is why it
// is a separate call from Validate.
func CheckLength(r Resolved, edgeLengths []int) error {
	if r.Seq == "" {
		return nil
	}
	total := 0
	for _, l := range edgeLengths {
		total += l
	}
	need := 2 * total
	if len(r.Seq) >= need {
		return nil
	}
	return diag.ScaffoldSequence(
		"scaffold sequence too short",
		fmt.Sprintf("provided: %d nt, required: >=%d nt", len(r.Seq), need),
		fmt.Sprintf("geometry needs ~%d nucleotides (%d edges, total length %d bp); rule of thumb: scaffold length >= 2 x total edge length",
			need, len(edgeLengths), total),
	)
}

// normalize strips whitespace and uppercases bases.
func normalize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		out = append(out, unicode.ToUpper(r))
	}
	return string(out)
}

// checkAlphabet reports every distinct rune outside the nucleotide
// alphabet, sorted, rather than a bare "invalid".
func checkAlphabet(seq, what string) error {
	seen := make(map[rune]bool)
	var bad []string
	for _, r := range seq {
		if strings.ContainsRune(alphabet, r) || seen[r] {
			continue
		}
		seen[r] = true
		bad = append(bad, string(r))
	}
	if len(bad) == 0 {
		return nil
	}
	sort.Strings(bad)
	return diag.ScaffoldSequence(
		"invalid characters in "+what,
		fmt.Sprintf("sequence length %d", len(seq)),
		"found: "+strings.Join(bad, ", ")+"; only A, T, G, C, U are allowed",
	)
}
