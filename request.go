// request.go
package daedalus

import (
	"daedalus-core/helix"
	"daedalus-core/scaffold"
)

const defaultTurns = 4

// Request describes one origami design job. Exactly one scaffold
// representation is active at a time; the Source tag resolves the
// polymorphism up front. Zero values of Form, Turns and OutputDir mean
// B-form, 4 turns and the current working directory; the zero Quiet keeps
// progress output on, matching the historical print-by-default behavior.
type Request struct {
	Project      string
	GeometryFile string
	Form         helix.Form
	Turns        int
	Scaffold     scaffold.Source
	OutputDir    string
	SingleXOs    bool // single-crossover vertex staples instead of double
	Quiet        bool // suppress progress output
}

// WithDefaults fills the zero-value fields with the standard defaults.
func (r Request) WithDefaults() Request {
	if r.Form == "" {
		r.Form = helix.BForm
	}
	if r.Turns == 0 {
		r.Turns = defaultTurns
	}
	return r
}
