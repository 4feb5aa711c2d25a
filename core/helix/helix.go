// core/helix/helix.go
package helix

import (
	"fmt"
	"strings"

	"daedalus-core/diag"
)

// Form selects the helical geometry family of the designed structure.
type Form string

const (
	BForm   Form = "Bform" // DNA default, 10.5 bp/turn
	AForm   Form = "Aform" // RNA default, 11 bp/turn
	Hybrid  Form = "Hybrid"
	Twisted Form = "Twisted"
)

// Minimum helical turns per edge for each form.
var minTurns = map[Form]int{
	BForm:   3,
	AForm:   4,
	Hybrid:  4,
	Twisted: 4,
}

// Config holds the engine-facing numeric parameters derived from a form and
// a turn count.
type Config struct {
	MinEdgeLen int  // minimum edge length in nucleotides
	AForm      bool // engine A-form flag
	Twist      int  // crossover twist mode: 1, 2 or 3
}

// Parse maps a selector string onto a Form, case-insensitively.
func Parse(s string) (Form, error) {
	for _, f := range []Form{AForm, BForm, Hybrid, Twisted} {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", invalidForm(Form(s))
}

// Resolve derives the engine parameters for f at the given turn count.
// It rejects unknown forms, then turn counts below the form's minimum,
// before consulting the parameter table.
func Resolve(f Form, turns int) (Config, error) {
	min, ok := minTurns[f]
	if !ok {
		return Config{}, invalidForm(f)
	}
	if turns < min {
		return Config{}, diag.HelicalParameter(string(f), turns, min)
	}
	switch f {
	case BForm:
		// floor(turns * 10.5) in integer math
		return Config{MinEdgeLen: turns * 21 / 2, AForm: false, Twist: 1}, nil
	case AForm:
		return Config{MinEdgeLen: turns * 11, AForm: true, Twist: 1}, nil
	case Hybrid:
		return Config{MinEdgeLen: turns * 11, AForm: true, Twist: 2}, nil
	default: // Twisted
		return Config{MinEdgeLen: turns * 11, AForm: true, Twist: 3}, nil
	}
}

func invalidForm(f Form) *diag.Error {
	return diag.General(
		fmt.Sprintf("invalid helical form %q", string(f)),
		"valid options are: Aform, Bform, Hybrid, Twisted",
		"use Bform for DNA structures",
		"use Aform for RNA structures",
		"Hybrid and Twisted are A-form variants with different crossover spacing",
	)
}
