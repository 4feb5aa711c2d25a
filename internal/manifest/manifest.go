// internal/manifest/manifest.go

// Package manifest loads YAML batch manifests of design requests, so the
// preflight tool can check many designs in one run.
package manifest

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"daedalus-core/helix"
	"daedalus-core/scaffold"

	"daedalus"
)

// Entry is one design request in a manifest file.
type Entry struct {
	Project   string `yaml:"project"`
	Geometry  string `yaml:"geometry"`
	Form      string `yaml:"form"`
	Turns     int    `yaml:"turns"`
	Scaffold  string `yaml:"scaffold"`
	Output    string `yaml:"output"`
	SingleXOs bool   `yaml:"single_crossovers"`
}

type file struct {
	Designs []Entry `yaml:"designs"`
}

// Load reads a YAML manifest and converts each entry into a Request.
func Load(path string) ([]daedalus.Request, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(raw)
}

// Parse converts manifest bytes into requests. Form and turns default the
// same way the library does (B-form, 4 turns).
func Parse(raw []byte) ([]daedalus.Request, error) {
	var mf file
	if err := yaml.Unmarshal(raw, &mf); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if len(mf.Designs) == 0 {
		return nil, errors.New("manifest lists no designs")
	}

	reqs := make([]daedalus.Request, 0, len(mf.Designs))
	for i, e := range mf.Designs {
		if e.Project == "" {
			return nil, fmt.Errorf("manifest design %d: project is required", i+1)
		}
		if e.Geometry == "" {
			return nil, fmt.Errorf("manifest design %q: geometry is required", e.Project)
		}
		form := helix.BForm
		if e.Form != "" {
			f, err := helix.Parse(e.Form)
			if err != nil {
				return nil, fmt.Errorf("manifest design %q: %w", e.Project, err)
			}
			form = f
		}
		reqs = append(reqs, daedalus.Request{
			Project:      e.Project,
			GeometryFile: e.Geometry,
			Form:         form,
			Turns:        e.Turns,
			Scaffold:     scaffold.Parse(e.Scaffold),
			OutputDir:    e.Output,
			SingleXOs:    e.SingleXOs,
		})
	}
	return reqs, nil
}
